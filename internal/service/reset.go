package service

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"watchlog/internal/contextutil"
)

// ResetService destroys the entire history store.
type ResetService interface {
	// Reset closes the shared database handle, removes the backing
	// file, then requests process shutdown. Irreversible; the process
	// must be restarted to reinitialize a fresh store.
	Reset(ctx context.Context) error
}

// resetService implements ResetService.
type resetService struct {
	db       *sql.DB
	dbPath   string
	shutdown func()
	logger   *slog.Logger
}

// NewResetService creates a new ResetService. shutdown is invoked after
// the store has been destroyed; the caller owns the actual process exit.
func NewResetService(db *sql.DB, dbPath string, shutdown func()) ResetService {
	return &resetService{
		db:       db,
		dbPath:   dbPath,
		shutdown: shutdown,
		logger:   slog.Default(),
	}
}

// Reset destroys the store. The handle must be fully closed before the
// backing file is removed.
func (s *resetService) Reset(ctx context.Context) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := s.db.Close(); err != nil {
		logger.ErrorContext(ctx, "failed to close database before reset", "error", err)
		return WrapError(err, "failed to close database")
	}

	if err := os.Remove(s.dbPath); err != nil && !os.IsNotExist(err) {
		logger.ErrorContext(ctx, "failed to remove database file", "path", s.dbPath, "error", err)
		return WrapError(err, "failed to remove database file")
	}

	logger.InfoContext(ctx, "history store reset, restart required", "path", s.dbPath)

	if s.shutdown != nil {
		s.shutdown()
	}
	return nil
}
