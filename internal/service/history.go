package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_services.go -package=mocks watchlog/internal/service HistoryService,EnrichmentService,ResetService

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"watchlog/internal/contextutil"
	"watchlog/internal/storage"
)

const (
	msgNoHistory      = "視聴履歴はまだありません。"
	msgRequiredFields = "作品名・視聴開始日・視聴終了日は必須です。"
	msgRecordedFormat = "「%s」の視聴履歴を記録しました。"
)

// RecordInput holds the candidate fields for one viewing record.
type RecordInput struct {
	MediaTitle string
	StartDate  string
	EndDate    string
	Rating     *int
	Notes      string
	Tags       string
}

// RecordResult is the caller-facing outcome of a record operation.
// A validation failure is a value here, not an error.
type RecordResult struct {
	Success bool
	Message string
}

// HistoryService provides viewing-history logging and listing.
type HistoryService interface {
	// Record validates the input and appends one viewing record.
	// Missing required fields yield a non-success result with nil error;
	// only store failures surface as errors.
	Record(ctx context.Context, input RecordInput) (RecordResult, error)
	// ListAll returns the full history as a formatted text block,
	// newest first, or a fixed message when the store is empty.
	ListAll(ctx context.Context) (string, error)
}

// historyService implements HistoryService.
type historyService struct {
	store  storage.HistoryStore
	logger *slog.Logger
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(store storage.HistoryStore) HistoryService {
	return &historyService{
		store:  store,
		logger: slog.Default(),
	}
}

// Record validates the input and appends one viewing record.
func (s *historyService) Record(ctx context.Context, input RecordInput) (RecordResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	// Presence checks on the three required fields. The failure is a
	// result value, never an error.
	if verr := validateRecordInput(input); verr != nil {
		logger.WarnContext(ctx, "viewing record rejected", "error", verr)
		return RecordResult{Success: false, Message: msgRequiredFields}, nil
	}

	rec := &storage.ViewingRecord{
		MediaTitle: input.MediaTitle,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Rating:     input.Rating,
		Notes:      input.Notes,
		Tags:       input.Tags,
	}

	if err := s.store.Insert(ctx, rec); err != nil {
		logger.ErrorContext(ctx, "failed to store viewing record", "title", input.MediaTitle, "error", err)
		return RecordResult{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	logger.InfoContext(ctx, "viewing record stored", "id", rec.ID, "title", rec.MediaTitle)
	return RecordResult{
		Success: true,
		Message: fmt.Sprintf(msgRecordedFormat, rec.MediaTitle),
	}, nil
}

// ListAll returns the full history as a formatted text block, newest first.
func (s *historyService) ListAll(ctx context.Context) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	records, err := s.store.ListAll(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read viewing history", "error", err)
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}

	if len(records) == 0 {
		return msgNoHistory, nil
	}

	lines := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, formatRecordLine(rec))
	}
	return strings.Join(lines, "\n"), nil
}

// validateRecordInput checks the three required fields for presence.
func validateRecordInput(input RecordInput) *ValidationError {
	switch {
	case strings.TrimSpace(input.MediaTitle) == "":
		return &ValidationError{Field: "mediaTitle", Message: "cannot be empty"}
	case strings.TrimSpace(input.StartDate) == "":
		return &ValidationError{Field: "startDate", Message: "cannot be empty"}
	case strings.TrimSpace(input.EndDate) == "":
		return &ValidationError{Field: "endDate", Message: "cannot be empty"}
	}
	return nil
}

// formatRecordLine renders one history line. Optional suffixes appear in
// fixed order: rating, then notes, then tags.
func formatRecordLine(rec storage.ViewingRecord) string {
	line := fmt.Sprintf("・%s ~ %s: %s", rec.StartDate, rec.EndDate, rec.MediaTitle)
	if rec.Rating != nil {
		line += fmt.Sprintf(" (評価:%d)", *rec.Rating)
	}
	if strings.TrimSpace(rec.Notes) != "" {
		line += fmt.Sprintf(" [メモ: %s]", rec.Notes)
	}
	if strings.TrimSpace(rec.Tags) != "" {
		line += fmt.Sprintf(" [タグ: %s]", rec.Tags)
	}
	return line
}
