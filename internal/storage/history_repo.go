package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_history_store.go -package=mocks watchlog/internal/storage HistoryStore

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// HistoryStore defines the interface for viewing-history storage operations.
type HistoryStore interface {
	// Insert appends one viewing record. The store assigns ID and
	// RecordedAt on the passed record.
	Insert(ctx context.Context, rec *ViewingRecord) error
	// ListAll returns every record, newest first by recorded_at.
	ListAll(ctx context.Context) ([]ViewingRecord, error)
	// Count returns the total number of stored records.
	Count(ctx context.Context) (int, error)
}

// HistoryRepo provides methods for viewing-record operations.
// It implements the HistoryStore interface.
type HistoryRepo struct {
	db *sql.DB
}

// NewHistoryRepo creates a new HistoryRepo.
func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// Insert appends one viewing record. recorded_at is assigned here, never
// by the caller, and the generated row id is written back to rec.ID.
func (r *HistoryRepo) Insert(ctx context.Context, rec *ViewingRecord) error {
	rec.RecordedAt = time.Now().UTC().Format(TimeLayout)

	var rating any
	if rec.Rating != nil {
		rating = *rec.Rating
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO viewing_records (media_title, start_date, end_date, rating, notes, tags, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.MediaTitle, rec.StartDate, rec.EndDate, rating, nullIfEmpty(rec.Notes), nullIfEmpty(rec.Tags), rec.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert viewing record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted id: %w", err)
	}
	rec.ID = id

	return nil
}

// ListAll returns every record ordered by recorded_at descending. Records
// sharing the same second keep insertion order via the id tiebreaker.
func (r *HistoryRepo) ListAll(ctx context.Context) ([]ViewingRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, media_title, start_date, end_date, rating, notes, tags, recorded_at
		 FROM viewing_records
		 ORDER BY recorded_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query viewing records: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []ViewingRecord
	for rows.Next() {
		var rec ViewingRecord
		var rating sql.NullInt64
		var notes, tags sql.NullString

		if err := rows.Scan(&rec.ID, &rec.MediaTitle, &rec.StartDate, &rec.EndDate, &rating, &notes, &tags, &rec.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan viewing record: %w", err)
		}

		if rating.Valid {
			v := int(rating.Int64)
			rec.Rating = &v
		}
		rec.Notes = notes.String
		rec.Tags = tags.String

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate viewing records: %w", err)
	}

	return records, nil
}

// Count returns the total number of stored records.
func (r *HistoryRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM viewing_records").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count viewing records: %w", err)
	}
	return n, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
