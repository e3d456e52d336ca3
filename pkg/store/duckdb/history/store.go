package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/models/store"
	"github.com/de-tools/wellness-atlas/pkg/store/duckdb"
	"github.com/rs/zerolog"
)

const DefaultLimit = 50

// Store keeps one row per generated report so that past runs can be listed
// without touching the documents themselves.
type Store interface {
	RecordRun(ctx context.Context, run store.ReportRun) error
	ListRuns(ctx context.Context, subject string, limit int) ([]store.ReportRun, error)
}

type historyStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &historyStore{db: db}, nil
}

func (s *historyStore) RecordRun(ctx context.Context, run store.ReportRun) error {
	if run.ID == "" {
		return errors.New("report run id is required")
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := duckdb.Conn(ctx, s.db).ExecContext(ctx, `
		INSERT INTO report_runs (id, subject, filename, location, pages, generated_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Subject, run.Filename, nullString(run.Location), run.Pages, run.GeneratedAt, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert report run: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("id", run.ID).Str("filename", run.Filename).Msg("report run recorded")
	return nil
}

// ListRuns returns the newest runs first, optionally for a single subject.
func (s *historyStore) ListRuns(ctx context.Context, subject string, limit int) ([]store.ReportRun, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	query := `
		SELECT id, subject, filename, location, pages, generated_at, created_at
		FROM report_runs`
	args := []any{}
	if subject != "" {
		query += ` WHERE subject = ?`
		args = append(args, subject)
	}
	query += ` ORDER BY created_at DESC, id LIMIT ?`
	args = append(args, limit)

	rows, err := duckdb.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query report runs: %w", err)
	}
	defer rows.Close()

	runs := make([]store.ReportRun, 0)
	for rows.Next() {
		var (
			run      store.ReportRun
			location sql.NullString
		)
		if err := rows.Scan(&run.ID, &run.Subject, &run.Filename, &location, &run.Pages, &run.GeneratedAt, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report run: %w", err)
		}
		if location.Valid {
			run.Location = &location.String
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate report runs: %w", err)
	}
	return runs, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
