package history

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/adapters"
	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	historystore "github.com/de-tools/wellness-atlas/pkg/store/duckdb/history"
	"github.com/google/uuid"
)

// Service records generated documents and lists past runs.
type Service interface {
	Record(ctx context.Context, run domain.ReportRun) (domain.ReportRun, error)
	List(ctx context.Context, filter domain.RunFilter) ([]domain.ReportRun, error)
}

type historyService struct {
	store historystore.Store
	now   func() time.Time
	newID func() string
}

func NewService(store historystore.Store) Service {
	return &historyService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Record stores run under a fresh ID and returns the stored value.
func (s *historyService) Record(ctx context.Context, run domain.ReportRun) (domain.ReportRun, error) {
	if run.Filename == "" {
		return domain.ReportRun{}, fmt.Errorf("report run has no filename")
	}
	run.ID = s.newID()
	run.CreatedAt = s.now()
	if err := s.store.RecordRun(ctx, adapters.MapReportRunDomainToStore(run)); err != nil {
		return domain.ReportRun{}, fmt.Errorf("failed to record report run: %w", err)
	}
	return run, nil
}

func (s *historyService) List(ctx context.Context, filter domain.RunFilter) ([]domain.ReportRun, error) {
	rows, err := s.store.ListRuns(ctx, filter.Subject, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list report runs: %w", err)
	}
	runs := make([]domain.ReportRun, 0, len(rows))
	for _, r := range rows {
		runs = append(runs, adapters.MapReportRunStoreToDomain(r))
	}
	return runs, nil
}
