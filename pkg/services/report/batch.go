package report

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// BatchResult is one saved document of a batch, in input order.
type BatchResult struct {
	Subject     string
	Filename    string
	Path        string
	Pages       int
	GeneratedAt time.Time
}

func (r BatchResult) Run() domain.ReportRun {
	return domain.ReportRun{
		Subject:     r.Subject,
		Filename:    r.Filename,
		Location:    r.Path,
		Pages:       r.Pages,
		GeneratedAt: r.GeneratedAt,
	}
}

// GenerateBatch renders and saves every record into dir with at most limit
// documents in flight. The first failure cancels the remaining work. Two
// records that would produce the same filename are rejected up front.
func (g *Generator) GenerateBatch(
	ctx context.Context,
	records []*domain.ReportData,
	dir string,
	limit int,
) ([]BatchResult, error) {
	seen := make(map[string]int, len(records))
	for i, rec := range records {
		if rec == nil {
			return nil, fmt.Errorf("record %d: %w", i, ErrNilReport)
		}
		name := Filename(g.product, rec.Subject, rec.GeneratedAt)
		if j, ok := seen[name]; ok {
			return nil, fmt.Errorf("records %d and %d both produce %s", j, i, name)
		}
		seen[name] = i
	}

	results := make([]BatchResult, len(records))
	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}

	for i, rec := range records {
		eg.Go(func() error {
			doc, err := g.Generate(egCtx, rec)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			path, err := doc.Save(dir)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			results[i] = BatchResult{
				Subject:     rec.Subject,
				Filename:    doc.Filename,
				Path:        path,
				Pages:       doc.Pages,
				GeneratedAt: doc.GeneratedAt,
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int("records", len(records)).Msg("batch generation failed")
		return nil, err
	}
	zerolog.Ctx(ctx).Info().Int("records", len(records)).Str("dir", dir).Msg("batch generation finished")
	return results, nil
}
