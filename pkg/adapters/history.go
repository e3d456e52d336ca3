package adapters

import (
	"github.com/de-tools/wellness-atlas/pkg/models/api"
	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/de-tools/wellness-atlas/pkg/models/store"
)

func MapReportRunDomainToApi(r domain.ReportRun) api.ReportRun {
	return api.ReportRun{
		ID:          r.ID,
		Subject:     r.Subject,
		Filename:    r.Filename,
		Location:    r.Location,
		Pages:       r.Pages,
		GeneratedAt: r.GeneratedAt,
		CreatedAt:   r.CreatedAt,
	}
}

func MapReportRunDomainToStore(r domain.ReportRun) store.ReportRun {
	var location *string
	if r.Location != "" {
		loc := r.Location
		location = &loc
	}
	return store.ReportRun{
		ID:          r.ID,
		Subject:     r.Subject,
		Filename:    r.Filename,
		Location:    location,
		Pages:       r.Pages,
		GeneratedAt: r.GeneratedAt,
		CreatedAt:   r.CreatedAt,
	}
}

func MapReportRunStoreToDomain(r store.ReportRun) domain.ReportRun {
	run := domain.ReportRun{
		ID:          r.ID,
		Subject:     r.Subject,
		Filename:    r.Filename,
		Pages:       r.Pages,
		GeneratedAt: r.GeneratedAt,
		CreatedAt:   r.CreatedAt,
	}
	if r.Location != nil {
		run.Location = *r.Location
	}
	return run
}
