package domain

import "time"

// ReportRun describes one generated document.
type ReportRun struct {
	ID          string
	Subject     string
	Filename    string
	Location    string // local path or s3:// URI
	Pages       int
	GeneratedAt time.Time
	CreatedAt   time.Time
}

type RunFilter struct {
	Subject string
	Limit   int
}
