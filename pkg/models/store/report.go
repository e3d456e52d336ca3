package store

import "time"

type ReportRun struct {
	ID          string
	Subject     string
	Filename    string
	Location    *string
	Pages       int
	GeneratedAt time.Time
	CreatedAt   time.Time
}
