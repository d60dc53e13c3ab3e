package dto

import "time"

// ExportRow is one line of the ticket spreadsheet.
type ExportRow struct {
	Protocol     string
	Title        string
	Status       string
	Priority     string
	AssigneeName string
	ScheduledAt  *time.Time
	CreatedAt    time.Time
}
