package models

import "time"

// OutputLogEntry is a single line of the dashboard output panel.
type OutputLogEntry struct {
	ID         string    `json:"id"`
	Seq        int64     `json:"seq"`
	OccurredAt time.Time `json:"occurred_at"`
	Message    string    `json:"message"`
}
