package repository

import "time"

// Note represents a note row.
type Note struct {
	ID        string
	Title     string
	Body      string
	Pinned    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
