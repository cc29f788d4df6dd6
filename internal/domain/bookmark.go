package domain

import "time"

// Bookmark is the domain entity for a saved link.
// Every bookmark has exactly one owner (UserID).
type Bookmark struct {
	ID          int64
	UserID      int64
	Title       string
	Link        string
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
}
