package dto

import "time"

// CreateBookmarkRequest is the JSON body for POST /bookmarks.
type CreateBookmarkRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Link        string `json:"link" binding:"required,url"`
	Description string `json:"description" binding:"max=1000"`
}

// UpdateBookmarkRequest is the JSON body for PATCH /bookmarks/:id.
// nil = leave unchanged.
type UpdateBookmarkRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=255"`
	Link        *string `json:"link" binding:"omitempty,url"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

type BookmarkResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
