package models

import "time"

// Bookmark is a per-user record. UserID is set from the authenticated
// identity on create and scopes every query afterwards.
type Bookmark struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BookmarkPatch carries the mutable bookmark fields for PATCH /bookmarks/:id.
type BookmarkPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Link        *string `json:"link,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p BookmarkPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Link == nil
}
