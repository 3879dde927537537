package models

import "time"

// LookbookItem is a styled photo shown on the lookbook page.
type LookbookItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// LookbookPayload is the body of POST /api/lookbook.
type LookbookPayload struct {
	Title       string `json:"title" validate:"required"`
	ImageURL    string `json:"image_url" validate:"required,url"`
	Description string `json:"description"`
}
