package models

import "time"

// Video is a showcase clip. VideoURL may be a YouTube watch, short-link or embed URL.
type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	VideoURL    string    `json:"video_url"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// VideoPayload is the body of POST /api/videos.
type VideoPayload struct {
	Title       string `json:"title" validate:"required"`
	VideoURL    string `json:"video_url" validate:"required,url"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}
