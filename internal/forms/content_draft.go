package forms

import (
	"strings"

	"github.com/bklyngarment/storefront/internal/models"
)

// LookbookDraft is the add-lookbook-image form.
type LookbookDraft struct {
	Title       string `form:"title" json:"title"`
	ImageURL    string `form:"image_url" json:"image_url"`
	Description string `form:"description" json:"description"`
}

// Normalize converts the draft into the wire payload or a *ValidationError.
func (d LookbookDraft) Normalize() (models.LookbookPayload, error) {
	payload := models.LookbookPayload{
		Title:       strings.TrimSpace(d.Title),
		ImageURL:    strings.TrimSpace(d.ImageURL),
		Description: strings.TrimSpace(d.Description),
	}
	if err := check(payload, FieldErrors{}); err != nil {
		return models.LookbookPayload{}, err
	}
	return payload, nil
}

// VideoDraft is the add-video form.
type VideoDraft struct {
	Title       string   `form:"title" json:"title"`
	VideoURL    string   `form:"video_url" json:"video_url"`
	Description string   `form:"description" json:"description"`
	Active      Checkbox `form:"active" json:"active"`
}

// VideoCheckboxes are the checkbox inputs of the video form.
var VideoCheckboxes = []string{"active"}

// NewVideoDraft returns the create-form defaults; new videos go live immediately.
func NewVideoDraft() VideoDraft {
	return VideoDraft{Active: true}
}

// Normalize converts the draft into the wire payload or a *ValidationError.
func (d VideoDraft) Normalize() (models.VideoPayload, error) {
	payload := models.VideoPayload{
		Title:       strings.TrimSpace(d.Title),
		VideoURL:    strings.TrimSpace(d.VideoURL),
		Description: strings.TrimSpace(d.Description),
		Active:      bool(d.Active),
	}
	if err := check(payload, FieldErrors{}); err != nil {
		return models.VideoPayload{}, err
	}
	return payload, nil
}
