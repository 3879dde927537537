package views

import "github.com/bklyngarment/storefront/internal/models"

// Lookbook is the /lookbook page.
type Lookbook struct {
	Items []models.LookbookItem `json:"items"`
}

// Empty reports whether the coming-soon copy should be shown.
func (l Lookbook) Empty() bool { return len(l.Items) == 0 }

// NewLookbook wraps the fetched items; nil becomes an empty list.
func NewLookbook(items []models.LookbookItem) Lookbook {
	if items == nil {
		items = []models.LookbookItem{}
	}
	return Lookbook{Items: items}
}
