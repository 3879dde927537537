package views

import "github.com/bklyngarment/storefront/internal/models"

// DefaultSectionLimit caps each home page section.
const DefaultSectionLimit = 4

// Home is the / page.
type Home struct {
	Featured      []ProductCard `json:"featured"`
	NewArrivals   []ProductCard `json:"new_arrivals"`
	Videos        []VideoTile   `json:"videos"`
	VideoShowcase bool          `json:"video_showcase"`
	MadeToOrder   []string      `json:"made_to_order"`

	// Playing is the tile whose player is open. Every other tile shows its thumbnail.
	Playing string `json:"playing,omitempty"`
}

// Play opens the player of the tile with id. An unknown id leaves every tile closed.
func (h Home) Play(id string) Home {
	h.Playing = ""
	for _, t := range h.Videos {
		if t.ID == id {
			h.Playing = id
			break
		}
	}
	return h
}

// NewHome keeps the first limit entries of each list. A non-positive limit falls back to
// DefaultSectionLimit.
func NewHome(featured, newArrivals []models.Product, videos []models.Video, limit int, showcase bool) Home {
	if limit <= 0 {
		limit = DefaultSectionLimit
	}
	return Home{
		Featured:      Cards(head(featured, limit)),
		NewArrivals:   Cards(head(newArrivals, limit)),
		Videos:        VideoTiles(head(videos, limit)),
		VideoShowcase: showcase,
		MadeToOrder:   MadeToOrder,
	}
}

func head[T any](list []T, n int) []T {
	if len(list) <= n {
		return list
	}
	return list[:n]
}
