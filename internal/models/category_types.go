package models

// Category ids understood by the backend. The filter UI groups products by these values.
const (
	CategoryTees        = "tees"
	CategoryHoodies     = "hoodies"
	CategorySweats      = "sweats"
	CategoryHats        = "hats"
	CategoryAccessories = "accessories"
)

// Categories lists the enumerated category ids in display order.
var Categories = []string{
	CategoryTees,
	CategoryHoodies,
	CategorySweats,
	CategoryHats,
	CategoryAccessories,
}

// Category is one entry of GET /api/categories.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryList is the envelope returned by GET /api/categories.
type CategoryList struct {
	Categories []Category `json:"categories"`
}

// IsCategory reports whether id is one of the enumerated categories.
func IsCategory(id string) bool {
	for _, c := range Categories {
		if c == id {
			return true
		}
	}
	return false
}
