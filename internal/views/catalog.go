// Package views derives page view models from backend data. Nothing here touches the network.
package views

import (
	"fmt"
	"sort"

	"github.com/gosimple/slug"

	"github.com/bklyngarment/storefront/internal/models"
)

// CategoryAll selects every product.
const CategoryAll = "all"

// SortKey names a product ordering on the shop page.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
)

// SortOption is one entry of the sort dropdown.
type SortOption struct {
	Key   SortKey `json:"key"`
	Label string  `json:"label"`
}

// SortOptions lists the dropdown entries in display order.
var SortOptions = []SortOption{
	{Key: SortNewest, Label: "Newest"},
	{Key: SortPriceLow, Label: "Price: Low to High"},
	{Key: SortPriceHigh, Label: "Price: High to Low"},
}

// ParseSort maps a query value to a SortKey, defaulting to newest.
func ParseSort(raw string) SortKey {
	switch k := SortKey(raw); k {
	case SortNewest, SortPriceLow, SortPriceHigh:
		return k
	default:
		return SortNewest
	}
}

// NormalizeCategory turns a ?category= value into a category id. "Hoodies" and "hoodies"
// both select hoodies; empty selects everything.
func NormalizeCategory(raw string) string {
	s := slug.Make(raw)
	if s == "" {
		return CategoryAll
	}
	return s
}

// FilterProducts returns the products in category. CategoryAll (or "") keeps the full list.
// The result is always a fresh slice.
func FilterProducts(products []models.Product, category string) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category == "" || category == CategoryAll || p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// SortProducts returns a copy of products ordered by key. Equal keys keep their input order;
// an unknown key leaves the order untouched.
func SortProducts(products []models.Product, key SortKey) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)

	var less func(a, b models.Product) bool
	switch key {
	case SortNewest:
		less = func(a, b models.Product) bool { return a.CreatedAt.After(b.CreatedAt) }
	case SortPriceLow:
		less = func(a, b models.Product) bool { return a.Price < b.Price }
	case SortPriceHigh:
		less = func(a, b models.Product) bool { return a.Price > b.Price }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// CategoryButton is one entry of the filter panel.
type CategoryButton struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Shop is the /shop page.
type Shop struct {
	Products       []ProductCard    `json:"products"`
	Count          int              `json:"count"`
	ActiveCategory string           `json:"active_category"`
	Sort           SortKey          `json:"sort"`
	SortOptions    []SortOption     `json:"sort_options"`
	Categories     []CategoryButton `json:"categories"`
	FiltersOpen    bool             `json:"filters_open"`
	FilterPanel    bool             `json:"filter_panel"`
}

// CountLabel renders the "N products" line.
func (s Shop) CountLabel() string {
	return fmt.Sprintf("%d products", s.Count)
}

// NewShop filters then sorts the already-fetched product list.
func NewShop(products []models.Product, categories []models.Category, category string, key SortKey, filtersOpen bool) Shop {
	if category == "" {
		category = CategoryAll
	}
	derived := SortProducts(FilterProducts(products, category), key)

	buttons := make([]CategoryButton, 0, len(categories)+1)
	buttons = append(buttons, CategoryButton{ID: CategoryAll, Name: "All", Active: category == CategoryAll})
	for _, c := range categories {
		buttons = append(buttons, CategoryButton{ID: c.ID, Name: c.Name, Active: c.ID == category})
	}

	return Shop{
		Products:       Cards(derived),
		Count:          len(derived),
		ActiveCategory: category,
		Sort:           key,
		SortOptions:    SortOptions,
		Categories:     buttons,
		FiltersOpen:    filtersOpen,
		FilterPanel:    true,
	}
}
