package views

import (
	"fmt"

	"github.com/bklyngarment/storefront/internal/models"
)

// ProductCard is the grid tile used on the home and shop pages.
type ProductCard struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	ImageURL   string  `json:"image_url"`
	Price      float64 `json:"price"`
	PriceLabel string  `json:"price_label"`
	Category   string  `json:"category"`
	NewArrival bool    `json:"new_arrival"`
	Featured   bool    `json:"featured"`
	Href       string  `json:"href"`
}

// FormatPrice renders a price the way the storefront shows it, e.g. $35.00.
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

// Card maps a product to its tile.
func Card(p models.Product) ProductCard {
	return ProductCard{
		ID:         p.ID,
		Name:       p.Name,
		ImageURL:   p.ImageURL,
		Price:      p.Price,
		PriceLabel: FormatPrice(p.Price),
		Category:   p.Category,
		NewArrival: p.NewArrival,
		Featured:   p.Featured,
		Href:       "/product/" + p.ID,
	}
}

// Cards maps a list of products, preserving order.
func Cards(products []models.Product) []ProductCard {
	out := make([]ProductCard, 0, len(products))
	for _, p := range products {
		out = append(out, Card(p))
	}
	return out
}
