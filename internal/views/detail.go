package views

import (
	"strings"

	"github.com/bklyngarment/storefront/internal/models"
)

// MadeToOrder is the static made-to-order copy shown on product and about pages.
var MadeToOrder = []string{
	"7-10 days print time",
	"Printed in Brooklyn by Aesthetic BK",
	"Worldwide shipping available",
}

// ProductDetail is the /product/:id page. SelectedSize is UI state only.
type ProductDetail struct {
	Product       models.Product `json:"product"`
	PriceLabel    string         `json:"price_label"`
	CategoryLabel string         `json:"category_label"`
	Sizes         []SizeOption   `json:"sizes"`
	SelectedSize  string         `json:"selected_size"`
	MadeToOrder   []string       `json:"made_to_order"`
}

// SizeOption is one selectable size button.
type SizeOption struct {
	Size   string `json:"size"`
	Active bool   `json:"active"`
}

// NewProductDetail selects requested when it is one of the product's sizes, otherwise the
// first size. Products without sizes have no selection.
func NewProductDetail(p models.Product, requested string) ProductDetail {
	selected := ""
	if len(p.Sizes) > 0 {
		selected = p.Sizes[0]
		for _, s := range p.Sizes {
			if s == requested {
				selected = s
				break
			}
		}
	}

	sizes := make([]SizeOption, 0, len(p.Sizes))
	for _, s := range p.Sizes {
		sizes = append(sizes, SizeOption{Size: s, Active: s == selected})
	}

	return ProductDetail{
		Product:       p,
		PriceLabel:    FormatPrice(p.Price),
		CategoryLabel: strings.ToUpper(p.Category),
		Sizes:         sizes,
		SelectedSize:  selected,
		MadeToOrder:   MadeToOrder,
	}
}
