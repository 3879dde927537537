package forms

import (
	"math"
	"strconv"
	"strings"

	"github.com/bklyngarment/storefront/internal/models"
)

// DefaultSizes seeds the sizes input of a new product.
const DefaultSizes = "S, M, L, XL, XXL"

// ProductDraft is the product form as typed by the admin. Every field is kept as entered so
// a failed submit can re-render it untouched.
type ProductDraft struct {
	Name        string   `form:"name" json:"name"`
	Description string   `form:"description" json:"description"`
	Price       string   `form:"price" json:"price"`
	Category    string   `form:"category" json:"category"`
	ImageURL    string   `form:"image_url" json:"image_url"`
	Sizes       string   `form:"sizes" json:"sizes"`
	Featured    Checkbox `form:"featured" json:"featured"`
	NewArrival  Checkbox `form:"new_arrival" json:"new_arrival"`
	InStock     Checkbox `form:"in_stock" json:"in_stock"`
}

// ProductCheckboxes are the checkbox inputs of the product form.
var ProductCheckboxes = []string{"featured", "new_arrival", "in_stock"}

// NewProductDraft returns the create-form defaults.
func NewProductDraft() ProductDraft {
	return ProductDraft{
		Category: models.CategoryTees,
		Sizes:    DefaultSizes,
		InStock:  true,
	}
}

// ProductDraftFrom seeds the edit form from an existing product.
func ProductDraftFrom(p models.Product) ProductDraft {
	d := ProductDraft{
		Name:        p.Name,
		Description: p.Description,
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		Sizes:       strings.Join(p.Sizes, ", "),
		Featured:    Checkbox(p.Featured),
		NewArrival:  Checkbox(p.NewArrival),
		InStock:     Checkbox(p.InStock),
	}
	if d.Category == "" {
		d.Category = models.CategoryTees
	}
	if len(p.Sizes) == 0 {
		d.Sizes = DefaultSizes
	}
	return d
}

// ParseSizes splits comma-separated size text into trimmed, non-empty entries in order.
func ParseSizes(text string) []string {
	sizes := []string{}
	for _, s := range strings.Split(text, ",") {
		if s = strings.TrimSpace(s); s != "" {
			sizes = append(sizes, s)
		}
	}
	return sizes
}

// Normalize converts the draft into the wire payload or a *ValidationError.
func (d ProductDraft) Normalize() (models.ProductPayload, error) {
	fields := FieldErrors{}

	var price float64
	priceText := strings.TrimSpace(d.Price)
	switch {
	case priceText == "":
		fields["price"] = messageForTag("required", "")
	default:
		p, err := strconv.ParseFloat(priceText, 64)
		switch {
		case err != nil:
			fields["price"] = "Enter a number, e.g. 35.00."
		case math.IsInf(p, 0) || math.IsNaN(p):
			fields["price"] = "Enter a finite amount, e.g. 35.00."
		default:
			price = p
		}
	}

	payload := models.ProductPayload{
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
		Price:       price,
		Category:    d.Category,
		ImageURL:    strings.TrimSpace(d.ImageURL),
		Sizes:       ParseSizes(d.Sizes),
		Featured:    bool(d.Featured),
		NewArrival:  bool(d.NewArrival),
		InStock:     bool(d.InStock),
	}
	if err := check(payload, fields); err != nil {
		return models.ProductPayload{}, err
	}
	return payload, nil
}
