package models

import (
	"time"
)

// Product is a catalog entry as served by GET /api/products.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"` // one of Categories

	// --- Media & Options ---
	ImageURL string   `json:"image_url"`
	Sizes    []string `json:"sizes"`
	Colors   []string `json:"colors,omitempty"`

	// --- Merchandising Flags ---
	Featured   bool `json:"featured"`
	NewArrival bool `json:"new_arrival"`
	InStock    bool `json:"in_stock"`

	CreatedAt time.Time `json:"created_at"` // drives the "newest" sort
}

// ProductPayload is the body of POST /api/products and PUT /api/products/{id}.
type ProductPayload struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	Category    string   `json:"category" validate:"required,category"`
	ImageURL    string   `json:"image_url" validate:"required,url"`
	Sizes       []string `json:"sizes"`
	Featured    bool     `json:"featured"`
	NewArrival  bool     `json:"new_arrival"`
	InStock     bool     `json:"in_stock"`
}
