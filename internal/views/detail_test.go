package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bklyngarment/storefront/internal/models"
)

func TestProductDetailDefaultsToFirstSize(t *testing.T) {
	d := NewProductDetail(models.Product{Category: "tees", Price: 35, Sizes: []string{"S", "M", "L"}}, "")
	assert.Equal(t, "S", d.SelectedSize)
	assert.True(t, d.Sizes[0].Active)
	assert.Equal(t, "TEES", d.CategoryLabel)
	assert.Equal(t, "$35.00", d.PriceLabel)
}

func TestProductDetailHonorsKnownSize(t *testing.T) {
	d := NewProductDetail(models.Product{Sizes: []string{"S", "M", "L"}}, "L")
	assert.Equal(t, "L", d.SelectedSize)

	d = NewProductDetail(models.Product{Sizes: []string{"S", "M", "L"}}, "XXXL")
	assert.Equal(t, "S", d.SelectedSize)
}

func TestProductDetailWithoutSizes(t *testing.T) {
	d := NewProductDetail(models.Product{}, "M")
	assert.Empty(t, d.SelectedSize)
	assert.Empty(t, d.Sizes)
}
