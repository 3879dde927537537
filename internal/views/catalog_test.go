package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bklyngarment/storefront/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "a", Category: "tees", Price: 35, CreatedAt: day("2024-03-01")},
		{ID: "b", Category: "hoodies", Price: 80, CreatedAt: day("2023-05-01")},
		{ID: "c", Category: "tees", Price: 35, CreatedAt: day("2024-01-01")},
		{ID: "d", Category: "hats", Price: 25, CreatedAt: day("2022-12-01")},
		{ID: "e", Category: "tees", Price: 40, CreatedAt: day("2024-06-01")},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterProductsByCategory(t *testing.T) {
	all := sampleProducts()
	for _, cat := range models.Categories {
		filtered := FilterProducts(all, cat)
		excluded := 0
		for _, p := range all {
			if p.Category != cat {
				excluded++
			}
		}
		for _, p := range filtered {
			assert.Equal(t, cat, p.Category)
		}
		assert.Equal(t, len(all), len(filtered)+excluded, "category %s", cat)
	}
}

func TestFilterProductsAllKeepsEverything(t *testing.T) {
	all := sampleProducts()
	assert.Equal(t, ids(all), ids(FilterProducts(all, CategoryAll)))
	assert.Equal(t, ids(all), ids(FilterProducts(all, "")))
}

func TestSortPriceLowAndHigh(t *testing.T) {
	low := SortProducts(sampleProducts(), SortPriceLow)
	for i := 1; i < len(low); i++ {
		assert.LessOrEqual(t, low[i-1].Price, low[i].Price)
	}

	high := SortProducts(sampleProducts(), SortPriceHigh)
	for i := 1; i < len(high); i++ {
		assert.GreaterOrEqual(t, high[i-1].Price, high[i].Price)
	}
}

func TestSortKeepsFetchOrderForTies(t *testing.T) {
	// a and c share a price; a was fetched first.
	assert.Equal(t, []string{"d", "a", "c", "e", "b"}, ids(SortProducts(sampleProducts(), SortPriceLow)))
	assert.Equal(t, []string{"b", "e", "a", "c", "d"}, ids(SortProducts(sampleProducts(), SortPriceHigh)))
}

func TestSortNewestEitherInputOrder(t *testing.T) {
	t1 := models.Product{ID: "t1", CreatedAt: day("2023-01-01")}
	t2 := models.Product{ID: "t2", CreatedAt: day("2024-01-01")}

	assert.Equal(t, []string{"t2", "t1"}, ids(SortProducts([]models.Product{t1, t2}, SortNewest)))
	assert.Equal(t, []string{"t2", "t1"}, ids(SortProducts([]models.Product{t2, t1}, SortNewest)))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	in := sampleProducts()
	_ = SortProducts(in, SortPriceHigh)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(in))
}

func TestSortUnknownKeyKeepsOrder(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(SortProducts(sampleProducts(), SortKey("bogus"))))
}

func TestParseSort(t *testing.T) {
	assert.Equal(t, SortNewest, ParseSort(""))
	assert.Equal(t, SortNewest, ParseSort("cheapest"))
	assert.Equal(t, SortPriceHigh, ParseSort("price-high"))
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, CategoryAll, NormalizeCategory(""))
	assert.Equal(t, "hoodies", NormalizeCategory("Hoodies"))
	assert.Equal(t, "tees", NormalizeCategory(" tees "))
	assert.Equal(t, "all", NormalizeCategory("all"))
}

func TestNewShopDerivesFilteredSortedList(t *testing.T) {
	cats := []models.Category{{ID: "tees", Name: "Tees"}, {ID: "hats", Name: "Hats"}}
	shop := NewShop(sampleProducts(), cats, "tees", SortPriceHigh, true)

	require.Len(t, shop.Products, 3)
	assert.Equal(t, "e", shop.Products[0].ID)
	assert.Equal(t, "$40.00", shop.Products[0].PriceLabel)
	assert.Equal(t, "3 products", shop.CountLabel())
	require.Len(t, shop.Categories, 3)
	assert.False(t, shop.Categories[0].Active)
	assert.True(t, shop.Categories[1].Active)
}
