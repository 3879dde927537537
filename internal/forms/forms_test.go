package forms

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bklyngarment/storefront/internal/models"
)

func validProductDraft() ProductDraft {
	d := NewProductDraft()
	d.Name = "Lion Tee"
	d.Description = "Heavyweight cotton"
	d.Price = "35.50"
	d.ImageURL = "https://cdn.example.com/lion.png"
	return d
}

func TestParseSizes(t *testing.T) {
	assert.Equal(t, []string{"S", "M", "L"}, ParseSizes("S, M,  L"))
	assert.Equal(t, []string{"OS"}, ParseSizes(" , OS ,,"))
	assert.Equal(t, []string{}, ParseSizes(""))
}

func TestProductDraftNormalize(t *testing.T) {
	d := validProductDraft()
	d.Sizes = "S, M,  L"
	d.Featured = true

	payload, err := d.Normalize()
	require.NoError(t, err)
	assert.Equal(t, 35.5, payload.Price)
	assert.Equal(t, []string{"S", "M", "L"}, payload.Sizes)
	assert.Equal(t, models.CategoryTees, payload.Category)
	assert.True(t, payload.Featured)
	assert.True(t, payload.InStock)
}

func TestProductDraftNormalizeReportsFields(t *testing.T) {
	d := ProductDraft{Price: "abc", Category: "socks", ImageURL: "not a url"}

	_, err := d.Normalize()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "name")
	assert.Contains(t, ve.Fields, "description")
	assert.Contains(t, ve.Fields, "category")
	assert.Contains(t, ve.Fields, "image_url")
	assert.Equal(t, "Enter a number, e.g. 35.00.", ve.Fields["price"])
}

func TestProductDraftNegativePrice(t *testing.T) {
	d := validProductDraft()
	d.Price = "-1"
	_, err := d.Normalize()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "price")
}

func TestProductDraftRejectsNonFinitePrice(t *testing.T) {
	for _, price := range []string{"Inf", "+Inf", "-inf", "NaN", "1e400"} {
		d := validProductDraft()
		d.Price = price
		_, err := d.Normalize()
		var ve *ValidationError
		require.True(t, errors.As(err, &ve), price)
		assert.NotEmpty(t, ve.Fields["price"], price)
	}
}

func TestProductDraftFromProduct(t *testing.T) {
	d := ProductDraftFrom(models.Product{
		Name:     "Hoodie",
		Price:    80,
		Category: models.CategoryHoodies,
		Sizes:    []string{"M", "L"},
		InStock:  false,
	})
	assert.Equal(t, "80", d.Price)
	assert.Equal(t, "M, L", d.Sizes)
	assert.Equal(t, models.CategoryHoodies, d.Category)
	assert.False(t, bool(d.InStock))
}

func TestNewProductDraftDefaults(t *testing.T) {
	d := NewProductDraft()
	assert.Equal(t, "tees", d.Category)
	assert.Equal(t, DefaultSizes, d.Sizes)
	assert.True(t, bool(d.InStock))
	assert.False(t, bool(d.Featured))
}

func TestLookbookDraftNormalize(t *testing.T) {
	payload, err := LookbookDraft{Title: " Bed-Stuy ", ImageURL: "https://cdn.example.com/a.jpg"}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "Bed-Stuy", payload.Title)

	_, err = LookbookDraft{ImageURL: "https://cdn.example.com/a.jpg"}.Normalize()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "This field is required.", ve.Fields["title"])
}

func TestVideoDraftNormalize(t *testing.T) {
	d := NewVideoDraft()
	d.Title = "Flatbush drop"
	d.VideoURL = "https://youtu.be/abc123"
	payload, err := d.Normalize()
	require.NoError(t, err)
	assert.True(t, payload.Active)

	_, err = VideoDraft{Title: "x"}.Normalize()
	assert.Error(t, err)
}

func TestParseCheckbox(t *testing.T) {
	for _, raw := range []string{"on", "true", "1", "yes", "checked", "ON"} {
		v, err := ParseCheckbox(raw)
		require.NoError(t, err, raw)
		assert.True(t, v, raw)
	}
	for _, raw := range []string{"", "false", "off", "0"} {
		v, err := ParseCheckbox(raw)
		require.NoError(t, err, raw)
		assert.False(t, v, raw)
	}
	_, err := ParseCheckbox("maybe")
	assert.Error(t, err)
}

func TestCheckboxUnmarshalParam(t *testing.T) {
	var c Checkbox
	require.NoError(t, c.UnmarshalParam("on"))
	assert.True(t, bool(c))
	assert.Error(t, c.UnmarshalParam("maybe"))
	assert.True(t, bool(c), "a rejected value leaves the box as it was")
}

func TestBindErrorsNamesCheckbox(t *testing.T) {
	values := url.Values{"featured": {"on"}, "in_stock": {"maybe"}}
	fields := BindErrors(errors.New("bind failed"), values, ProductCheckboxes...)
	assert.Equal(t, FieldErrors{"in_stock": "Tick or untick this box."}, fields)

	fields = BindErrors(errors.New("bind failed"), url.Values{}, ProductCheckboxes...)
	assert.Contains(t, fields, FormMessage)
}
