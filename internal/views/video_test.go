package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bklyngarment/storefront/internal/models"
)

func TestEmbedURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"watch with extra params", "https://www.youtube.com/watch?v=abc123&t=5", "https://www.youtube.com/embed/abc123"},
		{"watch plain", "https://youtube.com/watch?v=xyz", "https://www.youtube.com/embed/xyz"},
		{"short link with query", "https://youtu.be/abc123?x=1", "https://www.youtube.com/embed/abc123"},
		{"short link plain", "https://youtu.be/abc123", "https://www.youtube.com/embed/abc123"},
		{"already embed", "https://www.youtube.com/embed/abc123", "https://www.youtube.com/embed/abc123"},
		{"other host", "https://vimeo.com/12345", "https://vimeo.com/12345"},
		{"watch without id", "https://www.youtube.com/watch", "https://www.youtube.com/watch"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EmbedURL(tc.in))
		})
	}
}

func TestPlayerURLAddsAutoplay(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/embed/abc?autoplay=1", PlayerURL("https://youtu.be/abc"))
	assert.Equal(t, "https://cdn.example.com/v.mp4?s=1&autoplay=1", PlayerURL("https://cdn.example.com/v.mp4?s=1"))
}

func TestNewHomeCapsSections(t *testing.T) {
	products := make([]models.Product, 6)
	videos := make([]models.Video, 5)
	h := NewHome(products, products[:2], videos, 4, true)

	assert.Len(t, h.Featured, 4)
	assert.Len(t, h.NewArrivals, 2)
	assert.Len(t, h.Videos, 4)
	assert.True(t, h.VideoShowcase)
}

func TestHomePlayOpensOneTile(t *testing.T) {
	videos := []models.Video{{ID: "v1", VideoURL: "https://youtu.be/a"}, {ID: "v2", VideoURL: "https://youtu.be/b"}}
	h := NewHome(nil, nil, videos, 4, true)
	assert.Empty(t, h.Playing)

	assert.Equal(t, "v2", h.Play("v2").Playing)
	assert.Empty(t, h.Play("v9").Playing)
	assert.Empty(t, h.Play("").Playing)
}
