package views

import (
	"strings"

	"github.com/bklyngarment/storefront/internal/models"
)

const youtubeEmbedPrefix = "https://www.youtube.com/embed/"

// EmbedURL rewrites YouTube watch and youtu.be links to the embed form. The video id runs up
// to the next '&' or '?'. Any other URL is returned unchanged.
func EmbedURL(raw string) string {
	var rest string
	switch {
	case strings.Contains(raw, "youtube.com/watch"):
		_, after, ok := strings.Cut(raw, "v=")
		if !ok {
			return raw
		}
		rest = after
	case strings.Contains(raw, "youtu.be/"):
		_, rest, _ = strings.Cut(raw, "youtu.be/")
	default:
		return raw
	}

	if i := strings.IndexAny(rest, "&?"); i >= 0 {
		rest = rest[:i]
	}
	return youtubeEmbedPrefix + rest
}

// PlayerURL is the iframe source: the embed URL with autoplay switched on.
func PlayerURL(raw string) string {
	embed := EmbedURL(raw)
	if strings.Contains(embed, "?") {
		return embed + "&autoplay=1"
	}
	return embed + "?autoplay=1"
}

// VideoTile is one entry of the video showcase.
type VideoTile struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	VideoURL  string `json:"video_url"`
	EmbedURL  string `json:"embed_url"`
	PlayerURL string `json:"player_url"`
	Active    bool   `json:"active"`
}

// VideoTiles maps videos to tiles, preserving order.
func VideoTiles(videos []models.Video) []VideoTile {
	out := make([]VideoTile, 0, len(videos))
	for _, v := range videos {
		out = append(out, VideoTile{
			ID:        v.ID,
			Title:     v.Title,
			VideoURL:  v.VideoURL,
			EmbedURL:  EmbedURL(v.VideoURL),
			PlayerURL: PlayerURL(v.VideoURL),
			Active:    v.Active,
		})
	}
	return out
}
