package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bklyngarment/storefront/internal/models"
)

// ListLookbook fetches GET /api/lookbook.
func (c *Client) ListLookbook(ctx context.Context) ([]models.LookbookItem, error) {
	items := []models.LookbookItem{}
	if err := c.do(ctx, http.MethodGet, "/lookbook", nil, "", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateLookbookItem calls POST /api/lookbook.
func (c *Client) CreateLookbookItem(ctx context.Context, token string, payload models.LookbookPayload) (*models.LookbookItem, error) {
	var item models.LookbookItem
	if err := c.do(ctx, http.MethodPost, "/lookbook", nil, token, payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteLookbookItem calls DELETE /api/lookbook/{id}.
func (c *Client) DeleteLookbookItem(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/lookbook/"+url.PathEscape(id), nil, token, nil, nil)
}

// ListVideos fetches GET /api/videos. The backend defaults to active videos only, so the
// flag is sent only when every video is wanted.
func (c *Client) ListVideos(ctx context.Context, activeOnly bool) ([]models.Video, error) {
	var q url.Values
	if !activeOnly {
		q = url.Values{"active_only": {"false"}}
	}
	videos := []models.Video{}
	if err := c.do(ctx, http.MethodGet, "/videos", q, "", nil, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// CreateVideo calls POST /api/videos.
func (c *Client) CreateVideo(ctx context.Context, token string, payload models.VideoPayload) (*models.Video, error) {
	var v models.Video
	if err := c.do(ctx, http.MethodPost, "/videos", nil, token, payload, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// DeleteVideo calls DELETE /api/videos/{id}.
func (c *Client) DeleteVideo(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/videos/"+url.PathEscape(id), nil, token, nil, nil)
}
