package apiclient

import (
	"context"
	"errors"
	"net/http"

	"github.com/bklyngarment/storefront/internal/models"
)

// Login exchanges admin credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp models.LoginResponse
	req := models.LoginRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/admin/login", nil, "", req, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", errors.New("backend login response carried no token")
	}
	return resp.Token, nil
}

// Verify checks a bearer token against GET /api/admin/verify. Any non-2xx is a failure.
func (c *Client) Verify(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodGet, "/admin/verify", nil, token, nil, nil)
}
