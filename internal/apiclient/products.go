package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bklyngarment/storefront/internal/models"
)

// ProductQuery narrows GET /api/products. Nil flags are left off the query string.
type ProductQuery struct {
	Featured   *bool
	NewArrival *bool
	Category   string
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.Featured != nil {
		v.Set("featured", strconv.FormatBool(*q.Featured))
	}
	if q.NewArrival != nil {
		v.Set("new_arrival", strconv.FormatBool(*q.NewArrival))
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	return v
}

// ListProducts fetches the product list.
func (c *Client) ListProducts(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	products := []models.Product{}
	if err := c.do(ctx, http.MethodGet, "/products", q.values(), "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches one product. A missing product yields an error wrapping ErrNotFound.
func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, "", nil, &p); err != nil {
		return nil, notFoundAs(err)
	}
	return &p, nil
}

// CreateProduct calls POST /api/products.
func (c *Client) CreateProduct(ctx context.Context, token string, payload models.ProductPayload) (*models.Product, error) {
	var p models.Product
	if err := c.do(ctx, http.MethodPost, "/products", nil, token, payload, &p); err != nil {
		return nil, err
	}
	c.log.Infof("APIClient: created product %s", p.ID)
	return &p, nil
}

// UpdateProduct calls PUT /api/products/{id}.
func (c *Client) UpdateProduct(ctx context.Context, token, id string, payload models.ProductPayload) (*models.Product, error) {
	var p models.Product
	if err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), nil, token, payload, &p); err != nil {
		return nil, err
	}
	c.log.Infof("APIClient: updated product %s", id)
	return &p, nil
}

// DeleteProduct calls DELETE /api/products/{id}.
func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, token, nil, nil)
}

// ListCategories fetches GET /api/categories and unwraps the envelope.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var list models.CategoryList
	if err := c.do(ctx, http.MethodGet, "/categories", nil, "", nil, &list); err != nil {
		return nil, err
	}
	if list.Categories == nil {
		list.Categories = []models.Category{}
	}
	return list.Categories, nil
}
