package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bklyngarment/storefront/internal/models"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second, quietLogger())
}

func TestNewAppendsAPIPrefix(t *testing.T) {
	c := New("http://backend:8001/", time.Second, quietLogger())
	assert.Equal(t, "http://backend:8001/api", c.BaseURL())
}

func TestListProductsSendsFlags(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]models.Product{{ID: "p1", Name: "Lion Tee", Price: 35}})
	})

	featured := true
	products, err := c.ListProducts(context.Background(), ProductQuery{Featured: &featured})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "featured=true", gotQuery)
	assert.Equal(t, "Lion Tee", products[0].Name)
}

func TestGetProductNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Product not found"}`))
	})

	_, err := c.GetProduct(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCreateProductAttachesBearer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		var payload models.ProductPayload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, []string{"S", "M"}, payload.Sizes)
		_ = json.NewEncoder(w).Encode(models.Product{ID: "new-id", Name: payload.Name})
	})

	p, err := c.CreateProduct(context.Background(), "tok-1", models.ProductPayload{Name: "Hoodie", Sizes: []string{"S", "M"}})
	require.NoError(t, err)
	assert.Equal(t, "new-id", p.ID)
}

func TestErrorDetailIsKeptVerbatim(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Token expired"}`))
	})

	err := c.DeleteProduct(context.Background(), "stale", "p1")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Token expired", DetailOr(err, "fallback"))
}

func TestDetailOrFallsBack(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":[{"loc":["body","price"],"msg":"field required"}]}`))
	})

	_, err := c.CreateVideo(context.Background(), "tok", models.VideoPayload{})
	require.Error(t, err)
	assert.Equal(t, "fallback", DetailOr(err, "fallback"))
	assert.Equal(t, "fallback", DetailOr(errors.New("dial tcp: refused"), "fallback"))
}

func TestListCategoriesUnwrapsEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"categories":[{"id":"tees","name":"Tees"},{"id":"hats","name":"Hats"}]}`))
	})

	cats, err := c.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "hats", cats[1].ID)
}

func TestListVideosActiveOnlyFlag(t *testing.T) {
	var queries []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.RawQuery)
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := c.ListVideos(context.Background(), true)
	require.NoError(t, err)
	_, err = c.ListVideos(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, []string{"", "active_only=false"}, queries)
}

func TestLoginAndVerify(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/admin/login":
			var req models.LoginRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if req.Username != "admin" || req.Password != "admin123" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"detail":"Invalid credentials"}`))
				return
			}
			_, _ = w.Write([]byte(`{"token":"good","message":"Login successful"}`))
		case "/api/admin/verify":
			if r.Header.Get("Authorization") != "Bearer good" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = w.Write([]byte(`{"valid":true,"username":"admin"}`))
		}
	})

	ctx := context.Background()
	token, err := c.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "good", token)
	assert.NoError(t, c.Verify(ctx, token))

	_, err = c.Login(ctx, "admin", "nope")
	assert.Equal(t, "Invalid credentials", DetailOr(err, "x"))
	assert.Error(t, c.Verify(ctx, "forged"))
}
