// Package apiclient talks to the storefront backend REST API.
//
// Every call is a single round trip: no retries, no caching. Admin mutations carry the
// bearer token handed in by the caller; the client never stores it.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ErrNotFound is returned when the backend answers 404 for a single resource.
var ErrNotFound = errors.New("resource not found")

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status int
	Detail string // backend "detail" field, empty when the body had none
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// DetailOr returns the backend-provided detail carried by err, or fallback when there is none.
func DetailOr(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

// Client is a thin wrapper over the backend's /api routes.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

// New builds a Client for backendURL (the host, without the /api suffix).
func New(backendURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(backendURL, "/") + "/api",
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log: logger,
	}
}

// BaseURL returns the resolved API root, e.g. http://backend:8001/api.
func (c *Client) BaseURL() string { return c.baseURL }

// errorBody matches the error envelope of the backend. Detail is raw because validation
// failures carry a list instead of a string.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// do sends one request. body is JSON-encoded when non-nil; out is decoded when non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debugf("APIClient: %s %s", method, target)
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Errorf("APIClient: %s %s failed: %v", method, path, err)
		return fmt.Errorf("failed to reach backend for %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Detail: readDetail(resp.Body)}
		c.log.Warnf("APIClient: %s %s returned %d (%s)", method, path, resp.StatusCode, apiErr.Detail)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Errorf("APIClient: failed to decode %s %s response: %v", method, path, err)
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

func readDetail(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err != nil || len(eb.Detail) == 0 {
		return ""
	}
	var detail string
	if err := json.Unmarshal(eb.Detail, &detail); err != nil {
		return ""
	}
	return detail
}

func notFoundAs(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, DetailOr(err, "not found"))
	}
	return err
}

// Health calls GET /api/health.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, "", nil, nil)
}
