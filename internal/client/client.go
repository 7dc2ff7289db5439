// Package client is the HTTP client for the catalog API, used by the
// bundled terminal frontend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"foodiehaven/internal/model"

	"github.com/andybalholm/brotli"
)

type Client struct {
	client  *http.Client
	baseURL string
}

func New(baseURL string) *Client {
	return &Client{
		client: &http.Client{
			Transport: &headerTransport{Base: http.DefaultTransport},
			Timeout:   10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// APIError is the service's {"error": ...} envelope plus the HTTP status.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// NotFound reports whether the error is the service's 404 signal.
func NotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusNotFound
}

// headerTransport asks for JSON and brotli on every request.
type headerTransport struct {
	Base http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "br")
	return t.Base.RoundTrip(req)
}

func (c *Client) List(ctx context.Context) ([]model.Food, error) {
	var foods []model.Food
	if err := c.do(ctx, http.MethodGet, "/api/foods", nil, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (c *Client) Get(ctx context.Context, id string) (*model.Food, error) {
	var food model.Food
	if err := c.do(ctx, http.MethodGet, "/api/foods/"+url.PathEscape(id), nil, &food); err != nil {
		return nil, err
	}
	return &food, nil
}

func (c *Client) Create(ctx context.Context, in model.FoodInput) (*model.Food, error) {
	var food model.Food
	if err := c.do(ctx, http.MethodPost, "/api/foods", &in, &food); err != nil {
		return nil, err
	}
	return &food, nil
}

func (c *Client) Update(ctx context.Context, id string, in model.FoodInput) (*model.Food, error) {
	var food model.Food
	if err := c.do(ctx, http.MethodPut, "/api/foods/"+url.PathEscape(id), &in, &food); err != nil {
		return nil, err
	}
	return &food, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/foods/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Search(ctx context.Context, query string) ([]model.Food, error) {
	var foods []model.Food
	if err := c.do(ctx, http.MethodGet, "/api/foods/search/"+url.PathEscape(query), nil, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}

	if resp.Header.Get("Content-Encoding") == "br" {
		resp.Body = &readCloserWrapper{Reader: brotli.NewReader(resp.Body), Closer: resp.Body}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = fmt.Sprintf("unexpected status code: %d", resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

type readCloserWrapper struct {
	io.Reader
	io.Closer
}

func (r *readCloserWrapper) Read(p []byte) (n int, err error) {
	return r.Reader.Read(p)
}

func (r *readCloserWrapper) Close() error {
	return r.Closer.Close()
}
