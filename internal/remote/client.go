// Package remote is a thin client for the hosted trip API. It is independent of
// the local trip store; nothing reconciles the two.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/directory"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
)

// HTTPClient is the subset of *http.Client the Client needs.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Client talks to the trip API at baseURL.
//
// Transport failures are reported as directory.ErrNetwork and any non-2xx
// status or undecodable body as directory.ErrInvalidResponse, both wrapped.
type Client struct {
	httpClient HTTPClient
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the API root, e.g. "https://api.example.com/v1".
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient replaces the default 15s-timeout http.Client.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient returns a Client. Without WithBaseURL it targets a local server.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    "http://localhost:3000",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateTrip submits trip and returns the server's stored representation.
func (c *Client) CreateTrip(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	body, err := json.Marshal(trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("remote.Client.CreateTrip: %w", err)
	}
	var out domain.Trip
	if err := c.do(ctx, http.MethodPost, "/trips", bytes.NewReader(body), &out); err != nil {
		return domain.Trip{}, fmt.Errorf("remote.Client.CreateTrip: %w", err)
	}
	return out, nil
}

// ListTrips returns the server's current trip list.
func (c *Client) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	var out []domain.Trip
	if err := c.do(ctx, http.MethodGet, "/trips", nil, &out); err != nil {
		return nil, fmt.Errorf("remote.Client.ListTrips: %w", err)
	}
	if out == nil {
		out = []domain.Trip{}
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", directory.ErrNetwork, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", directory.ErrInvalidResponse, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", directory.ErrNetwork, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", directory.ErrInvalidResponse, err)
	}
	return nil
}
