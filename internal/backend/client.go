package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/c2n2p/portal/internal/domain"
	"github.com/c2n2p/portal/internal/middleware"
)

// SeedPath is the demo-data seeding endpoint on the platform backend.
const SeedPath = "/seed-bengaluru"

const maxBodyBytes = 1 << 20

// Config configures the backend client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client talks to the platform backend's status and seeding endpoints.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient builds a client rooted at cfg.BaseURL.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("backend: base url is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  httpClient,
	}, nil
}

// BaseURL returns the configured backend root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type statusResponse struct {
	Message string `json:"message"`
}

// Status fetches the backend root and returns its message field. The HTTP
// status code is not inspected; only the body shape matters.
func (c *Client) Status(ctx context.Context) (string, error) {
	body, err := c.do(ctx, http.MethodGet, "/")
	if err != nil {
		return "", err
	}
	var resp statusResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("backend: decode status: %w: %v", domain.ErrMalformedResponse, err)
	}
	if resp.Message == "" {
		return "", domain.ErrNoStatusMessage
	}
	return resp.Message, nil
}

// Seed asks the backend to create its demo data. The acknowledgement body
// has no defined schema and is returned as raw JSON.
func (c *Client) Seed(ctx context.Context) (json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodPost, SeedPath)
	if err != nil {
		return nil, err
	}
	var ack json.RawMessage
	if err := json.Unmarshal(body, &ack); err != nil {
		return nil, fmt.Errorf("backend: decode seed ack: %w: %v", domain.ErrMalformedResponse, err)
	}
	return ack, nil
}

func (c *Client) do(ctx context.Context, method, path string) ([]byte, error) {
	target := c.baseURL + path
	if path == "/" {
		target = c.baseURL
	}
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("backend: %s %s: %w: %v", method, path, domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("backend: read body: %w: %v", domain.ErrBackendUnavailable, err)
	}
	return body, nil
}
