package coins

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"coinpicker/internal/domain"
)

// maxBodyBytes caps the size of the coin list response
const maxBodyBytes = 16 << 20

// Source provides the coin list
type Source interface {
	Fetch(ctx context.Context) ([]domain.Coin, error)
}

// Client fetches the coin list from a remote HTTP endpoint
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a client for the given endpoint
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// URL returns the endpoint the client fetches from
func (c *Client) URL() string {
	return c.url
}

// Fetch issues a single GET and decodes the JSON array of coins
func (c *Client) Fetch(ctx context.Context) ([]domain.Coin, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coins: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little of the body so the connection can be reused
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return nil, fmt.Errorf("coin source returned status %d", resp.StatusCode)
	}

	var list []domain.Coin
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode coin list: %w", err)
	}

	return list, nil
}
