// Package github fetches the authenticated user's profile from the
// GitHub API. The fetch is the application's only outbound call.
package github

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// DefaultEndpoint is the profile endpoint queried when no override is
// configured.
const DefaultEndpoint = "https://api.github.com/user"

// Fetcher retrieves the raw profile payload for a token. The TUI and
// tests substitute mocks behind this interface.
type Fetcher interface {
	FetchProfile(ctx context.Context, token string) (string, error)
}

// Client is the real Fetcher backed by net/http.
type Client struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewClient creates a profile client for the given endpoint. An empty
// endpoint selects DefaultEndpoint; a nil httpClient selects
// http.DefaultClient, which deliberately carries no timeout. A nil
// logger discards log output.
func NewClient(endpoint string, httpClient *http.Client, logger *slog.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{endpoint: endpoint, client: httpClient, logger: logger}
}

// FetchProfile issues a GET to the profile endpoint with the token in
// the Authorization header and returns the raw response body. Any
// transport error or non-2xx status is an error; callers display a
// placeholder and do not distinguish failure modes.
func (c *Client) FetchProfile(ctx context.Context, token string) (string, error) {
	log := c.logger.With("request_id", uuid.NewString())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Authorization", "token "+token)

	log.Debug("fetching profile", "endpoint", c.endpoint)

	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn("profile request failed", "error", err)
		return "", fmt.Errorf("profile request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("profile request rejected", "status", resp.Status)
		return "", fmt.Errorf("profile request returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read profile response: %w", err)
	}

	log.Debug("profile fetched", "bytes", len(body))
	return string(body), nil
}
