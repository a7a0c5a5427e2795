package ipgeo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"store-locator/internal/types"
)

// No API keys: every configured provider must be usable anonymously.
// Sample request: https://ipinfo.io/json -> {"ip":"..","loc":"1.3521,103.8198",..}

var (
	ErrNoProviders = errors.New("no ip geolocation providers configured")
	// ErrExhausted means every configured provider failed or returned an
	// unusable coordinate.
	ErrExhausted = errors.New("all ip geolocation providers failed")
)

// Provider is one IP-geolocation service in the fallback order.
type Provider struct {
	Name  string
	URL   string
	Shape Shape
}

type Client struct {
	httpClient *http.Client
	providers  []Provider
	timeout    time.Duration
	logger     *slog.Logger
}

// NewClient creates a client that tries providers strictly in order, giving
// each at most timeout before moving on.
func NewClient(providers []Provider, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		providers:  providers,
		timeout:    timeout,
		logger:     logger,
	}
}

// Locate returns the coordinate of the caller's network address according to
// the first provider that answers with a parseable, in-range coordinate.
// Providers are tried sequentially, never raced, keeping request volume
// minimal at a worst-case latency of len(providers) x timeout.
func (c *Client) Locate(ctx context.Context) (types.Coords, error) {
	if len(c.providers) == 0 {
		return types.Coords{}, ErrNoProviders
	}

	for _, p := range c.providers {
		if err := ctx.Err(); err != nil {
			return types.Coords{}, err
		}

		coords, err := c.lookup(ctx, p)
		if err != nil {
			// A malformed or out-of-range payload is a provider failure,
			// not a hard error; the chain continues.
			c.logger.Warn("ip provider failed", "provider", p.Name, "error", err)
			continue
		}

		c.logger.Info("ip geolocation resolved",
			"provider", p.Name,
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
		)
		return coords, nil
	}

	return types.Coords{}, ErrExhausted
}

func (c *Client) lookup(ctx context.Context, p Provider) (types.Coords, error) {
	extract, ok := extractors[p.Shape]
	if !ok {
		return types.Coords{}, fmt.Errorf("unknown payload shape %q", p.Shape)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, p.URL, nil)
	if err != nil {
		return types.Coords{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.Coords{}, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return types.Coords{}, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return types.Coords{}, fmt.Errorf("failed to decode response: %w", err)
	}

	coords, err := extract(payload)
	if err != nil {
		return types.Coords{}, err
	}

	if err := coords.Validate(); err != nil {
		return types.Coords{}, fmt.Errorf("provider returned out-of-range coordinate: %w", err)
	}

	return coords, nil
}
