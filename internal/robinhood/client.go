package robinhood

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"rhcli/internal/config"
)

// ErrNotAuthenticated is returned when a client is constructed without an
// API token.
var ErrNotAuthenticated = errors.New("robinhood: missing API token")

// Client is an authenticated Robinhood API client. It performs synchronous,
// blocking requests with a shared rate limiter; there is no retry or
// caching layer.
type Client struct {
	cfg     config.RobinhoodConfig
	http    *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewClient creates a client from configuration. The token must be present;
// session acquisition itself is outside this tool.
func NewClient(cfg config.RobinhoodConfig, logger *slog.Logger) (*Client, error) {
	if cfg.Token == "" {
		return nil, ErrNotAuthenticated
	}
	if logger == nil {
		logger = slog.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rps := cfg.RateLimit.RPS
	if rps <= 0 {
		rps = 5
	}
	burst := cfg.RateLimit.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  logger,
	}, nil
}

// endpoint joins a path onto the main API base URL.
func (c *Client) endpoint(path string) string {
	return strings.TrimSuffix(c.cfg.APIBaseURL, "/") + path
}

// cryptoEndpoint joins a path onto the crypto API base URL.
func (c *Client) cryptoEndpoint(path string) string {
	return strings.TrimSuffix(c.cfg.CryptoBaseURL, "/") + path
}

// get performs a single authenticated GET and decodes the JSON response
// into out. Non-2xx responses are errors; the body prefix is included to
// aid debugging.
func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", rawURL, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("request %s: unexpected status %d: %s", rawURL, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", rawURL, err)
	}

	c.logger.Debug("api request complete",
		slog.String("url", rawURL),
		slog.String("request_id", requestID),
		slog.Duration("duration", time.Since(start)))

	return nil
}

// paginated is the cursor-paginated list envelope the order history
// endpoints return.
type paginated[T any] struct {
	Next    *string `json:"next"`
	Results []T     `json:"results"`
}

// fetchAll follows next cursors from firstURL until exhausted and returns
// the aggregated results. Requests run strictly one at a time.
func fetchAll[T any](ctx context.Context, c *Client, firstURL string) ([]T, error) {
	var all []T
	next := firstURL
	for next != "" {
		var page paginated[T]
		if err := c.get(ctx, next, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Results...)
		if page.Next == nil {
			break
		}
		next = *page.Next
	}
	return all, nil
}
