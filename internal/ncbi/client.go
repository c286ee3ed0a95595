// Package ncbi provides the shared HTTP client for NCBI E-utilities.
// It owns rate limiting, the common tool/email/api_key parameters, the
// retry policy for transient 429 responses, and response size guards.
package ncbi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the NCBI E-utilities base URL.
	DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"
	// DefaultTool identifies this application to NCBI.
	DefaultTool = "pharmlit"
	// DefaultEmail is the contact email sent to NCBI.
	DefaultEmail = "pharmlit@users.noreply.github.com"

	// Rate limits per NCBI policy: 3 req/s without an API key (one
	// request every ~0.34s), 10 req/s with one.
	RateWithoutKey = 3
	RateWithKey    = 10

	// DefaultTimeout is the per-request ceiling.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxResponseBytes is the maximum response body size (50 MB).
	DefaultMaxResponseBytes int64 = 50 * 1024 * 1024

	// Retry policy for transient rate-limit responses.
	maxRetries    = 2
	baseRetryWait = 700 * time.Millisecond
	maxRetryWait  = 4 * time.Second
)

// Client is a rate-limited HTTP client for NCBI E-utilities. It is safe
// to reuse across sequential queries; the limiter also keeps concurrent
// use within NCBI's request-rate policy.
type Client struct {
	BaseURL    string
	APIKey     string
	Tool       string
	Email      string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	MaxBytes   int64
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the base URL for requests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.BaseURL = u }
}

// WithAPIKey sets the NCBI API key and raises the rate limit accordingly.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.APIKey = key
		if key != "" {
			c.Limiter = rate.NewLimiter(rate.Limit(RateWithKey), 1)
		}
	}
}

// WithTool sets the tool parameter for NCBI requests.
func WithTool(tool string) Option {
	return func(c *Client) { c.Tool = tool }
}

// WithEmail sets the contact email parameter for NCBI requests.
func WithEmail(email string) Option {
	return func(c *Client) { c.Email = email }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithMaxResponseBytes sets the maximum allowed response body size.
func WithMaxResponseBytes(n int64) Option {
	return func(c *Client) { c.MaxBytes = n }
}

// NewClient creates a new NCBI client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		BaseURL:  DefaultBaseURL,
		Tool:     DefaultTool,
		Email:    DefaultEmail,
		MaxBytes: DefaultMaxResponseBytes,
		Limiter:  rate.NewLimiter(rate.Limit(RateWithoutKey), 1),
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a rate-limited GET against the given endpoint with the
// common NCBI parameters added. All failures come back as *APIError.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if c.APIKey != "" {
		params.Set("api_key", c.APIKey)
	}
	if c.Tool != "" {
		params.Set("tool", c.Tool)
	}
	if c.Email != "" {
		params.Set("email", c.Email)
	}

	u, err := url.JoinPath(c.BaseURL, endpoint)
	if err != nil {
		return nil, NewAPIError(ErrNetwork, endpoint, fmt.Errorf("building URL: %w", err))
	}
	fullURL := u + "?" + params.Encode()

	for attempt := 0; attempt <= maxRetries; attempt++ {
		// The limiter wait is what spaces back-to-back requests; it
		// respects context cancellation.
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, NewAPIError(ErrNetwork, endpoint, fmt.Errorf("rate limit wait: %w", err))
		}

		slog.Debug("ncbi request", "endpoint", endpoint, "attempt", attempt)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, NewAPIError(ErrNetwork, endpoint, err)
		}

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			return nil, NewAPIError(ErrNetwork, endpoint, err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			if attempt >= maxRetries {
				resp.Body.Close()
				return nil, NewAPIError(ErrRateLimited, endpoint,
					fmt.Errorf("HTTP 429 after %d retries; an API key raises the limit to %d req/s", maxRetries, RateWithKey))
			}

			wait := retryAfterDuration(resp.Header.Get("Retry-After"))
			resp.Body.Close()
			if wait <= 0 {
				wait = baseRetryWait * time.Duration(1<<attempt)
				if wait > maxRetryWait {
					wait = maxRetryWait
				}
			}
			if err := sleepWithContext(ctx, wait); err != nil {
				return nil, NewAPIError(ErrNetwork, endpoint, fmt.Errorf("retry canceled: %w", err))
			}
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, NewAPIError(ErrHTTPStatus, endpoint, fmt.Errorf("HTTP %d", resp.StatusCode))
		}

		// Read up to MaxBytes+1 to detect oversized responses.
		r := io.LimitReader(resp.Body, c.MaxBytes+1)
		body, err := io.ReadAll(r)
		resp.Body.Close()
		if err != nil {
			return nil, NewAPIError(ErrNetwork, endpoint, fmt.Errorf("reading response: %w", err))
		}
		if int64(len(body)) > c.MaxBytes {
			return nil, NewAPIError(ErrMalformed, endpoint,
				fmt.Errorf("response exceeds maximum size of %d bytes", c.MaxBytes))
		}

		return body, nil
	}

	return nil, NewAPIError(ErrNetwork, endpoint, fmt.Errorf("unreachable request loop"))
}

func retryAfterDuration(v string) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}

	if secs, err := strconv.Atoi(v); err == nil {
		if secs > 0 {
			return time.Duration(secs) * time.Second
		}
		return 0
	}

	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}

	return 0
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
