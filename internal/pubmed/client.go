package pubmed

import (
	"github.com/henrybloomingdale/pharmlit-cli/internal/ncbi"
)

// Client is an HTTP client for the PubMed ESearch and EFetch endpoints.
// It embeds ncbi.Client for rate limiting, common parameters, and
// response size guards.
type Client struct {
	*ncbi.Client
}

// NewClient creates a new PubMed client with the given options.
func NewClient(opts ...ncbi.Option) *Client {
	return &Client{Client: ncbi.NewClient(opts...)}
}

// NewClientWithBase creates a PubMed client using an existing base
// client, sharing its rate limiter.
func NewClientWithBase(base *ncbi.Client) *Client {
	return &Client{Client: base}
}
