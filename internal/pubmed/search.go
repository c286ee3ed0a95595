package pubmed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/henrybloomingdale/pharmlit-cli/internal/ncbi"
)

// esearchResponse represents the raw JSON response from ESearch. Result
// is a pointer so a response missing the esearchresult field can be told
// apart from an empty one.
type esearchResponse struct {
	Result *esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}

// Search performs an ESearch query against PubMed, sorted by relevance,
// and returns up to limit PMIDs in ranked order.
func (c *Client) Search(ctx context.Context, term string, limit int) (*SearchResult, error) {
	if term == "" {
		return nil, fmt.Errorf("search term cannot be empty")
	}
	if limit <= 0 {
		limit = 20
	}

	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("term", term)
	params.Set("retmax", strconv.Itoa(limit))
	params.Set("retmode", "json")
	params.Set("sort", "relevance")

	body, err := c.Get(ctx, "esearch.fcgi", params)
	if err != nil {
		return nil, err
	}

	var resp esearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, ncbi.NewAPIError(ncbi.ErrMalformed, "esearch.fcgi",
			fmt.Errorf("parsing search response: %w", err))
	}
	if resp.Result == nil {
		return nil, ncbi.NewAPIError(ncbi.ErrMalformed, "esearch.fcgi",
			fmt.Errorf("response missing esearchresult field"))
	}

	count, _ := strconv.Atoi(resp.Result.Count)
	slog.Debug("esearch complete", "term", term, "count", count, "returned", len(resp.Result.IDList))

	return &SearchResult{
		Count: count,
		IDs:   resp.Result.IDList,
	}, nil
}
