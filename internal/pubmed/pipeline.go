package pubmed

import (
	"context"
	"log/slog"
)

// FindOptions configures a FindPapers run.
type FindOptions struct {
	// Limit caps the number of PMIDs requested from ESearch.
	Limit int
	// Prefilter wraps the query with company-affiliation clauses
	// before searching.
	Prefilter bool
}

// FindResult is the outcome of a FindPapers run. Total is the full
// ESearch hit count, which can exceed len(Papers) when the limit
// truncated the id list.
type FindResult struct {
	Papers []RawPaper
	Total  int
}

// FindPapers runs the search-then-fetch pipeline: expand the query,
// search for PMIDs, then fetch and parse their details. A search with
// zero matching ids returns an empty result without invoking the fetch
// endpoint.
func (c *Client) FindPapers(ctx context.Context, query string, opts FindOptions) (*FindResult, error) {
	term := query
	if opts.Prefilter {
		term = BuildCompanyQuery(query)
		slog.Debug("query expanded", "original", query, "enhanced", term)
	}

	result, err := c.Search(ctx, term, opts.Limit)
	if err != nil {
		return nil, err
	}
	if len(result.IDs) == 0 {
		return &FindResult{Total: result.Count}, nil
	}

	papers, err := c.Fetch(ctx, result.IDs)
	if err != nil {
		return nil, err
	}
	return &FindResult{Papers: papers, Total: result.Count}, nil
}
