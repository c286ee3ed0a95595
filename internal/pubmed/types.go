// Package pubmed queries NCBI PubMed via E-utilities and parses article
// records for the pharma-affiliation pipeline.
package pubmed

import "strings"

// SearchResult holds the outcome of an ESearch query.
type SearchResult struct {
	Count int      `json:"count"`
	IDs   []string `json:"ids"`
}

// RawPaper is the per-record intermediate parse result of an EFetch
// response, before date normalization and affiliation aggregation.
type RawPaper struct {
	PMID    string      `json:"pmid"`
	Title   string      `json:"title"`
	Authors []RawAuthor `json:"authors"`
	Date    PubDate     `json:"date"`
	// Emails holds every email-shaped substring found anywhere in the
	// record, in order of first appearance, duplicates included.
	Emails []string `json:"emails,omitempty"`
}

// RawAuthor is one author block with its first listed affiliation.
type RawAuthor struct {
	LastName    string `json:"last_name"`
	ForeName    string `json:"fore_name"`
	Affiliation string `json:"affiliation,omitempty"`
}

// Name returns "ForeName LastName", trimmed.
func (a RawAuthor) Name() string {
	return strings.TrimSpace(a.ForeName + " " + a.LastName)
}

// PubDate holds raw publication date components; any may be empty.
type PubDate struct {
	Year  string `json:"year,omitempty"`
	Month string `json:"month,omitempty"`
	Day   string `json:"day,omitempty"`
}
