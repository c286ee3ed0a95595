package pubmed

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"github.com/henrybloomingdale/pharmlit-cli/internal/ncbi"
)

// XML structures for parsing PubMed EFetch responses. Each
// <PubmedArticle> is decoded independently, so a record with a missing
// title or id cannot shift fields onto its neighbors.

type pubmedArticleSet struct {
	XMLName  xml.Name        `xml:"PubmedArticleSet"`
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Citation medlineCitation `xml:"MedlineCitation"`
	// Raw keeps the record's inner XML so emails can be matched
	// anywhere in the record, not only in structured fields.
	Raw []byte `xml:",innerxml"`
}

type medlineCitation struct {
	PMID    xmlPMID    `xml:"PMID"`
	Article xmlArticle `xml:"Article"`
}

type xmlPMID struct {
	Value string `xml:",chardata"`
}

type xmlArticle struct {
	Journal      xmlJournal    `xml:"Journal"`
	ArticleTitle string        `xml:"ArticleTitle"`
	AuthorList   xmlAuthorList `xml:"AuthorList"`
}

type xmlJournal struct {
	JournalIssue xmlJournalIssue `xml:"JournalIssue"`
}

type xmlJournalIssue struct {
	PubDate xmlPubDate `xml:"PubDate"`
}

type xmlPubDate struct {
	Year  string `xml:"Year"`
	Month string `xml:"Month"`
	Day   string `xml:"Day"`
}

type xmlAuthorList struct {
	Authors []xmlAuthor `xml:"Author"`
}

type xmlAuthor struct {
	LastName        string               `xml:"LastName"`
	ForeName        string               `xml:"ForeName"`
	AffiliationInfo []xmlAffiliationInfo `xml:"AffiliationInfo"`
}

type xmlAffiliationInfo struct {
	Affiliation string `xml:"Affiliation"`
}

// emailPattern matches local@domain.tld substrings.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// Fetch retrieves article details for the given PMIDs as one bulk XML
// document and parses it into RawPapers. An empty PMID list is a no-op:
// it returns nil without issuing a network call.
func (c *Client) Fetch(ctx context.Context, pmids []string) ([]RawPaper, error) {
	if len(pmids) == 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("id", strings.Join(pmids, ","))
	params.Set("retmode", "xml")

	body, err := c.Get(ctx, "efetch.fcgi", params)
	if err != nil {
		return nil, err
	}

	papers, err := parsePapers(body)
	if err != nil {
		return nil, err
	}
	slog.Debug("efetch complete", "requested", len(pmids), "parsed", len(papers))
	return papers, nil
}

// parsePapers decodes a PubmedArticleSet document into RawPapers.
// Author blocks missing a last name or a fore name are dropped; a
// missing affiliation keeps the author with an empty affiliation
// string.
func parsePapers(data []byte) ([]RawPaper, error) {
	var set pubmedArticleSet
	if err := xml.Unmarshal(data, &set); err != nil {
		return nil, ncbi.NewAPIError(ncbi.ErrMalformed, "efetch.fcgi",
			fmt.Errorf("parsing PubMed XML: %w", err))
	}

	papers := make([]RawPaper, 0, len(set.Articles))
	for _, pa := range set.Articles {
		papers = append(papers, convertArticle(pa))
	}
	return papers, nil
}

func convertArticle(pa pubmedArticle) RawPaper {
	xa := pa.Citation.Article

	p := RawPaper{
		PMID:  pa.Citation.PMID.Value,
		Title: xa.ArticleTitle,
		Date: PubDate{
			Year:  xa.Journal.JournalIssue.PubDate.Year,
			Month: xa.Journal.JournalIssue.PubDate.Month,
			Day:   xa.Journal.JournalIssue.PubDate.Day,
		},
	}

	for _, au := range xa.AuthorList.Authors {
		// A block missing either name part (collective names,
		// incomplete entries) is dropped.
		if au.LastName == "" || au.ForeName == "" {
			continue
		}
		author := RawAuthor{
			LastName: au.LastName,
			ForeName: au.ForeName,
		}
		if len(au.AffiliationInfo) > 0 {
			author.Affiliation = strings.TrimSpace(au.AffiliationInfo[0].Affiliation)
		}
		p.Authors = append(p.Authors, author)
	}

	// Emails come from the record's raw bytes in order of appearance,
	// not deduplicated. The first one later becomes the corresponding
	// email heuristic.
	p.Emails = emailPattern.FindAllString(string(pa.Raw), -1)

	return p
}
