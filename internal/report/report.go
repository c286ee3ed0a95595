// Package report assembles parsed PubMed records into the output rows
// of the pharma-affiliation report.
package report

import (
	"github.com/henrybloomingdale/pharmlit-cli/internal/pubmed"
)

const (
	// NoDate is the placeholder for records without a publication year.
	NoDate = "Date not available"
	// NoEmail is the placeholder when a record contains no
	// email-shaped text.
	NoEmail = "Email Unable to Retrieve"
)

// Record is one row of the report: a paper attributed to
// pharmaceutical/biotech company authors.
type Record struct {
	PMID                string   `json:"pubmed_id"`
	Title               string   `json:"title"`
	PublicationDate     string   `json:"publication_date"`
	NonAcademicAuthors  []string `json:"non_academic_authors"`
	CompanyAffiliations []string `json:"company_affiliations"`
	CorrespondingEmail  string   `json:"corresponding_email"`
}

// Build converts raw papers into report records, one per paper.
func Build(papers []pubmed.RawPaper) []Record {
	records := make([]Record, 0, len(papers))
	for _, p := range papers {
		records = append(records, buildRecord(p))
	}
	return records
}

func buildRecord(p pubmed.RawPaper) Record {
	var names []string
	for _, a := range p.Authors {
		if name := a.Name(); name != "" {
			names = append(names, name)
		}
	}

	return Record{
		PMID:                p.PMID,
		Title:               p.Title,
		PublicationDate:     FormatDate(p.Date),
		NonAcademicAuthors:  names,
		CompanyAffiliations: dedupAffiliations(p.Authors),
		CorrespondingEmail:  CorrespondingEmail(p.Emails),
	}
}

// CorrespondingEmail picks the first extracted email, or NoEmail when
// the record contained none. First-match is a heuristic: the source
// markup does not reliably tag the corresponding author.
func CorrespondingEmail(emails []string) string {
	if len(emails) == 0 {
		return NoEmail
	}
	return emails[0]
}

// dedupAffiliations returns the non-empty affiliation strings in
// insertion order, first appearance wins. The order is deliberate so
// table and CSV output stay deterministic across runs.
func dedupAffiliations(authors []pubmed.RawAuthor) []string {
	seen := make(map[string]struct{}, len(authors))
	var affiliations []string
	for _, a := range authors {
		if a.Affiliation == "" {
			continue
		}
		if _, ok := seen[a.Affiliation]; ok {
			continue
		}
		seen[a.Affiliation] = struct{}{}
		affiliations = append(affiliations, a.Affiliation)
	}
	return affiliations
}
