package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/henrybloomingdale/pharmlit-cli/internal/report"
)

// writePlain renders records as the default plain-text listing, one
// block per paper.
func writePlain(w io.Writer, records []report.Record, total int) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No papers found with company affiliations.")
		return nil
	}

	writeHeader(w, len(records), total, func(s string) string { return s })

	for i, r := range records {
		if i > 0 {
			fmt.Fprintf(w, "\n%s\n\n", strings.Repeat("─", 80))
		}

		fmt.Fprintf(w, "PMID: %s\n", r.PMID)
		fmt.Fprintf(w, "Title: %s\n", r.Title)
		fmt.Fprintf(w, "Date: %s\n", r.PublicationDate)
		if len(r.NonAcademicAuthors) > 0 {
			fmt.Fprintf(w, "Non-academic Author(s): %s\n", strings.Join(r.NonAcademicAuthors, ", "))
		}
		if len(r.CompanyAffiliations) > 0 {
			fmt.Fprintf(w, "Company Affiliation(s): %s\n", strings.Join(r.CompanyAffiliations, "; "))
		}
		fmt.Fprintf(w, "Email: %s\n", r.CorrespondingEmail)
	}

	return nil
}
