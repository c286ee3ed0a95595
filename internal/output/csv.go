package output

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/henrybloomingdale/pharmlit-cli/internal/report"
)

// csvHeader matches the table columns; list columns are
// semicolon-joined in full, not summarized.
var csvHeader = []string{
	"PubMed ID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// writeCSV exports records to path, one row per record.
func writeCSV(path string, records []report.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	rows := [][]string{csvHeader}
	for _, r := range records {
		rows = append(rows, []string{
			r.PMID,
			r.Title,
			r.PublicationDate,
			strings.Join(r.NonAcademicAuthors, "; "),
			strings.Join(r.CompanyAffiliations, "; "),
			r.CorrespondingEmail,
		})
	}

	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
