// Package output renders pharma-affiliation report records as plain
// text, a rich terminal table, CSV, or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/henrybloomingdale/pharmlit-cli/internal/report"
)

// Config controls which output mode is active.
type Config struct {
	JSON    bool   // structured JSON instead of text
	Human   bool   // rich terminal table with color
	CSVFile string // write results to this CSV path instead of text
}

// Write renders records according to cfg. With CSVFile set the records
// go to the file and a confirmation line to w; with JSON set they are
// encoded to w; with Human set they render as a rich table; otherwise
// they render as plain text. total is the full search hit count and is
// mentioned in the text headers when it exceeds the shown records.
func Write(w io.Writer, records []report.Record, total int, cfg Config) error {
	if cfg.CSVFile != "" {
		if err := writeCSV(cfg.CSVFile, records); err != nil {
			return fmt.Errorf("CSV export failed: %w", err)
		}
		fmt.Fprintf(w, "Results saved to %s\n", cfg.CSVFile)
		return nil
	}
	if cfg.JSON {
		return writeJSON(w, records)
	}
	if cfg.Human {
		return writeTable(w, records, total)
	}
	return writePlain(w, records, total)
}

// writeHeader prints the shared "Found N papers" line, noting the total
// hit count when the shown records are a truncated subset.
func writeHeader(w io.Writer, shown, total int, render func(string) string) {
	header := fmt.Sprintf("Found %d papers with pharmaceutical/biotech company affiliations", shown)
	if total > shown {
		header += fmt.Sprintf(" (of %d total matches)", total)
	}
	fmt.Fprintln(w, render(header+":"))
	fmt.Fprintln(w)
}

func writeJSON(w io.Writer, records []report.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}
