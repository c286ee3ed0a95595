package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/henrybloomingdale/pharmlit-cli/internal/report"
)

var (
	cyan = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	bold = lipgloss.NewStyle().Bold(true)
)

// Column display widths for the table mode.
const (
	titleWidth       = 50
	authorListWidth  = 30
	companyListWidth = 35
	emailWidth       = 30
)

// truncate cuts a string to maxLen runes, appending "…" if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-1]) + "…"
}

// summarizeList renders a multi-item list for a table cell: the first
// item truncated, with a "(+N more)" suffix when others are hidden.
func summarizeList(items []string, maxLen int) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return truncate(items[0], maxLen)
	default:
		return fmt.Sprintf("%s (+%d more)", truncate(items[0], maxLen/2), len(items)-1)
	}
}

// writeTable renders records as a rich terminal table.
func writeTable(w io.Writer, records []report.Record, total int) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No papers found with company affiliations.")
		return nil
	}

	writeHeader(w, len(records), total, func(s string) string { return bold.Render(s) })

	var rows [][]string
	for _, r := range records {
		rows = append(rows, []string{
			cyan.Render(r.PMID),
			truncate(r.Title, titleWidth),
			r.PublicationDate,
			summarizeList(r.NonAcademicAuthors, authorListWidth),
			summarizeList(r.CompanyAffiliations, companyListWidth),
			truncate(r.CorrespondingEmail, emailWidth),
		})
	}

	t := table.New().
		Headers("PubMed ID", "Title", "Date", "Non-academic Author(s)", "Company Affiliation(s)", "Email").
		Rows(rows...).
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
			}
			return lipgloss.NewStyle()
		})

	fmt.Fprintln(w, t.Render())
	return nil
}
