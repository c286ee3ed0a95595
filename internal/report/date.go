package report

import (
	"strings"

	"github.com/henrybloomingdale/pharmlit-cli/internal/pubmed"
)

// monthAbbrev maps numeric month strings to their display abbreviation.
// Unmapped numeric strings (e.g. zero-padded "05") pass through as-is.
var monthAbbrev = map[string]string{
	"1": "Jan", "2": "Feb", "3": "Mar", "4": "Apr", "5": "May", "6": "Jun",
	"7": "Jul", "8": "Aug", "9": "Sep", "10": "Oct", "11": "Nov", "12": "Dec",
}

// FormatDate renders a raw publication date as "Jan 15 2023",
// "Jan 2023" or "2023" depending on which components are present. A
// missing year yields NoDate regardless of month and day.
func FormatDate(d pubmed.PubDate) string {
	if d.Year == "" {
		return NoDate
	}

	month := d.Month
	if isDigits(month) {
		if abbr, ok := monthAbbrev[month]; ok {
			month = abbr
		}
	} else if month != "" {
		// Textual months arrive as "Jan", "jan" or "JANUARY"; reduce
		// to a capitalized 3-letter form.
		if len(month) > 3 {
			month = month[:3]
		}
		month = strings.ToUpper(month[:1]) + strings.ToLower(month[1:])
	}

	switch {
	case month != "" && d.Day != "":
		return month + " " + d.Day + " " + d.Year
	case month != "":
		return month + " " + d.Year
	default:
		return d.Year
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
