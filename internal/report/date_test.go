package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/henrybloomingdale/pharmlit-cli/internal/pubmed"
)

func TestFormatDate_YearOnly(t *testing.T) {
	assert.Equal(t, "2023", FormatDate(pubmed.PubDate{Year: "2023"}))
}

func TestFormatDate_NumericMonths(t *testing.T) {
	want := map[string]string{
		"1": "Jan", "2": "Feb", "3": "Mar", "4": "Apr", "5": "May", "6": "Jun",
		"7": "Jul", "8": "Aug", "9": "Sep", "10": "Oct", "11": "Nov", "12": "Dec",
	}
	for month, abbr := range want {
		t.Run(month, func(t *testing.T) {
			got := FormatDate(pubmed.PubDate{Year: "2023", Month: month, Day: "15"})
			assert.Equal(t, fmt.Sprintf("%s 15 2023", abbr), got)
		})
	}
}

func TestFormatDate_UnmappedNumericPassesThrough(t *testing.T) {
	// Zero-padded and out-of-range numerics are not in the table.
	assert.Equal(t, "05 2023", FormatDate(pubmed.PubDate{Year: "2023", Month: "05"}))
	assert.Equal(t, "13 2023", FormatDate(pubmed.PubDate{Year: "2023", Month: "13"}))
}

func TestFormatDate_TextualMonths(t *testing.T) {
	tests := []struct {
		month string
		want  string
	}{
		{"Jan", "Jan"},
		{"jan", "Jan"},
		{"JANUARY", "Jan"},
		{"december", "Dec"},
		{"May", "May"},
	}
	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			got := FormatDate(pubmed.PubDate{Year: "2023", Month: tt.month})
			assert.Equal(t, tt.want+" 2023", got)
		})
	}
}

func TestFormatDate_MonthAndDay(t *testing.T) {
	got := FormatDate(pubmed.PubDate{Year: "2023", Month: "1", Day: "15"})
	assert.Equal(t, "Jan 15 2023", got)
}

func TestFormatDate_MonthWithoutDay(t *testing.T) {
	got := FormatDate(pubmed.PubDate{Year: "2023", Month: "Jan"})
	assert.Equal(t, "Jan 2023", got)
}

func TestFormatDate_DayWithoutMonthIgnoresDay(t *testing.T) {
	got := FormatDate(pubmed.PubDate{Year: "2023", Day: "15"})
	assert.Equal(t, "2023", got)
}

func TestFormatDate_MissingYear(t *testing.T) {
	assert.Equal(t, NoDate, FormatDate(pubmed.PubDate{}))
	assert.Equal(t, NoDate, FormatDate(pubmed.PubDate{Month: "Jan", Day: "15"}))
	assert.Equal(t, NoDate, FormatDate(pubmed.PubDate{Month: "6"}))
}
