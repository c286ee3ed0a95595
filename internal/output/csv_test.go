package output

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWrite_CSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")

	var buf bytes.Buffer
	err := Write(&buf, sampleRecords(), 1, Config{CSVFile: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), "Results saved to") {
		t.Errorf("expected confirmation message, got %q", buf.String())
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening CSV: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading CSV: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}

	header := rows[0]
	wantHeader := []string{
		"PubMed ID", "Title", "Publication Date",
		"Non-academic Author(s)", "Company Affiliation(s)",
		"Corresponding Author Email",
	}
	for i := range wantHeader {
		if header[i] != wantHeader[i] {
			t.Errorf("header[%d]: expected %q, got %q", i, wantHeader[i], header[i])
		}
	}

	row := rows[1]
	if row[0] != "12345" || row[1] != "Test Paper" || row[2] != "Jan 15 2023" {
		t.Errorf("unexpected row values: %v", row)
	}
	if row[3] != "John Doe; Jane Roe" {
		t.Errorf("expected semicolon-joined authors, got %q", row[3])
	}
	if row[4] != "Pfizer Inc.; Moderna Inc." {
		t.Errorf("expected semicolon-joined affiliations, got %q", row[4])
	}
	if row[5] != "test@pfizer.com" {
		t.Errorf("expected email column, got %q", row[5])
	}
}

func TestWrite_CSVEmptyRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	var buf bytes.Buffer
	if err := Write(&buf, nil, 0, Config{CSVFile: path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening CSV: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected header only, got %d rows", len(rows))
	}
}

func TestWrite_CSVBadPath(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, sampleRecords(), 1, Config{CSVFile: filepath.Join(t.TempDir(), "missing", "out.csv")})
	if err == nil {
		t.Error("expected error for unwritable path")
	}
}
