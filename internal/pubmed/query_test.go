package pubmed

import (
	"strings"
	"testing"
)

func TestBuildCompanyQuery_Structure(t *testing.T) {
	got := BuildCompanyQuery("cancer therapy")

	if !strings.HasPrefix(got, "(cancer therapy) AND (") {
		t.Errorf("expected parenthesized query AND'ed with filter, got %q", got)
	}
	if !strings.Contains(got, "AND (") {
		t.Error("expected 'AND (' company clause")
	}
	if !strings.Contains(got, "NOT (") {
		t.Error("expected 'NOT (' academic exclusion clause")
	}
	if !strings.Contains(got, "[ad]") {
		t.Error("expected [ad] affiliation field tags")
	}
}

func TestBuildCompanyQuery_CompanyClauses(t *testing.T) {
	got := BuildCompanyQuery("diabetes")

	for _, want := range []string{
		`"pfizer"[ad]`,
		`"astrazeneca"[ad]`,
		`pharmaceutical[ad]`,
		`therapeutics[ad]`,
		`inc[ad]`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected query to contain %q, got %q", want, got)
		}
	}
}

func TestBuildCompanyQuery_AcademicExclusions(t *testing.T) {
	got := BuildCompanyQuery("diabetes")

	notIdx := strings.Index(got, "NOT (")
	if notIdx < 0 {
		t.Fatalf("no NOT clause in %q", got)
	}
	exclusion := got[notIdx:]
	for _, want := range []string{`"university"[ad]`, `"hospital"[ad]`, `"medical center"[ad]`} {
		if !strings.Contains(exclusion, want) {
			t.Errorf("expected exclusion clause to contain %q, got %q", want, exclusion)
		}
	}
}

func TestBuildCompanyQuery_OrJoined(t *testing.T) {
	got := BuildCompanyQuery("x")
	if strings.Count(got, " OR ") < len(majorCompanies)+len(companyTerms)-1 {
		t.Errorf("company terms not OR-joined: %q", got)
	}
}
