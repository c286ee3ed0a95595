package pubmed

import "strings"

// majorCompanies are pharmaceutical and biotech company names matched
// against the author-affiliation field.
var majorCompanies = []string{
	"pfizer", "moderna", "johnson johnson", "merck", "novartis", "roche",
	"bristol myers", "abbvie", "gilead", "amgen", "biogen", "regeneron",
	"eli lilly", "gsk", "glaxosmithkline", "astrazeneca", "sanofi",
	"takeda", "bayer", "boehringer ingelheim", "vertex", "celgene",
}

// companyTerms are generic industry indicators and organizational
// suffixes that show up in company affiliations.
var companyTerms = []string{
	"pharmaceutical", "pharmaceuticals", "pharma", "biotech",
	"biotechnology", "therapeutics", "biopharmaceutical",
	"inc", "ltd", "corp", "corporation", "company", "laboratories", "lab",
}

// academicExclusions are affiliation terms that mark academic
// institutions; records matching only these are filtered out at search
// time.
var academicExclusions = []string{
	"university", "college", "institute", "hospital",
	"medical center", "department", "school",
}

// BuildCompanyQuery wraps a free-text query with company-affiliation
// clauses: the original query AND'ed with an OR of company terms scoped
// to the [ad] (author affiliation) field, NOT'ed with an OR of academic
// institution terms. The matching is heuristic keyword search, not a
// company registry lookup.
func BuildCompanyQuery(query string) string {
	parts := make([]string, 0, len(majorCompanies)+len(companyTerms))
	for _, company := range majorCompanies {
		parts = append(parts, `"`+company+`"[ad]`)
	}
	for _, term := range companyTerms {
		parts = append(parts, term+"[ad]")
	}
	companyFilter := "(" + strings.Join(parts, " OR ") + ")"

	exclusions := make([]string, 0, len(academicExclusions))
	for _, term := range academicExclusions {
		exclusions = append(exclusions, `"`+term+`"[ad]`)
	}
	academicFilter := "NOT (" + strings.Join(exclusions, " OR ") + ")"

	return "(" + query + ") AND " + companyFilter + " " + academicFilter
}
