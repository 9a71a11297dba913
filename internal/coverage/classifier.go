package coverage

import "strings"

// portfolioFacts is what the classifier derives from a portfolio.
type portfolioFacts struct {
	policyTypes    map[string]bool
	hasCoverages   map[string]bool
	totalLiability int64
}

func (f portfolioFacts) has(policyType string) bool {
	return f.policyTypes[policyType]
}

func (f portfolioFacts) hasAny(types map[string]bool) bool {
	for t := range f.policyTypes {
		if types[t] {
			return true
		}
	}
	return false
}

// classify never fails: missing or odd fields simply contribute nothing.
func classify(policies []Policy) portfolioFacts {
	facts := portfolioFacts{
		policyTypes:  make(map[string]bool),
		hasCoverages: make(map[string]bool),
	}

	for _, p := range policies {
		ptype := NormalizeType(p.PolicyType)
		facts.policyTypes[ptype] = true
		for _, cat := range policyCoverageMap[ptype] {
			facts.hasCoverages[cat] = true
		}

		if ptype == TypeAuto && p.CoverageAmount != nil {
			facts.totalLiability += *p.CoverageAmount
		}

		details := detailMap(p.Details)
		if details["uninsured_motorist"] != "" {
			facts.hasCoverages["uninsured_motorist"] = true
		}
		if details["roadside_assistance"] != "" {
			facts.hasCoverages["roadside"] = true
		}
	}

	return facts
}

// detailMap keys details by lower-cased field name; later entries win.
func detailMap(details []Detail) map[string]string {
	m := make(map[string]string, len(details))
	for _, d := range details {
		m[strings.ToLower(d.FieldName)] = d.FieldValue
	}
	return m
}
