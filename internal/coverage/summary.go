package coverage

import "sort"

// SummarizeCoverage computes portfolio totals, the summed auto liability
// limits and the critical or important categories no policy provides. It ignores user context on purpose; only
// the gap rules personalise.
func SummarizeCoverage(policies []Policy) Summary {
	byType := make(map[string]TypeBreakdown)
	var totalCoverage, totalPremium int64

	for _, p := range policies {
		ptype := NormalizeType(p.PolicyType)
		if ptype == "" {
			ptype = TypeOther
		}

		var coverage, premium int64
		if p.CoverageAmount != nil {
			coverage = *p.CoverageAmount
		}
		if p.PremiumAmount != nil {
			premium = *p.PremiumAmount
		}
		totalCoverage += coverage
		totalPremium += premium

		b := byType[ptype]
		b.Coverage += coverage
		b.Premium += premium
		b.Count++
		byType[ptype] = b
	}

	types := make([]string, 0, len(byType))
	covered := make(map[string]bool)
	for ptype := range byType {
		types = append(types, ptype)
		for _, cat := range policyCoverageMap[ptype] {
			covered[cat] = true
		}
	}
	sort.Strings(types)

	coveredList := make([]string, 0, len(covered))
	for cat := range covered {
		coveredList = append(coveredList, cat)
	}
	sort.Strings(coveredList)

	missing := make([]string, 0)
	for _, cat := range coverageCategories {
		if covered[cat.ID] {
			continue
		}
		if cat.Importance == ImportanceCritical || cat.Importance == ImportanceImportant {
			missing = append(missing, cat.ID)
		}
	}

	return Summary{
		AutoLiability:      classify(policies).totalLiability,
		TotalPolicies:      len(policies),
		PolicyTypes:        types,
		TotalCoverage:      totalCoverage,
		TotalAnnualPremium: totalPremium,
		CoverageByType:     byType,
		CoveredCategories:  coveredList,
		MissingCategories:  missing,
	}
}
