package dto

import "keeps/internal/coverage"

type GapAnalysisResponse struct {
	Gaps        []coverage.Finding `json:"gaps"`
	Summary     coverage.Summary   `json:"summary"`
	PolicyCount int                `json:"policy_count"`
}

type PolicyGapsResponse struct {
	Gaps     []coverage.Finding `json:"gaps"`
	PolicyID string             `json:"policy_id"`
}

type BusinessGapsResponse struct {
	BusinessName string             `json:"business_name"`
	Policies     []PolicyResponse   `json:"policies"`
	Gaps         []coverage.Finding `json:"gaps"`
	Summary      coverage.Summary   `json:"summary"`
	Contacts     []ContactResponse  `json:"contacts"`
}

type TaxonomyResponse struct {
	PolicyTypes []string                    `json:"policy_types"`
	Categories  []coverage.CoverageCategory `json:"categories"`
	GapRules    []coverage.GapRule          `json:"gap_rules"`
	Exclusions  []coverage.Exclusion        `json:"exclusions"`
}
