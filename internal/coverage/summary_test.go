package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeCoverage_Empty(t *testing.T) {
	s := SummarizeCoverage(nil)

	assert.Zero(t, s.TotalPolicies)
	assert.Empty(t, s.PolicyTypes)
	assert.Empty(t, s.CoveredCategories)
	assert.NotNil(t, s.MissingCategories)

	for _, cat := range Categories() {
		important := cat.Importance == ImportanceCritical || cat.Importance == ImportanceImportant
		assert.Equal(t, important, contains(s.MissingCategories, cat.ID), cat.ID)
	}
}

func TestSummarizeCoverage_Totals(t *testing.T) {
	policies := []Policy{
		{ID: "a1", PolicyType: "auto", CoverageAmount: amount(300000), PremiumAmount: amount(1200)},
		{ID: "a2", PolicyType: "Auto", CoverageAmount: amount(100000), PremiumAmount: amount(900)},
		{ID: "h1", PolicyType: "home", CoverageAmount: amount(450000)},
		{ID: "x1", PolicyType: "", PremiumAmount: amount(50)},
	}
	s := SummarizeCoverage(policies)

	assert.Equal(t, 4, s.TotalPolicies)
	assert.Equal(t, []string{"auto", "home", "other"}, s.PolicyTypes)
	assert.Equal(t, int64(850000), s.TotalCoverage)
	assert.Equal(t, int64(2150), s.TotalAnnualPremium)
	assert.Equal(t, int64(400000), s.AutoLiability)

	require.Contains(t, s.CoverageByType, "auto")
	assert.Equal(t, TypeBreakdown{Coverage: 400000, Premium: 2100, Count: 2}, s.CoverageByType["auto"])
	assert.Equal(t, TypeBreakdown{Coverage: 450000, Count: 1}, s.CoverageByType["home"])
	assert.Equal(t, TypeBreakdown{Premium: 50, Count: 1}, s.CoverageByType["other"])
}

func TestSummarizeCoverage_CoveredAndMissing(t *testing.T) {
	policies := []Policy{
		{ID: "a1", PolicyType: "auto"},
		{ID: "r1", PolicyType: "renters"},
	}
	s := SummarizeCoverage(policies)

	assert.Equal(t, []string{
		"auto_collision", "auto_comprehensive", "auto_liability", "home_liability",
		"medical_payments", "personal_property", "uninsured_motorist",
	}, s.CoveredCategories)

	assert.Equal(t, "umbrella_liability", s.MissingCategories[0])
	assert.Contains(t, s.MissingCategories, "dwelling_coverage")
	assert.Contains(t, s.MissingCategories, "life_insurance")
	assert.NotContains(t, s.MissingCategories, "auto_liability")
	assert.NotContains(t, s.MissingCategories, "medical_payments")
}

func TestSummarizeCoverage_CountsMatchPortfolio(t *testing.T) {
	policies := []Policy{
		{ID: "1", PolicyType: "life"},
		{ID: "2", PolicyType: "life"},
		{ID: "3", PolicyType: "cyber"},
		{ID: "4", PolicyType: "boat"},
	}
	s := SummarizeCoverage(policies)

	assert.Equal(t, len(policies), s.TotalPolicies)
	assert.Len(t, s.PolicyTypes, 3)

	count := 0
	for _, b := range s.CoverageByType {
		count += b.Count
	}
	assert.Equal(t, len(policies), count)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
