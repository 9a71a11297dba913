package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxonomy_MapReferencesKnownCategories(t *testing.T) {
	for ptype, cats := range policyCoverageMap {
		assert.True(t, IsKnownPolicyType(ptype), ptype)
		for _, cat := range cats {
			_, ok := Category(cat)
			assert.True(t, ok, "%s maps to unknown category %s", ptype, cat)
		}
	}
}

func TestTaxonomy_EveryTypeExceptOtherIsMapped(t *testing.T) {
	for _, ptype := range PolicyTypes() {
		if ptype == TypeOther {
			continue
		}
		_, ok := policyCoverageMap[ptype]
		assert.True(t, ok, ptype)
	}
}

func TestTaxonomy_CategorySourcesAreKnownTypes(t *testing.T) {
	seen := make(map[string]bool)
	for _, cat := range Categories() {
		assert.False(t, seen[cat.ID], "duplicate category %s", cat.ID)
		seen[cat.ID] = true
		for _, src := range cat.TypicalSources {
			assert.True(t, IsKnownPolicyType(src), "%s lists unknown source %s", cat.ID, src)
		}
	}
	assert.Len(t, seen, 18)
}

func TestTaxonomy_ExclusionsApplyToKnownTypes(t *testing.T) {
	ids := make([]string, 0)
	for _, excl := range Exclusions() {
		ids = append(ids, excl.ID)
		require.NotEmpty(t, excl.Keywords, excl.ID)
		for _, ptype := range excl.AppliesTo {
			assert.True(t, IsKnownPolicyType(ptype), ptype)
		}
	}
	assert.Equal(t, []string{"flood", "earthquake", "sewer_backup", "mold", "wear_and_tear", "business_use", "intentional_acts"}, ids)
}

func TestPolicyCoverages(t *testing.T) {
	assert.Equal(t, []string{"general_liability", "commercial_property"}, PolicyCoverages("BOP"))
	assert.Empty(t, PolicyCoverages("workers_comp"))
	assert.Empty(t, PolicyCoverages("boat"))

	got := PolicyCoverages("life")
	got[0] = "mutated"
	assert.Equal(t, []string{"life_insurance"}, PolicyCoverages("life"))
}

func TestIsKnownPolicyType(t *testing.T) {
	assert.True(t, IsKnownPolicyType("auto"))
	assert.True(t, IsKnownPolicyType("General_Liability"))
	assert.True(t, IsKnownPolicyType("other"))
	assert.False(t, IsKnownPolicyType("boat"))
	assert.False(t, IsKnownPolicyType(""))
}

func TestGapRules(t *testing.T) {
	rules := GapRules()
	require.Len(t, rules, 10)
	assert.Equal(t, "no_auto_with_vehicle", rules[0].ID)
	assert.Equal(t, "renewal_approaching", rules[9].ID)
}

func TestClassify(t *testing.T) {
	policies := []Policy{
		{ID: "a1", PolicyType: "AUTO", CoverageAmount: amount(100000), Details: []Detail{
			{FieldName: "Uninsured_Motorist", FieldValue: "100/300"},
			{FieldName: "roadside_assistance", FieldValue: "yes"},
			{FieldName: "roadside_assistance", FieldValue: ""},
		}},
		{ID: "a2", PolicyType: "auto", CoverageAmount: amount(50000)},
		{ID: "w1", PolicyType: "workers_comp"},
	}
	facts := classify(policies)

	assert.True(t, facts.has(TypeAuto))
	assert.True(t, facts.has(TypeWorkersComp))
	assert.True(t, facts.hasAny(businessTypes))
	assert.Equal(t, int64(150000), facts.totalLiability)
	assert.True(t, facts.hasCoverages["uninsured_motorist"])
	assert.False(t, facts.hasCoverages["roadside"], "the later empty detail wins")
	assert.True(t, facts.hasCoverages["auto_liability"])
}
