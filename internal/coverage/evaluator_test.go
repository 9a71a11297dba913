package coverage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func amount(v int64) *int64 { return &v }

func day(offset int) string {
	return testNow.AddDate(0, 0, offset).Format(dateLayout)
}

func findingIDs(findings []Finding) []string {
	ids := make([]string, len(findings))
	for i, f := range findings {
		ids[i] = f.ID
	}
	return ids
}

func findByID(findings []Finding, id string) (Finding, bool) {
	for _, f := range findings {
		if f.ID == id {
			return f, true
		}
	}
	return Finding{}, false
}

func withClaimsContact(p Policy) Policy {
	p.Contacts = append(p.Contacts, Contact{Role: "claims", Phone: "1-800-555-0100"})
	return p
}

func TestAnalyzeGaps_EmptyPortfolio(t *testing.T) {
	findings := AnalyzeGapsAt(nil, UserContext{}, testNow)

	assert.Equal(t, []string{"consider_auto", "consider_property", "no_life"}, findingIDs(findings))
	for _, f := range findings {
		assert.Equal(t, SeverityInfo, f.Severity, f.ID)
		assert.Empty(t, f.PolicyID)
	}
}

func TestAnalyzeGaps_VehicleOwnerWithoutAutoPolicy(t *testing.T) {
	findings := AnalyzeGapsAt(nil, UserContext{HasVehicle: true}, testNow)

	f, ok := findByID(findings, "consider_auto")
	require.True(t, ok)
	assert.Equal(t, SeverityHigh, f.Severity)
	assert.Equal(t, "auto_liability", f.Category)
	assert.Equal(t, "consider_auto", findings[0].ID)
}

func TestAnalyzeGaps_PropertySeverity(t *testing.T) {
	tests := []struct {
		name string
		uc   UserContext
		want Severity
	}{
		{"homeowner", UserContext{IsHomeowner: true}, SeverityHigh},
		{"homeowner wins over renter", UserContext{IsHomeowner: true, IsRenter: true}, SeverityHigh},
		{"renter", UserContext{IsRenter: true}, SeverityMedium},
		{"unknown", UserContext{}, SeverityInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := findByID(AnalyzeGapsAt(nil, tt.uc, testNow), "consider_property")
			require.True(t, ok)
			assert.Equal(t, tt.want, f.Severity)
		})
	}
}

func TestAnalyzeGaps_RentersPolicySatisfiesProperty(t *testing.T) {
	policies := []Policy{withClaimsContact(Policy{ID: "r1", PolicyType: "renters", Carrier: "Lemonade"})}
	_, ok := findByID(AnalyzeGapsAt(policies, UserContext{IsRenter: true}, testNow), "consider_property")
	assert.False(t, ok)
}

func TestAnalyzeGaps_LifeWithDependents(t *testing.T) {
	f, ok := findByID(AnalyzeGapsAt(nil, UserContext{HasDependents: true}, testNow), "no_life")
	require.True(t, ok)
	assert.Equal(t, SeverityHigh, f.Severity)
}

func TestAnalyzeGaps_Umbrella(t *testing.T) {
	auto := withClaimsContact(Policy{ID: "a1", PolicyType: "auto", Carrier: "Geico", CoverageAmount: amount(300000)})
	life := withClaimsContact(Policy{ID: "l1", PolicyType: "life", Carrier: "MetLife", CoverageAmount: amount(500000)})
	umbrella := withClaimsContact(Policy{ID: "u1", PolicyType: "umbrella", Carrier: "Chubb", CoverageAmount: amount(1000000)})

	t.Run("single type and not wealthy", func(t *testing.T) {
		_, ok := findByID(AnalyzeGapsAt([]Policy{auto}, UserContext{}, testNow), "no_umbrella")
		assert.False(t, ok)
	})
	t.Run("two types", func(t *testing.T) {
		f, ok := findByID(AnalyzeGapsAt([]Policy{auto, life}, UserContext{}, testNow), "no_umbrella")
		require.True(t, ok)
		assert.Equal(t, SeverityMedium, f.Severity)
	})
	t.Run("high net worth without policies", func(t *testing.T) {
		f, ok := findByID(AnalyzeGapsAt(nil, UserContext{HighNetWorth: true}, testNow), "no_umbrella")
		require.True(t, ok)
		assert.Equal(t, SeverityHigh, f.Severity)
	})
	t.Run("umbrella present", func(t *testing.T) {
		_, ok := findByID(AnalyzeGapsAt([]Policy{auto, life, umbrella}, UserContext{HighNetWorth: true}, testNow), "no_umbrella")
		assert.False(t, ok)
	})
}

func TestAnalyzeGaps_BusinessClusterFromWorkersComp(t *testing.T) {
	policies := []Policy{{ID: "w1", PolicyType: "workers_comp", Carrier: "Hartford"}}
	findings := AnalyzeGapsAt(policies, UserContext{}, testNow)

	want := map[string]Severity{
		"no_gl":                     SeverityHigh,
		"no_cyber":                  SeverityMedium,
		"no_epli":                   SeverityMedium,
		"no_professional_liability": SeverityInfo,
	}
	for id, severity := range want {
		f, ok := findByID(findings, id)
		require.True(t, ok, id)
		assert.Equal(t, severity, f.Severity, id)
	}
	_, ok := findByID(findings, "unknown_coverage_w1")
	assert.False(t, ok, "workers comp limits are not tracked")
}

func TestAnalyzeGaps_BusinessOwnerWithoutPolicies(t *testing.T) {
	findings := AnalyzeGapsAt(nil, UserContext{OwnsBusiness: true}, testNow)

	for _, id := range []string{"no_gl", "no_cyber", "no_epli"} {
		f, ok := findByID(findings, id)
		require.True(t, ok, id)
		assert.Equal(t, SeverityHigh, f.Severity, id)
	}
}

func TestAnalyzeGaps_BusinessChecksNeedTrigger(t *testing.T) {
	findings := AnalyzeGapsAt(nil, UserContext{}, testNow)
	for _, id := range []string{"no_gl", "no_cyber", "no_epli", "no_professional_liability"} {
		_, ok := findByID(findings, id)
		assert.False(t, ok, id)
	}
}

func TestAnalyzeGaps_EPLIWithoutEmployees(t *testing.T) {
	policies := []Policy{withClaimsContact(Policy{ID: "c1", PolicyType: "cyber", Carrier: "Coalition", CoverageAmount: amount(1000000)})}
	findings := AnalyzeGapsAt(policies, UserContext{}, testNow)

	_, ok := findByID(findings, "no_epli")
	assert.False(t, ok)
	_, ok = findByID(findings, "no_cyber")
	assert.False(t, ok)
	_, ok = findByID(findings, "no_gl")
	assert.True(t, ok)
}

func TestAnalyzeGaps_BOPSatisfiesGeneralLiability(t *testing.T) {
	policies := []Policy{withClaimsContact(Policy{ID: "b1", PolicyType: "BOP", Carrier: "Next"})}
	_, ok := findByID(AnalyzeGapsAt(policies, UserContext{}, testNow), "no_gl")
	assert.False(t, ok)
}

func TestAnalyzeGaps_LowAutoLiabilityReportedOnce(t *testing.T) {
	policies := []Policy{
		withClaimsContact(Policy{ID: "a1", PolicyType: "auto", Carrier: "Geico", CoverageAmount: amount(50000)}),
		withClaimsContact(Policy{ID: "a2", PolicyType: "auto", Carrier: "Progressive", CoverageAmount: amount(75000)}),
	}
	findings := AnalyzeGapsAt(policies, UserContext{}, testNow)

	count := 0
	for _, f := range findings {
		if f.ID == "low_auto_liability" {
			count++
			assert.Equal(t, SeverityMedium, f.Severity)
			assert.Contains(t, f.Description, "$50,000")
		}
	}
	assert.Equal(t, 1, count)
}

func TestAnalyzeGaps_AutoLiabilityAtThreshold(t *testing.T) {
	policies := []Policy{withClaimsContact(Policy{ID: "a1", PolicyType: "auto", Carrier: "Geico", CoverageAmount: amount(100000)})}
	_, ok := findByID(AnalyzeGapsAt(policies, UserContext{}, testNow), "low_auto_liability")
	assert.False(t, ok)
}

func TestAnalyzeGaps_RenewalWindows(t *testing.T) {
	tests := []struct {
		offset   int
		wantID   string
		severity Severity
	}{
		{-1, "expired_p1", SeverityHigh},
		{0, "expiring_soon_p1", SeverityMedium},
		{10, "expiring_soon_p1", SeverityMedium},
		{14, "expiring_soon_p1", SeverityMedium},
		{15, "expiring_p1", SeverityLow},
		{25, "expiring_p1", SeverityLow},
		{30, "expiring_p1", SeverityLow},
	}
	for _, tt := range tests {
		t.Run(tt.wantID+"/"+day(tt.offset), func(t *testing.T) {
			p := withClaimsContact(Policy{ID: "p1", PolicyType: "life", Carrier: "MetLife", RenewalDate: day(tt.offset)})
			findings := AnalyzeGapsAt([]Policy{p}, UserContext{}, testNow)

			var renewals []Finding
			for _, f := range findings {
				if f.Category == CategoryRenewal {
					renewals = append(renewals, f)
				}
			}
			require.Len(t, renewals, 1)
			assert.Equal(t, tt.wantID, renewals[0].ID)
			assert.Equal(t, tt.severity, renewals[0].Severity)
			assert.Equal(t, "p1", renewals[0].PolicyID)
		})
	}
}

func TestAnalyzeGaps_RenewalOutsideWindowOrMalformed(t *testing.T) {
	for _, renewal := range []string{day(31), "next spring", "2026/11/01", ""} {
		p := withClaimsContact(Policy{ID: "p1", PolicyType: "life", Carrier: "MetLife", RenewalDate: renewal})
		for _, f := range AnalyzeGapsAt([]Policy{p}, UserContext{}, testNow) {
			assert.NotEqual(t, CategoryRenewal, f.Category, renewal)
		}
	}
}

func TestAnalyzeGaps_RenewalDescription(t *testing.T) {
	p := withClaimsContact(Policy{ID: "p1", PolicyType: "auto", Carrier: "Geico", CoverageAmount: amount(300000), RenewalDate: day(10)})
	f, ok := findByID(AnalyzeGapsAt([]Policy{p}, UserContext{}, testNow), "expiring_soon_p1")
	require.True(t, ok)
	assert.Equal(t, "Your Geico auto policy expires in 10 days.", f.Description)
}

func TestAnalyzeGaps_StaleHomeCoverage(t *testing.T) {
	p := withClaimsContact(Policy{
		ID:             "h1",
		PolicyType:     "home",
		Carrier:        "State Farm",
		CoverageAmount: amount(400000),
		CreatedAt:      "2022-10-18T10:00:00",
	})
	f, ok := findByID(AnalyzeGapsAt([]Policy{p}, UserContext{}, testNow), "stale_home_coverage_h1")
	require.True(t, ok)
	assert.Equal(t, SeverityMedium, f.Severity)
	assert.Equal(t, "dwelling_coverage", f.Category)
	assert.Equal(t,
		"Your home coverage ($400,000) hasn't been reviewed in 4 years. Construction costs have risen ~28% since then.",
		f.Description)
}

func TestAnalyzeGaps_StaleHomeCoverageSkipped(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
	}{
		{"recent", Policy{ID: "h1", PolicyType: "home", CoverageAmount: amount(400000), CreatedAt: day(-365 * 2)}},
		{"no amount", Policy{ID: "h1", PolicyType: "home", CreatedAt: "2015-01-01"}},
		{"malformed date", Policy{ID: "h1", PolicyType: "home", CoverageAmount: amount(400000), CreatedAt: "yesterday"}},
		{"not home", Policy{ID: "h1", PolicyType: "renters", CoverageAmount: amount(40000), CreatedAt: "2015-01-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := findByID(AnalyzeGapsAt([]Policy{tt.policy}, UserContext{}, testNow), "stale_home_coverage_h1")
			assert.False(t, ok)
		})
	}
}

func TestAnalyzeGaps_MissingClaimsContact(t *testing.T) {
	policies := []Policy{
		{ID: "p1", PolicyType: "life", Carrier: "MetLife"},
		{ID: "p2", PolicyType: "life", Carrier: "Prudential", Contacts: []Contact{{Role: "customer_service", Phone: "555-0101"}}},
		{ID: "p3", PolicyType: "life", Carrier: "Aflac", Contacts: []Contact{{Role: "claims"}}},
		{ID: "p4", PolicyType: "life", Carrier: "Aetna", Contacts: []Contact{{Role: "agent", Phone: "555-0102"}}},
		{ID: "p5", PolicyType: "life", Carrier: PendingExtractionCarrier},
	}
	findings := AnalyzeGapsAt(policies, UserContext{}, testNow)

	var got []string
	for _, f := range findings {
		if f.Category == CategoryPreparedness {
			got = append(got, f.ID)
			assert.Equal(t, SeverityLow, f.Severity)
		}
	}
	assert.Equal(t, []string{"no_claims_contact_p1", "no_claims_contact_p3", "no_claims_contact_p4"}, got)
}

func TestAnalyzeGaps_UnknownCoverageLimit(t *testing.T) {
	policies := []Policy{
		withClaimsContact(Policy{ID: "p1", PolicyType: "home", Carrier: "Allstate"}),
		withClaimsContact(Policy{ID: "p2", PolicyType: "cyber", Carrier: "Coalition", CoverageAmount: amount(0)}),
		withClaimsContact(Policy{ID: "p3", PolicyType: "life", Carrier: "MetLife"}),
		withClaimsContact(Policy{ID: "p4", PolicyType: "auto", Carrier: PendingExtractionCarrier}),
		withClaimsContact(Policy{ID: "p5", PolicyType: "umbrella", Carrier: "Chubb", CoverageAmount: amount(1000000)}),
		withClaimsContact(Policy{ID: "p6", PolicyType: "Auto", Carrier: "Geico"}),
	}
	findings := AnalyzeGapsAt(policies, UserContext{}, testNow)

	var got []string
	for _, f := range findings {
		if f.Category == CategoryIncompleteData {
			got = append(got, f.ID)
		}
	}
	assert.Equal(t, []string{"unknown_coverage_p1", "unknown_coverage_p2"}, got)

	f, _ := findByID(findings, "unknown_coverage_p1")
	assert.Equal(t, "Your Allstate home policy has no coverage limit recorded.", f.Description)
}

func TestAnalyzeGaps_FloodExclusionSuppressesReminder(t *testing.T) {
	p := withClaimsContact(Policy{
		ID:             "h1",
		PolicyType:     "home",
		Carrier:        "Allstate",
		CoverageAmount: amount(350000),
		Notes:          "Water: flood damage excluded",
	})
	findings := AnalyzeGapsAt([]Policy{p}, UserContext{}, testNow)

	f, ok := findByID(findings, "exclusion_flood_h1")
	require.True(t, ok)
	assert.Equal(t, SeverityInfo, f.Severity)
	assert.Equal(t, CategoryExclusionWarning, f.Category)

	_, ok = findByID(findings, "exclusion_flood_reminder_h1")
	assert.False(t, ok)
}

func TestAnalyzeGaps_FloodReminderWithoutExclusionText(t *testing.T) {
	policies := []Policy{
		withClaimsContact(Policy{ID: "h1", PolicyType: "home", Carrier: "Allstate", CoverageAmount: amount(350000)}),
		withClaimsContact(Policy{ID: "r1", PolicyType: "Renters", Carrier: "Lemonade", CoverageAmount: amount(30000)}),
		withClaimsContact(Policy{ID: "a1", PolicyType: "auto", Carrier: "Geico", CoverageAmount: amount(300000)}),
	}
	findings := AnalyzeGapsAt(policies, UserContext{}, testNow)

	for _, id := range []string{"exclusion_flood_reminder_h1", "exclusion_flood_reminder_r1"} {
		_, ok := findByID(findings, id)
		assert.True(t, ok, id)
	}
	_, ok := findByID(findings, "exclusion_flood_reminder_a1")
	assert.False(t, ok)
}

func TestAnalyzeGaps_ExclusionScan(t *testing.T) {
	policies := []Policy{
		withClaimsContact(Policy{
			ID:             "h1",
			PolicyType:     "home",
			Carrier:        "Allstate",
			CoverageAmount: amount(350000),
			Details: []Detail{
				{FieldName: "Exclusions", FieldValue: "Flooding, surface water, rising water"},
				{FieldName: "Sump Pump", FieldValue: "not covered"},
			},
		}),
		withClaimsContact(Policy{
			ID:             "a1",
			PolicyType:     "auto",
			Carrier:        "Geico",
			CoverageAmount: amount(300000),
			Notes:          "No rideshare or flood coverage",
		}),
	}
	findings := AnalyzeGapsAt(policies, UserContext{}, testNow)

	var got []string
	for _, f := range findings {
		if f.Category == CategoryExclusionWarning {
			got = append(got, f.ID)
		}
	}
	assert.Equal(t, []string{"exclusion_flood_h1", "exclusion_sewer_backup_h1", "exclusion_business_use_a1"}, got)
}

func TestAnalyzeGaps_UnknownPolicyTypeStillChecked(t *testing.T) {
	policies := []Policy{{ID: "x1", PolicyType: "boat", Carrier: "BoatUS", RenewalDate: day(-3)}}
	findings := AnalyzeGapsAt(policies, UserContext{}, testNow)

	_, ok := findByID(findings, "expired_x1")
	assert.True(t, ok)
	_, ok = findByID(findings, "no_claims_contact_x1")
	assert.True(t, ok)
	_, ok = findByID(findings, "unknown_coverage_x1")
	assert.False(t, ok)
}

func TestAnalyzeGaps_SeverityOrderingIsStable(t *testing.T) {
	policies := []Policy{
		{ID: "a1", PolicyType: "auto", Carrier: "Geico", CoverageAmount: amount(25000), RenewalDate: day(-2), Notes: "uber delivery"},
		{ID: "h1", PolicyType: "home", Carrier: "Allstate", RenewalDate: day(20), CreatedAt: "2019-05-01"},
		{ID: "w1", PolicyType: "workers_comp", Carrier: "Hartford", RenewalDate: day(5)},
	}
	uc := UserContext{HasDependents: true, OwnsBusiness: true}
	findings := AnalyzeGapsAt(policies, uc, testNow)
	require.NotEmpty(t, findings)

	for i := 1; i < len(findings); i++ {
		assert.LessOrEqual(t, findings[i-1].Severity.Rank(), findings[i].Severity.Rank(),
			"%s before %s", findings[i-1].ID, findings[i].ID)
	}

	var high []string
	for _, f := range findings {
		if f.Severity == SeverityHigh {
			high = append(high, f.ID)
		}
	}
	assert.Equal(t, []string{"no_life", "no_gl", "no_cyber", "no_epli", "expired_a1"}, high)
}

func TestAnalyzeGaps_Idempotent(t *testing.T) {
	policies := []Policy{
		{ID: "a1", PolicyType: "auto", Carrier: "Geico", CoverageAmount: amount(60000), RenewalDate: day(7)},
		{ID: "h1", PolicyType: "home", Carrier: "Allstate", Notes: "mold and mildew excluded"},
	}
	uc := UserContext{HasVehicle: true, IsHomeowner: true}

	first := AnalyzeGapsAt(policies, uc, testNow)
	second := AnalyzeGapsAt(policies, uc, testNow)
	assert.Equal(t, first, second)
}

func TestAnalyzeGaps_DoesNotMutateInput(t *testing.T) {
	policies := []Policy{
		{ID: "h1", PolicyType: "HOME", Carrier: "Allstate", Details: []Detail{{FieldName: "Flood", FieldValue: "excluded"}}},
	}
	AnalyzeGapsAt(policies, UserContext{}, testNow)
	assert.Equal(t, "HOME", policies[0].PolicyType)
	assert.Len(t, policies[0].Details, 1)
}

func TestFindingsForPolicy(t *testing.T) {
	policies := []Policy{
		{ID: "1", PolicyType: "home", Carrier: "Allstate"},
		{ID: "11", PolicyType: "life", Carrier: "MetLife"},
	}
	findings := AnalyzeGapsAt(policies, UserContext{}, testNow)

	scoped := FindingsForPolicy(findings, "1")
	require.NotEmpty(t, scoped)
	for _, f := range scoped {
		assert.Equal(t, "1", f.PolicyID)
		assert.True(t, strings.HasSuffix(f.ID, "_1"), f.ID)
	}
	assert.NotNil(t, FindingsForPolicy(findings, "missing"))
}

func TestSeverityRank(t *testing.T) {
	assert.Equal(t, 0, SeverityHigh.Rank())
	assert.Equal(t, 1, SeverityMedium.Rank())
	assert.Equal(t, 2, SeverityLow.Rank())
	assert.Equal(t, 3, SeverityInfo.Rank())
	assert.Equal(t, 4, Severity("critical").Rank())
}
