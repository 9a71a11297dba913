package coverage

import (
	"fmt"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	lowAutoLiabilityLimit   = 100000
	renewalUrgentDays       = 14
	renewalApproachingDays  = 30
	staleHomeCoverageYears  = 3
	constructionCostPerYear = 7
	dateLayout              = "2006-01-02"
)

// Policy types whose coverage limit is worth recording.
var limitTrackedTypes = map[string]bool{
	TypeAuto:                  true,
	TypeHome:                  true,
	TypeUmbrella:              true,
	TypeLiability:             true,
	TypeGeneralLiability:      true,
	TypeProfessionalLiability: true,
	TypeCommercialProperty:    true,
	TypeCyber:                 true,
}

// AnalyzeGaps evaluates a portfolio against today's date.
func AnalyzeGaps(policies []Policy, uc UserContext) []Finding {
	return AnalyzeGapsAt(policies, uc, time.Now())
}

// AnalyzeGapsAt evaluates every gap rule against the portfolio and returns
// the findings ordered by severity. Findings of equal severity keep the
// order in which the rules produced them.
func AnalyzeGapsAt(policies []Policy, uc UserContext, now time.Time) []Finding {
	facts := classify(policies)
	today := civilDate(now)

	findings := make([]Finding, 0, 8+2*len(policies))
	findings = append(findings, personalGaps(facts, uc)...)
	findings = append(findings, businessGaps(facts, uc)...)
	if f, ok := lowAutoLiability(policies); ok {
		findings = append(findings, f)
	}
	for _, p := range policies {
		if f, ok := renewalFinding(p, today); ok {
			findings = append(findings, f)
		}
	}
	for _, p := range policies {
		if f, ok := staleHomeCoverage(p, today); ok {
			findings = append(findings, f)
		}
	}
	for _, p := range policies {
		if f, ok := missingClaimsContact(p); ok {
			findings = append(findings, f)
		}
	}
	for _, p := range policies {
		if f, ok := unknownCoverageLimit(p); ok {
			findings = append(findings, f)
		}
	}

	exclusionFindings, hits := scanExclusions(policies)
	findings = append(findings, exclusionFindings...)
	findings = append(findings, floodReminders(policies, hits)...)

	sortBySeverity(findings)
	return findings
}

// FindingsForPolicy keeps the findings scoped to one policy.
func FindingsForPolicy(findings []Finding, policyID string) []Finding {
	out := make([]Finding, 0)
	for _, f := range findings {
		if f.PolicyID == policyID {
			out = append(out, f)
		}
	}
	return out
}

func sortBySeverity(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Severity.Rank() < findings[j].Severity.Rank()
	})
}

func personalGaps(facts portfolioFacts, uc UserContext) []Finding {
	var findings []Finding

	if !facts.has(TypeAuto) {
		severity := SeverityInfo
		if uc.HasVehicle {
			severity = SeverityHigh
		}
		findings = append(findings, Finding{
			ID:             "consider_auto",
			Name:           "Auto Insurance",
			Severity:       severity,
			Description:    "No auto policy on file. If you own or lease a vehicle, you need auto insurance.",
			Recommendation: "Add your auto policy to track coverage and renewals.",
			Category:       "auto_liability",
		})
	}

	if !facts.has(TypeHome) && !facts.has(TypeRenters) {
		severity := SeverityInfo
		switch {
		case uc.IsHomeowner:
			severity = SeverityHigh
		case uc.IsRenter:
			severity = SeverityMedium
		}
		findings = append(findings, Finding{
			ID:             "consider_property",
			Name:           "Property Insurance",
			Severity:       severity,
			Description:    "No home or renters policy on file.",
			Recommendation: "Homeowners need dwelling coverage. Renters should have renters insurance to protect belongings.",
			Category:       "personal_property",
		})
	}

	if !facts.has(TypeLife) {
		severity := SeverityInfo
		if uc.HasDependents {
			severity = SeverityHigh
		}
		findings = append(findings, Finding{
			ID:             "no_life",
			Name:           "Life Insurance",
			Severity:       severity,
			Description:    "No life insurance policy on file.",
			Recommendation: "Life insurance provides financial security for your loved ones. Term life is an affordable option.",
			Category:       "life_insurance",
		})
	}

	// Only worth raising for wealthy users or anyone with a multi-line portfolio.
	if !facts.has(TypeUmbrella) && !facts.has(TypeLiability) &&
		(uc.HighNetWorth || len(facts.policyTypes) >= 2) {
		severity := SeverityMedium
		if uc.HighNetWorth {
			severity = SeverityHigh
		}
		findings = append(findings, Finding{
			ID:             "no_umbrella",
			Name:           "Umbrella Coverage",
			Severity:       severity,
			Description:    "No umbrella/excess liability policy.",
			Recommendation: "An umbrella policy provides additional liability coverage above your auto and home limits. Protects your assets from lawsuits.",
			Category:       "umbrella_liability",
		})
	}

	return findings
}

func businessGaps(facts portfolioFacts, uc UserContext) []Finding {
	if !facts.hasAny(businessTypes) && !uc.OwnsBusiness {
		return nil
	}

	var findings []Finding

	if !facts.has(TypeGeneralLiability) && !facts.has(TypeBOP) {
		findings = append(findings, Finding{
			ID:             "no_gl",
			Name:           "No General Liability",
			Severity:       SeverityHigh,
			Description:    "No general liability or BOP policy on file. GL is the foundation of business insurance.",
			Recommendation: "General liability covers third-party injury and property damage claims. Required by most contracts and leases.",
			Category:       "general_liability",
		})
	}

	ownerSeverity := SeverityMedium
	if uc.OwnsBusiness {
		ownerSeverity = SeverityHigh
	}

	if !facts.has(TypeCyber) {
		findings = append(findings, Finding{
			ID:             "no_cyber",
			Name:           "No Cyber Coverage",
			Severity:       ownerSeverity,
			Description:    "No cyber liability policy on file.",
			Recommendation: "Cyber insurance covers data breaches, ransomware, and response costs. A growing risk for all businesses.",
			Category:       "cyber_liability",
		})
	}

	// Workers' comp maps to no category but still signals employees.
	if !facts.has(TypeEPLI) && (facts.has(TypeWorkersComp) || uc.OwnsBusiness) {
		findings = append(findings, Finding{
			ID:             "no_epli",
			Name:           "No Employment Practices Liability",
			Severity:       ownerSeverity,
			Description:    "No EPLI coverage on file.",
			Recommendation: "EPLI covers wrongful termination, discrimination, and harassment claims, risks not covered by workers' comp.",
			Category:       "employment_practices",
		})
	}

	if !facts.has(TypeProfessionalLiability) {
		findings = append(findings, Finding{
			ID:             "no_professional_liability",
			Name:           "Professional Liability (E&O)",
			Severity:       SeverityInfo,
			Description:    "No professional liability policy on file.",
			Recommendation: "If your business provides professional services or advice, E&O insurance protects against negligence claims.",
			Category:       "professional_liability",
		})
	}

	return findings
}

// lowAutoLiability reports the first auto policy with a limit under 100k.
func lowAutoLiability(policies []Policy) (Finding, bool) {
	for _, p := range policies {
		if NormalizeType(p.PolicyType) != TypeAuto || p.CoverageAmount == nil {
			continue
		}
		amount := *p.CoverageAmount
		if amount > 0 && amount < lowAutoLiabilityLimit {
			return Finding{
				ID:             "low_auto_liability",
				Name:           "Low Auto Liability Limit",
				Severity:       SeverityMedium,
				Description:    fmt.Sprintf("Your auto liability limit (%s) may be insufficient.", formatMoney(amount)),
				Recommendation: "Consider increasing to at least $100,000/$300,000. Medical costs and lawsuits can easily exceed low limits.",
				Category:       "auto_liability",
			}, true
		}
	}
	return Finding{}, false
}

func renewalFinding(p Policy, today time.Time) (Finding, bool) {
	if p.RenewalDate == "" {
		return Finding{}, false
	}
	renewal, err := time.Parse(dateLayout, p.RenewalDate)
	if err != nil {
		return Finding{}, false
	}

	daysUntil := daysBetween(today, renewal)
	label := carrierLabel(p) + " " + p.PolicyType

	switch {
	case daysUntil < 0:
		return Finding{
			ID:             "expired_" + p.ID,
			Name:           "Policy Expired",
			Severity:       SeverityHigh,
			Description:    fmt.Sprintf("Your %s policy has expired.", label),
			Recommendation: "Renew immediately to avoid coverage lapses.",
			Category:       CategoryRenewal,
			PolicyID:       p.ID,
		}, true
	case daysUntil <= renewalUrgentDays:
		return Finding{
			ID:             "expiring_soon_" + p.ID,
			Name:           "Renewal Urgent",
			Severity:       SeverityMedium,
			Description:    fmt.Sprintf("Your %s policy expires in %d days.", label, daysUntil),
			Recommendation: "Review coverage and renew before expiration.",
			Category:       CategoryRenewal,
			PolicyID:       p.ID,
		}, true
	case daysUntil <= renewalApproachingDays:
		return Finding{
			ID:             "expiring_" + p.ID,
			Name:           "Renewal Approaching",
			Severity:       SeverityLow,
			Description:    fmt.Sprintf("Your %s policy expires in %d days.", label, daysUntil),
			Recommendation: "Good time to review coverage and shop around.",
			Category:       CategoryRenewal,
			PolicyID:       p.ID,
		}, true
	}
	return Finding{}, false
}

// staleHomeCoverage flags dwelling limits set three or more years ago.
func staleHomeCoverage(p Policy, today time.Time) (Finding, bool) {
	if NormalizeType(p.PolicyType) != TypeHome || p.CoverageAmount == nil || *p.CoverageAmount <= 0 {
		return Finding{}, false
	}
	if len(p.CreatedAt) < len(dateLayout) {
		return Finding{}, false
	}
	created, err := time.Parse(dateLayout, p.CreatedAt[:len(dateLayout)])
	if err != nil {
		return Finding{}, false
	}

	yearsOld := float64(daysBetween(created, today)) / 365
	if yearsOld < staleHomeCoverageYears {
		return Finding{}, false
	}
	increase := int(yearsOld * constructionCostPerYear)

	return Finding{
		ID:       "stale_home_coverage_" + p.ID,
		Name:     "Home Coverage Review Needed",
		Severity: SeverityMedium,
		Description: fmt.Sprintf("Your home coverage (%s) hasn't been reviewed in %d years. Construction costs have risen ~%d%% since then.",
			formatMoney(*p.CoverageAmount), int(yearsOld), increase),
		Recommendation: "Contact your agent to review dwelling coverage. You may be underinsured if rebuild costs have increased.",
		Category:       "dwelling_coverage",
		PolicyID:       p.ID,
	}, true
}

func missingClaimsContact(p Policy) (Finding, bool) {
	if p.Carrier == PendingExtractionCarrier {
		return Finding{}, false
	}
	for _, c := range p.Contacts {
		if (c.Role == "claims" || c.Role == "customer_service") && c.Phone != "" {
			return Finding{}, false
		}
	}
	return Finding{
		ID:             "no_claims_contact_" + p.ID,
		Name:           "Missing Claims Contact",
		Severity:       SeverityLow,
		Description:    fmt.Sprintf("Your %s policy has no claims phone number on file.", carrierLabel(p)),
		Recommendation: "Add the claims phone number so you're ready if you need to file a claim.",
		Category:       CategoryPreparedness,
		PolicyID:       p.ID,
	}, true
}

// unknownCoverageLimit treats a zero limit the same as a missing one. The
// policy type must match a tracked type exactly, without case folding.
func unknownCoverageLimit(p Policy) (Finding, bool) {
	if p.Carrier == PendingExtractionCarrier {
		return Finding{}, false
	}
	if p.CoverageAmount != nil && *p.CoverageAmount != 0 {
		return Finding{}, false
	}
	if !limitTrackedTypes[p.PolicyType] {
		return Finding{}, false
	}
	return Finding{
		ID:             "unknown_coverage_" + p.ID,
		Name:           "Unknown Coverage Limit",
		Severity:       SeverityLow,
		Description:    fmt.Sprintf("Your %s %s policy has no coverage limit recorded.", carrierLabel(p), p.PolicyType),
		Recommendation: "Add your coverage limit to better understand your protection level.",
		Category:       CategoryIncompleteData,
		PolicyID:       p.ID,
	}, true
}

func carrierLabel(p Policy) string {
	if p.Carrier == "" {
		return "policy"
	}
	return p.Carrier
}

func formatMoney(amount int64) string {
	return "$" + humanize.Comma(amount)
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole days from a to b; both must be UTC midnights.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
