// Package coverage implements the coverage gap analysis engine: a static
// taxonomy of coverage categories and exclusions plus a procedural pass that
// classifies a policy portfolio and emits severity-ranked findings.
//
// Everything in this package is pure. Callers load and reshape their data into
// Policy values; nothing here performs I/O or keeps state between calls.
package coverage

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
	SeverityInfo   Severity = "info"
)

// Rank orders severities for sorting. Unknown values sort last.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	case SeverityInfo:
		return 3
	default:
		return 4
	}
}

type Importance string

const (
	ImportanceCritical    Importance = "critical"
	ImportanceImportant   Importance = "important"
	ImportanceRecommended Importance = "recommended"
)

// Synthetic finding categories that are not coverage categories.
const (
	CategoryRenewal          = "renewal"
	CategoryExclusionWarning = "exclusion_warning"
	CategoryPreparedness     = "preparedness"
	CategoryIncompleteData   = "incomplete_data"
)

// PendingExtractionCarrier marks a policy whose document has not been extracted yet.
const PendingExtractionCarrier = "Pending extraction..."

type Detail struct {
	FieldName  string `json:"field_name" yaml:"field_name"`
	FieldValue string `json:"field_value" yaml:"field_value"`
}

type Contact struct {
	Role  string `json:"role" yaml:"role"`
	Phone string `json:"phone" yaml:"phone"`
}

// Policy is one record of a portfolio. Nil pointers and empty strings mean the
// value is unknown, never that it is zero.
type Policy struct {
	ID             string    `json:"id" yaml:"id"`
	PolicyType     string    `json:"policy_type" yaml:"policy_type"`
	CoverageAmount *int64    `json:"coverage_amount,omitempty" yaml:"coverage_amount"`
	PremiumAmount  *int64    `json:"premium_amount,omitempty" yaml:"premium_amount"`
	Carrier        string    `json:"carrier" yaml:"carrier"`
	RenewalDate    string    `json:"renewal_date,omitempty" yaml:"renewal_date"`
	CreatedAt      string    `json:"created_at,omitempty" yaml:"created_at"`
	Details        []Detail  `json:"details" yaml:"details"`
	Contacts       []Contact `json:"contacts" yaml:"contacts"`
	Notes          string    `json:"notes,omitempty" yaml:"notes"`
}

// UserContext personalises severities. The zero value is the empty context.
type UserContext struct {
	HasVehicle    bool `json:"has_vehicle" yaml:"has_vehicle"`
	IsHomeowner   bool `json:"is_homeowner" yaml:"is_homeowner"`
	IsRenter      bool `json:"is_renter" yaml:"is_renter"`
	HasDependents bool `json:"has_dependents" yaml:"has_dependents"`
	HighNetWorth  bool `json:"high_net_worth" yaml:"high_net_worth"`
	OwnsBusiness  bool `json:"owns_business" yaml:"owns_business"`
}

type Finding struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Severity       Severity `json:"severity"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
	Category       string   `json:"category"`
	PolicyID       string   `json:"policy_id,omitempty"`
}

type CoverageCategory struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Importance     Importance `json:"importance"`
	TypicalSources []string   `json:"typical_sources"`
}

// GapRule documents a gap scenario. Condition is prose; the evaluator
// implements the scenarios procedurally.
type GapRule struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Severity       Severity `json:"severity"`
	Condition      string   `json:"condition"`
	Recommendation string   `json:"recommendation"`
}

type Exclusion struct {
	ID             string   `json:"id"`
	Keywords       []string `json:"keywords"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
	AppliesTo      []string `json:"applies_to"`
}

// TypeBreakdown is the per-policy-type subtotal of a Summary.
type TypeBreakdown struct {
	Coverage int64 `json:"coverage"`
	Premium  int64 `json:"premium"`
	Count    int   `json:"count"`
}

type Summary struct {
	TotalPolicies      int                      `json:"total_policies"`
	PolicyTypes        []string                 `json:"policy_types"`
	TotalCoverage      int64                    `json:"total_coverage"`
	TotalAnnualPremium int64                    `json:"total_annual_premium"`
	CoverageByType     map[string]TypeBreakdown `json:"coverage_by_type"`
	CoveredCategories  []string                 `json:"covered_categories"`
	MissingCategories  []string                 `json:"missing_categories"`
	AutoLiability      int64                    `json:"auto_liability_total"`
}
