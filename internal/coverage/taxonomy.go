package coverage

import "strings"

// Policy types understood by the taxonomy.
const (
	TypeAuto                  = "auto"
	TypeHome                  = "home"
	TypeRenters               = "renters"
	TypeLife                  = "life"
	TypeUmbrella              = "umbrella"
	TypeLiability             = "liability"
	TypeGeneralLiability      = "general_liability"
	TypeProfessionalLiability = "professional_liability"
	TypeCommercialProperty    = "commercial_property"
	TypeCommercialAuto        = "commercial_auto"
	TypeCyber                 = "cyber"
	TypeBOP                   = "bop"
	TypeWorkersComp           = "workers_comp"
	TypeDirectorsOfficers     = "directors_officers"
	TypeEPLI                  = "epli"
	TypeInlandMarine          = "inland_marine"
	TypeDisability            = "disability"
	TypeFlood                 = "flood"
	TypeEarthquake            = "earthquake"
	TypeOther                 = "other"
)

var policyTypes = []string{
	TypeAuto, TypeHome, TypeRenters, TypeLife, TypeUmbrella, TypeLiability,
	TypeGeneralLiability, TypeProfessionalLiability, TypeCommercialProperty,
	TypeCommercialAuto, TypeCyber, TypeBOP, TypeWorkersComp, TypeDirectorsOfficers,
	TypeEPLI, TypeInlandMarine, TypeDisability, TypeFlood, TypeEarthquake, TypeOther,
}

// businessTypes activate the business-insurance checks.
var businessTypes = map[string]bool{
	TypeGeneralLiability:      true,
	TypeProfessionalLiability: true,
	TypeCommercialProperty:    true,
	TypeCommercialAuto:        true,
	TypeCyber:                 true,
	TypeBOP:                   true,
	TypeDirectorsOfficers:     true,
	TypeEPLI:                  true,
	TypeInlandMarine:          true,
	TypeWorkersComp:           true,
}

// Workers' comp, flood, earthquake and inland marine provide no modelled category.
var policyCoverageMap = map[string][]string{
	TypeAuto:                  {"auto_liability", "auto_collision", "auto_comprehensive", "medical_payments", "uninsured_motorist"},
	TypeHome:                  {"dwelling_coverage", "personal_property", "home_liability", "medical_payments"},
	TypeRenters:               {"personal_property", "home_liability"},
	TypeLife:                  {"life_insurance"},
	TypeUmbrella:              {"umbrella_liability"},
	TypeLiability:             {"umbrella_liability"},
	TypeDisability:            {"disability_income"},
	TypeFlood:                 {},
	TypeEarthquake:            {},
	TypeWorkersComp:           {},
	TypeGeneralLiability:      {"general_liability"},
	TypeProfessionalLiability: {"professional_liability"},
	TypeCommercialProperty:    {"commercial_property"},
	TypeCommercialAuto:        {"commercial_auto_liability"},
	TypeCyber:                 {"cyber_liability"},
	TypeBOP:                   {"general_liability", "commercial_property"},
	TypeDirectorsOfficers:     {"directors_officers"},
	TypeEPLI:                  {"employment_practices"},
	TypeInlandMarine:          {},
}

var coverageCategories = []CoverageCategory{
	// Liability
	{ID: "auto_liability", Name: "Auto Liability", Description: "Covers damage/injury you cause to others while driving", Importance: ImportanceCritical, TypicalSources: []string{TypeAuto}},
	{ID: "home_liability", Name: "Home Liability", Description: "Covers injury to others on your property or damage you cause", Importance: ImportanceCritical, TypicalSources: []string{TypeHome, TypeRenters}},
	{ID: "umbrella_liability", Name: "Umbrella/Excess Liability", Description: "Additional liability coverage above auto/home limits", Importance: ImportanceImportant, TypicalSources: []string{TypeUmbrella, TypeLiability}},

	// Property
	{ID: "dwelling_coverage", Name: "Dwelling Coverage", Description: "Covers repair/rebuild of your home structure", Importance: ImportanceCritical, TypicalSources: []string{TypeHome}},
	{ID: "personal_property", Name: "Personal Property", Description: "Covers your belongings (furniture, electronics, clothes)", Importance: ImportanceImportant, TypicalSources: []string{TypeHome, TypeRenters}},
	{ID: "auto_collision", Name: "Auto Collision", Description: "Covers damage to your car from accidents", Importance: ImportanceImportant, TypicalSources: []string{TypeAuto}},
	{ID: "auto_comprehensive", Name: "Auto Comprehensive", Description: "Covers non-collision damage (theft, weather, animals)", Importance: ImportanceImportant, TypicalSources: []string{TypeAuto}},

	// Life and income
	{ID: "life_insurance", Name: "Life Insurance", Description: "Provides financial support to dependents if you pass away", Importance: ImportanceCritical, TypicalSources: []string{TypeLife}},
	{ID: "disability_income", Name: "Disability Income", Description: "Replaces income if you can't work due to illness/injury", Importance: ImportanceImportant, TypicalSources: []string{TypeDisability}},

	// Medical
	{ID: "medical_payments", Name: "Medical Payments", Description: "Covers medical bills regardless of fault", Importance: ImportanceRecommended, TypicalSources: []string{TypeAuto, TypeHome}},
	{ID: "uninsured_motorist", Name: "Uninsured/Underinsured Motorist", Description: "Covers you if hit by uninsured driver", Importance: ImportanceImportant, TypicalSources: []string{TypeAuto}},

	// Business
	{ID: "general_liability", Name: "General Liability", Description: "Covers third-party bodily injury and property damage claims against your business", Importance: ImportanceCritical, TypicalSources: []string{TypeGeneralLiability, TypeBOP}},
	{ID: "professional_liability", Name: "Professional Liability (E&O)", Description: "Covers claims of professional negligence, errors, or omissions", Importance: ImportanceCritical, TypicalSources: []string{TypeProfessionalLiability}},
	{ID: "commercial_property", Name: "Commercial Property", Description: "Covers business property, equipment, and inventory", Importance: ImportanceCritical, TypicalSources: []string{TypeCommercialProperty, TypeBOP}},
	{ID: "commercial_auto_liability", Name: "Commercial Auto", Description: "Covers business vehicles and commercial driving liability", Importance: ImportanceImportant, TypicalSources: []string{TypeCommercialAuto}},
	{ID: "cyber_liability", Name: "Cyber Liability", Description: "Covers data breaches, ransomware, and cyber incidents", Importance: ImportanceImportant, TypicalSources: []string{TypeCyber}},
	{ID: "directors_officers", Name: "Directors & Officers", Description: "Protects company leadership from personal liability in management decisions", Importance: ImportanceImportant, TypicalSources: []string{TypeDirectorsOfficers}},
	{ID: "employment_practices", Name: "Employment Practices Liability", Description: "Covers claims of wrongful termination, discrimination, and harassment", Importance: ImportanceImportant, TypicalSources: []string{TypeEPLI}},
}

var categoryIndex = func() map[string]int {
	idx := make(map[string]int, len(coverageCategories))
	for i, c := range coverageCategories {
		idx[c.ID] = i
	}
	return idx
}()

var gapRules = []GapRule{
	{
		ID:             "no_auto_with_vehicle",
		Name:           "No Auto Insurance",
		Description:    "You appear to have a vehicle but no auto insurance policy",
		Severity:       SeverityHigh,
		Condition:      "has_vehicle AND NOT has_auto_policy",
		Recommendation: "Auto liability insurance is legally required in most states. Add an auto policy immediately.",
	},
	{
		ID:             "no_home_as_owner",
		Name:           "No Homeowners Insurance",
		Description:    "You own a home but don't have homeowners insurance",
		Severity:       SeverityHigh,
		Condition:      "is_homeowner AND NOT has_home_policy",
		Recommendation: "Your home is likely your largest asset. Homeowners insurance protects against fire, theft, liability, and more.",
	},
	{
		ID:             "no_renters_as_renter",
		Name:           "No Renters Insurance",
		Description:    "You rent your home but don't have renters insurance",
		Severity:       SeverityMedium,
		Condition:      "is_renter AND NOT has_renters_policy",
		Recommendation: "Renters insurance is inexpensive and covers your belongings plus liability. Highly recommended.",
	},
	{
		ID:             "no_life_with_dependents",
		Name:           "No Life Insurance with Dependents",
		Description:    "You have dependents but no life insurance",
		Severity:       SeverityHigh,
		Condition:      "has_dependents AND NOT has_life_policy",
		Recommendation: "Life insurance ensures your family is financially protected. Consider term life for affordable coverage.",
	},
	{
		ID:             "no_umbrella_high_assets",
		Name:           "No Umbrella Coverage",
		Description:    "Your assets exceed your liability coverage limits",
		Severity:       SeverityMedium,
		Condition:      "high_net_worth AND NOT has_umbrella_policy",
		Recommendation: "An umbrella policy provides extra liability protection above your auto/home limits. Protects your savings and future earnings from lawsuits.",
	},
	{
		ID:             "low_liability_limits",
		Name:           "Low Liability Limits",
		Description:    "Your liability coverage may be insufficient for your assets",
		Severity:       SeverityMedium,
		Condition:      "auto_liability_under_100k OR home_liability_under_300k",
		Recommendation: "Consider increasing liability limits. A serious accident could exceed your coverage and put your assets at risk.",
	},
	{
		ID:             "no_uninsured_motorist",
		Name:           "No Uninsured Motorist Coverage",
		Description:    "You're not protected if hit by an uninsured driver",
		Severity:       SeverityMedium,
		Condition:      "has_auto_policy AND NOT has_uninsured_motorist",
		Recommendation: "About 13% of drivers are uninsured. UM/UIM coverage protects you and is usually inexpensive.",
	},
	{
		ID:             "no_roadside",
		Name:           "No Roadside Assistance",
		Description:    "You don't have roadside assistance coverage",
		Severity:       SeverityLow,
		Condition:      "has_auto_policy AND NOT has_roadside",
		Recommendation: "Roadside assistance covers towing, flat tires, lockouts. Often just a few dollars per month.",
	},
	{
		ID:             "high_deductible_low_savings",
		Name:           "High Deductible Risk",
		Description:    "Your deductible may be higher than your emergency fund",
		Severity:       SeverityLow,
		Condition:      "deductible_exceeds_emergency_fund",
		Recommendation: "Ensure you can cover your deductible in an emergency. Consider lowering it if needed.",
	},
	{
		ID:             "renewal_approaching",
		Name:           "Policy Renewal Approaching",
		Description:    "A policy is expiring soon - time to review coverage",
		Severity:       SeverityLow,
		Condition:      "renewal_within_30_days",
		Recommendation: "Review your coverage before renewal. Shop around or ask your agent about discounts.",
	},
}

var exclusions = []Exclusion{
	{
		ID:             "flood",
		Keywords:       []string{"flood", "flooding", "flood damage", "surface water", "rising water"},
		Name:           "Flood Exclusion",
		Description:    "Flood damage is typically excluded from standard home insurance.",
		Recommendation: "Consider separate flood insurance through NFIP or private insurers, especially if you're in a flood-prone area.",
		AppliesTo:      []string{TypeHome, TypeRenters},
	},
	{
		ID:             "earthquake",
		Keywords:       []string{"earthquake", "earth movement", "seismic", "tremor"},
		Name:           "Earthquake Exclusion",
		Description:    "Earthquake damage is typically excluded from standard home insurance.",
		Recommendation: "Consider earthquake insurance if you live in a seismically active region.",
		AppliesTo:      []string{TypeHome, TypeRenters},
	},
	{
		ID:             "sewer_backup",
		Keywords:       []string{"sewer backup", "sewer", "drain backup", "sump pump", "water backup"},
		Name:           "Sewer/Water Backup Exclusion",
		Description:    "Sewer and drain backup damage may not be covered by your policy.",
		Recommendation: "Ask your agent about adding water backup coverage - it's usually inexpensive and covers a common claim type.",
		AppliesTo:      []string{TypeHome, TypeRenters},
	},
	{
		ID:             "mold",
		Keywords:       []string{"mold", "mildew", "fungus", "fungi", "spores"},
		Name:           "Mold Exclusion",
		Description:    "Mold damage and remediation may be excluded or have low limits.",
		Recommendation: "Review your mold coverage limits. Mold remediation can be very expensive.",
		AppliesTo:      []string{TypeHome, TypeRenters},
	},
	{
		ID:             "wear_and_tear",
		Keywords:       []string{"wear and tear", "gradual deterioration", "maintenance", "neglect", "lack of maintenance"},
		Name:           "Maintenance/Wear Exclusion",
		Description:    "Damage from lack of maintenance or normal wear is excluded.",
		Recommendation: "Regular home maintenance prevents claims from being denied. Document your upkeep.",
		AppliesTo:      []string{TypeHome},
	},
	{
		ID:             "business_use",
		Keywords:       []string{"business use", "commercial use", "livery", "rideshare", "uber", "lyft", "delivery"},
		Name:           "Business/Commercial Use Exclusion",
		Description:    "Using your vehicle for business purposes may void coverage.",
		Recommendation: "If you do rideshare or delivery, you need commercial or rideshare coverage.",
		AppliesTo:      []string{TypeAuto},
	},
	{
		ID:             "intentional_acts",
		Keywords:       []string{"intentional", "criminal act", "illegal act", "fraud"},
		Name:           "Intentional Acts Exclusion",
		Description:    "Intentional damage or illegal acts are not covered.",
		Recommendation: "This is standard. Just be aware coverage requires accidental loss.",
		AppliesTo:      []string{TypeAuto, TypeHome, TypeRenters},
	},
}

// NormalizeType lower-cases a policy type the way every lookup expects it.
func NormalizeType(policyType string) string {
	return strings.ToLower(policyType)
}

// PolicyCoverages returns the coverage category ids a policy type typically
// provides. Unknown types yield an empty slice.
func PolicyCoverages(policyType string) []string {
	cats := policyCoverageMap[NormalizeType(policyType)]
	out := make([]string, len(cats))
	copy(out, cats)
	return out
}

// IsKnownPolicyType reports whether policyType is part of the taxonomy.
func IsKnownPolicyType(policyType string) bool {
	t := NormalizeType(policyType)
	for _, known := range policyTypes {
		if t == known {
			return true
		}
	}
	return false
}

func PolicyTypes() []string {
	return append([]string(nil), policyTypes...)
}

func Categories() []CoverageCategory {
	return append([]CoverageCategory(nil), coverageCategories...)
}

// Category looks up a coverage category by id.
func Category(id string) (CoverageCategory, bool) {
	i, ok := categoryIndex[id]
	if !ok {
		return CoverageCategory{}, false
	}
	return coverageCategories[i], true
}

func GapRules() []GapRule {
	return append([]GapRule(nil), gapRules...)
}

func Exclusions() []Exclusion {
	return append([]Exclusion(nil), exclusions...)
}

func (e Exclusion) appliesTo(policyType string) bool {
	for _, t := range e.AppliesTo {
		if t == policyType {
			return true
		}
	}
	return false
}
