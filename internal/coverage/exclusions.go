package coverage

import "strings"

type exclusionKey struct {
	exclusionID string
	policyID    string
}

// exclusionHits records which (exclusion, policy) pairs already produced a finding.
type exclusionHits map[exclusionKey]bool

func (h exclusionHits) fired(exclusionID, policyID string) bool {
	return h[exclusionKey{exclusionID, policyID}]
}

// searchText joins the free-text fields of a policy into one lower-cased blob.
func searchText(p Policy) string {
	parts := make([]string, 0, len(p.Details))
	for _, d := range p.Details {
		parts = append(parts, d.FieldName+" "+d.FieldValue)
	}
	text := strings.Join(parts, " ") + " " + p.Carrier + " " + p.Notes
	return strings.ToLower(text)
}

// scanExclusions matches exclusion keywords against each policy's free text.
// Each (exclusion, policy) pair yields at most one finding.
func scanExclusions(policies []Policy) ([]Finding, exclusionHits) {
	var findings []Finding
	hits := make(exclusionHits)

	for _, p := range policies {
		ptype := NormalizeType(p.PolicyType)
		text := searchText(p)

		for _, excl := range exclusions {
			if !excl.appliesTo(ptype) {
				continue
			}
			for _, kw := range excl.Keywords {
				if !strings.Contains(text, strings.ToLower(kw)) {
					continue
				}
				key := exclusionKey{excl.ID, p.ID}
				if !hits[key] {
					hits[key] = true
					findings = append(findings, Finding{
						ID:             "exclusion_" + excl.ID + "_" + p.ID,
						Name:           excl.Name,
						Severity:       SeverityInfo,
						Description:    excl.Description,
						Recommendation: excl.Recommendation,
						Category:       CategoryExclusionWarning,
						PolicyID:       p.ID,
					})
				}
				break
			}
		}
	}

	return findings, hits
}

// floodReminders warns every home/renters policy that standard forms exclude
// flood, unless the scan already reported a flood exclusion for it.
func floodReminders(policies []Policy, hits exclusionHits) []Finding {
	var findings []Finding
	for _, p := range policies {
		ptype := NormalizeType(p.PolicyType)
		if ptype != TypeHome && ptype != TypeRenters {
			continue
		}
		if hits.fired("flood", p.ID) {
			continue
		}
		findings = append(findings, Finding{
			ID:             "exclusion_flood_reminder_" + p.ID,
			Name:           "Flood Coverage Reminder",
			Severity:       SeverityInfo,
			Description:    "Standard home/renters policies do NOT cover flood damage.",
			Recommendation: "If you're in a flood-prone area, consider NFIP or private flood insurance.",
			Category:       CategoryExclusionWarning,
			PolicyID:       p.ID,
		})
	}
	return findings
}
