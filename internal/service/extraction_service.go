package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"keeps/internal/coverage"
	"keeps/internal/models"

	"github.com/google/uuid"
)

const extractionSystemPrompt = `You are an expert insurance policy document parser. Extract every useful piece of data from the policy document text you are given.

Return ONLY a JSON object with this schema (use null for missing fields):
{
  "carrier": "full insurance company name or null",
  "policy_number": "string or null",
  "policy_type": "one of: auto, home, renters, life, umbrella, liability, general_liability, professional_liability, commercial_property, commercial_auto, cyber, bop, workers_comp, directors_officers, epli, inland_marine, disability, flood, earthquake, other",
  "coverage_amount": "integer or null, the coverage LIMIT in whole dollars (for auto the liability limit, for home the dwelling coverage)",
  "deductible": "integer or null, primary deductible in dollars",
  "premium_amount": "integer or null, the PREMIUM the customer pays for the term",
  "renewal_date": "YYYY-MM-DD or null, expiration or renewal date",
  "effective_date": "YYYY-MM-DD or null",
  "named_insured": "string or null",
  "payment_schedule": "string or null",
  "contacts": [{"role": "broker|agent|claims|underwriter|customer_service|other", "name": null, "company": null, "phone": null, "email": null}],
  "exclusions": [{"description": "what is excluded"}],
  "details": [{"field_name": "string", "field_value": "string"}]
}

Extract every phone number with the best matching role; claims numbers are often toll-free. Do not confuse the coverage limit with the premium. For auto policies include uninsured_motorist and roadside_assistance details when present.
Return only the JSON object, without markdown fences or commentary.`

var errNoJSONObject = errors.New("no JSON object in LLM response")

// flexAmount accepts 300000, 300000.0, "300000" and "$300,000". Negative,
// NaN and out of range amounts are dropped.
type flexAmount struct {
	value *int64
}

func (a *flexAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.NewReplacer("$", "", ",", "", " ", "").Replace(raw)
		if raw == "" {
			return nil
		}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		// Unparseable amounts are dropped rather than failing the document.
		return nil
	}
	if math.IsNaN(f) || f < 0 || f >= math.MaxInt64 {
		return nil
	}
	v := int64(f)
	a.value = &v
	return nil
}

type extractedContact struct {
	Role    string  `json:"role"`
	Name    *string `json:"name"`
	Company *string `json:"company"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

type extractedDetail struct {
	FieldName  string `json:"field_name"`
	FieldValue any    `json:"field_value"`
}

type extractionResult struct {
	Carrier         *string            `json:"carrier"`
	PolicyNumber    *string            `json:"policy_number"`
	PolicyType      *string            `json:"policy_type"`
	CoverageAmount  flexAmount         `json:"coverage_amount"`
	Deductible      flexAmount         `json:"deductible"`
	PremiumAmount   flexAmount         `json:"premium_amount"`
	RenewalDate     *string            `json:"renewal_date"`
	EffectiveDate   *string            `json:"effective_date"`
	NamedInsured    *string            `json:"named_insured"`
	PaymentSchedule *string            `json:"payment_schedule"`
	Contacts        []extractedContact `json:"contacts"`
	Exclusions      []struct {
		Description string `json:"description"`
	} `json:"exclusions"`
	Details []extractedDetail `json:"details"`
}

// parseExtraction reads the JSON object out of an LLM reply. Markdown fences
// and surrounding prose are ignored.
func parseExtraction(raw string) (*extractionResult, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return nil, errNoJSONObject
	}

	var result extractionResult
	if err := json.Unmarshal([]byte(raw[start:end+1]), &result); err != nil {
		return nil, fmt.Errorf("failed to parse extraction JSON: %w", err)
	}
	return &result, nil
}

// applyExtraction copies non-null extracted fields onto the policy and returns
// the details and contacts to append.
func applyExtraction(p *models.Policy, r *extractionResult, now time.Time) ([]models.PolicyDetail, []models.PolicyContact) {
	if v := nonEmpty(r.Carrier); v != "" {
		p.Carrier = v
	} else if p.Carrier == coverage.PendingExtractionCarrier {
		p.Carrier = ""
	}
	if v := nonEmpty(r.PolicyNumber); v != "" {
		p.PolicyNumber = v
	}
	if v := coverage.NormalizeType(nonEmpty(r.PolicyType)); v != "" && coverage.IsKnownPolicyType(v) {
		p.PolicyType = v
	}
	if r.CoverageAmount.value != nil {
		p.CoverageAmount = r.CoverageAmount.value
	}
	if r.Deductible.value != nil {
		p.Deductible = r.Deductible.value
	}
	if r.PremiumAmount.value != nil {
		p.PremiumAmount = r.PremiumAmount.value
	}
	if d, err := parseDate(nonEmpty(r.RenewalDate)); err == nil && d != nil {
		p.RenewalDate = d
	}
	p.UpdatedAt = now

	var details []models.PolicyDetail
	addDetail := func(name, value string) {
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		if name == "" || value == "" {
			return
		}
		details = append(details, newDetail(p.ID, name, value, now))
	}

	addDetail("effective_date", nonEmpty(r.EffectiveDate))
	addDetail("named_insured", nonEmpty(r.NamedInsured))
	addDetail("payment_schedule", nonEmpty(r.PaymentSchedule))
	for _, d := range r.Details {
		if d.FieldValue == nil {
			continue
		}
		addDetail(d.FieldName, fmt.Sprint(d.FieldValue))
	}
	// Stored as details so the exclusion scan sees them.
	for _, e := range r.Exclusions {
		addDetail("exclusion", e.Description)
	}

	var contacts []models.PolicyContact
	for _, c := range r.Contacts {
		if nonEmpty(c.Phone) == "" && nonEmpty(c.Email) == "" && nonEmpty(c.Name) == "" {
			continue
		}
		role := strings.ToLower(strings.TrimSpace(c.Role))
		if role == "" {
			role = "other"
		}
		contacts = append(contacts, models.PolicyContact{
			ID:        uuid.New(),
			PolicyID:  p.ID,
			Role:      role,
			Name:      nonEmpty(c.Name),
			Company:   nonEmpty(c.Company),
			Phone:     nonEmpty(c.Phone),
			Email:     nonEmpty(c.Email),
			CreatedAt: now,
		})
	}

	return details, contacts
}

func nonEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
