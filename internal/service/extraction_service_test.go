package service

import (
	"testing"
	"time"

	"keeps/internal/coverage"
	"keeps/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtraction(t *testing.T) {
	raw := "Here you go:\n```json\n" + `{
  "carrier": "State Farm",
  "policy_number": "SF-123",
  "policy_type": "Auto",
  "coverage_amount": "$300,000",
  "deductible": 500,
  "premium_amount": 1200.0,
  "renewal_date": "2027-03-01",
  "effective_date": "2026-03-01",
  "named_insured": null,
  "contacts": [{"role": "Claims", "phone": "1-800-732-5246"}],
  "exclusions": [{"description": "Flood damage"}],
  "details": [{"field_name": "uninsured_motorist", "field_value": "100/300"}]
}` + "\n```"

	r, err := parseExtraction(raw)
	require.NoError(t, err)

	assert.Equal(t, "State Farm", nonEmpty(r.Carrier))
	assert.Equal(t, "SF-123", nonEmpty(r.PolicyNumber))
	require.NotNil(t, r.CoverageAmount.value)
	assert.Equal(t, int64(300000), *r.CoverageAmount.value)
	require.NotNil(t, r.Deductible.value)
	assert.Equal(t, int64(500), *r.Deductible.value)
	require.NotNil(t, r.PremiumAmount.value)
	assert.Equal(t, int64(1200), *r.PremiumAmount.value)
	assert.Nil(t, r.NamedInsured)
	require.Len(t, r.Contacts, 1)
	require.Len(t, r.Exclusions, 1)
	require.Len(t, r.Details, 1)
}

func TestParseExtraction_LenientAmounts(t *testing.T) {
	r, err := parseExtraction(`{"coverage_amount": "unknown", "deductible": null, "premium_amount": ""}`)
	require.NoError(t, err)
	assert.Nil(t, r.CoverageAmount.value)
	assert.Nil(t, r.Deductible.value)
	assert.Nil(t, r.PremiumAmount.value)
}

func TestParseExtraction_OutOfRangeAmounts(t *testing.T) {
	r, err := parseExtraction(`{"coverage_amount": 1e30, "deductible": "-500", "premium_amount": "Infinity"}`)
	require.NoError(t, err)
	assert.Nil(t, r.CoverageAmount.value)
	assert.Nil(t, r.Deductible.value)
	assert.Nil(t, r.PremiumAmount.value)

	r, err = parseExtraction(`{"coverage_amount": 9.2e18, "deductible": 0}`)
	require.NoError(t, err)
	require.NotNil(t, r.CoverageAmount.value)
	assert.Equal(t, int64(9200000000000000000), *r.CoverageAmount.value)
	require.NotNil(t, r.Deductible.value)
	assert.Zero(t, *r.Deductible.value)
}

func TestParseExtraction_Errors(t *testing.T) {
	_, err := parseExtraction("I cannot read this document.")
	assert.ErrorIs(t, err, errNoJSONObject)

	_, err = parseExtraction("} nothing {")
	assert.ErrorIs(t, err, errNoJSONObject)

	_, err = parseExtraction(`{"carrier": }`)
	assert.Error(t, err)
}

func TestApplyExtraction(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	p := &models.Policy{
		ID:         uuid.New(),
		PolicyType: "other",
		Carrier:    coverage.PendingExtractionCarrier,
	}

	r, err := parseExtraction(`{
  "carrier": "Progressive",
  "policy_type": "AUTO",
  "coverage_amount": 250000,
  "renewal_date": "2027-01-15",
  "named_insured": "Jane Doe",
  "contacts": [
    {"role": "CLAIMS", "phone": "800-776-4737"},
    {"role": "agent"}
  ],
  "exclusions": [{"description": "Racing"}],
  "details": [{"field_name": "roadside_assistance", "field_value": true}, {"field_name": "rental", "field_value": null}]
}`)
	require.NoError(t, err)

	details, contacts := applyExtraction(p, r, now)

	assert.Equal(t, "Progressive", p.Carrier)
	assert.Equal(t, "auto", p.PolicyType)
	require.NotNil(t, p.CoverageAmount)
	assert.Equal(t, int64(250000), *p.CoverageAmount)
	require.NotNil(t, p.RenewalDate)
	assert.Equal(t, "2027-01-15", p.RenewalDate.Format(dateLayout))
	assert.Equal(t, now, p.UpdatedAt)

	fields := map[string]string{}
	for _, d := range details {
		assert.Equal(t, p.ID, d.PolicyID)
		fields[d.FieldName] = d.FieldValue
	}
	assert.Equal(t, map[string]string{
		"named_insured":       "Jane Doe",
		"roadside_assistance": "true",
		"exclusion":           "Racing",
	}, fields)

	require.Len(t, contacts, 1)
	assert.Equal(t, "claims", contacts[0].Role)
	assert.Equal(t, "800-776-4737", contacts[0].Phone)
}

func TestApplyExtraction_KeepsExistingValues(t *testing.T) {
	coverageAmount := int64(100000)
	p := &models.Policy{
		ID:             uuid.New(),
		PolicyType:     "home",
		Carrier:        "Allstate",
		CoverageAmount: &coverageAmount,
	}

	r, err := parseExtraction(`{"carrier": null, "policy_type": "spaceship", "coverage_amount": null, "renewal_date": "soon"}`)
	require.NoError(t, err)

	details, contacts := applyExtraction(p, r, time.Now())
	assert.Equal(t, "Allstate", p.Carrier)
	assert.Equal(t, "home", p.PolicyType)
	assert.Equal(t, int64(100000), *p.CoverageAmount)
	assert.Nil(t, p.RenewalDate)
	assert.Empty(t, details)
	assert.Empty(t, contacts)
}

func TestApplyExtraction_ClearsPendingCarrier(t *testing.T) {
	p := &models.Policy{ID: uuid.New(), PolicyType: "other", Carrier: coverage.PendingExtractionCarrier}

	r, err := parseExtraction(`{}`)
	require.NoError(t, err)

	applyExtraction(p, r, time.Now())
	assert.Empty(t, p.Carrier)
}
