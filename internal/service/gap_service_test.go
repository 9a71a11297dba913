package service

import (
	"context"
	"testing"
	"time"

	"keeps/internal/coverage"
	"keeps/internal/dto"
	"keeps/internal/models"
	"keeps/internal/service/servicetest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type gapFixture struct {
	gaps     *GapService
	profiles *ProfileService
	policies *servicetest.Policies
	userID   uuid.UUID
}

func newGapFixture() *gapFixture {
	policies := servicetest.NewPolicies()
	profiles := NewProfileService(servicetest.NewProfiles(), zap.NewNop())
	gaps := NewGapService(policies, profiles, zap.NewNop())
	gaps.now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }
	return &gapFixture{gaps: gaps, profiles: profiles, policies: policies, userID: uuid.New()}
}

func (f *gapFixture) addPolicy(t *testing.T, p models.Policy) *models.Policy {
	t.Helper()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.UserID == uuid.Nil {
		p.UserID = f.userID
	}
	p.Status = models.PolicyStatusActive
	require.NoError(t, f.policies.Create(context.Background(), &p))
	return &p
}

func TestProfileService_Defaults(t *testing.T) {
	f := newGapFixture()
	ctx := context.Background()

	got, err := f.profiles.Get(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, dto.ProfileResponse{}, *got)

	uc, err := f.profiles.UserContext(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, coverage.UserContext{}, uc)

	_, err = f.profiles.Update(ctx, f.userID, &dto.ProfileRequest{FullName: "Jane", HasVehicle: true, OwnsBusiness: true})
	require.NoError(t, err)

	uc, err = f.profiles.UserContext(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, coverage.UserContext{HasVehicle: true, OwnsBusiness: true}, uc)
}

func TestGapService_Analyze(t *testing.T) {
	f := newGapFixture()
	ctx := context.Background()

	empty, err := f.gaps.Analyze(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.PolicyCount)
	assert.Len(t, empty.Gaps, 3)

	f.addPolicy(t, models.Policy{PolicyType: "auto", Carrier: "GEICO", CoverageAmount: ptr(50000)})
	_, err = f.profiles.Update(ctx, f.userID, &dto.ProfileRequest{HasDependents: true})
	require.NoError(t, err)

	resp, err := f.gaps.Analyze(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.PolicyCount)
	assert.Equal(t, 1, resp.Summary.TotalPolicies)
	require.NotEmpty(t, resp.Gaps)
	assert.Equal(t, "no_life", resp.Gaps[0].ID)
	assert.Equal(t, coverage.SeverityHigh, resp.Gaps[0].Severity)

	summary, err := f.gaps.Summary(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), summary.TotalCoverage)

	other, err := f.gaps.Analyze(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, other.PolicyCount)
}

func TestGapService_PolicyGaps(t *testing.T) {
	f := newGapFixture()
	ctx := context.Background()

	auto := f.addPolicy(t, models.Policy{PolicyType: "auto", Carrier: "GEICO"})
	f.addPolicy(t, models.Policy{PolicyType: "home", Carrier: "Allstate"})

	resp, err := f.gaps.PolicyGaps(ctx, f.userID, auto.ID)
	require.NoError(t, err)
	assert.Equal(t, auto.ID.String(), resp.PolicyID)
	require.NotEmpty(t, resp.Gaps)
	for _, g := range resp.Gaps {
		assert.Equal(t, auto.ID.String(), g.PolicyID)
	}

	_, err = f.gaps.PolicyGaps(ctx, uuid.New(), auto.ID)
	assert.ErrorIs(t, err, ErrPolicyNotFound)
}

func TestGapService_BusinessGaps(t *testing.T) {
	f := newGapFixture()
	ctx := context.Background()

	f.addPolicy(t, models.Policy{
		PolicyType:   "general_liability",
		Carrier:      "Hartford",
		BusinessName: "Acme LLC",
		Contacts:     []models.PolicyContact{{ID: uuid.New(), Role: "broker", Name: "Pat"}},
	})
	f.addPolicy(t, models.Policy{PolicyType: "auto", Carrier: "GEICO"})

	resp, err := f.gaps.BusinessGaps(ctx, f.userID, "Acme LLC")
	require.NoError(t, err)
	assert.Equal(t, "Acme LLC", resp.BusinessName)
	require.Len(t, resp.Policies, 1)
	assert.Equal(t, "general_liability", resp.Policies[0].PolicyType)
	require.Len(t, resp.Contacts, 1)
	assert.Equal(t, "Pat", resp.Contacts[0].Name)
	assert.Equal(t, 1, resp.Summary.TotalPolicies)
	assert.NotEmpty(t, resp.Gaps)

	_, err = f.gaps.BusinessGaps(ctx, f.userID, "Nobody Inc")
	assert.ErrorIs(t, err, ErrPolicyNotFound)
	_, err = f.gaps.BusinessGaps(ctx, f.userID, "")
	assert.ErrorIs(t, err, ErrPolicyNotFound)
}

func TestGapService_Taxonomy(t *testing.T) {
	f := newGapFixture()
	tax := f.gaps.Taxonomy()
	assert.Len(t, tax.Categories, 18)
	assert.Len(t, tax.GapRules, 10)
	assert.NotEmpty(t, tax.Exclusions)
	assert.Contains(t, tax.PolicyTypes, "auto")
}
