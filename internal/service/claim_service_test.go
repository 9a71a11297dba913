package service

import (
	"context"
	"testing"
	"time"

	"keeps/internal/dto"
	"keeps/internal/models"
	"keeps/internal/service/servicetest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedPolicy(t *testing.T, store *servicetest.Policies, userID uuid.UUID) uuid.UUID {
	t.Helper()
	p := &models.Policy{ID: uuid.New(), UserID: userID, PolicyType: "auto", Status: models.PolicyStatusActive}
	require.NoError(t, store.Create(context.Background(), p))
	return p.ID
}

func newClaimService() (*ClaimService, *servicetest.Policies) {
	policies := servicetest.NewPolicies()
	svc := NewClaimService(servicetest.NewClaims(), policies, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) }
	return svc, policies
}

func TestClaimService_Lifecycle(t *testing.T) {
	svc, policies := newClaimService()
	ctx := context.Background()
	userID := uuid.New()
	policyID := seedPolicy(t, policies, userID)

	first, err := svc.Create(ctx, userID, policyID, &dto.ClaimRequest{
		ClaimNumber:   " CLM-1 ",
		Status:        "open",
		DateFiled:     "2026-03-01",
		AmountClaimed: ptr(250000),
		Description:   "Rear-ended at a light",
	})
	require.NoError(t, err)
	assert.Equal(t, "CLM-1", first.ClaimNumber)
	assert.Equal(t, "2026-03-01", first.DateFiled)
	assert.Nil(t, first.DateResolved)
	assert.Equal(t, policyID.String(), first.PolicyID)

	_, err = svc.Create(ctx, userID, policyID, &dto.ClaimRequest{
		ClaimNumber: "CLM-2", Status: "closed", DateFiled: "2026-08-10", Description: "Windshield",
	})
	require.NoError(t, err)

	list, err := svc.List(ctx, userID, policyID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "CLM-2", list[0].ClaimNumber)

	resolved, status := "2026-04-15", "closed"
	updated, err := svc.Update(ctx, userID, policyID, uuid.MustParse(first.ID), &dto.ClaimUpdateRequest{
		Status:       &status,
		DateResolved: &resolved,
		AmountPaid:   ptr(200000),
	})
	require.NoError(t, err)
	assert.Equal(t, "closed", updated.Status)
	require.NotNil(t, updated.DateResolved)
	assert.Equal(t, "2026-04-15", *updated.DateResolved)
	assert.Equal(t, int64(250000), *updated.AmountClaimed)
	assert.Equal(t, "Rear-ended at a light", updated.Description)

	require.NoError(t, svc.Delete(ctx, userID, policyID, uuid.MustParse(first.ID)))
	assert.ErrorIs(t, svc.Delete(ctx, userID, policyID, uuid.MustParse(first.ID)), ErrClaimNotFound)
}

func TestClaimService_Validation(t *testing.T) {
	svc, policies := newClaimService()
	ctx := context.Background()
	userID := uuid.New()
	policyID := seedPolicy(t, policies, userID)

	tests := []struct {
		name string
		req  dto.ClaimRequest
	}{
		{"unknown status", dto.ClaimRequest{ClaimNumber: "C", Status: "lost", DateFiled: "2026-01-01", Description: "d"}},
		{"bad date", dto.ClaimRequest{ClaimNumber: "C", Status: "open", DateFiled: "01/02/2026", Description: "d"}},
		{"missing date", dto.ClaimRequest{ClaimNumber: "C", Status: "open", Description: "d"}},
		{"resolved before filed", dto.ClaimRequest{ClaimNumber: "C", Status: "closed", DateFiled: "2026-05-01", DateResolved: "2026-04-01", Description: "d"}},
		{"negative amount", dto.ClaimRequest{ClaimNumber: "C", Status: "open", DateFiled: "2026-01-01", AmountPaid: ptr(-1), Description: "d"}},
		{"blank description", dto.ClaimRequest{ClaimNumber: "C", Status: "open", DateFiled: "2026-01-01", Description: "  "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, userID, policyID, &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestClaimService_ForeignPolicy(t *testing.T) {
	svc, policies := newClaimService()
	ctx := context.Background()
	owner := uuid.New()
	policyID := seedPolicy(t, policies, owner)

	_, err := svc.List(ctx, uuid.New(), policyID)
	assert.ErrorIs(t, err, ErrPolicyNotFound)

	_, err = svc.Create(ctx, uuid.New(), policyID, &dto.ClaimRequest{
		ClaimNumber: "C", Status: "open", DateFiled: "2026-01-01", Description: "d",
	})
	assert.ErrorIs(t, err, ErrPolicyNotFound)

	created, err := svc.Create(ctx, owner, policyID, &dto.ClaimRequest{
		ClaimNumber: "C", Status: "open", DateFiled: "2026-01-01", Description: "d",
	})
	require.NoError(t, err)

	otherPolicy := seedPolicy(t, policies, owner)
	_, err = svc.Update(ctx, owner, otherPolicy, uuid.MustParse(created.ID), &dto.ClaimUpdateRequest{})
	assert.ErrorIs(t, err, ErrClaimNotFound)
}
