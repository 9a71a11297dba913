package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"keeps/internal/dto"
	"keeps/internal/models"
	"keeps/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClaimService tracks claims filed against a policy the caller owns.
type ClaimService struct {
	claims   ClaimStore
	policies PolicyStore
	logger   *zap.Logger
	now      func() time.Time
}

func NewClaimService(claims ClaimStore, policies PolicyStore, logger *zap.Logger) *ClaimService {
	return &ClaimService{
		claims:   claims,
		policies: policies,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *ClaimService) List(ctx context.Context, userID, policyID uuid.UUID) ([]dto.ClaimResponse, error) {
	if err := ownPolicy(ctx, s.policies, userID, policyID); err != nil {
		return nil, err
	}

	claims, err := s.claims.ListByPolicy(ctx, policyID)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}

	out := make([]dto.ClaimResponse, 0, len(claims))
	for _, c := range claims {
		out = append(out, toClaimResponse(c))
	}
	return out, nil
}

func (s *ClaimService) Create(ctx context.Context, userID, policyID uuid.UUID, req *dto.ClaimRequest) (*dto.ClaimResponse, error) {
	if err := ownPolicy(ctx, s.policies, userID, policyID); err != nil {
		return nil, err
	}

	c := &models.Claim{
		ID:        uuid.New(),
		PolicyID:  policyID,
		CreatedAt: s.now(),
	}
	number, status, filed, desc := req.ClaimNumber, req.Status, req.DateFiled, req.Description
	update := dto.ClaimUpdateRequest{
		ClaimNumber:   &number,
		Status:        &status,
		DateFiled:     &filed,
		DateResolved:  &req.DateResolved,
		AmountClaimed: req.AmountClaimed,
		AmountPaid:    req.AmountPaid,
		Description:   &desc,
		Notes:         &req.Notes,
	}
	if err := applyClaimUpdate(c, &update); err != nil {
		return nil, err
	}

	if err := s.claims.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create claim: %w", err)
	}

	s.logger.Info("Claim filed",
		zap.String("claim_id", c.ID.String()),
		zap.String("policy_id", policyID.String()),
		zap.String("status", string(c.Status)),
	)
	resp := toClaimResponse(c)
	return &resp, nil
}

// Update changes the fields present in req and leaves the rest as stored.
func (s *ClaimService) Update(ctx context.Context, userID, policyID, claimID uuid.UUID, req *dto.ClaimUpdateRequest) (*dto.ClaimResponse, error) {
	if err := ownPolicy(ctx, s.policies, userID, policyID); err != nil {
		return nil, err
	}

	c, err := s.claims.GetByID(ctx, policyID, claimID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, fmt.Errorf("load claim: %w", err)
	}
	if err := applyClaimUpdate(c, req); err != nil {
		return nil, err
	}

	if err := s.claims.Update(ctx, c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, fmt.Errorf("update claim: %w", err)
	}

	s.logger.Info("Claim updated", zap.String("claim_id", c.ID.String()))
	resp := toClaimResponse(c)
	return &resp, nil
}

func (s *ClaimService) Delete(ctx context.Context, userID, policyID, claimID uuid.UUID) error {
	if err := ownPolicy(ctx, s.policies, userID, policyID); err != nil {
		return err
	}
	if err := s.claims.Delete(ctx, policyID, claimID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClaimNotFound
		}
		return fmt.Errorf("delete claim: %w", err)
	}
	return nil
}

func applyClaimUpdate(c *models.Claim, req *dto.ClaimUpdateRequest) error {
	if req.ClaimNumber != nil {
		number := strings.TrimSpace(*req.ClaimNumber)
		if number == "" {
			return fmt.Errorf("%w: claim_number is required", ErrInvalidInput)
		}
		c.ClaimNumber = number
	}
	if req.Status != nil {
		status := models.ClaimStatus(strings.ToLower(strings.TrimSpace(*req.Status)))
		if !status.Valid() {
			return fmt.Errorf("%w: unknown claim status %q", ErrInvalidInput, *req.Status)
		}
		c.Status = status
	}
	if req.DateFiled != nil {
		filed, err := requiredDate("date_filed", *req.DateFiled)
		if err != nil {
			return err
		}
		c.DateFiled = filed
	}
	if req.DateResolved != nil {
		resolved, err := optionalDateField("date_resolved", *req.DateResolved)
		if err != nil {
			return err
		}
		c.DateResolved = resolved
	}
	if c.DateResolved != nil && c.DateResolved.Before(c.DateFiled) {
		return fmt.Errorf("%w: date_resolved is before date_filed", ErrInvalidInput)
	}
	for _, amount := range []*int64{req.AmountClaimed, req.AmountPaid} {
		if amount != nil && *amount < 0 {
			return fmt.Errorf("%w: amounts cannot be negative", ErrInvalidInput)
		}
	}
	if req.AmountClaimed != nil {
		c.AmountClaimed = req.AmountClaimed
	}
	if req.AmountPaid != nil {
		c.AmountPaid = req.AmountPaid
	}
	if req.Description != nil {
		desc := strings.TrimSpace(*req.Description)
		if desc == "" {
			return fmt.Errorf("%w: description is required", ErrInvalidInput)
		}
		c.Description = desc
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}
	return nil
}

// ownPolicy reports ErrPolicyNotFound unless userID owns policyID.
func ownPolicy(ctx context.Context, policies PolicyStore, userID, policyID uuid.UUID) error {
	if _, err := policies.GetByID(ctx, userID, policyID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPolicyNotFound
		}
		return fmt.Errorf("load policy: %w", err)
	}
	return nil
}
