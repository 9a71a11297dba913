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

// PremiumService records premium payments per policy and totals yearly spend.
type PremiumService struct {
	premiums PremiumStore
	policies PolicyStore
	logger   *zap.Logger
	now      func() time.Time
}

func NewPremiumService(premiums PremiumStore, policies PolicyStore, logger *zap.Logger) *PremiumService {
	return &PremiumService{
		premiums: premiums,
		policies: policies,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *PremiumService) List(ctx context.Context, userID, policyID uuid.UUID) ([]dto.PremiumResponse, error) {
	if err := ownPolicy(ctx, s.policies, userID, policyID); err != nil {
		return nil, err
	}

	premiums, err := s.premiums.ListByPolicy(ctx, policyID)
	if err != nil {
		return nil, fmt.Errorf("list premiums: %w", err)
	}

	out := make([]dto.PremiumResponse, 0, len(premiums))
	for _, p := range premiums {
		out = append(out, toPremiumResponse(p))
	}
	return out, nil
}

func (s *PremiumService) Create(ctx context.Context, userID, policyID uuid.UUID, req *dto.PremiumRequest) (*dto.PremiumResponse, error) {
	if err := ownPolicy(ctx, s.policies, userID, policyID); err != nil {
		return nil, err
	}

	p := &models.Premium{
		ID:        uuid.New(),
		PolicyID:  policyID,
		CreatedAt: s.now(),
	}
	amount, freq, due := req.Amount, req.Frequency, req.DueDate
	if err := applyPremiumUpdate(p, &dto.PremiumUpdateRequest{
		Amount:        &amount,
		Frequency:     &freq,
		DueDate:       &due,
		PaidDate:      &req.PaidDate,
		PaymentMethod: &req.PaymentMethod,
		Notes:         &req.Notes,
	}); err != nil {
		return nil, err
	}

	if err := s.premiums.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create premium: %w", err)
	}

	s.logger.Info("Premium recorded",
		zap.String("premium_id", p.ID.String()),
		zap.String("policy_id", policyID.String()),
		zap.Int64("amount_cents", p.Amount),
	)
	resp := toPremiumResponse(p)
	return &resp, nil
}

// Update changes the fields present in req and leaves the rest as stored.
func (s *PremiumService) Update(ctx context.Context, userID, policyID, premiumID uuid.UUID, req *dto.PremiumUpdateRequest) (*dto.PremiumResponse, error) {
	if err := ownPolicy(ctx, s.policies, userID, policyID); err != nil {
		return nil, err
	}

	p, err := s.premiums.GetByID(ctx, policyID, premiumID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPremiumNotFound
		}
		return nil, fmt.Errorf("load premium: %w", err)
	}
	if err := applyPremiumUpdate(p, req); err != nil {
		return nil, err
	}

	if err := s.premiums.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPremiumNotFound
		}
		return nil, fmt.Errorf("update premium: %w", err)
	}

	resp := toPremiumResponse(p)
	return &resp, nil
}

func (s *PremiumService) Delete(ctx context.Context, userID, policyID, premiumID uuid.UUID) error {
	if err := ownPolicy(ctx, s.policies, userID, policyID); err != nil {
		return err
	}
	if err := s.premiums.Delete(ctx, policyID, premiumID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPremiumNotFound
		}
		return fmt.Errorf("delete premium: %w", err)
	}
	return nil
}

// AnnualSpend annualises every recorded premium of the user: each amount is
// multiplied by the number of payments its frequency makes per year.
func (s *PremiumService) AnnualSpend(ctx context.Context, userID uuid.UUID) (*dto.AnnualSpendResponse, error) {
	premiums, err := s.premiums.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list premiums: %w", err)
	}

	var total int64
	for _, p := range premiums {
		total += p.Amount * p.Frequency.PaymentsPerYear()
	}
	return &dto.AnnualSpendResponse{AnnualSpendCents: total}, nil
}

func applyPremiumUpdate(p *models.Premium, req *dto.PremiumUpdateRequest) error {
	if req.Amount != nil {
		if *req.Amount < 0 {
			return fmt.Errorf("%w: amount cannot be negative", ErrInvalidInput)
		}
		p.Amount = *req.Amount
	}
	if req.Frequency != nil {
		freq := models.PremiumFrequency(strings.ToLower(strings.TrimSpace(*req.Frequency)))
		if !freq.Valid() {
			return fmt.Errorf("%w: unknown frequency %q", ErrInvalidInput, *req.Frequency)
		}
		p.Frequency = freq
	}
	if req.DueDate != nil {
		due, err := requiredDate("due_date", *req.DueDate)
		if err != nil {
			return err
		}
		p.DueDate = due
	}
	if req.PaidDate != nil {
		paid, err := optionalDateField("paid_date", *req.PaidDate)
		if err != nil {
			return err
		}
		p.PaidDate = paid
	}
	if req.PaymentMethod != nil {
		p.PaymentMethod = strings.TrimSpace(*req.PaymentMethod)
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}
	return nil
}
