package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"keeps/internal/coverage"
	"keeps/internal/dto"
	"keeps/internal/models"
	"keeps/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultRenewalWindowDays = 30
	maxRenewalWindowDays     = 365
)

type PolicyService struct {
	policies PolicyStore
	logger   *zap.Logger
	now      func() time.Time
}

func NewPolicyService(policies PolicyStore, logger *zap.Logger) *PolicyService {
	return &PolicyService{
		policies: policies,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *PolicyService) Create(ctx context.Context, userID uuid.UUID, req *dto.PolicyRequest) (*dto.PolicyResponse, error) {
	now := s.now()
	p := &models.Policy{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := applyPolicyRequest(p, req); err != nil {
		return nil, err
	}
	for _, d := range req.Details {
		p.Details = append(p.Details, newDetail(p.ID, d.FieldName, d.FieldValue, now))
	}
	for _, c := range req.Contacts {
		p.Contacts = append(p.Contacts, newContact(p.ID, c, now))
	}

	if err := s.policies.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create policy: %w", err)
	}

	s.logger.Info("Policy created",
		zap.String("policy_id", p.ID.String()),
		zap.String("policy_type", p.PolicyType),
	)
	resp := toPolicyResponse(p)
	return &resp, nil
}

func (s *PolicyService) List(ctx context.Context, userID uuid.UUID, filter repository.PolicyFilter) ([]dto.PolicyResponse, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, filter.Status)
	}

	policies, err := s.policies.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}

	out := make([]dto.PolicyResponse, 0, len(policies))
	for _, p := range policies {
		out = append(out, toPolicyResponse(p))
	}
	return out, nil
}

func (s *PolicyService) Get(ctx context.Context, userID, id uuid.UUID) (*dto.PolicyResponse, error) {
	p, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := toPolicyResponse(p)
	return &resp, nil
}

// Update replaces the scalar fields of a policy. Details and contacts are
// managed through their own endpoints and are left untouched.
func (s *PolicyService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.PolicyRequest) (*dto.PolicyResponse, error) {
	p, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := applyPolicyRequest(p, req); err != nil {
		return nil, err
	}
	p.UpdatedAt = s.now()

	if err := s.policies.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPolicyNotFound
		}
		return nil, fmt.Errorf("update policy: %w", err)
	}

	resp := toPolicyResponse(p)
	return &resp, nil
}

func (s *PolicyService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.policies.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPolicyNotFound
		}
		return fmt.Errorf("delete policy: %w", err)
	}
	s.logger.Info("Policy deleted", zap.String("policy_id", id.String()))
	return nil
}

func (s *PolicyService) AddDetail(ctx context.Context, userID, policyID uuid.UUID, req *dto.DetailRequest) (*dto.DetailResponse, error) {
	if strings.TrimSpace(req.FieldName) == "" {
		return nil, fmt.Errorf("%w: field_name is required", ErrInvalidInput)
	}
	if _, err := s.load(ctx, userID, policyID); err != nil {
		return nil, err
	}

	d := newDetail(policyID, req.FieldName, req.FieldValue, s.now())
	if err := s.policies.AddDetail(ctx, &d); err != nil {
		return nil, fmt.Errorf("add detail: %w", err)
	}
	return &dto.DetailResponse{ID: d.ID.String(), FieldName: d.FieldName, FieldValue: d.FieldValue}, nil
}

func (s *PolicyService) DeleteDetail(ctx context.Context, userID, policyID, detailID uuid.UUID) error {
	if _, err := s.load(ctx, userID, policyID); err != nil {
		return err
	}
	if err := s.policies.DeleteDetail(ctx, policyID, detailID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPolicyNotFound
		}
		return fmt.Errorf("delete detail: %w", err)
	}
	return nil
}

func (s *PolicyService) AddContact(ctx context.Context, userID, policyID uuid.UUID, req *dto.ContactRequest) (*dto.ContactResponse, error) {
	if strings.TrimSpace(req.Role) == "" {
		return nil, fmt.Errorf("%w: role is required", ErrInvalidInput)
	}
	if _, err := s.load(ctx, userID, policyID); err != nil {
		return nil, err
	}

	c := newContact(policyID, *req, s.now())
	if err := s.policies.AddContact(ctx, &c); err != nil {
		return nil, fmt.Errorf("add contact: %w", err)
	}
	resp := toContactResponse(c)
	return &resp, nil
}

func (s *PolicyService) DeleteContact(ctx context.Context, userID, policyID, contactID uuid.UUID) error {
	if _, err := s.load(ctx, userID, policyID); err != nil {
		return err
	}
	if err := s.policies.DeleteContact(ctx, policyID, contactID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPolicyNotFound
		}
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

// UpcomingRenewals lists policies renewing between today and today+days.
func (s *PolicyService) UpcomingRenewals(ctx context.Context, userID uuid.UUID, days int) ([]dto.RenewalResponse, error) {
	if days < 1 || days > maxRenewalWindowDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidInput, maxRenewalWindowDays)
	}

	y, m, d := s.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	cutoff := today.AddDate(0, 0, days)

	policies, err := s.policies.UpcomingRenewals(ctx, userID, today, cutoff)
	if err != nil {
		return nil, fmt.Errorf("upcoming renewals: %w", err)
	}

	out := make([]dto.RenewalResponse, 0, len(policies))
	for _, p := range policies {
		if p.RenewalDate == nil {
			continue
		}
		out = append(out, dto.RenewalResponse{
			ID:             p.ID.String(),
			Carrier:        p.Carrier,
			PolicyType:     p.PolicyType,
			PolicyNumber:   p.PolicyNumber,
			Nickname:       p.Nickname,
			RenewalDate:    p.RenewalDate.Format(dateLayout),
			DaysUntil:      int(p.RenewalDate.Sub(today).Hours() / 24),
			CoverageAmount: p.CoverageAmount,
		})
	}
	return out, nil
}

func (s *PolicyService) load(ctx context.Context, userID, id uuid.UUID) (*models.Policy, error) {
	p, err := s.policies.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPolicyNotFound
		}
		return nil, fmt.Errorf("load policy: %w", err)
	}
	return p, nil
}

func applyPolicyRequest(p *models.Policy, req *dto.PolicyRequest) error {
	ptype := coverage.NormalizeType(strings.TrimSpace(req.PolicyType))
	if !coverage.IsKnownPolicyType(ptype) {
		return fmt.Errorf("%w: %q", ErrInvalidPolicyType, req.PolicyType)
	}

	status := models.PolicyStatus(req.Status)
	if status == "" {
		status = models.PolicyStatusActive
	}
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	renewal, err := parseDate(strings.TrimSpace(req.RenewalDate))
	if err != nil {
		return fmt.Errorf("%w: renewal_date must be YYYY-MM-DD", ErrInvalidInput)
	}

	for _, amount := range []*int64{req.CoverageAmount, req.Deductible, req.PremiumAmount} {
		if amount != nil && *amount < 0 {
			return fmt.Errorf("%w: amounts cannot be negative", ErrInvalidInput)
		}
	}

	p.PolicyType = ptype
	p.Carrier = strings.TrimSpace(req.Carrier)
	p.PolicyNumber = strings.TrimSpace(req.PolicyNumber)
	p.Nickname = strings.TrimSpace(req.Nickname)
	p.BusinessName = strings.TrimSpace(req.BusinessName)
	p.Status = status
	p.CoverageAmount = req.CoverageAmount
	p.Deductible = req.Deductible
	p.PremiumAmount = req.PremiumAmount
	p.RenewalDate = renewal
	p.Notes = req.Notes
	return nil
}

func newDetail(policyID uuid.UUID, name, value string, now time.Time) models.PolicyDetail {
	return models.PolicyDetail{
		ID:         uuid.New(),
		PolicyID:   policyID,
		FieldName:  strings.TrimSpace(name),
		FieldValue: value,
		CreatedAt:  now,
	}
}

func newContact(policyID uuid.UUID, c dto.ContactRequest, now time.Time) models.PolicyContact {
	return models.PolicyContact{
		ID:        uuid.New(),
		PolicyID:  policyID,
		Role:      strings.ToLower(strings.TrimSpace(c.Role)),
		Name:      c.Name,
		Company:   c.Company,
		Phone:     strings.TrimSpace(c.Phone),
		Email:     c.Email,
		CreatedAt: now,
	}
}
