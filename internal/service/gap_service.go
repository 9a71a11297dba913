package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"keeps/internal/coverage"
	"keeps/internal/dto"
	"keeps/internal/models"
	"keeps/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GapService loads a user's portfolio and runs the coverage engine over it.
type GapService struct {
	policies PolicyStore
	profiles *ProfileService
	logger   *zap.Logger
	now      func() time.Time
}

func NewGapService(policies PolicyStore, profiles *ProfileService, logger *zap.Logger) *GapService {
	return &GapService{
		policies: policies,
		profiles: profiles,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *GapService) Analyze(ctx context.Context, userID uuid.UUID) (*dto.GapAnalysisResponse, error) {
	policies, uc, err := s.portfolio(ctx, userID, repository.PolicyFilter{})
	if err != nil {
		return nil, err
	}

	cps := coveragePolicies(policies)
	findings := coverage.AnalyzeGapsAt(cps, uc, s.now())

	s.logger.Debug("Gap analysis completed",
		zap.String("user_id", userID.String()),
		zap.Int("policies", len(cps)),
		zap.Int("findings", len(findings)),
	)

	return &dto.GapAnalysisResponse{
		Gaps:        findings,
		Summary:     coverage.SummarizeCoverage(cps),
		PolicyCount: len(cps),
	}, nil
}

func (s *GapService) Summary(ctx context.Context, userID uuid.UUID) (*coverage.Summary, error) {
	policies, err := s.policies.List(ctx, userID, repository.PolicyFilter{})
	if err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}
	summary := coverage.SummarizeCoverage(coveragePolicies(policies))
	return &summary, nil
}

// PolicyGaps analyses the whole portfolio and keeps the findings scoped to
// one policy. The policy must belong to the user.
func (s *GapService) PolicyGaps(ctx context.Context, userID, policyID uuid.UUID) (*dto.PolicyGapsResponse, error) {
	if _, err := s.policies.GetByID(ctx, userID, policyID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPolicyNotFound
		}
		return nil, fmt.Errorf("load policy: %w", err)
	}

	policies, uc, err := s.portfolio(ctx, userID, repository.PolicyFilter{})
	if err != nil {
		return nil, err
	}

	findings := coverage.AnalyzeGapsAt(coveragePolicies(policies), uc, s.now())
	return &dto.PolicyGapsResponse{
		Gaps:     coverage.FindingsForPolicy(findings, policyID.String()),
		PolicyID: policyID.String(),
	}, nil
}

// BusinessGaps runs the analysis over the policies of one business entity.
func (s *GapService) BusinessGaps(ctx context.Context, userID uuid.UUID, businessName string) (*dto.BusinessGapsResponse, error) {
	if businessName == "" {
		return nil, ErrPolicyNotFound
	}
	policies, uc, err := s.portfolio(ctx, userID, repository.PolicyFilter{BusinessName: businessName})
	if err != nil {
		return nil, err
	}
	if len(policies) == 0 {
		return nil, ErrPolicyNotFound
	}

	cps := coveragePolicies(policies)
	resp := &dto.BusinessGapsResponse{
		BusinessName: businessName,
		Policies:     make([]dto.PolicyResponse, 0, len(policies)),
		Gaps:         coverage.AnalyzeGapsAt(cps, uc, s.now()),
		Summary:      coverage.SummarizeCoverage(cps),
		Contacts:     make([]dto.ContactResponse, 0),
	}
	for _, p := range policies {
		resp.Policies = append(resp.Policies, toPolicyResponse(p))
		for _, c := range p.Contacts {
			resp.Contacts = append(resp.Contacts, toContactResponse(c))
		}
	}
	return resp, nil
}

func (s *GapService) Taxonomy() *dto.TaxonomyResponse {
	return &dto.TaxonomyResponse{
		PolicyTypes: coverage.PolicyTypes(),
		Categories:  coverage.Categories(),
		GapRules:    coverage.GapRules(),
		Exclusions:  coverage.Exclusions(),
	}
}

func (s *GapService) portfolio(ctx context.Context, userID uuid.UUID, filter repository.PolicyFilter) ([]*models.Policy, coverage.UserContext, error) {
	policies, err := s.policies.List(ctx, userID, filter)
	if err != nil {
		return nil, coverage.UserContext{}, fmt.Errorf("list policies: %w", err)
	}
	uc, err := s.profiles.UserContext(ctx, userID)
	if err != nil {
		return nil, coverage.UserContext{}, err
	}
	return policies, uc, nil
}
