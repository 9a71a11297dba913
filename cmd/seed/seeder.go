package main

import (
	"context"
	"errors"
	"fmt"

	"keeps/internal/dto"
	"keeps/internal/repository"
	"keeps/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type seeder struct {
	auth     *service.AuthService
	policies *service.PolicyService
	profiles *service.ProfileService
	gaps     *service.GapService
	logger   *zap.Logger
}

// seed creates the fixture user (or logs in when it already exists), saves the
// profile, adds policies that are not there yet and logs the gap analysis.
func (s *seeder) seed(ctx context.Context, f *Fixture) error {
	userID, err := s.ensureUser(ctx, f.User)
	if err != nil {
		return err
	}

	if _, err := s.profiles.Update(ctx, userID, f.Profile.request()); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	existing, err := s.policies.List(ctx, userID, repository.PolicyFilter{})
	if err != nil {
		return fmt.Errorf("list policies: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[policyKey(p.Carrier, p.PolicyNumber)] = true
	}

	created := 0
	for _, p := range f.Policies {
		if p.PolicyNumber != "" && seen[policyKey(p.Carrier, p.PolicyNumber)] {
			s.logger.Info("Policy already seeded, skipping",
				zap.String("carrier", p.Carrier),
				zap.String("policy_number", p.PolicyNumber),
			)
			continue
		}
		if _, err := s.policies.Create(ctx, userID, p.request()); err != nil {
			return fmt.Errorf("create %s policy %q: %w", p.PolicyType, p.PolicyNumber, err)
		}
		created++
	}
	s.logger.Info("Policies seeded", zap.Int("created", created), zap.Int("skipped", len(f.Policies)-created))

	return s.report(ctx, userID)
}

func (s *seeder) ensureUser(ctx context.Context, u FixtureUser) (uuid.UUID, error) {
	resp, err := s.auth.Register(ctx, &dto.RegisterRequest{Username: u.Username, Email: u.Email, Password: u.Password})
	if errors.Is(err, service.ErrUserExists) {
		resp, err = s.auth.Login(ctx, &dto.LoginRequest{Email: u.Email, Password: u.Password})
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("prepare user %s: %w", u.Email, err)
	}
	return uuid.Parse(resp.User.ID)
}

func (s *seeder) report(ctx context.Context, userID uuid.UUID) error {
	analysis, err := s.gaps.Analyze(ctx, userID)
	if err != nil {
		return fmt.Errorf("analyze portfolio: %w", err)
	}

	s.logger.Info("Coverage summary",
		zap.Int("policies", analysis.Summary.TotalPolicies),
		zap.Int64("total_coverage", analysis.Summary.TotalCoverage),
		zap.Int64("total_annual_premium", analysis.Summary.TotalAnnualPremium),
		zap.Strings("missing_categories", analysis.Summary.MissingCategories),
	)
	for _, g := range analysis.Gaps {
		s.logger.Info("Finding",
			zap.String("severity", string(g.Severity)),
			zap.String("id", g.ID),
			zap.String("description", g.Description),
		)
	}
	return nil
}

func policyKey(carrier, number string) string {
	return carrier + "|" + number
}
