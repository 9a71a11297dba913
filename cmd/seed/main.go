package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"keeps/internal/dto"
	"keeps/internal/repository"
	"keeps/internal/service"
	"keeps/migrations"
	"keeps/pkg/auth"
	"keeps/pkg/config"
	"keeps/pkg/logger"
	"keeps/pkg/postgres"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Fixture is a demo portfolio: one user, their profile flags and policies.
type Fixture struct {
	User     FixtureUser     `yaml:"user"`
	Profile  FixtureProfile  `yaml:"profile"`
	Policies []FixturePolicy `yaml:"policies"`
}

type FixtureUser struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type FixtureProfile struct {
	FullName      string `yaml:"full_name"`
	Phone         string `yaml:"phone"`
	IsHomeowner   bool   `yaml:"is_homeowner"`
	IsRenter      bool   `yaml:"is_renter"`
	HasDependents bool   `yaml:"has_dependents"`
	HasVehicle    bool   `yaml:"has_vehicle"`
	OwnsBusiness  bool   `yaml:"owns_business"`
	HighNetWorth  bool   `yaml:"high_net_worth"`
}

type FixturePolicy struct {
	PolicyType     string           `yaml:"policy_type"`
	Carrier        string           `yaml:"carrier"`
	PolicyNumber   string           `yaml:"policy_number"`
	Nickname       string           `yaml:"nickname"`
	BusinessName   string           `yaml:"business_name"`
	Status         string           `yaml:"status"`
	CoverageAmount *int64           `yaml:"coverage_amount"`
	Deductible     *int64           `yaml:"deductible"`
	PremiumAmount  *int64           `yaml:"premium_amount"`
	RenewalDate    string           `yaml:"renewal_date"`
	Notes          string           `yaml:"notes"`
	Details        []FixtureDetail  `yaml:"details"`
	Contacts       []FixtureContact `yaml:"contacts"`
}

type FixtureDetail struct {
	FieldName  string `yaml:"field_name"`
	FieldValue string `yaml:"field_value"`
}

type FixtureContact struct {
	Role    string `yaml:"role"`
	Name    string `yaml:"name"`
	Company string `yaml:"company"`
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email"`
}

func main() {
	fixturePath := flag.String("file", "cmd/seed/portfolio.yaml", "YAML portfolio fixture")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	fixture, err := loadFixture(*fixturePath)
	if err != nil {
		logger.Fatal("Failed to load fixture", zap.String("file", *fixturePath), zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db, migrations.FS, appLogger); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db, appLogger)
	policyRepo := repository.NewPolicyRepository(db, appLogger)
	profileRepo := repository.NewProfileRepository(db, appLogger)
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	s := &seeder{
		auth:     service.NewAuthService(userRepo, jwtManager, appLogger),
		policies: service.NewPolicyService(policyRepo, appLogger),
		profiles: service.NewProfileService(profileRepo, appLogger),
		logger:   appLogger,
	}
	s.gaps = service.NewGapService(policyRepo, s.profiles, appLogger)

	logger.Info("Starting database seeding...", zap.String("file", *fixturePath))
	if err := s.seed(ctx, fixture); err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}
	logger.Info("Database seeding completed successfully!")
}

func loadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return parseFixture(data)
}

func parseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	if f.User.Email == "" || f.User.Password == "" {
		return nil, errors.New("fixture user needs an email and a password")
	}
	if f.User.Username == "" {
		f.User.Username = strings.Split(f.User.Email, "@")[0]
	}
	return &f, nil
}

func (p FixturePolicy) request() *dto.PolicyRequest {
	req := &dto.PolicyRequest{
		PolicyType:     p.PolicyType,
		Carrier:        p.Carrier,
		PolicyNumber:   p.PolicyNumber,
		Nickname:       p.Nickname,
		BusinessName:   p.BusinessName,
		Status:         p.Status,
		CoverageAmount: p.CoverageAmount,
		Deductible:     p.Deductible,
		PremiumAmount:  p.PremiumAmount,
		RenewalDate:    p.RenewalDate,
		Notes:          p.Notes,
	}
	for _, d := range p.Details {
		req.Details = append(req.Details, dto.DetailRequest{FieldName: d.FieldName, FieldValue: d.FieldValue})
	}
	for _, c := range p.Contacts {
		req.Contacts = append(req.Contacts, dto.ContactRequest{
			Role:    c.Role,
			Name:    c.Name,
			Company: c.Company,
			Phone:   c.Phone,
			Email:   c.Email,
		})
	}
	return req
}

func (p FixtureProfile) request() *dto.ProfileRequest {
	return &dto.ProfileRequest{
		FullName:      p.FullName,
		Phone:         p.Phone,
		IsHomeowner:   p.IsHomeowner,
		IsRenter:      p.IsRenter,
		HasDependents: p.HasDependents,
		HasVehicle:    p.HasVehicle,
		OwnsBusiness:  p.OwnsBusiness,
		HighNetWorth:  p.HighNetWorth,
	}
}
