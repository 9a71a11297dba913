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

type ProfileService struct {
	profiles ProfileStore
	logger   *zap.Logger
}

func NewProfileService(profiles ProfileStore, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		logger:   logger,
	}
}

// Get returns the stored profile, or an all-false profile if none was saved.
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	p, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := toProfileResponse(p)
	return &resp, nil
}

func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, req *dto.ProfileRequest) (*dto.ProfileResponse, error) {
	p := &models.UserProfile{
		UserID:        userID,
		FullName:      req.FullName,
		Phone:         req.Phone,
		IsHomeowner:   req.IsHomeowner,
		IsRenter:      req.IsRenter,
		HasDependents: req.HasDependents,
		HasVehicle:    req.HasVehicle,
		OwnsBusiness:  req.OwnsBusiness,
		HighNetWorth:  req.HighNetWorth,
		UpdatedAt:     time.Now(),
	}
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	s.logger.Info("Profile updated", zap.String("user_id", userID.String()))
	resp := toProfileResponse(p)
	return &resp, nil
}

// UserContext loads the profile flags the gap analysis personalises on.
func (s *ProfileService) UserContext(ctx context.Context, userID uuid.UUID) (coverage.UserContext, error) {
	p, err := s.load(ctx, userID)
	if err != nil {
		return coverage.UserContext{}, err
	}
	return UserContext(p), nil
}

func (s *ProfileService) load(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &models.UserProfile{UserID: userID}, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}
