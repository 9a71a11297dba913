package repository

import (
	"context"
	"fmt"

	"keeps/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ProfileRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewProfileRepository(db *pgxpool.Pool, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger,
	}
}

// GetByUserID returns ErrNotFound when the user never saved a profile.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	sql, args, err := psql.Select(
		"user_id", "full_name", "phone", "is_homeowner", "is_renter", "has_dependents",
		"has_vehicle", "owns_business", "high_net_worth", "updated_at",
	).
		From("user_profiles").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var p models.UserProfile
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&p.UserID, &p.FullName, &p.Phone, &p.IsHomeowner, &p.IsRenter, &p.HasDependents,
		&p.HasVehicle, &p.OwnsBusiness, &p.HighNetWorth, &p.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, p *models.UserProfile) error {
	sql, args, err := psql.Insert("user_profiles").
		Columns(
			"user_id", "full_name", "phone", "is_homeowner", "is_renter", "has_dependents",
			"has_vehicle", "owns_business", "high_net_worth", "updated_at",
		).
		Values(
			p.UserID, p.FullName, p.Phone, p.IsHomeowner, p.IsRenter, p.HasDependents,
			p.HasVehicle, p.OwnsBusiness, p.HighNetWorth, p.UpdatedAt,
		).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			phone = EXCLUDED.phone,
			is_homeowner = EXCLUDED.is_homeowner,
			is_renter = EXCLUDED.is_renter,
			has_dependents = EXCLUDED.has_dependents,
			has_vehicle = EXCLUDED.has_vehicle,
			owns_business = EXCLUDED.owns_business,
			high_net_worth = EXCLUDED.high_net_worth,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
