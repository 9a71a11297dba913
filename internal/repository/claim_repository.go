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

var claimColumns = []string{
	"id", "policy_id", "claim_number", "status", "date_filed", "date_resolved",
	"amount_claimed", "amount_paid", "description", "notes", "created_at",
}

type ClaimRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewClaimRepository(db *pgxpool.Pool, logger *zap.Logger) *ClaimRepository {
	return &ClaimRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ClaimRepository) Create(ctx context.Context, c *models.Claim) error {
	sql, args, err := psql.Insert("claims").
		Columns(claimColumns...).
		Values(c.ID, c.PolicyID, c.ClaimNumber, c.Status, c.DateFiled, c.DateResolved,
			c.AmountClaimed, c.AmountPaid, c.Description, c.Notes, c.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		r.logger.Error("Failed to insert claim", zap.String("policy_id", c.PolicyID.String()), zap.Error(err))
		return fmt.Errorf("insert claim: %w", err)
	}
	return nil
}

func (r *ClaimRepository) Update(ctx context.Context, c *models.Claim) error {
	sql, args, err := psql.Update("claims").
		SetMap(map[string]interface{}{
			"claim_number":   c.ClaimNumber,
			"status":         c.Status,
			"date_filed":     c.DateFiled,
			"date_resolved":  c.DateResolved,
			"amount_claimed": c.AmountClaimed,
			"amount_paid":    c.AmountPaid,
			"description":    c.Description,
			"notes":          c.Notes,
		}).
		Where(squirrel.Eq{"id": c.ID, "policy_id": c.PolicyID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update claim: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ClaimRepository) Delete(ctx context.Context, policyID, id uuid.UUID) error {
	sql, args, err := psql.Delete("claims").
		Where(squirrel.Eq{"id": id, "policy_id": policyID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete claim: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ClaimRepository) GetByID(ctx context.Context, policyID, id uuid.UUID) (*models.Claim, error) {
	sql, args, err := psql.Select(claimColumns...).
		From("claims").
		Where(squirrel.Eq{"id": id, "policy_id": policyID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var c models.Claim
	if err := scanClaim(r.db.QueryRow(ctx, sql, args...), &c); err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// ListByPolicy returns a policy's claims, most recently filed first.
func (r *ClaimRepository) ListByPolicy(ctx context.Context, policyID uuid.UUID) ([]*models.Claim, error) {
	sql, args, err := psql.Select(claimColumns...).
		From("claims").
		Where(squirrel.Eq{"policy_id": policyID}).
		OrderBy("date_filed DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query claims: %w", err)
	}
	defer rows.Close()

	claims := make([]*models.Claim, 0)
	for rows.Next() {
		var c models.Claim
		if err := scanClaim(rows, &c); err != nil {
			return nil, err
		}
		claims = append(claims, &c)
	}
	return claims, rows.Err()
}

func scanClaim(row rowScanner, c *models.Claim) error {
	return row.Scan(&c.ID, &c.PolicyID, &c.ClaimNumber, &c.Status, &c.DateFiled, &c.DateResolved,
		&c.AmountClaimed, &c.AmountPaid, &c.Description, &c.Notes, &c.CreatedAt)
}
