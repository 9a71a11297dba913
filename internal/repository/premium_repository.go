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

var premiumColumns = []string{
	"id", "policy_id", "amount", "frequency", "due_date", "paid_date", "payment_method", "notes", "created_at",
}

type PremiumRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPremiumRepository(db *pgxpool.Pool, logger *zap.Logger) *PremiumRepository {
	return &PremiumRepository{
		db:     db,
		logger: logger,
	}
}

func (r *PremiumRepository) Create(ctx context.Context, p *models.Premium) error {
	sql, args, err := psql.Insert("premiums").
		Columns(premiumColumns...).
		Values(p.ID, p.PolicyID, p.Amount, p.Frequency, p.DueDate, p.PaidDate, p.PaymentMethod, p.Notes, p.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		r.logger.Error("Failed to insert premium", zap.String("policy_id", p.PolicyID.String()), zap.Error(err))
		return fmt.Errorf("insert premium: %w", err)
	}
	return nil
}

func (r *PremiumRepository) Update(ctx context.Context, p *models.Premium) error {
	sql, args, err := psql.Update("premiums").
		SetMap(map[string]interface{}{
			"amount":         p.Amount,
			"frequency":      p.Frequency,
			"due_date":       p.DueDate,
			"paid_date":      p.PaidDate,
			"payment_method": p.PaymentMethod,
			"notes":          p.Notes,
		}).
		Where(squirrel.Eq{"id": p.ID, "policy_id": p.PolicyID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update premium: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PremiumRepository) Delete(ctx context.Context, policyID, id uuid.UUID) error {
	sql, args, err := psql.Delete("premiums").
		Where(squirrel.Eq{"id": id, "policy_id": policyID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete premium: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PremiumRepository) GetByID(ctx context.Context, policyID, id uuid.UUID) (*models.Premium, error) {
	sql, args, err := psql.Select(premiumColumns...).
		From("premiums").
		Where(squirrel.Eq{"id": id, "policy_id": policyID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var p models.Premium
	if err := scanPremium(r.db.QueryRow(ctx, sql, args...), &p); err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// ListByPolicy returns a policy's premiums, latest due date first.
func (r *PremiumRepository) ListByPolicy(ctx context.Context, policyID uuid.UUID) ([]*models.Premium, error) {
	return r.query(ctx, psql.Select(premiumColumns...).
		From("premiums").
		Where(squirrel.Eq{"policy_id": policyID}).
		OrderBy("due_date DESC", "created_at DESC"))
}

// ListByUser returns premiums across every policy the user owns.
func (r *PremiumRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Premium, error) {
	return r.query(ctx, premiumsByUser(userID))
}

func premiumsByUser(userID uuid.UUID) squirrel.SelectBuilder {
	cols := make([]string, len(premiumColumns))
	for i, c := range premiumColumns {
		cols[i] = "pr." + c
	}
	return psql.Select(cols...).
		From("premiums pr").
		Join("policies p ON p.id = pr.policy_id").
		Where(squirrel.Eq{"p.user_id": userID}).
		OrderBy("pr.due_date DESC")
}

func (r *PremiumRepository) query(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Premium, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query premiums: %w", err)
	}
	defer rows.Close()

	premiums := make([]*models.Premium, 0)
	for rows.Next() {
		var p models.Premium
		if err := scanPremium(rows, &p); err != nil {
			return nil, err
		}
		premiums = append(premiums, &p)
	}
	return premiums, rows.Err()
}

func scanPremium(row rowScanner, p *models.Premium) error {
	return row.Scan(&p.ID, &p.PolicyID, &p.Amount, &p.Frequency, &p.DueDate, &p.PaidDate,
		&p.PaymentMethod, &p.Notes, &p.CreatedAt)
}
