package repository

import (
	"context"
	"fmt"
	"time"

	"keeps/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var policyColumns = []string{
	"id", "user_id", "policy_type", "carrier", "policy_number", "nickname", "business_name", "status",
	"coverage_amount", "deductible", "premium_amount", "renewal_date", "notes", "created_at", "updated_at",
}

// PolicyFilter narrows List. Empty fields match everything.
type PolicyFilter struct {
	Status       models.PolicyStatus
	BusinessName string
}

type PolicyRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPolicyRepository(db *pgxpool.Pool, logger *zap.Logger) *PolicyRepository {
	return &PolicyRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts the policy together with its details and contacts.
func (r *PolicyRepository) Create(ctx context.Context, p *models.Policy) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	sql, args, err := psql.Insert("policies").
		Columns(policyColumns...).
		Values(p.ID, p.UserID, p.PolicyType, p.Carrier, p.PolicyNumber, p.Nickname, p.BusinessName, p.Status,
			p.CoverageAmount, p.Deductible, p.PremiumAmount, p.RenewalDate, p.Notes, p.CreatedAt, p.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert policy: %w", err)
	}

	for i := range p.Details {
		if err := insertDetail(ctx, tx, &p.Details[i]); err != nil {
			return err
		}
	}
	for i := range p.Contacts {
		if err := insertContact(ctx, tx, &p.Contacts[i]); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PolicyRepository) Update(ctx context.Context, p *models.Policy) error {
	sql, args, err := psql.Update("policies").
		SetMap(map[string]interface{}{
			"policy_type":     p.PolicyType,
			"carrier":         p.Carrier,
			"policy_number":   p.PolicyNumber,
			"nickname":        p.Nickname,
			"business_name":   p.BusinessName,
			"status":          p.Status,
			"coverage_amount": p.CoverageAmount,
			"deductible":      p.Deductible,
			"premium_amount":  p.PremiumAmount,
			"renewal_date":    p.RenewalDate,
			"notes":           p.Notes,
			"updated_at":      p.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": p.ID, "user_id": p.UserID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update policy: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PolicyRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	sql, args, err := psql.Delete("policies").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete policy: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID loads one policy owned by userID, with details and contacts.
func (r *PolicyRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Policy, error) {
	policies, err := r.query(ctx, psql.Select(policyColumns...).
		From("policies").
		Where(squirrel.Eq{"id": id, "user_id": userID}))
	if err != nil {
		return nil, err
	}
	if len(policies) == 0 {
		return nil, ErrNotFound
	}
	return policies[0], nil
}

func (r *PolicyRepository) List(ctx context.Context, userID uuid.UUID, filter PolicyFilter) ([]*models.Policy, error) {
	where := squirrel.Eq{"user_id": userID}
	if filter.Status != "" {
		where["status"] = filter.Status
	}
	if filter.BusinessName != "" {
		where["business_name"] = filter.BusinessName
	}

	return r.query(ctx, psql.Select(policyColumns...).
		From("policies").
		Where(where).
		OrderBy("created_at ASC"))
}

// UpcomingRenewals returns policies renewing within [from, to], earliest first.
func (r *PolicyRepository) UpcomingRenewals(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*models.Policy, error) {
	return r.query(ctx, psql.Select(policyColumns...).
		From("policies").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.NotEq{"renewal_date": nil}).
		Where(squirrel.GtOrEq{"renewal_date": from}).
		Where(squirrel.LtOrEq{"renewal_date": to}).
		OrderBy("renewal_date ASC"))
}

func (r *PolicyRepository) AddDetail(ctx context.Context, d *models.PolicyDetail) error {
	return insertDetail(ctx, r.db, d)
}

func (r *PolicyRepository) DeleteDetail(ctx context.Context, policyID, detailID uuid.UUID) error {
	return r.deleteChild(ctx, "policy_details", policyID, detailID)
}

func (r *PolicyRepository) AddContact(ctx context.Context, c *models.PolicyContact) error {
	return insertContact(ctx, r.db, c)
}

func (r *PolicyRepository) DeleteContact(ctx context.Context, policyID, contactID uuid.UUID) error {
	return r.deleteChild(ctx, "policy_contacts", policyID, contactID)
}

func (r *PolicyRepository) deleteChild(ctx context.Context, table string, policyID, id uuid.UUID) error {
	sql, args, err := psql.Delete(table).
		Where(squirrel.Eq{"id": id, "policy_id": policyID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PolicyRepository) query(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Policy, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query policies: %w", err)
	}
	defer rows.Close()

	policies := make([]*models.Policy, 0)
	byID := make(map[uuid.UUID]*models.Policy)
	for rows.Next() {
		var p models.Policy
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.PolicyType, &p.Carrier, &p.PolicyNumber, &p.Nickname, &p.BusinessName, &p.Status,
			&p.CoverageAmount, &p.Deductible, &p.PremiumAmount, &p.RenewalDate, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		policies = append(policies, &p)
		byID[p.ID] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(policies) == 0 {
		return policies, nil
	}

	if err := r.loadDetails(ctx, byID); err != nil {
		return nil, err
	}
	if err := r.loadContacts(ctx, byID); err != nil {
		return nil, err
	}
	return policies, nil
}

func (r *PolicyRepository) loadDetails(ctx context.Context, byID map[uuid.UUID]*models.Policy) error {
	sql, args, err := psql.Select("id", "policy_id", "field_name", "field_value", "created_at").
		From("policy_details").
		Where(squirrel.Eq{"policy_id": policyIDs(byID)}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("query policy details: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d models.PolicyDetail
		if err := rows.Scan(&d.ID, &d.PolicyID, &d.FieldName, &d.FieldValue, &d.CreatedAt); err != nil {
			return err
		}
		if p, ok := byID[d.PolicyID]; ok {
			p.Details = append(p.Details, d)
		}
	}
	return rows.Err()
}

func (r *PolicyRepository) loadContacts(ctx context.Context, byID map[uuid.UUID]*models.Policy) error {
	sql, args, err := psql.Select("id", "policy_id", "role", "name", "company", "phone", "email", "created_at").
		From("policy_contacts").
		Where(squirrel.Eq{"policy_id": policyIDs(byID)}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("query policy contacts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.PolicyContact
		if err := rows.Scan(&c.ID, &c.PolicyID, &c.Role, &c.Name, &c.Company, &c.Phone, &c.Email, &c.CreatedAt); err != nil {
			return err
		}
		if p, ok := byID[c.PolicyID]; ok {
			p.Contacts = append(p.Contacts, c)
		}
	}
	return rows.Err()
}

func policyIDs(byID map[uuid.UUID]*models.Policy) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	return ids
}

// execer is satisfied by both the pool and a transaction.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func insertDetail(ctx context.Context, db execer, d *models.PolicyDetail) error {
	sql, args, err := psql.Insert("policy_details").
		Columns("id", "policy_id", "field_name", "field_value", "created_at").
		Values(d.ID, d.PolicyID, d.FieldName, d.FieldValue, d.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert policy detail: %w", err)
	}
	return nil
}

func insertContact(ctx context.Context, db execer, c *models.PolicyContact) error {
	sql, args, err := psql.Insert("policy_contacts").
		Columns("id", "policy_id", "role", "name", "company", "phone", "email", "created_at").
		Values(c.ID, c.PolicyID, c.Role, c.Name, c.Company, c.Phone, c.Email, c.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert policy contact: %w", err)
	}
	return nil
}
