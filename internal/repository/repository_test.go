package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFound(t *testing.T) {
	assert.ErrorIs(t, notFound(pgx.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, notFound(fmt.Errorf("scan: %w", pgx.ErrNoRows)), ErrNotFound)

	other := errors.New("connection reset")
	assert.Equal(t, other, notFound(other))
}

func TestPolicyChildrenQueryExpandsIDs(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	sql, args, err := psql.Select("id").
		From("policy_details").
		Where(squirrel.Eq{"policy_id": ids}).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id FROM policy_details WHERE policy_id IN ($1,$2)", sql)
	assert.Len(t, args, 2)
}

func TestSingleUUIDIsNotExpanded(t *testing.T) {
	id := uuid.New()
	sql, args, err := psql.Select("id").
		From("policies").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id FROM policies WHERE id = $1", sql)
	require.Len(t, args, 1)
	assert.Equal(t, id.String(), args[0])
}

func TestPremiumsByUserJoinsPolicies(t *testing.T) {
	sql, args, err := premiumsByUser(uuid.New()).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT pr.id, pr.policy_id, pr.amount, pr.frequency, pr.due_date, pr.paid_date, "+
		"pr.payment_method, pr.notes, pr.created_at FROM premiums pr "+
		"JOIN policies p ON p.id = pr.policy_id WHERE p.user_id = $1 ORDER BY pr.due_date DESC", sql)
	assert.Len(t, args, 1)
}
