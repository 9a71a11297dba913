package models

import (
	"time"

	"github.com/google/uuid"
)

type PolicyStatus string

const (
	PolicyStatusActive   PolicyStatus = "active"
	PolicyStatusExpired  PolicyStatus = "expired"
	PolicyStatusArchived PolicyStatus = "archived"
)

func (s PolicyStatus) Valid() bool {
	switch s {
	case PolicyStatusActive, PolicyStatusExpired, PolicyStatusArchived:
		return true
	}
	return false
}

// Policy amounts are whole dollars; nil means not recorded.
type Policy struct {
	ID             uuid.UUID    `db:"id"`
	UserID         uuid.UUID    `db:"user_id"`
	PolicyType     string       `db:"policy_type"`
	Carrier        string       `db:"carrier"`
	PolicyNumber   string       `db:"policy_number"`
	Nickname       string       `db:"nickname"`
	BusinessName   string       `db:"business_name"`
	Status         PolicyStatus `db:"status"`
	CoverageAmount *int64       `db:"coverage_amount"`
	Deductible     *int64       `db:"deductible"`
	PremiumAmount  *int64       `db:"premium_amount"`
	RenewalDate    *time.Time   `db:"renewal_date"`
	Notes          string       `db:"notes"`
	CreatedAt      time.Time    `db:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at"`

	Details  []PolicyDetail  `db:"-"`
	Contacts []PolicyContact `db:"-"`
}

type PolicyDetail struct {
	ID         uuid.UUID `db:"id"`
	PolicyID   uuid.UUID `db:"policy_id"`
	FieldName  string    `db:"field_name"`
	FieldValue string    `db:"field_value"`
	CreatedAt  time.Time `db:"created_at"`
}

type PolicyContact struct {
	ID        uuid.UUID `db:"id"`
	PolicyID  uuid.UUID `db:"policy_id"`
	Role      string    `db:"role"`
	Name      string    `db:"name"`
	Company   string    `db:"company"`
	Phone     string    `db:"phone"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}
