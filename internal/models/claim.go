package models

import (
	"time"

	"github.com/google/uuid"
)

type ClaimStatus string

const (
	ClaimStatusOpen       ClaimStatus = "open"
	ClaimStatusInProgress ClaimStatus = "in_progress"
	ClaimStatusClosed     ClaimStatus = "closed"
	ClaimStatusDenied     ClaimStatus = "denied"
)

func (s ClaimStatus) Valid() bool {
	switch s {
	case ClaimStatusOpen, ClaimStatusInProgress, ClaimStatusClosed, ClaimStatusDenied:
		return true
	}
	return false
}

// Claim amounts are cents.
type Claim struct {
	ID            uuid.UUID   `db:"id"`
	PolicyID      uuid.UUID   `db:"policy_id"`
	ClaimNumber   string      `db:"claim_number"`
	Status        ClaimStatus `db:"status"`
	DateFiled     time.Time   `db:"date_filed"`
	DateResolved  *time.Time  `db:"date_resolved"`
	AmountClaimed *int64      `db:"amount_claimed"`
	AmountPaid    *int64      `db:"amount_paid"`
	Description   string      `db:"description"`
	Notes         string      `db:"notes"`
	CreatedAt     time.Time   `db:"created_at"`
}
