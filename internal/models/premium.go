package models

import (
	"time"

	"github.com/google/uuid"
)

type PremiumFrequency string

const (
	FrequencyMonthly    PremiumFrequency = "monthly"
	FrequencyQuarterly  PremiumFrequency = "quarterly"
	FrequencySemiAnnual PremiumFrequency = "semi_annual"
	FrequencyAnnual     PremiumFrequency = "annual"
)

// PaymentsPerYear is how many payments of this frequency fall in a year.
// Unknown frequencies count once.
func (f PremiumFrequency) PaymentsPerYear() int64 {
	switch f {
	case FrequencyMonthly:
		return 12
	case FrequencyQuarterly:
		return 4
	case FrequencySemiAnnual:
		return 2
	}
	return 1
}

func (f PremiumFrequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencySemiAnnual, FrequencyAnnual:
		return true
	}
	return false
}

// Premium is one scheduled premium payment. Amount is cents.
type Premium struct {
	ID            uuid.UUID        `db:"id"`
	PolicyID      uuid.UUID        `db:"policy_id"`
	Amount        int64            `db:"amount"`
	Frequency     PremiumFrequency `db:"frequency"`
	DueDate       time.Time        `db:"due_date"`
	PaidDate      *time.Time       `db:"paid_date"`
	PaymentMethod string           `db:"payment_method"`
	Notes         string           `db:"notes"`
	CreatedAt     time.Time        `db:"created_at"`
}
