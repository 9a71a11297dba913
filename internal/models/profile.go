package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile holds the self-reported facts that personalise gap severities.
type UserProfile struct {
	UserID        uuid.UUID `db:"user_id"`
	FullName      string    `db:"full_name"`
	Phone         string    `db:"phone"`
	IsHomeowner   bool      `db:"is_homeowner"`
	IsRenter      bool      `db:"is_renter"`
	HasDependents bool      `db:"has_dependents"`
	HasVehicle    bool      `db:"has_vehicle"`
	OwnsBusiness  bool      `db:"owns_business"`
	HighNetWorth  bool      `db:"high_net_worth"`
	UpdatedAt     time.Time `db:"updated_at"`
}
