package handlers

import (
	"testing"

	"keeps/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Messages(t *testing.T) {
	err := validate.Struct(&dto.RegisterRequest{Username: "al", Email: "not-an-email", Password: "short"})
	if assert.Error(t, err) {
		msg := validationError(err).Error()
		assert.Contains(t, msg, "username must be at least 3 characters")
		assert.Contains(t, msg, "email is not a valid email")
		assert.Contains(t, msg, "password must be at least 8 characters")
	}

	err = validate.Struct(&dto.PolicyRequest{Status: "lapsed"})
	if assert.Error(t, err) {
		msg := validationError(err).Error()
		assert.Contains(t, msg, "policy_type is required")
		assert.Contains(t, msg, "status must be one of: active expired archived")
	}

	err = validate.Struct(&dto.PremiumRequest{Amount: -5, Frequency: "monthly", DueDate: "2026-11-01"})
	if assert.Error(t, err) {
		assert.Equal(t, "amount must be at least 0", validationError(err).Error())
	}

	assert.NoError(t, validate.Struct(&dto.PolicyRequest{PolicyType: "auto"}))
}
