package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")

	ErrPolicyNotFound    = errors.New("policy not found")
	ErrInvalidPolicyType = errors.New("invalid policy type")
	ErrInvalidInput      = errors.New("invalid input")

	ErrDocumentNotFound = errors.New("document not found")
	ErrForbidden        = errors.New("forbidden")
	ErrExtractionFailed = errors.New("extraction failed")

	ErrClaimNotFound   = errors.New("claim not found")
	ErrPremiumNotFound = errors.New("premium not found")
)
