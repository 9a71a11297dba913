package handlers

import (
	"errors"
	"strings"

	"keeps/internal/service"
	"keeps/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// respondError maps service errors to status codes. Anything unrecognised is
// logged and answered with a generic 500 carrying fallback.
func respondError(c *fiber.Ctx, logger *zap.Logger, err error, fallback string) error {
	status := fiber.StatusInternalServerError
	message := fallback

	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrInvalidPolicyType):
		status, message = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		status, message = fiber.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, service.ErrForbidden):
		status, message = fiber.StatusForbidden, "Forbidden"
	case errors.Is(err, service.ErrPolicyNotFound):
		status, message = fiber.StatusNotFound, "Policy not found"
	case errors.Is(err, service.ErrDocumentNotFound):
		status, message = fiber.StatusNotFound, "Document not found"
	case errors.Is(err, service.ErrClaimNotFound):
		status, message = fiber.StatusNotFound, "Claim not found"
	case errors.Is(err, service.ErrPremiumNotFound):
		status, message = fiber.StatusNotFound, "Premium not found"
	case errors.Is(err, service.ErrUserNotFound):
		status, message = fiber.StatusNotFound, "User not found"
	case errors.Is(err, service.ErrUserExists):
		status, message = fiber.StatusConflict, "User already exists"
	case errors.Is(err, service.ErrExtractionFailed):
		status, message = fiber.StatusBadGateway, err.Error()
	default:
		logger.Error(fallback, zap.String("path", c.Path()), zap.Error(err))
	}

	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized",
	})
}

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals(middleware.LocalUserID).(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}

// childIDs parses the policy id and the id of one of its sub-resources.
func childIDs(c *fiber.Ctx, childParam string) (uuid.UUID, uuid.UUID, error) {
	policyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("Invalid policy ID")
	}
	childID, err := uuid.Parse(c.Params(childParam))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("Invalid " + strings.TrimSuffix(childParam, "Id") + " ID")
	}
	return policyID, childID, nil
}
