package handlers

import (
	"keeps/internal/dto"
	"keeps/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ClaimHandler struct {
	claimService *service.ClaimService
	logger       *zap.Logger
}

func NewClaimHandler(claimService *service.ClaimService, logger *zap.Logger) *ClaimHandler {
	return &ClaimHandler{
		claimService: claimService,
		logger:       logger,
	}
}

// ListClaims godoc
// @Summary List claims filed against a policy
// @Tags claims
// @Produce json
// @Param id path string true "Policy ID"
// @Security Bearer
// @Success 200 {array} dto.ClaimResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/policies/{id}/claims [get]
func (h *ClaimHandler) ListClaims(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	policyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid policy ID")
	}

	claims, err := h.claimService.List(c.UserContext(), userID, policyID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list claims")
	}
	return c.JSON(claims)
}

// CreateClaim godoc
// @Summary File a claim
// @Tags claims
// @Accept json
// @Produce json
// @Param id path string true "Policy ID"
// @Param request body dto.ClaimRequest true "Claim"
// @Security Bearer
// @Success 201 {object} dto.ClaimResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/policies/{id}/claims [post]
func (h *ClaimHandler) CreateClaim(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	policyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid policy ID")
	}

	var req dto.ClaimRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.claimService.Create(c.UserContext(), userID, policyID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create claim")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateClaim godoc
// @Summary Update a claim
// @Description Only the fields present in the body are changed
// @Tags claims
// @Accept json
// @Produce json
// @Param id path string true "Policy ID"
// @Param claimId path string true "Claim ID"
// @Param request body dto.ClaimUpdateRequest true "Changed fields"
// @Security Bearer
// @Success 200 {object} dto.ClaimResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/policies/{id}/claims/{claimId} [put]
func (h *ClaimHandler) UpdateClaim(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	policyID, claimID, err := childIDs(c, "claimId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.ClaimUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.claimService.Update(c.UserContext(), userID, policyID, claimID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update claim")
	}
	return c.JSON(resp)
}

// DeleteClaim godoc
// @Summary Delete a claim
// @Tags claims
// @Param id path string true "Policy ID"
// @Param claimId path string true "Claim ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/policies/{id}/claims/{claimId} [delete]
func (h *ClaimHandler) DeleteClaim(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	policyID, claimID, err := childIDs(c, "claimId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.claimService.Delete(c.UserContext(), userID, policyID, claimID); err != nil {
		return respondError(c, h.logger, err, "Failed to delete claim")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
