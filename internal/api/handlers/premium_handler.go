package handlers

import (
	"keeps/internal/dto"
	"keeps/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PremiumHandler struct {
	premiumService *service.PremiumService
	logger         *zap.Logger
}

func NewPremiumHandler(premiumService *service.PremiumService, logger *zap.Logger) *PremiumHandler {
	return &PremiumHandler{
		premiumService: premiumService,
		logger:         logger,
	}
}

// ListPremiums godoc
// @Summary List premium payments of a policy
// @Tags premiums
// @Produce json
// @Param id path string true "Policy ID"
// @Security Bearer
// @Success 200 {array} dto.PremiumResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/policies/{id}/premiums [get]
func (h *PremiumHandler) ListPremiums(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	policyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid policy ID")
	}

	premiums, err := h.premiumService.List(c.UserContext(), userID, policyID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list premiums")
	}
	return c.JSON(premiums)
}

// CreatePremium godoc
// @Summary Record a premium payment
// @Tags premiums
// @Accept json
// @Produce json
// @Param id path string true "Policy ID"
// @Param request body dto.PremiumRequest true "Premium"
// @Security Bearer
// @Success 201 {object} dto.PremiumResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/policies/{id}/premiums [post]
func (h *PremiumHandler) CreatePremium(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	policyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid policy ID")
	}

	var req dto.PremiumRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.premiumService.Create(c.UserContext(), userID, policyID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to record premium")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdatePremium godoc
// @Summary Update a premium payment
// @Description Only the fields present in the body are changed
// @Tags premiums
// @Accept json
// @Produce json
// @Param id path string true "Policy ID"
// @Param premiumId path string true "Premium ID"
// @Param request body dto.PremiumUpdateRequest true "Changed fields"
// @Security Bearer
// @Success 200 {object} dto.PremiumResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/policies/{id}/premiums/{premiumId} [put]
func (h *PremiumHandler) UpdatePremium(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	policyID, premiumID, err := childIDs(c, "premiumId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.PremiumUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.premiumService.Update(c.UserContext(), userID, policyID, premiumID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update premium")
	}
	return c.JSON(resp)
}

// DeletePremium godoc
// @Summary Delete a premium payment
// @Tags premiums
// @Param id path string true "Policy ID"
// @Param premiumId path string true "Premium ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/policies/{id}/premiums/{premiumId} [delete]
func (h *PremiumHandler) DeletePremium(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	policyID, premiumID, err := childIDs(c, "premiumId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.premiumService.Delete(c.UserContext(), userID, policyID, premiumID); err != nil {
		return respondError(c, h.logger, err, "Failed to delete premium")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AnnualSpend godoc
// @Summary Yearly premium spend
// @Description Sum of every recorded premium scaled by its payments per year, in cents
// @Tags premiums
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.AnnualSpendResponse
// @Router /api/v1/premiums/annual-spend [get]
func (h *PremiumHandler) AnnualSpend(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	resp, err := h.premiumService.AnnualSpend(c.UserContext(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to compute annual spend")
	}
	return c.JSON(resp)
}
