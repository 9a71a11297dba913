package handlers

import (
	"keeps/internal/dto"
	"keeps/internal/models"
	"keeps/internal/repository"
	"keeps/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PolicyHandler struct {
	policyService *service.PolicyService
	logger        *zap.Logger
}

func NewPolicyHandler(policyService *service.PolicyService, logger *zap.Logger) *PolicyHandler {
	return &PolicyHandler{
		policyService: policyService,
		logger:        logger,
	}
}

// CreatePolicy godoc
// @Summary Create a policy
// @Description Create an insurance policy, optionally with details and contacts
// @Tags policies
// @Accept json
// @Produce json
// @Param request body dto.PolicyRequest true "Policy"
// @Security Bearer
// @Success 201 {object} dto.PolicyResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/policies [post]
func (h *PolicyHandler) CreatePolicy(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.PolicyRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.policyService.Create(c.UserContext(), userID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create policy")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListPolicies godoc
// @Summary List policies
// @Tags policies
// @Produce json
// @Param status query string false "active, expired or archived"
// @Param business_name query string false "Business entity name"
// @Security Bearer
// @Success 200 {array} dto.PolicyResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/policies [get]
func (h *PolicyHandler) ListPolicies(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	filter := repository.PolicyFilter{
		Status:       models.PolicyStatus(c.Query("status")),
		BusinessName: c.Query("business_name"),
	}
	resp, err := h.policyService.List(c.UserContext(), userID, filter)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list policies")
	}
	return c.JSON(resp)
}

// GetPolicy godoc
// @Summary Get a policy
// @Tags policies
// @Produce json
// @Param id path string true "Policy ID"
// @Security Bearer
// @Success 200 {object} dto.PolicyResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/policies/{id} [get]
func (h *PolicyHandler) GetPolicy(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	policyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid policy ID")
	}

	resp, err := h.policyService.Get(c.UserContext(), userID, policyID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to load policy")
	}
	return c.JSON(resp)
}

// UpdatePolicy godoc
// @Summary Update a policy
// @Description Replace the policy fields. Details and contacts are not touched.
// @Tags policies
// @Accept json
// @Produce json
// @Param id path string true "Policy ID"
// @Param request body dto.PolicyRequest true "Policy"
// @Security Bearer
// @Success 200 {object} dto.PolicyResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/policies/{id} [put]
func (h *PolicyHandler) UpdatePolicy(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	policyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid policy ID")
	}

	var req dto.PolicyRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.policyService.Update(c.UserContext(), userID, policyID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update policy")
	}
	return c.JSON(resp)
}

// DeletePolicy godoc
// @Summary Delete a policy
// @Tags policies
// @Param id path string true "Policy ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/policies/{id} [delete]
func (h *PolicyHandler) DeletePolicy(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	policyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid policy ID")
	}

	if err := h.policyService.Delete(c.UserContext(), userID, policyID); err != nil {
		return respondError(c, h.logger, err, "Failed to delete policy")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddDetail godoc
// @Summary Add a policy detail
// @Tags policies
// @Accept json
// @Produce json
// @Param id path string true "Policy ID"
// @Param request body dto.DetailRequest true "Detail"
// @Security Bearer
// @Success 201 {object} dto.DetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/policies/{id}/details [post]
func (h *PolicyHandler) AddDetail(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	policyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid policy ID")
	}

	var req dto.DetailRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.policyService.AddDetail(c.UserContext(), userID, policyID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to add detail")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// DeleteDetail godoc
// @Summary Delete a policy detail
// @Tags policies
// @Param id path string true "Policy ID"
// @Param detailId path string true "Detail ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/policies/{id}/details/{detailId} [delete]
func (h *PolicyHandler) DeleteDetail(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	policyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid policy ID")
	}
	detailID, err := uuid.Parse(c.Params("detailId"))
	if err != nil {
		return badRequest(c, "Invalid detail ID")
	}

	if err := h.policyService.DeleteDetail(c.UserContext(), userID, policyID, detailID); err != nil {
		return respondError(c, h.logger, err, "Failed to delete detail")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddContact godoc
// @Summary Add a policy contact
// @Tags policies
// @Accept json
// @Produce json
// @Param id path string true "Policy ID"
// @Param request body dto.ContactRequest true "Contact"
// @Security Bearer
// @Success 201 {object} dto.ContactResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/policies/{id}/contacts [post]
func (h *PolicyHandler) AddContact(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	policyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid policy ID")
	}

	var req dto.ContactRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.policyService.AddContact(c.UserContext(), userID, policyID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to add contact")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// DeleteContact godoc
// @Summary Delete a policy contact
// @Tags policies
// @Param id path string true "Policy ID"
// @Param contactId path string true "Contact ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/policies/{id}/contacts/{contactId} [delete]
func (h *PolicyHandler) DeleteContact(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	policyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid policy ID")
	}
	contactID, err := uuid.Parse(c.Params("contactId"))
	if err != nil {
		return badRequest(c, "Invalid contact ID")
	}

	if err := h.policyService.DeleteContact(c.UserContext(), userID, policyID, contactID); err != nil {
		return respondError(c, h.logger, err, "Failed to delete contact")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpcomingRenewals godoc
// @Summary Upcoming renewals
// @Description Policies renewing between today and today plus the given number of days
// @Tags renewals
// @Produce json
// @Param days query int false "Window in days (1-365)" default(30)
// @Security Bearer
// @Success 200 {array} dto.RenewalResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/renewals/upcoming [get]
func (h *PolicyHandler) UpcomingRenewals(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	days := c.QueryInt("days", service.DefaultRenewalWindowDays)
	resp, err := h.policyService.UpcomingRenewals(c.UserContext(), userID, days)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to load renewals")
	}
	return c.JSON(resp)
}
