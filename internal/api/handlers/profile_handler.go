package handlers

import (
	"keeps/internal/dto"
	"keeps/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	logger         *zap.Logger
}

func NewProfileHandler(profileService *service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// GetProfile godoc
// @Summary Get profile
// @Description Returns the profile flags used to personalise gap analysis. All flags are false until saved.
// @Tags profile
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	resp, err := h.profileService.Get(c.UserContext(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to load profile")
	}
	return c.JSON(resp)
}

// UpdateProfile godoc
// @Summary Save profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.ProfileRequest true "Profile"
// @Security Bearer
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/profile [put]
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ProfileRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.profileService.Update(c.UserContext(), userID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to save profile")
	}
	return c.JSON(resp)
}
