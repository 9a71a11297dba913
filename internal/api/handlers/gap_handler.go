package handlers

import (
	"net/url"

	"keeps/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GapHandler struct {
	gapService *service.GapService
	logger     *zap.Logger
}

func NewGapHandler(gapService *service.GapService, logger *zap.Logger) *GapHandler {
	return &GapHandler{
		gapService: gapService,
		logger:     logger,
	}
}

// AnalyzeGaps godoc
// @Summary Coverage gap analysis
// @Description Severity-ranked findings for the whole portfolio, with the coverage summary
// @Tags gaps
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.GapAnalysisResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/gaps [get]
func (h *GapHandler) AnalyzeGaps(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	resp, err := h.gapService.Analyze(c.UserContext(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to analyze coverage")
	}
	return c.JSON(resp)
}

// Summary godoc
// @Summary Coverage summary
// @Tags gaps
// @Produce json
// @Security Bearer
// @Success 200 {object} coverage.Summary
// @Router /api/v1/gaps/summary [get]
func (h *GapHandler) Summary(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	resp, err := h.gapService.Summary(c.UserContext(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to summarize coverage")
	}
	return c.JSON(resp)
}

// PolicyGaps godoc
// @Summary Findings for one policy
// @Tags gaps
// @Produce json
// @Param id path string true "Policy ID"
// @Security Bearer
// @Success 200 {object} dto.PolicyGapsResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/gaps/policy/{id} [get]
func (h *GapHandler) PolicyGaps(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	policyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid policy ID")
	}

	resp, err := h.gapService.PolicyGaps(c.UserContext(), userID, policyID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to analyze policy")
	}
	return c.JSON(resp)
}

// BusinessGaps godoc
// @Summary Findings for one business
// @Description Gap analysis over the policies carrying the given business name
// @Tags gaps
// @Produce json
// @Param name path string true "Business name (URL encoded)"
// @Security Bearer
// @Success 200 {object} dto.BusinessGapsResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/gaps/business/{name} [get]
func (h *GapHandler) BusinessGaps(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return badRequest(c, "Invalid business name")
	}

	resp, err := h.gapService.BusinessGaps(c.UserContext(), userID, name)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to analyze business")
	}
	return c.JSON(resp)
}

// Taxonomy godoc
// @Summary Coverage reference tables
// @Description Policy types, coverage categories, gap rules and exclusion patterns
// @Tags gaps
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.TaxonomyResponse
// @Router /api/v1/gaps/taxonomy [get]
func (h *GapHandler) Taxonomy(c *fiber.Ctx) error {
	return c.JSON(h.gapService.Taxonomy())
}
