package handlers

import (
	"fmt"
	"strings"

	"keeps/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DocumentHandler struct {
	docService *service.DocumentService
	logger     *zap.Logger
}

func NewDocumentHandler(docService *service.DocumentService, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
		logger:     logger,
	}
}

// UploadDocument godoc
// @Summary Upload a policy document
// @Description Store a policy PDF. Without policy_id a placeholder policy is created for extraction to fill in.
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Policy document (PDF or text)"
// @Param policy_id formData string false "Existing policy ID"
// @Param doc_type formData string false "Document type, e.g. policy or declarations"
// @Security Bearer
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/v1/documents/upload [post]
func (h *DocumentHandler) UploadDocument(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "File is required")
	}

	in := service.UploadInput{
		DocType:     c.FormValue("doc_type"),
		Filename:    file.Filename,
		ContentType: file.Header.Get(fiber.HeaderContentType),
		Size:        file.Size,
	}
	if raw := strings.TrimSpace(c.FormValue("policy_id")); raw != "" {
		policyID, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "Invalid policy ID")
		}
		in.PolicyID = &policyID
	}

	src, err := file.Open()
	if err != nil {
		return badRequest(c, "Failed to open file")
	}
	defer src.Close()
	in.Body = src

	doc, err := h.docService.Upload(c.UserContext(), userID, in)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to upload document")
	}

	return c.Status(fiber.StatusCreated).JSON(doc)
}

// ListDocuments godoc
// @Summary List user's documents
// @Description Get a list of user's uploaded documents, newest first
// @Tags documents
// @Produce json
// @Param limit query int false "Limit" default(20)
// @Param offset query int false "Offset" default(0)
// @Security Bearer
// @Success 200 {array} dto.DocumentResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/documents [get]
func (h *DocumentHandler) ListDocuments(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit < 1 || limit > 100 || offset < 0 {
		return badRequest(c, "limit must be 1-100 and offset non-negative")
	}

	docs, err := h.docService.List(c.UserContext(), userID, limit, offset)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list documents")
	}

	return c.JSON(docs)
}

// DownloadDocument godoc
// @Summary Download a document
// @Tags documents
// @Produce octet-stream
// @Param id path string true "Document ID"
// @Security Bearer
// @Success 200 {file} file
// @Failure 404 {object} map[string]string
// @Router /api/v1/documents/{id}/download [get]
func (h *DocumentHandler) DownloadDocument(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	documentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid document ID")
	}

	body, doc, err := h.docService.Download(c.UserContext(), userID, documentID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to download document")
	}

	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.Filename))
	// The response closes body once it has been written.
	return c.SendStream(body, int(doc.FileSize))
}

// ExtractDocument godoc
// @Summary Extract policy data from a document
// @Description Reads the document text, asks the LLM for structured fields and merges them into the linked policy
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Security Bearer
// @Success 200 {object} dto.ExtractDocumentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/documents/{id}/extract [post]
func (h *DocumentHandler) ExtractDocument(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	documentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid document ID")
	}

	result, err := h.docService.Extract(c.UserContext(), userID, documentID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to extract document")
	}

	return c.JSON(result)
}
