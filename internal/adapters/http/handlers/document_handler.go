package handlers

import (
	"errors"

	"chamahub/internal/adapters/http/middleware"
	"chamahub/internal/core/domain"
	"chamahub/internal/core/services"
	"chamahub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DocumentHandler handles document metadata endpoints
type DocumentHandler struct {
	documentService *services.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Create handles recording a document (admin only)
// @Summary Create document
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.DocumentInput true "Document data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /documents [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	sess := middleware.GetSession(c)

	var input services.DocumentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	document, err := h.documentService.Create(c.Context(), sess, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthorized):
			return response.Forbidden(c, "Only admins can upload documents")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Title and file URL are required")
		default:
			return response.InternalServerError(c, "Failed to create document")
		}
	}

	return response.Created(c, "Document created successfully", document)
}

// List handles listing documents
// @Summary List documents
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	documents, err := h.documentService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list documents")
	}

	return response.Success(c, "Documents retrieved successfully", documents)
}

// Delete handles removing a document (admin only)
// @Summary Delete document
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	sess := middleware.GetSession(c)

	if err := h.documentService.Delete(c.Context(), sess, id); err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthorized):
			return response.Forbidden(c, "Only admins can delete documents")
		case errors.Is(err, services.ErrDocumentNotFound):
			return response.NotFound(c, "Document not found")
		default:
			return response.InternalServerError(c, "Failed to delete document")
		}
	}

	return response.Success(c, "Document deleted successfully", nil)
}
