package handlers

import (
	"errors"

	"chamahub/internal/adapters/http/middleware"
	"chamahub/internal/core/domain"
	"chamahub/internal/core/services"
	"chamahub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AnnouncementHandler handles announcement endpoints
type AnnouncementHandler struct {
	announcementService *services.AnnouncementService
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcementService *services.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

// Create handles posting an announcement (admin only)
// @Summary Create announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.AnnouncementInput true "Announcement data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	sess := middleware.GetSession(c)

	var input services.AnnouncementInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	announcement, err := h.announcementService.Create(c.Context(), sess, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthorized):
			return response.Forbidden(c, "Only admins can post announcements")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Title and message are required")
		default:
			return response.InternalServerError(c, "Failed to create announcement")
		}
	}

	return response.Created(c, "Announcement created successfully", announcement)
}

// List handles listing announcements
// @Summary List announcements
// @Tags Announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	announcements, err := h.announcementService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list announcements")
	}

	return response.Success(c, "Announcements retrieved successfully", announcements)
}

// Update handles editing an announcement (admin only)
// @Summary Update announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Param body body services.AnnouncementInput true "Announcement data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /announcements/{id} [put]
func (h *AnnouncementHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	sess := middleware.GetSession(c)

	var input services.AnnouncementInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	announcement, err := h.announcementService.Update(c.Context(), sess, id, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthorized):
			return response.Forbidden(c, "Only admins can edit announcements")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Title and message are required")
		case errors.Is(err, services.ErrAnnouncementNotFound):
			return response.NotFound(c, "Announcement not found")
		default:
			return response.InternalServerError(c, "Failed to update announcement")
		}
	}

	return response.Success(c, "Announcement updated successfully", announcement)
}

// Delete handles removing an announcement (admin only)
// @Summary Delete announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	sess := middleware.GetSession(c)

	if err := h.announcementService.Delete(c.Context(), sess, id); err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthorized):
			return response.Forbidden(c, "Only admins can delete announcements")
		case errors.Is(err, services.ErrAnnouncementNotFound):
			return response.NotFound(c, "Announcement not found")
		default:
			return response.InternalServerError(c, "Failed to delete announcement")
		}
	}

	return response.Success(c, "Announcement deleted successfully", nil)
}
