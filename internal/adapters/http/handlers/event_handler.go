package handlers

import (
	"errors"

	"chamahub/internal/adapters/http/middleware"
	"chamahub/internal/core/domain"
	"chamahub/internal/core/services"
	"chamahub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EventHandler handles event and attendance endpoints
type EventHandler struct {
	eventService *services.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// Create handles scheduling an event (admin only)
// @Summary Create event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.EventInput true "Event data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /events [post]
func (h *EventHandler) Create(c *fiber.Ctx) error {
	sess := middleware.GetSession(c)

	var input services.EventInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	event, err := h.eventService.Create(c.Context(), sess, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthorized):
			return response.Forbidden(c, "Only admins can schedule events")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Title and a valid event date are required")
		default:
			return response.InternalServerError(c, "Failed to create event")
		}
	}

	return response.Created(c, "Event created successfully", event)
}

// List handles listing events
// @Summary List events
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	events, err := h.eventService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list events")
	}

	return response.Success(c, "Events retrieved successfully", events)
}

// Update handles editing an event (admin only)
// @Summary Update event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param body body services.EventInput true "Event data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id} [put]
func (h *EventHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	sess := middleware.GetSession(c)

	var input services.EventInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	event, err := h.eventService.Update(c.Context(), sess, id, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthorized):
			return response.Forbidden(c, "Only admins can edit events")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Title and a valid event date are required")
		case errors.Is(err, services.ErrEventNotFound):
			return response.NotFound(c, "Event not found")
		default:
			return response.InternalServerError(c, "Failed to update event")
		}
	}

	return response.Success(c, "Event updated successfully", event)
}

// Delete handles removing an event (admin only)
// @Summary Delete event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	sess := middleware.GetSession(c)

	if err := h.eventService.Delete(c.Context(), sess, id); err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthorized):
			return response.Forbidden(c, "Only admins can delete events")
		case errors.Is(err, services.ErrEventNotFound):
			return response.NotFound(c, "Event not found")
		default:
			return response.InternalServerError(c, "Failed to delete event")
		}
	}

	return response.Success(c, "Event deleted successfully", nil)
}

// RSVPRequest represents an RSVP request body
type RSVPRequest struct {
	Status string `json:"status"`
}

// RSVP handles a member's RSVP for an event
// @Summary RSVP to event
// @Description Record or update the caller's RSVP status
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param body body RSVPRequest true "RSVP status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id}/rsvp [post]
func (h *EventHandler) RSVP(c *fiber.Ctx) error {
	id := c.Params("id")
	sess := middleware.GetSession(c)

	var req RSVPRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	attendance, err := h.eventService.RSVP(c.Context(), sess, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Unknown RSVP status")
		case errors.Is(err, services.ErrEventNotFound):
			return response.NotFound(c, "Event not found")
		default:
			return response.InternalServerError(c, "Failed to record RSVP")
		}
	}

	return response.Success(c, "RSVP recorded successfully", attendance)
}

// AttendanceRequest represents an attendance marking request body
type AttendanceRequest struct {
	MemberID string `json:"member_id"`
	Attended bool   `json:"attended"`
}

// MarkAttendance handles marking a member attended (admin only)
// @Summary Mark attendance
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param body body AttendanceRequest true "Attendance data"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /events/{id}/attendance [post]
func (h *EventHandler) MarkAttendance(c *fiber.Ctx) error {
	id := c.Params("id")
	sess := middleware.GetSession(c)

	var req AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	attendance, err := h.eventService.MarkAttended(c.Context(), sess, id, req.MemberID, req.Attended)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthorized):
			return response.Forbidden(c, "Only admins can mark attendance")
		default:
			return response.InternalServerError(c, "Failed to mark attendance")
		}
	}

	return response.Success(c, "Attendance updated successfully", attendance)
}

// Attendance handles listing event attendance (admin/treasurer)
// @Summary List event attendance
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /events/{id}/attendance [get]
func (h *EventHandler) Attendance(c *fiber.Ctx) error {
	id := c.Params("id")
	sess := middleware.GetSession(c)

	rows, err := h.eventService.Attendance(c.Context(), sess, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthorized):
			return response.Forbidden(c, "You don't have permission to view attendance")
		default:
			return response.InternalServerError(c, "Failed to list attendance")
		}
	}

	return response.Success(c, "Attendance retrieved successfully", rows)
}
