package handlers

import (
	"errors"
	"strconv"
	"time"

	"chamahub/internal/adapters/http/middleware"
	"chamahub/internal/adapters/persistence/models"
	"chamahub/internal/core/domain"
	"chamahub/internal/core/services"
	"chamahub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ContributionHandler handles contribution ledger endpoints
type ContributionHandler struct {
	contributionService *services.ContributionService
	calendarService     *services.CalendarService
}

// NewContributionHandler creates a new contribution handler
func NewContributionHandler(
	contributionService *services.ContributionService,
	calendarService *services.CalendarService,
) *ContributionHandler {
	return &ContributionHandler{
		contributionService: contributionService,
		calendarService:     calendarService,
	}
}

// Record handles recording a contribution
// @Summary Record contribution
// @Description Append a weekly dues payment to the ledger
// @Tags Contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.RecordInput true "Contribution data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contributions [post]
func (h *ContributionHandler) Record(c *fiber.Ctx) error {
	sess := middleware.GetSession(c)

	var input services.RecordInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	contribution, err := h.contributionService.Record(c.Context(), sess, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthorized):
			return response.Forbidden(c, "Only admins and treasurers can record contributions")
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, domain.ErrInvalidAmount):
			return response.BadRequest(c, "Amount must be a positive number")
		case errors.Is(err, domain.ErrInvalidMethod):
			return response.BadRequest(c, "Unknown payment method")
		case errors.Is(err, domain.ErrInvalidWeek):
			return response.BadRequest(c, "Week number must be 1 or greater")
		case errors.Is(err, domain.ErrInvalidStatus):
			return response.BadRequest(c, "Unknown contribution status")
		default:
			return response.InternalServerError(c, "Failed to record contribution")
		}
	}

	return response.Created(c, "Contribution recorded successfully", contribution.ToResponse())
}

// List handles contribution listing scoped by role
// @Summary List contributions
// @Description List contributions. Admins and treasurers see the whole ledger (capped); members see only their own rows.
// @Tags Contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /contributions [get]
func (h *ContributionHandler) List(c *fiber.Ctx) error {
	sess := middleware.GetSession(c)

	contributions, err := h.contributionService.List(c.Context(), sess)
	if err != nil {
		return response.InternalServerError(c, "Failed to list contributions")
	}

	items := make([]*models.ContributionResponse, 0, len(contributions))
	for _, contribution := range contributions {
		items = append(items, contribution.ToResponse())
	}

	return response.Success(c, "Contributions retrieved successfully", items)
}

// Get handles fetching a single contribution
// @Summary Get contribution
// @Description Get a contribution by ID. Members can only read their own rows.
// @Tags Contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contribution ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contributions/{id} [get]
func (h *ContributionHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	sess := middleware.GetSession(c)

	contribution, err := h.contributionService.Get(c.Context(), sess, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthorized):
			return response.Forbidden(c, "You can only view your own contributions")
		case errors.Is(err, services.ErrContributionNotFound):
			return response.NotFound(c, "Contribution not found")
		default:
			return response.InternalServerError(c, "Failed to get contribution")
		}
	}

	return response.Success(c, "Contribution retrieved successfully", contribution.ToResponse())
}

// Update handles editing a contribution (admin only)
// @Summary Update contribution
// @Description Replace the mutable fields of a contribution
// @Tags Contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contribution ID"
// @Param body body services.UpdateInput true "Contribution data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contributions/{id} [put]
func (h *ContributionHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	sess := middleware.GetSession(c)

	var input services.UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	contribution, err := h.contributionService.Update(c.Context(), sess, id, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthorized):
			return response.Forbidden(c, "Only admins can edit contributions")
		case errors.Is(err, services.ErrContributionNotFound):
			return response.NotFound(c, "Contribution not found")
		case errors.Is(err, domain.ErrInvalidAmount):
			return response.BadRequest(c, "Amount must be a positive number")
		case errors.Is(err, domain.ErrInvalidMethod):
			return response.BadRequest(c, "Unknown payment method")
		case errors.Is(err, domain.ErrInvalidWeek):
			return response.BadRequest(c, "Week number must be 1 or greater")
		case errors.Is(err, domain.ErrInvalidStatus):
			return response.BadRequest(c, "Unknown contribution status")
		default:
			return response.InternalServerError(c, "Failed to update contribution")
		}
	}

	return response.Success(c, "Contribution updated successfully", contribution.ToResponse())
}

// Delete handles removing a contribution (admin only)
// @Summary Delete contribution
// @Description Remove a contribution row from the ledger
// @Tags Contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contribution ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contributions/{id} [delete]
func (h *ContributionHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	sess := middleware.GetSession(c)

	if err := h.contributionService.Delete(c.Context(), sess, id); err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthorized):
			return response.Forbidden(c, "Only admins can delete contributions")
		case errors.Is(err, services.ErrContributionNotFound):
			return response.NotFound(c, "Contribution not found")
		default:
			return response.InternalServerError(c, "Failed to delete contribution")
		}
	}

	return response.Success(c, "Contribution deleted successfully", nil)
}

// Calendar handles the 52-week contribution calendar
// @Summary Member contribution calendar
// @Description Get a member's 52-week paid/missed/upcoming calendar for a year
// @Tags Contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param memberId path string true "Member ID"
// @Param year query int false "Calendar year (defaults to current)"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /contributions/calendar/{memberId} [get]
func (h *ContributionHandler) Calendar(c *fiber.Ctx) error {
	memberID := c.Params("memberId")
	sess := middleware.GetSession(c)

	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(time.Now().Year())))
	if err != nil || year < 1 {
		return response.BadRequest(c, "Invalid year")
	}

	calendar, err := h.calendarService.MemberCalendar(c.Context(), sess, memberID, year)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthorized):
			return response.Forbidden(c, "You can only view your own calendar")
		default:
			return response.InternalServerError(c, "Failed to build calendar")
		}
	}

	return response.Success(c, "Calendar retrieved successfully", calendar)
}
