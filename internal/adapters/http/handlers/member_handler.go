package handlers

import (
	"errors"

	"chamahub/internal/adapters/http/middleware"
	"chamahub/internal/core/domain"
	"chamahub/internal/core/services"
	"chamahub/internal/pkg/pagination"
	"chamahub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MemberHandler handles member directory endpoints
type MemberHandler struct {
	memberService *services.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// List handles member listing with pagination
// @Summary List members
// @Description List member profiles, newest first
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /members [get]
func (h *MemberHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	profiles, total, err := h.memberService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list members")
	}

	return response.Success(c, "Members retrieved successfully",
		pagination.NewResponse(profiles, params, total))
}

// Get handles fetching a single member profile
// @Summary Get member
// @Description Get a member profile by ID
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id} [get]
func (h *MemberHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	profile, err := h.memberService.Get(c.Context(), id)
	if err != nil {
		return response.NotFound(c, "Member not found")
	}

	return response.Success(c, "Member retrieved successfully", profile)
}

// UpdateProfile handles profile updates
// @Summary Update member profile
// @Description Update a member's profile (self, or any member for admins)
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Param body body services.UpdateProfileInput true "Profile data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id} [put]
func (h *MemberHandler) UpdateProfile(c *fiber.Ctx) error {
	id := c.Params("id")
	sess := middleware.GetSession(c)

	var input services.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	profile, err := h.memberService.UpdateProfile(c.Context(), sess, id, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthorized):
			return response.Forbidden(c, "You can only edit your own profile")
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidMemberState):
			return response.BadRequest(c, "Invalid profile data")
		default:
			return response.InternalServerError(c, "Failed to update profile")
		}
	}

	return response.Success(c, "Profile updated successfully", profile)
}

// Delete handles member removal (admin only)
// @Summary Delete member
// @Description Remove a member account and all dependent records
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id} [delete]
func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	sess := middleware.GetSession(c)

	if err := h.memberService.Delete(c.Context(), sess, id); err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthorized):
			return response.Forbidden(c, "Only admins can remove members")
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		default:
			return response.InternalServerError(c, "Failed to remove member")
		}
	}

	return response.Success(c, "Member removed successfully", nil)
}

// RolesRequest represents a role replacement request body
type RolesRequest struct {
	Roles []string `json:"roles"`
}

// GetRoles handles fetching a member's role set (admin only)
// @Summary Get member roles
// @Description Get a member's role assignments
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /members/{id}/roles [get]
func (h *MemberHandler) GetRoles(c *fiber.Ctx) error {
	id := c.Params("id")
	sess := middleware.GetSession(c)

	roles, err := h.memberService.GetRoles(c.Context(), sess, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthorized):
			return response.Forbidden(c, "Only admins can view role assignments")
		default:
			return response.InternalServerError(c, "Failed to get roles")
		}
	}

	return response.Success(c, "Roles retrieved successfully", fiber.Map{
		"user_id": id,
		"roles":   roles.Strings(),
	})
}

// ReplaceRoles handles role set replacement (admin only)
// @Summary Replace member roles
// @Description Replace a member's whole role set in one transaction
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Param body body RolesRequest true "New role set"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id}/roles [put]
func (h *MemberHandler) ReplaceRoles(c *fiber.Ctx) error {
	id := c.Params("id")
	sess := middleware.GetSession(c)

	var req RolesRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	roles, err := h.memberService.ReplaceRoles(c.Context(), sess, id, req.Roles)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthorized):
			return response.Forbidden(c, "Only admins can change roles")
		case errors.Is(err, services.ErrUnknownRole):
			return response.BadRequest(c, "Unknown role in request")
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		default:
			return response.InternalServerError(c, "Failed to replace roles")
		}
	}

	return response.Success(c, "Roles updated successfully", fiber.Map{
		"user_id": id,
		"roles":   roles.Strings(),
	})
}
