package services

import (
	"context"
	"errors"

	"chamahub/internal/adapters/persistence/models"
	"chamahub/internal/adapters/persistence/repositories"
	"chamahub/internal/core/domain"

	"gorm.io/gorm"
)

// Member service errors
var (
	ErrUnknownRole = errors.New("unknown role")
)

// MemberService handles member profiles and role assignments
type MemberService struct {
	profileRepo repositories.ProfileRepository
	roleRepo    repositories.RoleRepository
	userRepo    repositories.UserRepository
}

// NewMemberService creates a new member service
func NewMemberService(
	profileRepo repositories.ProfileRepository,
	roleRepo repositories.RoleRepository,
	userRepo repositories.UserRepository,
) *MemberService {
	return &MemberService{
		profileRepo: profileRepo,
		roleRepo:    roleRepo,
		userRepo:    userRepo,
	}
}

// List lists member profiles with pagination, newest members first
func (s *MemberService) List(ctx context.Context, offset, limit int) ([]*models.Profile, int64, error) {
	return s.profileRepo.List(ctx, offset, limit)
}

// Get gets one member profile
func (s *MemberService) Get(ctx context.Context, id string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return profile, nil
}

// UpdateProfileInput represents a profile edit (full replace of mutable fields)
type UpdateProfileInput struct {
	FullName string  `json:"full_name"`
	Phone    string  `json:"phone"`
	IDNumber *string `json:"id_number"`
	PhotoURL *string `json:"photo_url"`
	Status   string  `json:"status"`
}

// UpdateProfile replaces a profile's mutable fields. Members may edit
// their own profile; editing another member's requires admin.
func (s *MemberService) UpdateProfile(ctx context.Context, sess domain.Session, id string, input *UpdateProfileInput) (*models.Profile, error) {
	if id != sess.UserID && !sess.Roles.CanManageMembers() {
		return nil, ErrNotAuthorized
	}
	if input.FullName == "" {
		return nil, domain.ErrInvalidInput
	}
	if !domain.ValidMemberStatus(input.Status) {
		return nil, domain.ErrInvalidMemberState
	}
	// Only admins move members between statuses
	if !sess.Roles.CanManageMembers() {
		current, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if input.Status != current.Status {
			return nil, ErrNotAuthorized
		}
	}

	profile, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	profile.FullName = input.FullName
	profile.Phone = input.Phone
	profile.IDNumber = input.IDNumber
	profile.PhotoURL = input.PhotoURL
	profile.Status = input.Status

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// Delete removes a member and every dependent record in one transaction
// (admin only). This is the privileged removal path that cascades over
// contributions, roles, attendance and tokens.
func (s *MemberService) Delete(ctx context.Context, sess domain.Session, id string) error {
	if !sess.Roles.CanManageMembers() {
		return ErrNotAuthorized
	}

	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	return s.userRepo.DeleteCascade(ctx, id)
}

// GetRoles returns the role set assigned to a member (admin only)
func (s *MemberService) GetRoles(ctx context.Context, sess domain.Session, userID string) (domain.RoleSet, error) {
	if !sess.Roles.CanManageRoles() {
		return nil, ErrNotAuthorized
	}
	return s.roleRepo.ListByUser(ctx, userID)
}

// ReplaceRoles replaces a member's whole role set (admin only). The swap
// runs as one transaction at the repository: a failed insert rolls the
// delete back, so the member keeps the old set on failure.
func (s *MemberService) ReplaceRoles(ctx context.Context, sess domain.Session, userID string, tags []string) (domain.RoleSet, error) {
	if !sess.Roles.CanManageRoles() {
		return nil, ErrNotAuthorized
	}

	roles := make(domain.RoleSet, 0, len(tags))
	for _, tag := range tags {
		role, ok := domain.ParseRole(tag)
		if !ok {
			return nil, ErrUnknownRole
		}
		roles = append(roles, role)
	}

	exists, err := s.profileRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMemberNotFound
	}

	if err := s.roleRepo.ReplaceForUser(ctx, userID, roles); err != nil {
		return nil, err
	}

	return roles, nil
}
