package services

import (
	"context"
	"errors"
	"testing"

	"chamahub/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemberService(profiles *stubProfileRepo, roles *stubRoleRepo, users *stubUserRepo) *MemberService {
	return NewMemberService(profiles, roles, users)
}

func TestMemberUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("member edits own profile", func(t *testing.T) {
		profiles := newStubProfileRepo("asha")
		svc := newTestMemberService(profiles, newStubRoleRepo(), &stubUserRepo{})

		updated, err := svc.UpdateProfile(ctx, memberSession("asha"), "asha", &UpdateProfileInput{
			FullName: "Asha Njeri",
			Phone:    "0712000000",
			Status:   "active",
		})
		require.NoError(t, err)
		assert.Equal(t, "Asha Njeri", updated.FullName)
		assert.Equal(t, "0712000000", updated.Phone)
	})

	t.Run("member cannot edit another profile", func(t *testing.T) {
		profiles := newStubProfileRepo("asha", "ben")
		svc := newTestMemberService(profiles, newStubRoleRepo(), &stubUserRepo{})

		_, err := svc.UpdateProfile(ctx, memberSession("asha"), "ben", &UpdateProfileInput{
			FullName: "Ben", Status: "active",
		})
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})

	t.Run("member cannot change own status", func(t *testing.T) {
		profiles := newStubProfileRepo("asha")
		svc := newTestMemberService(profiles, newStubRoleRepo(), &stubUserRepo{})

		_, err := svc.UpdateProfile(ctx, memberSession("asha"), "asha", &UpdateProfileInput{
			FullName: "Asha", Status: "suspended",
		})
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})

	t.Run("admin edits anyone and moves status", func(t *testing.T) {
		profiles := newStubProfileRepo("asha")
		svc := newTestMemberService(profiles, newStubRoleRepo(), &stubUserRepo{})

		updated, err := svc.UpdateProfile(ctx, adminSession("admin-1"), "asha", &UpdateProfileInput{
			FullName: "Asha", Status: "suspended",
		})
		require.NoError(t, err)
		assert.Equal(t, "suspended", updated.Status)
	})

	t.Run("validation", func(t *testing.T) {
		profiles := newStubProfileRepo("asha")
		svc := newTestMemberService(profiles, newStubRoleRepo(), &stubUserRepo{})

		_, err := svc.UpdateProfile(ctx, adminSession("admin-1"), "asha", &UpdateProfileInput{
			FullName: "", Status: "active",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = svc.UpdateProfile(ctx, adminSession("admin-1"), "asha", &UpdateProfileInput{
			FullName: "Asha", Status: "banned",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidMemberState)
	})
}

func TestMemberDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("admin cascades the removal", func(t *testing.T) {
		users := &stubUserRepo{}
		svc := newTestMemberService(newStubProfileRepo("asha"), newStubRoleRepo(), users)

		require.NoError(t, svc.Delete(ctx, adminSession("admin-1"), "asha"))
		assert.Equal(t, []string{"asha"}, users.deleted)
	})

	t.Run("treasurer cannot remove members", func(t *testing.T) {
		users := &stubUserRepo{}
		svc := newTestMemberService(newStubProfileRepo("asha"), newStubRoleRepo(), users)

		assert.ErrorIs(t, svc.Delete(ctx, treasurerSession("treasurer-1"), "asha"), ErrNotAuthorized)
		assert.Empty(t, users.deleted)
	})

	t.Run("unknown member", func(t *testing.T) {
		svc := newTestMemberService(newStubProfileRepo(), newStubRoleRepo(), &stubUserRepo{})
		assert.ErrorIs(t, svc.Delete(ctx, adminSession("admin-1"), "ghost"), ErrMemberNotFound)
	})
}

func TestReplaceRoles(t *testing.T) {
	ctx := context.Background()

	t.Run("admin replaces the whole set", func(t *testing.T) {
		roles := newStubRoleRepo()
		roles.roles["asha"] = domain.RoleSet{domain.RoleMember}
		svc := newTestMemberService(newStubProfileRepo("asha"), roles, &stubUserRepo{})

		got, err := svc.ReplaceRoles(ctx, adminSession("admin-1"), "asha", []string{"treasurer", "member"})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleSet{domain.RoleTreasurer, domain.RoleMember}, got)
		assert.Equal(t, got, roles.roles["asha"])
	})

	t.Run("non-admin rejected", func(t *testing.T) {
		svc := newTestMemberService(newStubProfileRepo("asha"), newStubRoleRepo(), &stubUserRepo{})

		_, err := svc.ReplaceRoles(ctx, treasurerSession("treasurer-1"), "asha", []string{"member"})
		assert.ErrorIs(t, err, ErrNotAuthorized)

		_, err = svc.ReplaceRoles(ctx, memberSession("asha"), "asha", []string{"admin"})
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})

	t.Run("unknown tag rejected before any write", func(t *testing.T) {
		roles := newStubRoleRepo()
		roles.roles["asha"] = domain.RoleSet{domain.RoleMember}
		svc := newTestMemberService(newStubProfileRepo("asha"), roles, &stubUserRepo{})

		_, err := svc.ReplaceRoles(ctx, adminSession("admin-1"), "asha", []string{"member", "owner"})
		assert.ErrorIs(t, err, ErrUnknownRole)
		assert.Equal(t, domain.RoleSet{domain.RoleMember}, roles.roles["asha"])
	})

	t.Run("failed swap keeps the old set", func(t *testing.T) {
		roles := newStubRoleRepo()
		roles.roles["asha"] = domain.RoleSet{domain.RoleMember}
		roles.failNext = errors.New("insert failed")
		svc := newTestMemberService(newStubProfileRepo("asha"), roles, &stubUserRepo{})

		_, err := svc.ReplaceRoles(ctx, adminSession("admin-1"), "asha", []string{"admin"})
		require.Error(t, err)

		// The transaction rolled back: prior assignments survive intact
		assert.Equal(t, domain.RoleSet{domain.RoleMember}, roles.roles["asha"])
	})

	t.Run("unknown member", func(t *testing.T) {
		svc := newTestMemberService(newStubProfileRepo(), newStubRoleRepo(), &stubUserRepo{})

		_, err := svc.ReplaceRoles(ctx, adminSession("admin-1"), "ghost", []string{"member"})
		assert.ErrorIs(t, err, ErrMemberNotFound)
	})

	t.Run("empty set is a valid replacement", func(t *testing.T) {
		roles := newStubRoleRepo()
		roles.roles["asha"] = domain.RoleSet{domain.RoleTreasurer}
		svc := newTestMemberService(newStubProfileRepo("asha"), roles, &stubUserRepo{})

		got, err := svc.ReplaceRoles(ctx, adminSession("admin-1"), "asha", nil)
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Empty(t, roles.roles["asha"])
	})
}

func TestGetRoles(t *testing.T) {
	ctx := context.Background()
	roles := newStubRoleRepo()
	roles.roles["asha"] = domain.RoleSet{domain.RoleMember, domain.RoleTreasurer}
	svc := newTestMemberService(newStubProfileRepo("asha"), roles, &stubUserRepo{})

	got, err := svc.GetRoles(ctx, adminSession("admin-1"), "asha")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSet{domain.RoleMember, domain.RoleTreasurer}, got)

	_, err = svc.GetRoles(ctx, memberSession("asha"), "asha")
	assert.ErrorIs(t, err, ErrNotAuthorized)
}
