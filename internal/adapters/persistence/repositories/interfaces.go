package repositories

import (
	"context"

	"chamahub/internal/adapters/persistence/models"
	"chamahub/internal/core/domain"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// DeleteCascade removes the user and every dependent row (profile,
	// roles, contributions, attendance, refresh tokens) in one transaction.
	// Reserved for the admin-only member deletion path.
	DeleteCascade(ctx context.Context, id string) error
}

// ProfileRepository defines member profile repository interface
type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	List(ctx context.Context, offset, limit int) ([]*models.Profile, int64, error)
	Update(ctx context.Context, profile *models.Profile) error
	Exists(ctx context.Context, id string) (bool, error)
}

// RoleRepository defines role assignment repository interface
type RoleRepository interface {
	ListByUser(ctx context.Context, userID string) (domain.RoleSet, error)
	// ReplaceForUser swaps the user's whole role set in one transaction:
	// an insert failure rolls the delete back.
	ReplaceForUser(ctx context.Context, userID string, roles domain.RoleSet) error
}

// ContributionRepository defines contribution ledger repository interface
type ContributionRepository interface {
	Create(ctx context.Context, contribution *models.Contribution) error
	GetByID(ctx context.Context, id string) (*models.Contribution, error)
	Update(ctx context.Context, contribution *models.Contribution) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context, limit int) ([]*models.Contribution, error)
	ListByMember(ctx context.Context, memberID string) ([]*models.Contribution, error)
	ListByMemberYear(ctx context.Context, memberID string, year int) ([]*models.Contribution, error)
	SumAmount(ctx context.Context) (float64, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeAllByUserID(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
