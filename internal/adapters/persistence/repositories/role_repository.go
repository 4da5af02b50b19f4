package repositories

import (
	"context"

	"chamahub/internal/adapters/persistence/models"
	"chamahub/internal/core/domain"

	"gorm.io/gorm"
)

// roleRepository implements RoleRepository interface
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

// ListByUser returns the role set assigned to a user
func (r *roleRepository) ListByUser(ctx context.Context, userID string) (domain.RoleSet, error) {
	var rows []models.UserRole
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	roles := make(domain.RoleSet, 0, len(rows))
	for _, row := range rows {
		if role, ok := domain.ParseRole(row.Role); ok {
			roles = append(roles, role)
		}
	}
	return roles, nil
}

// ReplaceForUser swaps the user's whole role set. The delete and inserts
// run in one transaction so a failed insert cannot strand the user with
// zero roles.
func (r *roleRepository) ReplaceForUser(ctx context.Context, userID string, roles domain.RoleSet) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		for _, role := range roles {
			row := &models.UserRole{UserID: userID, Role: string(role)}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
