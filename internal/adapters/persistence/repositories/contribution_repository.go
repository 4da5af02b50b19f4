package repositories

import (
	"context"

	"chamahub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// contributionRepository implements ContributionRepository interface
type contributionRepository struct {
	db *gorm.DB
}

// NewContributionRepository creates a new contribution repository
func NewContributionRepository(db *gorm.DB) ContributionRepository {
	return &contributionRepository{db: db}
}

// Create appends a contribution row. No uniqueness check on the dues slot:
// submitting the same logical payment twice creates two rows.
func (r *contributionRepository) Create(ctx context.Context, contribution *models.Contribution) error {
	return r.db.WithContext(ctx).Create(contribution).Error
}

// GetByID gets a contribution by ID
func (r *contributionRepository) GetByID(ctx context.Context, id string) (*models.Contribution, error) {
	var contribution models.Contribution
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&contribution).Error
	if err != nil {
		return nil, err
	}
	return &contribution, nil
}

// Update saves a contribution in place
func (r *contributionRepository) Update(ctx context.Context, contribution *models.Contribution) error {
	return r.db.WithContext(ctx).Save(contribution).Error
}

// Delete hard-deletes a contribution
func (r *contributionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Contribution{}).Error
}

// ListAll lists recent contributions across all members, capped at limit
func (r *contributionRepository) ListAll(ctx context.Context, limit int) ([]*models.Contribution, error) {
	var contributions []*models.Contribution
	err := r.db.WithContext(ctx).
		Preload("Member").
		Order("payment_date DESC").
		Limit(limit).
		Find(&contributions).Error
	return contributions, err
}

// ListByMember lists one member's contributions, newest first
func (r *contributionRepository) ListByMember(ctx context.Context, memberID string) ([]*models.Contribution, error) {
	var contributions []*models.Contribution
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("payment_date DESC").
		Find(&contributions).Error
	return contributions, err
}

// ListByMemberYear lists one member's contributions for a year in week order,
// the fetch behind the calendar grid
func (r *contributionRepository) ListByMemberYear(ctx context.Context, memberID string, year int) ([]*models.Contribution, error) {
	var contributions []*models.Contribution
	err := r.db.WithContext(ctx).
		Where("member_id = ? AND year = ?", memberID, year).
		Order("week_number ASC").
		Find(&contributions).Error
	return contributions, err
}

// SumAmount returns the sum of every contribution amount regardless of status
func (r *contributionRepository) SumAmount(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Contribution{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
