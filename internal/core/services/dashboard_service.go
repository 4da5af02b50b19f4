package services

import (
	"context"
	"time"

	"chamahub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// DashboardService aggregates group-wide stats for the dashboard
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// DashboardStats represents dashboard summary data
type DashboardStats struct {
	TotalMembers       int64   `json:"total_members"`
	ActiveMembers      int64   `json:"active_members"`
	TotalContributions float64 `json:"total_contributions"`
	ContributionsMonth float64 `json:"contributions_this_month"`
	UpcomingEvents     int64   `json:"upcoming_events"`
	Announcements      int64   `json:"announcements"`
}

// GetStats returns the group-wide dashboard summary
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Profile{}).Count(&stats.TotalMembers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Profile{}).
		Where("status = ?", "active").
		Count(&stats.ActiveMembers).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Contribution{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalContributions).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	if err := db.Model(&models.Contribution{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("month = ? AND year = ?", int(now.Month()), now.Year()).
		Scan(&stats.ContributionsMonth).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Event{}).
		Where("event_date >= ?", now).
		Count(&stats.UpcomingEvents).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Announcement{}).Count(&stats.Announcements).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
