package repositories

import (
	"context"
	"time"

	"chamahub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// AnnouncementRepository handles announcement data access
type AnnouncementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// Create creates a new announcement
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

// GetByID gets an announcement by ID
func (r *AnnouncementRepository) GetByID(ctx context.Context, id string) (*models.Announcement, error) {
	var announcement models.Announcement
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&announcement).Error
	return &announcement, err
}

// List lists announcements, newest first
func (r *AnnouncementRepository) List(ctx context.Context) ([]*models.Announcement, error) {
	var announcements []*models.Announcement
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&announcements).Error
	return announcements, err
}

// Update updates an announcement
func (r *AnnouncementRepository) Update(ctx context.Context, announcement *models.Announcement) error {
	return r.db.WithContext(ctx).Save(announcement).Error
}

// Delete deletes an announcement
func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Announcement{}).Error
}

// EventRepository handles event and attendance data access
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// GetByID gets an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	return &event, err
}

// List lists events by date, soonest first
func (r *EventRepository) List(ctx context.Context) ([]*models.Event, error) {
	var events []*models.Event
	err := r.db.WithContext(ctx).
		Order("event_date ASC").
		Find(&events).Error
	return events, err
}

// Update updates an event
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// Delete deletes an event and its attendance rows
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.EventAttendance{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Event{}).Error
	})
}

// CountUpcoming counts events on or after now
func (r *EventRepository) CountUpcoming(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("event_date >= ?", now).
		Count(&count).Error
	return count, err
}

// GetAttendance gets a member's attendance row for an event
func (r *EventRepository) GetAttendance(ctx context.Context, eventID, memberID string) (*models.EventAttendance, error) {
	var attendance models.EventAttendance
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND member_id = ?", eventID, memberID).
		First(&attendance).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

// SaveAttendance creates or updates an attendance row
func (r *EventRepository) SaveAttendance(ctx context.Context, attendance *models.EventAttendance) error {
	return r.db.WithContext(ctx).Save(attendance).Error
}

// ListAttendance lists attendance rows for an event
func (r *EventRepository) ListAttendance(ctx context.Context, eventID string) ([]*models.EventAttendance, error) {
	var rows []*models.EventAttendance
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Find(&rows).Error
	return rows, err
}

// DocumentRepository handles document metadata access
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new document record
func (r *DocumentRepository) Create(ctx context.Context, document *models.Document) error {
	return r.db.WithContext(ctx).Create(document).Error
}

// GetByID gets a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*models.Document, error) {
	var document models.Document
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&document).Error
	return &document, err
}

// List lists documents, newest first
func (r *DocumentRepository) List(ctx context.Context) ([]*models.Document, error) {
	var documents []*models.Document
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&documents).Error
	return documents, err
}

// Delete deletes a document record
func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Document{}).Error
}
