package services

import (
	"context"
	"errors"
	"time"

	"chamahub/internal/adapters/persistence/models"
	"chamahub/internal/adapters/persistence/repositories"
	"chamahub/internal/core/domain"
)

// Community service errors
var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrDocumentNotFound     = errors.New("document not found")
)

// RSVP statuses
const (
	RSVPAttending    = "attending"
	RSVPNotAttending = "not_attending"
	RSVPPending      = "pending"
)

// AnnouncementService handles announcements
type AnnouncementService struct {
	announcementRepo *repositories.AnnouncementRepository
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(announcementRepo *repositories.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{announcementRepo: announcementRepo}
}

// AnnouncementInput represents announcement create/update input
type AnnouncementInput struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Create creates an announcement (admin only)
func (s *AnnouncementService) Create(ctx context.Context, sess domain.Session, input *AnnouncementInput) (*models.Announcement, error) {
	if !sess.Roles.CanManageContent() {
		return nil, ErrNotAuthorized
	}
	if input.Title == "" || input.Message == "" {
		return nil, domain.ErrInvalidInput
	}

	announcement := &models.Announcement{
		Title:     input.Title,
		Message:   input.Message,
		CreatedBy: &sess.UserID,
	}
	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

// List lists announcements, newest first
func (s *AnnouncementService) List(ctx context.Context) ([]*models.Announcement, error) {
	return s.announcementRepo.List(ctx)
}

// Update replaces an announcement's mutable fields (admin only)
func (s *AnnouncementService) Update(ctx context.Context, sess domain.Session, id string, input *AnnouncementInput) (*models.Announcement, error) {
	if !sess.Roles.CanManageContent() {
		return nil, ErrNotAuthorized
	}
	if input.Title == "" || input.Message == "" {
		return nil, domain.ErrInvalidInput
	}

	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrAnnouncementNotFound
	}

	announcement.Title = input.Title
	announcement.Message = input.Message
	if err := s.announcementRepo.Update(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

// Delete removes an announcement (admin only)
func (s *AnnouncementService) Delete(ctx context.Context, sess domain.Session, id string) error {
	if !sess.Roles.CanManageContent() {
		return ErrNotAuthorized
	}
	if _, err := s.announcementRepo.GetByID(ctx, id); err != nil {
		return ErrAnnouncementNotFound
	}
	return s.announcementRepo.Delete(ctx, id)
}

// EventService handles events and attendance
type EventService struct {
	eventRepo *repositories.EventRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo *repositories.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// EventInput represents event create/update input
type EventInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Venue       string `json:"venue,omitempty"`
	Agenda      string `json:"agenda,omitempty"`
	EventDate   string `json:"event_date"` // YYYY-MM-DD
}

func (in *EventInput) toModel(sess domain.Session) (*models.Event, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse("2006-01-02", in.EventDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	event := &models.Event{
		Title:     in.Title,
		EventDate: date,
		CreatedBy: &sess.UserID,
	}
	if in.Description != "" {
		event.Description = &in.Description
	}
	if in.Venue != "" {
		event.Venue = &in.Venue
	}
	if in.Agenda != "" {
		event.Agenda = &in.Agenda
	}
	return event, nil
}

// Create creates an event (admin only)
func (s *EventService) Create(ctx context.Context, sess domain.Session, input *EventInput) (*models.Event, error) {
	if !sess.Roles.CanManageContent() {
		return nil, ErrNotAuthorized
	}

	event, err := input.toModel(sess)
	if err != nil {
		return nil, err
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// List lists events by date
func (s *EventService) List(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.List(ctx)
}

// Update replaces an event's mutable fields (admin only)
func (s *EventService) Update(ctx context.Context, sess domain.Session, id string, input *EventInput) (*models.Event, error) {
	if !sess.Roles.CanManageContent() {
		return nil, ErrNotAuthorized
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrEventNotFound
	}

	updated, err := input.toModel(sess)
	if err != nil {
		return nil, err
	}

	event.Title = updated.Title
	event.Description = updated.Description
	event.Venue = updated.Venue
	event.Agenda = updated.Agenda
	event.EventDate = updated.EventDate

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes an event and its attendance rows (admin only)
func (s *EventService) Delete(ctx context.Context, sess domain.Session, id string) error {
	if !sess.Roles.CanManageContent() {
		return ErrNotAuthorized
	}
	if _, err := s.eventRepo.GetByID(ctx, id); err != nil {
		return ErrEventNotFound
	}
	return s.eventRepo.Delete(ctx, id)
}

// RSVP records or updates the caller's RSVP for an event
func (s *EventService) RSVP(ctx context.Context, sess domain.Session, eventID, status string) (*models.EventAttendance, error) {
	if status != RSVPAttending && status != RSVPNotAttending && status != RSVPPending {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, ErrEventNotFound
	}

	attendance, err := s.eventRepo.GetAttendance(ctx, eventID, sess.UserID)
	if err != nil {
		attendance = &models.EventAttendance{
			EventID:  eventID,
			MemberID: sess.UserID,
		}
	}
	attendance.RSVPStatus = status

	if err := s.eventRepo.SaveAttendance(ctx, attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

// MarkAttended flags a member as attended (admin only)
func (s *EventService) MarkAttended(ctx context.Context, sess domain.Session, eventID, memberID string, attended bool) (*models.EventAttendance, error) {
	if !sess.Roles.CanManageContent() {
		return nil, ErrNotAuthorized
	}

	attendance, err := s.eventRepo.GetAttendance(ctx, eventID, memberID)
	if err != nil {
		attendance = &models.EventAttendance{
			EventID:    eventID,
			MemberID:   memberID,
			RSVPStatus: RSVPPending,
		}
	}
	attendance.Attended = attended

	if err := s.eventRepo.SaveAttendance(ctx, attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

// Attendance lists attendance rows for an event (admin/treasurer)
func (s *EventService) Attendance(ctx context.Context, sess domain.Session, eventID string) ([]*models.EventAttendance, error) {
	if !sess.Roles.CanViewAll() {
		return nil, ErrNotAuthorized
	}
	return s.eventRepo.ListAttendance(ctx, eventID)
}

// DocumentService handles document metadata
type DocumentService struct {
	documentRepo *repositories.DocumentRepository
}

// NewDocumentService creates a new document service
func NewDocumentService(documentRepo *repositories.DocumentRepository) *DocumentService {
	return &DocumentService{documentRepo: documentRepo}
}

// DocumentInput represents document create input
type DocumentInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	FileURL     string `json:"file_url"`
	FileType    string `json:"file_type,omitempty"`
}

// Create records a document (admin only)
func (s *DocumentService) Create(ctx context.Context, sess domain.Session, input *DocumentInput) (*models.Document, error) {
	if !sess.Roles.CanManageContent() {
		return nil, ErrNotAuthorized
	}
	if input.Title == "" || input.FileURL == "" {
		return nil, domain.ErrInvalidInput
	}

	document := &models.Document{
		Title:      input.Title,
		FileURL:    input.FileURL,
		UploadedBy: &sess.UserID,
	}
	if input.Description != "" {
		document.Description = &input.Description
	}
	if input.FileType != "" {
		document.FileType = &input.FileType
	}

	if err := s.documentRepo.Create(ctx, document); err != nil {
		return nil, err
	}
	return document, nil
}

// List lists documents, newest first
func (s *DocumentService) List(ctx context.Context) ([]*models.Document, error) {
	return s.documentRepo.List(ctx)
}

// Delete removes a document record (admin only)
func (s *DocumentService) Delete(ctx context.Context, sess domain.Session, id string) error {
	if !sess.Roles.CanManageContent() {
		return ErrNotAuthorized
	}
	if _, err := s.documentRepo.GetByID(ctx, id); err != nil {
		return ErrDocumentNotFound
	}
	return s.documentRepo.Delete(ctx, id)
}
