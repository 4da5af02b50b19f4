package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"chamahub/internal/adapters/persistence/models"
	"chamahub/internal/adapters/persistence/repositories"
	"chamahub/internal/core/domain"
)

// Contribution service errors
var (
	ErrContributionNotFound = errors.New("contribution not found")
	ErrMemberNotFound       = errors.New("member not found")
	ErrNotAuthorized        = errors.New("not authorized")
)

// DefaultListLimit caps unscoped contribution listings when no limit is
// configured. The cap is configurable, not a hard law.
const DefaultListLimit = 50

// ContributionService handles the weekly dues ledger
type ContributionService struct {
	contributionRepo repositories.ContributionRepository
	profileRepo      repositories.ProfileRepository
	listLimit        int
	now              func() time.Time
}

// NewContributionService creates a new contribution service
func NewContributionService(
	contributionRepo repositories.ContributionRepository,
	profileRepo repositories.ProfileRepository,
	listLimit int,
) *ContributionService {
	if listLimit <= 0 {
		listLimit = DefaultListLimit
	}
	return &ContributionService{
		contributionRepo: contributionRepo,
		profileRepo:      profileRepo,
		listLimit:        listLimit,
		now:              time.Now,
	}
}

// RecordInput represents a proposed contribution. Amount arrives as the
// raw form value and must parse to a positive number.
type RecordInput struct {
	MemberID      string `json:"member_id"`
	Amount        string `json:"amount"`
	PaymentMethod string `json:"payment_method"`
	TransactionID string `json:"transaction_id,omitempty"`
	WeekNumber    int    `json:"week_number"`
	Status        string `json:"status,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// Record validates and appends one contribution row. Month and year are
// stamped from the clock at creation, never derived from the week number.
// No dues-slot uniqueness is enforced: recording the same logical payment
// twice creates two rows.
func (s *ContributionService) Record(ctx context.Context, sess domain.Session, input *RecordInput) (*models.Contribution, error) {
	if !sess.Roles.CanRecordContributions() {
		return nil, ErrNotAuthorized
	}

	amount, err := strconv.ParseFloat(input.Amount, 64)
	if err != nil || amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if !domain.ValidPaymentMethod(input.PaymentMethod) {
		return nil, domain.ErrInvalidMethod
	}
	if input.WeekNumber < 1 {
		return nil, domain.ErrInvalidWeek
	}
	status := input.Status
	if status == "" {
		status = string(domain.ContributionPaid)
	}
	if !domain.ValidContributionStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	exists, err := s.profileRepo.Exists(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMemberNotFound
	}

	now := s.now()
	contribution := &models.Contribution{
		MemberID:      input.MemberID,
		Amount:        amount,
		PaymentMethod: input.PaymentMethod,
		WeekNumber:    input.WeekNumber,
		Month:         int(now.Month()),
		Year:          now.Year(),
		Status:        status,
		PaymentDate:   now,
	}
	if input.TransactionID != "" {
		contribution.TransactionID = &input.TransactionID
	}
	if input.Notes != "" {
		contribution.Notes = &input.Notes
	}

	if err := s.contributionRepo.Create(ctx, contribution); err != nil {
		return nil, err
	}

	return contribution, nil
}

// UpdateInput represents an edit to an existing contribution. Mutable
// fields are replaced in place; id and creation time stay fixed.
type UpdateInput struct {
	Amount        string `json:"amount"`
	PaymentMethod string `json:"payment_method"`
	TransactionID string `json:"transaction_id,omitempty"`
	WeekNumber    int    `json:"week_number"`
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
}

// Update replaces the mutable fields of a contribution (admin only)
func (s *ContributionService) Update(ctx context.Context, sess domain.Session, id string, input *UpdateInput) (*models.Contribution, error) {
	if !sess.Roles.CanEditContributions() {
		return nil, ErrNotAuthorized
	}

	amount, err := strconv.ParseFloat(input.Amount, 64)
	if err != nil || amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if !domain.ValidPaymentMethod(input.PaymentMethod) {
		return nil, domain.ErrInvalidMethod
	}
	if input.WeekNumber < 1 {
		return nil, domain.ErrInvalidWeek
	}
	if !domain.ValidContributionStatus(input.Status) {
		return nil, domain.ErrInvalidStatus
	}

	contribution, err := s.contributionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrContributionNotFound
	}

	contribution.Amount = amount
	contribution.PaymentMethod = input.PaymentMethod
	contribution.WeekNumber = input.WeekNumber
	contribution.Status = input.Status
	contribution.TransactionID = nil
	if input.TransactionID != "" {
		contribution.TransactionID = &input.TransactionID
	}
	contribution.Notes = nil
	if input.Notes != "" {
		contribution.Notes = &input.Notes
	}

	if err := s.contributionRepo.Update(ctx, contribution); err != nil {
		return nil, err
	}

	return contribution, nil
}

// Delete removes a contribution (admin only)
func (s *ContributionService) Delete(ctx context.Context, sess domain.Session, id string) error {
	if !sess.Roles.CanEditContributions() {
		return ErrNotAuthorized
	}

	if _, err := s.contributionRepo.GetByID(ctx, id); err != nil {
		return ErrContributionNotFound
	}

	return s.contributionRepo.Delete(ctx, id)
}

// List returns contributions scoped by the caller's role set: plain
// members see only their own records, admin and treasurer see everyone's
// capped at the configured limit.
func (s *ContributionService) List(ctx context.Context, sess domain.Session) ([]*models.Contribution, error) {
	if sess.Roles.CanViewAll() {
		return s.contributionRepo.ListAll(ctx, s.listLimit)
	}
	return s.contributionRepo.ListByMember(ctx, sess.UserID)
}

// Get returns one contribution; plain members may only fetch their own
func (s *ContributionService) Get(ctx context.Context, sess domain.Session, id string) (*models.Contribution, error) {
	contribution, err := s.contributionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrContributionNotFound
	}
	if contribution.MemberID != sess.UserID && !sess.Roles.CanViewAll() {
		return nil, ErrNotAuthorized
	}
	return contribution, nil
}
