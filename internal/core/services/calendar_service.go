package services

import (
	"context"
	"time"

	"chamahub/internal/adapters/persistence/models"
	"chamahub/internal/adapters/persistence/repositories"
	"chamahub/internal/core/domain"
)

// CalendarService produces the 52-week reconciliation grid for a member's
// contribution calendar. Pure read/compute, no side effects.
type CalendarService struct {
	contributionRepo repositories.ContributionRepository
	now              func() time.Time
}

// NewCalendarService creates a new calendar service
func NewCalendarService(contributionRepo repositories.ContributionRepository) *CalendarService {
	return &CalendarService{
		contributionRepo: contributionRepo,
		now:              time.Now,
	}
}

// MemberCalendar builds the weekly grid for one member and year. Plain
// members may only view their own calendar; admin and treasurer may view
// anyone's. The current-week marker is always computed against today,
// even when a past year is being viewed.
func (s *CalendarService) MemberCalendar(ctx context.Context, sess domain.Session, memberID string, year int) (*domain.Calendar, error) {
	if memberID != sess.UserID && !sess.Roles.CanViewAll() {
		return nil, ErrNotAuthorized
	}

	rows, err := s.contributionRepo.ListByMemberYear(ctx, memberID, year)
	if err != nil {
		return nil, err
	}

	calendar := domain.BuildCalendar(year, toLedgerEntries(rows), s.now())
	return &calendar, nil
}

func toLedgerEntries(rows []*models.Contribution) []domain.LedgerEntry {
	entries := make([]domain.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.LedgerEntry{
			ID:          row.ID,
			Amount:      row.Amount,
			WeekNumber:  row.WeekNumber,
			Status:      domain.ContributionStatus(row.Status),
			Method:      domain.PaymentMethod(row.PaymentMethod),
			PaymentDate: row.PaymentDate,
		})
	}
	return entries
}
