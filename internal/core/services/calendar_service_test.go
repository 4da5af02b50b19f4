package services

import (
	"context"
	"testing"
	"time"

	"chamahub/internal/adapters/persistence/models"
	"chamahub/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberCalendar(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC) // week 5

	repo := &stubContributionRepo{
		rows: []*models.Contribution{
			{ID: "a", MemberID: "asha", Amount: 100, WeekNumber: 1, Year: 2025, Status: "paid"},
			{ID: "b", MemberID: "asha", Amount: 100, WeekNumber: 3, Year: 2025, Status: "paid"},
			{ID: "c", MemberID: "asha", Amount: 100, WeekNumber: 1, Year: 2024, Status: "paid"},
			{ID: "d", MemberID: "ben", Amount: 100, WeekNumber: 1, Year: 2025, Status: "paid"},
		},
	}
	svc := NewCalendarService(repo)
	svc.now = func() time.Time { return now }

	t.Run("member views own calendar", func(t *testing.T) {
		cal, err := svc.MemberCalendar(ctx, memberSession("asha"), "asha", 2025)
		require.NoError(t, err)

		// Only asha's 2025 rows feed the grid
		assert.Equal(t, 2, cal.Summary.PaidWeeks)
		assert.Equal(t, 200.0, cal.Summary.Total)
		assert.Equal(t, 5, cal.Summary.CurrentWeek)
		assert.Equal(t, domain.WeekPaid, cal.Weeks[0].Status)
		assert.Equal(t, domain.WeekMissed, cal.Weeks[1].Status)
	})

	t.Run("member cannot view another calendar", func(t *testing.T) {
		_, err := svc.MemberCalendar(ctx, memberSession("asha"), "ben", 2025)
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})

	t.Run("treasurer and admin view anyone", func(t *testing.T) {
		cal, err := svc.MemberCalendar(ctx, treasurerSession("treasurer-1"), "ben", 2025)
		require.NoError(t, err)
		assert.Equal(t, 1, cal.Summary.PaidWeeks)

		_, err = svc.MemberCalendar(ctx, adminSession("admin-1"), "asha", 2025)
		require.NoError(t, err)
	})

	t.Run("past year still marks the current week from today", func(t *testing.T) {
		cal, err := svc.MemberCalendar(ctx, memberSession("asha"), "asha", 2024)
		require.NoError(t, err)

		assert.Equal(t, 2024, cal.Year)
		assert.Equal(t, 5, cal.Summary.CurrentWeek)
		assert.Equal(t, 1, cal.Summary.PaidWeeks)
	})

	t.Run("empty year yields all missed or upcoming", func(t *testing.T) {
		cal, err := svc.MemberCalendar(ctx, memberSession("ben"), "ben", 2023)
		require.NoError(t, err)

		assert.Equal(t, 0, cal.Summary.PaidWeeks)
		assert.Equal(t, 4, cal.Summary.MissedWeeks)
		require.Len(t, cal.Weeks, domain.WeeksPerYear)
	})
}
