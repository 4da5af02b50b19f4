package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElapsedWeek(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{
			name: "january 31 is week five",
			now:  time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			want: 5,
		},
		{
			name: "exactly seven days in is week one",
			now:  time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "one second past seven days rolls to week two",
			now:  time.Date(2025, 1, 8, 0, 0, 1, 0, time.UTC),
			want: 2,
		},
		{
			name: "new year's day is week zero",
			now:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "late december",
			now:  time.Date(2025, 12, 29, 12, 0, 0, 0, time.UTC),
			want: 52,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ElapsedWeek(tt.now))
		})
	}
}

func TestBuildCalendar(t *testing.T) {
	now := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC) // week 5

	t.Run("paid missed and upcoming slots", func(t *testing.T) {
		entries := []LedgerEntry{
			{ID: "a", Amount: 100, WeekNumber: 1, Status: ContributionPaid},
			{ID: "b", Amount: 100, WeekNumber: 3, Status: ContributionPaid},
		}

		cal := BuildCalendar(2025, entries, now)

		require.Len(t, cal.Weeks, WeeksPerYear)
		for i, week := range cal.Weeks {
			assert.Equal(t, i+1, week.WeekNumber)
		}

		assert.Equal(t, WeekPaid, cal.Weeks[0].Status)
		assert.Equal(t, WeekMissed, cal.Weeks[1].Status)
		assert.Equal(t, WeekPaid, cal.Weeks[2].Status)
		assert.Equal(t, WeekMissed, cal.Weeks[3].Status)
		for w := 5; w <= WeeksPerYear; w++ {
			assert.Equal(t, WeekUpcoming, cal.Weeks[w-1].Status, "week %d", w)
		}

		assert.Equal(t, 5, cal.Summary.CurrentWeek)
		assert.Equal(t, 2, cal.Summary.PaidWeeks)
		assert.Equal(t, 2, cal.Summary.MissedWeeks)
		assert.Equal(t, 200.0, cal.Summary.Total)
		assert.Equal(t, 2025, cal.Year)
	})

	t.Run("no entries marks elapsed weeks missed", func(t *testing.T) {
		cal := BuildCalendar(2025, nil, now)

		for w := 1; w < 5; w++ {
			assert.Equal(t, WeekMissed, cal.Weeks[w-1].Status)
		}
		assert.Equal(t, WeekUpcoming, cal.Weeks[4].Status)
		assert.Equal(t, 0, cal.Summary.PaidWeeks)
		assert.Equal(t, 4, cal.Summary.MissedWeeks)
		assert.Equal(t, 0.0, cal.Summary.Total)
	})

	t.Run("duplicate slot keeps last record but counts both", func(t *testing.T) {
		entries := []LedgerEntry{
			{ID: "first", Amount: 100, WeekNumber: 2, Status: ContributionPaid},
			{ID: "second", Amount: 150, WeekNumber: 2, Status: ContributionPaid},
		}

		cal := BuildCalendar(2025, entries, now)

		require.NotNil(t, cal.Weeks[1].Contribution)
		assert.Equal(t, "second", cal.Weeks[1].Contribution.ID)
		assert.Equal(t, WeekPaid, cal.Weeks[1].Status)

		// Both rows count toward the totals even though they share a slot
		assert.Equal(t, 2, cal.Summary.PaidWeeks)
		assert.Equal(t, 250.0, cal.Summary.Total)
	})

	t.Run("total includes pending and late amounts", func(t *testing.T) {
		entries := []LedgerEntry{
			{ID: "a", Amount: 100, WeekNumber: 1, Status: ContributionPaid},
			{ID: "b", Amount: 50, WeekNumber: 2, Status: ContributionPending},
			{ID: "c", Amount: 75, WeekNumber: 3, Status: ContributionLate},
		}

		cal := BuildCalendar(2025, entries, now)

		assert.Equal(t, 225.0, cal.Summary.Total)
		assert.Equal(t, 1, cal.Summary.PaidWeeks)

		// A pending record occupies the slot without marking it paid
		assert.Equal(t, WeekMissed, cal.Weeks[1].Status)
		assert.NotNil(t, cal.Weeks[1].Contribution)
	})

	t.Run("missed count can go negative", func(t *testing.T) {
		entries := []LedgerEntry{
			{ID: "a", Amount: 100, WeekNumber: 1, Status: ContributionPaid},
			{ID: "b", Amount: 100, WeekNumber: 1, Status: ContributionPaid},
			{ID: "c", Amount: 100, WeekNumber: 2, Status: ContributionPaid},
		}

		early := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC) // week 2
		cal := BuildCalendar(2025, entries, early)

		assert.Equal(t, 2, cal.Summary.CurrentWeek)
		assert.Equal(t, 3, cal.Summary.PaidWeeks)
		assert.Equal(t, -2, cal.Summary.MissedWeeks)
	})

	t.Run("out of range week numbers are dropped from the grid", func(t *testing.T) {
		entries := []LedgerEntry{
			{ID: "a", Amount: 100, WeekNumber: 0, Status: ContributionPaid},
			{ID: "b", Amount: 100, WeekNumber: 53, Status: ContributionPaid},
		}

		cal := BuildCalendar(2025, entries, now)

		for _, week := range cal.Weeks {
			assert.Nil(t, week.Contribution)
		}
		// They still feed the raw summary figures
		assert.Equal(t, 200.0, cal.Summary.Total)
		assert.Equal(t, 2, cal.Summary.PaidWeeks)
	})

	t.Run("current week tracks today even for a past year", func(t *testing.T) {
		cal := BuildCalendar(2023, nil, now)

		assert.Equal(t, 2023, cal.Year)
		assert.Equal(t, 5, cal.Summary.CurrentWeek)
	})
}
