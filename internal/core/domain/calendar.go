package domain

import "time"

// WeeksPerYear is the number of slots in a contribution calendar
const WeeksPerYear = 52

// WeekStatus classifies one calendar slot
type WeekStatus string

const (
	WeekPaid     WeekStatus = "paid"
	WeekMissed   WeekStatus = "missed"
	WeekUpcoming WeekStatus = "upcoming"
)

// WeekEntry is one slot of the 52-week contribution calendar
type WeekEntry struct {
	WeekNumber   int          `json:"week_number"`
	Status       WeekStatus   `json:"status"`
	Contribution *LedgerEntry `json:"contribution,omitempty"`
}

// CalendarSummary holds the aggregate figures shown with the calendar.
// MissedWeeks is currentWeek-1 minus the paid count and can go negative
// when more payments exist than weeks have elapsed; that is a display
// edge case, not an error.
type CalendarSummary struct {
	CurrentWeek int     `json:"current_week"`
	PaidWeeks   int     `json:"paid_weeks"`
	MissedWeeks int     `json:"missed_weeks"`
	Total       float64 `json:"total"`
}

// Calendar is the reconciliation grid for one member and year
type Calendar struct {
	Year    int             `json:"year"`
	Weeks   []WeekEntry     `json:"weeks"`
	Summary CalendarSummary `json:"summary"`
}

const weekMillis = 7 * 24 * 60 * 60 * 1000

// ElapsedWeek returns the rolling count of 7-day periods since January 1
// of now's calendar year. This is not an ISO week number, and it is always
// relative to now regardless of which year a calendar is being built for:
// viewing a past year still reports the current week against today.
func ElapsedWeek(now time.Time) int {
	jan1 := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	ms := now.Sub(jan1).Milliseconds()
	return int((ms + weekMillis - 1) / weekMillis)
}

// BuildCalendar computes the 52-slot weekly grid for one member's fetched
// contribution records. Records are indexed by week number, last write
// wins when duplicate slots exist. A slot is paid when a "paid" record
// occupies it, missed when empty and strictly before the current week,
// upcoming otherwise. The total sums every fetched amount regardless of
// status; the paid count likewise counts records, not distinct slots.
func BuildCalendar(year int, entries []LedgerEntry, now time.Time) Calendar {
	byWeek := make(map[int]*LedgerEntry, len(entries))
	for i := range entries {
		e := entries[i]
		if e.WeekNumber >= 1 && e.WeekNumber <= WeeksPerYear {
			byWeek[e.WeekNumber] = &e
		}
	}

	currentWeek := ElapsedWeek(now)

	weeks := make([]WeekEntry, 0, WeeksPerYear)
	for w := 1; w <= WeeksPerYear; w++ {
		entry := byWeek[w]
		status := WeekUpcoming
		switch {
		case entry != nil && entry.Status == ContributionPaid:
			status = WeekPaid
		case w < currentWeek:
			status = WeekMissed
		}
		weeks = append(weeks, WeekEntry{
			WeekNumber:   w,
			Status:       status,
			Contribution: entry,
		})
	}

	summary := CalendarSummary{CurrentWeek: currentWeek}
	for _, e := range entries {
		summary.Total += e.Amount
		if e.Status == ContributionPaid {
			summary.PaidWeeks++
		}
	}
	summary.MissedWeeks = currentWeek - 1 - summary.PaidWeeks

	return Calendar{Year: year, Weeks: weeks, Summary: summary}
}
