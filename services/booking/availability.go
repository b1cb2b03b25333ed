package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// maxBookingsPerDay is the daily appointment capacity; a day holding this
// many active bookings is closed for new selections.
const maxBookingsPerDay = 2

// TimeSlots returns the 13 fixed hourly appointment windows, 7:00 AM through
// 7:00 PM. Slots are discrete, non-overlapping units; service duration is
// deliberately not modeled.
func TimeSlots() []string {
	slots := make([]string, 13)
	for i := range slots {
		hour := 7 + i
		suffix := "AM"
		if hour >= 12 {
			suffix = "PM"
		}
		display := hour
		if hour > 12 {
			display = hour - 12
		}
		slots[i] = fmt.Sprintf("%d:00 %s", display, suffix)
	}
	return slots
}

// CalendarSource supplies existing bookings to the availability engine. Both
// the Mongo booking repository and the demo-path draft store implement it.
type CalendarSource interface {
	CountByDateRange(ctx context.Context, from, to string) (map[string]int, error)
	TimesByDate(ctx context.Context, date string) ([]string, error)
}

// BlockedSource supplies operator-blocked dates.
type BlockedSource interface {
	ListDates(ctx context.Context, from, to string) ([]string, error)
}

// DayStatus classifies one calendar day.
type DayStatus struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
	// Reason is set when unavailable: "past", "blocked", or "full".
	Reason      string `json:"reason,omitempty"`
	BookedCount int    `json:"bookedCount"`
}

// TimeSlotStatus classifies one hourly slot on a chosen day.
type TimeSlotStatus struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

// MonthAvailabilityResult covers the requested month and the adjacent month,
// so navigating between months never drops already-computed state for the
// still-visible one.
type MonthAvailabilityResult struct {
	Month string      `json:"month"` // "YYYY-MM"
	Days  []DayStatus `json:"days"`
}

// AvailabilityEngine classifies calendar days and time slots from the
// configured booking sources and the blocked-dates set.
type AvailabilityEngine struct {
	Sources []CalendarSource
	Blocked BlockedSource
	Logger  *zap.Logger
	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (e *AvailabilityEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// MonthAvailability classifies every day of the given month ("YYYY-MM") and
// the month after it. A day is unavailable when it is strictly before the
// current date, appears in the blocked set, or already holds the daily
// booking capacity.
func (e *AvailabilityEngine) MonthAvailability(ctx context.Context, month string) (*MonthAvailabilityResult, error) {
	monthStart, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", month, err)
	}
	windowEnd := monthStart.AddDate(0, 2, -1) // last day of the following month

	from := monthStart.Format("2006-01-02")
	to := windowEnd.Format("2006-01-02")

	counts, err := e.bookedCounts(ctx, from, to)
	if err != nil {
		return nil, err
	}

	blocked := make(map[string]bool)
	if e.Blocked != nil {
		dates, err := e.Blocked.ListDates(ctx, from, to)
		if err != nil {
			return nil, fmt.Errorf("failed to load blocked dates: %w", err)
		}
		for _, d := range dates {
			blocked[d] = true
		}
	}

	now := e.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var days []DayStatus
	for d := monthStart; !d.After(windowEnd); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format("2006-01-02")
		status := DayStatus{Date: dateStr, Available: true, BookedCount: counts[dateStr]}
		switch {
		case d.Before(today):
			status.Available = false
			status.Reason = "past"
		case blocked[dateStr]:
			status.Available = false
			status.Reason = "blocked"
		case counts[dateStr] >= maxBookingsPerDay:
			status.Available = false
			status.Reason = "full"
		}
		days = append(days, status)
	}

	return &MonthAvailabilityResult{Month: month, Days: days}, nil
}

// DayTimes classifies each of the 13 fixed slots for a chosen day. A slot is
// booked when any existing booking on that day occupies the exact slot string.
func (e *AvailabilityEngine) DayTimes(ctx context.Context, date string) ([]TimeSlotStatus, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	booked := make(map[string]bool)
	for _, source := range e.Sources {
		times, err := source.TimesByDate(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("failed to load booked times: %w", err)
		}
		for _, t := range times {
			booked[t] = true
		}
	}

	slots := TimeSlots()
	statuses := make([]TimeSlotStatus, len(slots))
	for i, slot := range slots {
		statuses[i] = TimeSlotStatus{Time: slot, Booked: booked[slot]}
	}
	return statuses, nil
}

// SlotOpen reports whether a specific date and time slot is selectable.
func (e *AvailabilityEngine) SlotOpen(ctx context.Context, date, slot string) (bool, error) {
	month := date
	if len(date) >= 7 {
		month = date[:7]
	}
	result, err := e.MonthAvailability(ctx, month)
	if err != nil {
		return false, err
	}
	dayOpen := false
	for _, day := range result.Days {
		if day.Date == date {
			dayOpen = day.Available
			break
		}
	}
	if !dayOpen {
		return false, nil
	}

	statuses, err := e.DayTimes(ctx, date)
	if err != nil {
		return false, err
	}
	for _, s := range statuses {
		if s.Time == slot {
			return !s.Booked, nil
		}
	}
	// Not one of the 13 fixed slots.
	return false, nil
}

func (e *AvailabilityEngine) bookedCounts(ctx context.Context, from, to string) (map[string]int, error) {
	counts := make(map[string]int)
	for _, source := range e.Sources {
		partial, err := source.CountByDateRange(ctx, from, to)
		if err != nil {
			return nil, fmt.Errorf("failed to count bookings: %w", err)
		}
		for date, n := range partial {
			counts[date] += n
		}
	}
	return counts, nil
}
