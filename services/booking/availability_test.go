package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
}

func testEngine(sources []CalendarSource, blocked BlockedSource) *AvailabilityEngine {
	return &AvailabilityEngine{
		Sources: sources,
		Blocked: blocked,
		Logger:  zap.NewNop(),
		Now:     fixedNow,
	}
}

func dayByDate(t *testing.T, result *MonthAvailabilityResult, date string) DayStatus {
	t.Helper()
	for _, d := range result.Days {
		if d.Date == date {
			return d
		}
	}
	t.Fatalf("date %s not in result", date)
	return DayStatus{}
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()
	require.Len(t, slots, 13)
	assert.Equal(t, "7:00 AM", slots[0])
	assert.Equal(t, "12:00 PM", slots[5])
	assert.Equal(t, "7:00 PM", slots[12])
}

func TestMonthAvailabilityCoversTwoMonths(t *testing.T) {
	engine := testEngine(nil, nil)

	result, err := engine.MonthAvailability(context.Background(), "2026-08")
	require.NoError(t, err)

	// 31 days of August plus 30 days of September.
	assert.Len(t, result.Days, 61)
	assert.Equal(t, "2026-08-01", result.Days[0].Date)
	assert.Equal(t, "2026-09-30", result.Days[len(result.Days)-1].Date)
}

func TestMonthAvailabilityPastDays(t *testing.T) {
	engine := testEngine(nil, nil)

	result, err := engine.MonthAvailability(context.Background(), "2026-08")
	require.NoError(t, err)

	past := dayByDate(t, result, "2026-08-14")
	assert.False(t, past.Available)
	assert.Equal(t, "past", past.Reason)

	// Today is bookable.
	today := dayByDate(t, result, "2026-08-15")
	assert.True(t, today.Available)
}

func TestMonthAvailabilityFullDay(t *testing.T) {
	cal := stubCalendar{Counts: map[string]int{
		"2026-08-20": 2,
		"2026-08-21": 1,
	}}
	engine := testEngine([]CalendarSource{cal}, nil)

	result, err := engine.MonthAvailability(context.Background(), "2026-08")
	require.NoError(t, err)

	full := dayByDate(t, result, "2026-08-20")
	assert.False(t, full.Available)
	assert.Equal(t, "full", full.Reason)
	assert.Equal(t, 2, full.BookedCount)

	open := dayByDate(t, result, "2026-08-21")
	assert.True(t, open.Available)
	assert.Equal(t, 1, open.BookedCount)
}

func TestMonthAvailabilityMergesSources(t *testing.T) {
	persisted := stubCalendar{Counts: map[string]int{"2026-08-20": 1}}
	demo := stubCalendar{Counts: map[string]int{"2026-08-20": 1}}
	engine := testEngine([]CalendarSource{persisted, demo}, nil)

	result, err := engine.MonthAvailability(context.Background(), "2026-08")
	require.NoError(t, err)

	day := dayByDate(t, result, "2026-08-20")
	assert.False(t, day.Available)
	assert.Equal(t, "full", day.Reason)
}

func TestMonthAvailabilityBlockedDay(t *testing.T) {
	engine := testEngine(nil, stubBlocked{Dates: []string{"2026-08-22"}})

	result, err := engine.MonthAvailability(context.Background(), "2026-08")
	require.NoError(t, err)

	day := dayByDate(t, result, "2026-08-22")
	assert.False(t, day.Available)
	assert.Equal(t, "blocked", day.Reason)
}

func TestMonthAvailabilityInvalidMonth(t *testing.T) {
	engine := testEngine(nil, nil)
	_, err := engine.MonthAvailability(context.Background(), "August 2026")
	assert.Error(t, err)
}

func TestDayTimesExactSlotMatch(t *testing.T) {
	cal := stubCalendar{Times: map[string][]string{
		"2026-08-20": {"9:00 AM", "2:00 PM"},
	}}
	engine := testEngine([]CalendarSource{cal}, nil)

	slots, err := engine.DayTimes(context.Background(), "2026-08-20")
	require.NoError(t, err)
	require.Len(t, slots, 13)

	booked := make(map[string]bool)
	for _, s := range slots {
		booked[s.Time] = s.Booked
	}
	assert.True(t, booked["9:00 AM"])
	assert.True(t, booked["2:00 PM"])
	assert.False(t, booked["10:00 AM"])
	assert.False(t, booked["7:00 PM"])
}

func TestSlotOpen(t *testing.T) {
	cal := stubCalendar{
		Counts: map[string]int{"2026-08-20": 1, "2026-08-25": 2},
		Times:  map[string][]string{"2026-08-20": {"9:00 AM"}},
	}
	engine := testEngine([]CalendarSource{cal}, stubBlocked{Dates: []string{"2026-08-22"}})
	ctx := context.Background()

	open, err := engine.SlotOpen(ctx, "2026-08-20", "10:00 AM")
	require.NoError(t, err)
	assert.True(t, open)

	open, err = engine.SlotOpen(ctx, "2026-08-20", "9:00 AM")
	require.NoError(t, err)
	assert.False(t, open, "booked slot")

	open, err = engine.SlotOpen(ctx, "2026-08-22", "10:00 AM")
	require.NoError(t, err)
	assert.False(t, open, "blocked day")

	open, err = engine.SlotOpen(ctx, "2026-08-25", "10:00 AM")
	require.NoError(t, err)
	assert.False(t, open, "full day")

	open, err = engine.SlotOpen(ctx, "2026-08-10", "10:00 AM")
	require.NoError(t, err)
	assert.False(t, open, "past day")

	open, err = engine.SlotOpen(ctx, "2026-08-20", "9:30 AM")
	require.NoError(t, err)
	assert.False(t, open, "not a fixed slot")
}
