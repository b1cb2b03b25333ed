package booking

import (
	"fmt"
	"strings"
	"time"

	"divinedetail/models"
)

// CalendarFilename is the download name for the exported event file.
const CalendarFilename = "divine-detail-booking.ics"

// slotTimeLayout parses "2025-07-10 9:00 AM" style date/slot pairs.
const slotTimeLayout = "2006-01-02 3:04 PM"

// SlotStart resolves a booking's date and slot string to a concrete time.
func SlotStart(b models.Booking) (time.Time, error) {
	start, err := time.ParseInLocation(slotTimeLayout, b.PreferredDate+" "+b.PreferredTime, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse booking time %q %q: %w", b.PreferredDate, b.PreferredTime, err)
	}
	return start, nil
}

// BuildCalendarEvent renders a booking as an iCalendar document with a
// one-hour event window. Offered as a download on the confirmation page.
func BuildCalendarEvent(b models.Booking, now time.Time) (string, error) {
	start, err := SlotStart(b)
	if err != nil {
		return "", err
	}
	end := start.Add(time.Hour)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Divine Detail//Booking//EN",
		"BEGIN:VEVENT",
		"UID:" + b.ID,
		"DTSTAMP:" + icsTime(now),
		"DTSTART:" + icsTime(start),
		"DTEND:" + icsTime(end),
		"SUMMARY:Divine Detail Booking",
		"LOCATION:" + b.ServiceAddress,
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\n"), nil
}

func icsTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}
