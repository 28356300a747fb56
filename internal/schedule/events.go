package schedule

import (
	"strings"
	"time"

	"github.com/Jeyeeem21/RoomManagement/internal/model"
)

// Event is one calendar entry in the feed consumed by the calendar UI.
// Recurring bookings contribute one Event per expanded occurrence.
type Event struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Color string    `json:"color"`
}

// BuildEvents flattens one-off and recurring bookings into concrete
// calendar events for a date-range query.
//
// One-off bookings are included when their date falls inside the given
// bounds, or unconditionally when both bounds are absent. Recurring
// bookings require both bounds for expansion; without them they yield
// nothing — that asymmetry is long-standing console behavior, not an
// oversight.
func BuildEvents(bookings []model.Booking, roomNames map[string]string, rangeStart, rangeEnd *time.Time) []Event {
	events := make([]Event, 0, len(bookings))

	for _, b := range bookings {
		start, end, ok := parseRange(b.StartTime, b.EndTime)
		if !ok {
			continue
		}

		if b.IsRecurring {
			if rangeStart == nil || rangeEnd == nil {
				continue
			}
			for _, date := range ExpandRule(b, *rangeStart, *rangeEnd) {
				events = append(events, Event{
					ID:    b.BookingID,
					Title: eventTitle(b, roomNames),
					Start: start.At(date),
					End:   resolveEnd(date, start, end),
					Color: eventColor(b),
				})
			}
			continue
		}

		if b.Date == nil {
			continue
		}
		date := dateUTC(*b.Date)
		if rangeStart != nil && date.Before(dateUTC(*rangeStart)) {
			continue
		}
		if rangeEnd != nil && date.After(dateUTC(*rangeEnd)) {
			continue
		}
		events = append(events, Event{
			ID:    b.BookingID,
			Title: eventTitle(b, roomNames),
			Start: start.At(date),
			End:   resolveEnd(date, start, end),
			Color: eventColor(b),
		})
	}

	return events
}

// RoomLabel resolves a room id to its display name, falling back to a
// placeholder so an orphaned booking never sinks the whole feed.
func RoomLabel(roomNames map[string]string, roomID string) string {
	if name, ok := roomNames[roomID]; ok && name != "" {
		return name
	}
	return "Room " + roomID
}

// eventTitle assembles the display title in the console's fixed order:
// course, "(program)", "- year section", "• room", "• faculty", each
// segment appended only when present.
func eventTitle(b model.Booking, roomNames map[string]string) string {
	var sb strings.Builder
	sb.WriteString(b.Course)
	if b.Program != "" {
		sb.WriteString(" (" + b.Program + ")")
	}
	if ys := strings.TrimSpace(b.Year + " " + b.Section); ys != "" {
		sb.WriteString(" - " + ys)
	}
	sb.WriteString(" • " + RoomLabel(roomNames, b.RoomID))
	if b.FacultyName != "" {
		sb.WriteString(" • " + b.FacultyName)
	}
	return sb.String()
}

func eventColor(b model.Booking) string {
	if b.ColorCode == "" {
		return model.DefaultColorCode
	}
	return b.ColorCode
}
