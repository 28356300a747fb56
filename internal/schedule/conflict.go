package schedule

import (
	"fmt"

	"github.com/Jeyeeem21/RoomManagement/internal/model"
)

// ConflictResult is the outcome of a conflict probe. Message is set only
// when Conflict is true and describes the first conflicting booking.
type ConflictResult struct {
	Conflict bool   `json:"conflict"`
	Message  string `json:"message,omitempty"`
}

// FindConflict tests a candidate time range against the bookings already
// held for the same room and date. Callers pre-filter the slice to the
// room plus the literal (date, day_of_week) pair before invoking.
//
// Two ranges [s1,e1) and [s2,e2) conflict iff s1 < e2 && s2 < e1, tested
// the way the console always has: candidate start inside an existing
// range, candidate end inside an existing range, or candidate fully
// containing an existing range. An end of "00:00:00" reads as 23:59:59.
// The first conflicting booking wins; conflicts are not aggregated.
func FindConflict(existing []model.Booking, startTime, endTime string, excludeID string) ConflictResult {
	newStart, newEnd, ok := parseRange(startTime, endTime)
	if !ok {
		return ConflictResult{}
	}

	for _, b := range existing {
		if excludeID != "" && b.BookingID == excludeID {
			continue
		}
		s, e, ok := parseRange(b.StartTime, b.EndTime)
		if !ok {
			continue
		}

		startsInside := newStart >= s && newStart < e
		endsInside := newEnd > s && newEnd <= e
		contains := newStart <= s && newEnd >= e
		if startsInside || endsInside || contains {
			return ConflictResult{
				Conflict: true,
				Message: fmt.Sprintf("Room is already booked for %s by %s from %s to %s",
					b.Course, b.FacultyName, s, e),
			}
		}
	}

	return ConflictResult{}
}
