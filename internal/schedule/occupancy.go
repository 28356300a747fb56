package schedule

import (
	"time"

	"github.com/Jeyeeem21/RoomManagement/internal/model"
)

// asOfDate takes the instant's calendar date in its own location — the
// caller decides what "today" means by the zone it passes in — while
// booking dates are plain UTC calendar dates.
func asOfDate(asOf time.Time) time.Time {
	y, m, d := asOf.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// OccupiedAt reports whether the booking occupies its room at the given
// instant: a one-off booking on the instant's date, or a recurring rule
// matching the instant's weekday whose window contains the date — in
// either case with a time range covering the instant's time of day.
func OccupiedAt(b model.Booking, asOf time.Time) bool {
	start, end, ok := parseRange(b.StartTime, b.EndTime)
	if !ok {
		return false
	}
	now := TimeOfDay(asOf.Hour()*secondsPerHour + asOf.Minute()*secondsPerMinute + asOf.Second())

	if b.IsRecurring {
		if b.DayOfWeek != WeekdayName(asOf.Weekday()) {
			return false
		}
		if !ActiveWindowAt(b, asOf) {
			return false
		}
		return rangeContains(start, end, now)
	}

	if b.Date == nil || !dateUTC(*b.Date).Equal(asOfDate(asOf)) {
		return false
	}
	return rangeContains(start, end, now)
}

// ActiveWindowAt reports whether a recurring booking's [start_date,
// last_date] window contains the instant's date. It is a coverage
// indicator independent of time of day, used to count rooms that have any
// schedule at all.
func ActiveWindowAt(b model.Booking, asOf time.Time) bool {
	if !b.IsRecurring || b.StartDate == nil || b.LastDate == nil {
		return false
	}
	d := asOfDate(asOf)
	return !d.Before(dateUTC(*b.StartDate)) && !d.After(dateUTC(*b.LastDate))
}
