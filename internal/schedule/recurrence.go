package schedule

import (
	"time"

	"github.com/Jeyeeem21/RoomManagement/internal/model"
)

// dateUTC truncates an instant to its UTC calendar date. All recurrence
// arithmetic runs on UTC dates so local DST transitions can never shift
// an occurrence by a day.
func dateUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ExpandRule produces the concrete dates on which a recurring booking
// occurs within [rangeStart, rangeEnd). The result is a fresh slice each
// call; the expansion is a pure function of its inputs.
//
// The emitted dates are the rule's weekday stepped in 7-day increments
// from the first match on/after start_date, bounded by last_date
// (inclusive) and the query range end (exclusive). A rule missing its
// weekday or either window date yields no occurrences, as does an empty
// intersection of the rule window and the query range.
func ExpandRule(b model.Booking, rangeStart, rangeEnd time.Time) []time.Time {
	weekday, ok := ParseWeekday(b.DayOfWeek)
	if !ok || b.StartDate == nil || b.LastDate == nil {
		return nil
	}

	start := dateUTC(*b.StartDate)
	last := dateUTC(*b.LastDate)
	qStart := dateUTC(rangeStart)
	qEnd := dateUTC(rangeEnd)

	effStart := start
	if qStart.After(effStart) {
		effStart = qStart
	}
	effEnd := last.AddDate(0, 0, 1) // last_date is inclusive
	if qEnd.Before(effEnd) {
		effEnd = qEnd
	}
	if !effStart.Before(effEnd) {
		return nil
	}

	// First date on/after start_date whose weekday matches the rule.
	delta := int(weekday) - int(start.Weekday())
	if delta < 0 {
		delta += 7
	}
	d := start.AddDate(0, 0, delta)

	var dates []time.Time
	for ; !d.After(last) && d.Before(effEnd); d = d.AddDate(0, 0, 7) {
		if !d.Before(effStart) {
			dates = append(dates, d)
		}
	}
	return dates
}
