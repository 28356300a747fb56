package schedule

import "time"

// weekdayNames is the closed weekday enumeration the booking rows use.
// Ordinals follow time.Weekday (Sunday = 0).
var weekdayNames = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// ParseWeekday maps a weekday name to its ordinal. Unknown or empty names
// report ok=false; callers treat such rules as producing nothing.
func ParseWeekday(name string) (time.Weekday, bool) {
	d, ok := weekdayNames[name]
	return d, ok
}

// WeekdayName returns the canonical English name for a weekday ordinal.
func WeekdayName(d time.Weekday) string { return d.String() }

// GridDays is the fixed day axis of the export grid. Sunday bookings show
// up in the calendar feed but have no column in timetable exports.
var GridDays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
}
