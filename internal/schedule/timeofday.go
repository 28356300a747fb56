// Package schedule implements the scheduling engine: time-range conflict
// detection, weekly recurrence expansion, calendar event building, weekly
// grid layout and point-in-time occupancy checks. Everything in this
// package is a pure function over booking records already fetched by the
// caller; no storage or transport concerns live here.
package schedule

import (
	"fmt"
	"time"
)

// TimeOfDay is a clock time with seconds precision, stored as seconds
// since midnight. It replaces the zero-padded time strings the booking
// rows carry with a value type that compares and subtracts safely.
type TimeOfDay int

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600

	// EndOfDay is the normalized substitute for a "00:00:00" end time,
	// which the data model defines as end-of-day rather than midnight.
	EndOfDay TimeOfDay = 23*secondsPerHour + 59*secondsPerMinute + 59
)

// ParseTimeOfDay parses "HH:MM:SS", padding 5-character "HH:MM" inputs
// with zero seconds.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) == 5 {
		s += ":00"
	}
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%2d:%2d:%2d", &h, &m, &sec); err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("invalid time of day %q: out of range", s)
	}
	return TimeOfDay(h*secondsPerHour + m*secondsPerMinute + sec), nil
}

// MustTimeOfDay is ParseTimeOfDay for trusted literals; it panics on
// malformed input and exists for constants and tests.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// String renders the canonical zero-padded "HH:MM:SS" form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(t)/secondsPerHour, int(t)%secondsPerHour/secondsPerMinute, int(t)%secondsPerMinute)
}

// Minutes returns whole minutes since midnight.
func (t TimeOfDay) Minutes() int { return int(t) / secondsPerMinute }

// NormalizeEnd maps a "00:00:00" end time to end-of-day. Range endpoints
// must pass through this before any overlap comparison.
func (t TimeOfDay) NormalizeEnd() TimeOfDay {
	if t == 0 {
		return EndOfDay
	}
	return t
}

// At anchors the time of day onto a calendar date in the date's location.
func (t TimeOfDay) At(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, int(t)/secondsPerHour, int(t)%secondsPerHour/secondsPerMinute, int(t)%secondsPerMinute, 0, date.Location())
}

// parseRange resolves a booking's start/end strings into normalized
// values. The end is normalized for end-of-day; a false return means one
// of the strings did not parse and the booking should produce nothing.
func parseRange(startTime, endTime string) (start, end TimeOfDay, ok bool) {
	s, err := ParseTimeOfDay(startTime)
	if err != nil {
		return 0, 0, false
	}
	e, err := ParseTimeOfDay(endTime)
	if err != nil {
		return 0, 0, false
	}
	return s, e.NormalizeEnd(), true
}

// resolveEnd anchors an end time onto the booking's date, rolling over to
// the following day when the end sorts below the start (a booking that
// crosses midnight).
func resolveEnd(date time.Time, start, end TimeOfDay) time.Time {
	if end < start {
		return end.At(date.AddDate(0, 0, 1))
	}
	return end.At(date)
}

// rangeContains reports whether the [start, end) range covers the given
// instant's time of day, honoring midnight crossing.
func rangeContains(start, end, at TimeOfDay) bool {
	if end < start {
		return at >= start || at < end
	}
	return at >= start && at < end
}
