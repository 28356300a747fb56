package schedule

import (
	"testing"
	"time"

	"github.com/Jeyeeem21/RoomManagement/internal/model"
)

func mondayRule() model.Booking {
	return model.Booking{
		BookingID:   "bk-r1",
		RoomID:      "room-5",
		Course:      "IT 104",
		IsRecurring: true,
		DayOfWeek:   "Monday",
		StartDate:   datePtr(2024, 3, 1),
		LastDate:    datePtr(2024, 3, 31),
		StartTime:   "09:00:00",
		EndTime:     "10:00:00",
	}
}

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandRule_QueryWindow(t *testing.T) {
	// Mondays in March 2024: 4, 11, 18, 25. Query 10th..20th keeps only
	// the 11th and the 18th.
	got := ExpandRule(mondayRule(), utcDate(2024, 3, 10), utcDate(2024, 3, 20))

	want := []time.Time{utcDate(2024, 3, 11), utcDate(2024, 3, 18)}
	if len(got) != len(want) {
		t.Fatalf("expansion produced %d dates, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("occurrence %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExpandRule_FullWindow(t *testing.T) {
	got := ExpandRule(mondayRule(), utcDate(2024, 3, 1), utcDate(2024, 4, 1))
	if len(got) != 4 {
		t.Fatalf("expected all four March Mondays, got %v", got)
	}
	for i, d := range got {
		if d.Weekday() != time.Monday {
			t.Errorf("occurrence %d (%v) is not a Monday", i, d)
		}
		if i > 0 {
			if step := d.Sub(got[i-1]); step != 7*24*time.Hour {
				t.Errorf("occurrences %d and %d are %v apart, want 168h", i-1, i, step)
			}
		}
	}
}

func TestExpandRule_NeverEscapesWindows(t *testing.T) {
	rule := mondayRule()
	ranges := [][2]time.Time{
		{utcDate(2024, 2, 1), utcDate(2024, 5, 1)},
		{utcDate(2024, 3, 5), utcDate(2024, 3, 12)},
		{utcDate(2024, 3, 25), utcDate(2024, 4, 15)},
	}
	for _, r := range ranges {
		for _, d := range ExpandRule(rule, r[0], r[1]) {
			if d.Before(*rule.StartDate) || d.After(*rule.LastDate) {
				t.Errorf("occurrence %v escapes the rule window", d)
			}
			if d.Before(r[0]) || !d.Before(r[1]) {
				t.Errorf("occurrence %v escapes the query range %v..%v", d, r[0], r[1])
			}
		}
	}
}

func TestExpandRule_EmptyIntersection(t *testing.T) {
	rule := mondayRule()

	if got := ExpandRule(rule, utcDate(2024, 3, 10), utcDate(2024, 3, 10)); len(got) != 0 {
		t.Errorf("queryStart == queryEnd must yield zero occurrences, got %v", got)
	}
	if got := ExpandRule(rule, utcDate(2024, 5, 1), utcDate(2024, 6, 1)); len(got) != 0 {
		t.Errorf("query after the rule window must yield zero occurrences, got %v", got)
	}
	if got := ExpandRule(rule, utcDate(2024, 1, 1), utcDate(2024, 2, 1)); len(got) != 0 {
		t.Errorf("query before the rule window must yield zero occurrences, got %v", got)
	}
}

func TestExpandRule_StartDateNotOnWeekday(t *testing.T) {
	// start_date 2024-03-01 is a Friday; the first Monday on/after it is
	// the 4th.
	got := ExpandRule(mondayRule(), utcDate(2024, 3, 1), utcDate(2024, 3, 8))
	if len(got) != 1 || !got[0].Equal(utcDate(2024, 3, 4)) {
		t.Errorf("first occurrence should be 2024-03-04, got %v", got)
	}
}

func TestExpandRule_MalformedRuleYieldsNothing(t *testing.T) {
	base := mondayRule()

	missingDay := base
	missingDay.DayOfWeek = ""
	missingStart := base
	missingStart.StartDate = nil
	missingLast := base
	missingLast.LastDate = nil
	unknownDay := base
	unknownDay.DayOfWeek = "Moonday"

	for _, b := range []model.Booking{missingDay, missingStart, missingLast, unknownDay} {
		if got := ExpandRule(b, utcDate(2024, 3, 1), utcDate(2024, 4, 1)); len(got) != 0 {
			t.Errorf("malformed rule %+v expanded to %v, want nothing", b, got)
		}
	}
}

func TestExpandRule_LastDateInclusive(t *testing.T) {
	rule := mondayRule()
	rule.LastDate = datePtr(2024, 3, 25) // a Monday

	got := ExpandRule(rule, utcDate(2024, 3, 1), utcDate(2024, 4, 30))
	if len(got) == 0 || !got[len(got)-1].Equal(utcDate(2024, 3, 25)) {
		t.Errorf("last_date falling on the weekday should be emitted, got %v", got)
	}
}
