package schedule

import (
	"strings"
	"testing"
	"time"

	"github.com/Jeyeeem21/RoomManagement/internal/model"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// The standing fixture from the booking form: room booked Monday
// 2024-03-04 from 09:00 to 10:00.
func existingMondayBooking() []model.Booking {
	return []model.Booking{{
		BookingID:   "bk-1",
		RoomID:      "room-5",
		Course:      "IT 104",
		FacultyName: "J. Dela Cruz",
		Date:        datePtr(2024, 3, 4),
		StartTime:   "09:00:00",
		EndTime:     "10:00:00",
	}}
}

func TestFindConflict_Overlaps(t *testing.T) {
	existing := existingMondayBooking()

	cases := []struct {
		name     string
		start    string
		end      string
		conflict bool
	}{
		{"overlapping start", "09:30:00", "10:30:00", true},
		{"overlapping end", "08:30:00", "09:30:00", true},
		{"fully contains existing", "08:00:00", "11:00:00", true},
		{"fully contained by existing", "09:15:00", "09:45:00", true},
		{"identical range", "09:00:00", "10:00:00", true},
		{"adjacent after", "10:00:00", "11:00:00", false},
		{"adjacent before", "08:00:00", "09:00:00", false},
		{"disjoint", "13:00:00", "14:00:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FindConflict(existing, tc.start, tc.end, "")
			if got.Conflict != tc.conflict {
				t.Errorf("FindConflict(%s-%s).Conflict = %v, want %v", tc.start, tc.end, got.Conflict, tc.conflict)
			}
			if tc.conflict && got.Message == "" {
				t.Error("conflict result should carry a message")
			}
			if !tc.conflict && got.Message != "" {
				t.Errorf("no-conflict result should have no message, got %q", got.Message)
			}
		})
	}
}

func TestFindConflict_Symmetric(t *testing.T) {
	// Disjoint ranges never conflict regardless of which side is the
	// candidate; overlapping ones conflict both ways.
	a := model.Booking{BookingID: "a", Course: "CS 101", FacultyName: "X", StartTime: "09:00:00", EndTime: "10:00:00"}
	b := model.Booking{BookingID: "b", Course: "CS 102", FacultyName: "Y", StartTime: "10:00:00", EndTime: "11:00:00"}

	if FindConflict([]model.Booking{a}, b.StartTime, b.EndTime, "").Conflict {
		t.Error("b against a: disjoint ranges reported as conflict")
	}
	if FindConflict([]model.Booking{b}, a.StartTime, a.EndTime, "").Conflict {
		t.Error("a against b: disjoint ranges reported as conflict")
	}

	c := model.Booking{BookingID: "c", Course: "CS 103", FacultyName: "Z", StartTime: "09:30:00", EndTime: "10:30:00"}
	if !FindConflict([]model.Booking{a}, c.StartTime, c.EndTime, "").Conflict {
		t.Error("c against a: overlap not detected")
	}
	if !FindConflict([]model.Booking{c}, a.StartTime, a.EndTime, "").Conflict {
		t.Error("a against c: overlap not detected")
	}
}

func TestFindConflict_MidnightEndTreatedAsEndOfDay(t *testing.T) {
	existing := []model.Booking{{
		BookingID:   "bk-late",
		Course:      "NET 201",
		FacultyName: "M. Reyes",
		StartTime:   "20:00:00",
		EndTime:     "00:00:00", // end-of-day, not midnight of the same day
	}}

	got := FindConflict(existing, "22:00:00", "23:00:00", "")
	if !got.Conflict {
		t.Error("22:00-23:00 should conflict with 20:00-end-of-day")
	}
	if got := FindConflict(existing, "18:00:00", "19:00:00", ""); got.Conflict {
		t.Error("18:00-19:00 should not conflict with 20:00-end-of-day")
	}
}

func TestFindConflict_ExcludesEditedBooking(t *testing.T) {
	existing := existingMondayBooking()
	if got := FindConflict(existing, "09:00:00", "10:00:00", "bk-1"); got.Conflict {
		t.Error("editing a booking must not conflict with itself")
	}
}

func TestFindConflict_PadsShortTimes(t *testing.T) {
	existing := existingMondayBooking()
	got := FindConflict(existing, "09:30", "10:30", "")
	if !got.Conflict {
		t.Error("5-character HH:MM inputs should be padded and still conflict")
	}
}

func TestFindConflict_ReportsFirstConflictOnly(t *testing.T) {
	existing := append(existingMondayBooking(), model.Booking{
		BookingID:   "bk-2",
		Course:      "IT 205",
		FacultyName: "A. Santos",
		StartTime:   "09:30:00",
		EndTime:     "11:00:00",
	})

	got := FindConflict(existing, "09:00:00", "12:00:00", "")
	if !got.Conflict {
		t.Fatal("expected a conflict")
	}
	if !strings.Contains(got.Message, "IT 104") {
		t.Errorf("message should describe the first conflicting booking, got %q", got.Message)
	}
}

func TestFindConflict_SkipsMalformedRows(t *testing.T) {
	existing := []model.Booking{{BookingID: "bad", StartTime: "not-a-time", EndTime: "10:00:00"}}
	if got := FindConflict(existing, "09:00:00", "10:00:00", ""); got.Conflict {
		t.Error("rows with unparseable times must not produce conflicts")
	}
	if got := FindConflict(existingMondayBooking(), "bogus", "10:00:00", ""); got.Conflict {
		t.Error("an unparseable candidate range reports no conflict")
	}
}
