package schedule

import (
	"testing"
	"time"

	"github.com/Jeyeeem21/RoomManagement/internal/model"
)

func TestOccupiedAt_OneOff(t *testing.T) {
	b := model.Booking{
		BookingID: "bk-1",
		RoomID:    "room-5",
		Course:    "IT 104",
		Date:      datePtr(2024, 3, 4),
		StartTime: "09:00:00",
		EndTime:   "10:00:00",
	}

	if !OccupiedAt(b, time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)) {
		t.Error("9:30 on the booking date should be occupied")
	}
	if OccupiedAt(b, time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)) {
		t.Error("the end instant is not occupied (half-open range)")
	}
	if OccupiedAt(b, time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)) {
		t.Error("the following day should not be occupied")
	}
}

func TestOccupiedAt_Recurring(t *testing.T) {
	b := mondayRule() // Mondays 09:00-10:00, 2024-03-01..2024-03-31

	if !OccupiedAt(b, time.Date(2024, 3, 11, 9, 15, 0, 0, time.UTC)) {
		t.Error("a Monday inside the window at 9:15 should be occupied")
	}
	if OccupiedAt(b, time.Date(2024, 3, 12, 9, 15, 0, 0, time.UTC)) {
		t.Error("a Tuesday should not match a Monday rule")
	}
	if OccupiedAt(b, time.Date(2024, 4, 1, 9, 15, 0, 0, time.UTC)) {
		t.Error("a Monday past last_date should not be occupied")
	}
	if OccupiedAt(b, time.Date(2024, 3, 11, 11, 0, 0, 0, time.UTC)) {
		t.Error("outside the time range should not be occupied")
	}
}

func TestOccupiedAt_MidnightRules(t *testing.T) {
	eod := model.Booking{
		BookingID: "bk-eod",
		Date:      datePtr(2024, 3, 4),
		StartTime: "20:00:00",
		EndTime:   "00:00:00",
	}
	if !OccupiedAt(eod, time.Date(2024, 3, 4, 23, 30, 0, 0, time.UTC)) {
		t.Error("23:30 should be inside 20:00-end-of-day")
	}

	crossing := model.Booking{
		BookingID:   "bk-night",
		IsRecurring: true,
		DayOfWeek:   "Monday",
		StartDate:   datePtr(2024, 3, 1),
		LastDate:    datePtr(2024, 3, 31),
		StartTime:   "22:00:00",
		EndTime:     "02:00:00",
	}
	if !OccupiedAt(crossing, time.Date(2024, 3, 11, 23, 0, 0, 0, time.UTC)) {
		t.Error("23:00 on a rule Monday should be inside 22:00-02:00")
	}
}

func TestActiveWindowAt(t *testing.T) {
	b := mondayRule()

	if !ActiveWindowAt(b, time.Date(2024, 3, 12, 15, 0, 0, 0, time.UTC)) {
		t.Error("any date inside the window counts, regardless of weekday or time")
	}
	if ActiveWindowAt(b, time.Date(2024, 4, 2, 15, 0, 0, 0, time.UTC)) {
		t.Error("dates past last_date are outside the window")
	}

	oneOff := model.Booking{BookingID: "x", Date: datePtr(2024, 3, 4)}
	if ActiveWindowAt(oneOff, time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)) {
		t.Error("one-off bookings have no recurring window")
	}
}
