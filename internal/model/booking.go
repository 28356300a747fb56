package model

import "time"

// DefaultColorCode is applied to bookings created without a color tag.
const DefaultColorCode = "#4FA9E2"

// Booking represents a scheduled use of a room — maps to table bookings.
//
// A booking is either one-off or recurring, never both:
//   - one-off bookings carry Date; the recurrence fields are ignored.
//   - recurring bookings carry DayOfWeek (a weekday name), StartDate and
//     LastDate (the inclusive window over which the weekly rule applies)
//     and have IsRecurring set.
//
// StartTime/EndTime are time-of-day strings with seconds precision
// ("HH:MM:SS"). EndTime may sort below StartTime, which designates a
// booking crossing midnight; "00:00:00" as an end means end-of-day.
type Booking struct {
	BookingID   string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"booking_id"`
	RoomID      string     `gorm:"type:uuid;not null"                             json:"room_id"`
	Course      string     `gorm:"type:varchar(100);not null"                     json:"course"`
	FacultyName string     `gorm:"type:varchar(100);not null"                     json:"faculty_name"`
	Program     string     `gorm:"type:varchar(100)"                              json:"program,omitempty"`
	Year        string     `gorm:"type:varchar(20)"                               json:"year,omitempty"`
	Section     string     `gorm:"type:varchar(20)"                               json:"section,omitempty"`
	Unit        string     `gorm:"type:varchar(20)"                               json:"unit,omitempty"`
	Date        *time.Time `gorm:"type:date"                                      json:"date,omitempty"`
	DayOfWeek   string     `gorm:"type:varchar(10)"                               json:"day_of_week,omitempty"` // Monday..Sunday
	StartDate   *time.Time `gorm:"type:date"                                      json:"start_date,omitempty"`
	LastDate    *time.Time `gorm:"type:date"                                      json:"last_date,omitempty"`
	StartTime   string     `gorm:"type:time;not null"                             json:"start_time"`
	EndTime     string     `gorm:"type:time;not null"                             json:"end_time"`
	IsRecurring bool       `gorm:"not null;default:false"                         json:"is_recurring"`
	ColorCode   string     `gorm:"type:varchar(9);not null;default:'#4FA9E2'"     json:"color_code"`
	BaseModel

	Room *Room `gorm:"foreignKey:RoomID;references:RoomID" json:"room,omitempty"`
}

func (Booking) TableName() string { return "bookings" }
