package dto

// CreateBookingRequest is the payload for POST /bookings. Exactly one of
// the one-off shape (date) and the recurring shape (day_of_week,
// start_date, last_date, is_recurring) must be provided.
type CreateBookingRequest struct {
	RoomID      string `json:"room_id" binding:"required,uuid"`
	Course      string `json:"course" binding:"required,max=100"`
	FacultyName string `json:"faculty_name" binding:"required,max=100"`
	Program     string `json:"program" binding:"max=100"`
	Year        string `json:"year" binding:"max=20"`
	Section     string `json:"section" binding:"max=20"`
	Unit        string `json:"unit" binding:"max=20"`
	Date        string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	DayOfWeek   string `json:"day_of_week" binding:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartDate   string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	LastDate    string `json:"last_date" binding:"omitempty,datetime=2006-01-02"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	IsRecurring bool   `json:"is_recurring"`
	ColorCode   string `json:"color_code" binding:"omitempty,hexcolor"`
}

// UpdateBookingRequest is the payload for PUT /bookings/:id. Same shape
// rule as creation; the booking being updated is excluded from the
// conflict probe.
type UpdateBookingRequest struct {
	RoomID      string `json:"room_id" binding:"required,uuid"`
	Course      string `json:"course" binding:"required,max=100"`
	FacultyName string `json:"faculty_name" binding:"required,max=100"`
	Program     string `json:"program" binding:"max=100"`
	Year        string `json:"year" binding:"max=20"`
	Section     string `json:"section" binding:"max=20"`
	Unit        string `json:"unit" binding:"max=20"`
	Date        string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	DayOfWeek   string `json:"day_of_week" binding:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartDate   string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	LastDate    string `json:"last_date" binding:"omitempty,datetime=2006-01-02"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	IsRecurring bool   `json:"is_recurring"`
	ColorCode   string `json:"color_code" binding:"omitempty,hexcolor"`
}

// CheckConflictRequest is the payload for POST /bookings/check-conflict —
// a dry-run probe that never writes.
type CheckConflictRequest struct {
	RoomID    string `json:"room_id" binding:"required,uuid"`
	Date      string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	DayOfWeek string `json:"day_of_week" binding:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	ExcludeID string `json:"exclude_id" binding:"omitempty,uuid"`
}

// ConflictResponse reports a conflict probe outcome.
type ConflictResponse struct {
	Conflict bool   `json:"conflict"`
	Message  string `json:"message,omitempty"`
}
