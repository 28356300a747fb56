package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jeyeeem21/RoomManagement/internal/service"
	"github.com/Jeyeeem21/RoomManagement/pkg/response"
)

// CalendarHandler serves the calendar feed and the iCalendar export.
type CalendarHandler struct {
	calendarSvc service.CalendarService
}

func NewCalendarHandler(calendarSvc service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarSvc: calendarSvc}
}

// Events returns the flattened event feed for a date range.
// GET /api/v1/calendar/events?start=2024-03-01&end=2024-03-31&room_id=xxx
func (h *CalendarHandler) Events(c *gin.Context) {
	q := &service.EventQuery{
		RoomID:     c.Query("room_id"),
		BuildingID: c.Query("building_id"),
	}

	var err error
	if q.Start, err = parseDateQuery(c.Query("start")); err != nil {
		response.BadRequest(c, 13001, "start must be YYYY-MM-DD")
		return
	}
	if q.End, err = parseDateQuery(c.Query("end")); err != nil {
		response.BadRequest(c, 13001, "end must be YYYY-MM-DD")
		return
	}

	events, err := h.calendarSvc.ListEvents(c.Request.Context(), q)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": events})
}

// RoomICS streams a room's schedule as an iCalendar subscription.
// GET /api/v1/calendar/rooms/:id/ics
func (h *CalendarHandler) RoomICS(c *gin.Context) {
	out, err := h.calendarSvc.ExportICS(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="room-schedule.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(out))
}

func parseDateQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
