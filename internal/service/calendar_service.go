package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/Jeyeeem21/RoomManagement/internal/model"
	"github.com/Jeyeeem21/RoomManagement/internal/repository"
	"github.com/Jeyeeem21/RoomManagement/internal/schedule"
)

// ICSWindowDays bounds the recurrence expansion of the iCalendar feed;
// subscribing clients refresh, so a rolling window is enough.
const ICSWindowDays = 90

// EventQuery narrows the calendar feed. Range bounds follow feed
// semantics: Start inclusive, End exclusive; recurring bookings need both
// bounds to contribute.
type EventQuery struct {
	RoomID     string
	BuildingID string
	Start      *time.Time
	End        *time.Time
}

// CalendarService produces the calendar event feed and the iCalendar
// subscription document.
type CalendarService interface {
	ListEvents(ctx context.Context, q *EventQuery) ([]schedule.Event, error)
	ExportICS(ctx context.Context, roomID string) (string, error)
}

type calendarService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewCalendarService(repo *repository.Repository, logger *zap.Logger) CalendarService {
	return &calendarService{repo: repo, logger: logger}
}

func (s *calendarService) ListEvents(ctx context.Context, q *EventQuery) ([]schedule.Event, error) {
	bookings, err := s.loadBookings(ctx, q.RoomID, q.BuildingID)
	if err != nil {
		return nil, err
	}
	roomNames, err := s.roomNames(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.BuildEvents(bookings, roomNames, q.Start, q.End), nil
}

func (s *calendarService) ExportICS(ctx context.Context, roomID string) (string, error) {
	bookings, err := s.loadBookings(ctx, roomID, "")
	if err != nil {
		return "", err
	}
	roomNames, err := s.roomNames(ctx)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, ICSWindowDays)
	events := schedule.BuildEvents(bookings, roomNames, &start, &end)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//RoomManagement//Scheduling//EN")
	for i, ev := range events {
		e := cal.AddEvent(fmt.Sprintf("%s-%d@room-management", ev.ID, i))
		e.SetCreatedTime(now)
		e.SetDtStampTime(now)
		e.SetStartAt(ev.Start)
		e.SetEndAt(ev.End)
		e.SetSummary(ev.Title)
	}
	return cal.Serialize(), nil
}

func (s *calendarService) loadBookings(ctx context.Context, roomID, buildingID string) ([]model.Booking, error) {
	var (
		bookings []model.Booking
		err      error
	)
	switch {
	case roomID != "":
		bookings, err = s.repo.Booking.ListByRoom(ctx, roomID)
	case buildingID != "":
		bookings, err = s.repo.Booking.ListByBuilding(ctx, buildingID)
	default:
		bookings, err = s.repo.Booking.List(ctx)
	}
	if err != nil {
		s.logger.Error("load bookings for calendar failed", zap.Error(err))
		return nil, err
	}
	return bookings, nil
}

func (s *calendarService) roomNames(ctx context.Context) (map[string]string, error) {
	rooms, err := s.repo.Room.List(ctx)
	if err != nil {
		s.logger.Error("load rooms for calendar failed", zap.Error(err))
		return nil, err
	}
	names := make(map[string]string, len(rooms))
	for _, r := range rooms {
		names[r.RoomID] = r.Name
	}
	return names, nil
}
