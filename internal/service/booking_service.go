package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Jeyeeem21/RoomManagement/internal/dto"
	"github.com/Jeyeeem21/RoomManagement/internal/model"
	"github.com/Jeyeeem21/RoomManagement/internal/repository"
	"github.com/Jeyeeem21/RoomManagement/internal/schedule"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingConflict = errors.New("booking conflicts with an existing schedule")
	ErrBookingShape    = errors.New("booking must be either one-off (date) or recurring (day_of_week, start_date, last_date)")
	ErrBadTimeRange    = errors.New("start_time and end_time must be HH:MM or HH:MM:SS")
	ErrBadDateWindow   = errors.New("last_date must not precede start_date")
)

// BookingService owns booking writes and the conflict probe.
type BookingService interface {
	Create(ctx context.Context, req *dto.CreateBookingRequest) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context) ([]model.Booking, error)
	ListByRoom(ctx context.Context, roomID string) ([]model.Booking, error)
	Update(ctx context.Context, id string, req *dto.UpdateBookingRequest) (*model.Booking, error)
	Delete(ctx context.Context, id string) error
	CheckConflict(ctx context.Context, req *dto.CheckConflictRequest) (*dto.ConflictResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	logger *zap.Logger

	// roomLocks serializes the check-then-write window per room so two
	// concurrent creates cannot both pass the conflict probe.
	mu        sync.Mutex
	roomLocks map[string]*sync.Mutex
}

func NewBookingService(repo *repository.Repository, logger *zap.Logger) BookingService {
	return &bookingService{
		repo:      repo,
		logger:    logger,
		roomLocks: make(map[string]*sync.Mutex),
	}
}

func (s *bookingService) lockRoom(roomID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.roomLocks[roomID]
	if !ok {
		l = &sync.Mutex{}
		s.roomLocks[roomID] = l
	}
	return l
}

func (s *bookingService) Create(ctx context.Context, req *dto.CreateBookingRequest) (*model.Booking, error) {
	booking, err := bookingFromRequest(req.RoomID, req.Course, req.FacultyName, req.Program,
		req.Year, req.Section, req.Unit, req.Date, req.DayOfWeek, req.StartDate, req.LastDate,
		req.StartTime, req.EndTime, req.IsRecurring, req.ColorCode)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Room.GetByID(ctx, booking.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("load room for booking failed", zap.String("room_id", booking.RoomID), zap.Error(err))
		return nil, err
	}

	l := s.lockRoom(booking.RoomID)
	l.Lock()
	defer l.Unlock()

	if err := s.vetConflict(ctx, booking, ""); err != nil {
		return nil, err
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.logger.Error("create booking failed", zap.Error(err))
		return nil, err
	}
	s.logger.Info("booking created",
		zap.String("booking_id", booking.BookingID),
		zap.String("room_id", booking.RoomID),
		zap.Bool("recurring", booking.IsRecurring))
	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	booking, err := s.repo.Booking.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("get booking failed", zap.String("booking_id", id), zap.Error(err))
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) List(ctx context.Context) ([]model.Booking, error) {
	bookings, err := s.repo.Booking.List(ctx)
	if err != nil {
		s.logger.Error("list bookings failed", zap.Error(err))
		return nil, err
	}
	return bookings, nil
}

func (s *bookingService) ListByRoom(ctx context.Context, roomID string) ([]model.Booking, error) {
	bookings, err := s.repo.Booking.ListByRoom(ctx, roomID)
	if err != nil {
		s.logger.Error("list room bookings failed", zap.String("room_id", roomID), zap.Error(err))
		return nil, err
	}
	return bookings, nil
}

func (s *bookingService) Update(ctx context.Context, id string, req *dto.UpdateBookingRequest) (*model.Booking, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	booking, err := bookingFromRequest(req.RoomID, req.Course, req.FacultyName, req.Program,
		req.Year, req.Section, req.Unit, req.Date, req.DayOfWeek, req.StartDate, req.LastDate,
		req.StartTime, req.EndTime, req.IsRecurring, req.ColorCode)
	if err != nil {
		return nil, err
	}
	booking.BookingID = id

	if _, err := s.repo.Room.GetByID(ctx, booking.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("load room for booking failed", zap.String("room_id", booking.RoomID), zap.Error(err))
		return nil, err
	}

	l := s.lockRoom(booking.RoomID)
	l.Lock()
	defer l.Unlock()

	if err := s.vetConflict(ctx, booking, id); err != nil {
		return nil, err
	}

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.logger.Error("update booking failed", zap.String("booking_id", id), zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Booking.Delete(ctx, id); err != nil {
		s.logger.Error("delete booking failed", zap.String("booking_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("booking deleted", zap.String("booking_id", id))
	return nil
}

func (s *bookingService) CheckConflict(ctx context.Context, req *dto.CheckConflictRequest) (*dto.ConflictResponse, error) {
	if _, _, err := parseTimePair(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Booking.ListForConflict(ctx, req.RoomID, date, req.DayOfWeek)
	if err != nil {
		s.logger.Error("conflict probe query failed", zap.String("room_id", req.RoomID), zap.Error(err))
		return nil, err
	}
	result := schedule.FindConflict(existing, req.StartTime, req.EndTime, req.ExcludeID)
	return &dto.ConflictResponse{Conflict: result.Conflict, Message: result.Message}, nil
}

// vetConflict runs the pre-write conflict probe for a fully built booking.
// Caller holds the room lock.
func (s *bookingService) vetConflict(ctx context.Context, b *model.Booking, excludeID string) error {
	existing, err := s.repo.Booking.ListForConflict(ctx, b.RoomID, b.Date, b.DayOfWeek)
	if err != nil {
		s.logger.Error("conflict probe query failed", zap.String("room_id", b.RoomID), zap.Error(err))
		return err
	}
	if result := schedule.FindConflict(existing, b.StartTime, b.EndTime, excludeID); result.Conflict {
		return &ConflictError{Message: result.Message}
	}
	return nil
}

// ConflictError carries the human-readable description of the first
// conflicting booking. It unwraps to ErrBookingConflict so handlers can
// match with errors.Is.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }
func (e *ConflictError) Unwrap() error { return ErrBookingConflict }

// bookingFromRequest validates the request shape and assembles the model.
func bookingFromRequest(roomID, course, faculty, program, year, section, unit,
	date, dayOfWeek, startDate, lastDate, startTime, endTime string,
	isRecurring bool, colorCode string) (*model.Booking, error) {

	startTime, endTime, err := parseTimePair(startTime, endTime)
	if err != nil {
		return nil, err
	}

	b := &model.Booking{
		RoomID:      roomID,
		Course:      course,
		FacultyName: faculty,
		Program:     program,
		Year:        year,
		Section:     section,
		Unit:        unit,
		StartTime:   startTime,
		EndTime:     endTime,
		IsRecurring: isRecurring,
		ColorCode:   colorCode,
	}
	if b.ColorCode == "" {
		b.ColorCode = model.DefaultColorCode
	}

	if isRecurring {
		if date != "" || dayOfWeek == "" || startDate == "" || lastDate == "" {
			return nil, ErrBookingShape
		}
		b.DayOfWeek = dayOfWeek
		if b.StartDate, err = parseDate(startDate); err != nil {
			return nil, err
		}
		if b.LastDate, err = parseDate(lastDate); err != nil {
			return nil, err
		}
		if b.LastDate.Before(*b.StartDate) {
			return nil, ErrBadDateWindow
		}
	} else {
		if date == "" || dayOfWeek != "" || startDate != "" || lastDate != "" {
			return nil, ErrBookingShape
		}
		if b.Date, err = parseDate(date); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// parseTimePair validates both clock strings and returns them normalized
// to seconds precision.
func parseTimePair(startTime, endTime string) (string, string, error) {
	s, err := schedule.ParseTimeOfDay(startTime)
	if err != nil {
		return "", "", ErrBadTimeRange
	}
	e, err := schedule.ParseTimeOfDay(endTime)
	if err != nil {
		return "", "", ErrBadTimeRange
	}
	return s.String(), e.String(), nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
