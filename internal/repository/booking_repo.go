package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Jeyeeem21/RoomManagement/internal/model"
)

// BookingRepository is the booking data-access interface.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context) ([]model.Booking, error)
	ListByRoom(ctx context.Context, roomID string) ([]model.Booking, error)
	ListByBuilding(ctx context.Context, buildingID string) ([]model.Booking, error)
	ListByFaculty(ctx context.Context, facultyName string) ([]model.Booking, error)
	ListByProgram(ctx context.Context, program string) ([]model.Booking, error)
	// ListForConflict loads the rows a conflict probe compares against:
	// same room, same literal date or same weekday name. Conflict
	// detection across differing recurring windows is intentionally not
	// attempted here.
	ListForConflict(ctx context.Context, roomID string, date *time.Time, dayOfWeek string) ([]model.Booking, error)
	Update(ctx context.Context, booking *model.Booking) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountByDayOfWeek(ctx context.Context, dayOfWeek string) (int64, error)
}

type bookingRepo struct {
	db *gorm.DB
}

func NewBookingRepo(db *gorm.DB) BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.WithContext(ctx).
		Preload("Room").
		Where("booking_id = ?", id).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepo) List(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) ListByRoom(ctx context.Context, roomID string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("start_time ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) ListByBuilding(ctx context.Context, buildingID string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Joins("JOIN rooms ON rooms.room_id = bookings.room_id").
		Where("rooms.building_id = ?", buildingID).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) ListByFaculty(ctx context.Context, facultyName string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Where("faculty_name = ?", facultyName).
		Order("start_time ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) ListByProgram(ctx context.Context, program string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Where("program = ?", program).
		Order("year ASC, section ASC, start_time ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) ListForConflict(ctx context.Context, roomID string, date *time.Time, dayOfWeek string) ([]model.Booking, error) {
	q := r.db.WithContext(ctx).Where("room_id = ?", roomID)
	switch {
	case date != nil && dayOfWeek != "":
		q = q.Where("date = ? OR day_of_week = ?", date.Format("2006-01-02"), dayOfWeek)
	case date != nil:
		q = q.Where("date = ?", date.Format("2006-01-02"))
	case dayOfWeek != "":
		q = q.Where("day_of_week = ?", dayOfWeek)
	default:
		return nil, nil
	}

	var bookings []model.Booking
	err := q.Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) Update(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).
		Model(booking).
		Where("booking_id = ?", booking.BookingID).
		Updates(map[string]interface{}{
			"room_id":      booking.RoomID,
			"course":       booking.Course,
			"faculty_name": booking.FacultyName,
			"program":      booking.Program,
			"year":         booking.Year,
			"section":      booking.Section,
			"unit":         booking.Unit,
			"date":         booking.Date,
			"day_of_week":  booking.DayOfWeek,
			"start_date":   booking.StartDate,
			"last_date":    booking.LastDate,
			"start_time":   booking.StartTime,
			"end_time":     booking.EndTime,
			"is_recurring": booking.IsRecurring,
			"color_code":   booking.ColorCode,
		}).Error
}

func (r *bookingRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("booking_id = ?", id).
		Delete(&model.Booking{}).Error
}

func (r *bookingRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Booking{}).Count(&n).Error
	return n, err
}

func (r *bookingRepo) CountByDayOfWeek(ctx context.Context, dayOfWeek string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("day_of_week = ?", dayOfWeek).
		Count(&n).Error
	return n, err
}
