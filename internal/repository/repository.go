package repository

import "gorm.io/gorm"

// Repository aggregates every entity repository behind one injection point.
type Repository struct {
	College  CollegeRepository
	Building BuildingRepository
	Room     RoomRepository
	Booking  BookingRepository
	User     UserRepository
	Setting  SettingRepository
}

// NewRepository wires the gorm-backed repositories.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		College:  NewCollegeRepo(db),
		Building: NewBuildingRepo(db),
		Room:     NewRoomRepo(db),
		Booking:  NewBookingRepo(db),
		User:     NewUserRepo(db),
		Setting:  NewSettingRepo(db),
	}
}
