package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Jeyeeem21/RoomManagement/internal/model"
)

// RoomRepository is the room data-access interface.
type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	GetByID(ctx context.Context, id string) (*model.Room, error)
	List(ctx context.Context) ([]model.Room, error)
	ListByBuilding(ctx context.Context, buildingID string) ([]model.Room, error)
	Update(ctx context.Context, room *model.Room) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	SumCapacity(ctx context.Context) (int64, error)
}

type roomRepo struct {
	db *gorm.DB
}

func NewRoomRepo(db *gorm.DB) RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) Create(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepo) GetByID(ctx context.Context, id string) (*model.Room, error) {
	var room model.Room
	err := r.db.WithContext(ctx).
		Preload("Building").
		Where("room_id = ?", id).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepo) List(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	err := r.db.WithContext(ctx).
		Preload("Building").
		Order("name ASC").
		Find(&rooms).Error
	return rooms, err
}

func (r *roomRepo) ListByBuilding(ctx context.Context, buildingID string) ([]model.Room, error) {
	var rooms []model.Room
	err := r.db.WithContext(ctx).
		Where("building_id = ?", buildingID).
		Order("name ASC").
		Find(&rooms).Error
	return rooms, err
}

func (r *roomRepo) Update(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).
		Model(room).
		Where("room_id = ?", room.RoomID).
		Updates(map[string]interface{}{
			"building_id": room.BuildingID,
			"name":        room.Name,
			"capacity":    room.Capacity,
			"type":        room.Type,
			"description": room.Description,
		}).Error
}

func (r *roomRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("room_id = ?", id).
		Delete(&model.Room{}).Error
}

func (r *roomRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Room{}).Count(&n).Error
	return n, err
}

func (r *roomRepo) SumCapacity(ctx context.Context) (int64, error) {
	var sum *int64
	err := r.db.WithContext(ctx).
		Model(&model.Room{}).
		Select("SUM(capacity)").
		Scan(&sum).Error
	if err != nil || sum == nil {
		return 0, err
	}
	return *sum, nil
}
