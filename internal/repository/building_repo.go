package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Jeyeeem21/RoomManagement/internal/model"
)

// BuildingRoomCount pairs a building with the number of rooms registered
// under it, for the dashboard occupancy breakdown.
type BuildingRoomCount struct {
	BuildingID string
	Name       string
	Capacity   int
	RoomCount  int64
}

// BuildingRepository is the building data-access interface.
type BuildingRepository interface {
	Create(ctx context.Context, building *model.Building) error
	GetByID(ctx context.Context, id string) (*model.Building, error)
	List(ctx context.Context) ([]model.Building, error)
	ListByCollege(ctx context.Context, collegeID string) ([]model.Building, error)
	ListRecent(ctx context.Context, limit int) ([]model.Building, error)
	ListRoomCounts(ctx context.Context) ([]BuildingRoomCount, error)
	Update(ctx context.Context, building *model.Building) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type buildingRepo struct {
	db *gorm.DB
}

func NewBuildingRepo(db *gorm.DB) BuildingRepository {
	return &buildingRepo{db: db}
}

func (r *buildingRepo) Create(ctx context.Context, building *model.Building) error {
	return r.db.WithContext(ctx).Create(building).Error
}

func (r *buildingRepo) GetByID(ctx context.Context, id string) (*model.Building, error) {
	var building model.Building
	err := r.db.WithContext(ctx).
		Preload("College").
		Where("building_id = ?", id).
		First(&building).Error
	if err != nil {
		return nil, err
	}
	return &building, nil
}

func (r *buildingRepo) List(ctx context.Context) ([]model.Building, error) {
	var buildings []model.Building
	err := r.db.WithContext(ctx).
		Preload("College").
		Order("name ASC").
		Find(&buildings).Error
	return buildings, err
}

func (r *buildingRepo) ListByCollege(ctx context.Context, collegeID string) ([]model.Building, error) {
	var buildings []model.Building
	err := r.db.WithContext(ctx).
		Where("college_id = ?", collegeID).
		Order("name ASC").
		Find(&buildings).Error
	return buildings, err
}

func (r *buildingRepo) ListRecent(ctx context.Context, limit int) ([]model.Building, error) {
	var buildings []model.Building
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&buildings).Error
	return buildings, err
}

func (r *buildingRepo) ListRoomCounts(ctx context.Context) ([]BuildingRoomCount, error) {
	var counts []BuildingRoomCount
	err := r.db.WithContext(ctx).
		Model(&model.Building{}).
		Select("buildings.building_id, buildings.name, buildings.capacity, COUNT(rooms.room_id) AS room_count").
		Joins("LEFT JOIN rooms ON rooms.building_id = buildings.building_id").
		Group("buildings.building_id, buildings.name, buildings.capacity").
		Order("buildings.name ASC").
		Scan(&counts).Error
	return counts, err
}

func (r *buildingRepo) Update(ctx context.Context, building *model.Building) error {
	return r.db.WithContext(ctx).
		Model(building).
		Where("building_id = ?", building.BuildingID).
		Updates(map[string]interface{}{
			"college_id": building.CollegeID,
			"name":       building.Name,
			"location":   building.Location,
			"capacity":   building.Capacity,
		}).Error
}

func (r *buildingRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("building_id = ?", id).
		Delete(&model.Building{}).Error
}

func (r *buildingRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Building{}).Count(&n).Error
	return n, err
}
