package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Jeyeeem21/RoomManagement/internal/model"
)

// CollegeRepository is the college data-access interface.
type CollegeRepository interface {
	Create(ctx context.Context, college *model.College) error
	GetByID(ctx context.Context, id string) (*model.College, error)
	List(ctx context.Context) ([]model.College, error)
	ListRecent(ctx context.Context, limit int) ([]model.College, error)
	Update(ctx context.Context, college *model.College) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type collegeRepo struct {
	db *gorm.DB
}

func NewCollegeRepo(db *gorm.DB) CollegeRepository {
	return &collegeRepo{db: db}
}

func (r *collegeRepo) Create(ctx context.Context, college *model.College) error {
	return r.db.WithContext(ctx).Create(college).Error
}

func (r *collegeRepo) GetByID(ctx context.Context, id string) (*model.College, error) {
	var college model.College
	err := r.db.WithContext(ctx).
		Preload("Buildings").
		Where("college_id = ?", id).
		First(&college).Error
	if err != nil {
		return nil, err
	}
	return &college, nil
}

func (r *collegeRepo) List(ctx context.Context) ([]model.College, error) {
	var colleges []model.College
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&colleges).Error
	return colleges, err
}

func (r *collegeRepo) ListRecent(ctx context.Context, limit int) ([]model.College, error) {
	var colleges []model.College
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&colleges).Error
	return colleges, err
}

func (r *collegeRepo) Update(ctx context.Context, college *model.College) error {
	return r.db.WithContext(ctx).
		Model(college).
		Where("college_id = ?", college.CollegeID).
		Updates(map[string]interface{}{
			"name":        college.Name,
			"dean":        college.Dean,
			"description": college.Description,
		}).Error
}

func (r *collegeRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("college_id = ?", id).
		Delete(&model.College{}).Error
}

func (r *collegeRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.College{}).Count(&n).Error
	return n, err
}
