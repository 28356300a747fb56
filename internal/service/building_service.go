package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Jeyeeem21/RoomManagement/internal/dto"
	"github.com/Jeyeeem21/RoomManagement/internal/model"
	"github.com/Jeyeeem21/RoomManagement/internal/repository"
)

type BuildingService interface {
	Create(ctx context.Context, req *dto.BuildingRequest) (*model.Building, error)
	GetByID(ctx context.Context, id string) (*model.Building, error)
	List(ctx context.Context) ([]model.Building, error)
	ListByCollege(ctx context.Context, collegeID string) ([]model.Building, error)
	Update(ctx context.Context, id string, req *dto.BuildingRequest) (*model.Building, error)
	Delete(ctx context.Context, id string) error
}

type buildingService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewBuildingService(repo *repository.Repository, logger *zap.Logger) BuildingService {
	return &buildingService{repo: repo, logger: logger}
}

func (s *buildingService) Create(ctx context.Context, req *dto.BuildingRequest) (*model.Building, error) {
	if _, err := s.repo.College.GetByID(ctx, req.CollegeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCollegeNotFound
		}
		s.logger.Error("load college for building failed", zap.String("college_id", req.CollegeID), zap.Error(err))
		return nil, err
	}
	building := &model.Building{
		CollegeID: req.CollegeID,
		Name:      req.Name,
		Location:  req.Location,
		Capacity:  req.Capacity,
	}
	if err := s.repo.Building.Create(ctx, building); err != nil {
		s.logger.Error("create building failed", zap.Error(err))
		return nil, err
	}
	return building, nil
}

func (s *buildingService) GetByID(ctx context.Context, id string) (*model.Building, error) {
	building, err := s.repo.Building.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBuildingNotFound
		}
		s.logger.Error("get building failed", zap.String("building_id", id), zap.Error(err))
		return nil, err
	}
	return building, nil
}

func (s *buildingService) List(ctx context.Context) ([]model.Building, error) {
	buildings, err := s.repo.Building.List(ctx)
	if err != nil {
		s.logger.Error("list buildings failed", zap.Error(err))
		return nil, err
	}
	return buildings, nil
}

func (s *buildingService) ListByCollege(ctx context.Context, collegeID string) ([]model.Building, error) {
	buildings, err := s.repo.Building.ListByCollege(ctx, collegeID)
	if err != nil {
		s.logger.Error("list college buildings failed", zap.String("college_id", collegeID), zap.Error(err))
		return nil, err
	}
	return buildings, nil
}

func (s *buildingService) Update(ctx context.Context, id string, req *dto.BuildingRequest) (*model.Building, error) {
	building, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	building.CollegeID = req.CollegeID
	building.Name = req.Name
	building.Location = req.Location
	building.Capacity = req.Capacity
	if err := s.repo.Building.Update(ctx, building); err != nil {
		s.logger.Error("update building failed", zap.String("building_id", id), zap.Error(err))
		return nil, err
	}
	return building, nil
}

func (s *buildingService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Building.Delete(ctx, id); err != nil {
		s.logger.Error("delete building failed", zap.String("building_id", id), zap.Error(err))
		return err
	}
	return nil
}
