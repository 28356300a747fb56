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

type RoomService interface {
	Create(ctx context.Context, req *dto.RoomRequest) (*model.Room, error)
	GetByID(ctx context.Context, id string) (*model.Room, error)
	List(ctx context.Context) ([]model.Room, error)
	ListByBuilding(ctx context.Context, buildingID string) ([]model.Room, error)
	Update(ctx context.Context, id string, req *dto.RoomRequest) (*model.Room, error)
	Delete(ctx context.Context, id string) error
}

type roomService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewRoomService(repo *repository.Repository, logger *zap.Logger) RoomService {
	return &roomService{repo: repo, logger: logger}
}

func (s *roomService) Create(ctx context.Context, req *dto.RoomRequest) (*model.Room, error) {
	if _, err := s.repo.Building.GetByID(ctx, req.BuildingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBuildingNotFound
		}
		s.logger.Error("load building for room failed", zap.String("building_id", req.BuildingID), zap.Error(err))
		return nil, err
	}
	room := &model.Room{
		BuildingID:  req.BuildingID,
		Name:        req.Name,
		Capacity:    req.Capacity,
		Type:        req.Type,
		Description: req.Description,
	}
	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.logger.Error("create room failed", zap.Error(err))
		return nil, err
	}
	return room, nil
}

func (s *roomService) GetByID(ctx context.Context, id string) (*model.Room, error) {
	room, err := s.repo.Room.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("get room failed", zap.String("room_id", id), zap.Error(err))
		return nil, err
	}
	return room, nil
}

func (s *roomService) List(ctx context.Context) ([]model.Room, error) {
	rooms, err := s.repo.Room.List(ctx)
	if err != nil {
		s.logger.Error("list rooms failed", zap.Error(err))
		return nil, err
	}
	return rooms, nil
}

func (s *roomService) ListByBuilding(ctx context.Context, buildingID string) ([]model.Room, error) {
	rooms, err := s.repo.Room.ListByBuilding(ctx, buildingID)
	if err != nil {
		s.logger.Error("list building rooms failed", zap.String("building_id", buildingID), zap.Error(err))
		return nil, err
	}
	return rooms, nil
}

func (s *roomService) Update(ctx context.Context, id string, req *dto.RoomRequest) (*model.Room, error) {
	room, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	room.BuildingID = req.BuildingID
	room.Name = req.Name
	room.Capacity = req.Capacity
	room.Type = req.Type
	room.Description = req.Description
	if err := s.repo.Room.Update(ctx, room); err != nil {
		s.logger.Error("update room failed", zap.String("room_id", id), zap.Error(err))
		return nil, err
	}
	return room, nil
}

func (s *roomService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Room.Delete(ctx, id); err != nil {
		s.logger.Error("delete room failed", zap.String("room_id", id), zap.Error(err))
		return err
	}
	return nil
}
