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

var ErrCollegeNotFound = errors.New("college not found")

type CollegeService interface {
	Create(ctx context.Context, req *dto.CollegeRequest) (*model.College, error)
	GetByID(ctx context.Context, id string) (*model.College, error)
	List(ctx context.Context) ([]model.College, error)
	Update(ctx context.Context, id string, req *dto.CollegeRequest) (*model.College, error)
	Delete(ctx context.Context, id string) error
}

type collegeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewCollegeService(repo *repository.Repository, logger *zap.Logger) CollegeService {
	return &collegeService{repo: repo, logger: logger}
}

func (s *collegeService) Create(ctx context.Context, req *dto.CollegeRequest) (*model.College, error) {
	college := &model.College{
		Name:        req.Name,
		Dean:        req.Dean,
		Description: req.Description,
	}
	if err := s.repo.College.Create(ctx, college); err != nil {
		s.logger.Error("create college failed", zap.Error(err))
		return nil, err
	}
	return college, nil
}

func (s *collegeService) GetByID(ctx context.Context, id string) (*model.College, error) {
	college, err := s.repo.College.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCollegeNotFound
		}
		s.logger.Error("get college failed", zap.String("college_id", id), zap.Error(err))
		return nil, err
	}
	return college, nil
}

func (s *collegeService) List(ctx context.Context) ([]model.College, error) {
	colleges, err := s.repo.College.List(ctx)
	if err != nil {
		s.logger.Error("list colleges failed", zap.Error(err))
		return nil, err
	}
	return colleges, nil
}

func (s *collegeService) Update(ctx context.Context, id string, req *dto.CollegeRequest) (*model.College, error) {
	college, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	college.Name = req.Name
	college.Dean = req.Dean
	college.Description = req.Description
	if err := s.repo.College.Update(ctx, college); err != nil {
		s.logger.Error("update college failed", zap.String("college_id", id), zap.Error(err))
		return nil, err
	}
	return college, nil
}

func (s *collegeService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.College.Delete(ctx, id); err != nil {
		s.logger.Error("delete college failed", zap.String("college_id", id), zap.Error(err))
		return err
	}
	return nil
}
