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

var ErrSettingNotFound = errors.New("setting not found")

type SettingService interface {
	Get(ctx context.Context, key string) (*model.Setting, error)
	List(ctx context.Context) ([]model.Setting, error)
	Set(ctx context.Context, req *dto.SettingRequest) (*model.Setting, error)
	Delete(ctx context.Context, key string) error
}

type settingService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewSettingService(repo *repository.Repository, logger *zap.Logger) SettingService {
	return &settingService{repo: repo, logger: logger}
}

func (s *settingService) Get(ctx context.Context, key string) (*model.Setting, error) {
	setting, err := s.repo.Setting.Get(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		s.logger.Error("get setting failed", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return setting, nil
}

func (s *settingService) List(ctx context.Context) ([]model.Setting, error) {
	settings, err := s.repo.Setting.List(ctx)
	if err != nil {
		s.logger.Error("list settings failed", zap.Error(err))
		return nil, err
	}
	return settings, nil
}

func (s *settingService) Set(ctx context.Context, req *dto.SettingRequest) (*model.Setting, error) {
	setting := &model.Setting{Key: req.Key, Value: req.Value}
	if err := s.repo.Setting.Upsert(ctx, setting); err != nil {
		s.logger.Error("upsert setting failed", zap.String("key", req.Key), zap.Error(err))
		return nil, err
	}
	return setting, nil
}

func (s *settingService) Delete(ctx context.Context, key string) error {
	if _, err := s.Get(ctx, key); err != nil {
		return err
	}
	if err := s.repo.Setting.Delete(ctx, key); err != nil {
		s.logger.Error("delete setting failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
