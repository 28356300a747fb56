package service

import (
	"go.uber.org/zap"

	"github.com/Jeyeeem21/RoomManagement/config"
	"github.com/Jeyeeem21/RoomManagement/internal/repository"
	"github.com/Jeyeeem21/RoomManagement/pkg/jwt"
	"github.com/Jeyeeem21/RoomManagement/pkg/redis"
)

// Service aggregates every business service behind one injection point.
type Service struct {
	Auth      AuthService
	Booking   BookingService
	Calendar  CalendarService
	Export    ExportService
	Dashboard DashboardService
	College   CollegeService
	Building  BuildingService
	Room      RoomService
	Setting   SettingService
}

// NewService wires the services against the repository layer.
func NewService(repo *repository.Repository, rdb *redis.Client, jwtMgr *jwt.Manager, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, rdb, jwtMgr, &cfg.Auth, logger),
		Booking:   NewBookingService(repo, logger),
		Calendar:  NewCalendarService(repo, logger),
		Export:    NewExportService(repo, logger),
		Dashboard: NewDashboardService(repo, &cfg.Campus, logger),
		College:   NewCollegeService(repo, logger),
		Building:  NewBuildingService(repo, logger),
		Room:      NewRoomService(repo, logger),
		Setting:   NewSettingService(repo, logger),
	}
}
