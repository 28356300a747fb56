package service

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Jeyeeem21/RoomManagement/config"
	"github.com/Jeyeeem21/RoomManagement/internal/dto"
	"github.com/Jeyeeem21/RoomManagement/internal/repository"
	"github.com/Jeyeeem21/RoomManagement/internal/schedule"
)

var ErrBuildingNotFound = errors.New("building not found")

// recentLimit caps the recently-added lists on the dashboard.
const recentLimit = 5

// DashboardService aggregates the console dashboard numbers.
type DashboardService interface {
	// GetBuildingOccupancy snapshots one building's room occupancy at
	// the given instant (zero value → now in the campus timezone).
	GetBuildingOccupancy(ctx context.Context, buildingID string, asOf time.Time) (*dto.BuildingOccupancy, error)
	// GetAllOccupancy snapshots every building at once.
	GetAllOccupancy(ctx context.Context, asOf time.Time) ([]dto.BuildingOccupancy, error)
	GetStats(ctx context.Context) (*dto.DashboardStats, error)
}

type dashboardService struct {
	repo     *repository.Repository
	logger   *zap.Logger
	location *time.Location
}

func NewDashboardService(repo *repository.Repository, cfg *config.CampusConfig, logger *zap.Logger) DashboardService {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("invalid campus timezone, falling back to UTC", zap.String("timezone", cfg.Timezone))
		loc = time.UTC
	}
	return &dashboardService{repo: repo, logger: logger, location: loc}
}

func (s *dashboardService) GetBuildingOccupancy(ctx context.Context, buildingID string, asOf time.Time) (*dto.BuildingOccupancy, error) {
	building, err := s.repo.Building.GetByID(ctx, buildingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBuildingNotFound
		}
		s.logger.Error("get building failed", zap.String("building_id", buildingID), zap.Error(err))
		return nil, err
	}

	rooms, err := s.repo.Room.ListByBuilding(ctx, buildingID)
	if err != nil {
		s.logger.Error("list building rooms failed", zap.String("building_id", buildingID), zap.Error(err))
		return nil, err
	}
	bookings, err := s.repo.Booking.ListByBuilding(ctx, buildingID)
	if err != nil {
		s.logger.Error("list building bookings failed", zap.String("building_id", buildingID), zap.Error(err))
		return nil, err
	}

	if asOf.IsZero() {
		asOf = time.Now()
	}
	asOf = asOf.In(s.location)

	occupied := make(map[string]bool)
	scheduled := make(map[string]bool)
	for _, b := range bookings {
		if schedule.OccupiedAt(b, asOf) {
			occupied[b.RoomID] = true
		}
		if schedule.ActiveWindowAt(b, asOf) {
			scheduled[b.RoomID] = true
		}
	}

	total := int64(len(rooms))
	occ := int64(len(occupied))
	withSched := int64(len(scheduled))

	// Maintenance state is not tracked yet; the count stays in the
	// response shape at zero for the frontend.
	var maintenance int64

	utilRate := 0
	if total > 0 {
		utilRate = int(math.Round(float64(occ) / float64(total) * 100))
	}
	available := total - occ - maintenance
	if available < 0 {
		available = 0
	}

	return &dto.BuildingOccupancy{
		BuildingID:                     building.BuildingID,
		Building:                       building.Name,
		Rooms:                          total,
		Capacity:                       building.Capacity,
		AvailableRooms:                 available,
		OccupiedRooms:                  occ,
		MaintenanceRooms:               maintenance,
		UtilRate:                       utilRate,
		RoomsWithSchedules:             withSched,
		RemainingRoomsWithoutSchedules: total - withSched,
	}, nil
}

func (s *dashboardService) GetAllOccupancy(ctx context.Context, asOf time.Time) ([]dto.BuildingOccupancy, error) {
	buildings, err := s.repo.Building.List(ctx)
	if err != nil {
		s.logger.Error("list buildings failed", zap.Error(err))
		return nil, err
	}
	out := make([]dto.BuildingOccupancy, 0, len(buildings))
	for _, b := range buildings {
		occ, err := s.GetBuildingOccupancy(ctx, b.BuildingID, asOf)
		if err != nil {
			return nil, err
		}
		out = append(out, *occ)
	}
	return out, nil
}

func (s *dashboardService) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	colleges, err := s.repo.College.Count(ctx)
	if err != nil {
		s.logger.Error("count colleges failed", zap.Error(err))
		return nil, err
	}
	buildings, err := s.repo.Building.Count(ctx)
	if err != nil {
		s.logger.Error("count buildings failed", zap.Error(err))
		return nil, err
	}
	rooms, err := s.repo.Room.Count(ctx)
	if err != nil {
		s.logger.Error("count rooms failed", zap.Error(err))
		return nil, err
	}
	capacity, err := s.repo.Room.SumCapacity(ctx)
	if err != nil {
		s.logger.Error("sum room capacity failed", zap.Error(err))
		return nil, err
	}
	bookings, err := s.repo.Booking.Count(ctx)
	if err != nil {
		s.logger.Error("count bookings failed", zap.Error(err))
		return nil, err
	}

	today := schedule.WeekdayName(time.Now().In(s.location).Weekday())
	bookingsToday, err := s.repo.Booking.CountByDayOfWeek(ctx, today)
	if err != nil {
		s.logger.Error("count today's bookings failed", zap.String("day", today), zap.Error(err))
		return nil, err
	}

	roomCounts, err := s.repo.Building.ListRoomCounts(ctx)
	if err != nil {
		s.logger.Error("list building room counts failed", zap.Error(err))
		return nil, err
	}
	chart := make([]dto.BuildingRooms, 0, len(roomCounts))
	for _, rc := range roomCounts {
		chart = append(chart, dto.BuildingRooms{Building: rc.Name, Rooms: rc.RoomCount})
	}

	recentColleges, err := s.repo.College.ListRecent(ctx, recentLimit)
	if err != nil {
		s.logger.Error("list recent colleges failed", zap.Error(err))
		return nil, err
	}
	recentBuildings, err := s.repo.Building.ListRecent(ctx, recentLimit)
	if err != nil {
		s.logger.Error("list recent buildings failed", zap.Error(err))
		return nil, err
	}

	return &dto.DashboardStats{
		Colleges:        colleges,
		Buildings:       buildings,
		Rooms:           rooms,
		TotalCapacity:   capacity,
		Bookings:        bookings,
		BookingsToday:   bookingsToday,
		RoomsByBuilding: chart,
		RecentColleges:  recentColleges,
		RecentBuildings: recentBuildings,
	}, nil
}
