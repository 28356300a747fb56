package dto

import "github.com/Jeyeeem21/RoomManagement/internal/model"

// BuildingOccupancy is the per-building occupancy snapshot shown on the
// dashboard. Counts are computed for one instant; maintenance tracking is
// not wired yet so MaintenanceRooms is always zero and held in the shape
// for the UI.
type BuildingOccupancy struct {
	BuildingID                     string `json:"building_id"`
	Building                       string `json:"building"`
	Rooms                          int64  `json:"rooms"`
	Capacity                       int    `json:"capacity"`
	AvailableRooms                 int64  `json:"available_rooms"`
	OccupiedRooms                  int64  `json:"occupied_rooms"`
	MaintenanceRooms               int64  `json:"maintenance_rooms"`
	UtilRate                       int    `json:"util_rate"`
	RoomsWithSchedules             int64  `json:"rooms_with_schedules"`
	RemainingRoomsWithoutSchedules int64  `json:"remaining_rooms_without_schedules"`
}

// DashboardStats is the headline block of the dashboard: entity counts,
// the rooms-per-building chart series and the recently added entities.
type DashboardStats struct {
	Colleges        int64              `json:"colleges"`
	Buildings       int64              `json:"buildings"`
	Rooms           int64              `json:"rooms"`
	TotalCapacity   int64              `json:"total_capacity"`
	Bookings        int64              `json:"bookings"`
	BookingsToday   int64              `json:"bookings_today"`
	RoomsByBuilding []BuildingRooms  `json:"rooms_by_building"`
	RecentColleges  []model.College  `json:"recent_colleges"`
	RecentBuildings []model.Building `json:"recent_buildings"`
}

// BuildingRooms is one bar of the rooms-per-building chart.
type BuildingRooms struct {
	Building string `json:"building"`
	Rooms    int64  `json:"rooms"`
}
