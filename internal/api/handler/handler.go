package handler

import "github.com/Jeyeeem21/RoomManagement/internal/service"

// Handler aggregates every HTTP handler behind one injection point.
type Handler struct {
	Auth      *AuthHandler
	Booking   *BookingHandler
	Calendar  *CalendarHandler
	Export    *ExportHandler
	Dashboard *DashboardHandler
	College   *CollegeHandler
	Building  *BuildingHandler
	Room      *RoomHandler
	Setting   *SettingHandler
}

// NewHandler wires the handlers against the service layer.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(svc.Auth),
		Booking:   NewBookingHandler(svc.Booking),
		Calendar:  NewCalendarHandler(svc.Calendar),
		Export:    NewExportHandler(svc.Export),
		Dashboard: NewDashboardHandler(svc.Dashboard),
		College:   NewCollegeHandler(svc.College),
		Building:  NewBuildingHandler(svc.Building),
		Room:      NewRoomHandler(svc.Room),
		Setting:   NewSettingHandler(svc.Setting),
	}
}
