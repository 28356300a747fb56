package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jeyeeem21/RoomManagement/internal/service"
	"github.com/Jeyeeem21/RoomManagement/pkg/response"
)

// DashboardHandler serves the dashboard aggregates.
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// Stats returns the headline counts.
// GET /api/v1/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardSvc.GetStats(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, stats)
}

// BuildingOccupancy snapshots one building at an optional instant.
// GET /api/v1/dashboard/buildings/:id/occupancy?as_of=2024-03-04T09:30:00Z
func (h *DashboardHandler) BuildingOccupancy(c *gin.Context) {
	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	occ, err := h.dashboardSvc.GetBuildingOccupancy(c.Request.Context(), c.Param("id"), asOf)
	if err != nil {
		h.handleDashboardError(c, err)
		return
	}
	response.OK(c, occ)
}

// Occupancy snapshots every building.
// GET /api/v1/dashboard/occupancy
func (h *DashboardHandler) Occupancy(c *gin.Context) {
	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	out, err := h.dashboardSvc.GetAllOccupancy(c.Request.Context(), asOf)
	if err != nil {
		h.handleDashboardError(c, err)
		return
	}
	response.OK(c, gin.H{"list": out})
}

func parseAsOf(c *gin.Context) (time.Time, bool) {
	raw := c.Query("as_of")
	if raw == "" {
		return time.Time{}, true
	}
	asOf, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		response.BadRequest(c, 15001, "as_of must be RFC 3339")
		return time.Time{}, false
	}
	return asOf, true
}

func (h *DashboardHandler) handleDashboardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBuildingNotFound):
		response.NotFound(c, 15101, "building not found")
	default:
		response.InternalError(c)
	}
}
