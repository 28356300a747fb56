package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Jeyeeem21/RoomManagement/internal/dto"
	"github.com/Jeyeeem21/RoomManagement/internal/service"
	"github.com/Jeyeeem21/RoomManagement/pkg/response"
)

// BuildingHandler serves the building CRUD endpoints.
type BuildingHandler struct {
	buildingSvc service.BuildingService
}

func NewBuildingHandler(buildingSvc service.BuildingService) *BuildingHandler {
	return &BuildingHandler{buildingSvc: buildingSvc}
}

// POST /api/v1/buildings
func (h *BuildingHandler) Create(c *gin.Context) {
	var req dto.BuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 17001, "invalid building payload")
		return
	}

	building, err := h.buildingSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleBuildingError(c, err)
		return
	}
	response.Created(c, building)
}

// GET /api/v1/buildings/:id
func (h *BuildingHandler) Get(c *gin.Context) {
	building, err := h.buildingSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleBuildingError(c, err)
		return
	}
	response.OK(c, building)
}

// GET /api/v1/buildings?college_id=xxx
func (h *BuildingHandler) List(c *gin.Context) {
	var (
		buildings interface{}
		err       error
	)
	if collegeID := c.Query("college_id"); collegeID != "" {
		buildings, err = h.buildingSvc.ListByCollege(c.Request.Context(), collegeID)
	} else {
		buildings, err = h.buildingSvc.List(c.Request.Context())
	}
	if err != nil {
		h.handleBuildingError(c, err)
		return
	}
	response.OK(c, gin.H{"list": buildings})
}

// PUT /api/v1/buildings/:id
func (h *BuildingHandler) Update(c *gin.Context) {
	var req dto.BuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 17001, "invalid building payload")
		return
	}

	building, err := h.buildingSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleBuildingError(c, err)
		return
	}
	response.OK(c, building)
}

// DELETE /api/v1/buildings/:id
func (h *BuildingHandler) Delete(c *gin.Context) {
	if err := h.buildingSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleBuildingError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *BuildingHandler) handleBuildingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBuildingNotFound):
		response.NotFound(c, 17101, "building not found")
	case errors.Is(err, service.ErrCollegeNotFound):
		response.NotFound(c, 17102, "college not found")
	default:
		response.InternalError(c)
	}
}
