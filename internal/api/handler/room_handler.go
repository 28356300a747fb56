package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Jeyeeem21/RoomManagement/internal/dto"
	"github.com/Jeyeeem21/RoomManagement/internal/service"
	"github.com/Jeyeeem21/RoomManagement/pkg/response"
)

// RoomHandler serves the room CRUD endpoints.
type RoomHandler struct {
	roomSvc service.RoomService
}

func NewRoomHandler(roomSvc service.RoomService) *RoomHandler {
	return &RoomHandler{roomSvc: roomSvc}
}

// POST /api/v1/rooms
func (h *RoomHandler) Create(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 18001, "invalid room payload")
		return
	}

	room, err := h.roomSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleRoomError(c, err)
		return
	}
	response.Created(c, room)
}

// GET /api/v1/rooms/:id
func (h *RoomHandler) Get(c *gin.Context) {
	room, err := h.roomSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleRoomError(c, err)
		return
	}
	response.OK(c, room)
}

// GET /api/v1/rooms?building_id=xxx
func (h *RoomHandler) List(c *gin.Context) {
	var (
		rooms interface{}
		err   error
	)
	if buildingID := c.Query("building_id"); buildingID != "" {
		rooms, err = h.roomSvc.ListByBuilding(c.Request.Context(), buildingID)
	} else {
		rooms, err = h.roomSvc.List(c.Request.Context())
	}
	if err != nil {
		h.handleRoomError(c, err)
		return
	}
	response.OK(c, gin.H{"list": rooms})
}

// PUT /api/v1/rooms/:id
func (h *RoomHandler) Update(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 18001, "invalid room payload")
		return
	}

	room, err := h.roomSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleRoomError(c, err)
		return
	}
	response.OK(c, room)
}

// DELETE /api/v1/rooms/:id
func (h *RoomHandler) Delete(c *gin.Context) {
	if err := h.roomSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleRoomError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *RoomHandler) handleRoomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRoomNotFound):
		response.NotFound(c, 18101, "room not found")
	case errors.Is(err, service.ErrBuildingNotFound):
		response.NotFound(c, 18102, "building not found")
	default:
		response.InternalError(c)
	}
}
