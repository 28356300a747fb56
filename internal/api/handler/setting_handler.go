package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Jeyeeem21/RoomManagement/internal/dto"
	"github.com/Jeyeeem21/RoomManagement/internal/service"
	"github.com/Jeyeeem21/RoomManagement/pkg/response"
)

// SettingHandler serves the console settings endpoints.
type SettingHandler struct {
	settingSvc service.SettingService
}

func NewSettingHandler(settingSvc service.SettingService) *SettingHandler {
	return &SettingHandler{settingSvc: settingSvc}
}

// GET /api/v1/settings
func (h *SettingHandler) List(c *gin.Context) {
	settings, err := h.settingSvc.List(c.Request.Context())
	if err != nil {
		h.handleSettingError(c, err)
		return
	}
	response.OK(c, gin.H{"list": settings})
}

// GET /api/v1/settings/:key
func (h *SettingHandler) Get(c *gin.Context) {
	setting, err := h.settingSvc.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.handleSettingError(c, err)
		return
	}
	response.OK(c, setting)
}

// PUT /api/v1/settings
func (h *SettingHandler) Set(c *gin.Context) {
	var req dto.SettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 19001, "invalid setting payload")
		return
	}

	setting, err := h.settingSvc.Set(c.Request.Context(), &req)
	if err != nil {
		h.handleSettingError(c, err)
		return
	}
	response.OK(c, setting)
}

// DELETE /api/v1/settings/:key
func (h *SettingHandler) Delete(c *gin.Context) {
	if err := h.settingSvc.Delete(c.Request.Context(), c.Param("key")); err != nil {
		h.handleSettingError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *SettingHandler) handleSettingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSettingNotFound):
		response.NotFound(c, 19101, "setting not found")
	default:
		response.InternalError(c)
	}
}
