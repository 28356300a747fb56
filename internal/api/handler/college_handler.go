package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Jeyeeem21/RoomManagement/internal/dto"
	"github.com/Jeyeeem21/RoomManagement/internal/service"
	"github.com/Jeyeeem21/RoomManagement/pkg/response"
)

// CollegeHandler serves the college CRUD endpoints.
type CollegeHandler struct {
	collegeSvc service.CollegeService
}

func NewCollegeHandler(collegeSvc service.CollegeService) *CollegeHandler {
	return &CollegeHandler{collegeSvc: collegeSvc}
}

// POST /api/v1/colleges
func (h *CollegeHandler) Create(c *gin.Context) {
	var req dto.CollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 16001, "invalid college payload")
		return
	}

	college, err := h.collegeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleCollegeError(c, err)
		return
	}
	response.Created(c, college)
}

// GET /api/v1/colleges/:id
func (h *CollegeHandler) Get(c *gin.Context) {
	college, err := h.collegeSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleCollegeError(c, err)
		return
	}
	response.OK(c, college)
}

// GET /api/v1/colleges
func (h *CollegeHandler) List(c *gin.Context) {
	colleges, err := h.collegeSvc.List(c.Request.Context())
	if err != nil {
		h.handleCollegeError(c, err)
		return
	}
	response.OK(c, gin.H{"list": colleges})
}

// PUT /api/v1/colleges/:id
func (h *CollegeHandler) Update(c *gin.Context) {
	var req dto.CollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 16001, "invalid college payload")
		return
	}

	college, err := h.collegeSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleCollegeError(c, err)
		return
	}
	response.OK(c, college)
}

// DELETE /api/v1/colleges/:id
func (h *CollegeHandler) Delete(c *gin.Context) {
	if err := h.collegeSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleCollegeError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *CollegeHandler) handleCollegeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCollegeNotFound):
		response.NotFound(c, 16101, "college not found")
	default:
		response.InternalError(c)
	}
}
