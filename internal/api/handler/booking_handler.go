package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Jeyeeem21/RoomManagement/internal/dto"
	"github.com/Jeyeeem21/RoomManagement/internal/service"
	"github.com/Jeyeeem21/RoomManagement/pkg/response"
)

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

// Create creates a booking after the conflict probe passes.
// POST /api/v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "invalid booking payload")
		return
	}

	booking, err := h.bookingSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}
	response.Created(c, booking)
}

// Get returns one booking.
// GET /api/v1/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	booking, err := h.bookingSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleBookingError(c, err)
		return
	}
	response.OK(c, booking)
}

// List returns all bookings, optionally narrowed to one room.
// GET /api/v1/bookings?room_id=xxx
func (h *BookingHandler) List(c *gin.Context) {
	var (
		bookings interface{}
		err      error
	)
	if roomID := c.Query("room_id"); roomID != "" {
		bookings, err = h.bookingSvc.ListByRoom(c.Request.Context(), roomID)
	} else {
		bookings, err = h.bookingSvc.List(c.Request.Context())
	}
	if err != nil {
		h.handleBookingError(c, err)
		return
	}
	response.OK(c, gin.H{"list": bookings})
}

// Update replaces a booking; the booking itself is excluded from the
// conflict probe.
// PUT /api/v1/bookings/:id
func (h *BookingHandler) Update(c *gin.Context) {
	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "invalid booking payload")
		return
	}

	booking, err := h.bookingSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}
	response.OK(c, booking)
}

// Delete removes a booking.
// DELETE /api/v1/bookings/:id
func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.bookingSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleBookingError(c, err)
		return
	}
	response.OK(c, nil)
}

// CheckConflict runs the conflict probe without writing anything.
// POST /api/v1/bookings/check-conflict
func (h *BookingHandler) CheckConflict(c *gin.Context) {
	var req dto.CheckConflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "invalid conflict probe payload")
		return
	}

	result, err := h.bookingSvc.CheckConflict(c.Request.Context(), &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *BookingHandler) handleBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBookingNotFound):
		response.NotFound(c, 12101, "booking not found")
	case errors.Is(err, service.ErrRoomNotFound):
		response.NotFound(c, 12102, "room not found")
	case errors.Is(err, service.ErrBookingConflict):
		response.Conflict(c, 12103, err.Error())
	case errors.Is(err, service.ErrBookingShape),
		errors.Is(err, service.ErrBadTimeRange),
		errors.Is(err, service.ErrBadDateWindow):
		response.BadRequest(c, 12104, err.Error())
	default:
		response.InternalError(c)
	}
}
