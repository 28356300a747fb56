package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Jeyeeem21/RoomManagement/internal/dto"
	"github.com/Jeyeeem21/RoomManagement/internal/service"
	"github.com/Jeyeeem21/RoomManagement/pkg/jwt"
	"github.com/Jeyeeem21/RoomManagement/pkg/response"
)

// AuthHandler serves the session endpoints.
type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login issues a session token.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "invalid login payload")
		return
	}

	resp, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}
	response.OK(c, resp)
}

// Logout revokes the current session token.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := c.Get("claims")
	if !ok {
		response.Unauthorized(c, 11002, "not logged in")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims.(*jwt.Claims)); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// Register creates a console account. Admin only.
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "invalid register payload")
		return
	}

	info, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}
	response.Created(c, info)
}

// Me returns the current account.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, _ := c.Get("user_id")

	info, err := h.authSvc.Me(c.Request.Context(), userID.(string))
	if err != nil {
		h.handleAuthError(c, err)
		return
	}
	response.OK(c, info)
}

// ChangePassword rotates the current account's password.
// PUT /api/v1/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "invalid password payload")
		return
	}

	userID, _ := c.Get("user_id")

	if err := h.authSvc.ChangePassword(c.Request.Context(), userID.(string), &req); err != nil {
		h.handleAuthError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, 11101, "invalid email or password")
	case errors.Is(err, service.ErrAccountLocked):
		response.TooManyRequests(c, 11102, "account temporarily locked, try again later")
	case errors.Is(err, service.ErrEmailTaken):
		response.Conflict(c, 11103, "email is already registered")
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 11104, "user not found")
	default:
		response.InternalError(c)
	}
}
