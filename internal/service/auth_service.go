package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Jeyeeem21/RoomManagement/config"
	"github.com/Jeyeeem21/RoomManagement/internal/dto"
	"github.com/Jeyeeem21/RoomManagement/internal/model"
	"github.com/Jeyeeem21/RoomManagement/internal/repository"
	"github.com/Jeyeeem21/RoomManagement/pkg/jwt"
	"github.com/Jeyeeem21/RoomManagement/pkg/redis"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountLocked      = errors.New("account temporarily locked after repeated failures")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService owns console sessions: login with lockout, logout via
// token revocation, registration and password changes.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserInfo, error)
	Me(ctx context.Context, userID string) (*dto.UserInfo, error)
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	rdb    *redis.Client
	jwtMgr *jwt.Manager
	cfg    *config.AuthConfig
	logger *zap.Logger
}

func NewAuthService(repo *repository.Repository, rdb *redis.Client, jwtMgr *jwt.Manager, cfg *config.AuthConfig, logger *zap.Logger) AuthService {
	return &authService{repo: repo, rdb: rdb, jwtMgr: jwtMgr, cfg: cfg, logger: logger}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// Lockout check rides on Redis; without it logins proceed unthrottled.
	if s.rdb != nil {
		fails, err := s.rdb.LoginFailures(ctx, req.Email)
		if err != nil {
			s.logger.Warn("login failure lookup failed", zap.Error(err))
		} else if fails >= int64(s.cfg.MaxLoginFails) {
			return nil, ErrAccountLocked
		}
	}

	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.recordFailure(ctx, req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("load user failed", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.recordFailure(ctx, req.Email)
		return nil, ErrInvalidCredentials
	}

	if s.rdb != nil {
		if err := s.rdb.ClearLoginFailures(ctx, req.Email); err != nil {
			s.logger.Warn("clear login failures failed", zap.Error(err))
		}
	}

	token, err := s.jwtMgr.GenerateToken(user.UserID, user.Role)
	if err != nil {
		s.logger.Error("sign token failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("user logged in", zap.String("user_id", user.UserID))
	return &dto.LoginResponse{
		Token: token,
		User:  userInfo(user),
	}, nil
}

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.rdb == nil {
		// No blacklist backing store; the token simply ages out.
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("blacklist token failed", zap.Error(err))
		return err
	}
	s.logger.Info("user logged out", zap.String("user_id", claims.UserID))
	return nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserInfo, error) {
	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("check email failed", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "staff"
	}
	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("create user failed", zap.Error(err))
		return nil, err
	}
	info := userInfo(user)
	return &info, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*dto.UserInfo, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("load user failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	info := userInfo(user)
	return &info, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("load user failed", zap.String("user_id", userID), zap.Error(err))
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.User.UpdatePassword(ctx, userID, string(hash)); err != nil {
		s.logger.Error("update password failed", zap.String("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) recordFailure(ctx context.Context, email string) {
	if s.rdb == nil {
		return
	}
	if _, err := s.rdb.RecordLoginFailure(ctx, email, s.cfg.LockoutDuration); err != nil {
		s.logger.Warn("record login failure failed", zap.Error(err))
	}
}

func userInfo(u *model.User) dto.UserInfo {
	return dto.UserInfo{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
	}
}
