package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Jeyeeem21/RoomManagement/config"
	"github.com/Jeyeeem21/RoomManagement/internal/dto"
	"github.com/Jeyeeem21/RoomManagement/pkg/jwt"
)

func newAuthFixture(t *testing.T) AuthService {
	t.Helper()
	repo := newMockRepository()
	cfg := &config.AuthConfig{
		JWTSecret:       "unit-test-secret-0123456789",
		AccessTokenTTL:  time.Hour,
		MaxLoginFails:   5,
		LockoutDuration: 15 * time.Minute,
	}
	// nil redis client: lockout and blacklist degrade to no-ops.
	return NewAuthService(repo, nil, jwt.NewManager(cfg), cfg, zap.NewNop())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	info, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Admin",
		Email:    "admin@example.edu",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if info.Role != "staff" {
		t.Errorf("Role = %q, want default staff", info.Role)
	}

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.edu", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Error("empty token")
	}
	if resp.User.Email != "admin@example.edu" {
		t.Errorf("User.Email = %q", resp.User.Email)
	}

	me, err := svc.Me(ctx, resp.User.UserID)
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if me.UserID != resp.User.UserID {
		t.Errorf("Me returned %q, want %q", me.UserID, resp.User.UserID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Admin", Email: "admin@example.edu", Password: "s3cret-pass",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.edu", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}

	// Unknown accounts fail identically.
	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.edu", Password: "whatever"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	req := &dto.RegisterRequest{Name: "Admin", Email: "admin@example.edu", Password: "s3cret-pass"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(ctx, req); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	info, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Admin", Email: "admin@example.edu", Password: "old-pass-123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	err = svc.ChangePassword(ctx, info.UserID, &dto.ChangePasswordRequest{
		OldPassword: "wrong", NewPassword: "new-pass-123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}

	if err := svc.ChangePassword(ctx, info.UserID, &dto.ChangePasswordRequest{
		OldPassword: "old-pass-123", NewPassword: "new-pass-123",
	}); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.edu", Password: "new-pass-123"}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestLogoutWithoutRedis(t *testing.T) {
	svc := newAuthFixture(t)

	claims := &jwt.Claims{UserID: "user-1"}
	if err := svc.Logout(context.Background(), claims); err != nil {
		t.Fatalf("Logout without redis should no-op, got %v", err)
	}
}
