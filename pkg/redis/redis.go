package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Jeyeeem21/RoomManagement/config"
)

// Client wraps the Redis connection. It backs the session-token blacklist
// and the login-lockout counters; callers treat a nil *Client as "Redis
// unavailable" and degrade.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient connects to Redis and pings it.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── token blacklist ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken stores a revoked JWT ID for the token's remaining TTL.
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to revoke
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted reports whether a JWT ID has been revoked.
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── login lockout ──

const lockoutPrefix = "login:fails:"

// RecordLoginFailure bumps the failure counter for an account and returns
// the new count. The counter expires after the lockout window so a stale
// failure never locks anyone out.
func (c *Client) RecordLoginFailure(ctx context.Context, email string, window time.Duration) (int64, error) {
	key := lockoutPrefix + email
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
		return n, err
	}
	return n, nil
}

// LoginFailures returns the current failure count for an account.
func (c *Client) LoginFailures(ctx context.Context, email string) (int64, error) {
	n, err := c.rdb.Get(ctx, lockoutPrefix+email).Int64()
	if err == goredis.Nil {
		return 0, nil
	}
	return n, err
}

// ClearLoginFailures resets the counter after a successful login.
func (c *Client) ClearLoginFailures(ctx context.Context, email string) error {
	return c.rdb.Del(ctx, lockoutPrefix+email).Err()
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
