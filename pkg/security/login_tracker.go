package security

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// LoginTrackerConfig holds configuration for login tracking
type LoginTrackerConfig struct {
	MaxAttempts   int           // failed attempts before a block
	AttemptWindow time.Duration // window in which attempts are counted
	BlockDuration time.Duration
	UseIPTracking bool
}

// DefaultLoginTrackerConfig returns sensible defaults
func DefaultLoginTrackerConfig() LoginTrackerConfig {
	return LoginTrackerConfig{
		MaxAttempts:   5,
		AttemptWindow: 15 * time.Minute,
		BlockDuration: 15 * time.Minute,
		UseIPTracking: true,
	}
}

// LoginTracker tracks failed login attempts and enforces blocks
type LoginTracker struct {
	config LoginTrackerConfig
	store  CounterStore
	logger *SecurityLogger
}

func NewLoginTracker(config LoginTrackerConfig, store CounterStore, logger *SecurityLogger) *LoginTracker {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = DefaultLoginTrackerConfig().MaxAttempts
	}
	if logger == nil {
		logger = NopSecurityLogger()
	}
	return &LoginTracker{config: config, store: store, logger: logger}
}

const (
	failLoginUserPrefix    = "fail:login:user:"
	failLoginIPPrefix      = "fail:login:ip:"
	blockedLoginUserPrefix = "blocked:login:user:"
	blockedLoginIPPrefix   = "blocked:login:ip:"
)

// identifiers are compared case-insensitively so "Awa@x.ci" and "awa@x.ci" share a counter
func normalize(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

// IsBlocked checks if the given identifier or IP is currently blocked
func (lt *LoginTracker) IsBlocked(ctx context.Context, identifier, ip string) (bool, error) {
	_, blocked, err := lt.store.FlagTTL(ctx, blockedLoginUserPrefix+normalize(identifier))
	if err != nil {
		return false, fmt.Errorf("failed to check user block: %w", err)
	}
	if blocked {
		return true, nil
	}

	if lt.config.UseIPTracking && ip != "" {
		_, blocked, err = lt.store.FlagTTL(ctx, blockedLoginIPPrefix+ip)
		if err != nil {
			return false, fmt.Errorf("failed to check IP block: %w", err)
		}
	}
	return blocked, nil
}

// RecordFailedAttempt counts a failure and blocks once the limit is reached.
// Returns (blocked, attempts, error).
func (lt *LoginTracker) RecordFailedAttempt(ctx context.Context, identifier, ip, userAgent, requestID string) (bool, int, error) {
	id := normalize(identifier)
	count, _, err := lt.store.Incr(ctx, failLoginUserPrefix+id, lt.config.AttemptWindow)
	if err != nil {
		return false, 0, fmt.Errorf("failed to increment user counter: %w", err)
	}
	if lt.config.UseIPTracking && ip != "" {
		_, _, _ = lt.store.Incr(ctx, failLoginIPPrefix+ip, lt.config.AttemptWindow)
	}

	lt.logger.LogLoginFailed(ctx, identifier, ip, userAgent, requestID, "invalid_credentials")

	if count < lt.config.MaxAttempts {
		return false, count, nil
	}

	if err := lt.store.Flag(ctx, blockedLoginUserPrefix+id, lt.config.BlockDuration); err != nil {
		return true, count, fmt.Errorf("failed to set user block: %w", err)
	}
	if lt.config.UseIPTracking && ip != "" {
		_ = lt.store.Flag(ctx, blockedLoginIPPrefix+ip, lt.config.BlockDuration)
	}
	lt.logger.LogLoginBlocked(ctx, identifier, ip, userAgent, requestID)
	return true, count, nil
}

// ClearAttempts clears failed login attempts on successful login
func (lt *LoginTracker) ClearAttempts(ctx context.Context, identifier, ip string) error {
	keys := []string{failLoginUserPrefix + normalize(identifier)}
	if lt.config.UseIPTracking && ip != "" {
		keys = append(keys, failLoginIPPrefix+ip)
	}
	if err := lt.store.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("failed to clear attempts: %w", err)
	}
	return nil
}

// RemainingAttempts returns how many attempts remain before a block
func (lt *LoginTracker) RemainingAttempts(ctx context.Context, identifier string) (int, error) {
	count, err := lt.store.Count(ctx, failLoginUserPrefix+normalize(identifier))
	if err != nil {
		return 0, fmt.Errorf("failed to get attempt count: %w", err)
	}
	remaining := lt.config.MaxAttempts - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// BlockTTL returns how long until the block on identifier expires.
func (lt *LoginTracker) BlockTTL(ctx context.Context, identifier string) (time.Duration, bool, error) {
	return lt.store.FlagTTL(ctx, blockedLoginUserPrefix+normalize(identifier))
}
