package security

import (
	"context"
	"fmt"
	"time"
)

// UploadLimiter caps uploads per IP per minute and per user per day.
type UploadLimiter struct {
	store        CounterStore
	maxPerMinute int
	maxPerDay    int
}

// NewUploadLimiter defaults to 10 uploads/min per IP and 50/day per user.
func NewUploadLimiter(store CounterStore, perMin, perDay int) *UploadLimiter {
	if perMin <= 0 {
		perMin = 10
	}
	if perDay <= 0 {
		perDay = 50
	}
	return &UploadLimiter{store: store, maxPerMinute: perMin, maxPerDay: perDay}
}

// AllowUpload returns (allowed, retryAfter, error). Store errors fail open.
func (ul *UploadLimiter) AllowUpload(ctx context.Context, ip, userID string) (bool, time.Duration, error) {
	if ip != "" {
		count, resetAt, err := ul.store.Incr(ctx, "ratelimit:upload:ip:"+ip, time.Minute)
		if err != nil {
			return true, 0, fmt.Errorf("upload limiter: %w", err)
		}
		if count > ul.maxPerMinute {
			return false, time.Until(resetAt), nil
		}
	}

	if userID != "" {
		count, resetAt, err := ul.store.Incr(ctx, "ratelimit:upload:user:"+userID, 24*time.Hour)
		if err != nil {
			return true, 0, fmt.Errorf("upload limiter: %w", err)
		}
		if count > ul.maxPerDay {
			return false, time.Until(resetAt), nil
		}
	}

	return true, 0, nil
}
