package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/starkspartacus/job-sub000/internal/delivery/http/response"
	"github.com/starkspartacus/job-sub000/internal/domain"
	"github.com/starkspartacus/job-sub000/pkg/logger"
	"github.com/starkspartacus/job-sub000/pkg/security"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix in the counter store
	KeyPrefix string
	// Custom key extractor (default: client IP)
	KeyFunc func(*gin.Context) string
	// Whether to reject requests when the counter store is unavailable
	FailClosed bool
}

// GlobalRateLimitConfig applies to every route.
func GlobalRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:ip:",
	}
}

// LoginRateLimitConfig is the strict per-IP limit on login and registration.
func LoginRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:auth:",
		FailClosed: true,
	}
}

// RateLimitMiddleware counts requests per key in store. The store is Redis when
// configured and process memory otherwise.
func RateLimitMiddleware(store security.CounterStore, secLogger *security.SecurityLogger, config RateLimitConfig) gin.HandlerFunc {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	if secLogger == nil {
		secLogger = security.NopSecurityLogger()
	}

	return func(c *gin.Context) {
		key := config.KeyPrefix + config.KeyFunc(c)

		count, resetAt, err := store.Incr(c.Request.Context(), key, config.Window)
		if err != nil {
			logger.Log.Warn("rate limit store unavailable", "key_prefix", config.KeyPrefix, "error", err)
			if config.FailClosed {
				response.Error(c, http.StatusServiceUnavailable, "Service momentanément indisponible. Réessayez.", nil)
				c.Abort()
				return
			}
			c.Next()
			return
		}

		remaining := config.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			secLogger.LogRateLimitTriggered(c.Request.Context(), c.ClientIP(), c.GetHeader("User-Agent"),
				c.GetString(string(domain.KeyRequestID)), c.FullPath())

			response.Error(c, http.StatusTooManyRequests, "Trop de requêtes. Réessayez plus tard.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
