package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"golang.org/x/time/rate"
)

// RateLimiterConfig holds the per-window request limits.
type RateLimiterConfig struct {
	GeneralLimit  int
	GeneralWindow time.Duration
}

// DefaultRateLimiterConfig returns the limits applied to the ops endpoints.
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		GeneralLimit:  120,
		GeneralWindow: time.Minute,
	}
}

// NewRateLimiter creates a new rate limiter middleware with the provided configuration
func NewRateLimiter(config RateLimiterConfig) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        config.GeneralLimit,
		Expiration: config.GeneralWindow,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":       "Rate limit exceeded",
				"message":     "Too many requests. Please try again later.",
				"retry_after": config.GeneralWindow.Seconds(),
			})
		},
	})
}

// RateLimitByUser applies limits per authenticated user, falling back to the
// client IP for unauthenticated requests.
func RateLimitByUser(queriesPerWindow int, window time.Duration) fiber.Handler {
	var mu sync.Mutex
	limiterStore := make(map[string]*rate.Limiter)

	return func(c *fiber.Ctx) error {
		var key string
		if user, ok := GetUserFromContext(c); ok {
			key = strconv.FormatInt(int64(user.ID), 10)
		} else {
			key = c.IP()
		}

		mu.Lock()
		userLimiter, exists := limiterStore[key]
		if !exists {
			userLimiter = rate.NewLimiter(rate.Every(window/time.Duration(queriesPerWindow)), queriesPerWindow)
			limiterStore[key] = userLimiter
		}
		mu.Unlock()

		if !userLimiter.Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":       "Rate limit exceeded",
				"message":     "Too many requests. Please try again later.",
				"retry_after": window.Seconds(),
			})
		}

		return c.Next()
	}
}
