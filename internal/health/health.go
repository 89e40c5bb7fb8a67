package health

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"melodee/internal/metrics"
)

// HealthResponse represents the health check response structure
type HealthResponse struct {
	Status string           `json:"status"`
	DB     DependencyStatus `json:"db"`
	Redis  DependencyStatus `json:"redis"`
}

// DependencyStatus represents the status of a dependency
type DependencyStatus struct {
	Status    string `json:"status"`
	LatencyMs int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// Checker probes the live database pool and Redis client. redisClient may be
// nil when caching is disabled; the redis dependency then reports "disabled"
// and does not affect the overall status.
type Checker struct {
	sqlDB       *sql.DB
	redisClient *redis.Client
	metrics     *metrics.Metrics
}

// NewChecker creates a health checker over already-open connections.
func NewChecker(sqlDB *sql.DB, redisClient *redis.Client, m *metrics.Metrics) *Checker {
	return &Checker{
		sqlDB:       sqlDB,
		redisClient: redisClient,
		metrics:     m,
	}
}

// RegisterRoutes registers the health check routes.
func (h *Checker) RegisterRoutes(app *fiber.App) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		dbStatus := h.checkDB(c.Context())
		redisStatus := h.checkRedis(c.Context())

		status := "ok"
		if dbStatus.Status == "down" || redisStatus.Status == "down" {
			status = "down"
		} else if dbStatus.Status == "degraded" || redisStatus.Status == "degraded" {
			status = "degraded"
		}

		if status == "ok" {
			c.Status(fiber.StatusOK)
		} else {
			c.Status(fiber.StatusServiceUnavailable)
		}

		c.Set("Cache-Control", "no-store")

		return c.JSON(HealthResponse{
			Status: status,
			DB:     dbStatus,
			Redis:  redisStatus,
		})
	})

	// Liveness probe: the process is up, dependencies not considered.
	app.Get("/livez", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
}

func (h *Checker) checkDB(ctx context.Context) DependencyStatus {
	start := time.Now()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := h.sqlDB.PingContext(pingCtx)
	latency := time.Since(start).Milliseconds()

	status := "ok"
	switch {
	case err != nil:
		status = "down"
	case latency > 200:
		status = "degraded"
	}

	if h.metrics != nil {
		h.metrics.ObservePoolStats(h.sqlDB.Stats())
		h.setGauge("db", status)
	}

	result := DependencyStatus{Status: status, LatencyMs: latency}
	if err != nil {
		result.Error = err.Error()
	}
	return result
}

func (h *Checker) checkRedis(ctx context.Context) DependencyStatus {
	if h.redisClient == nil {
		return DependencyStatus{Status: "disabled"}
	}

	start := time.Now()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := h.redisClient.Ping(pingCtx).Err()
	latency := time.Since(start).Milliseconds()

	status := "ok"
	switch {
	case err != nil:
		status = "down"
	case latency > 100:
		status = "degraded"
	}

	if h.metrics != nil {
		h.setGauge("redis", status)
	}

	result := DependencyStatus{Status: status, LatencyMs: latency}
	if err != nil {
		result.Error = err.Error()
	}
	return result
}

func (h *Checker) setGauge(dependency, status string) {
	value := 0.0
	if status == "ok" || status == "degraded" {
		value = 1.0
	}
	h.metrics.HealthStatus.WithLabelValues(dependency).Set(value)
}
