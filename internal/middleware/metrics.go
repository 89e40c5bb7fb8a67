package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCount tracks total requests by method, route, and status.
	RequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "melodee_http_requests_total",
			Help: "Total number of HTTP requests by method, route, and status",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration tracks response times by method, route, and status.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "melodee_http_request_duration_seconds",
			Help:    "Histogram of request durations by method, route, and status",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route", "status"},
	)

	// ErrorCount tracks error responses by method, route, and status.
	ErrorCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "melodee_http_errors_total",
			Help: "Total number of HTTP errors by method, route, and status",
		},
		[]string{"method", "route", "status"},
	)
)

// MetricsMiddleware creates middleware that records request metrics
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		route := c.Route().Path
		method := c.Method()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		RequestCount.WithLabelValues(method, route, status).Inc()
		RequestDuration.WithLabelValues(method, route, status).Observe(duration)

		if err != nil || c.Response().StatusCode() >= 400 {
			ErrorCount.WithLabelValues(method, route, status).Inc()
		}

		return err
	}
}
