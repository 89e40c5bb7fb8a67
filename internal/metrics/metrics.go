package metrics

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Migration metrics
	MigrationsApplied        *prometheus.CounterVec
	MigrationDurationSeconds *prometheus.HistogramVec

	// Database pool metrics
	DBConnectionsOpen  prometheus.Gauge
	DBConnectionsInUse prometheus.Gauge
	DBConnectionsIdle  prometheus.Gauge

	// Settings cache metrics
	SettingsCacheHits   prometheus.Counter
	SettingsCacheMisses prometheus.Counter

	// Job metrics
	JobDurationSeconds *prometheus.HistogramVec

	// Health metrics
	HealthStatus *prometheus.GaugeVec
}

// NewMetrics creates a new Metrics instance with all required metrics registered
func NewMetrics() *Metrics {
	return &Metrics{
		MigrationsApplied: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "melodee_migrations_applied_total",
				Help: "Total number of migration steps applied",
			},
			[]string{"direction"},
		),
		MigrationDurationSeconds: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "melodee_migration_duration_seconds",
				Help: "Duration of individual migration steps in seconds",
			},
			[]string{"id", "direction"},
		),

		DBConnectionsOpen: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "melodee_db_connections_open",
				Help: "Open database connections",
			},
		),
		DBConnectionsInUse: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "melodee_db_connections_in_use",
				Help: "Database connections currently in use",
			},
		),
		DBConnectionsIdle: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "melodee_db_connections_idle",
				Help: "Idle database connections",
			},
		),

		SettingsCacheHits: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "melodee_settings_cache_hits_total",
				Help: "Settings reads served from the cache",
			},
		),
		SettingsCacheMisses: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "melodee_settings_cache_misses_total",
				Help: "Settings reads that fell through to the database",
			},
		),

		JobDurationSeconds: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "melodee_job_duration_seconds",
				Help: "Duration of jobs in seconds",
			},
			[]string{"queue", "type", "status"},
		),

		HealthStatus: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "melodee_health_status",
				Help: "Health status of dependencies (1=ok, 0=down)",
			},
			[]string{"dependency"},
		),
	}
}

// InitializeMetrics sets up default values for metrics
func InitializeMetrics() *Metrics {
	metrics := NewMetrics()

	metrics.HealthStatus.WithLabelValues("db").Set(0)
	metrics.HealthStatus.WithLabelValues("redis").Set(0)

	return metrics
}

// ObservePoolStats copies sql.DB pool statistics into the gauges.
func (m *Metrics) ObservePoolStats(stats sql.DBStats) {
	m.DBConnectionsOpen.Set(float64(stats.OpenConnections))
	m.DBConnectionsInUse.Set(float64(stats.InUse))
	m.DBConnectionsIdle.Set(float64(stats.Idle))
}
