package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"melodee/internal/metrics"
)

// Migration is one reversible schema change. Up and Down are exact inverses;
// the single known exception documents its data loss in its Down.
type Migration struct {
	ID      string
	Comment string
	Up      func(tx *gorm.DB) error
	Down    func(tx *gorm.DB) error
}

// MigrationRecord is one applied-migration row in the history table.
type MigrationRecord struct {
	ID        string    `gorm:"primaryKey;size:255" json:"id"`
	AppliedAt time.Time `gorm:"not null" json:"applied_at"`
}

func (MigrationRecord) TableName() string {
	return "__migrations_history"
}

// MigrationStatus describes one registry entry for operator display.
type MigrationStatus struct {
	ID        string     `json:"id"`
	Comment   string     `json:"comment"`
	Applied   bool       `json:"applied"`
	AppliedAt *time.Time `json:"applied_at,omitempty"`
}

// Migrator applies and rolls back the ordered migration registry. Each step
// runs inside its own transaction together with its history row, so a failed
// step leaves the schema at the previous step's state.
type Migrator struct {
	db         *gorm.DB
	logger     *zerolog.Logger
	metrics    *metrics.Metrics
	migrations []Migration
}

// NewMigrator creates a migrator over the full registry
func NewMigrator(db *gorm.DB, logger *zerolog.Logger) *Migrator {
	return &Migrator{
		db:         db,
		logger:     logger,
		migrations: allMigrations(),
	}
}

// WithMetrics enables per-step duration and count accounting.
func (m *Migrator) WithMetrics(metrics *metrics.Metrics) *Migrator {
	m.metrics = metrics
	return m
}

func (m *Migrator) observe(id, direction string, start time.Time) {
	if m.metrics == nil {
		return
	}
	m.metrics.MigrationsApplied.WithLabelValues(direction).Inc()
	m.metrics.MigrationDurationSeconds.WithLabelValues(id, direction).Observe(time.Since(start).Seconds())
}

func (m *Migrator) ensureHistoryTable() error {
	if err := m.db.AutoMigrate(&MigrationRecord{}); err != nil {
		return fmt.Errorf("failed to create migration history table: %w", err)
	}
	return nil
}

// appliedRecords returns history rows ordered by id and validates that they
// form a prefix of the registry. An unknown or out-of-order id means the
// database was touched by a different build and is not safe to migrate.
func (m *Migrator) appliedRecords() ([]MigrationRecord, error) {
	var records []MigrationRecord
	if err := m.db.Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to read migration history: %w", err)
	}

	if len(records) > len(m.migrations) {
		return nil, fmt.Errorf("migration history has %d entries but registry has %d", len(records), len(m.migrations))
	}
	for i, record := range records {
		if record.ID != m.migrations[i].ID {
			return nil, fmt.Errorf("migration history entry %q does not match registry entry %q", record.ID, m.migrations[i].ID)
		}
	}

	return records, nil
}

// Up applies every pending migration in registry order and returns the number
// applied.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	if err := m.ensureHistoryTable(); err != nil {
		return 0, err
	}

	applied, err := m.appliedRecords()
	if err != nil {
		return 0, err
	}

	pending := m.migrations[len(applied):]
	for _, migration := range pending {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		start := time.Now()
		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := migration.Up(tx); err != nil {
				return err
			}
			record := MigrationRecord{ID: migration.ID, AppliedAt: time.Now().UTC()}
			return tx.Create(&record).Error
		})
		if err != nil {
			return 0, fmt.Errorf("migration %s failed: %w", migration.ID, err)
		}
		m.observe(migration.ID, "up", start)

		if m.logger != nil {
			m.logger.Info().
				Str("migration", migration.ID).
				Dur("duration", time.Since(start)).
				Msg("Applied migration")
		}
	}

	return len(pending), nil
}

// Down rolls back up to steps migrations, most recent first, and returns the
// number rolled back.
func (m *Migrator) Down(ctx context.Context, steps int) (int, error) {
	if steps <= 0 {
		return 0, nil
	}

	if err := m.ensureHistoryTable(); err != nil {
		return 0, err
	}

	applied, err := m.appliedRecords()
	if err != nil {
		return 0, err
	}

	if steps > len(applied) {
		steps = len(applied)
	}

	rolledBack := 0
	for i := len(applied) - 1; i >= len(applied)-steps; i-- {
		if err := ctx.Err(); err != nil {
			return rolledBack, err
		}

		migration := m.migrations[i]
		start := time.Now()
		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := migration.Down(tx); err != nil {
				return err
			}
			return tx.Where("id = ?", migration.ID).Delete(&MigrationRecord{}).Error
		})
		if err != nil {
			return rolledBack, fmt.Errorf("rollback of %s failed: %w", migration.ID, err)
		}
		rolledBack++
		m.observe(migration.ID, "down", start)

		if m.logger != nil {
			m.logger.Info().
				Str("migration", migration.ID).
				Dur("duration", time.Since(start)).
				Msg("Rolled back migration")
		}
	}

	return rolledBack, nil
}

// Status lists every registry entry with its applied state.
func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	if err := m.ensureHistoryTable(); err != nil {
		return nil, err
	}

	applied, err := m.appliedRecords()
	if err != nil {
		return nil, err
	}

	appliedAt := make(map[string]time.Time, len(applied))
	for _, record := range applied {
		appliedAt[record.ID] = record.AppliedAt
	}

	statuses := make([]MigrationStatus, 0, len(m.migrations))
	for _, migration := range m.migrations {
		status := MigrationStatus{ID: migration.ID, Comment: migration.Comment}
		if at, ok := appliedAt[migration.ID]; ok {
			status.Applied = true
			at := at
			status.AppliedAt = &at
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// isPostgres reports whether the transaction targets a postgres database.
// Dialect-specific DDL (varchar resizes) is skipped elsewhere.
func isPostgres(tx *gorm.DB) bool {
	return tx.Dialector.Name() == "postgres"
}
