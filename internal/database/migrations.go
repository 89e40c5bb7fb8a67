package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"melodee/internal/models"
)

// allMigrations is the ordered registry. Ids are applied strictly in this
// order; renumbering or reordering released entries is never allowed.
func allMigrations() []Migration {
	return []Migration{
		migrationInitial(),
		migrationSearchHistory(),
		migrationItunesSearchEngine(),
		migrationUserHatred(),
		migrationLastFmSearchEngine(),
		migrationSearchMaximumPageSize(),
		migrationJobConfiguration(),
		migrationUserIsEditor(),
		migrationUserPins(),
		migrationSpotifyUniqueIndex(),
		migrationValidationMinimums(),
		migrationDescriptionLength(),
		migrationShareRework(),
		migrationContributorConstraints(),
		migrationDeezerSearchEngine(),
		migrationLibraryTypeConstraint(),
	}
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db     *gorm.DB
	logger *zerolog.Logger
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger *zerolog.Logger) *MigrationManager {
	return &MigrationManager{
		db:     db,
		logger: logger,
	}
}

// Migrate applies all pending migrations
func (m *MigrationManager) Migrate() error {
	applied, err := NewMigrator(m.db, m.logger).Up(context.Background())
	if err != nil {
		return err
	}

	if m.logger != nil {
		m.logger.Info().Int("applied", applied).Msg("Database migrations completed successfully")
	}
	return nil
}

// insertSetting inserts one seed row with its fixed id. Seed rows are
// identified by id; the inverse is always a delete by that same id.
func insertSetting(tx *gorm.DB, id int32, category models.SettingCategory, key, value, comment string) error {
	setting := models.Setting{
		ID:        id,
		Key:       key,
		Value:     value,
		APIKey:    uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
	if category != 0 {
		setting.Category = &category
	}
	if comment != "" {
		setting.Comment = &comment
	}

	if err := tx.Create(&setting).Error; err != nil {
		return fmt.Errorf("failed to seed setting %d (%s): %w", id, key, err)
	}
	return nil
}

// deleteSetting removes one seed row by its fixed id
func deleteSetting(tx *gorm.DB, id int32) error {
	if err := tx.Where("id = ?", id).Delete(&models.Setting{}).Error; err != nil {
		return fmt.Errorf("failed to delete setting %d: %w", id, err)
	}
	return nil
}

// dropColumn drops a column and, on sqlite, restores the table's indexes
// afterwards. The sqlite driver implements DropColumn as a table rewrite
// (create, copy, drop, rename); the DROP TABLE inside it takes every index
// on the table with it. Indexes covering the dropped column stay dropped.
func dropColumn(tx *gorm.DB, model any, field string) error {
	if tx.Dialector.Name() != "sqlite" {
		return tx.Migrator().DropColumn(model, field)
	}

	stmt := &gorm.Statement{DB: tx}
	if err := stmt.Parse(model); err != nil {
		return err
	}
	column := field
	if f := stmt.Schema.LookUpField(field); f != nil {
		column = f.DBName
	}

	var saved []struct {
		Name string
		SQL  string
	}
	if err := tx.Raw(
		"SELECT name, sql FROM sqlite_master WHERE type = 'index' AND tbl_name = ? AND sql IS NOT NULL",
		stmt.Table,
	).Scan(&saved).Error; err != nil {
		return err
	}

	if err := tx.Migrator().DropColumn(model, field); err != nil {
		return err
	}

	for _, index := range saved {
		if strings.Contains(index.SQL, "`"+column+"`") {
			continue
		}
		if err := tx.Exec(index.SQL).Error; err != nil {
			return fmt.Errorf("failed to restore index %s on %s: %w", index.Name, stmt.Table, err)
		}
	}
	return nil
}
