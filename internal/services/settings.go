package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"melodee/internal/metrics"
	"melodee/internal/models"
)

// ErrSettingNotFound is returned when a settings key has no row.
var ErrSettingNotFound = errors.New("setting not found")

const settingsCachePrefix = "melodee:settings:"

// SettingsService reads and writes the settings table. Values are stored as
// strings; typed accessors parse on read. When a Redis client is provided,
// reads go through a cache keyed by setting key and Set invalidates the
// cached entry.
type SettingsService struct {
	db       *gorm.DB
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
	metrics  *metrics.Metrics
}

// NewSettingsService creates a settings service. cache may be nil to disable
// caching.
func NewSettingsService(db *gorm.DB, cache *redis.Client, logger zerolog.Logger) *SettingsService {
	return &SettingsService{
		db:       db,
		cache:    cache,
		cacheTTL: 5 * time.Minute,
		logger:   logger.With().Str("component", "settings").Logger(),
	}
}

// WithMetrics enables cache hit/miss accounting.
func (s *SettingsService) WithMetrics(m *metrics.Metrics) *SettingsService {
	s.metrics = m
	return s
}

// Get returns the full settings row for a key.
func (s *SettingsService) Get(ctx context.Context, key string) (*models.Setting, error) {
	var setting models.Setting
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSettingNotFound, key)
		}
		return nil, err
	}
	return &setting, nil
}

// GetString returns the raw string value for a key.
func (s *SettingsService) GetString(ctx context.Context, key string) (string, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, settingsCachePrefix+key).Result()
		if err == nil {
			if s.metrics != nil {
				s.metrics.SettingsCacheHits.Inc()
			}
			return cached, nil
		}
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn().Err(err).Str("key", key).Msg("settings cache read failed")
		}
		if s.metrics != nil {
			s.metrics.SettingsCacheMisses.Inc()
		}
	}

	setting, err := s.Get(ctx, key)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, settingsCachePrefix+key, setting.Value, s.cacheTTL).Err(); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("settings cache write failed")
		}
	}
	return setting.Value, nil
}

// GetInt parses the value for a key as an integer.
func (s *SettingsService) GetInt(ctx context.Context, key string) (int, error) {
	value, err := s.GetString(ctx, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("setting %s is not an integer: %q", key, value)
	}
	return n, nil
}

// GetBool parses the value for a key as a boolean.
func (s *SettingsService) GetBool(ctx context.Context, key string) (bool, error) {
	value, err := s.GetString(ctx, key)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("setting %s is not a boolean: %q", key, value)
	}
	return b, nil
}

// GetJSON unmarshals the value for a key into out. Values like the conversion
// bitrate list are stored as JSON documents.
func (s *SettingsService) GetJSON(ctx context.Context, key string, out any) error {
	value, err := s.GetString(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		return fmt.Errorf("setting %s is not valid JSON: %w", key, err)
	}
	return nil
}

// GetIntOrDefault returns the parsed integer value, or fallback when the key
// is missing. Parse errors still surface.
func (s *SettingsService) GetIntOrDefault(ctx context.Context, key string, fallback int) (int, error) {
	n, err := s.GetInt(ctx, key)
	if errors.Is(err, ErrSettingNotFound) {
		return fallback, nil
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Set upserts the value for a key. Existing rows keep their id and category;
// new keys are created without a category. The cached entry is invalidated.
func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var setting models.Setting
		err := tx.Where("key = ?", key).First(&setting).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			setting = models.Setting{
				Key:       key,
				Value:     value,
				CreatedAt: time.Now().UTC(),
			}
			return tx.Create(&setting).Error
		case err != nil:
			return err
		}
		now := time.Now().UTC()
		return tx.Model(&setting).Updates(map[string]any{
			"value":           value,
			"last_updated_at": &now,
		}).Error
	})
	if err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Del(ctx, settingsCachePrefix+key).Err(); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("settings cache invalidation failed")
		}
	}
	return nil
}

// All returns every settings row ordered by id.
func (s *SettingsService) All(ctx context.Context) ([]models.Setting, error) {
	var settings []models.Setting
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// ByCategory returns the settings rows in a category ordered by id.
func (s *SettingsService) ByCategory(ctx context.Context, category models.SettingCategory) ([]models.Setting, error) {
	var settings []models.Setting
	err := s.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id ASC").
		Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// ExportYAML renders all settings as a YAML document mapping key to value.
func (s *SettingsService) ExportYAML(ctx context.Context) ([]byte, error) {
	settings, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	doc := make(map[string]string, len(settings))
	for _, setting := range settings {
		doc[setting.Key] = setting.Value
	}
	return yaml.Marshal(doc)
}

// ImportYAML applies a YAML document of key/value pairs, upserting each key.
// It returns the number of keys applied.
func (s *SettingsService) ImportYAML(ctx context.Context, data []byte) (int, error) {
	var doc map[string]string
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("invalid settings document: %w", err)
	}
	applied := 0
	for key, value := range doc {
		if err := s.Set(ctx, key, value); err != nil {
			return applied, fmt.Errorf("failed to apply setting %s: %w", key, err)
		}
		applied++
	}
	return applied, nil
}
