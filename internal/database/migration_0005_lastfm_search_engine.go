package database

import (
	"gorm.io/gorm"

	"melodee/internal/models"
)

func migrationLastFmSearchEngine() Migration {
	return Migration{
		ID:      "0005_lastfm_search_engine",
		Comment: "seed LastFM search engine toggle",
		Up: func(tx *gorm.DB) error {
			return insertSetting(tx, 915, models.SettingCategorySearchEngine,
				"searchEngine.lastFm.Enabled", "true", "Is LastFM search engine enabled.")
		},
		Down: func(tx *gorm.DB) error {
			return deleteSetting(tx, 915)
		},
	}
}
