package database

import (
	"gorm.io/gorm"

	"melodee/internal/models"
)

func migrationItunesSearchEngine() Migration {
	return Migration{
		ID:      "0003_itunes_search_engine",
		Comment: "seed iTunes search engine toggle",
		Up: func(tx *gorm.DB) error {
			return insertSetting(tx, 914, models.SettingCategorySearchEngine,
				"searchEngine.itunes.enabled", "true", "Is ITunes search engine enabled.")
		},
		Down: func(tx *gorm.DB) error {
			return deleteSetting(tx, 914)
		},
	}
}
