package database

import (
	"gorm.io/gorm"

	"melodee/internal/models"
)

func migrationSearchMaximumPageSize() Migration {
	return Migration{
		ID:      "0006_search_maximum_page_size",
		Comment: "seed search engine maximum page size",
		Up: func(tx *gorm.DB) error {
			return insertSetting(tx, 916, models.SettingCategorySearchEngine,
				"searchEngine.maximumAllowedPageSize", "1000",
				"When performing a search engine search, the maximum allowed page size.")
		},
		Down: func(tx *gorm.DB) error {
			return deleteSetting(tx, 916)
		},
	}
}
