package database

import (
	"gorm.io/gorm"

	"melodee/internal/models"
)

func migrationValidationMinimums() Migration {
	return Migration{
		ID:      "0011_validation_minimums",
		Comment: "seed album validation minimums",
		Up: func(tx *gorm.DB) error {
			if err := insertSetting(tx, 1303, models.SettingCategoryValidation,
				"validation.minimumSongCount", "3",
				"Minimum number of songs an album has to have to be considered valid, set to 0 to disable check."); err != nil {
				return err
			}
			return insertSetting(tx, 1304, models.SettingCategoryValidation,
				"validation.minimumAlbumDuration", "10",
				"Minimum duration of an album to be considered valid (in minutes), set to 0 to disable check.")
		},
		Down: func(tx *gorm.DB) error {
			if err := deleteSetting(tx, 1304); err != nil {
				return err
			}
			return deleteSetting(tx, 1303)
		},
	}
}
