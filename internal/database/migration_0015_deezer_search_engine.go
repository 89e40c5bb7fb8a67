package database

import (
	"gorm.io/gorm"

	"melodee/internal/models"
)

type deezerArtist struct {
	DeezerID *int32
}

func (deezerArtist) TableName() string { return "artists" }

type deezerAlbum struct {
	DeezerID *int32
}

func (deezerAlbum) TableName() string { return "albums" }

type deezerSong struct {
	DeezerID *int32
}

func (deezerSong) TableName() string { return "songs" }

type deezerBookmark struct {
	DeezerID *int32
}

func (deezerBookmark) TableName() string { return "bookmarks" }

func migrationDeezerSearchEngine() Migration {
	return Migration{
		ID:      "0015_deezer_search_engine",
		Comment: "add Deezer ids to linkable entities, seed Deezer toggle",
		Up: func(tx *gorm.DB) error {
			if err := tx.Migrator().AddColumn(&deezerSong{}, "DeezerID"); err != nil {
				return err
			}
			if err := tx.Migrator().AddColumn(&deezerBookmark{}, "DeezerID"); err != nil {
				return err
			}
			if err := tx.Migrator().AddColumn(&deezerArtist{}, "DeezerID"); err != nil {
				return err
			}
			if err := tx.Migrator().AddColumn(&deezerAlbum{}, "DeezerID"); err != nil {
				return err
			}
			return insertSetting(tx, 918, models.SettingCategorySearchEngine,
				"searchEngine.deezer.enabled", "true", "Is Deezer search engine enabled.")
		},
		Down: func(tx *gorm.DB) error {
			if err := deleteSetting(tx, 918); err != nil {
				return err
			}
			if err := dropColumn(tx, &deezerAlbum{}, "DeezerID"); err != nil {
				return err
			}
			if err := dropColumn(tx, &deezerArtist{}, "DeezerID"); err != nil {
				return err
			}
			if err := dropColumn(tx, &deezerBookmark{}, "DeezerID"); err != nil {
				return err
			}
			return dropColumn(tx, &deezerSong{}, "DeezerID")
		},
	}
}
