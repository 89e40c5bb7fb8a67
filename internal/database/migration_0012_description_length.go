package database

import (
	"fmt"

	"gorm.io/gorm"
)

// descriptionTables lists every table whose description column is widened by
// this step.
var descriptionTables = []string{
	"user_songs",
	"users",
	"user_pins",
	"user_artists",
	"user_albums",
	"songs",
	"shares",
	"settings",
	"radio_stations",
	"play_queues",
	"playlists",
	"players",
	"libraries",
	"contributors",
	"bookmarks",
	"artists",
	"artist_relations",
	"albums",
}

// alterVarchar resizes a varchar column. Sqlite does not enforce varchar
// lengths, so the change only needs to run on postgres.
func alterVarchar(tx *gorm.DB, table, column string, size int) error {
	if !isPostgres(tx) {
		return nil
	}
	sql := fmt.Sprintf(`ALTER TABLE %s ALTER COLUMN %s TYPE character varying(%d)`, table, column, size)
	return tx.Exec(sql).Error
}

func migrationDescriptionLength() Migration {
	return Migration{
		ID:      "0012_description_length",
		Comment: "widen description and artist biography columns",
		Up: func(tx *gorm.DB) error {
			for _, table := range descriptionTables {
				if err := alterVarchar(tx, table, "description", 62000); err != nil {
					return err
				}
			}
			return alterVarchar(tx, "artists", "biography", 62000)
		},
		Down: func(tx *gorm.DB) error {
			if err := alterVarchar(tx, "artists", "biography", 4000); err != nil {
				return err
			}
			for i := len(descriptionTables) - 1; i >= 0; i-- {
				if err := alterVarchar(tx, descriptionTables[i], "description", 4000); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
