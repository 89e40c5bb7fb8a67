package database

import (
	"gorm.io/gorm"
)

type hatredUserArtist struct {
	IsHated bool `gorm:"not null;default:false"`
}

func (hatredUserArtist) TableName() string { return "user_artists" }

type hatredUserAlbum struct {
	IsHated bool `gorm:"not null;default:false"`
}

func (hatredUserAlbum) TableName() string { return "user_albums" }

type hatredUserSong struct {
	IsHated bool `gorm:"not null;default:false"`
}

func (hatredUserSong) TableName() string { return "user_songs" }

type hatredUser struct {
	HatedGenres *string `gorm:"size:2000"`
}

func (hatredUser) TableName() string { return "users" }

func migrationUserHatred() Migration {
	return Migration{
		ID:      "0004_user_hatred",
		Comment: "add hated flags to user reactions and hated genres to users",
		Up: func(tx *gorm.DB) error {
			if err := tx.Migrator().AddColumn(&hatredUserSong{}, "IsHated"); err != nil {
				return err
			}
			if err := tx.Migrator().AddColumn(&hatredUser{}, "HatedGenres"); err != nil {
				return err
			}
			if err := tx.Migrator().AddColumn(&hatredUserArtist{}, "IsHated"); err != nil {
				return err
			}
			return tx.Migrator().AddColumn(&hatredUserAlbum{}, "IsHated")
		},
		Down: func(tx *gorm.DB) error {
			if err := dropColumn(tx, &hatredUserAlbum{}, "IsHated"); err != nil {
				return err
			}
			if err := dropColumn(tx, &hatredUserArtist{}, "IsHated"); err != nil {
				return err
			}
			if err := dropColumn(tx, &hatredUser{}, "HatedGenres"); err != nil {
				return err
			}
			return dropColumn(tx, &hatredUserSong{}, "IsHated")
		},
	}
}
