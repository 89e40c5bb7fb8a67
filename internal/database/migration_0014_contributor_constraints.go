package database

import (
	"gorm.io/gorm"
)

// contributorSongScope defines the song-scoped uniques this step creates.
type contributorSongScope struct {
	ArtistID          *int32  `gorm:"uniqueIndex:idx_contributors_artist_id_meta_tag_identifier_song_id"`
	ContributorName   *string `gorm:"size:1000;uniqueIndex:idx_contributors_contributor_name_meta_tag_identifier_song_id"`
	MetaTagIdentifier int32   `gorm:"uniqueIndex:idx_contributors_artist_id_meta_tag_identifier_song_id;uniqueIndex:idx_contributors_contributor_name_meta_tag_identifier_song_id;not null"`
	SongID            *int32  `gorm:"uniqueIndex:idx_contributors_artist_id_meta_tag_identifier_song_id;uniqueIndex:idx_contributors_contributor_name_meta_tag_identifier_song_id"`
}

func (contributorSongScope) TableName() string { return "contributors" }

// contributorAlbumScope defines the album-scoped uniques restored on rollback.
type contributorAlbumScope struct {
	ArtistID          *int32  `gorm:"uniqueIndex:idx_contributors_artist_id_meta_tag_identifier_album_id"`
	ContributorName   *string `gorm:"size:1000;uniqueIndex:idx_contributors_contributor_name_meta_tag_identifier_album_id"`
	MetaTagIdentifier int32   `gorm:"uniqueIndex:idx_contributors_artist_id_meta_tag_identifier_album_id;uniqueIndex:idx_contributors_contributor_name_meta_tag_identifier_album_id;not null"`
	AlbumID           int32   `gorm:"uniqueIndex:idx_contributors_artist_id_meta_tag_identifier_album_id;uniqueIndex:idx_contributors_contributor_name_meta_tag_identifier_album_id;not null"`
}

func (contributorAlbumScope) TableName() string { return "contributors" }

// Both directions drop the old pair and create the new pair as a single
// transactional unit, so the table never has both scopes or neither.
func migrationContributorConstraints() Migration {
	return Migration{
		ID:      "0014_contributor_constraints",
		Comment: "re-scope contributor uniqueness from album to song",
		Up: func(tx *gorm.DB) error {
			if err := tx.Migrator().DropIndex(&contributorAlbumScope{}, "idx_contributors_artist_id_meta_tag_identifier_album_id"); err != nil {
				return err
			}
			if err := tx.Migrator().DropIndex(&contributorAlbumScope{}, "idx_contributors_contributor_name_meta_tag_identifier_album_id"); err != nil {
				return err
			}
			if err := tx.Migrator().CreateIndex(&contributorSongScope{}, "idx_contributors_artist_id_meta_tag_identifier_song_id"); err != nil {
				return err
			}
			return tx.Migrator().CreateIndex(&contributorSongScope{}, "idx_contributors_contributor_name_meta_tag_identifier_song_id")
		},
		Down: func(tx *gorm.DB) error {
			if err := tx.Migrator().DropIndex(&contributorSongScope{}, "idx_contributors_artist_id_meta_tag_identifier_song_id"); err != nil {
				return err
			}
			if err := tx.Migrator().DropIndex(&contributorSongScope{}, "idx_contributors_contributor_name_meta_tag_identifier_song_id"); err != nil {
				return err
			}
			if err := tx.Migrator().CreateIndex(&contributorAlbumScope{}, "idx_contributors_artist_id_meta_tag_identifier_album_id"); err != nil {
				return err
			}
			return tx.Migrator().CreateIndex(&contributorAlbumScope{}, "idx_contributors_contributor_name_meta_tag_identifier_album_id")
		},
	}
}
