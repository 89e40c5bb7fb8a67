package database

import (
	"gorm.io/gorm"
)

type customImagePlaylist struct {
	HasCustomImage bool `gorm:"not null;default:false"`
}

func (customImagePlaylist) TableName() string { return "playlists" }

type spotifyArtist struct {
	SpotifyID *string `gorm:"type:text;uniqueIndex:idx_artists_spotify_id"`
}

func (spotifyArtist) TableName() string { return "artists" }

type spotifyAlbum struct {
	SpotifyID *string `gorm:"type:text;uniqueIndex:idx_albums_spotify_id"`
}

func (spotifyAlbum) TableName() string { return "albums" }

type spotifySong struct {
	SpotifyID *string `gorm:"type:text;uniqueIndex:idx_songs_spotify_id"`
}

func (spotifySong) TableName() string { return "songs" }

type spotifyBookmark struct {
	SpotifyID *string `gorm:"type:text;uniqueIndex:idx_bookmarks_spotify_id"`
}

func (spotifyBookmark) TableName() string { return "bookmarks" }

func migrationSpotifyUniqueIndex() Migration {
	return Migration{
		ID:      "0010_spotify_unique_index",
		Comment: "drop playlist custom image flag, enforce unique Spotify ids",
		Up: func(tx *gorm.DB) error {
			if err := dropColumn(tx, &customImagePlaylist{}, "HasCustomImage"); err != nil {
				return err
			}
			if err := tx.Migrator().CreateIndex(&spotifySong{}, "idx_songs_spotify_id"); err != nil {
				return err
			}
			if err := tx.Migrator().CreateIndex(&spotifyBookmark{}, "idx_bookmarks_spotify_id"); err != nil {
				return err
			}
			if err := tx.Migrator().CreateIndex(&spotifyArtist{}, "idx_artists_spotify_id"); err != nil {
				return err
			}
			return tx.Migrator().CreateIndex(&spotifyAlbum{}, "idx_albums_spotify_id")
		},
		Down: func(tx *gorm.DB) error {
			if err := tx.Migrator().DropIndex(&spotifyAlbum{}, "idx_albums_spotify_id"); err != nil {
				return err
			}
			if err := tx.Migrator().DropIndex(&spotifyArtist{}, "idx_artists_spotify_id"); err != nil {
				return err
			}
			if err := tx.Migrator().DropIndex(&spotifyBookmark{}, "idx_bookmarks_spotify_id"); err != nil {
				return err
			}
			if err := tx.Migrator().DropIndex(&spotifySong{}, "idx_songs_spotify_id"); err != nil {
				return err
			}
			// Restored with its original default so existing rows stay valid.
			return tx.Migrator().AddColumn(&customImagePlaylist{}, "HasCustomImage")
		},
	}
}
