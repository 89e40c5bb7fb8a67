package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettingCategory groups configuration keys. Categories mirror the id ranges
// of the seeded catalog (e.g. category Jobs owns the 14xx ids).
type SettingCategory int32

const (
	SettingCategoryAPI           SettingCategory = 1
	SettingCategoryConversion    SettingCategory = 2
	SettingCategoryFormatting    SettingCategory = 3
	SettingCategoryImaging       SettingCategory = 4
	SettingCategoryMagic         SettingCategory = 5
	SettingCategoryPluginProcess SettingCategory = 7
	SettingCategorySearchEngine  SettingCategory = 9
	SettingCategoryScrobbling    SettingCategory = 10
	SettingCategorySystem        SettingCategory = 11
	SettingCategoryTranscoding   SettingCategory = 12
	SettingCategoryValidation    SettingCategory = 13
	SettingCategoryJobs          SettingCategory = 14
)

// Setting is a single configuration row. Key is the stable identity used by
// the settings service; ids are fixed by the seed catalog.
type Setting struct {
	ID            int32            `gorm:"primaryKey;autoIncrement" json:"id"`
	Key           string           `gorm:"size:1000;uniqueIndex:idx_settings_key;not null" json:"key"`
	Comment       *string          `gorm:"size:255" json:"comment"`
	Category      *SettingCategory `json:"category"`
	Value         string           `gorm:"size:2000;not null" json:"value"`
	IsLocked      bool             `gorm:"not null" json:"is_locked"`
	SortOrder     int32            `gorm:"not null" json:"sort_order"`
	APIKey        uuid.UUID        `gorm:"type:uuid;uniqueIndex:idx_settings_api_key;not null" json:"api_key"`
	CreatedAt     time.Time        `gorm:"not null" json:"created_at"`
	LastUpdatedAt *time.Time       `json:"last_updated_at"`
	Tags          *string          `gorm:"size:2000" json:"tags"`
	Notes         *string          `gorm:"size:4000" json:"notes"`
	Description   *string          `gorm:"size:62000" json:"description"`
}

func (Setting) TableName() string {
	return "settings"
}

// BeforeCreate sets the API key before creating a setting
func (s *Setting) BeforeCreate(tx *gorm.DB) error {
	if s.APIKey == uuid.Nil {
		s.APIKey = uuid.New()
	}
	return nil
}

// RadioStation represents the radio_stations table
type RadioStation struct {
	ID            int32      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string     `gorm:"size:255;not null" json:"name"`
	StreamURL     string     `gorm:"column:stream_url;size:2000;not null" json:"stream_url"`
	HomePageURL   *string    `gorm:"column:home_page_url;size:2000" json:"home_page_url"`
	IsLocked      bool       `gorm:"not null" json:"is_locked"`
	SortOrder     int32      `gorm:"not null" json:"sort_order"`
	APIKey        uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_radio_stations_api_key;not null" json:"api_key"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	LastUpdatedAt *time.Time `json:"last_updated_at"`
	Tags          *string    `gorm:"size:2000" json:"tags"`
	Notes         *string    `gorm:"size:4000" json:"notes"`
	Description   *string    `gorm:"size:62000" json:"description"`
}

func (RadioStation) TableName() string {
	return "radio_stations"
}

// BeforeCreate sets the API key before creating a radio station
func (r *RadioStation) BeforeCreate(tx *gorm.DB) error {
	if r.APIKey == uuid.Nil {
		r.APIKey = uuid.New()
	}
	return nil
}

// LibraryScanHistory is an append-only record of one scan pass over a
// library. Rows are never updated after insert.
type LibraryScanHistory struct {
	ID                int32     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt         time.Time `gorm:"not null" json:"created_at"`
	LibraryID         int32     `gorm:"index:idx_library_scan_histories_library_id;not null" json:"library_id"`
	ForArtistID       *int32    `json:"for_artist_id"`
	ForAlbumID        *int32    `json:"for_album_id"`
	FoundArtistsCount int32     `gorm:"not null" json:"found_artists_count"`
	FoundAlbumsCount  int32     `gorm:"not null" json:"found_albums_count"`
	FoundSongsCount   int32     `gorm:"not null" json:"found_songs_count"`
	DurationInMs      float64   `gorm:"column:duration_in_ms;not null" json:"duration_in_ms"`

	Library *Library `gorm:"foreignKey:LibraryID;constraint:OnDelete:CASCADE" json:"-"`
}

func (LibraryScanHistory) TableName() string {
	return "library_scan_histories"
}

// AllModels returns every persisted model in an order safe for schema
// creation (referenced tables first).
func AllModels() []any {
	return []any{
		&Setting{},
		&RadioStation{},
		&User{},
		&Library{},
		&LibraryScanHistory{},
		&Artist{},
		&ArtistRelation{},
		&Album{},
		&AlbumDisc{},
		&Song{},
		&Contributor{},
		&Player{},
		&Playlist{},
		&PlaylistSong{},
		&PlayQueue{},
		&Bookmark{},
		&Share{},
		&ShareActivity{},
		&UserArtist{},
		&UserAlbum{},
		&UserSong{},
		&UserPin{},
		&SearchHistory{},
	}
}
