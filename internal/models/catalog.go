package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LibraryType enumerates the storage library kinds. Type 3 (Library) is the
// only kind that may have multiple rows; every other kind is unique.
type LibraryType int32

const (
	LibraryTypeNotSet     LibraryType = 0
	LibraryTypeInbound    LibraryType = 1
	LibraryTypeStaging    LibraryType = 2
	LibraryTypeStorage    LibraryType = 3
	LibraryTypeUserImages LibraryType = 4
)

// MetaDataStatus tracks enrichment progress for a catalog entity.
type MetaDataStatus int32

const (
	MetaDataStatusNotSet         MetaDataStatus = 0
	MetaDataStatusReadyToProcess MetaDataStatus = 1
	MetaDataStatusProcessed      MetaDataStatus = 2
	MetaDataStatusUserEdited     MetaDataStatus = 3
)

// AlbumStatus is a small enumeration of album validation states.
type AlbumStatus int16

const (
	AlbumStatusNotSet  AlbumStatus = 0
	AlbumStatusNew     AlbumStatus = 1
	AlbumStatusOk      AlbumStatus = 2
	AlbumStatusInvalid AlbumStatus = 3
)

// AlbumType is a small enumeration of release kinds.
type AlbumType int16

const (
	AlbumTypeNotSet      AlbumType = 0
	AlbumTypeAlbum       AlbumType = 1
	AlbumTypeEP          AlbumType = 2
	AlbumTypeSingle      AlbumType = 3
	AlbumTypeSoundTrack  AlbumType = 4
	AlbumTypeCompilation AlbumType = 5
)

// ArtistRelationType enumerates artist-to-artist edge kinds.
type ArtistRelationType int32

const (
	ArtistRelationTypeNotSet        ArtistRelationType = 0
	ArtistRelationTypeAssociated    ArtistRelationType = 1
	ArtistRelationTypeMemberOfGroup ArtistRelationType = 2
	ArtistRelationTypeSimilarTo     ArtistRelationType = 3
)

// ContributorType distinguishes performer credits from production credits.
type ContributorType int32

const (
	ContributorTypeNotSet     ContributorType = 0
	ContributorTypePerformer  ContributorType = 1
	ContributorTypeProduction ContributorType = 2
	ContributorTypePublisher  ContributorType = 3
)

// Library represents the libraries table, the root of the ownership chain.
type Library struct {
	ID            int32       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string      `gorm:"size:255;not null" json:"name"`
	ArtistCount   *int32      `json:"artist_count"`
	AlbumCount    *int32      `json:"album_count"`
	SongCount     *int32      `json:"song_count"`
	Path          string      `gorm:"size:2000;not null" json:"path"`
	Type          LibraryType `gorm:"not null" json:"type"`
	LastScanAt    *time.Time  `json:"last_scan_at"`
	IsLocked      bool        `gorm:"not null" json:"is_locked"`
	SortOrder     int32       `gorm:"not null" json:"sort_order"`
	APIKey        uuid.UUID   `gorm:"type:uuid;uniqueIndex:idx_libraries_api_key;not null" json:"api_key"`
	CreatedAt     time.Time   `gorm:"not null" json:"created_at"`
	LastUpdatedAt *time.Time  `json:"last_updated_at"`
	Tags          *string     `gorm:"size:2000" json:"tags"`
	Notes         *string     `gorm:"size:4000" json:"notes"`
	Description   *string     `gorm:"size:62000" json:"description"`

	Artists []Artist `gorm:"foreignKey:LibraryID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Library) TableName() string {
	return "libraries"
}

// BeforeCreate sets the API key before creating a library
func (l *Library) BeforeCreate(tx *gorm.DB) error {
	if l.APIKey == uuid.Nil {
		l.APIKey = uuid.New()
	}
	return nil
}

// Artist represents the artists table
type Artist struct {
	ID                    int32          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                  string         `gorm:"size:255;uniqueIndex:idx_artists_name;not null" json:"name"`
	NameNormalized        string         `gorm:"size:255;index:idx_artists_name_normalized;not null" json:"name_normalized"`
	SortName              *string        `gorm:"size:255;index:idx_artists_sort_name" json:"sort_name"`
	RealName              *string        `gorm:"size:255" json:"real_name"`
	Directory             string         `gorm:"size:2000;not null" json:"directory"`
	Roles                 *string        `gorm:"size:2000" json:"roles"`
	AlbumCount            int32          `gorm:"not null" json:"album_count"`
	SongCount             int32          `gorm:"not null" json:"song_count"`
	LibraryID             int32          `gorm:"index:idx_artists_library_id;not null" json:"library_id"`
	Biography             *string        `gorm:"size:62000" json:"biography"`
	ImageCount            *int32         `json:"image_count"`
	MetaDataStatus        MetaDataStatus `gorm:"not null" json:"meta_data_status"`
	IsLocked              bool           `gorm:"not null" json:"is_locked"`
	SortOrder             int32          `gorm:"not null" json:"sort_order"`
	APIKey                uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_artists_api_key;not null" json:"api_key"`
	CreatedAt             time.Time      `gorm:"not null" json:"created_at"`
	LastUpdatedAt         *time.Time     `json:"last_updated_at"`
	Tags                  *string        `gorm:"size:2000" json:"tags"`
	Notes                 *string        `gorm:"size:4000" json:"notes"`
	Description           *string        `gorm:"size:62000" json:"description"`
	AlternateNames        *string        `gorm:"size:1000" json:"alternate_names"`
	LastPlayedAt          *time.Time     `json:"last_played_at"`
	LastMetaDataUpdatedAt *time.Time     `json:"last_meta_data_updated_at"`
	PlayedCount           int32          `gorm:"not null" json:"played_count"`
	ItunesID              *string        `gorm:"column:itunes_id;type:text" json:"itunes_id"`
	AmgID                 *string        `gorm:"column:amg_id;type:text" json:"amg_id"`
	DiscogsID             *string        `gorm:"column:discogs_id;type:text" json:"discogs_id"`
	WikiDataID            *string        `gorm:"column:wiki_data_id;type:text" json:"wiki_data_id"`
	MusicBrainzID         *uuid.UUID     `gorm:"column:music_brainz_id;type:uuid;uniqueIndex:idx_artists_music_brainz_id" json:"music_brainz_id"`
	LastFmID              *string        `gorm:"column:last_fm_id;type:text" json:"last_fm_id"`
	SpotifyID             *string        `gorm:"column:spotify_id;type:text;uniqueIndex:idx_artists_spotify_id" json:"spotify_id"`
	DeezerID              *int32         `gorm:"column:deezer_id" json:"deezer_id"`
	CalculatedRating      float64        `gorm:"type:numeric;not null" json:"calculated_rating"`

	Library *Library `gorm:"foreignKey:LibraryID" json:"-"`
	Albums  []Album  `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Artist) TableName() string {
	return "artists"
}

// BeforeCreate sets the API key before creating an artist
func (a *Artist) BeforeCreate(tx *gorm.DB) error {
	if a.APIKey == uuid.Nil {
		a.APIKey = uuid.New()
	}
	return nil
}

// ArtistRelation represents a typed edge between two artists. Deleting either
// endpoint removes the edge.
type ArtistRelation struct {
	ID                 int32              `gorm:"primaryKey;autoIncrement" json:"id"`
	ArtistID           int32              `gorm:"uniqueIndex:idx_artist_relations_artist_id_related_artist_id;not null" json:"artist_id"`
	RelatedArtistID    int32              `gorm:"uniqueIndex:idx_artist_relations_artist_id_related_artist_id;index:idx_artist_relations_related_artist_id;not null" json:"related_artist_id"`
	ArtistRelationType ArtistRelationType `gorm:"not null" json:"artist_relation_type"`
	RelationStart      *time.Time         `json:"relation_start"`
	RelationEnd        *time.Time         `json:"relation_end"`
	IsLocked           bool               `gorm:"not null" json:"is_locked"`
	SortOrder          int32              `gorm:"not null" json:"sort_order"`
	APIKey             uuid.UUID          `gorm:"type:uuid;uniqueIndex:idx_artist_relations_api_key;not null" json:"api_key"`
	CreatedAt          time.Time          `gorm:"not null" json:"created_at"`
	LastUpdatedAt      *time.Time         `json:"last_updated_at"`
	Tags               *string            `gorm:"size:2000" json:"tags"`
	Notes              *string            `gorm:"size:4000" json:"notes"`
	Description        *string            `gorm:"size:62000" json:"description"`

	Artist        *Artist `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE" json:"-"`
	RelatedArtist *Artist `gorm:"foreignKey:RelatedArtistID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ArtistRelation) TableName() string {
	return "artist_relations"
}

// BeforeCreate sets the API key before creating an artist relation
func (a *ArtistRelation) BeforeCreate(tx *gorm.DB) error {
	if a.APIKey == uuid.Nil {
		a.APIKey = uuid.New()
	}
	return nil
}

// Album represents the albums table
type Album struct {
	ID                    int32          `gorm:"primaryKey;autoIncrement" json:"id"`
	ArtistID              int32          `gorm:"uniqueIndex:idx_albums_artist_id_name;uniqueIndex:idx_albums_artist_id_name_normalized;uniqueIndex:idx_albums_artist_id_sort_name;not null" json:"artist_id"`
	Name                  string         `gorm:"size:255;uniqueIndex:idx_albums_artist_id_name;not null" json:"name"`
	NameNormalized        string         `gorm:"size:255;uniqueIndex:idx_albums_artist_id_name_normalized;not null" json:"name_normalized"`
	SortName              *string        `gorm:"size:255;uniqueIndex:idx_albums_artist_id_sort_name" json:"sort_name"`
	AlbumStatus           AlbumStatus    `gorm:"not null" json:"album_status"`
	MetaDataStatus        MetaDataStatus `gorm:"not null" json:"meta_data_status"`
	ImageCount            *int32         `json:"image_count"`
	AlbumType             AlbumType      `gorm:"not null" json:"album_type"`
	OriginalReleaseDate   *time.Time     `gorm:"type:date" json:"original_release_date"`
	ReleaseDate           time.Time      `gorm:"type:date;not null" json:"release_date"`
	IsCompilation         bool           `gorm:"not null" json:"is_compilation"`
	SongCount             *int16         `json:"song_count"`
	DiscCount             *int16         `json:"disc_count"`
	Duration              float64        `gorm:"not null" json:"duration"` // duration in milliseconds
	Genres                StringArray    `gorm:"type:text[]" json:"genres"`
	Moods                 StringArray    `gorm:"type:text[]" json:"moods"`
	Comment               *string        `gorm:"size:4000" json:"comment"`
	ReplayGain            *float64       `json:"replay_gain"`
	ReplayPeak            *float64       `json:"replay_peak"`
	Directory             string         `gorm:"size:2000;not null" json:"directory"`
	IsLocked              bool           `gorm:"not null" json:"is_locked"`
	SortOrder             int32          `gorm:"not null" json:"sort_order"`
	APIKey                uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_albums_api_key;not null" json:"api_key"`
	CreatedAt             time.Time      `gorm:"not null" json:"created_at"`
	LastUpdatedAt         *time.Time     `json:"last_updated_at"`
	Tags                  *string        `gorm:"size:2000" json:"tags"`
	Notes                 *string        `gorm:"size:4000" json:"notes"`
	Description           *string        `gorm:"size:62000" json:"description"`
	AlternateNames        *string        `gorm:"size:1000" json:"alternate_names"`
	LastPlayedAt          *time.Time     `json:"last_played_at"`
	LastMetaDataUpdatedAt *time.Time     `json:"last_meta_data_updated_at"`
	PlayedCount           int32          `gorm:"not null" json:"played_count"`
	ItunesID              *string        `gorm:"column:itunes_id;type:text" json:"itunes_id"`
	AmgID                 *string        `gorm:"column:amg_id;type:text" json:"amg_id"`
	DiscogsID             *string        `gorm:"column:discogs_id;type:text" json:"discogs_id"`
	WikiDataID            *string        `gorm:"column:wiki_data_id;type:text" json:"wiki_data_id"`
	MusicBrainzID         *uuid.UUID     `gorm:"column:music_brainz_id;type:uuid;uniqueIndex:idx_albums_music_brainz_id" json:"music_brainz_id"`
	LastFmID              *string        `gorm:"column:last_fm_id;type:text" json:"last_fm_id"`
	SpotifyID             *string        `gorm:"column:spotify_id;type:text;uniqueIndex:idx_albums_spotify_id" json:"spotify_id"`
	DeezerID              *int32         `gorm:"column:deezer_id" json:"deezer_id"`
	CalculatedRating      float64        `gorm:"type:numeric;not null" json:"calculated_rating"`

	Artist *Artist     `gorm:"foreignKey:ArtistID" json:"-"`
	Discs  []AlbumDisc `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Album) TableName() string {
	return "albums"
}

// BeforeCreate sets the API key before creating an album
func (a *Album) BeforeCreate(tx *gorm.DB) error {
	if a.APIKey == uuid.Nil {
		a.APIKey = uuid.New()
	}
	return nil
}

// AlbumDisc represents one physical or logical disc within a release.
type AlbumDisc struct {
	ID         int32   `gorm:"primaryKey;autoIncrement" json:"id"`
	AlbumID    int32   `gorm:"uniqueIndex:idx_album_discs_album_id_disc_number;not null" json:"album_id"`
	DiscNumber int16   `gorm:"uniqueIndex:idx_album_discs_album_id_disc_number;not null" json:"disc_number"`
	SongCount  *int16  `json:"song_count"`
	Title      *string `gorm:"size:255" json:"title"`

	Album *Album `gorm:"foreignKey:AlbumID" json:"-"`
	Songs []Song `gorm:"foreignKey:AlbumDiscID;constraint:OnDelete:CASCADE" json:"-"`
}

func (AlbumDisc) TableName() string {
	return "album_discs"
}

// Song represents the songs table, the leaf unit streamed to clients.
type Song struct {
	ID                    int32       `gorm:"primaryKey;autoIncrement" json:"id"`
	AlbumDiscID           int32       `gorm:"uniqueIndex:idx_songs_album_disc_id_song_number;not null" json:"album_disc_id"`
	Title                 string      `gorm:"size:255;index:idx_songs_title;not null" json:"title"`
	TitleSort             *string     `gorm:"size:255" json:"title_sort"`
	TitleNormalized       string      `gorm:"size:255;not null" json:"title_normalized"`
	Genres                StringArray `gorm:"type:text[]" json:"genres"`
	Moods                 StringArray `gorm:"type:text[]" json:"moods"`
	Comment               *string     `gorm:"size:4000" json:"comment"`
	ReplayGain            *float64    `json:"replay_gain"`
	ReplayPeak            *float64    `json:"replay_peak"`
	ImageCount            *int32      `json:"image_count"`
	SongNumber            int32       `gorm:"uniqueIndex:idx_songs_album_disc_id_song_number;not null" json:"song_number"`
	FileName              string      `gorm:"size:1000;not null" json:"file_name"`
	Lyrics                *string     `gorm:"size:62000" json:"lyrics"`
	FileSize              int64       `gorm:"not null" json:"file_size"`
	FileHash              string      `gorm:"size:64;not null" json:"file_hash"`
	PartTitles            *string     `gorm:"size:1000" json:"part_titles"`
	Duration              float64     `gorm:"not null" json:"duration"` // duration in milliseconds
	SamplingRate          int32       `gorm:"not null" json:"sampling_rate"`
	BitRate               int32       `gorm:"not null" json:"bit_rate"`
	BitDepth              int32       `gorm:"not null" json:"bit_depth"`
	BPM                   int32       `gorm:"column:bpm;not null" json:"bpm"`
	ContentType           string      `gorm:"size:255;not null" json:"content_type"`
	ChannelCount          *int32      `json:"channel_count"`
	IsVbr                 bool        `gorm:"not null" json:"is_vbr"`
	IsLocked              bool        `gorm:"not null" json:"is_locked"`
	SortOrder             int32       `gorm:"not null" json:"sort_order"`
	APIKey                uuid.UUID   `gorm:"type:uuid;uniqueIndex:idx_songs_api_key;not null" json:"api_key"`
	CreatedAt             time.Time   `gorm:"not null" json:"created_at"`
	LastUpdatedAt         *time.Time  `json:"last_updated_at"`
	Tags                  *string     `gorm:"size:2000" json:"tags"`
	Notes                 *string     `gorm:"size:4000" json:"notes"`
	Description           *string     `gorm:"size:62000" json:"description"`
	AlternateNames        *string     `gorm:"size:1000" json:"alternate_names"`
	LastPlayedAt          *time.Time  `json:"last_played_at"`
	LastMetaDataUpdatedAt *time.Time  `json:"last_meta_data_updated_at"`
	PlayedCount           int32       `gorm:"not null" json:"played_count"`
	ItunesID              *string     `gorm:"column:itunes_id;type:text" json:"itunes_id"`
	AmgID                 *string     `gorm:"column:amg_id;type:text" json:"amg_id"`
	DiscogsID             *string     `gorm:"column:discogs_id;type:text" json:"discogs_id"`
	WikiDataID            *string     `gorm:"column:wiki_data_id;type:text" json:"wiki_data_id"`
	MusicBrainzID         *uuid.UUID  `gorm:"column:music_brainz_id;type:uuid;uniqueIndex:idx_songs_music_brainz_id" json:"music_brainz_id"`
	LastFmID              *string     `gorm:"column:last_fm_id;type:text" json:"last_fm_id"`
	SpotifyID             *string     `gorm:"column:spotify_id;type:text;uniqueIndex:idx_songs_spotify_id" json:"spotify_id"`
	DeezerID              *int32      `gorm:"column:deezer_id" json:"deezer_id"`
	CalculatedRating      float64     `gorm:"type:numeric;not null" json:"calculated_rating"`

	AlbumDisc *AlbumDisc `gorm:"foreignKey:AlbumDiscID" json:"-"`
}

func (Song) TableName() string {
	return "songs"
}

// BeforeCreate sets the API key before creating a song
func (s *Song) BeforeCreate(tx *gorm.DB) error {
	if s.APIKey == uuid.Nil {
		s.APIKey = uuid.New()
	}
	return nil
}

// Contributor is a credit record linking a song or album to either a known
// artist or a free-text contributor name. The artist reference is the one
// nullable, non-cascading link in the catalog graph.
type Contributor struct {
	ID                int32           `gorm:"primaryKey;autoIncrement" json:"id"`
	Role              string          `gorm:"size:255;not null" json:"role"`
	SubRole           *string         `gorm:"size:255" json:"sub_role"`
	ArtistID          *int32          `gorm:"uniqueIndex:idx_contributors_artist_id_meta_tag_identifier_song_id" json:"artist_id"`
	ContributorName   *string         `gorm:"size:1000;uniqueIndex:idx_contributors_contributor_name_meta_tag_identifier_song_id" json:"contributor_name"`
	MetaTagIdentifier int32           `gorm:"uniqueIndex:idx_contributors_artist_id_meta_tag_identifier_song_id;uniqueIndex:idx_contributors_contributor_name_meta_tag_identifier_song_id;not null" json:"meta_tag_identifier"`
	SongID            *int32          `gorm:"uniqueIndex:idx_contributors_artist_id_meta_tag_identifier_song_id;uniqueIndex:idx_contributors_contributor_name_meta_tag_identifier_song_id;index:idx_contributors_song_id" json:"song_id"`
	AlbumID           int32           `gorm:"index:idx_contributors_album_id;not null" json:"album_id"`
	ContributorType   ContributorType `gorm:"not null" json:"contributor_type"`
	IsLocked          bool            `gorm:"not null" json:"is_locked"`
	SortOrder         int32           `gorm:"not null" json:"sort_order"`
	APIKey            uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_contributors_api_key;not null" json:"api_key"`
	CreatedAt         time.Time       `gorm:"not null" json:"created_at"`
	LastUpdatedAt     *time.Time      `json:"last_updated_at"`
	Tags              *string         `gorm:"size:2000" json:"tags"`
	Notes             *string         `gorm:"size:4000" json:"notes"`
	Description       *string         `gorm:"size:62000" json:"description"`

	Album  *Album  `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE" json:"-"`
	Artist *Artist `gorm:"foreignKey:ArtistID" json:"-"`
	Song   *Song   `gorm:"foreignKey:SongID" json:"-"`
}

func (Contributor) TableName() string {
	return "contributors"
}

// BeforeCreate sets the API key before creating a contributor
func (c *Contributor) BeforeCreate(tx *gorm.DB) error {
	if c.APIKey == uuid.Nil {
		c.APIKey = uuid.New()
	}
	return nil
}
