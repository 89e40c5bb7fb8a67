package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShareType tags what kind of catalog entity a share points at. The target id
// is generic and reinterpreted per type; the application layer validates it.
type ShareType int32

const (
	ShareTypeNotSet   ShareType = 0
	ShareTypeSong     ShareType = 1
	ShareTypeAlbum    ShareType = 2
	ShareTypeArtist   ShareType = 3
	ShareTypePlaylist ShareType = 4
)

// PinType tags what kind of catalog entity a user pin points at.
type PinType int32

const (
	PinTypeNotSet   PinType = 0
	PinTypeArtist   PinType = 1
	PinTypeAlbum    PinType = 2
	PinTypeSong     PinType = 3
	PinTypePlaylist PinType = 4
)

// User represents the users table
type User struct {
	ID                  int32      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserName            string     `gorm:"size:255;uniqueIndex:idx_users_user_name;not null" json:"user_name"`
	UserNameNormalized  string     `gorm:"size:255;not null" json:"user_name_normalized"`
	Email               string     `gorm:"size:255;uniqueIndex:idx_users_email;not null" json:"email"`
	EmailNormalized     string     `gorm:"size:255;not null" json:"email_normalized"`
	PublicKey           string     `gorm:"size:255;not null" json:"public_key"`
	PasswordEncrypted   string     `gorm:"size:255;not null" json:"-"`
	LastLoginAt         *time.Time `json:"last_login_at"`
	LastActivityAt      *time.Time `json:"last_activity_at"`
	IsAdmin             bool       `gorm:"not null" json:"is_admin"`
	IsEditor            bool       `gorm:"not null;default:false" json:"is_editor"`
	HasSettingsRole     bool       `gorm:"not null" json:"has_settings_role"`
	HasDownloadRole     bool       `gorm:"not null" json:"has_download_role"`
	HasUploadRole       bool       `gorm:"not null" json:"has_upload_role"`
	HasPlaylistRole     bool       `gorm:"not null" json:"has_playlist_role"`
	HasCoverArtRole     bool       `gorm:"not null" json:"has_cover_art_role"`
	HasCommentRole      bool       `gorm:"not null" json:"has_comment_role"`
	HasPodcastRole      bool       `gorm:"not null" json:"has_podcast_role"`
	HasStreamRole       bool       `gorm:"not null" json:"has_stream_role"`
	HasJukeboxRole      bool       `gorm:"not null" json:"has_jukebox_role"`
	HasShareRole        bool       `gorm:"not null" json:"has_share_role"`
	IsScrobblingEnabled bool       `gorm:"not null" json:"is_scrobbling_enabled"`
	LastFmSessionKey    *string    `gorm:"column:last_fm_session_key;size:64" json:"-"`
	HatedGenres         *string    `gorm:"size:2000" json:"hated_genres"`
	IsLocked            bool       `gorm:"not null" json:"is_locked"`
	SortOrder           int32      `gorm:"not null" json:"sort_order"`
	APIKey              uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_users_api_key;not null" json:"api_key"`
	CreatedAt           time.Time  `gorm:"not null" json:"created_at"`
	LastUpdatedAt       *time.Time `json:"last_updated_at"`
	Tags                *string    `gorm:"size:2000" json:"tags"`
	Notes               *string    `gorm:"size:4000" json:"notes"`
	Description         *string    `gorm:"size:62000" json:"description"`

	Players   []Player   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Playlists []Playlist `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Shares    []Share    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate sets the API key before creating a user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.APIKey == uuid.Nil {
		u.APIKey = uuid.New()
	}
	return nil
}

// Player represents a recognized client instance for a user
type Player struct {
	ID              int32      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string     `gorm:"size:255;not null" json:"name"`
	UserAgent       *string    `gorm:"size:4000;index:idx_players_user_id_client_user_agent" json:"user_agent"`
	UserID          int32      `gorm:"index:idx_players_user_id_client_user_agent;not null" json:"user_id"`
	Client          string     `gorm:"size:1000;index:idx_players_user_id_client_user_agent;not null" json:"client"`
	IPAddress       *string    `gorm:"column:ip_address;size:255" json:"ip_address"`
	LastSeenAt      time.Time  `gorm:"not null" json:"last_seen_at"`
	MaxBitRate      *int32     `json:"max_bit_rate"`
	ScrobbleEnabled bool       `gorm:"not null" json:"scrobble_enabled"`
	TranscodingID   *string    `gorm:"size:255" json:"transcoding_id"`
	Hostname        *string    `gorm:"size:1000" json:"hostname"`
	IsLocked        bool       `gorm:"not null" json:"is_locked"`
	SortOrder       int32      `gorm:"not null" json:"sort_order"`
	APIKey          uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_players_api_key;not null" json:"api_key"`
	CreatedAt       time.Time  `gorm:"not null" json:"created_at"`
	LastUpdatedAt   *time.Time `json:"last_updated_at"`
	Tags            *string    `gorm:"size:2000" json:"tags"`
	Notes           *string    `gorm:"size:4000" json:"notes"`
	Description     *string    `gorm:"size:62000" json:"description"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Player) TableName() string {
	return "players"
}

// BeforeCreate sets the API key before creating a player
func (p *Player) BeforeCreate(tx *gorm.DB) error {
	if p.APIKey == uuid.Nil {
		p.APIKey = uuid.New()
	}
	return nil
}

// Playlist represents the playlists table
type Playlist struct {
	ID             int32      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string     `gorm:"size:255;uniqueIndex:idx_playlists_user_id_name;not null" json:"name"`
	Comment        *string    `gorm:"size:4000" json:"comment"`
	UserID         int32      `gorm:"uniqueIndex:idx_playlists_user_id_name;not null" json:"user_id"`
	IsPublic       bool       `gorm:"not null" json:"is_public"`
	SongCount      *int16     `json:"song_count"`
	Duration       float64    `gorm:"not null" json:"duration"` // duration in milliseconds
	AllowedUserIDs *string    `gorm:"column:allowed_user_ids;size:4000" json:"allowed_user_ids"`
	SongID         *int32     `gorm:"index:idx_playlists_song_id" json:"song_id"`
	IsLocked       bool       `gorm:"not null" json:"is_locked"`
	SortOrder      int32      `gorm:"not null" json:"sort_order"`
	APIKey         uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_playlists_api_key;not null" json:"api_key"`
	CreatedAt      time.Time  `gorm:"not null" json:"created_at"`
	LastUpdatedAt  *time.Time `json:"last_updated_at"`
	Tags           *string    `gorm:"size:2000" json:"tags"`
	Notes          *string    `gorm:"size:4000" json:"notes"`
	Description    *string    `gorm:"size:62000" json:"description"`

	User  *User          `gorm:"foreignKey:UserID" json:"-"`
	Song  *Song          `gorm:"foreignKey:SongID" json:"-"`
	Songs []PlaylistSong `gorm:"foreignKey:PlaylistID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Playlist) TableName() string {
	return "playlists"
}

// BeforeCreate sets the API key before creating a playlist
func (p *Playlist) BeforeCreate(tx *gorm.DB) error {
	if p.APIKey == uuid.Nil {
		p.APIKey = uuid.New()
	}
	return nil
}

// PlaylistSong is the playlist membership join table, ordered, carrying a
// denormalized copy of the song's external id for fast client rendering.
type PlaylistSong struct {
	SongID        int32     `gorm:"primaryKey;autoIncrement:false" json:"song_id"`
	PlaylistID    int32     `gorm:"primaryKey;autoIncrement:false;index:idx_playlist_songs_playlist_id" json:"playlist_id"`
	SongAPIKey    uuid.UUID `gorm:"type:uuid;not null" json:"song_api_key"`
	PlaylistOrder int32     `gorm:"not null" json:"playlist_order"`

	Song     *Song     `gorm:"foreignKey:SongID;constraint:OnDelete:CASCADE" json:"-"`
	Playlist *Playlist `gorm:"foreignKey:PlaylistID" json:"-"`
}

func (PlaylistSong) TableName() string {
	return "playlist_songs"
}

// PlayQueue is a per-user play-queue entry snapshot.
type PlayQueue struct {
	ID            int32      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        int32      `gorm:"index:idx_play_queues_user_id;not null" json:"user_id"`
	SongID        int32      `gorm:"index:idx_play_queues_song_id;not null" json:"song_id"`
	SongAPIKey    uuid.UUID  `gorm:"type:uuid;not null" json:"song_api_key"`
	IsCurrentSong bool       `gorm:"not null" json:"is_current_song"`
	ChangedBy     string     `gorm:"size:255;not null" json:"changed_by"`
	Position      float64    `gorm:"not null" json:"position"`
	PlayQueueID   int32      `gorm:"not null" json:"play_queue_id"` // groups entries into one queue snapshot
	IsLocked      bool       `gorm:"not null" json:"is_locked"`
	SortOrder     int32      `gorm:"not null" json:"sort_order"`
	APIKey        uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_play_queues_api_key;not null" json:"api_key"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	LastUpdatedAt *time.Time `json:"last_updated_at"`
	Tags          *string    `gorm:"size:2000" json:"tags"`
	Notes         *string    `gorm:"size:4000" json:"notes"`
	Description   *string    `gorm:"size:62000" json:"description"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Song *Song `gorm:"foreignKey:SongID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PlayQueue) TableName() string {
	return "play_queues"
}

// BeforeCreate sets the API key before creating a play queue entry
func (p *PlayQueue) BeforeCreate(tx *gorm.DB) error {
	if p.APIKey == uuid.Nil {
		p.APIKey = uuid.New()
	}
	return nil
}

// Bookmark is a saved playback position for a user and song.
type Bookmark struct {
	ID                    int32      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID                int32      `gorm:"uniqueIndex:idx_bookmarks_user_id_song_id;not null" json:"user_id"`
	SongID                int32      `gorm:"uniqueIndex:idx_bookmarks_user_id_song_id;index:idx_bookmarks_song_id;not null" json:"song_id"`
	Comment               *string    `gorm:"size:1000" json:"comment"`
	Position              int32      `gorm:"not null" json:"position"` // position in milliseconds
	IsLocked              bool       `gorm:"not null" json:"is_locked"`
	SortOrder             int32      `gorm:"not null" json:"sort_order"`
	APIKey                uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_bookmarks_api_key;not null" json:"api_key"`
	CreatedAt             time.Time  `gorm:"not null" json:"created_at"`
	LastUpdatedAt         *time.Time `json:"last_updated_at"`
	Tags                  *string    `gorm:"size:2000" json:"tags"`
	Notes                 *string    `gorm:"size:4000" json:"notes"`
	Description           *string    `gorm:"size:62000" json:"description"`
	AlternateNames        *string    `gorm:"size:1000" json:"alternate_names"`
	LastPlayedAt          *time.Time `json:"last_played_at"`
	LastMetaDataUpdatedAt *time.Time `json:"last_meta_data_updated_at"`
	PlayedCount           int32      `gorm:"not null" json:"played_count"`
	ItunesID              *string    `gorm:"column:itunes_id;type:text" json:"itunes_id"`
	AmgID                 *string    `gorm:"column:amg_id;type:text" json:"amg_id"`
	DiscogsID             *string    `gorm:"column:discogs_id;type:text" json:"discogs_id"`
	WikiDataID            *string    `gorm:"column:wiki_data_id;type:text" json:"wiki_data_id"`
	MusicBrainzID         *uuid.UUID `gorm:"column:music_brainz_id;type:uuid;uniqueIndex:idx_bookmarks_music_brainz_id" json:"music_brainz_id"`
	LastFmID              *string    `gorm:"column:last_fm_id;type:text" json:"last_fm_id"`
	SpotifyID             *string    `gorm:"column:spotify_id;type:text;uniqueIndex:idx_bookmarks_spotify_id" json:"spotify_id"`
	DeezerID              *int32     `gorm:"column:deezer_id" json:"deezer_id"`
	CalculatedRating      float64    `gorm:"type:numeric;not null" json:"calculated_rating"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Song *Song `gorm:"foreignKey:SongID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

// BeforeCreate sets the API key before creating a bookmark
func (b *Bookmark) BeforeCreate(tx *gorm.DB) error {
	if b.APIKey == uuid.Nil {
		b.APIKey = uuid.New()
	}
	return nil
}

// Share is a time-limited, optionally downloadable access grant. The target
// is a (ShareType, ShareID) pair rather than a dedicated foreign key.
type Share struct {
	ID             int32      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         int32      `gorm:"index:idx_shares_user_id;not null" json:"user_id"`
	ShareID        int32      `gorm:"not null;default:0" json:"share_id"`
	ShareType      ShareType  `gorm:"not null;default:0" json:"share_type"`
	ShareUniqueID  string     `gorm:"size:64;not null;default:''" json:"share_unique_id"`
	ExpiresAt      time.Time  `gorm:"not null" json:"expires_at"`
	IsDownloadable bool       `gorm:"not null" json:"is_downloadable"`
	LastVisitedAt  *time.Time `json:"last_visited_at"`
	VisitCount     int32      `gorm:"not null" json:"visit_count"`
	IsLocked       bool       `gorm:"not null" json:"is_locked"`
	SortOrder      int32      `gorm:"not null" json:"sort_order"`
	APIKey         uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_shares_api_key;not null" json:"api_key"`
	CreatedAt      time.Time  `gorm:"not null" json:"created_at"`
	LastUpdatedAt  *time.Time `json:"last_updated_at"`
	Tags           *string    `gorm:"size:2000" json:"tags"`
	Notes          *string    `gorm:"size:4000" json:"notes"`
	Description    *string    `gorm:"size:62000" json:"description"`

	User       *User           `gorm:"foreignKey:UserID" json:"-"`
	Activities []ShareActivity `gorm:"foreignKey:ShareActivityShareID" json:"-"`
}

func (Share) TableName() string {
	return "shares"
}

// BeforeCreate sets the API key before creating a share
func (s *Share) BeforeCreate(tx *gorm.DB) error {
	if s.APIKey == uuid.Nil {
		s.APIKey = uuid.New()
	}
	return nil
}

// ShareActivity is an append-only visit log for a share. Any number of visits
// is valid; there is no uniqueness constraint.
type ShareActivity struct {
	ID                   int32     `gorm:"primaryKey;autoIncrement" json:"id"`
	ShareActivityShareID int32     `gorm:"column:share_id;not null" json:"share_id"`
	UserID               *int32    `json:"user_id"` // null when the visitor is anonymous
	CreatedAt            time.Time `gorm:"not null" json:"created_at"`
	ByUserAgent          *string   `gorm:"size:2000" json:"by_user_agent"`
	Client               string    `gorm:"size:1000;not null" json:"client"`
	IPAddress            *string   `gorm:"column:ip_address;size:255" json:"ip_address"`
}

func (ShareActivity) TableName() string {
	return "share_activities"
}

// UserArtist records a user's personal state against an artist.
type UserArtist struct {
	ID            int32      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        int32      `gorm:"uniqueIndex:idx_user_artists_user_id_artist_id;not null" json:"user_id"`
	ArtistID      int32      `gorm:"uniqueIndex:idx_user_artists_user_id_artist_id;index:idx_user_artists_artist_id;not null" json:"artist_id"`
	IsStarred     bool       `gorm:"not null" json:"is_starred"`
	StarredAt     *time.Time `json:"starred_at"`
	Rating        int32      `gorm:"not null" json:"rating"`
	IsHated       bool       `gorm:"not null;default:false" json:"is_hated"`
	IsLocked      bool       `gorm:"not null" json:"is_locked"`
	SortOrder     int32      `gorm:"not null" json:"sort_order"`
	APIKey        uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_user_artists_api_key;not null" json:"api_key"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	LastUpdatedAt *time.Time `json:"last_updated_at"`
	Tags          *string    `gorm:"size:2000" json:"tags"`
	Notes         *string    `gorm:"size:4000" json:"notes"`
	Description   *string    `gorm:"size:62000" json:"description"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Artist *Artist `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserArtist) TableName() string {
	return "user_artists"
}

// BeforeCreate sets the API key before creating a user artist row
func (u *UserArtist) BeforeCreate(tx *gorm.DB) error {
	if u.APIKey == uuid.Nil {
		u.APIKey = uuid.New()
	}
	return nil
}

// UserAlbum records a user's personal state against an album.
type UserAlbum struct {
	ID            int32      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        int32      `gorm:"uniqueIndex:idx_user_albums_user_id_album_id;not null" json:"user_id"`
	AlbumID       int32      `gorm:"uniqueIndex:idx_user_albums_user_id_album_id;index:idx_user_albums_album_id;not null" json:"album_id"`
	PlayedCount   int32      `gorm:"not null" json:"played_count"`
	LastPlayedAt  *time.Time `json:"last_played_at"`
	IsStarred     bool       `gorm:"not null" json:"is_starred"`
	StarredAt     *time.Time `json:"starred_at"`
	Rating        int32      `gorm:"not null" json:"rating"`
	IsHated       bool       `gorm:"not null;default:false" json:"is_hated"`
	IsLocked      bool       `gorm:"not null" json:"is_locked"`
	SortOrder     int32      `gorm:"not null" json:"sort_order"`
	APIKey        uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_user_albums_api_key;not null" json:"api_key"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	LastUpdatedAt *time.Time `json:"last_updated_at"`
	Tags          *string    `gorm:"size:2000" json:"tags"`
	Notes         *string    `gorm:"size:4000" json:"notes"`
	Description   *string    `gorm:"size:62000" json:"description"`

	User  *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Album *Album `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserAlbum) TableName() string {
	return "user_albums"
}

// BeforeCreate sets the API key before creating a user album row
func (u *UserAlbum) BeforeCreate(tx *gorm.DB) error {
	if u.APIKey == uuid.Nil {
		u.APIKey = uuid.New()
	}
	return nil
}

// UserSong records a user's personal state against a song.
type UserSong struct {
	ID            int32      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        int32      `gorm:"uniqueIndex:idx_user_songs_user_id_song_id;not null" json:"user_id"`
	SongID        int32      `gorm:"uniqueIndex:idx_user_songs_user_id_song_id;index:idx_user_songs_song_id;not null" json:"song_id"`
	PlayedCount   int32      `gorm:"not null" json:"played_count"`
	LastPlayedAt  *time.Time `json:"last_played_at"`
	IsStarred     bool       `gorm:"not null" json:"is_starred"`
	StarredAt     *time.Time `json:"starred_at"`
	Rating        int32      `gorm:"not null" json:"rating"`
	IsHated       bool       `gorm:"not null;default:false" json:"is_hated"`
	IsLocked      bool       `gorm:"not null" json:"is_locked"`
	SortOrder     int32      `gorm:"not null" json:"sort_order"`
	APIKey        uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_user_songs_api_key;not null" json:"api_key"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	LastUpdatedAt *time.Time `json:"last_updated_at"`
	Tags          *string    `gorm:"size:2000" json:"tags"`
	Notes         *string    `gorm:"size:4000" json:"notes"`
	Description   *string    `gorm:"size:62000" json:"description"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Song *Song `gorm:"foreignKey:SongID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserSong) TableName() string {
	return "user_songs"
}

// BeforeCreate sets the API key before creating a user song row
func (u *UserSong) BeforeCreate(tx *gorm.DB) error {
	if u.APIKey == uuid.Nil {
		u.APIKey = uuid.New()
	}
	return nil
}

// UserPin pins a catalog entity for a user. PinID is generic in the same way
// a share target is, tagged by PinType.
type UserPin struct {
	ID            int32      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        int32      `gorm:"uniqueIndex:idx_user_pins_user_id_pin_id_pin_type;not null" json:"user_id"`
	PinID         int32      `gorm:"uniqueIndex:idx_user_pins_user_id_pin_id_pin_type;not null" json:"pin_id"`
	PinType       PinType    `gorm:"uniqueIndex:idx_user_pins_user_id_pin_id_pin_type;not null" json:"pin_type"`
	IsLocked      bool       `gorm:"not null" json:"is_locked"`
	SortOrder     int32      `gorm:"not null" json:"sort_order"`
	APIKey        uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_user_pins_api_key;not null" json:"api_key"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	LastUpdatedAt *time.Time `json:"last_updated_at"`
	Tags          *string    `gorm:"size:2000" json:"tags"`
	Notes         *string    `gorm:"size:4000" json:"notes"`
	Description   *string    `gorm:"size:62000" json:"description"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserPin) TableName() string {
	return "user_pins"
}

// BeforeCreate sets the API key before creating a user pin
func (u *UserPin) BeforeCreate(tx *gorm.DB) error {
	if u.APIKey == uuid.Nil {
		u.APIKey = uuid.New()
	}
	return nil
}

// SearchHistory is an append-only audit row per user search.
type SearchHistory struct {
	ID                 int32     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
	ByUserID           int32     `gorm:"column:by_user_id;not null" json:"by_user_id"`
	ByUserAgent        *string   `gorm:"size:2000" json:"by_user_agent"`
	SearchQuery        *string   `gorm:"size:1000" json:"search_query"`
	FoundArtistsCount  int32     `gorm:"not null" json:"found_artists_count"`
	FoundAlbumsCount   int32     `gorm:"not null" json:"found_albums_count"`
	FoundSongsCount    int32     `gorm:"not null" json:"found_songs_count"`
	FoundOtherItems    int32     `gorm:"not null" json:"found_other_items"`
	SearchDurationInMs float64   `gorm:"column:search_duration_in_ms;not null" json:"search_duration_in_ms"`
}

func (SearchHistory) TableName() string {
	return "search_histories"
}
