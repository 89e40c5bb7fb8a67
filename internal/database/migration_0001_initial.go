package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"melodee/internal/models"
)

// The init* types below are a frozen snapshot of the schema as it stood at
// the first release. Later migrations alter it step by step; these types must
// never be updated to match the current models in internal/models.

// InitEnvelope is the audit envelope shared by almost every table. It must
// stay exported: gorm skips unexported embedded fields when building the
// schema.
type InitEnvelope struct {
	IsLocked      bool      `gorm:"not null"`
	SortOrder     int32     `gorm:"not null"`
	APIKey        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CreatedAt     time.Time `gorm:"not null"`
	LastUpdatedAt *time.Time
	Tags          *string `gorm:"size:2000"`
	Notes         *string `gorm:"size:4000"`
	Description   *string `gorm:"size:4000"`
}

// InitExternalIDs is the external-identifier block shared by the four
// linkable media entities.
type InitExternalIDs struct {
	AlternateNames        *string `gorm:"size:1000"`
	LastPlayedAt          *time.Time
	LastMetaDataUpdatedAt *time.Time
	PlayedCount           int32      `gorm:"not null"`
	ItunesID              *string    `gorm:"type:text"`
	AmgID                 *string    `gorm:"type:text"`
	DiscogsID             *string    `gorm:"type:text"`
	WikiDataID            *string    `gorm:"type:text"`
	MusicBrainzID         *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	LastFmID              *string    `gorm:"type:text"`
	SpotifyID             *string    `gorm:"type:text"`
	CalculatedRating      float64    `gorm:"type:numeric;not null"`
}

type initLibrary struct {
	ID          int32  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:255;not null"`
	ArtistCount *int32
	AlbumCount  *int32
	SongCount   *int32
	Path        string `gorm:"size:2000;not null"`
	Type        int32  `gorm:"uniqueIndex;not null"`
	LastScanAt  *time.Time
	InitEnvelope

	Artists       []initArtist             `gorm:"foreignKey:LibraryID;constraint:OnDelete:CASCADE"`
	ScanHistories []initLibraryScanHistory `gorm:"foreignKey:LibraryID;constraint:OnDelete:CASCADE"`
}

func (initLibrary) TableName() string { return "libraries" }

type initLibraryScanHistory struct {
	ID                int32     `gorm:"primaryKey;autoIncrement"`
	CreatedAt         time.Time `gorm:"not null"`
	LibraryID         int32     `gorm:"index;not null"`
	ForArtistID       *int32
	ForAlbumID        *int32
	FoundArtistsCount int32   `gorm:"not null"`
	FoundAlbumsCount  int32   `gorm:"not null"`
	FoundSongsCount   int32   `gorm:"not null"`
	DurationInMs      float64 `gorm:"not null"`
}

func (initLibraryScanHistory) TableName() string { return "library_scan_histories" }

type initArtist struct {
	ID             int32   `gorm:"primaryKey;autoIncrement"`
	Name           string  `gorm:"size:255;uniqueIndex;not null"`
	NameNormalized string  `gorm:"size:255;index;not null"`
	SortName       *string `gorm:"size:255;index"`
	RealName       *string `gorm:"size:255"`
	Directory      string  `gorm:"size:2000;not null"`
	Roles          *string `gorm:"size:2000"`
	AlbumCount     int32   `gorm:"not null"`
	SongCount      int32   `gorm:"not null"`
	LibraryID      int32   `gorm:"index;not null"`
	Biography      *string `gorm:"size:4000"`
	ImageCount     *int32
	MetaDataStatus int32 `gorm:"not null"`
	InitEnvelope
	InitExternalIDs

	Albums []initAlbum `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE"`
}

func (initArtist) TableName() string { return "artists" }

type initArtistRelation struct {
	ID                 int32 `gorm:"primaryKey;autoIncrement"`
	ArtistID           int32 `gorm:"uniqueIndex:idx_artist_relations_artist_id_related_artist_id;not null"`
	RelatedArtistID    int32 `gorm:"uniqueIndex:idx_artist_relations_artist_id_related_artist_id;index;not null"`
	ArtistRelationType int32 `gorm:"not null"`
	RelationStart      *time.Time
	RelationEnd        *time.Time
	InitEnvelope

	Artist        *initArtist `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE"`
	RelatedArtist *initArtist `gorm:"foreignKey:RelatedArtistID;constraint:OnDelete:CASCADE"`
}

func (initArtistRelation) TableName() string { return "artist_relations" }

type initAlbum struct {
	ID                  int32   `gorm:"primaryKey;autoIncrement"`
	ArtistID            int32   `gorm:"uniqueIndex:idx_albums_artist_id_name;uniqueIndex:idx_albums_artist_id_name_normalized;uniqueIndex:idx_albums_artist_id_sort_name;not null"`
	Name                string  `gorm:"size:255;uniqueIndex:idx_albums_artist_id_name;not null"`
	NameNormalized      string  `gorm:"size:255;uniqueIndex:idx_albums_artist_id_name_normalized;not null"`
	SortName            *string `gorm:"size:255;uniqueIndex:idx_albums_artist_id_sort_name"`
	AlbumStatus         int16   `gorm:"not null"`
	MetaDataStatus      int32   `gorm:"not null"`
	ImageCount          *int32
	AlbumType           int16      `gorm:"not null"`
	OriginalReleaseDate *time.Time `gorm:"type:date"`
	ReleaseDate         time.Time  `gorm:"type:date;not null"`
	IsCompilation       bool       `gorm:"not null"`
	SongCount           *int16
	DiscCount           *int16
	Duration            float64            `gorm:"not null"`
	Genres              models.StringArray `gorm:"type:text[]"`
	Moods               models.StringArray `gorm:"type:text[]"`
	Comment             *string            `gorm:"size:4000"`
	ReplayGain          *float64
	ReplayPeak          *float64
	Directory           string `gorm:"size:2000;not null"`
	InitEnvelope
	InitExternalIDs

	Discs        []initAlbumDisc   `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE"`
	Contributors []initContributor `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE"`
}

func (initAlbum) TableName() string { return "albums" }

type initAlbumDisc struct {
	ID         int32 `gorm:"primaryKey;autoIncrement"`
	AlbumID    int32 `gorm:"uniqueIndex:idx_album_discs_album_id_disc_number;not null"`
	DiscNumber int16 `gorm:"uniqueIndex:idx_album_discs_album_id_disc_number;not null"`
	SongCount  *int16
	Title      *string `gorm:"size:255"`

	Songs []initSong `gorm:"foreignKey:AlbumDiscID;constraint:OnDelete:CASCADE"`
}

func (initAlbumDisc) TableName() string { return "album_discs" }

type initSong struct {
	ID              int32              `gorm:"primaryKey;autoIncrement"`
	AlbumDiscID     int32              `gorm:"uniqueIndex:idx_songs_album_disc_id_song_number;not null"`
	Title           string             `gorm:"size:255;index;not null"`
	TitleSort       *string            `gorm:"size:255"`
	TitleNormalized string             `gorm:"size:255;not null"`
	Genres          models.StringArray `gorm:"type:text[]"`
	Moods           models.StringArray `gorm:"type:text[]"`
	Comment         *string            `gorm:"size:4000"`
	ReplayGain      *float64
	ReplayPeak      *float64
	ImageCount      *int32
	SongNumber      int32   `gorm:"uniqueIndex:idx_songs_album_disc_id_song_number;not null"`
	FileName        string  `gorm:"size:1000;not null"`
	Lyrics          *string `gorm:"size:62000"`
	FileSize        int64   `gorm:"not null"`
	FileHash        string  `gorm:"size:64;not null"`
	PartTitles      *string `gorm:"size:1000"`
	Duration        float64 `gorm:"not null"`
	SamplingRate    int32   `gorm:"not null"`
	BitRate         int32   `gorm:"not null"`
	BitDepth        int32   `gorm:"not null"`
	BPM             int32   `gorm:"column:bpm;not null"`
	ContentType     string  `gorm:"size:255;not null"`
	ChannelCount    *int32
	IsVbr           bool `gorm:"not null"`
	InitEnvelope
	InitExternalIDs
}

func (initSong) TableName() string { return "songs" }

type initContributor struct {
	ID                int32   `gorm:"primaryKey;autoIncrement"`
	Role              string  `gorm:"size:255;not null"`
	SubRole           *string `gorm:"size:255"`
	ArtistID          *int32  `gorm:"uniqueIndex:idx_contributors_artist_id_meta_tag_identifier_album_id"`
	ContributorName   *string `gorm:"size:1000;uniqueIndex:idx_contributors_contributor_name_meta_tag_identifier_album_id"`
	MetaTagIdentifier int32   `gorm:"uniqueIndex:idx_contributors_artist_id_meta_tag_identifier_album_id;uniqueIndex:idx_contributors_contributor_name_meta_tag_identifier_album_id;not null"`
	SongID            *int32  `gorm:"index"`
	AlbumID           int32   `gorm:"uniqueIndex:idx_contributors_artist_id_meta_tag_identifier_album_id;uniqueIndex:idx_contributors_contributor_name_meta_tag_identifier_album_id;not null"`
	ContributorType   int32   `gorm:"not null"`
	InitEnvelope

	Artist *initArtist `gorm:"foreignKey:ArtistID"`
	Song   *initSong   `gorm:"foreignKey:SongID"`
}

func (initContributor) TableName() string { return "contributors" }

type initUser struct {
	ID                  int32  `gorm:"primaryKey;autoIncrement"`
	UserName            string `gorm:"size:255;uniqueIndex;not null"`
	UserNameNormalized  string `gorm:"size:255;not null"`
	Email               string `gorm:"size:255;uniqueIndex;not null"`
	EmailNormalized     string `gorm:"size:255;not null"`
	PublicKey           string `gorm:"size:255;not null"`
	PasswordEncrypted   string `gorm:"size:255;not null"`
	LastLoginAt         *time.Time
	LastActivityAt      *time.Time
	IsAdmin             bool    `gorm:"not null"`
	HasSettingsRole     bool    `gorm:"not null"`
	HasDownloadRole     bool    `gorm:"not null"`
	HasUploadRole       bool    `gorm:"not null"`
	HasPlaylistRole     bool    `gorm:"not null"`
	HasCoverArtRole     bool    `gorm:"not null"`
	HasCommentRole      bool    `gorm:"not null"`
	HasPodcastRole      bool    `gorm:"not null"`
	HasStreamRole       bool    `gorm:"not null"`
	HasJukeboxRole      bool    `gorm:"not null"`
	HasShareRole        bool    `gorm:"not null"`
	IsScrobblingEnabled bool    `gorm:"not null"`
	LastFmSessionKey    *string `gorm:"column:last_fm_session_key;size:64"`
	InitEnvelope

	Players    []initPlayer     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Playlists  []initPlaylist   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	PlayQueues []initPlayQueue  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Bookmarks  []initBookmark   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Shares     []initShare      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Artists    []initUserArtist `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Albums     []initUserAlbum  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Songs      []initUserSong   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (initUser) TableName() string { return "users" }

type initPlayer struct {
	ID              int32     `gorm:"primaryKey;autoIncrement"`
	Name            string    `gorm:"size:255;not null"`
	UserAgent       *string   `gorm:"size:4000;index:idx_players_user_id_client_user_agent"`
	UserID          int32     `gorm:"index:idx_players_user_id_client_user_agent;not null"`
	Client          string    `gorm:"size:1000;index:idx_players_user_id_client_user_agent;not null"`
	IPAddress       *string   `gorm:"size:255"`
	LastSeenAt      time.Time `gorm:"not null"`
	MaxBitRate      *int32
	ScrobbleEnabled bool    `gorm:"not null"`
	TranscodingID   *string `gorm:"size:255"`
	Hostname        *string `gorm:"size:1000"`
	InitEnvelope
}

func (initPlayer) TableName() string { return "players" }

type initPlaylist struct {
	ID             int32   `gorm:"primaryKey;autoIncrement"`
	Name           string  `gorm:"size:255;uniqueIndex:idx_playlists_user_id_name;not null"`
	Comment        *string `gorm:"size:4000"`
	UserID         int32   `gorm:"uniqueIndex:idx_playlists_user_id_name;not null"`
	IsPublic       bool    `gorm:"not null"`
	SongCount      *int16
	Duration       float64 `gorm:"not null"`
	HasCustomImage bool    `gorm:"not null"`
	AllowedUserIDs *string `gorm:"size:4000"`
	SongID         *int32  `gorm:"index"`
	InitEnvelope

	Song  *initSong          `gorm:"foreignKey:SongID"`
	Songs []initPlaylistSong `gorm:"foreignKey:PlaylistID;constraint:OnDelete:CASCADE"`
}

func (initPlaylist) TableName() string { return "playlists" }

type initPlaylistSong struct {
	SongID        int32     `gorm:"primaryKey;autoIncrement:false"`
	PlaylistID    int32     `gorm:"primaryKey;autoIncrement:false;index"`
	SongAPIKey    uuid.UUID `gorm:"type:uuid;not null"`
	PlaylistOrder int32     `gorm:"not null"`

	Song *initSong `gorm:"foreignKey:SongID;constraint:OnDelete:CASCADE"`
}

func (initPlaylistSong) TableName() string { return "playlist_songs" }

type initPlayQueue struct {
	ID            int32     `gorm:"primaryKey;autoIncrement"`
	UserID        int32     `gorm:"index;not null"`
	SongID        int32     `gorm:"index;not null"`
	SongAPIKey    uuid.UUID `gorm:"type:uuid;not null"`
	IsCurrentSong bool      `gorm:"not null"`
	ChangedBy     string    `gorm:"size:255;not null"`
	Position      float64   `gorm:"not null"`
	PlayQueueID   int32     `gorm:"not null"`
	InitEnvelope

	Song *initSong `gorm:"foreignKey:SongID;constraint:OnDelete:CASCADE"`
}

func (initPlayQueue) TableName() string { return "play_queues" }

type initBookmark struct {
	ID       int32   `gorm:"primaryKey;autoIncrement"`
	UserID   int32   `gorm:"uniqueIndex:idx_bookmarks_user_id_song_id;not null"`
	SongID   int32   `gorm:"uniqueIndex:idx_bookmarks_user_id_song_id;index;not null"`
	Comment  *string `gorm:"size:1000"`
	Position int32   `gorm:"not null"`
	InitEnvelope
	InitExternalIDs

	Song *initSong `gorm:"foreignKey:SongID;constraint:OnDelete:CASCADE"`
}

func (initBookmark) TableName() string { return "bookmarks" }

type initShare struct {
	ID             int32     `gorm:"primaryKey;autoIncrement"`
	UserID         int32     `gorm:"index;not null"`
	SongIDs        string    `gorm:"column:song_ids;size:2000;not null"`
	ExpiresAt      time.Time `gorm:"not null"`
	IsDownloadable bool      `gorm:"not null"`
	LastVisitedAt  *time.Time
	VisitCount     int32 `gorm:"not null"`
	InitEnvelope
}

func (initShare) TableName() string { return "shares" }

type initUserArtist struct {
	ID        int32 `gorm:"primaryKey;autoIncrement"`
	UserID    int32 `gorm:"uniqueIndex:idx_user_artists_user_id_artist_id;not null"`
	ArtistID  int32 `gorm:"uniqueIndex:idx_user_artists_user_id_artist_id;index;not null"`
	IsStarred bool  `gorm:"not null"`
	StarredAt *time.Time
	Rating    int32 `gorm:"not null"`
	InitEnvelope

	Artist *initArtist `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE"`
}

func (initUserArtist) TableName() string { return "user_artists" }

type initUserAlbum struct {
	ID           int32 `gorm:"primaryKey;autoIncrement"`
	UserID       int32 `gorm:"uniqueIndex:idx_user_albums_user_id_album_id;not null"`
	AlbumID      int32 `gorm:"uniqueIndex:idx_user_albums_user_id_album_id;index;not null"`
	PlayedCount  int32 `gorm:"not null"`
	LastPlayedAt *time.Time
	IsStarred    bool `gorm:"not null"`
	StarredAt    *time.Time
	Rating       int32 `gorm:"not null"`
	InitEnvelope

	Album *initAlbum `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE"`
}

func (initUserAlbum) TableName() string { return "user_albums" }

type initUserSong struct {
	ID           int32 `gorm:"primaryKey;autoIncrement"`
	UserID       int32 `gorm:"uniqueIndex:idx_user_songs_user_id_song_id;not null"`
	SongID       int32 `gorm:"uniqueIndex:idx_user_songs_user_id_song_id;index;not null"`
	PlayedCount  int32 `gorm:"not null"`
	LastPlayedAt *time.Time
	IsStarred    bool `gorm:"not null"`
	StarredAt    *time.Time
	Rating       int32 `gorm:"not null"`
	InitEnvelope

	Song *initSong `gorm:"foreignKey:SongID;constraint:OnDelete:CASCADE"`
}

func (initUserSong) TableName() string { return "user_songs" }

type initSetting struct {
	ID       int32   `gorm:"primaryKey;autoIncrement"`
	Key      string  `gorm:"size:1000;uniqueIndex;not null"`
	Comment  *string `gorm:"size:255"`
	Category *int32
	Value    string `gorm:"size:2000;not null"`
	InitEnvelope
}

func (initSetting) TableName() string { return "settings" }

type initRadioStation struct {
	ID          int32   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"size:255;not null"`
	StreamURL   string  `gorm:"size:2000;not null"`
	HomePageURL *string `gorm:"size:2000"`
	InitEnvelope
}

func (initRadioStation) TableName() string { return "radio_stations" }

// initialTables lists every baseline table in an order safe for creation and
// whose reverse is safe for dropping.
func initialTables() []any {
	return []any{
		&initSetting{},
		&initRadioStation{},
		&initUser{},
		&initLibrary{},
		&initLibraryScanHistory{},
		&initArtist{},
		&initArtistRelation{},
		&initAlbum{},
		&initAlbumDisc{},
		&initSong{},
		&initContributor{},
		&initPlayer{},
		&initPlaylist{},
		&initPlaylistSong{},
		&initPlayQueue{},
		&initBookmark{},
		&initShare{},
		&initUserArtist{},
		&initUserAlbum{},
		&initUserSong{},
	}
}

func migrationInitial() Migration {
	return Migration{
		ID:      "0001_initial",
		Comment: "create baseline schema and seed libraries and settings",
		Up: func(tx *gorm.DB) error {
			if err := tx.AutoMigrate(initialTables()...); err != nil {
				return err
			}
			if err := seedDefaultLibraries(tx); err != nil {
				return err
			}
			return seedSettingsCatalog(tx)
		},
		Down: func(tx *gorm.DB) error {
			tables := initialTables()
			for i := len(tables) - 1; i >= 0; i-- {
				if err := tx.Migrator().DropTable(tables[i]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
