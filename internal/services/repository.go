package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"melodee/internal/models"
	"melodee/internal/utils"
)

// DefaultPageSize is the fallback page size when the defaults.pagesize
// setting is unavailable.
const DefaultPageSize = 100

// Repository handles database operations for models. Paginated queries cap
// the requested page size at the defaults.pagesize setting when a settings
// service is provided.
type Repository struct {
	db       *gorm.DB
	settings *SettingsService
}

// NewRepository creates a new repository instance. settings may be nil, in
// which case the built-in page size cap applies.
func NewRepository(db *gorm.DB, settings *SettingsService) *Repository {
	return &Repository{
		db:       db,
		settings: settings,
	}
}

// pageBounds converts a 1-based page and requested size into a limit and
// offset, capping size at defaults.pagesize.
func (r *Repository) pageBounds(ctx context.Context, page, size int) (limit, offset int) {
	maxSize := DefaultPageSize
	if r.settings != nil {
		if configured, err := r.settings.GetIntOrDefault(ctx, "defaults.pagesize", DefaultPageSize); err == nil && configured > 0 {
			maxSize = configured
		}
	}
	if size < 1 || size > maxSize {
		size = maxSize
	}
	if page < 1 {
		page = 1
	}
	return size, (page - 1) * size
}

// searchPattern normalizes a free-form query the same way the stored
// *_normalized columns are normalized, so LIKE matching behaves identically
// on PostgreSQL and SQLite.
func searchPattern(query string) string {
	return fmt.Sprintf("%%%s%%", utils.NormalizeName(query))
}

// User operations

func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	user.UserNameNormalized = utils.NormalizeName(user.UserName)
	user.EmailNormalized = utils.NormalizeName(user.Email)
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *Repository) GetUserByID(ctx context.Context, id int32) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByAPIKey(ctx context.Context, apiKey uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("api_key = ?", apiKey).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByUserName(ctx context.Context, userName string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("user_name_normalized = ?", utils.NormalizeName(userName)).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UpdateUser(ctx context.Context, user *models.User) error {
	user.UserNameNormalized = utils.NormalizeName(user.UserName)
	user.EmailNormalized = utils.NormalizeName(user.Email)
	now := time.Now().UTC()
	user.LastUpdatedAt = &now
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *Repository) DeleteUser(ctx context.Context, id int32) error {
	return r.db.WithContext(ctx).Delete(&models.User{}, id).Error
}

// Library operations

func (r *Repository) CreateLibrary(ctx context.Context, library *models.Library) error {
	return r.db.WithContext(ctx).Create(library).Error
}

func (r *Repository) GetLibraryByID(ctx context.Context, id int32) (*models.Library, error) {
	var library models.Library
	if err := r.db.WithContext(ctx).First(&library, id).Error; err != nil {
		return nil, err
	}
	return &library, nil
}

func (r *Repository) GetLibraryByAPIKey(ctx context.Context, apiKey uuid.UUID) (*models.Library, error) {
	var library models.Library
	if err := r.db.WithContext(ctx).Where("api_key = ?", apiKey).First(&library).Error; err != nil {
		return nil, err
	}
	return &library, nil
}

// ListLibraries returns all libraries ordered by sort order then name.
func (r *Repository) ListLibraries(ctx context.Context) ([]models.Library, error) {
	var libraries []models.Library
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, name ASC").
		Find(&libraries).Error
	if err != nil {
		return nil, err
	}
	return libraries, nil
}

func (r *Repository) UpdateLibrary(ctx context.Context, library *models.Library) error {
	now := time.Now().UTC()
	library.LastUpdatedAt = &now
	return r.db.WithContext(ctx).Save(library).Error
}

func (r *Repository) DeleteLibrary(ctx context.Context, id int32) error {
	return r.db.WithContext(ctx).Delete(&models.Library{}, id).Error
}

// AppendLibraryScanHistory records one completed scan pass and stamps the
// library's LastScanAt. Scan history rows are append-only.
func (r *Repository) AppendLibraryScanHistory(ctx context.Context, history *models.LibraryScanHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if history.CreatedAt.IsZero() {
			history.CreatedAt = time.Now().UTC()
		}
		if err := tx.Create(history).Error; err != nil {
			return err
		}
		return tx.Model(&models.Library{}).
			Where("id = ?", history.LibraryID).
			Update("last_scan_at", history.CreatedAt).Error
	})
}

// LibraryScanHistories returns the most recent scan passes for a library.
func (r *Repository) LibraryScanHistories(ctx context.Context, libraryID int32, limit int) ([]models.LibraryScanHistory, error) {
	var histories []models.LibraryScanHistory
	err := r.db.WithContext(ctx).
		Where("library_id = ?", libraryID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&histories).Error
	if err != nil {
		return nil, err
	}
	return histories, nil
}

// Artist operations

func (r *Repository) CreateArtist(ctx context.Context, artist *models.Artist) error {
	artist.NameNormalized = utils.NormalizeName(artist.Name)
	return r.db.WithContext(ctx).Create(artist).Error
}

func (r *Repository) GetArtistByID(ctx context.Context, id int32) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.WithContext(ctx).First(&artist, id).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *Repository) GetArtistByAPIKey(ctx context.Context, apiKey uuid.UUID) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.WithContext(ctx).Where("api_key = ?", apiKey).First(&artist).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *Repository) UpdateArtist(ctx context.Context, artist *models.Artist) error {
	artist.NameNormalized = utils.NormalizeName(artist.Name)
	now := time.Now().UTC()
	artist.LastUpdatedAt = &now
	return r.db.WithContext(ctx).Save(artist).Error
}

func (r *Repository) DeleteArtist(ctx context.Context, id int32) error {
	return r.db.WithContext(ctx).Delete(&models.Artist{}, id).Error
}

// SearchArtists searches artists by normalized name with pagination.
func (r *Repository) SearchArtists(ctx context.Context, query string, page, size int) ([]models.Artist, int64, error) {
	limit, offset := r.pageBounds(ctx, page, size)
	pattern := searchPattern(query)

	var total int64
	err := r.db.WithContext(ctx).Model(&models.Artist{}).
		Where("name_normalized LIKE ?", pattern).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count artists: %w", err)
	}

	var artists []models.Artist
	err = r.db.WithContext(ctx).
		Where("name_normalized LIKE ?", pattern).
		Order("name_normalized ASC, id ASC").
		Limit(limit).Offset(offset).
		Find(&artists).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search artists: %w", err)
	}
	return artists, total, nil
}

// Album operations

func (r *Repository) CreateAlbum(ctx context.Context, album *models.Album) error {
	album.NameNormalized = utils.NormalizeName(album.Name)
	return r.db.WithContext(ctx).Create(album).Error
}

func (r *Repository) GetAlbumByID(ctx context.Context, id int32) (*models.Album, error) {
	var album models.Album
	if err := r.db.WithContext(ctx).Preload("Artist").First(&album, id).Error; err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *Repository) GetAlbumByAPIKey(ctx context.Context, apiKey uuid.UUID) (*models.Album, error) {
	var album models.Album
	if err := r.db.WithContext(ctx).Where("api_key = ?", apiKey).First(&album).Error; err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *Repository) UpdateAlbum(ctx context.Context, album *models.Album) error {
	album.NameNormalized = utils.NormalizeName(album.Name)
	now := time.Now().UTC()
	album.LastUpdatedAt = &now
	return r.db.WithContext(ctx).Save(album).Error
}

func (r *Repository) DeleteAlbum(ctx context.Context, id int32) error {
	return r.db.WithContext(ctx).Delete(&models.Album{}, id).Error
}

// SearchAlbums searches albums by normalized name with pagination.
func (r *Repository) SearchAlbums(ctx context.Context, query string, page, size int) ([]models.Album, int64, error) {
	limit, offset := r.pageBounds(ctx, page, size)
	pattern := searchPattern(query)

	var total int64
	err := r.db.WithContext(ctx).Model(&models.Album{}).
		Where("name_normalized LIKE ?", pattern).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count albums: %w", err)
	}

	var albums []models.Album
	err = r.db.WithContext(ctx).
		Where("name_normalized LIKE ?", pattern).
		Order("name_normalized ASC, id ASC").
		Limit(limit).Offset(offset).
		Preload("Artist").
		Find(&albums).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search albums: %w", err)
	}
	return albums, total, nil
}

// Song operations

func (r *Repository) CreateSong(ctx context.Context, song *models.Song) error {
	song.TitleNormalized = utils.NormalizeName(song.Title)
	return r.db.WithContext(ctx).Create(song).Error
}

func (r *Repository) GetSongByID(ctx context.Context, id int32) (*models.Song, error) {
	var song models.Song
	err := r.db.WithContext(ctx).
		Preload("AlbumDisc").
		Preload("AlbumDisc.Album").
		First(&song, id).Error
	if err != nil {
		return nil, err
	}
	return &song, nil
}

func (r *Repository) GetSongByAPIKey(ctx context.Context, apiKey uuid.UUID) (*models.Song, error) {
	var song models.Song
	if err := r.db.WithContext(ctx).Where("api_key = ?", apiKey).First(&song).Error; err != nil {
		return nil, err
	}
	return &song, nil
}

func (r *Repository) UpdateSong(ctx context.Context, song *models.Song) error {
	song.TitleNormalized = utils.NormalizeName(song.Title)
	now := time.Now().UTC()
	song.LastUpdatedAt = &now
	return r.db.WithContext(ctx).Save(song).Error
}

func (r *Repository) DeleteSong(ctx context.Context, id int32) error {
	return r.db.WithContext(ctx).Delete(&models.Song{}, id).Error
}

// SearchSongs searches songs by normalized name with pagination.
func (r *Repository) SearchSongs(ctx context.Context, query string, page, size int) ([]models.Song, int64, error) {
	limit, offset := r.pageBounds(ctx, page, size)
	pattern := searchPattern(query)

	var total int64
	err := r.db.WithContext(ctx).Model(&models.Song{}).
		Where("title_normalized LIKE ?", pattern).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count songs: %w", err)
	}

	var songs []models.Song
	err = r.db.WithContext(ctx).
		Where("title_normalized LIKE ?", pattern).
		Order("title_normalized ASC, id ASC").
		Limit(limit).Offset(offset).
		Preload("AlbumDisc").
		Preload("AlbumDisc.Album").
		Find(&songs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search songs: %w", err)
	}
	return songs, total, nil
}

// Playlist operations

func (r *Repository) CreatePlaylist(ctx context.Context, playlist *models.Playlist) error {
	return r.db.WithContext(ctx).Create(playlist).Error
}

func (r *Repository) GetPlaylistByID(ctx context.Context, id int32) (*models.Playlist, error) {
	var playlist models.Playlist
	if err := r.db.WithContext(ctx).Preload("User").First(&playlist, id).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *Repository) UpdatePlaylist(ctx context.Context, playlist *models.Playlist) error {
	now := time.Now().UTC()
	playlist.LastUpdatedAt = &now
	return r.db.WithContext(ctx).Save(playlist).Error
}

func (r *Repository) DeletePlaylist(ctx context.Context, id int32) error {
	return r.db.WithContext(ctx).Delete(&models.Playlist{}, id).Error
}

// ListPlaylistsForUser returns a user's playlists ordered by name.
func (r *Repository) ListPlaylistsForUser(ctx context.Context, userID int32) ([]models.Playlist, error) {
	var playlists []models.Playlist
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC, id ASC").
		Find(&playlists).Error
	if err != nil {
		return nil, err
	}
	return playlists, nil
}

// User reaction upserts. Each user holds at most one reaction row per
// entity; the unique (user_id, entity_id) index backs the upsert.

type reactionUpdate struct {
	starred *bool
	hated   *bool
	rating  *int32
}

func (u reactionUpdate) columns(now time.Time) map[string]any {
	updates := map[string]any{"last_updated_at": &now}
	if u.starred != nil {
		updates["is_starred"] = *u.starred
		if *u.starred {
			updates["starred_at"] = &now
		} else {
			updates["starred_at"] = nil
		}
	}
	if u.hated != nil {
		updates["is_hated"] = *u.hated
		if *u.hated {
			// Hating an entity clears any star.
			updates["is_starred"] = false
			updates["starred_at"] = nil
		}
	}
	if u.rating != nil {
		updates["rating"] = *u.rating
	}
	return updates
}

func (r *Repository) upsertUserArtist(ctx context.Context, userID, artistID int32, update reactionUpdate) (*models.UserArtist, error) {
	var reaction models.UserArtist
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where(models.UserArtist{UserID: userID, ArtistID: artistID}).
			Attrs(models.UserArtist{CreatedAt: time.Now().UTC()}).
			FirstOrCreate(&reaction).Error
		if err != nil {
			return err
		}
		return tx.Model(&reaction).Updates(update.columns(time.Now().UTC())).Error
	})
	if err != nil {
		return nil, err
	}
	return &reaction, nil
}

func (r *Repository) upsertUserAlbum(ctx context.Context, userID, albumID int32, update reactionUpdate) (*models.UserAlbum, error) {
	var reaction models.UserAlbum
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where(models.UserAlbum{UserID: userID, AlbumID: albumID}).
			Attrs(models.UserAlbum{CreatedAt: time.Now().UTC()}).
			FirstOrCreate(&reaction).Error
		if err != nil {
			return err
		}
		return tx.Model(&reaction).Updates(update.columns(time.Now().UTC())).Error
	})
	if err != nil {
		return nil, err
	}
	return &reaction, nil
}

func (r *Repository) upsertUserSong(ctx context.Context, userID, songID int32, update reactionUpdate) (*models.UserSong, error) {
	var reaction models.UserSong
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where(models.UserSong{UserID: userID, SongID: songID}).
			Attrs(models.UserSong{CreatedAt: time.Now().UTC()}).
			FirstOrCreate(&reaction).Error
		if err != nil {
			return err
		}
		return tx.Model(&reaction).Updates(update.columns(time.Now().UTC())).Error
	})
	if err != nil {
		return nil, err
	}
	return &reaction, nil
}

func boolPtr(b bool) *bool    { return &b }
func int32Ptr(n int32) *int32 { return &n }

// SetArtistStarred toggles a user's star on an artist.
func (r *Repository) SetArtistStarred(ctx context.Context, userID, artistID int32, starred bool) (*models.UserArtist, error) {
	return r.upsertUserArtist(ctx, userID, artistID, reactionUpdate{starred: boolPtr(starred)})
}

// SetArtistHated toggles a user's hate on an artist. Hating clears the star.
func (r *Repository) SetArtistHated(ctx context.Context, userID, artistID int32, hated bool) (*models.UserArtist, error) {
	return r.upsertUserArtist(ctx, userID, artistID, reactionUpdate{hated: boolPtr(hated)})
}

// SetArtistRating sets a user's rating for an artist.
func (r *Repository) SetArtistRating(ctx context.Context, userID, artistID int32, rating int32) (*models.UserArtist, error) {
	if rating < 0 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 0 and 5, got %d", rating)
	}
	return r.upsertUserArtist(ctx, userID, artistID, reactionUpdate{rating: int32Ptr(rating)})
}

// SetAlbumStarred toggles a user's star on an album.
func (r *Repository) SetAlbumStarred(ctx context.Context, userID, albumID int32, starred bool) (*models.UserAlbum, error) {
	return r.upsertUserAlbum(ctx, userID, albumID, reactionUpdate{starred: boolPtr(starred)})
}

// SetAlbumHated toggles a user's hate on an album. Hating clears the star.
func (r *Repository) SetAlbumHated(ctx context.Context, userID, albumID int32, hated bool) (*models.UserAlbum, error) {
	return r.upsertUserAlbum(ctx, userID, albumID, reactionUpdate{hated: boolPtr(hated)})
}

// SetAlbumRating sets a user's rating for an album.
func (r *Repository) SetAlbumRating(ctx context.Context, userID, albumID int32, rating int32) (*models.UserAlbum, error) {
	if rating < 0 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 0 and 5, got %d", rating)
	}
	return r.upsertUserAlbum(ctx, userID, albumID, reactionUpdate{rating: int32Ptr(rating)})
}

// SetSongStarred toggles a user's star on a song.
func (r *Repository) SetSongStarred(ctx context.Context, userID, songID int32, starred bool) (*models.UserSong, error) {
	return r.upsertUserSong(ctx, userID, songID, reactionUpdate{starred: boolPtr(starred)})
}

// SetSongHated toggles a user's hate on a song. Hating clears the star.
func (r *Repository) SetSongHated(ctx context.Context, userID, songID int32, hated bool) (*models.UserSong, error) {
	return r.upsertUserSong(ctx, userID, songID, reactionUpdate{hated: boolPtr(hated)})
}

// SetSongRating sets a user's rating for a song.
func (r *Repository) SetSongRating(ctx context.Context, userID, songID int32, rating int32) (*models.UserSong, error) {
	if rating < 0 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 0 and 5, got %d", rating)
	}
	return r.upsertUserSong(ctx, userID, songID, reactionUpdate{rating: int32Ptr(rating)})
}

// RecordSongPlay increments a user's play count for a song.
func (r *Repository) RecordSongPlay(ctx context.Context, userID, songID int32) (*models.UserSong, error) {
	var reaction models.UserSong
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		err := tx.Where(models.UserSong{UserID: userID, SongID: songID}).
			Attrs(models.UserSong{CreatedAt: now}).
			FirstOrCreate(&reaction).Error
		if err != nil {
			return err
		}
		return tx.Model(&reaction).Updates(map[string]any{
			"played_count":   gorm.Expr("played_count + 1"),
			"last_played_at": &now,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).First(&reaction, reaction.ID).Error; err != nil {
		return nil, err
	}
	return &reaction, nil
}

// RecordSearchHistory appends one search history row.
func (r *Repository) RecordSearchHistory(ctx context.Context, history *models.SearchHistory) error {
	if history.CreatedAt.IsZero() {
		history.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(history).Error
}
