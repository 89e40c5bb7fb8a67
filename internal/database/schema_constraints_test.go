package database_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"melodee/internal/models"
	"melodee/internal/test"
)

func createCatalogChain(t *testing.T, db *gorm.DB) (*models.Library, *models.Artist, *models.Album, *models.Song) {
	t.Helper()

	library := test.CreateTestLibrary(t, db, "Chain Library", models.LibraryTypeStorage)
	artist := test.CreateTestArtist(t, db, library.ID, "Chain Artist")

	album := &models.Album{
		ArtistID:       artist.ID,
		Name:           "Chain Album",
		NameNormalized: "CHAIN ALBUM",
		ReleaseDate:    time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC),
		Directory:      "chain-album",
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, db.Create(album).Error)

	disc := &models.AlbumDisc{AlbumID: album.ID, DiscNumber: 1}
	require.NoError(t, db.Create(disc).Error)

	song := &models.Song{
		AlbumDiscID:  disc.ID,
		Title:        "Chain Song",
		SongNumber:   1,
		FileName:     "01-chain-song.mp3",
		FileSize:     2048,
		FileHash:     "feedbeef",
		Duration:     200000,
		SamplingRate: 44100,
		BitRate:      320,
		BitDepth:     16,
		BPM:          120,
		ContentType:  "audio/mpeg",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, db.Create(song).Error)

	return library, artist, album, song
}

func TestAlbumNameUniquePerArtist(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	_, artist, album, _ := createCatalogChain(t, db)

	duplicate := &models.Album{
		ArtistID:       artist.ID,
		Name:           album.Name,
		NameNormalized: "SOMETHING ELSE",
		ReleaseDate:    time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		Directory:      "duplicate",
		CreatedAt:      time.Now().UTC(),
	}
	assert.Error(t, db.Create(duplicate).Error)

	// The same name under a different artist is fine.
	library := test.CreateTestLibrary(t, db, "Other Library", models.LibraryTypeStorage)
	other := test.CreateTestArtist(t, db, library.ID, "Other Artist")
	sibling := &models.Album{
		ArtistID:       other.ID,
		Name:           album.Name,
		NameNormalized: album.NameNormalized,
		ReleaseDate:    time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		Directory:      "sibling",
		CreatedAt:      time.Now().UTC(),
	}
	assert.NoError(t, db.Create(sibling).Error)
}

func TestSpotifyIDNullableUnique(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	library := test.CreateTestLibrary(t, db, "Spotify Library", models.LibraryTypeStorage)

	first := test.CreateTestArtist(t, db, library.ID, "First Artist")
	require.NoError(t, db.Model(first).Update("spotify_id", "spotify:abc").Error)

	// Any number of rows may hold a null external id.
	test.CreateTestArtist(t, db, library.ID, "Second Artist")
	third := test.CreateTestArtist(t, db, library.ID, "Third Artist")

	// A duplicate non-null value is rejected.
	err := db.Model(third).Update("spotify_id", "spotify:abc").Error
	assert.Error(t, err)
}

func TestLibraryDeleteCascades(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	library, _, _, _ := createCatalogChain(t, db)

	// An untouched sibling subtree.
	otherLibrary := test.CreateTestLibrary(t, db, "Untouched Library", models.LibraryTypeStorage)
	test.CreateTestArtist(t, db, otherLibrary.ID, "Untouched Artist")

	require.NoError(t, db.Delete(&models.Library{}, library.ID).Error)

	for _, probe := range []struct {
		model any
		want  int64
	}{
		{&models.Artist{}, 1},
		{&models.Album{}, 0},
		{&models.AlbumDisc{}, 0},
		{&models.Song{}, 0},
	} {
		var count int64
		require.NoError(t, db.Model(probe.model).Count(&count).Error)
		assert.Equal(t, probe.want, count)
	}
}

func TestUserDeleteCascadesEngagement(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	_, _, album, song := createCatalogChain(t, db)

	user := test.CreateTestUser(t, db, "owner", "owner@example.com", "Sup3r!Secret#Pass")
	bystander := test.CreateTestUser(t, db, "bystander", "bystander@example.com", "Sup3r!Secret#Pass")

	for _, row := range []any{
		&models.UserAlbum{UserID: user.ID, AlbumID: album.ID, CreatedAt: time.Now().UTC()},
		&models.UserSong{UserID: user.ID, SongID: song.ID, CreatedAt: time.Now().UTC()},
		&models.UserAlbum{UserID: bystander.ID, AlbumID: album.ID, CreatedAt: time.Now().UTC()},
		&models.Playlist{UserID: user.ID, Name: "Owner Mix", CreatedAt: time.Now().UTC()},
	} {
		require.NoError(t, db.Create(row).Error)
	}

	require.NoError(t, db.Delete(&models.User{}, user.ID).Error)

	var userAlbums, userSongs, playlists int64
	require.NoError(t, db.Model(&models.UserAlbum{}).Count(&userAlbums).Error)
	require.NoError(t, db.Model(&models.UserSong{}).Count(&userSongs).Error)
	require.NoError(t, db.Model(&models.Playlist{}).Count(&playlists).Error)

	// The bystander's reaction survives.
	assert.Equal(t, int64(1), userAlbums)
	assert.Equal(t, int64(0), userSongs)
	assert.Equal(t, int64(0), playlists)
}

func TestContributorRoleUniquePerSong(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	_, artist, album, song := createCatalogChain(t, db)

	first := &models.Contributor{
		Role:              "composer",
		ArtistID:          &artist.ID,
		SongID:            &song.ID,
		AlbumID:           album.ID,
		MetaTagIdentifier: 1,
		CreatedAt:         time.Now().UTC(),
	}
	require.NoError(t, db.Create(first).Error)

	// The same artist may not hold the same role twice on one song.
	duplicate := &models.Contributor{
		Role:              "composer",
		ArtistID:          &artist.ID,
		SongID:            &song.ID,
		AlbumID:           album.ID,
		MetaTagIdentifier: 1,
		CreatedAt:         time.Now().UTC(),
	}
	assert.Error(t, db.Create(duplicate).Error)

	// A different tag identifier on the same song is fine.
	other := &models.Contributor{
		Role:              "producer",
		ArtistID:          &artist.ID,
		SongID:            &song.ID,
		AlbumID:           album.ID,
		MetaTagIdentifier: 2,
		CreatedAt:         time.Now().UTC(),
	}
	assert.NoError(t, db.Create(other).Error)
}

func TestUserAlbumPairUnique(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	_, _, album, _ := createCatalogChain(t, db)
	user := test.CreateTestUser(t, db, "rater", "rater@example.com", "Sup3r!Secret#Pass")

	first := &models.UserAlbum{UserID: user.ID, AlbumID: album.ID, CreatedAt: time.Now().UTC()}
	require.NoError(t, db.Create(first).Error)

	duplicate := &models.UserAlbum{UserID: user.ID, AlbumID: album.ID, CreatedAt: time.Now().UTC()}
	assert.Error(t, db.Create(duplicate).Error)
}

func TestSeededBatchSizeSetting(t *testing.T) {
	db := test.OpenMigratedTestDB(t)

	var setting models.Setting
	require.NoError(t, db.Where("key = ?", "defaults.batchSize").First(&setting).Error)
	assert.Equal(t, "250", setting.Value)
	assert.Equal(t, int32(53), setting.ID)
	assert.Nil(t, setting.Category)
}

func TestForeignKeyEnforcementEnabled(t *testing.T) {
	db := test.OpenTestDB(t)

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}

func TestBaselineTablesCarryAuditColumns(t *testing.T) {
	db := test.OpenMigratedTestDB(t)

	for _, column := range []string{"is_locked", "sort_order", "api_key", "created_at", "tags", "notes", "description"} {
		assert.True(t, db.Migrator().HasColumn(&models.Setting{}, column), "settings missing %s", column)
		assert.True(t, db.Migrator().HasColumn(&models.Artist{}, column), "artists missing %s", column)
	}
	for _, column := range []string{"spotify_id", "music_brainz_id", "itunes_id", "calculated_rating"} {
		assert.True(t, db.Migrator().HasColumn(&models.Artist{}, column), "artists missing %s", column)
	}
}

func TestAlbumGenresRoundTrip(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	_, _, album, _ := createCatalogChain(t, db)

	album.Genres = models.StringArray{"rock", "jazz"}
	album.Moods = models.StringArray{"mellow"}
	require.NoError(t, db.Save(album).Error)

	var got models.Album
	require.NoError(t, db.First(&got, album.ID).Error)
	assert.Equal(t, models.StringArray{"rock", "jazz"}, got.Genres)
	assert.Equal(t, models.StringArray{"mellow"}, got.Moods)
}
