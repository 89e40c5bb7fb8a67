package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"melodee/internal/models"
	"melodee/internal/test"
)

func TestRepositoryUserCRUD(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	repo := NewRepository(db, nil)
	ctx := context.Background()

	user := &models.User{
		UserName:          "Bob Jones",
		Email:             "bob@example.com",
		PublicKey:         "pk",
		PasswordEncrypted: "digest",
		CreatedAt:         time.Now().UTC(),
	}
	require.NoError(t, repo.CreateUser(ctx, user))
	assert.NotZero(t, user.ID)
	assert.Equal(t, "BOB JONES", user.UserNameNormalized)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", user.APIKey.String())

	got, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	// Lookup by name is case- and punctuation-insensitive.
	got, err = repo.GetUserByUserName(ctx, "bob jones")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	got, err = repo.GetUserByAPIKey(ctx, user.APIKey)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	got.Email = "updated@example.com"
	require.NoError(t, repo.UpdateUser(ctx, got))
	updated, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated@example.com", updated.Email)
	assert.NotNil(t, updated.LastUpdatedAt)

	require.NoError(t, repo.DeleteUser(ctx, user.ID))
	_, err = repo.GetUserByID(ctx, user.ID)
	assert.Error(t, err)
}

func TestRepositoryLibraries(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	repo := NewRepository(db, nil)
	ctx := context.Background()

	// The four default libraries come from the seed.
	libraries, err := repo.ListLibraries(ctx)
	require.NoError(t, err)
	require.Len(t, libraries, 4)
	assert.Equal(t, "Inbound", libraries[0].Name)

	library := &models.Library{
		Name:      "Second Storage",
		Path:      "/storage/second/",
		Type:      models.LibraryTypeStorage,
		SortOrder: 10,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.CreateLibrary(ctx, library))

	libraries, err = repo.ListLibraries(ctx)
	require.NoError(t, err)
	assert.Len(t, libraries, 5)

	got, err := repo.GetLibraryByAPIKey(ctx, library.APIKey)
	require.NoError(t, err)
	assert.Equal(t, library.ID, got.ID)
}

func TestRepositoryScanHistoryAppend(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	repo := NewRepository(db, nil)
	ctx := context.Background()

	library, err := repo.GetLibraryByID(ctx, 3)
	require.NoError(t, err)
	require.Nil(t, library.LastScanAt)

	history := &models.LibraryScanHistory{
		LibraryID:         library.ID,
		FoundArtistsCount: 12,
		FoundAlbumsCount:  40,
		FoundSongsCount:   480,
		DurationInMs:      1523.5,
	}
	require.NoError(t, repo.AppendLibraryScanHistory(ctx, history))

	library, err = repo.GetLibraryByID(ctx, library.ID)
	require.NoError(t, err)
	require.NotNil(t, library.LastScanAt)

	histories, err := repo.LibraryScanHistories(ctx, library.ID, 10)
	require.NoError(t, err)
	require.Len(t, histories, 1)
	assert.Equal(t, int32(480), histories[0].FoundSongsCount)
}

func TestRepositorySearchArtists(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	repo := NewRepository(db, nil)
	ctx := context.Background()

	library := test.CreateTestLibrary(t, db, "Search Library", models.LibraryTypeStorage)
	for _, name := range []string{"Bob Dylan", "Bob Marley", "B.o.B", "Miles Davis"} {
		artist := &models.Artist{
			LibraryID: library.ID,
			Name:      name,
			Directory: name,
			CreatedAt: time.Now().UTC(),
		}
		require.NoError(t, repo.CreateArtist(ctx, artist))
	}

	// Punctuation in the stored name is ignored: "B.o.B" matches "bob".
	artists, total, err := repo.SearchArtists(ctx, "bob", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, artists, 3)
	assert.Equal(t, "B.o.B", artists[0].Name)
	assert.Equal(t, "Bob Dylan", artists[1].Name)

	// Page past the end comes back empty with the same total.
	artists, total, err = repo.SearchArtists(ctx, "bob", 5, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, artists)
}

func TestRepositoryPageSizeCap(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	logger := testLogger()
	settings := NewSettingsService(db, nil, logger)
	repo := NewRepository(db, settings)
	ctx := context.Background()

	require.NoError(t, settings.Set(ctx, "defaults.pagesize", "2"))

	library := test.CreateTestLibrary(t, db, "Cap Library", models.LibraryTypeStorage)
	for _, name := range []string{"Cap One", "Cap Two", "Cap Three", "Cap Four"} {
		artist := &models.Artist{
			LibraryID: library.ID,
			Name:      name,
			Directory: name,
			CreatedAt: time.Now().UTC(),
		}
		require.NoError(t, repo.CreateArtist(ctx, artist))
	}

	// A request above the configured cap is clamped to it.
	artists, total, err := repo.SearchArtists(ctx, "cap", 1, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, artists, 2)
}

func TestRepositoryReactions(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	repo := NewRepository(db, nil)
	ctx := context.Background()

	user := test.CreateTestUser(t, db, "reactor", "reactor@example.com", "Sup3r!Secret#Pass")
	library := test.CreateTestLibrary(t, db, "Reaction Library", models.LibraryTypeStorage)
	artist := test.CreateTestArtist(t, db, library.ID, "Starred Artist")

	reaction, err := repo.SetArtistStarred(ctx, user.ID, artist.ID, true)
	require.NoError(t, err)
	assert.True(t, reaction.IsStarred)
	assert.NotNil(t, reaction.StarredAt)

	// Upsert keeps a single row per (user, artist).
	again, err := repo.SetArtistRating(ctx, user.ID, artist.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, reaction.ID, again.ID)
	assert.Equal(t, int32(4), again.Rating)

	var count int64
	require.NoError(t, db.Model(&models.UserArtist{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Hating clears the star.
	hated, err := repo.SetArtistHated(ctx, user.ID, artist.ID, true)
	require.NoError(t, err)
	assert.True(t, hated.IsHated)
	assert.False(t, hated.IsStarred)
	assert.Nil(t, hated.StarredAt)

	_, err = repo.SetArtistRating(ctx, user.ID, artist.ID, 9)
	assert.Error(t, err)
}

func TestRecordSongPlay(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	repo := NewRepository(db, nil)
	ctx := context.Background()

	user := test.CreateTestUser(t, db, "listener", "listener@example.com", "Sup3r!Secret#Pass")
	library := test.CreateTestLibrary(t, db, "Play Library", models.LibraryTypeStorage)
	artist := test.CreateTestArtist(t, db, library.ID, "Play Artist")

	album := &models.Album{
		ArtistID:    artist.ID,
		Name:        "Play Album",
		ReleaseDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Directory:   "play-album",
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, repo.CreateAlbum(ctx, album))

	disc := &models.AlbumDisc{AlbumID: album.ID, DiscNumber: 1}
	require.NoError(t, db.Create(disc).Error)

	song := &models.Song{
		AlbumDiscID:  disc.ID,
		Title:        "Play Song",
		SongNumber:   1,
		FileName:     "01-play-song.mp3",
		FileSize:     1024,
		FileHash:     "abc123",
		Duration:     180000,
		SamplingRate: 44100,
		BitRate:      320,
		BitDepth:     16,
		BPM:          120,
		ContentType:  "audio/mpeg",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.CreateSong(ctx, song))

	first, err := repo.RecordSongPlay(ctx, user.ID, song.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(1), first.PlayedCount)
	require.NotNil(t, first.LastPlayedAt)

	second, err := repo.RecordSongPlay(ctx, user.ID, song.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int32(2), second.PlayedCount)
}

func TestSearchSongs(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	repo := NewRepository(db, nil)
	ctx := context.Background()

	library := test.CreateTestLibrary(t, db, "Song Library", models.LibraryTypeStorage)
	artist := test.CreateTestArtist(t, db, library.ID, "Song Artist")
	album := &models.Album{
		ArtistID:    artist.ID,
		Name:        "Song Album",
		ReleaseDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Directory:   "song-album",
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, repo.CreateAlbum(ctx, album))
	disc := &models.AlbumDisc{AlbumID: album.ID, DiscNumber: 1}
	require.NoError(t, db.Create(disc).Error)

	for i, title := range []string{"Thunder Road", "Thunderstruck", "Quiet Rain"} {
		song := &models.Song{
			AlbumDiscID:  disc.ID,
			Title:        title,
			SongNumber:   int32(i + 1),
			FileName:     title + ".mp3",
			FileSize:     1,
			FileHash:     title,
			Duration:     1000,
			SamplingRate: 44100,
			BitRate:      320,
			BitDepth:     16,
			BPM:          100,
			ContentType:  "audio/mpeg",
			CreatedAt:    time.Now().UTC(),
		}
		require.NoError(t, repo.CreateSong(ctx, song))
	}

	songs, total, err := repo.SearchSongs(ctx, "thunder", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, songs, 2)
	require.NotNil(t, songs[0].AlbumDisc)
	assert.Equal(t, "Song Album", songs[0].AlbumDisc.Album.Name)
}
