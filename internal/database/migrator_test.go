package database_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"melodee/internal/database"
	"melodee/internal/models"
	"melodee/internal/test"
)

const registrySize = 16

func TestMigrateUpAppliesFullRegistry(t *testing.T) {
	db := test.OpenTestDB(t)
	log := zerolog.Nop()
	migrator := database.NewMigrator(db, &log)

	applied, err := migrator.Up(context.Background())
	require.NoError(t, err)
	assert.Equal(t, registrySize, applied)

	// A second run is a no-op.
	applied, err = migrator.Up(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, applied)

	statuses, err := migrator.Status(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, registrySize)
	for _, status := range statuses {
		assert.True(t, status.Applied, status.ID)
		assert.NotNil(t, status.AppliedAt, status.ID)
	}
}

func TestMigrateUpSeedsCatalog(t *testing.T) {
	db := test.OpenMigratedTestDB(t)

	var libraries []models.Library
	require.NoError(t, db.Order("id").Find(&libraries).Error)
	require.Len(t, libraries, 4)
	assert.Equal(t, models.LibraryTypeInbound, libraries[0].Type)

	var settingsCount int64
	require.NoError(t, db.Model(&models.Setting{}).Count(&settingsCount).Error)
	assert.Greater(t, settingsCount, int64(80))
}

func TestMigrateDownRollsBackInOrder(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	log := zerolog.Nop()
	migrator := database.NewMigrator(db, &log)

	rolledBack, err := migrator.Down(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, rolledBack)

	statuses, err := migrator.Status(context.Background())
	require.NoError(t, err)

	applied := 0
	for _, status := range statuses {
		if status.Applied {
			applied++
		}
	}
	assert.Equal(t, registrySize-2, applied)
	assert.False(t, statuses[registrySize-1].Applied)
	assert.False(t, statuses[registrySize-2].Applied)

	// Deezer settings arrived in the second-to-last step and are gone now.
	var count int64
	require.NoError(t, db.Model(&models.Setting{}).Where("key LIKE ?", "searchEngine.deezer.%").Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestMigrateRoundTrip(t *testing.T) {
	db := test.OpenTestDB(t)
	log := zerolog.Nop()
	migrator := database.NewMigrator(db, &log)
	ctx := context.Background()

	_, err := migrator.Up(ctx)
	require.NoError(t, err)

	rolledBack, err := migrator.Down(ctx, registrySize)
	require.NoError(t, err)
	assert.Equal(t, registrySize, rolledBack)

	assert.False(t, db.Migrator().HasTable("libraries"))

	applied, err := migrator.Up(ctx)
	require.NoError(t, err)
	assert.Equal(t, registrySize, applied)

	var libraries int64
	require.NoError(t, db.Model(&models.Library{}).Count(&libraries).Error)
	assert.Equal(t, int64(4), libraries)
}

func TestLibraryTypeConstraint(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	log := zerolog.Nop()
	migrator := database.NewMigrator(db, &log)

	// A second storage library is allowed.
	test.CreateTestLibrary(t, db, "Second Storage", models.LibraryTypeStorage)

	// A second inbound library violates the partial unique index.
	duplicate := models.Library{
		Name: "Second Inbound",
		Path: "/second-inbound",
		Type: models.LibraryTypeInbound,
	}
	require.Error(t, db.Create(&duplicate).Error)

	// Rolling back the constraint step restores full uniqueness on type,
	// which the extra storage row violates.
	_, err := migrator.Down(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rollback of 0016_library_type_constraint failed")
}

func TestMigrationHistoryValidation(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	log := zerolog.Nop()
	migrator := database.NewMigrator(db, &log)

	require.NoError(t, db.Exec(
		`UPDATE __migrations_history SET id = '0001_tampered' WHERE id = '0001_initial'`,
	).Error)

	_, err := migrator.Up(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match registry entry")

	_, err = migrator.Status(context.Background())
	require.Error(t, err)
}

func TestColumnDropsPreserveUnrelatedIndexes(t *testing.T) {
	db := test.OpenTestDB(t)
	log := zerolog.Nop()
	migrator := database.NewMigrator(db, &log)
	ctx := context.Background()

	_, err := migrator.Up(ctx)
	require.NoError(t, err)

	// The has_custom_image drop rewrites playlists on sqlite; the name
	// index must survive the rewrite.
	assert.True(t, db.Migrator().HasIndex(&models.Playlist{}, "idx_playlists_user_id_name"))

	// Rolling back the Deezer columns rewrites artists, albums, songs and
	// bookmarks. The Spotify indexes and the baseline album indexes must
	// still be there so the earlier rollbacks can find them.
	rolledBack, err := migrator.Down(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, 2, rolledBack)

	assert.False(t, db.Migrator().HasColumn(&models.Album{}, "deezer_id"))
	assert.True(t, db.Migrator().HasIndex(&models.Album{}, "idx_albums_spotify_id"))
	assert.True(t, db.Migrator().HasIndex(&models.Artist{}, "idx_artists_spotify_id"))
	assert.True(t, db.Migrator().HasIndex(&models.Album{}, "idx_albums_artist_id_name"))

	// The rest of the ladder still unwinds cleanly.
	rolledBack, err = migrator.Down(ctx, registrySize-2)
	require.NoError(t, err)
	assert.Equal(t, registrySize-2, rolledBack)
}
