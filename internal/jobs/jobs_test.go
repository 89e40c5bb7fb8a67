package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"melodee/internal/models"
	"melodee/internal/test"
)

func TestNormalizeCronExpression(t *testing.T) {
	cases := map[string]string{
		// Quartz forms stored in the settings catalog.
		"0 0 0/1 1/1 * ? *": "0 0 0/1 1/1 * *",
		"0 */10 * ? * *":    "0 */10 * * * *",
		"0 0 0 * * ?":       "0 0 0 * * *",
		"0 0 12 1 * ?":      "0 0 12 1 * *",
		"@hourly":           "@hourly",
	}
	parser := cron.NewParser(
		cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)
	for in, want := range cases {
		got := NormalizeCronExpression(in)
		assert.Equal(t, want, got)
	}

	// Every seeded job expression must parse after normalization.
	for _, expr := range []string{
		"0 0 0/1 1/1 * ? *",
		"0 */10 * ? * *",
		"0 0 0 * * ?",
		"0 0 12 1 * ?",
	} {
		_, err := parser.Parse(NormalizeCronExpression(expr))
		assert.NoError(t, err, expr)
	}
}

func TestHandleLibraryProcess(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	library := test.CreateTestLibrary(t, db, "Jobs Library", models.LibraryTypeStorage)
	test.CreateTestArtist(t, db, library.ID, "Jobs Artist")

	handlers := NewHandlers(db, zerolog.Nop())
	task := asynq.NewTask(TaskLibraryProcess, nil)
	require.NoError(t, handlers.HandleLibraryProcess(context.Background(), task))

	var refreshed models.Library
	require.NoError(t, db.First(&refreshed, library.ID).Error)
	require.NotNil(t, refreshed.ArtistCount)
	assert.Equal(t, int32(1), *refreshed.ArtistCount)
	require.NotNil(t, refreshed.SongCount)
	assert.Equal(t, int32(0), *refreshed.SongCount)
}

func TestHandleSearchEngineHousekeeping(t *testing.T) {
	db := test.OpenMigratedTestDB(t)

	old := models.SearchHistory{
		ByUserID:  1,
		CreatedAt: time.Now().UTC().Add(-120 * 24 * time.Hour),
	}
	recent := models.SearchHistory{
		ByUserID:  1,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&recent).Error)

	handlers := NewHandlers(db, zerolog.Nop())
	task := asynq.NewTask(TaskSearchEngineHousekeeping, nil)
	require.NoError(t, handlers.HandleSearchEngineHousekeeping(context.Background(), task))

	var remaining []models.SearchHistory
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, recent.ID, remaining[0].ID)
}
