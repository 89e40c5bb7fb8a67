package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"melodee/internal/models"
	"melodee/internal/test"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func TestSettingsTypedAccessors(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	settings := NewSettingsService(db, nil, testLogger())
	ctx := context.Background()

	// Seeded values from the catalog.
	pageSize, err := settings.GetInt(ctx, "defaults.pagesize")
	require.NoError(t, err)
	assert.Equal(t, 100, pageSize)

	enabled, err := settings.GetBool(ctx, "searchEngine.musicbrainz.enabled")
	require.NoError(t, err)
	assert.True(t, enabled)

	value, err := settings.GetString(ctx, "jobs.libraryProcess.cronExpression")
	require.NoError(t, err)
	assert.Equal(t, "0 */10 * ? * *", value)
}

func TestSettingsNotFound(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	settings := NewSettingsService(db, nil, testLogger())
	ctx := context.Background()

	_, err := settings.GetString(ctx, "no.such.key")
	assert.ErrorIs(t, err, ErrSettingNotFound)

	fallback, err := settings.GetIntOrDefault(ctx, "no.such.key", 42)
	require.NoError(t, err)
	assert.Equal(t, 42, fallback)
}

func TestSettingsParseErrors(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	settings := NewSettingsService(db, nil, testLogger())
	ctx := context.Background()

	require.NoError(t, settings.Set(ctx, "test.notanumber", "abc"))

	_, err := settings.GetInt(ctx, "test.notanumber")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test.notanumber")

	_, err = settings.GetBool(ctx, "test.notanumber")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test.notanumber")
}

func TestSettingsSetUpserts(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	settings := NewSettingsService(db, nil, testLogger())
	ctx := context.Background()

	// Updating an existing key keeps its row and stamps LastUpdatedAt.
	before, err := settings.Get(ctx, "defaults.pagesize")
	require.NoError(t, err)
	require.Nil(t, before.LastUpdatedAt)

	require.NoError(t, settings.Set(ctx, "defaults.pagesize", "250"))

	after, err := settings.Get(ctx, "defaults.pagesize")
	require.NoError(t, err)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, "250", after.Value)
	require.NotNil(t, after.LastUpdatedAt)

	// A new key creates a row.
	require.NoError(t, settings.Set(ctx, "test.fresh", "hello"))
	fresh, err := settings.Get(ctx, "test.fresh")
	require.NoError(t, err)
	assert.Equal(t, "hello", fresh.Value)
	assert.NotZero(t, fresh.ID)
}

func TestSettingsGetJSON(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	settings := NewSettingsService(db, nil, testLogger())
	ctx := context.Background()

	require.NoError(t, settings.Set(ctx, "test.list", `["mp3","ogg"]`))
	var formats []string
	require.NoError(t, settings.GetJSON(ctx, "test.list", &formats))
	assert.Equal(t, []string{"mp3", "ogg"}, formats)

	require.NoError(t, settings.Set(ctx, "test.badjson", "{not json"))
	err := settings.GetJSON(ctx, "test.badjson", &formats)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test.badjson")
}

func TestSettingsByCategory(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	settings := NewSettingsService(db, nil, testLogger())
	ctx := context.Background()

	jobs, err := settings.ByCategory(ctx, models.SettingCategoryJobs)
	require.NoError(t, err)
	require.NotEmpty(t, jobs)
	for _, setting := range jobs {
		assert.Contains(t, setting.Key, "jobs.")
	}
}

func TestSettingsYAMLRoundTrip(t *testing.T) {
	db := test.OpenMigratedTestDB(t)
	settings := NewSettingsService(db, nil, testLogger())
	ctx := context.Background()

	exported, err := settings.ExportYAML(ctx)
	require.NoError(t, err)

	var doc map[string]string
	require.NoError(t, yaml.Unmarshal(exported, &doc))
	assert.Equal(t, "100", doc["defaults.pagesize"])

	applied, err := settings.ImportYAML(ctx, []byte("defaults.pagesize: \"75\"\ntest.imported: \"yes\"\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, applied)

	value, err := settings.GetInt(ctx, "defaults.pagesize")
	require.NoError(t, err)
	assert.Equal(t, 75, value)

	imported, err := settings.GetString(ctx, "test.imported")
	require.NoError(t, err)
	assert.Equal(t, "yes", imported)
}
