package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"melodee/internal/handlers"
	"melodee/internal/models"
	"melodee/internal/services"
	"melodee/internal/test"
)

const testPassword = "Sup3r!Secret#Pass"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := test.OpenMigratedTestDB(t)
	logger := zerolog.Nop()
	settings := services.NewSettingsService(db, nil, logger)

	app := fiber.New()
	handlers.RegisterRoutes(app, handlers.RouterDeps{
		DB:       db,
		Repo:     services.NewRepository(db, settings),
		Settings: settings,
		Auth:     services.NewAuthService(db),
		Logger:   logger,
	})
	return app, db
}

func request(t *testing.T, app *fiber.App, method, url string, body any, apiKey string) (int, map[string]any) {
	t.Helper()

	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, payload)
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-Api-Key", apiKey)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestLoginEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	test.CreateTestUser(t, db, "carol", "carol@example.com", testPassword)

	status, body := request(t, app, "POST", "/api/v1/auth/login", fiber.Map{
		"username": "carol",
		"password": testPassword,
	}, "")
	assert.Equal(t, fiber.StatusOK, status)

	data := body["data"].(map[string]any)
	assert.Equal(t, "carol", data["user_name"])
	assert.NotEmpty(t, data["api_key"])
	assert.Nil(t, data["password"])

	status, _ = request(t, app, "POST", "/api/v1/auth/login", fiber.Map{
		"username": "carol",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestSearchEndpointRequiresAPIKey(t *testing.T) {
	app, db := newTestApp(t)
	user := test.CreateTestUser(t, db, "dave", "dave@example.com", testPassword)
	library := test.CreateTestLibrary(t, db, "Search Library", models.LibraryTypeStorage)
	test.CreateTestArtist(t, db, library.ID, "Nina Simone")

	status, _ := request(t, app, "GET", "/api/v1/search?q=nina", nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, body := request(t, app, "GET", "/api/v1/search?q=nina&type=artist", nil, user.APIKey.String())
	assert.Equal(t, fiber.StatusOK, status)

	data := body["data"].(map[string]any)
	artists := data["artists"].([]any)
	require.Len(t, artists, 1)

	meta := body["pagination"].(map[string]any)
	assert.Equal(t, float64(1), meta["totalCount"])

	// Every authenticated search is recorded.
	var histories int64
	require.NoError(t, db.Model(&models.SearchHistory{}).Count(&histories).Error)
	assert.Equal(t, int64(1), histories)
}

func TestLibraryEndpoints(t *testing.T) {
	app, db := newTestApp(t)
	user := test.CreateTestUser(t, db, "erin", "erin@example.com", testPassword)

	status, body := request(t, app, "GET", "/api/v1/libraries", nil, user.APIKey.String())
	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"].([]any), 4)

	status, body = request(t, app, "GET", "/api/v1/libraries/1", nil, user.APIKey.String())
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Inbound", body["data"].(map[string]any)["name"])

	status, _ = request(t, app, "GET", "/api/v1/libraries/999", nil, user.APIKey.String())
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestReactionEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	user := test.CreateTestUser(t, db, "frank", "frank@example.com", testPassword)
	library := test.CreateTestLibrary(t, db, "Reaction Library", models.LibraryTypeStorage)
	artist := test.CreateTestArtist(t, db, library.ID, "Miles Davis")

	url := "/api/v1/artists/" + itoa(artist.ID) + "/reaction"

	status, body := request(t, app, "POST", url, fiber.Map{"starred": true}, user.APIKey.String())
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["data"].(map[string]any)["is_starred"])

	status, _ = request(t, app, "POST", url, fiber.Map{"starred": true, "rating": 3}, user.APIKey.String())
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = request(t, app, "POST", url, fiber.Map{"rating": 9}, user.APIKey.String())
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestAdminSettingsEndpoints(t *testing.T) {
	app, db := newTestApp(t)
	user := test.CreateTestUser(t, db, "grace", "grace@example.com", testPassword)

	status, _ := request(t, app, "GET", "/api/v1/admin/settings", nil, user.APIKey.String())
	assert.Equal(t, fiber.StatusForbidden, status)

	require.NoError(t, db.Model(user).Update("is_admin", true).Error)

	status, body := request(t, app, "GET", "/api/v1/admin/settings", nil, user.APIKey.String())
	assert.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, body["data"].([]any))

	status, body = request(t, app, "PUT", "/api/v1/admin/settings/defaults.pagesize", fiber.Map{"value": "250"}, user.APIKey.String())
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "250", body["data"].(map[string]any)["value"])

	status, body = request(t, app, "GET", "/api/v1/admin/settings/defaults.pagesize", nil, user.APIKey.String())
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "250", body["data"].(map[string]any)["value"])

	status, _ = request(t, app, "GET", "/api/v1/admin/settings/no.such.key", nil, user.APIKey.String())
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestMigrationStatusEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	user := test.CreateTestUser(t, db, "harry", "harry@example.com", testPassword)
	require.NoError(t, db.Model(user).Update("is_admin", true).Error)

	status, body := request(t, app, "GET", "/api/v1/admin/migrations", nil, user.APIKey.String())
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(0), body["pending"])
	assert.NotEmpty(t, body["data"].([]any))
}

func itoa(id int32) string {
	return strconv.FormatInt(int64(id), 10)
}
