package utils

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorReply(t *testing.T, handler fiber.Handler) (int, string) {
	t.Helper()

	app := fiber.New()
	app.Get("/err", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/err", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestSendError(t *testing.T) {
	status, body := errorReply(t, func(c *fiber.Ctx) error {
		return SendError(c, 404, "Resource not found")
	})

	assert.Equal(t, 404, status)
	assert.Contains(t, body, "Resource not found")
	assert.Contains(t, body, "Not Found")
}

func TestSendValidationError(t *testing.T) {
	status, body := errorReply(t, func(c *fiber.Ctx) error {
		return SendValidationError(c, "password", "must contain uppercase letter")
	})

	assert.Equal(t, 422, status)
	assert.Contains(t, body, "Validation failed")
	assert.Contains(t, body, "password: must contain uppercase letter")
}

func TestSendNotFoundError(t *testing.T) {
	status, body := errorReply(t, func(c *fiber.Ctx) error {
		return SendNotFoundError(c, "User")
	})

	assert.Equal(t, 404, status)
	assert.Contains(t, body, "Resource not found")
	assert.Contains(t, body, "User does not exist")
}

func TestSendUnauthorizedError(t *testing.T) {
	status, body := errorReply(t, func(c *fiber.Ctx) error {
		return SendUnauthorizedError(c, "Invalid credentials")
	})

	assert.Equal(t, 401, status)
	assert.Contains(t, body, "Unauthorized")
	assert.Contains(t, body, "Invalid credentials")
}

func TestSendForbiddenError(t *testing.T) {
	status, body := errorReply(t, func(c *fiber.Ctx) error {
		return SendForbiddenError(c, "Access denied")
	})

	assert.Equal(t, 403, status)
	assert.Contains(t, body, "Forbidden")
	assert.Contains(t, body, "Access denied")
}

func TestSendInternalServerError(t *testing.T) {
	status, body := errorReply(t, func(c *fiber.Ctx) error {
		return SendInternalServerError(c, "Database connection failed")
	})

	assert.Equal(t, 500, status)
	assert.Contains(t, body, "Internal server error")
	assert.Contains(t, body, "Database connection failed")
}
