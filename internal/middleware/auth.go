package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"melodee/internal/models"
	"melodee/internal/services"
)

// AuthMiddleware guards operational endpoints with per-user API keys.
type AuthMiddleware struct {
	repo *services.Repository
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(repo *services.Repository) *AuthMiddleware {
	return &AuthMiddleware{repo: repo}
}

// APIKeyAuth validates the X-Api-Key header against the users table and
// stores the authenticated user in the request context.
func (m *AuthMiddleware) APIKeyAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get("X-Api-Key")
		if raw == "" {
			return unauthorized(c, "API key required")
		}

		apiKey, err := uuid.Parse(raw)
		if err != nil {
			return unauthorized(c, "Invalid API key")
		}

		user, err := m.repo.GetUserByAPIKey(c.Context(), apiKey)
		if err != nil {
			return unauthorized(c, "Invalid API key")
		}
		if user.IsLocked {
			return unauthorized(c, "Account locked")
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// AdminOnly middleware restricts access to admin users only
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := GetUserFromContext(c)
		if !ok || !user.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":   "Forbidden",
				"message": "Admin access required",
			})
		}
		return c.Next()
	}
}

// GetUserFromContext retrieves the authenticated user from the request context
func GetUserFromContext(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("user").(*models.User)
	return user, ok
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":   "Unauthorized",
		"message": message,
	})
}
