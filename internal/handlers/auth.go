package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"melodee/internal/middleware"
	"melodee/internal/services"
	"melodee/internal/utils"
)

// AuthHandler handles credential verification and password changes.
type AuthHandler struct {
	auth *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login verifies credentials and returns the account with its API key.
// Callers use the returned api_key for the X-Api-Key header on guarded routes.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		UserName string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.UserName == "" || req.Password == "" {
		return utils.SendError(c, http.StatusBadRequest, "Username and password are required")
	}

	user, err := h.auth.Login(c.Context(), req.UserName, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return utils.SendUnauthorizedError(c, "Invalid username or password")
		case errors.Is(err, services.ErrUserLocked):
			return utils.SendForbiddenError(c, "Account is locked")
		default:
			return utils.SendInternalServerError(c, "Login failed")
		}
	}

	return c.JSON(fiber.Map{"data": user})
}

// ChangePassword sets a new password for the authenticated user
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		return utils.SendUnauthorizedError(c, "Authentication required")
	}

	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, http.StatusBadRequest, "Invalid request body")
	}

	if err := h.auth.SetPassword(c.Context(), user.ID, req.Password); err != nil {
		return utils.SendValidationError(c, "password", err.Error())
	}

	return c.JSON(fiber.Map{"status": "ok"})
}
