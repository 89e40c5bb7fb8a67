package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"melodee/internal/models"
	"melodee/internal/services"
	"melodee/internal/utils"
)

// SettingsHandler exposes the settings catalog for operators.
type SettingsHandler struct {
	settings *services.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settings *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetSettings retrieves all settings, optionally filtered by category
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	var (
		settings []models.Setting
		err      error
	)

	if category := c.QueryInt("category", 0); category > 0 {
		settings, err = h.settings.ByCategory(c.Context(), models.SettingCategory(category))
	} else {
		settings, err = h.settings.All(c.Context())
	}
	if err != nil {
		return utils.SendInternalServerError(c, "Failed to load settings")
	}

	return c.JSON(fiber.Map{"data": settings})
}

// GetSetting retrieves a single setting by key
func (h *SettingsHandler) GetSetting(c *fiber.Ctx) error {
	setting, err := h.settings.Get(c.Context(), c.Params("key"))
	if err != nil {
		if errors.Is(err, services.ErrSettingNotFound) {
			return utils.SendNotFoundError(c, "setting "+c.Params("key"))
		}
		return utils.SendInternalServerError(c, "Failed to load setting")
	}

	return c.JSON(fiber.Map{"data": setting})
}

// UpdateSetting updates a single setting value by key
func (h *SettingsHandler) UpdateSetting(c *fiber.Ctx) error {
	var req struct {
		Value string `json:"value"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, http.StatusBadRequest, "Invalid request body")
	}

	key := c.Params("key")
	if err := h.settings.Set(c.Context(), key, req.Value); err != nil {
		return utils.SendInternalServerError(c, "Failed to update setting")
	}

	setting, err := h.settings.Get(c.Context(), key)
	if err != nil {
		return utils.SendInternalServerError(c, "Failed to load setting")
	}

	return c.JSON(fiber.Map{"status": "ok", "data": setting})
}

// ExportSettings returns the full settings catalog as a YAML document.
func (h *SettingsHandler) ExportSettings(c *fiber.Ctx) error {
	data, err := h.settings.ExportYAML(c.Context())
	if err != nil {
		return utils.SendInternalServerError(c, "Failed to export settings")
	}

	c.Set(fiber.HeaderContentType, "application/yaml")
	return c.Send(data)
}

// ImportSettings applies a YAML document of key/value pairs to the catalog.
func (h *SettingsHandler) ImportSettings(c *fiber.Ctx) error {
	applied, err := h.settings.ImportYAML(c.Context(), c.Body())
	if err != nil {
		return utils.SendError(c, http.StatusBadRequest, "Invalid settings document")
	}

	return c.JSON(fiber.Map{"status": "ok", "applied": applied})
}
