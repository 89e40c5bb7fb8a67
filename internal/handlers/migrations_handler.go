package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"melodee/internal/database"
	"melodee/internal/utils"
)

// MigrationsHandler reports schema migration state for operators.
type MigrationsHandler struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewMigrationsHandler creates a new migrations handler
func NewMigrationsHandler(db *gorm.DB, logger zerolog.Logger) *MigrationsHandler {
	return &MigrationsHandler{db: db, logger: logger}
}

// GetStatus returns every registry entry with its applied state
func (h *MigrationsHandler) GetStatus(c *fiber.Ctx) error {
	statuses, err := database.NewMigrator(h.db, &h.logger).Status(c.Context())
	if err != nil {
		return utils.SendInternalServerError(c, "Failed to load migration status")
	}

	applied := 0
	for _, s := range statuses {
		if s.Applied {
			applied++
		}
	}

	return c.JSON(fiber.Map{
		"data":    statuses,
		"applied": applied,
		"pending": len(statuses) - applied,
	})
}
