package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"melodee/internal/models"
	"melodee/internal/services"
	"melodee/internal/utils"
)

// LibraryHandler exposes library listings and scan history for operators.
type LibraryHandler struct {
	repo *services.Repository
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(repo *services.Repository) *LibraryHandler {
	return &LibraryHandler{repo: repo}
}

// ListLibraries returns all libraries ordered by sort order
func (h *LibraryHandler) ListLibraries(c *fiber.Ctx) error {
	libraries, err := h.repo.ListLibraries(c.Context())
	if err != nil {
		return utils.SendInternalServerError(c, "Failed to load libraries")
	}

	return c.JSON(fiber.Map{"data": libraries})
}

// GetLibrary returns a single library by id
func (h *LibraryHandler) GetLibrary(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, http.StatusBadRequest, "Invalid library id")
	}

	library, err := h.repo.GetLibraryByID(c.Context(), int32(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.SendNotFoundError(c, "library")
		}
		return utils.SendInternalServerError(c, "Failed to load library")
	}

	return c.JSON(fiber.Map{"data": library})
}

// GetScanHistory returns the most recent scan history rows for a library
func (h *LibraryHandler) GetScanHistory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, http.StatusBadRequest, "Invalid library id")
	}

	limit := c.QueryInt("limit", 25)
	histories, err := h.repo.LibraryScanHistories(c.Context(), int32(id), limit)
	if err != nil {
		return utils.SendInternalServerError(c, "Failed to load scan history")
	}

	return c.JSON(fiber.Map{"data": histories})
}

// AppendScanHistory records a completed scan for a library and advances
// the library's last scan timestamp.
func (h *LibraryHandler) AppendScanHistory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, http.StatusBadRequest, "Invalid library id")
	}

	var req struct {
		ForArtistID       *int32  `json:"for_artist_id"`
		ForAlbumID        *int32  `json:"for_album_id"`
		FoundArtistsCount int32   `json:"found_artists_count"`
		FoundAlbumsCount  int32   `json:"found_albums_count"`
		FoundSongsCount   int32   `json:"found_songs_count"`
		DurationInMs      float64 `json:"duration_in_ms"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, http.StatusBadRequest, "Invalid request body")
	}

	history := &models.LibraryScanHistory{
		LibraryID:         int32(id),
		ForArtistID:       req.ForArtistID,
		ForAlbumID:        req.ForAlbumID,
		FoundArtistsCount: req.FoundArtistsCount,
		FoundAlbumsCount:  req.FoundAlbumsCount,
		FoundSongsCount:   req.FoundSongsCount,
		DurationInMs:      req.DurationInMs,
	}
	if err := h.repo.AppendLibraryScanHistory(c.Context(), history); err != nil {
		return utils.SendInternalServerError(c, "Failed to record scan history")
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": history})
}
