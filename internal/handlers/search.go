package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"melodee/internal/middleware"
	"melodee/internal/models"
	"melodee/internal/pagination"
	"melodee/internal/services"
	"melodee/internal/utils"
)

// SearchHandler handles catalog search requests
type SearchHandler struct {
	repo   *services.Repository
	logger zerolog.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(repo *services.Repository, logger zerolog.Logger) *SearchHandler {
	return &SearchHandler{repo: repo, logger: logger}
}

// Search performs a normalized search across artists, albums, and songs
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return utils.SendError(c, http.StatusBadRequest, "Search query is required")
	}

	entityType := c.Query("type", "any")
	page, pageSize := pagination.GetPaginationParams(c, 1, 0)
	started := time.Now()

	var (
		artistTotal, albumTotal, songTotal int64
		payload                            fiber.Map
		total                              int64
	)

	switch entityType {
	case "artist", "artists":
		artists, count, err := h.repo.SearchArtists(c.Context(), query, page, pageSize)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to search artists")
		}
		artistTotal, total = count, count
		payload = fiber.Map{"artists": artists}

	case "album", "albums":
		albums, count, err := h.repo.SearchAlbums(c.Context(), query, page, pageSize)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to search albums")
		}
		albumTotal, total = count, count
		payload = fiber.Map{"albums": albums}

	case "song", "songs":
		songs, count, err := h.repo.SearchSongs(c.Context(), query, page, pageSize)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to search songs")
		}
		songTotal, total = count, count
		payload = fiber.Map{"songs": songs}

	case "any", "all":
		artists, count, err := h.repo.SearchArtists(c.Context(), query, page, pageSize)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to search artists")
		}
		artistTotal = count

		albums, count, err := h.repo.SearchAlbums(c.Context(), query, page, pageSize)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to search albums")
		}
		albumTotal = count

		songs, count, err := h.repo.SearchSongs(c.Context(), query, page, pageSize)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to search songs")
		}
		songTotal = count

		total = artistTotal + albumTotal + songTotal
		payload = fiber.Map{"artists": artists, "albums": albums, "songs": songs}

	default:
		return utils.SendError(c, http.StatusBadRequest, "Invalid search type. Use 'artist', 'album', 'song', or 'any'")
	}

	h.recordHistory(c, query, started, artistTotal, albumTotal, songTotal)

	if pageSize <= 0 {
		pageSize = services.DefaultPageSize
	}
	return c.JSON(fiber.Map{
		"data":       payload,
		"pagination": pagination.Calculate(total, page, pageSize),
	})
}

// recordHistory appends a search_history row for the authenticated caller.
// History failures are logged but never fail the search response.
func (h *SearchHandler) recordHistory(c *fiber.Ctx, query string, started time.Time, artists, albums, songs int64) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		return
	}

	userAgent := c.Get(fiber.HeaderUserAgent)
	history := &models.SearchHistory{
		ByUserID:           user.ID,
		SearchQuery:        &query,
		FoundArtistsCount:  int32(artists),
		FoundAlbumsCount:   int32(albums),
		FoundSongsCount:    int32(songs),
		SearchDurationInMs: float64(time.Since(started).Microseconds()) / 1000.0,
	}
	if userAgent != "" {
		history.ByUserAgent = &userAgent
	}

	if err := h.repo.RecordSearchHistory(c.Context(), history); err != nil {
		h.logger.Warn().Err(err).Str("query", query).Msg("failed to record search history")
	}
}
