package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"melodee/internal/middleware"
	"melodee/internal/services"
	"melodee/internal/utils"
)

// ReactionsHandler handles per-user stars, hates, ratings, and play counts.
type ReactionsHandler struct {
	repo *services.Repository
}

// NewReactionsHandler creates a new reactions handler
func NewReactionsHandler(repo *services.Repository) *ReactionsHandler {
	return &ReactionsHandler{repo: repo}
}

type reactionRequest struct {
	Starred *bool  `json:"starred"`
	Hated   *bool  `json:"hated"`
	Rating  *int32 `json:"rating"`
}

// ReactTo returns a handler that applies a star, hate, or rating change for
// the authenticated user against the given entity kind ("artists", "albums",
// or "songs"). Exactly one field must be present in the request body.
func (h *ReactionsHandler) ReactTo(entity string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			return utils.SendUnauthorizedError(c, "Authentication required")
		}

		id, err := c.ParamsInt("id")
		if err != nil {
			return utils.SendError(c, http.StatusBadRequest, "Invalid id")
		}

		var req reactionRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		}
		if countFields(req) != 1 {
			return utils.SendError(c, http.StatusBadRequest, "Provide exactly one of starred, hated, or rating")
		}

		reaction, err := h.apply(c, entity, user.ID, int32(id), req)
		if err != nil {
			if strings.Contains(err.Error(), "rating must be") {
				return utils.SendValidationError(c, "rating", err.Error())
			}
			return utils.SendInternalServerError(c, "Failed to update reaction")
		}

		return c.JSON(fiber.Map{"data": reaction})
	}
}

func (h *ReactionsHandler) apply(c *fiber.Ctx, entity string, userID, entityID int32, req reactionRequest) (any, error) {
	ctx := c.Context()
	switch entity {
	case "artists":
		switch {
		case req.Starred != nil:
			return h.repo.SetArtistStarred(ctx, userID, entityID, *req.Starred)
		case req.Hated != nil:
			return h.repo.SetArtistHated(ctx, userID, entityID, *req.Hated)
		default:
			return h.repo.SetArtistRating(ctx, userID, entityID, *req.Rating)
		}
	case "albums":
		switch {
		case req.Starred != nil:
			return h.repo.SetAlbumStarred(ctx, userID, entityID, *req.Starred)
		case req.Hated != nil:
			return h.repo.SetAlbumHated(ctx, userID, entityID, *req.Hated)
		default:
			return h.repo.SetAlbumRating(ctx, userID, entityID, *req.Rating)
		}
	default:
		switch {
		case req.Starred != nil:
			return h.repo.SetSongStarred(ctx, userID, entityID, *req.Starred)
		case req.Hated != nil:
			return h.repo.SetSongHated(ctx, userID, entityID, *req.Hated)
		default:
			return h.repo.SetSongRating(ctx, userID, entityID, *req.Rating)
		}
	}
}

// RecordPlay increments the authenticated user's play count for a song
func (h *ReactionsHandler) RecordPlay(c *fiber.Ctx) error {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		return utils.SendUnauthorizedError(c, "Authentication required")
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, http.StatusBadRequest, "Invalid song id")
	}

	reaction, err := h.repo.RecordSongPlay(c.Context(), user.ID, int32(id))
	if err != nil {
		return utils.SendInternalServerError(c, "Failed to record play")
	}

	return c.JSON(fiber.Map{"data": reaction})
}

func countFields(req reactionRequest) int {
	n := 0
	if req.Starred != nil {
		n++
	}
	if req.Hated != nil {
		n++
	}
	if req.Rating != nil {
		n++
	}
	return n
}
