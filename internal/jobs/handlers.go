package jobs

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"melodee/internal/models"
	"melodee/internal/tracing"
)

// searchHistoryRetention is how long search history rows are kept before the
// search engine housekeeping job prunes them.
const searchHistoryRetention = 90 * 24 * time.Hour

// Handlers holds the maintenance task implementations.
type Handlers struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewHandlers creates the maintenance task handlers.
func NewHandlers(db *gorm.DB, logger zerolog.Logger) *Handlers {
	return &Handlers{
		db:     db,
		logger: logger.With().Str("component", "jobs").Logger(),
	}
}

// Mux returns an asynq mux with every maintenance handler registered.
func (h *Handlers) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskArtistHousekeeping, h.HandleArtistHousekeeping)
	mux.HandleFunc(TaskLibraryProcess, h.HandleLibraryProcess)
	mux.HandleFunc(TaskSearchEngineHousekeeping, h.HandleSearchEngineHousekeeping)
	return mux
}

// HandleArtistHousekeeping refreshes the per-artist album and song count
// aggregates from the catalog tables.
func (h *Handlers) HandleArtistHousekeeping(ctx context.Context, t *asynq.Task) error {
	ctx, _, done := tracing.WithTracingContext(ctx, "jobs.artist_housekeeping",
		tracing.JobProcessingTracingAttrs("", MaintenanceQueue, t.Type(), 1)...)
	defer done()

	start := time.Now()
	err := h.db.WithContext(ctx).Exec(`
		UPDATE artists SET
			album_count = (SELECT COUNT(*) FROM albums WHERE albums.artist_id = artists.id),
			song_count = (
				SELECT COUNT(*) FROM songs
				JOIN album_discs ON songs.album_disc_id = album_discs.id
				JOIN albums ON album_discs.album_id = albums.id
				WHERE albums.artist_id = artists.id
			)
	`).Error
	if err != nil {
		err = errors.Wrap(err, "artist housekeeping")
		tracing.SetSpanError(ctx, err)
		return err
	}

	h.logger.Info().
		Dur("duration", time.Since(start)).
		Msg("artist housekeeping completed")
	return nil
}

// HandleLibraryProcess refreshes the per-library catalog count aggregates.
func (h *Handlers) HandleLibraryProcess(ctx context.Context, t *asynq.Task) error {
	ctx, _, done := tracing.WithTracingContext(ctx, "jobs.library_process",
		tracing.JobProcessingTracingAttrs("", MaintenanceQueue, t.Type(), 1)...)
	defer done()

	start := time.Now()
	err := h.db.WithContext(ctx).Exec(`
		UPDATE libraries SET
			artist_count = (SELECT COUNT(*) FROM artists WHERE artists.library_id = libraries.id),
			album_count = (
				SELECT COUNT(*) FROM albums
				JOIN artists ON albums.artist_id = artists.id
				WHERE artists.library_id = libraries.id
			),
			song_count = (
				SELECT COUNT(*) FROM songs
				JOIN album_discs ON songs.album_disc_id = album_discs.id
				JOIN albums ON album_discs.album_id = albums.id
				JOIN artists ON albums.artist_id = artists.id
				WHERE artists.library_id = libraries.id
			)
	`).Error
	if err != nil {
		err = errors.Wrap(err, "library process")
		tracing.SetSpanError(ctx, err)
		return err
	}

	h.logger.Info().
		Dur("duration", time.Since(start)).
		Msg("library process completed")
	return nil
}

// HandleSearchEngineHousekeeping prunes search history rows past retention.
func (h *Handlers) HandleSearchEngineHousekeeping(ctx context.Context, t *asynq.Task) error {
	ctx, _, done := tracing.WithTracingContext(ctx, "jobs.search_engine_housekeeping",
		tracing.JobProcessingTracingAttrs("", MaintenanceQueue, t.Type(), 1)...)
	defer done()

	cutoff := time.Now().UTC().Add(-searchHistoryRetention)
	result := h.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&models.SearchHistory{})
	if result.Error != nil {
		err := errors.Wrap(result.Error, "search history housekeeping")
		tracing.SetSpanError(ctx, err)
		return err
	}

	h.logger.Info().
		Int64("pruned", result.RowsAffected).
		Time("cutoff", cutoff).
		Msg("search history housekeeping completed")
	return nil
}
