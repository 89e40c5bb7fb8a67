package jobs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"melodee/internal/services"
)

// Task types for scheduled maintenance jobs.
const (
	TaskArtistHousekeeping       = "maintenance:artist-housekeeping"
	TaskLibraryProcess           = "maintenance:library-process"
	TaskSearchEngineHousekeeping = "maintenance:search-engine-housekeeping"
)

// MaintenanceQueue is the asynq queue maintenance tasks run on.
const MaintenanceQueue = "maintenance"

// scheduledTask binds a settings key holding a cron expression to the task
// type fired on that schedule.
type scheduledTask struct {
	settingKey string
	taskType   string
}

func scheduledTasks() []scheduledTask {
	return []scheduledTask{
		{"jobs.artistHousekeeping.cronExpression", TaskArtistHousekeeping},
		{"jobs.libraryProcess.cronExpression", TaskLibraryProcess},
		{"jobs.artistSearchEngineHousekeeping.cronExpression", TaskSearchEngineHousekeeping},
	}
}

// NormalizeCronExpression converts a stored Quartz-style expression into the
// six-field seconds form the scheduler parses. A trailing year field is
// dropped and "?" placeholders become "*".
func NormalizeCronExpression(expr string) string {
	fields := strings.Fields(expr)
	if len(fields) == 7 {
		fields = fields[:6]
	}
	for i, field := range fields {
		if field == "?" {
			fields[i] = "*"
		}
	}
	return strings.Join(fields, " ")
}

// Scheduler reads job cron expressions from settings and enqueues the
// corresponding maintenance tasks when they fire.
type Scheduler struct {
	cron     *cron.Cron
	client   *asynq.Client
	settings *services.SettingsService
	logger   zerolog.Logger
}

// NewScheduler creates a scheduler over an asynq client.
func NewScheduler(client *asynq.Client, settings *services.SettingsService, logger zerolog.Logger) *Scheduler {
	parser := cron.NewParser(
		cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)
	return &Scheduler{
		cron:     cron.New(cron.WithParser(parser)),
		client:   client,
		settings: settings,
		logger:   logger.With().Str("component", "scheduler").Logger(),
	}
}

// Start registers every configured job and starts the cron loop. A job whose
// setting is absent is skipped; a malformed expression is an error.
func (s *Scheduler) Start(ctx context.Context) error {
	for _, task := range scheduledTasks() {
		expr, err := s.settings.GetString(ctx, task.settingKey)
		if err != nil {
			if errors.Is(err, services.ErrSettingNotFound) {
				s.logger.Warn().Str("key", task.settingKey).Msg("job schedule not configured, skipping")
				continue
			}
			return err
		}

		taskType := task.taskType
		_, err = s.cron.AddFunc(NormalizeCronExpression(expr), func() {
			s.enqueue(taskType)
		})
		if err != nil {
			return fmt.Errorf("invalid cron expression for %s: %w", task.settingKey, err)
		}

		s.logger.Info().
			Str("task", taskType).
			Str("schedule", expr).
			Msg("registered scheduled job")
	}

	s.cron.Start()
	return nil
}

func (s *Scheduler) enqueue(taskType string) {
	info, err := s.client.Enqueue(asynq.NewTask(taskType, nil), asynq.Queue(MaintenanceQueue))
	if err != nil {
		s.logger.Error().Err(err).Str("task", taskType).Msg("failed to enqueue task")
		return
	}
	s.logger.Debug().Str("task", taskType).Str("id", info.ID).Msg("enqueued task")
}

// Stop halts the cron loop and waits for in-flight enqueues.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
