package jobs

import (
	"context"
	"time"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/draft"
	"orderdesk/internal/pkg/logger"
	"orderdesk/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const dailyDraftsJobName = "daily_drafts"

// DefaultDailyDraftsSchedule runs the generator at 06:00 every day.
const DefaultDailyDraftsSchedule = "0 0 6 * * *"

// DraftGenerator produces today's draft batch.
type DraftGenerator interface {
	Handle(ctx context.Context, cmd commands.GenerateDailyDraftsCommand) ([]*draft.DraftOrder, error)
}

// DailyDraftsJob prepares the day's draft orders for every client and product
// on a cron schedule with seconds precision.
type DailyDraftsJob struct {
	generator DraftGenerator
	schedule  string
	timeout   time.Duration
	cron      *cron.Cron
	metrics   *metrics.CronJobMetrics
	logger    zerolog.Logger
}

func NewDailyDraftsJob(
	generator DraftGenerator,
	schedule string,
	location *time.Location,
	m *metrics.CronJobMetrics,
	log zerolog.Logger,
) *DailyDraftsJob {
	if schedule == "" {
		schedule = DefaultDailyDraftsSchedule
	}
	if location == nil {
		location = time.Local
	}
	return &DailyDraftsJob{
		generator: generator,
		schedule:  schedule,
		timeout:   time.Minute,
		cron:      cron.New(cron.WithSeconds(), cron.WithLocation(location)),
		metrics:   m,
		logger:    logger.Component(log, "daily_drafts_job"),
	}
}

// Start registers the schedule and starts the scheduler. An invalid cron
// expression is returned as an error.
func (j *DailyDraftsJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Str("schedule", j.schedule).Msg("daily drafts job started")
	return nil
}

// Run generates the batch once. Called by the scheduler; safe to call directly.
func (j *DailyDraftsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	started := time.Now()
	batch, err := j.generator.Handle(ctx, commands.NewGenerateDailyDraftsFromStoreCommand())
	j.metrics.ObserveDuration(dailyDraftsJobName, time.Since(started))
	if err != nil {
		j.metrics.IncFailure(dailyDraftsJobName)
		j.logger.Error().Err(err).Msg("daily drafts job failed")
		return
	}

	j.metrics.IncSuccess(dailyDraftsJobName)
	j.logger.Debug().Int("drafts", len(batch)).Msg("daily drafts job finished")
}

// Stop stops the scheduler and waits for a running generation to finish.
func (j *DailyDraftsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("daily drafts job stopped")
}
