package jobs

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultEvictionSchedule sweeps the quote cache every five minutes.
const DefaultEvictionSchedule = "0 */5 * * * *"

// QuoteCacheEvictionJob periodically removes expired quote cache entries.
type QuoteCacheEvictionJob struct {
	handler  commands.EvictExpiredQuotesCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewQuoteCacheEvictionJob creates an eviction job running on schedule,
// a six-field cron expression with seconds. An empty schedule falls back
// to DefaultEvictionSchedule.
func NewQuoteCacheEvictionJob(
	handler commands.EvictExpiredQuotesCommandHandler,
	schedule string,
	logger *slog.Logger,
) *QuoteCacheEvictionJob {
	if schedule == "" {
		schedule = DefaultEvictionSchedule
	}
	return &QuoteCacheEvictionJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "quote_cache_eviction_job"),
	}
}

// Start registers the sweep and starts the scheduler.
func (j *QuoteCacheEvictionJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Quote cache eviction job started", "schedule", j.schedule)
	return nil
}

// Run performs one sweep. Failures are logged and retried on the next tick.
func (j *QuoteCacheEvictionJob) Run(ctx context.Context) {
	if _, err := j.handler.Handle(ctx, commands.NewEvictExpiredQuotesCommand()); err != nil {
		j.logger.ErrorContext(ctx, "Quote cache eviction failed", "error", err)
	}
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *QuoteCacheEvictionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Quote cache eviction job stopped")
}
