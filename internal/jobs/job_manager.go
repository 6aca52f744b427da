package jobs

import (
	"fmt"
	"log/slog"

	"freight/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	evictionJob *QuoteCacheEvictionJob
}

// NewJobManager creates a job manager with every background job wired.
func NewJobManager(
	evictHandler commands.EvictExpiredQuotesCommandHandler,
	evictionSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		evictionJob: NewQuoteCacheEvictionJob(evictHandler, evictionSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.evictionJob.Start(); err != nil {
		return fmt.Errorf("failed to start quote cache eviction job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.evictionJob.Stop()
}
