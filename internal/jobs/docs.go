// Package jobs provides scheduled background tasks for the quoting service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// QuoteCacheEvictionJob sweeps expired entries out of the quote cache.
// It runs on CACHE_EVICTION_SCHEDULE, every five minutes by default.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(evictHandler, cfg.CacheEvictionSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick. An invalid
// schedule fails StartAll.
package jobs
