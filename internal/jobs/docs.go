// Package jobs provides scheduled background tasks.
//
// Jobs are cron-based, using github.com/robfig/cron/v3, and are managed
// through JobManager which starts and stops them as a group:
//
//	jobManager := jobs.NewJobManager(purgeHandler, retention, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The single job today is OrderPurgeJob, which runs hourly and deletes
// delivered and cancelled orders older than the configured retention
// window.
package jobs
