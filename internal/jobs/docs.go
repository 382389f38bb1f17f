// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - delivers SCHEDULED notifications whose send time has passed
// 2. OrderBacklogJob - reports how many orders are still open, grouped by status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(processDueHandler, jobs.DefaultDispatchSchedule, uncompletedOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch schedule is configurable and defaults to once a minute. The
// backlog report runs every five minutes.
//
// # Error Handling
//
// Jobs never stop on a failed run. Errors are logged and the next tick tries again.
// Failed job starts will stop any already running jobs.
package jobs
