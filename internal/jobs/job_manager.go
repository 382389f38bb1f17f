package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatchJob *NotificationDispatchJob
	backlogJob  *OrderBacklogJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the use case handlers as dependencies to wire up the job execution.
func NewJobManager(
	dueHandler dueNotificationsHandler,
	dispatchSchedule string,
	backlogHandler uncompletedOrdersHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dispatchJob: NewNotificationDispatchJob(dueHandler, dispatchSchedule, logger),
		backlogJob:  NewOrderBacklogJob(backlogHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification dispatch job: %w", err)
	}

	if err := jm.backlogJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dispatchJob.Stop()
		return fmt.Errorf("failed to start order backlog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.backlogJob.Stop()
	jm.dispatchJob.Stop()
}
