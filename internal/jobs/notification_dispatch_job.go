package jobs

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultDispatchSchedule runs the dispatcher once a minute.
const DefaultDispatchSchedule = "@every 60s"

type dueNotificationsHandler interface {
	Handle(ctx context.Context, cmd commands.ProcessDueNotificationsCommand) (commands.ProcessDueResult, error)
}

// NotificationDispatchJob delivers scheduled notifications whose send time has come.
type NotificationDispatchJob struct {
	handler  dueNotificationsHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewNotificationDispatchJob accepts a six-field cron spec with seconds first
// or a descriptor such as "@every 30s". An empty schedule means
// DefaultDispatchSchedule.
func NewNotificationDispatchJob(
	handler dueNotificationsHandler,
	schedule string,
	logger *slog.Logger,
) *NotificationDispatchJob {
	if schedule == "" {
		schedule = DefaultDispatchSchedule
	}
	return &NotificationDispatchJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "notification_dispatch_job"),
	}
}

func (j *NotificationDispatchJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Notification dispatch job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single dispatch pass. Failures are logged; the next tick retries.
func (j *NotificationDispatchJob) RunOnce(ctx context.Context) {
	result, err := j.handler.Handle(ctx, commands.NewProcessDueNotificationsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification dispatch failed", "error", err)
	}
	if result.Sent+result.Failed+result.Skipped == 0 {
		return
	}
	j.logger.InfoContext(ctx, "Scheduled notifications processed",
		"sent", result.Sent,
		"failed", result.Failed,
		"skipped", result.Skipped,
	)
}

// Stop waits for a running pass to finish.
func (j *NotificationDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Notification dispatch job stopped")
}
