package notifier

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/notification"
)

// LogSender writes notifications to the log instead of a broker. It never fails
// for a valid notification.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger.With("component", "notifier")}
}

func (s *LogSender) Send(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "notification delivered",
		"notificationId", n.ID().String(),
		"userId", n.UserID().String(),
		"type", n.Type().String(),
		"channel", n.Channel().String(),
		"message", n.Message(),
	)
	return nil
}
