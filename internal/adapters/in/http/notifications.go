package http

import (
	"net/http"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"

	"github.com/labstack/echo/v4"
)

// CreateNotificationRequest schedules delivery when SendAt is in the future.
type CreateNotificationRequest struct {
	UserID  kernel.UUID          `json:"userId"`
	Message string               `json:"message"`
	Type    notification.Type    `json:"type"`
	Channel notification.Channel `json:"channel"`
	SendAt  *time.Time           `json:"sendAt,omitempty"`
}

type UpdateNotificationStatusRequest struct {
	Status notification.Status `json:"status"`
}

type DispatchResponse struct {
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// CreateNotification handles POST /api/v1/notifications.
func (s *Server) CreateNotification(ctx echo.Context) error {
	var req CreateNotificationRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateNotificationCommand(req.UserID, req.Message, req.Type, req.Channel, req.SendAt)
	if err != nil {
		return err
	}

	if err := s.h.CreateNotification.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, IDResponse{ID: cmd.NotificationID().String()})
}

// ListUserNotifications handles GET /api/v1/users/{userId}/notifications.
func (s *Server) ListUserNotifications(ctx echo.Context) error {
	userID, err := uuidParam(ctx, "userId")
	if err != nil {
		return err
	}

	query, err := queries.NewListUserNotificationsQuery(userID)
	if err != nil {
		return err
	}

	list, err := s.h.ListUserNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, list)
}

// UpdateNotificationStatus handles PATCH /api/v1/notifications/{notificationId}/status.
func (s *Server) UpdateNotificationStatus(ctx echo.Context) error {
	notificationID, err := uuidParam(ctx, "notificationId")
	if err != nil {
		return err
	}

	var req UpdateNotificationStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateNotificationStatusCommand(notificationID, req.Status)
	if err != nil {
		return err
	}

	if err := s.h.UpdateNotificationStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DispatchNotifications handles POST /api/v1/notifications/dispatch. It runs
// the same pass as the scheduled dispatch job.
func (s *Server) DispatchNotifications(ctx echo.Context) error {
	result, err := s.h.ProcessDueNotifications.Handle(
		ctx.Request().Context(),
		commands.NewProcessDueNotificationsCommand(),
	)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, DispatchResponse{
		Sent:    result.Sent,
		Failed:  result.Failed,
		Skipped: result.Skipped,
	})
}
