package notification

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification")

// Notification is a message addressed to a user about a business event.
type Notification struct {
	id        kernel.UUID
	userID    kernel.UUID
	message   string
	kind      Type
	channel   Channel
	status    Status
	sendAt    *time.Time
	sentAt    *time.Time
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewNotification creates a notification at now. It starts SCHEDULED when sendAt
// is strictly after now, otherwise PENDING.
func NewNotification(
	id, userID kernel.UUID,
	message string,
	kind Type,
	channel Channel,
	sendAt *time.Time,
	now time.Time,
) (*Notification, error) {
	status := Pending
	if sendAt != nil && sendAt.After(now) {
		status = Scheduled
	}
	return RestoreNotification(id, userID, message, kind, channel, status, sendAt, nil, now)
}

// RestoreNotification rehydrates a notification from persistence.
func RestoreNotification(
	id, userID kernel.UUID,
	message string,
	kind Type,
	channel Channel,
	status Status,
	sendAt, sentAt *time.Time,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		sendAt:    copyTime(sendAt),
		sentAt:    copyTime(sentAt),
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		n.setMessage(message),
		kind.Validate(),
		channel.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	n.id = id
	n.userID = userID
	n.kind = kind
	n.channel = channel
	n.status = status

	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

func (n *Notification) ID() kernel.UUID      { return n.id }
func (n *Notification) UserID() kernel.UUID  { return n.userID }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) Type() Type           { return n.kind }
func (n *Notification) Channel() Channel     { return n.channel }
func (n *Notification) Status() Status       { return n.status }
func (n *Notification) SendAt() *time.Time   { return copyTime(n.sendAt) }
func (n *Notification) SentAt() *time.Time   { return copyTime(n.sentAt) }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

func (n *Notification) IsScheduled() bool {
	return n.status == Scheduled
}

// IsDue reports whether a scheduled notification should be delivered at now.
func (n *Notification) IsDue(now time.Time) bool {
	return n.status == Scheduled && n.sendAt != nil && !n.sendAt.After(now)
}

// RecordDelivery stores the outcome of a delivery attempt made at now.
func (n *Notification) RecordDelivery(sendErr error, now time.Time) {
	if sendErr != nil {
		n.status = Failed
		return
	}
	n.MarkSent(now)
}

func (n *Notification) MarkSent(at time.Time) {
	n.status = Sent
	n.sentAt = &at
}

// SetStatus overwrites the status without transition checks. SENT stamps sentAt.
func (n *Notification) SetStatus(status Status, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == Sent {
		n.MarkSent(now)
		return nil
	}
	n.status = status
	return nil
}

func (n *Notification) setMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
