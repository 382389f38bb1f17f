// Package notifier holds the transports that deliver notifications: a log
// sender for local runs, a RabbitMQ publisher and a Kafka writer. Every
// transport ships the same JSON Message.
package notifier

import (
	"encoding/json"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
)

const contentType = "application/json"

// Message is the wire form of a notification.
type Message struct {
	ID        kernel.UUID          `json:"id"`
	UserID    kernel.UUID          `json:"userId"`
	Type      notification.Type    `json:"type"`
	Channel   notification.Channel `json:"channel"`
	Message   string               `json:"message"`
	SendAt    *time.Time           `json:"sendAt,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
}

func NewMessage(n *notification.Notification) Message {
	return Message{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Type:      n.Type(),
		Channel:   n.Channel(),
		Message:   n.Message(),
		SendAt:    n.SendAt(),
		CreatedAt: n.CreatedAt(),
	}
}

func encode(n *notification.Notification) ([]byte, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(NewMessage(n))
	if err != nil {
		return nil, fmt.Errorf("marshal notification %s: %w", n.ID(), err)
	}
	return body, nil
}
