package notifier

import (
	"context"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/notification"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 3 * time.Second

// AMQPChannel is the part of *amqp.Channel the sender uses.
type AMQPChannel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPSender publishes notifications to a durable queue through the default
// exchange. The channel name travels in a header so consumers can route
// push, sms and email without decoding the body.
type AMQPSender struct {
	ch    AMQPChannel
	queue string
}

// NewAMQPSender declares the queue so publishing never fails on missing infra.
func NewAMQPSender(ch AMQPChannel, queue string) (*AMQPSender, error) {
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare %s: %w", queue, err)
	}
	return &AMQPSender{ch: ch, queue: queue}, nil
}

func (s *AMQPSender) Send(ctx context.Context, n *notification.Notification) error {
	body, err := encode(n)
	if err != nil {
		return err
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return s.ch.PublishWithContext(
		pubCtx,
		"",      // default exchange
		s.queue, // queue name as routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  contentType,
			DeliveryMode: amqp.Persistent,
			MessageId:    n.ID().String(),
			Type:         n.Type().String(),
			Timestamp:    n.CreatedAt(),
			Headers:      amqp.Table{"channel": n.Channel().String()},
			Body:         body,
		},
	)
}

// DialAMQP opens a connection and a channel. close releases both.
func DialAMQP(url string) (*amqp.Channel, func() error, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("open channel: %w", err)
	}
	closeFn := func() error {
		_ = ch.Close()
		return conn.Close()
	}
	return ch, closeFn, nil
}
