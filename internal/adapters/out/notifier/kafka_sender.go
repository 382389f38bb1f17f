package notifier

import (
	"context"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/notification"

	"github.com/segmentio/kafka-go"
)

// KafkaWriter is the part of *kafka.Writer the sender uses.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaSender appends notifications to a topic. Messages are keyed by user so
// one user's notifications stay in order on a single partition.
type KafkaSender struct {
	writer KafkaWriter
}

func NewKafkaSender(writer KafkaWriter) *KafkaSender {
	return &KafkaSender{writer: writer}
}

func (s *KafkaSender) Send(ctx context.Context, n *notification.Notification) error {
	body, err := encode(n)
	if err != nil {
		return err
	}

	err = s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(n.UserID().String()),
		Value: body,
		Time:  n.CreatedAt(),
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte(contentType)},
			{Key: "type", Value: []byte(n.Type().String())},
			{Key: "channel", Value: []byte(n.Channel().String())},
		},
	})
	if err != nil {
		return fmt.Errorf("kafka: write notification %s: %w", n.ID(), err)
	}
	return nil
}

// NewKafkaWriter returns a synchronous writer for topic. Send waits for the
// leader acknowledgement so a delivery error reaches the caller.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: true,
	}
}
