package cmd

import (
	"fmt"
	"log/slog"

	"fooddelivery/internal/adapters/out/notifier"
	"fooddelivery/internal/core/ports"
)

// NewNotificationSender builds the transport named by cfg.NotificationTransport.
// The returned close function releases broker connections and is never nil.
func NewNotificationSender(cfg Config, logger *slog.Logger) (ports.NotificationSender, func() error, error) {
	noop := func() error { return nil }

	switch cfg.NotificationTransport {
	case TransportLog, "":
		return notifier.NewLogSender(logger), noop, nil

	case TransportAMQP:
		ch, closeFn, err := notifier.DialAMQP(cfg.AMQPURL)
		if err != nil {
			return nil, noop, err
		}
		sender, err := notifier.NewAMQPSender(ch, cfg.AMQPQueue)
		if err != nil {
			_ = closeFn()
			return nil, noop, err
		}
		return sender, closeFn, nil

	case TransportKafka:
		if len(cfg.KafkaBrokers) == 0 {
			return nil, noop, fmt.Errorf("kafka transport needs at least one broker")
		}
		writer := notifier.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
		return notifier.NewKafkaSender(writer), writer.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown notification transport %q", cfg.NotificationTransport)
	}
}
