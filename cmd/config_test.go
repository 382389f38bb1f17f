package cmd_test

import (
	"testing"

	"fooddelivery/cmd"
	"fooddelivery/internal/adapters/out/notifier"
	"fooddelivery/internal/jobs"
	"fooddelivery/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := cmd.LoadConfig(env(nil))

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, cmd.TransportLog, cfg.NotificationTransport)
	assert.Equal(t, jobs.DefaultDispatchSchedule, cfg.NotificationDispatchSchedule)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "host=localhost port=5432 user=postgres password= dbname=fooddelivery sslmode=disable", cfg.DSN())
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg := cmd.LoadConfig(env(map[string]string{
		"HTTP_PORT":              "9000",
		"DB_HOST":                "db",
		"DB_PASSWORD":            "secret",
		"TIMEZONE":               "Europe/Moscow",
		"NOTIFICATION_TRANSPORT": " Kafka ",
		"KAFKA_BROKERS":          "k1:9092, k2:9092,,",
		"KAFKA_TOPIC":            "order-notifications",
	}))

	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, "Europe/Moscow", cfg.Timezone)
	assert.Equal(t, cmd.TransportKafka, cfg.NotificationTransport)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "order-notifications", cfg.KafkaTopic)
	assert.Contains(t, cfg.DSN(), "host=db")
	assert.Contains(t, cfg.DSN(), "password=secret")
}

func TestNewNotificationSender(t *testing.T) {
	logger := logging.Discard()

	t.Run("log", func(t *testing.T) {
		sender, closeFn, err := cmd.NewNotificationSender(cmd.LoadConfig(env(nil)), logger)
		require.NoError(t, err)
		assert.IsType(t, &notifier.LogSender{}, sender)
		assert.NoError(t, closeFn())
	})

	t.Run("kafka", func(t *testing.T) {
		cfg := cmd.LoadConfig(env(map[string]string{"NOTIFICATION_TRANSPORT": "kafka"}))
		sender, closeFn, err := cmd.NewNotificationSender(cfg, logger)
		require.NoError(t, err)
		assert.IsType(t, &notifier.KafkaSender{}, sender)
		assert.NoError(t, closeFn())
	})

	t.Run("kafka without brokers", func(t *testing.T) {
		cfg := cmd.LoadConfig(env(map[string]string{"NOTIFICATION_TRANSPORT": "kafka"}))
		cfg.KafkaBrokers = nil
		_, closeFn, err := cmd.NewNotificationSender(cfg, logger)
		require.Error(t, err)
		assert.NotNil(t, closeFn)
	})

	t.Run("unknown transport", func(t *testing.T) {
		cfg := cmd.LoadConfig(env(map[string]string{"NOTIFICATION_TRANSPORT": "pigeon"}))
		_, _, err := cmd.NewNotificationSender(cfg, logger)
		assert.ErrorContains(t, err, "pigeon")
	})
}
