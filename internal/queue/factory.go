package queue

import (
	"fmt"
	"log/slog"

	"github.com/FutureNHS/futurenhs-platform/core/config"
	"github.com/redis/go-redis/v9"
)

// NewPublisher builds the publisher selected by cfg.Backend.
func NewPublisher(cfg config.EventsConfig, logger *slog.Logger) (Publisher, error) {
	switch cfg.Backend {
	case config.EventsBackendRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		return NewRedisPublisher(redis.NewClient(opts), cfg.RedisStream, logger), nil
	case config.EventsBackendKafka:
		if len(cfg.KafkaBrokers) == 0 {
			return nil, fmt.Errorf("kafka backend requires at least one broker")
		}
		return NewKafkaPublisher(NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic), logger), nil
	default:
		return nil, fmt.Errorf("unknown events backend %q", cfg.Backend)
	}
}
