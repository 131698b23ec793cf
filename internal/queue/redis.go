package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/FutureNHS/futurenhs-platform/internal/domain"
	"github.com/redis/go-redis/v9"
)

// StreamClient is the subset of *redis.Client the publisher uses.
type StreamClient interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
	Close() error
}

type redisPublisher struct {
	client StreamClient
	stream string
	logger *slog.Logger
}

// NewRedisPublisher appends each event to a Redis stream.
func NewRedisPublisher(client StreamClient, stream string, logger *slog.Logger) Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisPublisher{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisPublisher) Publish(ctx context.Context, events ...domain.Event) error {
	for _, ev := range events {
		payload, err := encodeEvent(ev)
		if err != nil {
			return err
		}

		fields := map[string]any{
			"event_id":   ev.ID.String(),
			"event_type": string(ev.Type),
			"subject":    ev.Subject,
			"payload":    string(payload),
		}
		if tid := traceID(ctx); tid != "" {
			fields["trace_id"] = tid
		}

		msgID, err := p.client.XAdd(ctx, &redis.XAddArgs{
			Stream: p.stream,
			Values: fields,
		}).Result()
		if err != nil {
			return fmt.Errorf("publishing %s event to stream %s: %w", ev.Type, p.stream, err)
		}

		p.logger.InfoContext(ctx, "published event",
			"event_id", ev.ID.String(),
			"event_type", ev.Type,
			"subject", ev.Subject,
			"stream", p.stream,
			"message_id", msgID,
		)
	}
	return nil
}

func (p *redisPublisher) Close() error {
	return p.client.Close()
}
