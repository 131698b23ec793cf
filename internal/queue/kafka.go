package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/FutureNHS/futurenhs-platform/internal/domain"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter is the subset of *kafka.Writer the publisher uses.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	writer KafkaWriter
	logger *slog.Logger
}

// NewKafkaWriter builds a writer for topic keyed by event subject, so all
// events of one workspace land on the same partition in order.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}
}

// NewKafkaPublisher writes each event as one message in a single batch.
func NewKafkaPublisher(writer KafkaWriter, logger *slog.Logger) Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &kafkaPublisher{writer: writer, logger: logger}
}

func (p *kafkaPublisher) Publish(ctx context.Context, events ...domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, ev := range events {
		payload, err := encodeEvent(ev)
		if err != nil {
			return err
		}
		headers := []kafka.Header{
			{Key: "event_id", Value: []byte(ev.ID.String())},
			{Key: "event_type", Value: []byte(ev.Type)},
		}
		if tid := traceID(ctx); tid != "" {
			headers = append(headers, kafka.Header{Key: "trace_id", Value: []byte(tid)})
		}
		msgs = append(msgs, kafka.Message{
			Key:     []byte(ev.Subject),
			Value:   payload,
			Headers: headers,
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publishing %d events to kafka: %w", len(msgs), err)
	}

	for _, ev := range events {
		p.logger.InfoContext(ctx, "published event",
			"event_id", ev.ID.String(),
			"event_type", ev.Type,
			"subject", ev.Subject,
		)
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
