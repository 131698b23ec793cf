package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/FutureNHS/futurenhs-platform/internal/domain"
	"go.opentelemetry.io/otel/trace"
)

// Publisher delivers committed domain events to external consumers.
// Delivery is best-effort: callers publish after commit and do not retry.
type Publisher interface {
	Publish(ctx context.Context, events ...domain.Event) error
	Close() error
}

// encodeEvent renders the envelope as JSON.
func encodeEvent(ev domain.Event) ([]byte, error) {
	b, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("encoding %s event %s: %w", ev.Type, ev.ID, err)
	}
	return b, nil
}

func traceID(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		return sc.TraceID().String()
	}
	return ""
}
