package messaging

import (
	"context"
	"log/slog"

	"github.com/MradulDixit-A/neupi-api/internal/domain/event"
)

// NoopEventPublisher discards events. Used when no Kafka brokers are
// configured, keeping the use cases free of nil checks.
type NoopEventPublisher struct {
	logger *slog.Logger
}

// NewNoopEventPublisher creates a publisher that logs and drops events.
func NewNoopEventPublisher(logger *slog.Logger) *NoopEventPublisher {
	return &NoopEventPublisher{logger: logger}
}

// Publish logs each event at debug level and discards it.
func (p *NoopEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	for _, evt := range events {
		p.logger.DebugContext(ctx, "event publishing disabled, dropping event",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
		)
	}
	return nil
}
