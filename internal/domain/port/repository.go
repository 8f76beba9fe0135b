package port

import (
	"context"

	"github.com/MradulDixit-A/neupi-api/internal/domain/event"
	"github.com/MradulDixit-A/neupi-api/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// CatalogRepository supplies the card master catalog. Implementations own
// loading and validation; the core treats the returned slice as read-only.
type CatalogRepository interface {
	FindAll(ctx context.Context) ([]model.Card, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
