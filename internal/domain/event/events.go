package event

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MradulDixit-A/neupi-api/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// RecommendationGenerated is raised after a recommendation request has been
// scored. The aggregate is the request itself; nothing about it persists
// beyond this event.
type RecommendationGenerated struct {
	events.BaseEvent
	RequestID    uuid.UUID       `json:"request_id"`
	Eligible     bool            `json:"eligible"`
	Confidence   decimal.Decimal `json:"confidence_score"`
	PrimaryCards []string        `json:"primary_cards"`
	CatalogSize  int             `json:"catalog_size"`
}

// NewRecommendationGenerated builds the event for a completed request.
func NewRecommendationGenerated(
	requestID uuid.UUID,
	eligible bool,
	confidence decimal.Decimal,
	primaryCards []string,
	catalogSize int,
) RecommendationGenerated {
	return RecommendationGenerated{
		BaseEvent:    events.NewBaseEvent("recommendation.generated", requestID, "RecommendationRequest", nil),
		RequestID:    requestID,
		Eligible:     eligible,
		Confidence:   confidence,
		PrimaryCards: primaryCards,
		CatalogSize:  catalogSize,
	}
}

// HealthScoreComputed is raised after a financial health score request.
type HealthScoreComputed struct {
	events.BaseEvent
	RequestID uuid.UUID `json:"request_id"`
	Score     int       `json:"score"`
	Band      string    `json:"band"`
}

// NewHealthScoreComputed builds the event for a completed health score request.
func NewHealthScoreComputed(requestID uuid.UUID, score int, band string) HealthScoreComputed {
	return HealthScoreComputed{
		BaseEvent: events.NewBaseEvent("recommendation.health_score.computed", requestID, "RecommendationRequest", nil),
		RequestID: requestID,
		Score:     score,
		Band:      band,
	}
}
