package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MradulDixit-A/neupi-api/internal/application/dto"
	"github.com/MradulDixit-A/neupi-api/internal/domain/event"
	"github.com/MradulDixit-A/neupi-api/internal/domain/model"
	"github.com/MradulDixit-A/neupi-api/internal/domain/port"
	"github.com/MradulDixit-A/neupi-api/internal/domain/service"
)

// RecommendCardsUseCase orchestrates a single recommendation request: build
// the profile, load the catalog, run the scoring pipeline, publish the
// outcome event.
type RecommendCardsUseCase struct {
	catalog     port.CatalogRepository
	publisher   port.EventPublisher
	recommender *service.Recommender
	logger      *slog.Logger
}

// NewRecommendCardsUseCase wires dependencies.
func NewRecommendCardsUseCase(
	catalog port.CatalogRepository,
	publisher port.EventPublisher,
	recommender *service.Recommender,
	logger *slog.Logger,
) *RecommendCardsUseCase {
	return &RecommendCardsUseCase{
		catalog:     catalog,
		publisher:   publisher,
		recommender: recommender,
		logger:      logger,
	}
}

// Execute scores the catalog against the request profile and returns the
// ranked recommendation set.
func (uc *RecommendCardsUseCase) Execute(ctx context.Context, req dto.ProfileRequest) (dto.RecommendationResponse, error) {
	profile, err := model.NewUserProfile(toProfileAttributes(req))
	if err != nil {
		return dto.RecommendationResponse{}, fmt.Errorf("build profile: %w", err)
	}

	cards, err := uc.catalog.FindAll(ctx)
	if err != nil {
		return dto.RecommendationResponse{}, fmt.Errorf("load catalog: %w", err)
	}

	requestID := uuid.New()
	rec := uc.recommender.Recommend(profile, cards)

	uc.publishOutcome(ctx, requestID, rec, len(cards))

	return toRecommendationResponse(requestID, rec), nil
}

// publishOutcome emits the recommendation event. The recommendation itself is
// already computed, so a publish failure is logged and swallowed rather than
// failing the request.
func (uc *RecommendCardsUseCase) publishOutcome(ctx context.Context, requestID uuid.UUID, rec model.Recommendation, catalogSize int) {
	primaryIDs := make([]string, 0, len(rec.Primary))
	for _, sc := range rec.Primary {
		primaryIDs = append(primaryIDs, sc.Card.CardID)
	}

	evt := event.NewRecommendationGenerated(requestID, rec.Eligible, rec.Confidence, primaryIDs, catalogSize)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		uc.logger.WarnContext(ctx, "failed to publish recommendation event",
			"request_id", requestID,
			"error", err,
		)
	}
}
