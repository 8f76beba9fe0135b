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

// AnalyzeProfileUseCase serves the combined analysis: profile summary, health
// score, risk profile, and recommendations in one pass. The risk profile is
// computed exactly once and shared between the health and recommendation
// paths, so the two outputs always agree within a request.
type AnalyzeProfileUseCase struct {
	catalog     port.CatalogRepository
	publisher   port.EventPublisher
	recommender *service.Recommender
	health      *service.HealthScoreBuilder
	logger      *slog.Logger
}

// NewAnalyzeProfileUseCase wires dependencies.
func NewAnalyzeProfileUseCase(
	catalog port.CatalogRepository,
	publisher port.EventPublisher,
	recommender *service.Recommender,
	health *service.HealthScoreBuilder,
	logger *slog.Logger,
) *AnalyzeProfileUseCase {
	return &AnalyzeProfileUseCase{
		catalog:     catalog,
		publisher:   publisher,
		recommender: recommender,
		health:      health,
		logger:      logger,
	}
}

// Execute runs the combined analysis pipeline.
func (uc *AnalyzeProfileUseCase) Execute(ctx context.Context, req dto.ProfileRequest) (dto.AnalyzeResponse, error) {
	profile, err := model.NewUserProfile(toProfileAttributes(req))
	if err != nil {
		return dto.AnalyzeResponse{}, fmt.Errorf("build profile: %w", err)
	}

	cards, err := uc.catalog.FindAll(ctx)
	if err != nil {
		return dto.AnalyzeResponse{}, fmt.Errorf("load catalog: %w", err)
	}

	requestID := uuid.New()

	risk := uc.recommender.Analyzer().FullProfile(profile)
	health := uc.health.Build(risk)
	rec := uc.recommender.RecommendWithRisk(profile, cards, risk)

	uc.publishOutcome(ctx, requestID, rec, health, len(cards))

	return dto.AnalyzeResponse{
		RequestID: requestID.String(),
		Status:    "success",
		Summary: dto.ProfileSummary{
			PrimaryGoal: profile.PrimaryGoals,
			Income:      profile.MonthlyIncome,
		},
		HealthScore:      health.Score,
		HealthBand:       string(health.Band),
		HealthBreakdown:  toHealthBreakdown(health.Breakdown),
		RiskProfile:      toRiskProfileResponse(risk),
		RecommendedCards: toRecommendationResponse(requestID, rec),
	}, nil
}

func (uc *AnalyzeProfileUseCase) publishOutcome(
	ctx context.Context,
	requestID uuid.UUID,
	rec model.Recommendation,
	health model.HealthScore,
	catalogSize int,
) {
	primaryIDs := make([]string, 0, len(rec.Primary))
	for _, sc := range rec.Primary {
		primaryIDs = append(primaryIDs, sc.Card.CardID)
	}

	evts := []event.DomainEvent{
		event.NewRecommendationGenerated(requestID, rec.Eligible, rec.Confidence, primaryIDs, catalogSize),
		event.NewHealthScoreComputed(requestID, health.Score, string(health.Band)),
	}
	if err := uc.publisher.Publish(ctx, evts...); err != nil {
		uc.logger.WarnContext(ctx, "failed to publish analysis events",
			"request_id", requestID,
			"error", err,
		)
	}
}
