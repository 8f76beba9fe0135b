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

// GetHealthScoreUseCase derives the 0-100 financial health score from the
// same risk signals the recommendation pipeline uses.
type GetHealthScoreUseCase struct {
	publisher port.EventPublisher
	analyzer  *service.RiskAnalyzer
	builder   *service.HealthScoreBuilder
	logger    *slog.Logger
}

// NewGetHealthScoreUseCase wires dependencies.
func NewGetHealthScoreUseCase(
	publisher port.EventPublisher,
	analyzer *service.RiskAnalyzer,
	builder *service.HealthScoreBuilder,
	logger *slog.Logger,
) *GetHealthScoreUseCase {
	return &GetHealthScoreUseCase{
		publisher: publisher,
		analyzer:  analyzer,
		builder:   builder,
		logger:    logger,
	}
}

// Execute computes the health score for the request profile.
func (uc *GetHealthScoreUseCase) Execute(ctx context.Context, req dto.ProfileRequest) (dto.HealthScoreResponse, error) {
	profile, err := model.NewUserProfile(toProfileAttributes(req))
	if err != nil {
		return dto.HealthScoreResponse{}, fmt.Errorf("build profile: %w", err)
	}

	requestID := uuid.New()
	health := uc.builder.Build(uc.analyzer.FullProfile(profile))

	evt := event.NewHealthScoreComputed(requestID, health.Score, string(health.Band))
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		uc.logger.WarnContext(ctx, "failed to publish health score event",
			"request_id", requestID,
			"error", err,
		)
	}

	return toHealthScoreResponse(requestID, health), nil
}
