package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MradulDixit-A/neupi-api/internal/application/dto"
	"github.com/MradulDixit-A/neupi-api/internal/application/usecase"
	"github.com/MradulDixit-A/neupi-api/internal/domain/model"
)

// Compile-time assertion that RecommendationHandler implements RecommendationServiceServer.
var _ RecommendationServiceServer = (*RecommendationHandler)(nil)

// RecommendationHandler implements the gRPC RecommendationServiceServer interface.
type RecommendationHandler struct {
	UnimplementedRecommendationServiceServer
	recommendUC   *usecase.RecommendCardsUseCase
	healthScoreUC *usecase.GetHealthScoreUseCase
	analyzeUC     *usecase.AnalyzeProfileUseCase
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(
	recommendUC *usecase.RecommendCardsUseCase,
	healthScoreUC *usecase.GetHealthScoreUseCase,
	analyzeUC *usecase.AnalyzeProfileUseCase,
) *RecommendationHandler {
	return &RecommendationHandler{
		recommendUC:   recommendUC,
		healthScoreUC: healthScoreUC,
		analyzeUC:     analyzeUC,
	}
}

// Proto-aligned request/response message types.

// RecommendCardsRequest represents the proto RecommendCardsRequest message.
type RecommendCardsRequest struct {
	Profile *dto.ProfileRequest `json:"profile"`
}

// RecommendCardsResponse represents the proto RecommendCardsResponse message.
type RecommendCardsResponse struct {
	Recommendation *dto.RecommendationResponse `json:"recommendation"`
}

// GetHealthScoreRequest represents the proto GetHealthScoreRequest message.
type GetHealthScoreRequest struct {
	Profile *dto.ProfileRequest `json:"profile"`
}

// GetHealthScoreResponse represents the proto GetHealthScoreResponse message.
type GetHealthScoreResponse struct {
	HealthScore *dto.HealthScoreResponse `json:"health_score"`
}

// AnalyzeProfileRequest represents the proto AnalyzeProfileRequest message.
type AnalyzeProfileRequest struct {
	Profile *dto.ProfileRequest `json:"profile"`
}

// AnalyzeProfileResponse represents the proto AnalyzeProfileResponse message.
type AnalyzeProfileResponse struct {
	Analysis *dto.AnalyzeResponse `json:"analysis"`
}

// RecommendCards handles the gRPC request for card recommendations.
func (h *RecommendationHandler) RecommendCards(ctx context.Context, req *RecommendCardsRequest) (*RecommendCardsResponse, error) {
	if req == nil || req.Profile == nil {
		return nil, status.Error(codes.InvalidArgument, "profile is required")
	}

	resp, err := h.recommendUC.Execute(ctx, *req.Profile)
	if err != nil {
		return nil, mapError(err)
	}

	return &RecommendCardsResponse{Recommendation: &resp}, nil
}

// GetHealthScore handles the gRPC request for a financial health score.
func (h *RecommendationHandler) GetHealthScore(ctx context.Context, req *GetHealthScoreRequest) (*GetHealthScoreResponse, error) {
	if req == nil || req.Profile == nil {
		return nil, status.Error(codes.InvalidArgument, "profile is required")
	}

	resp, err := h.healthScoreUC.Execute(ctx, *req.Profile)
	if err != nil {
		return nil, mapError(err)
	}

	return &GetHealthScoreResponse{HealthScore: &resp}, nil
}

// AnalyzeProfile handles the gRPC request for the combined analysis.
func (h *RecommendationHandler) AnalyzeProfile(ctx context.Context, req *AnalyzeProfileRequest) (*AnalyzeProfileResponse, error) {
	if req == nil || req.Profile == nil {
		return nil, status.Error(codes.InvalidArgument, "profile is required")
	}

	resp, err := h.analyzeUC.Execute(ctx, *req.Profile)
	if err != nil {
		return nil, mapError(err)
	}

	return &AnalyzeProfileResponse{Analysis: &resp}, nil
}

// mapError translates domain errors into gRPC status codes.
func mapError(err error) error {
	if errors.Is(err, model.ErrInvalidProfile) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
