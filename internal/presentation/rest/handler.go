package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MradulDixit-A/neupi-api/internal/application/dto"
	"github.com/MradulDixit-A/neupi-api/internal/application/usecase"
	"github.com/MradulDixit-A/neupi-api/internal/domain/model"
)

// RecommendationHandler exposes the recommendation engine over HTTP.
type RecommendationHandler struct {
	recommend   *usecase.RecommendCardsUseCase
	healthScore *usecase.GetHealthScoreUseCase
	analyze     *usecase.AnalyzeProfileUseCase
	logger      *slog.Logger
}

// NewRecommendationHandler creates the HTTP handler over the three use cases.
func NewRecommendationHandler(
	recommend *usecase.RecommendCardsUseCase,
	healthScore *usecase.GetHealthScoreUseCase,
	analyze *usecase.AnalyzeProfileUseCase,
	logger *slog.Logger,
) *RecommendationHandler {
	return &RecommendationHandler{
		recommend:   recommend,
		healthScore: healthScore,
		analyze:     analyze,
		logger:      logger,
	}
}

// RegisterRoutes attaches the recommendation routes to the given mux.
func (h *RecommendationHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/recommend/cards", h.recommendCards)
	mux.HandleFunc("POST /v1/health-score", h.getHealthScore)
	mux.HandleFunc("POST /v1/analyze", h.analyzeProfile)
}

func (h *RecommendationHandler) recommendCards(w http.ResponseWriter, r *http.Request) {
	handleProfileRequest(h, w, r, h.recommend.Execute)
}

func (h *RecommendationHandler) getHealthScore(w http.ResponseWriter, r *http.Request) {
	handleProfileRequest(h, w, r, h.healthScore.Execute)
}

func (h *RecommendationHandler) analyzeProfile(w http.ResponseWriter, r *http.Request) {
	handleProfileRequest(h, w, r, h.analyze.Execute)
}

// handleProfileRequest decodes the shared profile request body, runs the
// use case, and maps domain errors to HTTP status codes.
func handleProfileRequest[T any](
	h *RecommendationHandler,
	w http.ResponseWriter,
	r *http.Request,
	execute func(context.Context, dto.ProfileRequest) (T, error),
) {
	var req dto.ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	resp, err := execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidProfile) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.ErrorContext(r.Context(), "request failed",
			"path", r.URL.Path,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
