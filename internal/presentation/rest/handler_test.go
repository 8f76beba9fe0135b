package rest_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MradulDixit-A/neupi-api/internal/application/usecase"
	"github.com/MradulDixit-A/neupi-api/internal/domain/event"
	"github.com/MradulDixit-A/neupi-api/internal/domain/model"
	"github.com/MradulDixit-A/neupi-api/internal/domain/service"
	"github.com/MradulDixit-A/neupi-api/internal/domain/valueobject"
	"github.com/MradulDixit-A/neupi-api/internal/presentation/rest"
)

type stubCatalog struct {
	cards []model.Card
	err   error
}

func (s *stubCatalog) FindAll(context.Context) ([]model.Card, error) {
	return s.cards, s.err
}

type stubPublisher struct{}

func (stubPublisher) Publish(context.Context, ...event.DomainEvent) error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMux(t *testing.T, cat *stubCatalog) *http.ServeMux {
	t.Helper()
	logger := testLogger()
	recommender := service.NewRecommender(service.DefaultRules(), service.DefaultExplanationRules())
	health := service.NewHealthScoreBuilder()
	publisher := stubPublisher{}

	recommendUC := usecase.NewRecommendCardsUseCase(cat, publisher, recommender, logger)
	healthScoreUC := usecase.NewGetHealthScoreUseCase(publisher, recommender.Analyzer(), health, logger)
	analyzeUC := usecase.NewAnalyzeProfileUseCase(cat, publisher, recommender, health, logger)

	mux := http.NewServeMux()
	rest.NewRecommendationHandler(recommendUC, healthScoreUC, analyzeUC, logger).RegisterRoutes(mux)
	rest.NewHealthHandler(cat, logger).RegisterRoutes(mux)
	return mux
}

func defaultCatalog() *stubCatalog {
	return &stubCatalog{cards: []model.Card{
		{
			CardID:             "entry_cashback",
			Issuer:             "Axis",
			Network:            valueobject.NetworkVisa,
			CardType:           "cashback",
			Tier:               valueobject.TierEntry,
			MinIncome:          20_000,
			MinCreditScore:     650,
			SpendBonusCategory: []string{"online_shopping"},
		},
	}}
}

const validProfileJSON = `{
	"age_group": "25_35",
	"employment_type": "salaried",
	"monthly_income": 60000,
	"monthly_emi": 6000,
	"credit_score_value": 780,
	"primary_goal": ["save_money"],
	"top_spend_category": "online_shopping",
	"preferred_network": "visa_mastercard"
}`

func doPost(mux *http.ServeMux, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestRecommendCardsEndpoint(t *testing.T) {
	mux := newTestMux(t, defaultCatalog())

	rec := doPost(mux, "/v1/recommend/cards", validProfileJSON)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		RequestID string `json:"request_id"`
		Eligible  bool   `json:"eligible"`
		Primary   []struct {
			Card struct {
				CardID string `json:"card_id"`
			} `json:"card"`
			Score float64 `json:"score"`
		} `json:"primary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.RequestID)
	assert.True(t, body.Eligible)
	require.Len(t, body.Primary, 1)
	assert.Equal(t, "entry_cashback", body.Primary[0].Card.CardID)
	assert.Greater(t, body.Primary[0].Score, 60.0)
}

func TestHealthScoreEndpoint(t *testing.T) {
	mux := newTestMux(t, defaultCatalog())

	rec := doPost(mux, "/v1/health-score", validProfileJSON)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Score     int    `json:"score"`
		Band      string `json:"band"`
		Breakdown []struct {
			Label string `json:"label"`
			Value int    `json:"value"`
		} `json:"breakdown"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 100, body.Score)
	assert.Equal(t, "Excellent", body.Band)
	assert.Len(t, body.Breakdown, 3)
}

func TestAnalyzeEndpoint(t *testing.T) {
	mux := newTestMux(t, defaultCatalog())

	rec := doPost(mux, "/v1/analyze", validProfileJSON)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status      string `json:"status"`
		HealthScore int    `json:"health_score"`
		Recommended struct {
			Eligible bool `json:"eligible"`
		} `json:"recommended_cards"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, 100, body.HealthScore)
	assert.True(t, body.Recommended.Eligible)
}

func TestInvalidProfileReturns400(t *testing.T) {
	mux := newTestMux(t, defaultCatalog())

	body := strings.Replace(validProfileJSON, "25_35", "13_17", 1)
	rec := doPost(mux, "/v1/recommend/cards", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid profile")
}

func TestMalformedBodyReturns400(t *testing.T) {
	mux := newTestMux(t, defaultCatalog())

	rec := doPost(mux, "/v1/recommend/cards", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogFailureReturns500(t *testing.T) {
	mux := newTestMux(t, &stubCatalog{err: assert.AnError})

	rec := doPost(mux, "/v1/recommend/cards", validProfileJSON)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error(), "internal detail must not leak")
}

func TestHealthEndpoints(t *testing.T) {
	mux := newTestMux(t, defaultCatalog())

	t.Run("liveness", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("readiness ok", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("readiness degraded", func(t *testing.T) {
		degraded := newTestMux(t, &stubCatalog{err: assert.AnError})
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		rec := httptest.NewRecorder()
		degraded.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestCORSMiddleware(t *testing.T) {
	mux := newTestMux(t, defaultCatalog())
	handler := rest.Chain(mux, rest.CORSMiddleware([]string{"https://neupi.co.in"}))

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Origin", "https://neupi.co.in")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, "https://neupi.co.in", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("disallowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/recommend/cards", nil)
		req.Header.Set("Origin", "https://neupi.co.in")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://neupi.co.in", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
