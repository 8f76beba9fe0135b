package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MradulDixit-A/neupi-api/internal/domain/service"
	"github.com/MradulDixit-A/neupi-api/internal/domain/valueobject"
)

func TestDefaultRules_Valid(t *testing.T) {
	rules := service.DefaultRules()
	require.NoError(t, rules.Validate())
	assert.Equal(t, 60, rules.MinimumScoreToShow)
	assert.Equal(t, 2, rules.TopResults)
	assert.Equal(t, 60, rules.ConfidenceThreshold)
	assert.Len(t, rules.Weights, 6)
}

func TestRules_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*service.Rules)
	}{
		{"zero top results", func(r *service.Rules) { r.TopResults = 0 }},
		{"negative minimum score", func(r *service.Rules) { r.MinimumScoreToShow = -1 }},
		{"negative confidence threshold", func(r *service.Rules) { r.ConfidenceThreshold = -1 }},
		{"empty weights", func(r *service.Rules) { r.Weights = nil }},
		{"negative weight", func(r *service.Rules) {
			r.Weights[valueobject.RuleNetworkMatch] = -5
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := service.DefaultRules()
			tt.mutate(&rules)
			assert.Error(t, rules.Validate())
		})
	}
}

func TestRules_GoalTypes(t *testing.T) {
	rules := service.DefaultRules()

	t.Run("maps known goals in order", func(t *testing.T) {
		got := rules.GoalTypes([]string{"travel", "save_money"})
		assert.Equal(t, []string{"travel", "cashback"}, got)
	})

	t.Run("skips unmapped goals", func(t *testing.T) {
		got := rules.GoalTypes([]string{"win_lottery", "fuel"})
		assert.Equal(t, []string{"fuel"}, got)
	})

	t.Run("empty goals yield nothing", func(t *testing.T) {
		assert.Empty(t, rules.GoalTypes(nil))
	})
}

func TestDefaultExplanationRules_CoverAllScoringRules(t *testing.T) {
	table := service.DefaultExplanationRules()

	for rule := range service.DefaultRules().Weights {
		_, ok := table[rule]
		assert.True(t, ok, "no explanation for rule %s", rule)
	}
	_, ok := table[valueobject.RuleAlternativeOption]
	assert.True(t, ok, "no explanation for fallback rule")
}
