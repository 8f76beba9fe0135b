package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MradulDixit-A/neupi-api/internal/domain/model"
	"github.com/MradulDixit-A/neupi-api/internal/domain/service"
	"github.com/MradulDixit-A/neupi-api/internal/domain/valueobject"
)

func newTestScorer() *service.CardScorer {
	rules := service.DefaultRules()
	return service.NewCardScorer(rules, service.NewExplanationBuilder(service.DefaultExplanationRules()))
}

func neutralRisk() *model.RiskProfile {
	return &model.RiskProfile{CompositeScore: 0}
}

func scoredIDs(scored []model.ScoredCard) []string {
	ids := make([]string, 0, len(scored))
	for _, sc := range scored {
		ids = append(ids, sc.Card.CardID)
	}
	return ids
}

func TestCardScorer_WeightsAndThreshold(t *testing.T) {
	scorer := newTestScorer()
	p := newTestProfile(t, nil)

	scored := scorer.Score(p, testCatalog(), nil, neutralRisk())

	// secured_starter (55), premium_travel (35) and super_premium (55) fall
	// below the minimum of 60; mid_rewards (90) outranks entry_cashback (70).
	require.Equal(t, []string{"mid_rewards", "entry_cashback"}, scoredIDs(scored))
	assert.True(t, scored[0].Score.Equal(decimal.NewFromInt(90)), "got %s", scored[0].Score)
	assert.True(t, scored[1].Score.Equal(decimal.NewFromInt(70)), "got %s", scored[1].Score)
}

func TestCardScorer_MatchedRulesInEvaluationOrder(t *testing.T) {
	scorer := newTestScorer()
	p := newTestProfile(t, nil)

	scored := scorer.Score(p, testCatalog(), nil, neutralRisk())
	require.NotEmpty(t, scored)

	// mid_rewards: no network match (amex preference, visa card), then
	// income, credit, goal, spend, low EMI in that order.
	assert.Equal(t, []valueobject.Rule{
		valueobject.RuleIncomeMatch,
		valueobject.RuleCreditScoreMatch,
		valueobject.RuleGoalMatch,
		valueobject.RuleSpendCategoryMatch,
		valueobject.RuleLowEMIBonus,
	}, scored[0].MatchedRules)
}

func TestCardScorer_PenaltySubtracted(t *testing.T) {
	scorer := newTestScorer()
	p := newTestProfile(t, nil)

	penalties := service.RiskPenalties{"mid_rewards": 10}
	scored := scorer.Score(p, testCatalog(), penalties, neutralRisk())

	require.Equal(t, []string{"mid_rewards", "entry_cashback"}, scoredIDs(scored))
	assert.True(t, scored[0].Score.Equal(decimal.NewFromInt(80)), "got %s", scored[0].Score)
}

func TestCardScorer_PenaltyCanDropBelowThreshold(t *testing.T) {
	scorer := newTestScorer()
	p := newTestProfile(t, nil)

	penalties := service.RiskPenalties{"entry_cashback": 15}
	scored := scorer.Score(p, testCatalog(), penalties, neutralRisk())

	// 70 - 15 = 55 < 60.
	assert.Equal(t, []string{"mid_rewards"}, scoredIDs(scored))
}

func TestCardScorer_CompositeAdjustment(t *testing.T) {
	scorer := newTestScorer()
	p := newTestProfile(t, nil)

	tests := []struct {
		name      string
		composite int
		expected  string // mid_rewards base 90 plus adjustment
	}{
		{"moderate positive", 50, "95"},
		{"positive capped at 12", 200, "102"},
		{"negative capped at -12", -200, "78"},
		{"fractional adjustment", 108, "100.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			risk := &model.RiskProfile{CompositeScore: tt.composite}
			scored := scorer.Score(p, testCatalog(), nil, risk)
			require.NotEmpty(t, scored)
			assert.Equal(t, "mid_rewards", scored[0].Card.CardID)
			assert.True(t, scored[0].Score.Equal(decimal.RequireFromString(tt.expected)),
				"want %s, got %s", tt.expected, scored[0].Score)
		})
	}
}

func TestCardScorer_TiesKeepCatalogOrder(t *testing.T) {
	scorer := newTestScorer()
	p := newTestProfile(t, func(a *model.ProfileAttributes) {
		a.PreferredNetwork = "no_preference"
		a.PrimaryGoals = nil
		a.TopSpendCategory = "fuel"
	})

	// Two otherwise identical cards differing only in catalog position.
	twins := []model.Card{
		{
			CardID: "twin_a", Issuer: "A", Network: valueobject.NetworkVisa,
			CardType: "cashback", Tier: valueobject.TierEntry,
			MinIncome: 20_000, MinCreditScore: 650, SpendBonusCategory: []string{"fuel"},
		},
		{
			CardID: "twin_b", Issuer: "B", Network: valueobject.NetworkVisa,
			CardType: "cashback", Tier: valueobject.TierEntry,
			MinIncome: 20_000, MinCreditScore: 650, SpendBonusCategory: []string{"fuel"},
		},
	}

	scored := scorer.Score(p, twins, nil, neutralRisk())
	require.Len(t, scored, 2)
	assert.Equal(t, []string{"twin_a", "twin_b"}, scoredIDs(scored))
	assert.True(t, scored[0].Score.Equal(scored[1].Score))
}

func TestCardScorer_SharesRiskProfilePointer(t *testing.T) {
	scorer := newTestScorer()
	p := newTestProfile(t, nil)
	risk := neutralRisk()

	scored := scorer.Score(p, testCatalog(), nil, risk)
	require.NotEmpty(t, scored)
	for _, sc := range scored {
		assert.Same(t, risk, sc.Risk)
	}
}
