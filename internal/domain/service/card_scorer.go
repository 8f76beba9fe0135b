package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/MradulDixit-A/neupi-api/internal/domain/model"
	"github.com/MradulDixit-A/neupi-api/internal/domain/valueobject"
)

// compositeAdjustmentCap bounds how far the composite risk signal can move a
// candidate's score in either direction.
var compositeAdjustmentCap = decimal.NewFromInt(12)

// CardScorer applies the weighted rule set to each surviving candidate and
// keeps the ones clearing the configured minimum score.
type CardScorer struct {
	rules     Rules
	explainer *ExplanationBuilder
}

// NewCardScorer creates a scorer over the given rules and explanation table.
func NewCardScorer(rules Rules, explainer *ExplanationBuilder) *CardScorer {
	return &CardScorer{rules: rules, explainer: explainer}
}

// Score evaluates every candidate against the six scoring rules, subtracts
// the per-request penalties, folds in the bounded composite-risk adjustment,
// and returns the survivors sorted by score descending. Equal scores retain
// their catalog order.
func (s *CardScorer) Score(
	p model.UserProfile,
	cards []model.Card,
	penalties RiskPenalties,
	risk *model.RiskProfile,
) []model.ScoredCard {
	emiRatio := p.EMIRatio()
	goalTypes := s.rules.GoalTypes(p.PrimaryGoals)
	adjustment := compositeAdjustment(risk.CompositeScore)
	minScore := decimal.NewFromInt(int64(s.rules.MinimumScoreToShow))

	scored := make([]model.ScoredCard, 0, len(cards))
	for _, card := range cards {
		score := decimal.Zero
		var matched []valueobject.Rule

		match := func(rule valueobject.Rule) {
			score = score.Add(decimal.NewFromInt(int64(s.rules.Weights[rule])))
			matched = append(matched, rule)
		}

		if p.PreferredNetwork.Admits(card.Network) {
			match(valueobject.RuleNetworkMatch)
		}
		if p.MonthlyIncome >= card.MinIncome {
			match(valueobject.RuleIncomeMatch)
		}
		if p.CreditScoreValue >= card.MinCreditScore {
			match(valueobject.RuleCreditScoreMatch)
		}
		if contains(goalTypes, card.CardType) {
			match(valueobject.RuleGoalMatch)
		}
		if card.HasSpendBonus(p.TopSpendCategory) {
			match(valueobject.RuleSpendCategoryMatch)
		}
		if emiRatio.LessThan(ratio030) {
			match(valueobject.RuleLowEMIBonus)
		}

		score = score.Sub(decimal.NewFromInt(int64(penalties[card.CardID])))
		score = score.Add(adjustment)

		if score.LessThan(minScore) {
			continue
		}

		scored = append(scored, model.ScoredCard{
			Card:         card,
			Score:        score.Round(2),
			MatchedRules: matched,
			Explanations: s.explainer.Generate(p, card, matched),
			Risk:         risk,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score.GreaterThan(scored[j].Score)
	})
	return scored
}

// compositeAdjustment maps the composite risk score into a bounded score
// delta: clamp(composite/10, -12, +12).
func compositeAdjustment(composite int) decimal.Decimal {
	adj := decimal.NewFromInt(int64(composite)).Div(decimal.NewFromInt(10))
	if adj.GreaterThan(compositeAdjustmentCap) {
		return compositeAdjustmentCap
	}
	if adj.LessThan(compositeAdjustmentCap.Neg()) {
		return compositeAdjustmentCap.Neg()
	}
	return adj
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
