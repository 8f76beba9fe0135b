package service

import (
	"fmt"

	"github.com/MradulDixit-A/neupi-api/internal/domain/valueobject"
)

// Rules is the scoring configuration the engine runs against. It is loaded
// and validated once at process start and held constant within a request;
// operators may swap it between requests.
type Rules struct {
	// MinimumScoreToShow is the score floor below which a candidate is
	// dropped from the results.
	MinimumScoreToShow int
	// TopResults is the size of the primary recommendation tier.
	TopResults int
	// ConfidenceThreshold is the score a primary entry must clear to count
	// towards the confidence metric.
	ConfidenceThreshold int
	// Weights assigns additive points to each scoring rule.
	Weights map[valueobject.Rule]int
	// GoalCardTypes maps a user goal tag to the card types serving it.
	// Unmapped goals contribute nothing.
	GoalCardTypes map[string][]string
}

// DefaultRules returns the stock scoring configuration.
func DefaultRules() Rules {
	return Rules{
		MinimumScoreToShow:  60,
		TopResults:          2,
		ConfidenceThreshold: 60,
		Weights: map[valueobject.Rule]int{
			valueobject.RuleNetworkMatch:       20,
			valueobject.RuleIncomeMatch:        20,
			valueobject.RuleCreditScoreMatch:   25,
			valueobject.RuleGoalMatch:          20,
			valueobject.RuleSpendCategoryMatch: 15,
			valueobject.RuleLowEMIBonus:        10,
		},
		GoalCardTypes: map[string][]string{
			"save_money":   {"cashback"},
			"earn_rewards": {"rewards"},
			"travel":       {"travel"},
			"fuel":         {"fuel"},
			"tax_saving":   {"low_fee"},
		},
	}
}

// Validate checks the configuration invariants once at load time.
func (r Rules) Validate() error {
	if r.TopResults <= 0 {
		return fmt.Errorf("rules: top_results must be positive, got %d", r.TopResults)
	}
	if r.MinimumScoreToShow < 0 {
		return fmt.Errorf("rules: minimum_score_to_show must not be negative, got %d", r.MinimumScoreToShow)
	}
	if r.ConfidenceThreshold < 0 {
		return fmt.Errorf("rules: confidence_threshold must not be negative, got %d", r.ConfidenceThreshold)
	}
	if len(r.Weights) == 0 {
		return fmt.Errorf("rules: scoring_weights must not be empty")
	}
	for rule, w := range r.Weights {
		if w < 0 {
			return fmt.Errorf("rules: weight for %s must not be negative, got %d", rule, w)
		}
	}
	return nil
}

// GoalTypes expands the user's goal tags through the goal-to-card-type map,
// preserving goal order. Unmapped goals are skipped.
func (r Rules) GoalTypes(goals []string) []string {
	var types []string
	for _, g := range goals {
		types = append(types, r.GoalCardTypes[g]...)
	}
	return types
}

// ExplanationRule is one entry in the explanation-template table.
type ExplanationRule struct {
	Template string
	Priority int
	Type     valueobject.ExplanationType
}

// ExplanationRules maps each scoring rule to its user-facing explanation.
type ExplanationRules map[valueobject.Rule]ExplanationRule

// DefaultExplanationRules returns the stock explanation table. Priorities
// order explanations with the strongest approval signals first.
func DefaultExplanationRules() ExplanationRules {
	return ExplanationRules{
		valueobject.RuleCreditScoreMatch: {
			Template: "Your credit score is suitable for approval",
			Priority: 90,
			Type:     valueobject.ExplanationBenefit,
		},
		valueobject.RuleIncomeMatch: {
			Template: "Your income of ₹{income} meets the eligibility requirement",
			Priority: 80,
			Type:     valueobject.ExplanationBenefit,
		},
		valueobject.RuleGoalMatch: {
			Template: "This card aligns with your goal of {goal}",
			Priority: 70,
			Type:     valueobject.ExplanationBenefit,
		},
		valueobject.RuleSpendCategoryMatch: {
			Template: "You spend more on {spend_category}, where this card offers better value",
			Priority: 60,
			Type:     valueobject.ExplanationBenefit,
		},
		valueobject.RuleNetworkMatch: {
			Template: "You prefer the {network} network",
			Priority: 50,
			Type:     valueobject.ExplanationBenefit,
		},
		valueobject.RuleLowEMIBonus: {
			Template: "Your existing EMIs are well within a safe limit",
			Priority: 40,
			Type:     valueobject.ExplanationBenefit,
		},
		valueobject.RuleAlternativeOption: {
			Template: "A low-commitment option you qualify for while you build your profile",
			Priority: 10,
			Type:     valueobject.ExplanationFallback,
		},
	}
}
