package valueobject

// Rule identifies a single scoring rule. Rules double as keys into the
// scoring-weight table and the explanation-template table, so each matched
// rule carries its own explanation without a separate lookup scheme.
type Rule string

const (
	RuleNetworkMatch       Rule = "network_match"
	RuleIncomeMatch        Rule = "income_match"
	RuleCreditScoreMatch   Rule = "credit_score_match"
	RuleGoalMatch          Rule = "goal_match"
	RuleSpendCategoryMatch Rule = "spend_category_match"
	RuleLowEMIBonus        Rule = "low_emi_bonus"

	// RuleAlternativeOption tags backfilled low-commitment fallbacks; it has
	// no scoring weight.
	RuleAlternativeOption Rule = "alternative_option"
)

// String returns the string representation of the Rule.
func (r Rule) String() string {
	return string(r)
}

// ExplanationType categorizes a user-facing explanation.
type ExplanationType string

const (
	ExplanationBenefit  ExplanationType = "benefit"
	ExplanationWarning  ExplanationType = "warning"
	ExplanationTradeoff ExplanationType = "tradeoff"
	ExplanationFallback ExplanationType = "fallback"
)
