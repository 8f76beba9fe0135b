package model

import (
	"github.com/shopspring/decimal"

	"github.com/MradulDixit-A/neupi-api/internal/domain/valueobject"
)

// Explanation is a single user-facing justification for a scored card.
type Explanation struct {
	Text     string                      `json:"text"`
	Priority int                         `json:"priority"`
	Type     valueobject.ExplanationType `json:"type"`
}

// ScoredCard is a catalog card together with its final score, the rules that
// matched in evaluation order, and the explanations derived from them.
type ScoredCard struct {
	Card         Card               `json:"card"`
	Score        decimal.Decimal    `json:"score"`
	MatchedRules []valueobject.Rule `json:"matched_rules"`
	Explanations []Explanation      `json:"why_this_card"`
	Risk         *RiskProfile       `json:"risk_profile,omitempty"`
}

// Recommendation is the final output of the scoring pipeline. When no card
// survives filtering and backfill, Eligible is false and both tiers are empty.
type Recommendation struct {
	Eligible     bool            `json:"eligible"`
	Confidence   decimal.Decimal `json:"confidence_score"`
	Primary      []ScoredCard    `json:"primary"`
	Alternatives []ScoredCard    `json:"alternatives"`
}

// HealthComponent is one labelled entry in a health score breakdown.
type HealthComponent struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// HealthScore is the consumer-facing 0-100 financial health metric. Risk
// points at the same RiskProfile instance the recommendation path consumed.
type HealthScore struct {
	Score     int                    `json:"score"`
	Band      valueobject.HealthBand `json:"band"`
	Breakdown []HealthComponent      `json:"breakdown"`
	Risk      *RiskProfile           `json:"risk_profile"`
}
