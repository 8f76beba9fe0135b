package service

import (
	"github.com/MradulDixit-A/neupi-api/internal/domain/model"
	"github.com/MradulDixit-A/neupi-api/internal/domain/valueobject"
)

// HealthScoreBuilder derives the consumer-facing 0-100 financial health
// metric from a pre-computed risk profile. It is a thin reuse layer: the risk
// signals come from the same RiskProfile the recommendation path consumed.
type HealthScoreBuilder struct{}

// NewHealthScoreBuilder returns a new builder instance.
func NewHealthScoreBuilder() *HealthScoreBuilder {
	return &HealthScoreBuilder{}
}

// Build clamps the composite score into 0-100, bands it, and attaches a
// labelled breakdown of the three signal groups.
func (b *HealthScoreBuilder) Build(risk *model.RiskProfile) model.HealthScore {
	score := risk.CompositeScore
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	var band valueobject.HealthBand
	switch {
	case score >= 80:
		band = valueobject.HealthExcellent
	case score >= 65:
		band = valueobject.HealthGood
	case score >= 50:
		band = valueobject.HealthFair
	default:
		band = valueobject.HealthNeedsAttention
	}

	return model.HealthScore{
		Score: score,
		Band:  band,
		Breakdown: []model.HealthComponent{
			{Label: "Financial Strength", Value: risk.Financial.Score + risk.Credit.Score},
			{Label: "Payment Behaviour", Value: risk.Behaviour.Score},
			{Label: "BNPL Risk", Value: risk.BNPL.Score},
		},
		Risk: risk,
	}
}
