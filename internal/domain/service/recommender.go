package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/MradulDixit-A/neupi-api/internal/domain/model"
	"github.com/MradulDixit-A/neupi-api/internal/domain/valueobject"
)

// backfillScore is the fixed score assigned to backfilled fallback entries.
// It sits below any realistic scored candidate so fallbacks never outrank a
// genuinely qualified card.
var backfillScore = decimal.NewFromInt(10)

// Recommender runs the full pipeline: eligibility filter, network filter,
// scoring, backfill, tier split, and confidence.
type Recommender struct {
	rules       Rules
	analyzer    *RiskAnalyzer
	eligibility *EligibilityFilter
	network     *NetworkFilter
	scorer      *CardScorer
	explainer   *ExplanationBuilder
}

// NewRecommender wires the pipeline stages over the given configuration.
func NewRecommender(rules Rules, explanations ExplanationRules) *Recommender {
	explainer := NewExplanationBuilder(explanations)
	return &Recommender{
		rules:       rules,
		analyzer:    NewRiskAnalyzer(),
		eligibility: NewEligibilityFilter(),
		network:     NewNetworkFilter(),
		scorer:      NewCardScorer(rules, explainer),
		explainer:   explainer,
	}
}

// Analyzer exposes the risk analyzer so callers sharing one risk profile
// across the recommendation and health-score paths build it exactly once.
func (r *Recommender) Analyzer() *RiskAnalyzer {
	return r.analyzer
}

// Recommend scores the catalog against the profile and assembles the ranked,
// tiered recommendation set.
func (r *Recommender) Recommend(p model.UserProfile, catalog []model.Card) model.Recommendation {
	return r.RecommendWithRisk(p, catalog, r.analyzer.FullProfile(p))
}

// RecommendWithRisk is Recommend with a caller-supplied risk profile, used
// when the same request also serves a health score off identical signals.
func (r *Recommender) RecommendWithRisk(p model.UserProfile, catalog []model.Card, risk *model.RiskProfile) model.Recommendation {
	filtered, penalties := r.eligibility.Apply(p, catalog)
	filtered = r.network.Apply(p, filtered)

	scored := r.scorer.Score(p, filtered, penalties, risk)
	scored = r.backfill(p, filtered, scored)

	primary := scored
	var alternatives []model.ScoredCard
	if len(scored) > r.rules.TopResults {
		primary = scored[:r.rules.TopResults]
		alternatives = scored[r.rules.TopResults:]
	}

	if len(primary) == 0 {
		return model.Recommendation{
			Eligible:     false,
			Confidence:   decimal.Zero,
			Primary:      []model.ScoredCard{},
			Alternatives: []model.ScoredCard{},
		}
	}

	return model.Recommendation{
		Eligible:     true,
		Confidence:   r.confidence(primary),
		Primary:      primary,
		Alternatives: alternatives,
	}
}

// backfill appends low-commitment fallback candidates, cheapest entry
// requirement first, until the scored list reaches the primary tier size or
// the filtered set runs out. Cards already scored are not duplicated.
func (r *Recommender) backfill(p model.UserProfile, filtered []model.Card, scored []model.ScoredCard) []model.ScoredCard {
	if len(scored) >= r.rules.TopResults {
		return scored
	}

	present := make(map[string]bool, len(scored))
	for _, sc := range scored {
		present[sc.Card.CardID] = true
	}

	fillers := make([]model.Card, len(filtered))
	copy(fillers, filtered)
	sort.SliceStable(fillers, func(i, j int) bool {
		return fillers[i].MinIncome < fillers[j].MinIncome
	})

	fallbackRules := []valueobject.Rule{valueobject.RuleAlternativeOption}
	for _, card := range fillers {
		if len(scored) >= r.rules.TopResults {
			break
		}
		if present[card.CardID] {
			continue
		}
		scored = append(scored, model.ScoredCard{
			Card:         card,
			Score:        backfillScore,
			MatchedRules: fallbackRules,
			Explanations: r.explainer.Generate(p, card, fallbackRules),
		})
		present[card.CardID] = true
	}
	return scored
}

// confidence is the share of primary entries clearing the confidence
// threshold, rounded to two places. Callers guarantee primary is non-empty.
func (r *Recommender) confidence(primary []model.ScoredCard) decimal.Decimal {
	threshold := decimal.NewFromInt(int64(r.rules.ConfidenceThreshold))

	hits := 0
	for _, sc := range primary {
		if sc.Score.GreaterThanOrEqual(threshold) {
			hits++
		}
	}

	return decimal.NewFromInt(int64(hits)).
		Div(decimal.NewFromInt(int64(len(primary)))).
		Round(2)
}
