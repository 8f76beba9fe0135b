package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MradulDixit-A/neupi-api/internal/domain/service"
	"github.com/MradulDixit-A/neupi-api/internal/domain/valueobject"
)

// rulesFile is the on-disk shape of a rules override. Every field is
// optional; absent fields keep their compiled-in values.
type rulesFile struct {
	MinimumScoreToShow  *int                       `json:"minimum_score_to_show"`
	TopResults          *int                       `json:"top_results"`
	ConfidenceThreshold *int                       `json:"confidence_threshold"`
	ScoringWeights      map[string]int             `json:"scoring_weights"`
	GoalCardTypes       map[string][]string        `json:"goal_card_types"`
	Explanations        map[string]explanationRule `json:"explanations"`
}

type explanationRule struct {
	Template string `json:"template"`
	Priority int    `json:"priority"`
	Type     string `json:"type"`
}

// LoadRules returns the stock rule set overlaid with the JSON file at path.
// An empty path returns the defaults unchanged.
func LoadRules(path string) (service.Rules, service.ExplanationRules, error) {
	rules := service.DefaultRules()
	explanations := service.DefaultExplanationRules()
	if path == "" {
		return rules, explanations, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, explanations, fmt.Errorf("read rules file: %w", err)
	}
	var overlay rulesFile
	if err := json.Unmarshal(data, &overlay); err != nil {
		return rules, explanations, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	if overlay.MinimumScoreToShow != nil {
		rules.MinimumScoreToShow = *overlay.MinimumScoreToShow
	}
	if overlay.TopResults != nil {
		rules.TopResults = *overlay.TopResults
	}
	if overlay.ConfidenceThreshold != nil {
		rules.ConfidenceThreshold = *overlay.ConfidenceThreshold
	}
	for name, weight := range overlay.ScoringWeights {
		rules.Weights[valueobject.Rule(name)] = weight
	}
	for goal, types := range overlay.GoalCardTypes {
		rules.GoalCardTypes[goal] = types
	}
	for name, er := range overlay.Explanations {
		if er.Template == "" {
			return rules, explanations, fmt.Errorf("rules file: explanation for %s has no template", name)
		}
		explanations[valueobject.Rule(name)] = service.ExplanationRule{
			Template: er.Template,
			Priority: er.Priority,
			Type:     valueobject.ExplanationType(er.Type),
		}
	}

	if err := rules.Validate(); err != nil {
		return rules, explanations, err
	}
	return rules, explanations, nil
}
