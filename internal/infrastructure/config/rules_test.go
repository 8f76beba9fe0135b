package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MradulDixit-A/neupi-api/internal/domain/service"
	"github.com/MradulDixit-A/neupi-api/internal/domain/valueobject"
	"github.com/MradulDixit-A/neupi-api/internal/infrastructure/config"
)

func writeRulesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadRules_EmptyPathReturnsDefaults(t *testing.T) {
	rules, explanations, err := config.LoadRules("")
	require.NoError(t, err)
	assert.Equal(t, service.DefaultRules(), rules)
	assert.Equal(t, service.DefaultExplanationRules(), explanations)
}

func TestLoadRules_OverlaysPartialFile(t *testing.T) {
	path := writeRulesFile(t, `{
		"top_results": 3,
		"scoring_weights": {"network_match": 30},
		"goal_card_types": {"build_credit": ["secured"]}
	}`)

	rules, _, err := config.LoadRules(path)
	require.NoError(t, err)

	assert.Equal(t, 3, rules.TopResults)
	assert.Equal(t, 30, rules.Weights[valueobject.RuleNetworkMatch])
	// Untouched fields keep their defaults.
	assert.Equal(t, 60, rules.MinimumScoreToShow)
	assert.Equal(t, 25, rules.Weights[valueobject.RuleCreditScoreMatch])
	assert.Equal(t, []string{"secured"}, rules.GoalCardTypes["build_credit"])
	assert.Equal(t, []string{"cashback"}, rules.GoalCardTypes["save_money"])
}

func TestLoadRules_OverlaysExplanations(t *testing.T) {
	path := writeRulesFile(t, `{
		"explanations": {
			"network_match": {"template": "Runs on your favourite network", "priority": 55, "type": "benefit"}
		}
	}`)

	_, explanations, err := config.LoadRules(path)
	require.NoError(t, err)

	got := explanations[valueobject.RuleNetworkMatch]
	assert.Equal(t, "Runs on your favourite network", got.Template)
	assert.Equal(t, 55, got.Priority)
	// Untouched entries keep their defaults.
	assert.Equal(t, 90, explanations[valueobject.RuleCreditScoreMatch].Priority)
}

func TestLoadRules_RejectsInvalidOverlay(t *testing.T) {
	path := writeRulesFile(t, `{"top_results": 0}`)

	_, _, err := config.LoadRules(path)
	assert.Error(t, err)
}

func TestLoadRules_RejectsEmptyExplanationTemplate(t *testing.T) {
	path := writeRulesFile(t, `{
		"explanations": {"network_match": {"priority": 10, "type": "benefit"}}
	}`)

	_, _, err := config.LoadRules(path)
	assert.Error(t, err)
}

func TestLoadRules_MalformedJSON(t *testing.T) {
	path := writeRulesFile(t, `{`)

	_, _, err := config.LoadRules(path)
	assert.Error(t, err)
}

func TestLoadRules_MissingFile(t *testing.T) {
	_, _, err := config.LoadRules(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
