package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/MradulDixit-A/neupi-api/internal/domain/model"
	"github.com/MradulDixit-A/neupi-api/internal/domain/valueobject"
)

// maxExplanations caps the explanation list per card.
const maxExplanations = 3

// ExplanationBuilder maps matched scoring rules to prioritized, user-facing
// explanations.
type ExplanationBuilder struct {
	table ExplanationRules
}

// NewExplanationBuilder creates a builder over the given template table.
func NewExplanationBuilder(table ExplanationRules) *ExplanationBuilder {
	return &ExplanationBuilder{table: table}
}

// Generate renders one explanation per matched rule that the table knows, in
// rule order, then sorts by priority descending (stable on ties) and keeps
// the top three. Rules absent from the table are skipped; placeholders the
// renderer cannot resolve stay verbatim in the text rather than failing the
// request.
func (b *ExplanationBuilder) Generate(p model.UserProfile, card model.Card, matched []valueobject.Rule) []model.Explanation {
	replacer := b.placeholderReplacer(p, card)

	explanations := make([]model.Explanation, 0, len(matched))
	for _, rule := range matched {
		cfg, ok := b.table[rule]
		if !ok {
			continue
		}
		explanations = append(explanations, model.Explanation{
			Text:     replacer.Replace(cfg.Template),
			Priority: cfg.Priority,
			Type:     cfg.Type,
		})
	}

	sort.SliceStable(explanations, func(i, j int) bool {
		return explanations[i].Priority > explanations[j].Priority
	})

	if len(explanations) > maxExplanations {
		explanations = explanations[:maxExplanations]
	}
	return explanations
}

// placeholderReplacer binds the template placeholders to this request's
// profile and card, with neutral fallbacks for empty values.
func (b *ExplanationBuilder) placeholderReplacer(p model.UserProfile, card model.Card) *strings.Replacer {
	network := card.Network.String()
	if network == "" {
		network = "your preferred"
	}

	goals := strings.Join(p.PrimaryGoals, ", ")
	if goals == "" {
		goals = "your goals"
	}

	spend := p.TopSpendCategory
	if spend == "" {
		spend = "your spending habits"
	}

	return strings.NewReplacer(
		"{network}", network,
		"{income}", strconv.FormatInt(p.MonthlyIncome, 10),
		"{goal}", goals,
		"{spend_category}", spend,
	)
}
