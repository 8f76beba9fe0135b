package service

import (
	"github.com/MradulDixit-A/neupi-api/internal/domain/model"
)

// RiskPenalties maps a card ID to the soft penalty accumulated during
// filtering. Penalties live in this request-scoped map instead of on the
// shared catalog records, so concurrent requests never observe each other's
// annotations.
type RiskPenalties map[string]int

// premiumEMIPenalty is subtracted later from premium-tier candidates when the
// user already carries a heavy EMI load.
const premiumEMIPenalty = 10

// EligibilityFilter removes candidates the user is categorically ineligible
// for and flags soft risk penalties on the survivors.
type EligibilityFilter struct{}

// NewEligibilityFilter returns a new filter instance.
func NewEligibilityFilter() *EligibilityFilter {
	return &EligibilityFilter{}
}

// Apply evaluates the hard exclusion rules independently for each candidate
// and returns the admitted cards in catalog order plus their penalties.
//
// Exclusion rules (any match excludes):
//   - youngest age bracket on a premium or super_premium tier
//   - student or retired employment outside entry/secured tiers
//   - sub-650 credit range outside entry/secured tiers
func (f *EligibilityFilter) Apply(p model.UserProfile, cards []model.Card) ([]model.Card, RiskPenalties) {
	emiRatio := p.EMIRatio()
	heavyEMI := emiRatio.GreaterThan(ratio030)

	filtered := make([]model.Card, 0, len(cards))
	penalties := make(RiskPenalties)

	for _, card := range cards {
		allowed := true

		if p.AgeGroup.IsYoungAdult() && card.Tier.IsPremium() {
			allowed = false
		}
		if p.EmploymentType.IsIncomeRestricted() && !card.Tier.IsStarter() {
			allowed = false
		}
		if p.CreditScoreRange.IsSubprime() && !card.Tier.IsStarter() {
			allowed = false
		}

		if !allowed {
			continue
		}

		if heavyEMI && card.Tier.IsPremium() {
			penalties[card.CardID] = premiumEMIPenalty
		}
		filtered = append(filtered, card)
	}

	return filtered, penalties
}
