package service

import (
	"github.com/MradulDixit-A/neupi-api/internal/domain/model"
)

// NetworkFilter narrows candidates by the user's payment-network preference.
type NetworkFilter struct{}

// NewNetworkFilter returns a new filter instance.
func NewNetworkFilter() *NetworkFilter {
	return &NetworkFilter{}
}

// Apply keeps only candidates on a network the preference admits. With no
// preference the input passes through unchanged; an unknown preference admits
// no network and therefore empties the candidate set.
func (f *NetworkFilter) Apply(p model.UserProfile, cards []model.Card) []model.Card {
	if p.PreferredNetwork.IsNone() {
		return cards
	}

	filtered := make([]model.Card, 0, len(cards))
	for _, card := range cards {
		if p.PreferredNetwork.Admits(card.Network) {
			filtered = append(filtered, card)
		}
	}
	return filtered
}
