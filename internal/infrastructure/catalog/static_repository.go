package catalog

import (
	"context"

	"github.com/MradulDixit-A/neupi-api/internal/domain/model"
	"github.com/MradulDixit-A/neupi-api/internal/domain/valueobject"
)

// StaticRepository serves a compiled-in catalog. It is the fallback backend
// for local development and smoke environments with no catalog file or
// database available.
type StaticRepository struct {
	cards []model.Card
}

// NewStaticRepository builds a repository over the built-in catalog.
func NewStaticRepository() *StaticRepository {
	return &StaticRepository{cards: []model.Card{
		{
			CardID:             "amex_mrcc",
			Issuer:             "American Express",
			Network:            valueobject.NetworkAmex,
			CardType:           "rewards",
			Tier:               valueobject.TierMid,
			MinIncome:          40000,
			MinCreditScore:     700,
			SpendBonusCategory: []string{"travel_hotels", "online_shopping"},
			AnnualFee:          1500,
			EMIFriendly:        true,
		},
	}}
}

// FindAll returns the built-in catalog.
func (r *StaticRepository) FindAll(_ context.Context) ([]model.Card, error) {
	return r.cards, nil
}
