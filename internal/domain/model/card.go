package model

import (
	"fmt"

	"github.com/MradulDixit-A/neupi-api/internal/domain/valueobject"
)

// Card is a single product record in the card master catalog. Catalog records
// are read-only once loaded: the scoring pipeline never writes to them, so a
// single catalog slice can serve concurrent requests.
type Card struct {
	CardID             string                  `json:"card_id"`
	Issuer             string                  `json:"issuer"`
	Network            valueobject.Network     `json:"network"`
	CardType           string                  `json:"card_type"`
	Tier               valueobject.CardTier    `json:"tier"`
	MinIncome          int64                   `json:"min_income"`
	MinCreditScore     int                     `json:"min_credit_score"`
	SpendBonusCategory []string                `json:"spend_bonus_category"`
	AnnualFee          int64                   `json:"annual_fee,omitempty"`
	EMIFriendly        bool                    `json:"emi_friendly,omitempty"`
}

// Validate checks the structural invariants of a catalog record. Catalog
// sources call this per record and drop invalid entries rather than failing
// the whole load.
func (c Card) Validate() error {
	if c.CardID == "" {
		return fmt.Errorf("missing required field: card_id")
	}
	if c.Issuer == "" {
		return fmt.Errorf("card %s: missing required field: issuer", c.CardID)
	}
	if c.Network == "" {
		return fmt.Errorf("card %s: missing required field: network", c.CardID)
	}
	if c.CardType == "" {
		return fmt.Errorf("card %s: missing required field: card_type", c.CardID)
	}
	if c.Tier == "" {
		return fmt.Errorf("card %s: missing required field: tier", c.CardID)
	}
	if c.MinIncome < 0 {
		return fmt.Errorf("card %s: min_income must not be negative", c.CardID)
	}
	if c.MinCreditScore < 0 {
		return fmt.Errorf("card %s: min_credit_score must not be negative", c.CardID)
	}
	if c.SpendBonusCategory == nil {
		return fmt.Errorf("card %s: missing required field: spend_bonus_category", c.CardID)
	}
	return nil
}

// HasSpendBonus reports whether the card pays a bonus in the given category.
func (c Card) HasSpendBonus(category string) bool {
	for _, sc := range c.SpendBonusCategory {
		if sc == category {
			return true
		}
	}
	return false
}
