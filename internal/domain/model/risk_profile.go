package model

import (
	"github.com/shopspring/decimal"

	"github.com/MradulDixit-A/neupi-api/internal/domain/valueobject"
)

// FinancialRisk is the EMI-load sub-score of a risk profile.
type FinancialRisk struct {
	Score    int                           `json:"score"`
	EMIRatio decimal.Decimal               `json:"emi_ratio"`
	Band     valueobject.FinancialRiskBand `json:"risk_band"`
}

// CreditStrength is the credit-score sub-score of a risk profile.
type CreditStrength struct {
	Score int                    `json:"score"`
	Band  valueobject.CreditBand `json:"band"`
}

// BehaviourRisk is the repayment-behaviour sub-score of a risk profile.
type BehaviourRisk struct {
	Score int                       `json:"score"`
	Band  valueobject.BehaviourBand `json:"band"`
	Flags []string                  `json:"flags"`
}

// BNPLRisk is the buy-now-pay-later sub-score of a risk profile.
type BNPLRisk struct {
	Score int                  `json:"score"`
	Band  valueobject.BNPLBand `json:"band"`
	Flags []string             `json:"flags"`
}

// RiskProfile bundles the four independent risk sub-scores and their sum.
// It is derived fresh per request and shared by reference between the
// recommendation and health-score paths of that request, so both outputs
// always agree.
type RiskProfile struct {
	Financial      FinancialRisk  `json:"financial"`
	Credit         CreditStrength `json:"credit"`
	Behaviour      BehaviourRisk  `json:"behaviour"`
	BNPL           BNPLRisk       `json:"bnpl"`
	CompositeScore int            `json:"composite_score"`
}
