package valueobject

// Band names for the individual risk models. Each model has its own scale;
// the values are wire-stable and surface directly in API responses.

// FinancialRiskBand classifies the EMI-to-income ratio.
type FinancialRiskBand string

const (
	FinancialVerySafe FinancialRiskBand = "very_safe"
	FinancialSafe     FinancialRiskBand = "safe"
	FinancialRisky    FinancialRiskBand = "risky"
	FinancialHighRisk FinancialRiskBand = "high_risk"
)

// CreditBand classifies the numeric credit score.
type CreditBand string

const (
	CreditExcellent CreditBand = "excellent"
	CreditStrong    CreditBand = "strong"
	CreditFair      CreditBand = "fair"
	CreditWeak      CreditBand = "weak"
)

// BehaviourBand classifies cumulative repayment-behaviour points.
type BehaviourBand string

const (
	BehaviourExcellent BehaviourBand = "excellent"
	BehaviourStable    BehaviourBand = "stable"
	BehaviourWatch     BehaviourBand = "watch"
	BehaviourRisky     BehaviourBand = "risky"
)

// BNPLBand classifies buy-now-pay-later usage points.
type BNPLBand string

const (
	BNPLResponsible BNPLBand = "responsible"
	BNPLControlled  BNPLBand = "controlled"
	BNPLWatch       BNPLBand = "watch"
	BNPLHighRisk    BNPLBand = "high_risk"
)

// HealthBand is the consumer-facing band for the 0-100 health score.
type HealthBand string

const (
	HealthExcellent      HealthBand = "Excellent"
	HealthGood           HealthBand = "Good"
	HealthFair           HealthBand = "Fair"
	HealthNeedsAttention HealthBand = "Needs Attention"
)
