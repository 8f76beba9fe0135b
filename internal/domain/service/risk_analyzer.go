package service

import (
	"github.com/shopspring/decimal"

	"github.com/MradulDixit-A/neupi-api/internal/domain/model"
	"github.com/MradulDixit-A/neupi-api/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// RiskAnalyzer – domain service deriving independent risk sub-scores from a
// user profile. Every method is a total function: missing optional inputs
// were defaulted at profile construction and nothing here can fail.
// ---------------------------------------------------------------------------

// RiskAnalyzer computes the four risk signals and their composite.
type RiskAnalyzer struct{}

// NewRiskAnalyzer returns a new analyzer instance.
func NewRiskAnalyzer() *RiskAnalyzer {
	return &RiskAnalyzer{}
}

var (
	ratio015 = decimal.NewFromFloat(0.15)
	ratio020 = decimal.NewFromFloat(0.20)
	ratio030 = decimal.NewFromFloat(0.30)
	ratio035 = decimal.NewFromFloat(0.35)
	ratio050 = decimal.NewFromFloat(0.50)
	ratio060 = decimal.NewFromFloat(0.60)
	ratio080 = decimal.NewFromFloat(0.80)
)

// FinancialRisk scores the EMI-to-income load.
//
// Bands:
//
//	ratio < 0.20  -> 30 very_safe
//	ratio < 0.35  -> 22 safe
//	ratio < 0.50  -> 12 risky
//	otherwise     ->  5 high_risk
func (a *RiskAnalyzer) FinancialRisk(p model.UserProfile) model.FinancialRisk {
	ratio := p.EMIRatio()

	var (
		score int
		band  valueobject.FinancialRiskBand
	)
	switch {
	case ratio.LessThan(ratio020):
		score, band = 30, valueobject.FinancialVerySafe
	case ratio.LessThan(ratio035):
		score, band = 22, valueobject.FinancialSafe
	case ratio.LessThan(ratio050):
		score, band = 12, valueobject.FinancialRisky
	default:
		score, band = 5, valueobject.FinancialHighRisk
	}

	return model.FinancialRisk{
		Score:    score,
		EMIRatio: ratio.Round(2),
		Band:     band,
	}
}

// CreditStrength scores the numeric credit score (defaulted to 700 when the
// profile omitted it).
//
// Bands:
//
//	score >= 770  -> 35 excellent
//	score >= 730  -> 28 strong
//	score >= 680  -> 20 fair
//	otherwise     -> 10 weak
func (a *RiskAnalyzer) CreditStrength(p model.UserProfile) model.CreditStrength {
	switch {
	case p.CreditScoreValue >= 770:
		return model.CreditStrength{Score: 35, Band: valueobject.CreditExcellent}
	case p.CreditScoreValue >= 730:
		return model.CreditStrength{Score: 28, Band: valueobject.CreditStrong}
	case p.CreditScoreValue >= 680:
		return model.CreditStrength{Score: 20, Band: valueobject.CreditFair}
	default:
		return model.CreditStrength{Score: 10, Band: valueobject.CreditWeak}
	}
}

// BehaviourRisk accumulates fixed point deltas over repayment-behaviour
// signals and flags each negative signal it finds.
func (a *RiskAnalyzer) BehaviourRisk(p model.UserProfile) model.BehaviourRisk {
	points := 0
	var flags []string

	switch {
	case p.LatePayments12M == 0:
		points += 15
	case p.LatePayments12M <= 2:
		points += 8
		flags = append(flags, "mild_late_payment_history")
	default:
		points -= 10
		flags = append(flags, "frequent_late_payments")
	}

	switch {
	case p.CreditUtilization.LessThan(ratio030):
		points += 10
	case p.CreditUtilization.LessThan(ratio060):
		points += 4
		flags = append(flags, "medium_utilization")
	default:
		points -= 8
		flags = append(flags, "high_utilization_risk")
	}

	if p.RecentCreditInquiries > 3 {
		points -= 6
		flags = append(flags, "high_recent_credit_activity")
	}

	if p.ActiveLoans > 4 {
		points -= 5
		flags = append(flags, "multiple_active_loans")
	}

	if p.OldestAccountAgeYears.LessThan(decimal.NewFromInt(1)) {
		points -= 4
		flags = append(flags, "thin_credit_file")
	}

	var band valueobject.BehaviourBand
	switch {
	case points >= 20:
		band = valueobject.BehaviourExcellent
	case points >= 10:
		band = valueobject.BehaviourStable
	case points >= 0:
		band = valueobject.BehaviourWatch
	default:
		band = valueobject.BehaviourRisky
	}

	return model.BehaviourRisk{Score: points, Band: band, Flags: flags}
}

// BNPLRisk accumulates fixed point deltas over buy-now-pay-later signals.
func (a *RiskAnalyzer) BNPLRisk(p model.UserProfile) model.BNPLRisk {
	points := 0
	var flags []string

	switch {
	case p.BNPLSpendRatio.LessThan(ratio015):
		points += 10
	case p.BNPLSpendRatio.LessThan(ratio035):
		points += 4
		flags = append(flags, "moderate_bnpl_dependency")
	default:
		points -= 8
		flags = append(flags, "high_bnpl_dependency")
	}

	switch {
	case p.BNPLRollovers6M == 0:
		points += 8
	case p.BNPLRollovers6M <= 2:
		points += 2
		flags = append(flags, "occasional_bnpl_rollover")
	default:
		points -= 10
		flags = append(flags, "frequent_bnpl_rollovers")
	}

	if p.BNPLActiveLoans > 3 {
		points -= 6
		flags = append(flags, "bnpl_stack_risk")
	}

	if p.BNPLOnTimeRate.LessThan(ratio080) {
		points -= 7
		flags = append(flags, "bnpl_repayment_concerns")
	}

	var band valueobject.BNPLBand
	switch {
	case points >= 18:
		band = valueobject.BNPLResponsible
	case points >= 10:
		band = valueobject.BNPLControlled
	case points >= 0:
		band = valueobject.BNPLWatch
	default:
		band = valueobject.BNPLHighRisk
	}

	return model.BNPLRisk{Score: points, Band: band, Flags: flags}
}

// FullProfile computes all four sub-scores once and bundles them with their
// composite sum. The returned pointer is shared by the scoring and
// health-score paths of a single request.
func (a *RiskAnalyzer) FullProfile(p model.UserProfile) *model.RiskProfile {
	financial := a.FinancialRisk(p)
	credit := a.CreditStrength(p)
	behaviour := a.BehaviourRisk(p)
	bnpl := a.BNPLRisk(p)

	return &model.RiskProfile{
		Financial:      financial,
		Credit:         credit,
		Behaviour:      behaviour,
		BNPL:           bnpl,
		CompositeScore: financial.Score + credit.Score + behaviour.Score + bnpl.Score,
	}
}
