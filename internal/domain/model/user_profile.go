package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MradulDixit-A/neupi-api/internal/domain/valueobject"
)

// UserProfile is the normalized financial profile a recommendation request is
// scored against. It is request-scoped: built once per request by
// NewUserProfile and never cached or shared across requests.
type UserProfile struct {
	AgeGroup         valueobject.AgeGroup
	EmploymentType   valueobject.EmploymentType
	MonthlyIncome    int64
	MonthlyEMI       int64
	CreditScoreRange valueobject.CreditScoreRange
	CreditScoreValue int
	PrimaryGoals     []string
	TopSpendCategory string
	PreferredNetwork valueobject.NetworkPreference

	// Behavioural signals.
	LatePayments12M       int
	CreditUtilization     decimal.Decimal
	RecentCreditInquiries int
	ActiveLoans           int
	OldestAccountAgeYears decimal.Decimal

	// BNPL signals.
	BNPLSpendRatio  decimal.Decimal
	BNPLActiveLoans int
	BNPLRollovers6M int
	BNPLOnTimeRate  decimal.Decimal
}

// ProfileAttributes carries the raw attributes for NewUserProfile. Optional
// fields are pointers so that "absent" and "zero" stay distinguishable until
// the sanctioned defaults are applied.
type ProfileAttributes struct {
	AgeGroup         string
	EmploymentType   string
	MonthlyIncome    int64
	MonthlyEMI       int64
	CreditScoreRange string
	CreditScoreValue *int
	PrimaryGoals     []string
	TopSpendCategory string
	PreferredNetwork string

	LatePayments12M       *int
	CreditUtilization     *float64
	RecentCreditInquiries *int
	ActiveLoans           *int
	OldestAccountAgeYears *float64

	BNPLSpendRatio  *float64
	BNPLActiveLoans *int
	BNPLRollovers6M *int
	BNPLOnTimeRate  *float64
}

// Defaults for absent optional fields. These are the only silent defaults the
// engine sanctions; every required field fails construction instead.
const (
	defaultCreditScoreValue = 700
)

var (
	defaultCreditUtilization = decimal.NewFromFloat(0.25)
	defaultAccountAgeYears   = decimal.NewFromInt(1)
	defaultBNPLOnTimeRate    = decimal.NewFromInt(1)
)

// NewUserProfile validates required attributes, applies the sanctioned
// defaults for absent optional ones, and returns an immutable profile.
func NewUserProfile(attrs ProfileAttributes) (UserProfile, error) {
	ageGroup, err := valueobject.NewAgeGroup(attrs.AgeGroup)
	if err != nil {
		return UserProfile{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	if attrs.EmploymentType == "" {
		return UserProfile{}, fmt.Errorf("%w: employment type is required", ErrInvalidProfile)
	}
	if attrs.MonthlyIncome < 0 {
		return UserProfile{}, fmt.Errorf("%w: monthly income must not be negative", ErrInvalidProfile)
	}
	if attrs.MonthlyEMI < 0 {
		return UserProfile{}, fmt.Errorf("%w: monthly EMI must not be negative", ErrInvalidProfile)
	}
	if attrs.TopSpendCategory == "" {
		return UserProfile{}, fmt.Errorf("%w: top spend category is required", ErrInvalidProfile)
	}
	if attrs.PreferredNetwork == "" {
		return UserProfile{}, fmt.Errorf("%w: preferred network is required", ErrInvalidProfile)
	}
	scoreRange, err := valueobject.NewCreditScoreRange(attrs.CreditScoreRange)
	if err != nil {
		return UserProfile{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	p := UserProfile{
		AgeGroup:         ageGroup,
		EmploymentType:   valueobject.EmploymentType(attrs.EmploymentType),
		MonthlyIncome:    attrs.MonthlyIncome,
		MonthlyEMI:       attrs.MonthlyEMI,
		CreditScoreRange: scoreRange,
		CreditScoreValue: defaultCreditScoreValue,
		PrimaryGoals:     append([]string(nil), attrs.PrimaryGoals...),
		TopSpendCategory: attrs.TopSpendCategory,
		PreferredNetwork: valueobject.NetworkPreference(attrs.PreferredNetwork),

		CreditUtilization:     defaultCreditUtilization,
		OldestAccountAgeYears: defaultAccountAgeYears,
		BNPLSpendRatio:        decimal.Zero,
		BNPLOnTimeRate:        defaultBNPLOnTimeRate,
	}

	if attrs.CreditScoreValue != nil {
		p.CreditScoreValue = *attrs.CreditScoreValue
	}
	if attrs.LatePayments12M != nil {
		p.LatePayments12M = *attrs.LatePayments12M
	}
	if attrs.CreditUtilization != nil {
		p.CreditUtilization = decimal.NewFromFloat(*attrs.CreditUtilization)
	}
	if attrs.RecentCreditInquiries != nil {
		p.RecentCreditInquiries = *attrs.RecentCreditInquiries
	}
	if attrs.ActiveLoans != nil {
		p.ActiveLoans = *attrs.ActiveLoans
	}
	if attrs.OldestAccountAgeYears != nil {
		p.OldestAccountAgeYears = decimal.NewFromFloat(*attrs.OldestAccountAgeYears)
	}
	if attrs.BNPLSpendRatio != nil {
		p.BNPLSpendRatio = decimal.NewFromFloat(*attrs.BNPLSpendRatio)
	}
	if attrs.BNPLActiveLoans != nil {
		p.BNPLActiveLoans = *attrs.BNPLActiveLoans
	}
	if attrs.BNPLRollovers6M != nil {
		p.BNPLRollovers6M = *attrs.BNPLRollovers6M
	}
	if attrs.BNPLOnTimeRate != nil {
		p.BNPLOnTimeRate = decimal.NewFromFloat(*attrs.BNPLOnTimeRate)
	}

	return p, nil
}

// EMIRatio returns monthly EMI over monthly income. Income is floored at 1
// so a zero-income profile resolves to the worst band instead of a
// divide-by-zero fault.
func (p UserProfile) EMIRatio() decimal.Decimal {
	income := p.MonthlyIncome
	if income < 1 {
		income = 1
	}
	return decimal.NewFromInt(p.MonthlyEMI).Div(decimal.NewFromInt(income))
}
