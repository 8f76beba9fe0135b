package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MradulDixit-A/neupi-api/internal/domain/model"
	"github.com/MradulDixit-A/neupi-api/internal/domain/service"
	"github.com/MradulDixit-A/neupi-api/internal/domain/valueobject"
)

func testCatalog() []model.Card {
	return []model.Card{
		{
			CardID:             "secured_starter",
			Issuer:             "SBI",
			Network:            valueobject.NetworkRupay,
			CardType:           "cashback",
			Tier:               valueobject.TierSecured,
			MinIncome:          10_000,
			MinCreditScore:     0,
			SpendBonusCategory: []string{"groceries"},
		},
		{
			CardID:             "entry_cashback",
			Issuer:             "Axis",
			Network:            valueobject.NetworkVisa,
			CardType:           "cashback",
			Tier:               valueobject.TierEntry,
			MinIncome:          20_000,
			MinCreditScore:     650,
			SpendBonusCategory: []string{"online_shopping"},
		},
		{
			CardID:             "mid_rewards",
			Issuer:             "HDFC",
			Network:            valueobject.NetworkVisa,
			CardType:           "rewards",
			Tier:               valueobject.TierMid,
			MinIncome:          40_000,
			MinCreditScore:     700,
			SpendBonusCategory: []string{"dining", "online_shopping"},
		},
		{
			CardID:             "premium_travel",
			Issuer:             "HDFC",
			Network:            valueobject.NetworkVisa,
			CardType:           "travel",
			Tier:               valueobject.TierPremium,
			MinIncome:          100_000,
			MinCreditScore:     750,
			SpendBonusCategory: []string{"travel_hotels"},
		},
		{
			CardID:             "super_premium",
			Issuer:             "Amex",
			Network:            valueobject.NetworkAmex,
			CardType:           "travel",
			Tier:               valueobject.TierSuperPremium,
			MinIncome:          200_000,
			MinCreditScore:     780,
			SpendBonusCategory: []string{"travel_hotels"},
		},
	}
}

func cardIDs(cards []model.Card) []string {
	ids := make([]string, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.CardID)
	}
	return ids
}

func TestEligibilityFilter_AdmitsEverythingForStrongProfile(t *testing.T) {
	filter := service.NewEligibilityFilter()
	p := newTestProfile(t, nil)

	filtered, penalties := filter.Apply(p, testCatalog())

	assert.Len(t, filtered, 5)
	assert.Empty(t, penalties)
	assert.Equal(t, cardIDs(testCatalog()), cardIDs(filtered), "catalog order must be preserved")
}

func TestEligibilityFilter_YoungAdultLosesPremiumTiers(t *testing.T) {
	filter := service.NewEligibilityFilter()
	p := newTestProfile(t, func(a *model.ProfileAttributes) {
		a.AgeGroup = "18_24"
	})

	filtered, _ := filter.Apply(p, testCatalog())

	assert.Equal(t, []string{"secured_starter", "entry_cashback", "mid_rewards"}, cardIDs(filtered))
}

func TestEligibilityFilter_RestrictedEmploymentKeepsStarterTiersOnly(t *testing.T) {
	filter := service.NewEligibilityFilter()

	for _, employment := range []string{"student", "retired"} {
		t.Run(employment, func(t *testing.T) {
			p := newTestProfile(t, func(a *model.ProfileAttributes) {
				a.EmploymentType = employment
			})

			filtered, _ := filter.Apply(p, testCatalog())
			assert.Equal(t, []string{"secured_starter", "entry_cashback"}, cardIDs(filtered))
		})
	}
}

func TestEligibilityFilter_SubprimeRangeKeepsStarterTiersOnly(t *testing.T) {
	filter := service.NewEligibilityFilter()
	p := newTestProfile(t, func(a *model.ProfileAttributes) {
		a.CreditScoreRange = "below_650"
	})

	filtered, _ := filter.Apply(p, testCatalog())
	assert.Equal(t, []string{"secured_starter", "entry_cashback"}, cardIDs(filtered))
}

func TestEligibilityFilter_RulesExcludeIndependently(t *testing.T) {
	filter := service.NewEligibilityFilter()
	// Young adult AND student: premium gone for both reasons, mid gone for
	// employment, starters survive.
	p := newTestProfile(t, func(a *model.ProfileAttributes) {
		a.AgeGroup = "18_24"
		a.EmploymentType = "student"
	})

	filtered, _ := filter.Apply(p, testCatalog())
	assert.Equal(t, []string{"secured_starter", "entry_cashback"}, cardIDs(filtered))
}

func TestEligibilityFilter_HeavyEMIPenalizesPremiumSurvivors(t *testing.T) {
	filter := service.NewEligibilityFilter()
	p := newTestProfile(t, func(a *model.ProfileAttributes) {
		a.MonthlyIncome = 100_000
		a.MonthlyEMI = 40_000 // ratio 0.40 > 0.30
	})

	filtered, penalties := filter.Apply(p, testCatalog())

	assert.Len(t, filtered, 5, "heavy EMI load penalizes, never excludes")
	assert.Equal(t, service.RiskPenalties{
		"premium_travel": 10,
		"super_premium":  10,
	}, penalties)
}

func TestEligibilityFilter_EMIRatioAtBoundaryNotPenalized(t *testing.T) {
	filter := service.NewEligibilityFilter()
	p := newTestProfile(t, func(a *model.ProfileAttributes) {
		a.MonthlyIncome = 100_000
		a.MonthlyEMI = 30_000 // exactly 0.30
	})

	_, penalties := filter.Apply(p, testCatalog())
	assert.Empty(t, penalties, "penalty applies strictly above 0.30")
}
