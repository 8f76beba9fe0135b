package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MradulDixit-A/neupi-api/internal/domain/valueobject"
)

func TestNewAgeGroup(t *testing.T) {
	for _, valid := range []string{"18_24", "25_35", "36_plus"} {
		got, err := valueobject.NewAgeGroup(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, got.String())
	}

	for _, invalid := range []string{"", "13_17", "25-35", "adult"} {
		_, err := valueobject.NewAgeGroup(invalid)
		assert.Error(t, err, "input %q", invalid)
	}
}

func TestAgeGroup_IsYoungAdult(t *testing.T) {
	assert.True(t, valueobject.AgeGroup18To24.IsYoungAdult())
	assert.False(t, valueobject.AgeGroup25To35.IsYoungAdult())
	assert.False(t, valueobject.AgeGroup36Plus.IsYoungAdult())
}

func TestEmploymentType_IsIncomeRestricted(t *testing.T) {
	assert.True(t, valueobject.EmploymentStudent.IsIncomeRestricted())
	assert.True(t, valueobject.EmploymentRetired.IsIncomeRestricted())
	assert.False(t, valueobject.EmploymentSalaried.IsIncomeRestricted())
	assert.False(t, valueobject.EmploymentSelfEmployed.IsIncomeRestricted())
	assert.False(t, valueobject.EmploymentType("gig_worker").IsIncomeRestricted())
}

func TestNewCreditScoreRange(t *testing.T) {
	t.Run("empty means unknown", func(t *testing.T) {
		got, err := valueobject.NewCreditScoreRange("")
		require.NoError(t, err)
		assert.Equal(t, valueobject.CreditScoreRangeUnknown, got)
		assert.False(t, got.IsSubprime())
	})

	t.Run("valid ranges", func(t *testing.T) {
		for _, valid := range []string{"below_650", "650_700", "700_750", "750_plus"} {
			got, err := valueobject.NewCreditScoreRange(valid)
			require.NoError(t, err)
			assert.Equal(t, valid, got.String())
		}
	})

	t.Run("invalid range", func(t *testing.T) {
		_, err := valueobject.NewCreditScoreRange("900_plus")
		assert.Error(t, err)
	})
}

func TestCreditScoreRange_IsSubprime(t *testing.T) {
	assert.True(t, valueobject.CreditScoreRangeBelow650.IsSubprime())
	assert.False(t, valueobject.CreditScoreRange650To700.IsSubprime())
	assert.False(t, valueobject.CreditScoreRangeUnknown.IsSubprime())
}

func TestNetworkPreference(t *testing.T) {
	t.Run("no preference", func(t *testing.T) {
		assert.True(t, valueobject.PreferenceNone.IsNone())
		assert.Empty(t, valueobject.PreferenceNone.AllowedNetworks())
	})

	t.Run("visa_mastercard admits both", func(t *testing.T) {
		p := valueobject.PreferenceVisaMastercard
		assert.True(t, p.Admits(valueobject.NetworkVisa))
		assert.True(t, p.Admits(valueobject.NetworkMastercard))
		assert.False(t, p.Admits(valueobject.NetworkAmex))
		assert.False(t, p.Admits(valueobject.NetworkRupay))
	})

	t.Run("single-network preferences", func(t *testing.T) {
		assert.True(t, valueobject.PreferenceAmex.Admits(valueobject.NetworkAmex))
		assert.False(t, valueobject.PreferenceAmex.Admits(valueobject.NetworkVisa))
		assert.True(t, valueobject.PreferenceRupay.Admits(valueobject.NetworkRupay))
	})

	t.Run("unknown preference admits nothing", func(t *testing.T) {
		p := valueobject.NetworkPreference("diners")
		assert.False(t, p.IsNone())
		assert.Empty(t, p.AllowedNetworks())
		assert.False(t, p.Admits(valueobject.NetworkVisa))
	})
}

func TestCardTier(t *testing.T) {
	assert.True(t, valueobject.TierPremium.IsPremium())
	assert.True(t, valueobject.TierSuperPremium.IsPremium())
	assert.False(t, valueobject.TierMid.IsPremium())

	assert.True(t, valueobject.TierEntry.IsStarter())
	assert.True(t, valueobject.TierSecured.IsStarter())
	assert.False(t, valueobject.TierMid.IsStarter())
	assert.False(t, valueobject.TierPremium.IsStarter())
}
