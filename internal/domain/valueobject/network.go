package valueobject

// Network is the payment network a card settles on.
type Network string

const (
	NetworkVisa       Network = "visa"
	NetworkMastercard Network = "mastercard"
	NetworkAmex       Network = "amex"
	NetworkRupay      Network = "rupay"
)

// String returns the string representation of the Network.
func (n Network) String() string {
	return string(n)
}

// NetworkPreference is the user's stated payment-network preference.
type NetworkPreference string

const (
	PreferenceNone           NetworkPreference = "no_preference"
	PreferenceVisaMastercard NetworkPreference = "visa_mastercard"
	PreferenceAmex           NetworkPreference = "amex"
	PreferenceRupay          NetworkPreference = "rupay"
)

// preferenceNetworks maps each known preference to the networks it admits.
var preferenceNetworks = map[NetworkPreference][]Network{
	PreferenceVisaMastercard: {NetworkVisa, NetworkMastercard},
	PreferenceAmex:           {NetworkAmex},
	PreferenceRupay:          {NetworkRupay},
}

// String returns the string representation of the NetworkPreference.
func (p NetworkPreference) String() string {
	return string(p)
}

// IsNone reports whether the user has no network preference.
func (p NetworkPreference) IsNone() bool {
	return p == PreferenceNone
}

// AllowedNetworks returns the networks admitted by this preference.
// An unknown preference admits nothing, which empties the candidate set
// rather than failing the request.
func (p NetworkPreference) AllowedNetworks() []Network {
	return preferenceNetworks[p]
}

// Admits reports whether the given network satisfies this preference.
func (p NetworkPreference) Admits(n Network) bool {
	for _, allowed := range p.AllowedNetworks() {
		if allowed == n {
			return true
		}
	}
	return false
}
