package valueobject

// CardTier is the product tier of a card in the master catalog.
type CardTier string

const (
	TierEntry        CardTier = "entry"
	TierSecured      CardTier = "secured"
	TierMid          CardTier = "mid"
	TierPremium      CardTier = "premium"
	TierSuperPremium CardTier = "super_premium"
)

// String returns the string representation of the CardTier.
func (t CardTier) String() string {
	return string(t)
}

// IsPremium reports whether the tier is premium or above.
func (t CardTier) IsPremium() bool {
	return t == TierPremium || t == TierSuperPremium
}

// IsStarter reports whether the tier is open to users without an
// established income or credit history.
func (t CardTier) IsStarter() bool {
	return t == TierEntry || t == TierSecured
}
