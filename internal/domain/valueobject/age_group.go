package valueobject

import "fmt"

// AgeGroup represents the age bracket a user self-reports during onboarding.
// This is an immutable value object.
type AgeGroup string

const (
	AgeGroup18To24 AgeGroup = "18_24"
	AgeGroup25To35 AgeGroup = "25_35"
	AgeGroup36Plus AgeGroup = "36_plus"
)

// validAgeGroups contains all valid age groups for validation.
var validAgeGroups = map[AgeGroup]bool{
	AgeGroup18To24: true,
	AgeGroup25To35: true,
	AgeGroup36Plus: true,
}

// NewAgeGroup creates a validated AgeGroup from a string.
func NewAgeGroup(s string) (AgeGroup, error) {
	ag := AgeGroup(s)
	if !validAgeGroups[ag] {
		return "", fmt.Errorf("invalid age group: %q, must be one of 18_24, 25_35, 36_plus", s)
	}
	return ag, nil
}

// String returns the string representation of the AgeGroup.
func (ag AgeGroup) String() string {
	return string(ag)
}

// IsYoungAdult reports whether the user falls in the youngest bracket,
// which is barred from premium-tier products.
func (ag AgeGroup) IsYoungAdult() bool {
	return ag == AgeGroup18To24
}
