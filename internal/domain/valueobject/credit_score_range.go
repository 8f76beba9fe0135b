package valueobject

import "fmt"

// CreditScoreRange is the self-reported credit score bracket. It is optional
// on a profile; the empty value means "not provided".
type CreditScoreRange string

const (
	CreditScoreRangeUnknown  CreditScoreRange = ""
	CreditScoreRangeBelow650 CreditScoreRange = "below_650"
	CreditScoreRange650To700 CreditScoreRange = "650_700"
	CreditScoreRange700To750 CreditScoreRange = "700_750"
	CreditScoreRange750Plus  CreditScoreRange = "750_plus"
)

var validCreditScoreRanges = map[CreditScoreRange]bool{
	CreditScoreRangeBelow650: true,
	CreditScoreRange650To700: true,
	CreditScoreRange700To750: true,
	CreditScoreRange750Plus:  true,
}

// NewCreditScoreRange creates a validated CreditScoreRange from a string.
// An empty string is valid and means the range was not provided.
func NewCreditScoreRange(s string) (CreditScoreRange, error) {
	if s == "" {
		return CreditScoreRangeUnknown, nil
	}
	r := CreditScoreRange(s)
	if !validCreditScoreRanges[r] {
		return "", fmt.Errorf("invalid credit score range: %q", s)
	}
	return r, nil
}

// String returns the string representation of the CreditScoreRange.
func (r CreditScoreRange) String() string {
	return string(r)
}

// IsSubprime reports whether the bracket is below the lending floor and
// therefore restricted to entry and secured tiers.
func (r CreditScoreRange) IsSubprime() bool {
	return r == CreditScoreRangeBelow650
}
