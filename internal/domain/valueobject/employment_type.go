package valueobject

// EmploymentType is a free-form employment category. Well-known values get
// constants; unknown values flow through scoring untouched.
type EmploymentType string

const (
	EmploymentStudent      EmploymentType = "student"
	EmploymentRetired      EmploymentType = "retired"
	EmploymentSalaried     EmploymentType = "salaried"
	EmploymentSelfEmployed EmploymentType = "self_employed"
)

// String returns the string representation of the EmploymentType.
func (et EmploymentType) String() string {
	return string(et)
}

// IsIncomeRestricted reports whether the category is limited to entry and
// secured tiers (no regular salary stream).
func (et EmploymentType) IsIncomeRestricted() bool {
	return et == EmploymentStudent || et == EmploymentRetired
}
