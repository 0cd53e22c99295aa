package calendar

// Year cycle constants
const (
	// Cycle1 represents Year 1 of the two-year daily lectionary cycle.
	Cycle1 = 1

	// Cycle2 represents Year 2 of the two-year daily lectionary cycle.
	Cycle2 = 2

	// ReferenceYear is the liturgical year used as a baseline for cycle calculation.
	// The liturgical year starting with Advent 2024 is Cycle 1.
	ReferenceYear = 2024

	// ReferenceCycle is the cycle for the reference year.
	ReferenceCycle = Cycle1

	// SundayReferenceYear begins Year A of the three-year Sunday cycle.
	SundayReferenceYear = 2022
)

var sundayCycles = [3]string{"A", "B", "C"}

// LiturgicalYear returns the starting year of the liturgical year
// that contains the given date.
//
// The liturgical year is identified by the year in which its Advent begins.
// For example, the liturgical year "2024" runs from Advent 2024 through
// the Saturday before Advent 2025.
func LiturgicalYear(date Date) int {
	if date.Before(CalculateAdvent(date.Year)) {
		return date.Year - 1
	}
	return date.Year
}

// GetYearCycle determines which year cycle (1 or 2) applies to a given date.
//
// Cycle determination:
//   - The liturgical year starting Advent 2024 is Cycle 1
//   - The liturgical year starting Advent 2025 is Cycle 2
//   - The pattern alternates each liturgical year
//
// Examples:
//   - December 1, 2024 (Advent 2024): Cycle 1
//   - November 15, 2024 (before Advent 2024): Cycle 2
//   - March 15, 2025: Cycle 1
func GetYearCycle(date Date) int {
	if mod(LiturgicalYear(date)-ReferenceYear, 2) == 0 {
		return ReferenceCycle
	}
	if ReferenceCycle == Cycle1 {
		return Cycle2
	}
	return Cycle1
}

// SundayCycle returns the Sunday lectionary year (A, B or C) for a date.
func SundayCycle(date Date) string {
	return sundayCycles[mod(LiturgicalYear(date)-SundayReferenceYear, 3)]
}

// mod is the non-negative remainder of a / n.
func mod(a, n int) int {
	return ((a % n) + n) % n
}
