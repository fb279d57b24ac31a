package dateutil

import (
	"time"
)

// YearsBetween returns the fractional number of years between two dates,
// using the 365.25-day mean year.
func YearsBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / 24 / 365.25
}

// AgeInYear returns the age reached during a calendar year given a birth
// year, the convention used for annual contribution limits.
func AgeInYear(birthYear, year int) int {
	return year - birthYear
}
