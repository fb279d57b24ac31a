package calculation

import (
	"github.com/shopspring/decimal"
)

// Limits holds the annual contribution ceilings for one tax year. They
// are injected configuration, not derived values, so a new tax year only
// touches this struct.
type Limits struct {
	ElectiveDeferral decimal.Decimal `json:"elective_deferral"`
	CatchUp          decimal.Decimal `json:"catch_up"`
	CatchUpAge       int             `json:"catch_up_age"`
}

// DefaultLimits returns the 2025 IRS limits.
func DefaultLimits() Limits {
	return Limits{
		ElectiveDeferral: decimal.NewFromInt(23500),
		CatchUp:          decimal.NewFromInt(7500),
		CatchUpAge:       50,
	}
}

// MatchBreakpoint is one vertex of the employer match curve, exposed for
// display alongside the limits.
type MatchBreakpoint struct {
	EmployeePercent decimal.Decimal `json:"employee_percent"`
	MatchPercent    decimal.Decimal `json:"match_percent"`
}

// MatchCalculator implements the blended-retirement employer match curve
// and the age-based contribution ceiling. All methods are pure.
type MatchCalculator struct {
	Limits Limits
}

// NewMatchCalculator creates a calculator with the default limits.
func NewMatchCalculator() *MatchCalculator {
	return &MatchCalculator{Limits: DefaultLimits()}
}

var (
	matchAutomatic  = decimal.NewFromInt(1)
	matchFullCap    = decimal.NewFromInt(3)
	matchHalfCap    = decimal.NewFromInt(5)
	matchAtFullCap  = decimal.NewFromInt(4)
	matchHalfFactor = decimal.NewFromFloat(0.5)
)

// EmployerMatchPercent returns the employer contribution as a percentage
// of base pay for a given employee contribution percentage: an automatic
// 1%, dollar-for-dollar on the first 3%, fifty cents on the dollar for
// the next 2%, saturating at 5%. The curve is continuous at the 3% and
// 5% breakpoints and non-decreasing everywhere.
func (c *MatchCalculator) EmployerMatchPercent(contributionPct decimal.Decimal) decimal.Decimal {
	switch {
	case contributionPct.LessThanOrEqual(decimal.Zero):
		return matchAutomatic
	case contributionPct.LessThan(matchFullCap):
		return matchAutomatic.Add(contributionPct)
	case contributionPct.LessThan(matchHalfCap):
		return matchAtFullCap.Add(matchHalfFactor.Mul(contributionPct.Sub(matchFullCap)))
	default:
		return matchHalfCap
	}
}

// AnnualContributionLimit returns the employee contribution ceiling for
// the given age. An unknown age gets the regular limit; the catch-up
// limit applies from the catch-up age onward.
func (c *MatchCalculator) AnnualContributionLimit(age *int) decimal.Decimal {
	if age != nil && *age >= c.Limits.CatchUpAge {
		return c.Limits.ElectiveDeferral.Add(c.Limits.CatchUp)
	}
	return c.Limits.ElectiveDeferral
}

// MatchCurve returns the vertices of the employer match curve for
// display purposes.
func (c *MatchCalculator) MatchCurve() []MatchBreakpoint {
	return []MatchBreakpoint{
		{EmployeePercent: decimal.Zero, MatchPercent: matchAutomatic},
		{EmployeePercent: matchFullCap, MatchPercent: matchAtFullCap},
		{EmployeePercent: matchHalfCap, MatchPercent: matchHalfCap},
	}
}
