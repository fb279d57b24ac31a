package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Fund identifies a TSP investment fund by its short name.
type Fund string

// The five individually managed funds.
const (
	FundG Fund = "G"
	FundF Fund = "F"
	FundC Fund = "C"
	FundS Fund = "S"
	FundI Fund = "I"
)

// CoreFunds lists the individually managed funds in display order.
var CoreFunds = []Fund{FundG, FundF, FundC, FundS, FundI}

// LifecycleFund returns the synthetic fund identifier for the lifecycle
// fund with the given target year, e.g. L2050.
func LifecycleFund(targetYear int) Fund {
	return Fund(fmt.Sprintf("L%d", targetYear))
}

// Allocation holds the percentage of contributions directed to each fund.
// Callers guarantee the six percentages sum to 100 before a scenario
// reaches the projection engine.
type Allocation struct {
	GFund               decimal.Decimal `json:"g_fund" yaml:"g_fund"`
	FFund               decimal.Decimal `json:"f_fund" yaml:"f_fund"`
	CFund               decimal.Decimal `json:"c_fund" yaml:"c_fund"`
	SFund               decimal.Decimal `json:"s_fund" yaml:"s_fund"`
	IFund               decimal.Decimal `json:"i_fund" yaml:"i_fund"`
	Lifecycle           decimal.Decimal `json:"lifecycle" yaml:"lifecycle"`
	LifecycleTargetYear int             `json:"lifecycle_target_year,omitempty" yaml:"lifecycle_target_year,omitempty"`
}

// CorePercents returns the allocation percentages for the five core funds.
func (a Allocation) CorePercents() map[Fund]decimal.Decimal {
	return map[Fund]decimal.Decimal{
		FundG: a.GFund,
		FundF: a.FFund,
		FundC: a.CFund,
		FundS: a.SFund,
		FundI: a.IFund,
	}
}

// Total returns the sum of all six allocation percentages.
func (a Allocation) Total() decimal.Decimal {
	return a.GFund.Add(a.FFund).Add(a.CFund).Add(a.SFund).Add(a.IFund).Add(a.Lifecycle)
}

// ReturnMode selects how a scenario's annual return is determined.
type ReturnMode string

const (
	// ReturnHistorical derives the return from fund price history,
	// weighted by the scenario's allocation.
	ReturnHistorical ReturnMode = "historical"
	// ReturnFixed uses a caller-supplied flat annual return percentage.
	ReturnFixed ReturnMode = "fixed"
)

// ReturnAssumption is the tagged union of the two return modes. The
// engine resolves it to a single rate once, before the projection loop.
type ReturnAssumption struct {
	Mode               ReturnMode      `json:"mode" yaml:"mode"`
	FixedAnnualPercent decimal.Decimal `json:"fixed_annual_percent,omitempty" yaml:"fixed_annual_percent,omitempty"`
}

// Scenario describes one contribution strategy to simulate forward in
// time. It is owned by the caller and immutable during a projection run.
type Scenario struct {
	ID        string `json:"id,omitempty" yaml:"id,omitempty"`
	ProfileID string `json:"profile_id,omitempty" yaml:"profile_id,omitempty"`
	Name      string `json:"name" yaml:"name"`

	CurrentBalance decimal.Decimal `json:"current_balance" yaml:"current_balance"`
	AsOfDate       time.Time       `json:"as_of_date" yaml:"as_of_date"`

	ContributionPercent    decimal.Decimal `json:"contribution_percent" yaml:"contribution_percent"`
	AnnualBasePay          decimal.Decimal `json:"annual_base_pay" yaml:"annual_base_pay"`
	AnnualPayGrowthPercent decimal.Decimal `json:"annual_pay_growth_percent" yaml:"annual_pay_growth_percent"`

	Allocation Allocation       `json:"allocation" yaml:"allocation"`
	Returns    ReturnAssumption `json:"returns" yaml:"returns"`

	// Both optional; when absent the engine falls back to an explicit
	// or default horizon instead of a retirement-age horizon.
	RetirementAge *int `json:"retirement_age,omitempty" yaml:"retirement_age,omitempty"`
	BirthYear     *int `json:"birth_year,omitempty" yaml:"birth_year,omitempty"`
}

// Validate checks the structural preconditions the projection engine
// assumes. The engine itself does not re-validate; every path into it
// (YAML input files, HTTP handlers) calls this first.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if s.CurrentBalance.IsNegative() {
		return fmt.Errorf("current balance cannot be negative")
	}
	if s.AnnualBasePay.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("annual base pay must be positive")
	}
	if s.ContributionPercent.IsNegative() {
		return fmt.Errorf("contribution percent cannot be negative")
	}
	for fund, pct := range s.Allocation.CorePercents() {
		if pct.IsNegative() {
			return fmt.Errorf("%s fund allocation cannot be negative", fund)
		}
	}
	if s.Allocation.Lifecycle.IsNegative() {
		return fmt.Errorf("lifecycle allocation cannot be negative")
	}
	if !s.Allocation.Total().Equal(decimal.NewFromInt(100)) {
		return fmt.Errorf("allocation percentages must sum to 100, got %s", s.Allocation.Total().String())
	}
	if s.Allocation.Lifecycle.IsPositive() && s.Allocation.LifecycleTargetYear == 0 {
		return fmt.Errorf("lifecycle target year is required when lifecycle allocation is nonzero")
	}
	switch s.Returns.Mode {
	case ReturnHistorical, ReturnFixed:
	default:
		return fmt.Errorf("return mode must be %q or %q, got %q", ReturnHistorical, ReturnFixed, s.Returns.Mode)
	}
	if s.BirthYear != nil && *s.BirthYear <= 0 {
		return fmt.Errorf("birth year must be positive")
	}
	if s.RetirementAge != nil && *s.RetirementAge <= 0 {
		return fmt.Errorf("retirement age must be positive")
	}
	return nil
}

// FundPricePoint is a single observed share price for a fund. Histories
// are ordered by date with at most one point per fund per date; that
// uniqueness is enforced by the supplying store.
type FundPricePoint struct {
	Fund  Fund            `json:"fund"`
	Date  time.Time       `json:"date"`
	Price decimal.Decimal `json:"price"`
}
