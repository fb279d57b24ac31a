package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundReturnSummary reports the annualized return derived from a fund's
// price history. A summary with fewer than two data points signals
// insufficient history rather than an error; callers decide whether to
// substitute a heuristic or display "no data".
type FundReturnSummary struct {
	Fund                Fund            `json:"fund"`
	AverageAnnualReturn decimal.Decimal `json:"average_annual_return"`
	TotalReturn         decimal.Decimal `json:"total_return"`
	DataPoints          int             `json:"data_points"`
	FirstDate           time.Time       `json:"first_date,omitempty"`
	LastDate            time.Time       `json:"last_date,omitempty"`
}

// HasHistory reports whether the summary was computed from actual price
// data rather than defaulted to zero.
func (s FundReturnSummary) HasHistory() bool {
	return s.DataPoints >= 2
}

// ProjectionYear is one simulated year of a scenario. All monetary
// fields are rounded to the cent.
type ProjectionYear struct {
	Year          int             `json:"year"`
	Age           *int            `json:"age,omitempty"`
	BasePay       decimal.Decimal `json:"base_pay"`
	Contribution  decimal.Decimal `json:"contribution"`
	EmployerMatch decimal.Decimal `json:"employer_match"`
	Growth        decimal.Decimal `json:"growth"`
	EndingBalance decimal.Decimal `json:"ending_balance"`
}

// ProjectionResult is the full trajectory and aggregate totals for one
// scenario. It is composed of primitive numeric and date fields only, so
// it serializes directly to any wire format.
type ProjectionResult struct {
	ScenarioID            string           `json:"scenario_id,omitempty"`
	ScenarioName          string           `json:"scenario_name"`
	Years                 []ProjectionYear `json:"years"`
	FinalBalance          decimal.Decimal  `json:"final_balance"`
	TotalContributions    decimal.Decimal  `json:"total_contributions"`
	TotalEmployerMatch    decimal.Decimal  `json:"total_employer_match"`
	TotalGrowth           decimal.Decimal  `json:"total_growth"`
	EffectiveAnnualReturn decimal.Decimal  `json:"effective_annual_return"`
	YearsProjected        int              `json:"years_projected"`
}

// ComparisonRow aligns the ending balances of several scenarios for a
// single calendar year. A scenario whose trajectory does not cover the
// year is absent from the map.
type ComparisonRow struct {
	Year     int                        `json:"year"`
	Balances map[string]decimal.Decimal `json:"balances"`
}

// ScenarioComparison holds per-scenario projections plus the aligned
// year-by-year comparison table built from the union of their years.
type ScenarioComparison struct {
	Results []ProjectionResult `json:"results"`
	Rows    []ComparisonRow    `json:"rows"`
}
