package calculation

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fedplan/tsp-simulator/internal/domain"
	"github.com/fedplan/tsp-simulator/pkg/dateutil"
)

// DefaultLookbackYears is the historical window used when a caller does
// not specify one.
const DefaultLookbackYears = 10

// Lifecycle fund glide-path heuristic, applied when no price history
// exists for the synthesized L fund: the further the target year, the
// more aggressive the assumed allocation.
var (
	lifecycleAggressiveReturn   = decimal.NewFromFloat(8.5)
	lifecycleModerateReturn     = decimal.NewFromFloat(7.0)
	lifecycleConservativeReturn = decimal.NewFromFloat(5.5)
)

// PriceHistory supplies a fund's price points on or after a given date,
// ordered by date ascending.
type PriceHistory interface {
	PricesSince(fund domain.Fund, from time.Time) ([]domain.FundPricePoint, error)
}

// ReturnModel derives annualized growth rates from historical fund
// prices. It is deterministic given the supplied history and clock.
type ReturnModel struct {
	History PriceHistory
	Now     func() time.Time
	Logger  Logger
}

// NewReturnModel creates a return model over the given price history.
func NewReturnModel(history PriceHistory) *ReturnModel {
	return &ReturnModel{
		History: history,
		Now:     time.Now,
		Logger:  NopLogger{},
	}
}

// HistoricalReturn computes the compound annual growth rate for a fund
// over the trailing lookback window. Fewer than two price points in the
// window yields a zero-return, zero-sample summary rather than an error.
func (m *ReturnModel) HistoricalReturn(fund domain.Fund, lookbackYears int) (domain.FundReturnSummary, error) {
	if lookbackYears <= 0 {
		lookbackYears = DefaultLookbackYears
	}

	from := m.Now().AddDate(-lookbackYears, 0, 0)
	points, err := m.History.PricesSince(fund, from)
	if err != nil {
		return domain.FundReturnSummary{}, fmt.Errorf("failed to load price history for fund %s: %w", fund, err)
	}

	summary := domain.FundReturnSummary{
		Fund:       fund,
		DataPoints: len(points),
	}
	if len(points) < 2 {
		m.Logger.Debugf("fund %s: %d price points in %d-year window, no return derived", fund, len(points), lookbackYears)
		return summary, nil
	}

	first, last := points[0], points[len(points)-1]
	summary.FirstDate = first.Date
	summary.LastDate = last.Date

	hundred := decimal.NewFromInt(100)
	summary.TotalReturn = last.Price.Sub(first.Price).Div(first.Price).Mul(hundred).Round(2)

	yearsElapsed := dateutil.YearsBetween(first.Date, last.Date)
	if yearsElapsed <= 0 {
		// Date ordering and the two-point guarantee make this unreachable,
		// but a zero denominator must never escape.
		return summary, nil
	}

	// shopspring decimal has no fractional exponent, so the geometric
	// mean goes through float64 and back.
	ratio, _ := last.Price.Div(first.Price).Float64()
	cagr := (math.Pow(ratio, 1/yearsElapsed) - 1) * 100
	summary.AverageAnnualReturn = decimal.NewFromFloat(cagr).Round(2)

	return summary, nil
}

// LifecycleReturn computes the annual return assumption for the
// lifecycle fund targeting the given year. Price history for the
// synthesized fund (e.g. L2050) wins when present; otherwise a
// three-tier glide-path heuristic applies based on how far out the
// target year is.
func (m *ReturnModel) LifecycleReturn(targetYear int) (decimal.Decimal, error) {
	summary, err := m.HistoricalReturn(domain.LifecycleFund(targetYear), DefaultLookbackYears)
	if err != nil {
		return decimal.Zero, err
	}
	if summary.HasHistory() {
		return summary.AverageAnnualReturn, nil
	}

	yearsOut := targetYear - m.Now().Year()
	switch {
	case yearsOut > 20:
		return lifecycleAggressiveReturn, nil
	case yearsOut >= 10:
		return lifecycleModerateReturn, nil
	default:
		return lifecycleConservativeReturn, nil
	}
}

// MemoryHistory is an in-memory PriceHistory keyed by fund. It sorts on
// demand, so callers may append points in any order.
type MemoryHistory map[domain.Fund][]domain.FundPricePoint

// Add appends a price point to the history.
func (h MemoryHistory) Add(fund domain.Fund, date time.Time, price decimal.Decimal) {
	h[fund] = append(h[fund], domain.FundPricePoint{Fund: fund, Date: date, Price: price})
}

// PricesSince returns the fund's points on or after from, ordered by date.
func (h MemoryHistory) PricesSince(fund domain.Fund, from time.Time) ([]domain.FundPricePoint, error) {
	var points []domain.FundPricePoint
	for _, p := range h[fund] {
		if !p.Date.Before(from) {
			points = append(points, p)
		}
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points, nil
}
