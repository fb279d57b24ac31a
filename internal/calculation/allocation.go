package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fedplan/tsp-simulator/internal/domain"
)

// WeightedReturn blends the historical returns of every fund carrying a
// nonzero allocation into a single annual return percentage. An all-zero
// allocation yields exactly zero. Only scenarios that opt into
// historical returns reach this; a fixed-rate scenario bypasses it.
func (m *ReturnModel) WeightedReturn(alloc domain.Allocation) (decimal.Decimal, error) {
	hundred := decimal.NewFromInt(100)
	weighted := decimal.Zero

	for _, fund := range domain.CoreFunds {
		pct := alloc.CorePercents()[fund]
		if pct.IsZero() {
			continue
		}
		summary, err := m.HistoricalReturn(fund, DefaultLookbackYears)
		if err != nil {
			return decimal.Zero, err
		}
		weighted = weighted.Add(pct.Div(hundred).Mul(summary.AverageAnnualReturn))
	}

	if !alloc.Lifecycle.IsZero() {
		lifecycleReturn, err := m.LifecycleReturn(alloc.LifecycleTargetYear)
		if err != nil {
			return decimal.Zero, err
		}
		weighted = weighted.Add(alloc.Lifecycle.Div(hundred).Mul(lifecycleReturn))
	}

	return weighted, nil
}
