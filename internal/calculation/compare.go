package calculation

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/fedplan/tsp-simulator/internal/domain"
)

// Compare projects every scenario independently and aligns the resulting
// trajectories by calendar year. Nil entries (scenarios the caller could
// not resolve) are skipped without any partial-failure signaling; the
// calling layer owns existence and ownership checks. The projections are
// independent, so they run concurrently.
func (e *Engine) Compare(ctx context.Context, scenarios []*domain.Scenario, explicitYears int) (*domain.ScenarioComparison, error) {
	results := make([]*domain.ProjectionResult, len(scenarios))

	g, _ := errgroup.WithContext(ctx)
	for i, scenario := range scenarios {
		if scenario == nil {
			continue
		}
		g.Go(func() error {
			result, err := e.Project(scenario, explicitYears)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	comparison := &domain.ScenarioComparison{}
	for _, r := range results {
		if r != nil {
			comparison.Results = append(comparison.Results, *r)
		}
	}
	comparison.Rows = alignByYear(comparison.Results)
	return comparison, nil
}

// alignByYear builds one row per calendar year in the union of all
// trajectories, mapping each scenario's name to its ending balance for
// years its trajectory covers.
func alignByYear(results []domain.ProjectionResult) []domain.ComparisonRow {
	balances := make(map[int]map[string]decimal.Decimal)
	for _, result := range results {
		for _, year := range result.Years {
			if balances[year.Year] == nil {
				balances[year.Year] = make(map[string]decimal.Decimal)
			}
			balances[year.Year][result.ScenarioName] = year.EndingBalance
		}
	}

	years := make([]int, 0, len(balances))
	for year := range balances {
		years = append(years, year)
	}
	sort.Ints(years)

	rows := make([]domain.ComparisonRow, 0, len(years))
	for _, year := range years {
		rows = append(rows, domain.ComparisonRow{Year: year, Balances: balances[year]})
	}
	return rows
}
