package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedplan/tsp-simulator/internal/domain"
)

func intPtr(v int) *int { return &v }

func newTestEngine(history MemoryHistory) *Engine {
	engine := NewEngine(history)
	engine.SetClock(fixedClock)
	return engine
}

// fixedRateScenario is a baseline scenario with a 7% flat return.
func fixedRateScenario() *domain.Scenario {
	return &domain.Scenario{
		Name:                   "baseline",
		CurrentBalance:         decimal.NewFromInt(50000),
		AsOfDate:               testNow,
		ContributionPercent:    decimal.NewFromInt(5),
		AnnualBasePay:          decimal.NewFromInt(85000),
		AnnualPayGrowthPercent: decimal.NewFromInt(2),
		Allocation:             domain.Allocation{CFund: decimal.NewFromInt(100)},
		Returns: domain.ReturnAssumption{
			Mode:               domain.ReturnFixed,
			FixedAnnualPercent: decimal.NewFromInt(7),
		},
		RetirementAge: intPtr(62),
		BirthYear:     intPtr(1980),
	}
}

// TestProjectFirstYearIsSnapshot verifies the partial first year: growth
// is computed on the starting balance, but the balance itself is left
// untouched and nothing enters the running totals.
func TestProjectFirstYearIsSnapshot(t *testing.T) {
	engine := newTestEngine(MemoryHistory{})
	scenario := fixedRateScenario()

	result, err := engine.Project(scenario, 0)
	require.NoError(t, err)
	require.NotEmpty(t, result.Years)

	year0 := result.Years[0]
	assert.Equal(t, testNow.Year(), year0.Year)
	assert.True(t, year0.EndingBalance.Equal(scenario.CurrentBalance),
		"year 0 balance must equal the starting balance exactly, got %s", year0.EndingBalance.String())

	// 50000 * 7% on the starting balance alone.
	assert.True(t, year0.Growth.Equal(decimal.NewFromInt(3500)),
		"expected year 0 growth 3500.00, got %s", year0.Growth.String())

	// Contribution and match are reported for display symmetry...
	assert.True(t, year0.Contribution.Equal(decimal.NewFromInt(4250)))
	assert.True(t, year0.EmployerMatch.Equal(decimal.NewFromInt(4250)))

	// ...but excluded from the totals.
	firstReal := result.Years[1]
	assert.True(t, result.TotalContributions.GreaterThanOrEqual(firstReal.Contribution))
	sumFromYears := decimal.Zero
	for _, y := range result.Years[1:] {
		sumFromYears = sumFromYears.Add(y.Contribution)
	}
	assert.True(t, result.TotalContributions.Equal(sumFromYears),
		"totals must cover years 1..N only: %s vs %s", result.TotalContributions.String(), sumFromYears.String())
}

// TestProjectMidYearApproximation pins the year-1 arithmetic: half the
// year's inflows earn the annual return.
func TestProjectMidYearApproximation(t *testing.T) {
	engine := newTestEngine(MemoryHistory{})
	result, err := engine.Project(fixedRateScenario(), 0)
	require.NoError(t, err)
	require.True(t, len(result.Years) >= 2)

	year1 := result.Years[1]
	// contribution = match = 4250; growth = (50000 + 4250) * 7% = 3797.50
	assert.True(t, year1.Growth.Equal(decimal.NewFromFloat(3797.50)),
		"expected growth 3797.50, got %s", year1.Growth.String())
	// balance = 50000 + 4250 + 4250 + 3797.50
	assert.True(t, year1.EndingBalance.Equal(decimal.NewFromFloat(62297.50)),
		"expected balance 62297.50, got %s", year1.EndingBalance.String())
}

// TestProjectIdempotence verifies projecting the same scenario twice
// under the same clock yields identical results.
func TestProjectIdempotence(t *testing.T) {
	history := MemoryHistory{}
	history.Add(domain.FundC, testNow.AddDate(-10, 0, 0), decimal.NewFromFloat(25.00))
	history.Add(domain.FundC, testNow, decimal.NewFromFloat(65.00))

	engine := newTestEngine(history)
	scenario := fixedRateScenario()
	scenario.Returns = domain.ReturnAssumption{Mode: domain.ReturnHistorical}

	first, err := engine.Project(scenario, 0)
	require.NoError(t, err)
	second, err := engine.Project(scenario, 0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestProjectMonotonicGrowth verifies balances never decline with a
// positive contribution and non-negative return, and grow strictly when
// money is flowing in.
func TestProjectMonotonicGrowth(t *testing.T) {
	engine := newTestEngine(MemoryHistory{})
	result, err := engine.Project(fixedRateScenario(), 0)
	require.NoError(t, err)

	for i := 1; i < len(result.Years); i++ {
		prev, curr := result.Years[i-1], result.Years[i]
		assert.True(t, curr.EndingBalance.GreaterThanOrEqual(prev.EndingBalance),
			"balance declined from %s to %s in year %d", prev.EndingBalance.String(), curr.EndingBalance.String(), curr.Year)

		inflow := curr.Contribution.Add(curr.EmployerMatch).Add(curr.Growth)
		if inflow.IsPositive() {
			assert.True(t, curr.EndingBalance.GreaterThan(prev.EndingBalance),
				"positive inflow must grow the balance in year %d", curr.Year)
		}
	}
}

// TestProjectContributionClamping verifies the age-based annual limit
// caps the contribution while the employer match is untouched.
func TestProjectContributionClamping(t *testing.T) {
	engine := newTestEngine(MemoryHistory{})
	limits := engine.Match.Limits
	regular := limits.ElectiveDeferral
	withCatchUp := regular.Add(limits.CatchUp)

	scenario := fixedRateScenario()
	scenario.ContributionPercent = decimal.NewFromInt(100)
	scenario.AnnualBasePay = decimal.NewFromInt(60000)
	scenario.BirthYear = intPtr(1990) // age 35 at the fixed clock
	scenario.RetirementAge = intPtr(62)

	result, err := engine.Project(scenario, 0)
	require.NoError(t, err)

	for _, year := range result.Years[1:] {
		require.NotNil(t, year.Age)
		if *year.Age < limits.CatchUpAge {
			assert.True(t, year.Contribution.Equal(regular),
				"year %d (age %d): expected clamp to %s, got %s",
				year.Year, *year.Age, regular.String(), year.Contribution.String())
		} else {
			assert.True(t, year.Contribution.Equal(withCatchUp),
				"year %d (age %d): expected clamp to %s, got %s",
				year.Year, *year.Age, withCatchUp.String(), year.Contribution.String())
		}
	}
}

// TestProjectPayGrowth verifies each year's base pay is the prior year's
// grown by the annual pay increase, with year 0 carrying the literal input.
func TestProjectPayGrowth(t *testing.T) {
	engine := newTestEngine(MemoryHistory{})
	scenario := fixedRateScenario()

	result, err := engine.Project(scenario, 0)
	require.NoError(t, err)

	assert.True(t, result.Years[0].BasePay.Equal(scenario.AnnualBasePay),
		"year 0 must report the scenario's literal base pay")

	growthFactor := decimal.NewFromInt(100).Add(scenario.AnnualPayGrowthPercent).Div(decimal.NewFromInt(100))
	tolerance := decimal.NewFromFloat(0.02)
	for i := 1; i < len(result.Years); i++ {
		expected := result.Years[i-1].BasePay.Mul(growthFactor)
		diff := result.Years[i].BasePay.Sub(expected).Abs()
		assert.True(t, diff.LessThanOrEqual(tolerance),
			"year %d base pay %s, expected about %s", result.Years[i].Year,
			result.Years[i].BasePay.String(), expected.String())
	}
}

// TestProjectHorizon covers the horizon resolution rules.
func TestProjectHorizon(t *testing.T) {
	engine := newTestEngine(MemoryHistory{})

	t.Run("birth year and retirement age", func(t *testing.T) {
		// Age 45 at the fixed clock, retiring at 62: 17 years out plus
		// the 5-year buffer.
		result, err := engine.Project(fixedRateScenario(), 0)
		require.NoError(t, err)
		assert.Equal(t, 22, result.YearsProjected)
		assert.Len(t, result.Years, 23)
	})

	t.Run("no birth year defaults to 30 plus buffer", func(t *testing.T) {
		scenario := fixedRateScenario()
		scenario.BirthYear = nil
		scenario.RetirementAge = nil

		result, err := engine.Project(scenario, 0)
		require.NoError(t, err)
		assert.Equal(t, 35, result.YearsProjected)
		for _, year := range result.Years {
			assert.Nil(t, year.Age)
		}
	})

	t.Run("explicit years cap the buffer", func(t *testing.T) {
		scenario := fixedRateScenario()
		scenario.BirthYear = nil
		scenario.RetirementAge = nil

		result, err := engine.Project(scenario, 10)
		require.NoError(t, err)
		assert.Equal(t, 10, result.YearsProjected)
		assert.Len(t, result.Years, 11)
	})

	t.Run("already past retirement age", func(t *testing.T) {
		scenario := fixedRateScenario()
		scenario.BirthYear = intPtr(1950) // age 75 at the fixed clock
		scenario.RetirementAge = intPtr(62)

		result, err := engine.Project(scenario, 0)
		require.NoError(t, err)
		assert.Equal(t, postRetirementBufferYears, result.YearsProjected)
	})
}

// TestProjectReturnResolution verifies the fixed rate bypasses the
// blender and the historical mode goes through it.
func TestProjectReturnResolution(t *testing.T) {
	history := MemoryHistory{}
	// Flat G fund: zero historical return.
	history.Add(domain.FundG, testNow.AddDate(-10, 0, 0), decimal.NewFromFloat(10.00))
	history.Add(domain.FundG, testNow, decimal.NewFromFloat(10.00))

	engine := newTestEngine(history)

	t.Run("fixed", func(t *testing.T) {
		scenario := fixedRateScenario()
		result, err := engine.Project(scenario, 0)
		require.NoError(t, err)
		assert.True(t, result.EffectiveAnnualReturn.Equal(decimal.NewFromInt(7)))
	})

	t.Run("historical", func(t *testing.T) {
		scenario := fixedRateScenario()
		scenario.Allocation = domain.Allocation{GFund: decimal.NewFromInt(100)}
		scenario.Returns = domain.ReturnAssumption{Mode: domain.ReturnHistorical}

		result, err := engine.Project(scenario, 0)
		require.NoError(t, err)
		assert.True(t, result.EffectiveAnnualReturn.IsZero(),
			"flat fund history must resolve to a zero return, got %s", result.EffectiveAnnualReturn.String())
	})
}

// TestProjectTotalsReconcile verifies the final balance equals the
// starting balance plus every credited flow.
func TestProjectTotalsReconcile(t *testing.T) {
	engine := newTestEngine(MemoryHistory{})
	scenario := fixedRateScenario()

	result, err := engine.Project(scenario, 0)
	require.NoError(t, err)

	expected := scenario.CurrentBalance.
		Add(result.TotalContributions).
		Add(result.TotalEmployerMatch).
		Add(result.TotalGrowth)
	assert.True(t, result.FinalBalance.Equal(expected),
		"final balance %s must equal starting balance plus flows %s",
		result.FinalBalance.String(), expected.String())

	last := result.Years[len(result.Years)-1]
	assert.True(t, result.FinalBalance.Equal(last.EndingBalance))
}
