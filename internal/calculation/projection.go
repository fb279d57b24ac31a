package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fedplan/tsp-simulator/internal/domain"
	"github.com/fedplan/tsp-simulator/pkg/dateutil"
)

const (
	// DefaultHorizonYears is the fallback horizon when a scenario has
	// no birth year and the caller supplies no explicit year count.
	DefaultHorizonYears = 30

	// postRetirementBufferYears extends every projection past the
	// retirement year so charts show the trajectory leveling off.
	postRetirementBufferYears = 5
)

// Engine drives the year-by-year compounding loop. It holds no state
// between calls and produces no side effects; a projection is a pure
// function of the scenario, the supplied price history, and the clock.
type Engine struct {
	Returns *ReturnModel
	Match   *MatchCalculator
	Now     func() time.Time
	Logger  Logger
}

// NewEngine creates a projection engine over the given price history.
func NewEngine(history PriceHistory) *Engine {
	model := NewReturnModel(history)
	return &Engine{
		Returns: model,
		Match:   NewMatchCalculator(),
		Now:     model.Now,
		Logger:  NopLogger{},
	}
}

// SetClock fixes the engine's notion of "now", for deterministic runs.
// Projections depend on the clock only through the current year and the
// lookback-window selection.
func (e *Engine) SetClock(now func() time.Time) {
	e.Now = now
	e.Returns.Now = now
}

// effectiveReturn resolves the scenario's return assumption to a single
// annual percentage, once, before the projection loop.
func (e *Engine) effectiveReturn(scenario *domain.Scenario) (decimal.Decimal, error) {
	if scenario.Returns.Mode == domain.ReturnFixed {
		return scenario.Returns.FixedAnnualPercent, nil
	}
	return e.Returns.WeightedReturn(scenario.Allocation)
}

// horizon determines how many years past the current one to simulate.
// A birth year plus retirement age wins; otherwise the caller's explicit
// count or the default horizon applies. Every horizon gains a buffer of
// post-retirement years, capped by the explicit count when supplied.
func (e *Engine) horizon(scenario *domain.Scenario, explicitYears int, currentYear int) int {
	yearsToRetirement := DefaultHorizonYears
	if explicitYears > 0 {
		yearsToRetirement = explicitYears
	}
	if scenario.BirthYear != nil && scenario.RetirementAge != nil {
		yearsToRetirement = *scenario.RetirementAge - (currentYear - *scenario.BirthYear)
		if yearsToRetirement < 0 {
			yearsToRetirement = 0
		}
	}

	yearsToProject := yearsToRetirement + postRetirementBufferYears
	if explicitYears > 0 && yearsToProject > explicitYears {
		yearsToProject = explicitYears
	}
	return yearsToProject
}

// Project simulates the scenario forward in time. explicitYears of 0
// means "no explicit horizon". The first emitted year is the partial
// "as of today" year: growth is computed on the starting balance alone
// and the balance is deliberately left unchanged, with the contribution
// and match reported for display but excluded from the running totals.
// Do not "fix" that asymmetry; it is the as-of-today snapshot rule, not
// an off-by-one.
func (e *Engine) Project(scenario *domain.Scenario, explicitYears int) (*domain.ProjectionResult, error) {
	currentYear := e.Now().Year()
	yearsToProject := e.horizon(scenario, explicitYears, currentYear)

	rate, err := e.effectiveReturn(scenario)
	if err != nil {
		return nil, err
	}
	e.Logger.Debugf("scenario %q: projecting %d years at %s%% annual return",
		scenario.Name, yearsToProject, rate.StringFixed(2))

	hundred := decimal.NewFromInt(100)
	two := decimal.NewFromInt(2)

	balance := scenario.CurrentBalance
	basePay := scenario.AnnualBasePay
	matchPct := e.Match.EmployerMatchPercent(scenario.ContributionPercent)

	result := &domain.ProjectionResult{
		ScenarioID:            scenario.ID,
		ScenarioName:          scenario.Name,
		Years:                 make([]domain.ProjectionYear, 0, yearsToProject+1),
		EffectiveAnnualReturn: rate,
		YearsProjected:        yearsToProject,
	}

	for offset := 0; offset <= yearsToProject; offset++ {
		var age *int
		if scenario.BirthYear != nil {
			a := dateutil.AgeInYear(*scenario.BirthYear, currentYear+offset)
			age = &a
		}

		contribution := basePay.Mul(scenario.ContributionPercent).Div(hundred)
		if limit := e.Match.AnnualContributionLimit(age); contribution.GreaterThan(limit) {
			contribution = limit
		}
		contribution = contribution.Round(2)
		match := basePay.Mul(matchPct).Div(hundred).Round(2)

		var growth decimal.Decimal
		if offset == 0 {
			// Partial first year: growth on the starting balance only,
			// no new money credited yet.
			growth = balance.Mul(rate).Div(hundred).Round(2)
		} else {
			// Mid-year approximation: contributions arrive evenly
			// through the year, so half of them earn this year's return.
			midYear := balance.Add(contribution.Add(match).Div(two))
			growth = midYear.Mul(rate).Div(hundred).Round(2)

			balance = balance.Add(contribution).Add(match).Add(growth)
			result.TotalContributions = result.TotalContributions.Add(contribution)
			result.TotalEmployerMatch = result.TotalEmployerMatch.Add(match)
			result.TotalGrowth = result.TotalGrowth.Add(growth)
		}

		result.Years = append(result.Years, domain.ProjectionYear{
			Year:          currentYear + offset,
			Age:           age,
			BasePay:       basePay.Round(2),
			Contribution:  contribution,
			EmployerMatch: match,
			Growth:        growth,
			EndingBalance: balance.Round(2),
		})

		// Pay raise takes effect the following year; year 0 carries the
		// scenario's literal base pay.
		basePay = basePay.Mul(hundred.Add(scenario.AnnualPayGrowthPercent)).Div(hundred)
	}

	result.FinalBalance = balance.Round(2)
	return result, nil
}
