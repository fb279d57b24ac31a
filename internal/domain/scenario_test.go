package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLifecycleFund(t *testing.T) {
	assert.Equal(t, Fund("L2050"), LifecycleFund(2050))
	assert.Equal(t, Fund("L2035"), LifecycleFund(2035))
}

func TestAllocationTotal(t *testing.T) {
	alloc := Allocation{
		GFund:     decimal.NewFromInt(10),
		CFund:     decimal.NewFromInt(40),
		SFund:     decimal.NewFromInt(20),
		Lifecycle: decimal.NewFromInt(30),
	}
	assert.True(t, alloc.Total().Equal(decimal.NewFromInt(100)))

	core := alloc.CorePercents()
	assert.Len(t, core, 5)
	assert.True(t, core[FundC].Equal(decimal.NewFromInt(40)))
	assert.True(t, core[FundF].IsZero())
}

func TestScenarioValidate(t *testing.T) {
	valid := func() Scenario {
		return Scenario{
			Name:                "base",
			CurrentBalance:      decimal.NewFromInt(1000),
			ContributionPercent: decimal.NewFromInt(5),
			AnnualBasePay:       decimal.NewFromInt(80000),
			Allocation:          Allocation{GFund: decimal.NewFromInt(100)},
			Returns:             ReturnAssumption{Mode: ReturnHistorical},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Scenario)
		wantErr string
	}{
		{"valid", func(s *Scenario) {}, ""},
		{"missing name", func(s *Scenario) { s.Name = "" }, "name is required"},
		{"negative balance", func(s *Scenario) { s.CurrentBalance = decimal.NewFromInt(-1) }, "cannot be negative"},
		{"zero base pay", func(s *Scenario) { s.AnnualBasePay = decimal.Zero }, "must be positive"},
		{"negative contribution", func(s *Scenario) { s.ContributionPercent = decimal.NewFromInt(-5) }, "cannot be negative"},
		{"negative fund slice", func(s *Scenario) {
			s.Allocation.GFund = decimal.NewFromInt(110)
			s.Allocation.CFund = decimal.NewFromInt(-10)
		}, "cannot be negative"},
		{"allocation under 100", func(s *Scenario) { s.Allocation.GFund = decimal.NewFromInt(99) }, "sum to 100"},
		{"lifecycle needs target year", func(s *Scenario) {
			s.Allocation = Allocation{Lifecycle: decimal.NewFromInt(100)}
		}, "lifecycle target year"},
		{"unknown return mode", func(s *Scenario) { s.Returns.Mode = "guess" }, "return mode"},
		{"nonpositive birth year", func(s *Scenario) { y := 0; s.BirthYear = &y }, "birth year"},
		{"nonpositive retirement age", func(s *Scenario) { a := -1; s.RetirementAge = &a }, "retirement age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
