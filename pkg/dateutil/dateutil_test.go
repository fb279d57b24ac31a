package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYearsBetween(t *testing.T) {
	from := time.Date(2015, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		to       time.Time
		expected float64
	}{
		{"same instant", from, 0},
		{"one mean year", from.Add(365*24*time.Hour + 6*time.Hour), 1.0},
		{"ten calendar years", time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), 10.0},
		{"negative span", from.AddDate(-1, 0, 0), -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := YearsBetween(from, tt.to)
			assert.InDelta(t, tt.expected, got, 0.01)
		})
	}
}

func TestAgeInYear(t *testing.T) {
	assert.Equal(t, 45, AgeInYear(1980, 2025))
	assert.Equal(t, 0, AgeInYear(2025, 2025))
	assert.Equal(t, 50, AgeInYear(1990, 2040))
}
