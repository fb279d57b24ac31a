package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedplan/tsp-simulator/internal/calculation"
	"github.com/fedplan/tsp-simulator/internal/domain"
)

var _ calculation.PriceHistory = (*FundPriceRepository)(nil)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func pricePoint(fund domain.Fund, date time.Time, price float64) domain.FundPricePoint {
	return domain.FundPricePoint{Fund: fund, Date: date, Price: decimal.NewFromFloat(price)}
}

func TestFundPriceRoundTrip(t *testing.T) {
	repo := NewFundPriceRepository(newTestDB(t))
	ctx := context.Background()

	// Inserted out of order on purpose.
	err := repo.InsertPrices(ctx, []domain.FundPricePoint{
		pricePoint(domain.FundC, day(2025, 6, 30), 65.1234),
		pricePoint(domain.FundC, day(2015, 6, 30), 25.0),
		pricePoint(domain.FundC, day(2020, 6, 30), 40.5),
		pricePoint(domain.FundG, day(2020, 6, 30), 16.25),
	})
	require.NoError(t, err)

	points, err := repo.PricesSince(domain.FundC, day(2010, 1, 1))
	require.NoError(t, err)
	require.Len(t, points, 3, "G fund rows must not leak into the C fund query")

	assert.Equal(t, day(2015, 6, 30), points[0].Date)
	assert.Equal(t, day(2020, 6, 30), points[1].Date)
	assert.Equal(t, day(2025, 6, 30), points[2].Date)

	assert.True(t, points[0].Price.Equal(decimal.NewFromFloat(25.0)))
	assert.True(t, points[2].Price.Equal(decimal.NewFromFloat(65.1234)),
		"four decimal places must survive the round trip, got %s", points[2].Price.String())
	for _, p := range points {
		assert.Equal(t, domain.FundC, p.Fund)
	}
}

func TestFundPriceWindow(t *testing.T) {
	repo := NewFundPriceRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.InsertPrices(ctx, []domain.FundPricePoint{
		pricePoint(domain.FundS, day(2005, 1, 1), 10.0),
		pricePoint(domain.FundS, day(2021, 1, 1), 40.0),
		pricePoint(domain.FundS, day(2025, 1, 1), 50.0),
	}))

	points, err := repo.PricesSince(domain.FundS, day(2015, 6, 30))
	require.NoError(t, err)
	require.Len(t, points, 2, "the 2005 point is before the window")
	assert.Equal(t, day(2021, 1, 1), points[0].Date)

	// Boundary date is inclusive.
	points, err = repo.PricesSince(domain.FundS, day(2021, 1, 1))
	require.NoError(t, err)
	assert.Len(t, points, 2)
}

func TestFundPriceDuplicateDateRejected(t *testing.T) {
	repo := NewFundPriceRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.InsertPrices(ctx, []domain.FundPricePoint{
		pricePoint(domain.FundI, day(2025, 1, 1), 42.0),
	}))

	err := repo.InsertPrices(ctx, []domain.FundPricePoint{
		pricePoint(domain.FundI, day(2025, 1, 1), 43.0),
	})
	require.Error(t, err, "one price per fund per date")

	// The failed batch must not have partially applied.
	points, err := repo.PricesSince(domain.FundI, day(2020, 1, 1))
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.True(t, points[0].Price.Equal(decimal.NewFromFloat(42.0)))
}

func TestFundPriceEmptyResult(t *testing.T) {
	repo := NewFundPriceRepository(newTestDB(t))

	points, err := repo.PricesSince(domain.FundF, day(2020, 1, 1))
	require.NoError(t, err)
	assert.Empty(t, points)
}
