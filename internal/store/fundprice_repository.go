package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fedplan/tsp-simulator/internal/domain"
)

const dateLayout = "2006-01-02"

// FundPriceRepository provides data access for the fund_price table. It
// is the price-history supplier behind the projection engine's return
// model; the (fund, date) uniqueness the engine relies on is enforced by
// the table's constraint.
type FundPriceRepository struct {
	db *sql.DB
}

// NewFundPriceRepository creates a repository over the given connection.
func NewFundPriceRepository(db *sql.DB) *FundPriceRepository {
	return &FundPriceRepository{db: db}
}

// PricesSince returns the fund's price points dated on or after from,
// ordered by date ascending. Satisfies calculation.PriceHistory.
func (r *FundPriceRepository) PricesSince(fund domain.Fund, from time.Time) ([]domain.FundPricePoint, error) {
	query := `
        SELECT fund, date, price
        FROM fund_price
        WHERE fund = ? AND date >= ?
        ORDER BY date ASC
    `

	rows, err := r.db.Query(query, string(fund), from.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query fund_price table: %w", err)
	}
	defer rows.Close()

	var points []domain.FundPricePoint
	for rows.Next() {
		var (
			p        domain.FundPricePoint
			fundStr  string
			dateStr  string
			priceStr string
		)
		if err := rows.Scan(&fundStr, &dateStr, &priceStr); err != nil {
			return nil, fmt.Errorf("failed to scan fund_price row: %w", err)
		}

		p.Fund = domain.Fund(fundStr)
		p.Date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse fund_price date %q: %w", dateStr, err)
		}
		p.Price, err = decimal.NewFromString(priceStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse fund_price price %q: %w", priceStr, err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund_price rows: %w", err)
	}

	return points, nil
}

// InsertPrices stores a batch of price points in one transaction.
func (r *FundPriceRepository) InsertPrices(ctx context.Context, points []domain.FundPricePoint) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	query := `
        INSERT INTO fund_price (id, fund, date, price)
        VALUES (?, ?, ?, ?)
    `
	for _, p := range points {
		if _, err := tx.ExecContext(ctx, query,
			uuid.New().String(),
			string(p.Fund),
			p.Date.Format(dateLayout),
			p.Price.StringFixed(4),
		); err != nil {
			return fmt.Errorf("failed to insert price for fund %s on %s: %w",
				p.Fund, p.Date.Format(dateLayout), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit price inserts: %w", err)
	}
	return nil
}
