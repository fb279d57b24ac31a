package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fedplan/tsp-simulator/internal/domain"
)

// LoadPricesCSV reads a fund's price history from a CSV file with a
// header row and date,price columns (date as YYYY-MM-DD). Malformed rows
// are skipped; a file with no valid rows is an error.
func LoadPricesCSV(path string, fund domain.Fund) ([]domain.FundPricePoint, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("invalid CSV format: expected at least 2 columns")
	}

	var points []domain.FundPricePoint
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read data row: %w", err)
		}
		if len(record) < 2 {
			continue // Skip malformed rows
		}

		date, err := time.Parse(dateLayout, record[0])
		if err != nil {
			continue // Skip rows with invalid date
		}
		price, err := decimal.NewFromString(record[1])
		if err != nil || !price.IsPositive() {
			continue // Skip rows with invalid price
		}

		points = append(points, domain.FundPricePoint{
			Fund:  fund,
			Date:  date,
			Price: price,
		})
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("no valid price rows found in %s", path)
	}

	return points, nil
}
