package main

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fedplan/tsp-simulator/internal/calculation"
	"github.com/fedplan/tsp-simulator/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "tspsim",
	Short: "TSP savings projection simulator",
	Long: `tspsim simulates defined-contribution retirement savings scenarios
forward in time, with a blended employer match, annual contribution
limits, and either fixed or historically derived fund returns.`,
	SilenceUsage: true,
}

var dbPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the fund-price/scenario database (optional)")

	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(limitsCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(serveCmd)
}

// newEngine builds a projection engine over the configured database, or
// over an empty in-memory history when no database is given. With no
// history, historical-return scenarios resolve to zero returns.
func newEngine() (*calculation.Engine, *sql.DB, error) {
	if dbPath == "" {
		return calculation.NewEngine(calculation.MemoryHistory{}), nil, nil
	}

	db, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}
	if err := store.Migrate(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return calculation.NewEngine(store.NewFundPriceRepository(db)), db, nil
}
