package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fedplan/tsp-simulator/internal/domain"
	"github.com/fedplan/tsp-simulator/internal/store"
)

var (
	seedFund string
	seedFile string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a fund's price history from a CSV file into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		if dbPath == "" {
			return fmt.Errorf("--db is required for seeding")
		}

		points, err := store.LoadPricesCSV(seedFile, domain.Fund(seedFund))
		if err != nil {
			return err
		}

		db, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := store.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}

		repo := store.NewFundPriceRepository(db)
		if err := repo.InsertPrices(cmd.Context(), points); err != nil {
			return err
		}

		cmd.Printf("Loaded %d price points for fund %s\n", len(points), seedFund)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFund, "fund", "", "fund identifier (G, F, C, S, I, or L<year>)")
	seedCmd.Flags().StringVar(&seedFile, "file", "", "CSV file with date,price rows")
	_ = seedCmd.MarkFlagRequired("fund")
	_ = seedCmd.MarkFlagRequired("file")
}
