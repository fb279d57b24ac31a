package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fedplan/tsp-simulator/internal/config"
	"github.com/fedplan/tsp-simulator/internal/domain"
	"github.com/fedplan/tsp-simulator/internal/output"
)

var (
	compareInput  string
	compareYears  int
	compareFormat string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the scenarios in an input file side by side",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := config.NewInputParser().LoadFromFile(compareInput)
		if err != nil {
			return err
		}

		engine, db, err := newEngine()
		if err != nil {
			return err
		}
		if db != nil {
			defer db.Close()
		}

		scenarios := make([]*domain.Scenario, len(input.Scenarios))
		for i := range input.Scenarios {
			scenarios[i] = &input.Scenarios[i]
		}

		comparison, err := engine.Compare(cmd.Context(), scenarios, compareYears)
		if err != nil {
			return err
		}

		var data []byte
		switch compareFormat {
		case "console":
			data, err = output.FormatComparisonConsole(comparison)
		case "csv":
			data, err = output.FormatComparisonCSV(comparison)
		default:
			return fmt.Errorf("unknown format %q, available: [console csv]", compareFormat)
		}
		if err != nil {
			return err
		}

		cmd.Print(string(data))
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVarP(&compareInput, "input", "i", "", "scenario input file (YAML)")
	compareCmd.Flags().IntVarP(&compareYears, "years", "y", 0, "explicit projection horizon in years")
	compareCmd.Flags().StringVarP(&compareFormat, "format", "f", "console", "output format (console, csv)")
	_ = compareCmd.MarkFlagRequired("input")
}
