package main

import (
	"github.com/spf13/cobra"

	"github.com/fedplan/tsp-simulator/internal/calculation"
)

var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Show the annual contribution limits and employer match curve",
	RunE: func(cmd *cobra.Command, args []string) error {
		calc := calculation.NewMatchCalculator()

		cmd.Printf("Elective deferral limit: $%s\n", calc.Limits.ElectiveDeferral.StringFixed(2))
		cmd.Printf("Catch-up limit (age %d+): $%s\n", calc.Limits.CatchUpAge, calc.Limits.CatchUp.StringFixed(2))
		cmd.Println()

		cmd.Println("Employer match curve (percent of base pay):")
		for _, bp := range calc.MatchCurve() {
			cmd.Printf("  employee %s%% -> employer %s%%\n",
				bp.EmployeePercent.StringFixed(0), bp.MatchPercent.StringFixed(0))
		}
		return nil
	},
}
