package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fedplan/tsp-simulator/internal/config"
	"github.com/fedplan/tsp-simulator/internal/output"
)

var (
	projectInput  string
	projectYears  int
	projectFormat string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project every scenario in an input file",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := config.NewInputParser().LoadFromFile(projectInput)
		if err != nil {
			return err
		}

		formatter := output.GetFormatterByName(projectFormat)
		if formatter == nil {
			return fmt.Errorf("unknown format %q, available: %v", projectFormat, output.FormatterNames())
		}

		engine, db, err := newEngine()
		if err != nil {
			return err
		}
		if db != nil {
			defer db.Close()
		}

		for i := range input.Scenarios {
			result, err := engine.Project(&input.Scenarios[i], projectYears)
			if err != nil {
				return fmt.Errorf("projection of scenario %q failed: %w", input.Scenarios[i].Name, err)
			}
			data, err := formatter.Format(result)
			if err != nil {
				return err
			}
			cmd.Print(string(data))
			cmd.Println()
		}
		return nil
	},
}

func init() {
	projectCmd.Flags().StringVarP(&projectInput, "input", "i", "", "scenario input file (YAML)")
	projectCmd.Flags().IntVarP(&projectYears, "years", "y", 0, "explicit projection horizon in years")
	projectCmd.Flags().StringVarP(&projectFormat, "format", "f", "console", "output format (console, csv, json)")
	_ = projectCmd.MarkFlagRequired("input")
}
