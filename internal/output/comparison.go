package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"text/tabwriter"

	"github.com/fedplan/tsp-simulator/internal/domain"
)

// FormatComparisonConsole renders the aligned comparison table as a
// human-readable table, one column per scenario.
func FormatComparisonConsole(comparison *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	names := scenarioNames(comparison)

	w := tabwriter.NewWriter(buf, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(w, "Year\t")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t", name)
	}
	fmt.Fprintln(w)

	for _, row := range comparison.Rows {
		fmt.Fprintf(w, "%d\t", row.Year)
		for _, name := range names {
			if balance, ok := row.Balances[name]; ok {
				fmt.Fprintf(w, "%s\t", balance.StringFixed(2))
			} else {
				fmt.Fprint(w, "-\t")
			}
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}

	fmt.Fprintln(buf)
	for _, result := range comparison.Results {
		fmt.Fprintf(buf, "%s: final balance $%s over %d years (return %s%%)\n",
			result.ScenarioName,
			result.FinalBalance.StringFixed(2),
			result.YearsProjected,
			result.EffectiveAnnualReturn.StringFixed(2),
		)
	}

	return buf.Bytes(), nil
}

// FormatComparisonCSV renders the aligned comparison table as CSV.
func FormatComparisonCSV(comparison *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	names := scenarioNames(comparison)

	header := append([]string{"Year"}, names...)
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range comparison.Rows {
		record := make([]string, 0, len(names)+1)
		record = append(record, intToString(row.Year))
		for _, name := range names {
			if balance, ok := row.Balances[name]; ok {
				record = append(record, balance.StringFixed(2))
			} else {
				record = append(record, "")
			}
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// scenarioNames returns the scenario names in result order.
func scenarioNames(comparison *domain.ScenarioComparison) []string {
	names := make([]string, 0, len(comparison.Results))
	for _, result := range comparison.Results {
		names = append(names, result.ScenarioName)
	}
	return names
}
