package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/fedplan/tsp-simulator/internal/domain"
)

// ConsoleFormatter renders a projection as a human-readable table.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, "Scenario: %s\n", result.ScenarioName)
	fmt.Fprintf(buf, "Effective annual return: %s%%\n", result.EffectiveAnnualReturn.StringFixed(2))
	fmt.Fprintf(buf, "Years projected: %d\n\n", result.YearsProjected)

	w := tabwriter.NewWriter(buf, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Year\tAge\tBase Pay\tContribution\tMatch\tGrowth\tBalance\t")
	for _, year := range result.Years {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			year.Year,
			formatAge(year.Age),
			year.BasePay.StringFixed(2),
			year.Contribution.StringFixed(2),
			year.EmployerMatch.StringFixed(2),
			year.Growth.StringFixed(2),
			year.EndingBalance.StringFixed(2),
		)
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}

	fmt.Fprintf(buf, "\nFinal balance:      $%s\n", result.FinalBalance.StringFixed(2))
	fmt.Fprintf(buf, "Total contributions: $%s\n", result.TotalContributions.StringFixed(2))
	fmt.Fprintf(buf, "Total employer match: $%s\n", result.TotalEmployerMatch.StringFixed(2))
	fmt.Fprintf(buf, "Total growth:        $%s\n", result.TotalGrowth.StringFixed(2))

	return buf.Bytes(), nil
}
