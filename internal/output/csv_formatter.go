package output

import (
	"bytes"
	"encoding/csv"

	"github.com/fedplan/tsp-simulator/internal/domain"
)

// CSVFormatter renders a projection as CSV, one row per simulated year.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Year", "Age", "BasePay", "Contribution", "EmployerMatch", "Growth", "EndingBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, year := range result.Years {
		age := ""
		if year.Age != nil {
			age = formatAge(year.Age)
		}
		row := []string{
			intToString(year.Year),
			age,
			year.BasePay.StringFixed(2),
			year.Contribution.StringFixed(2),
			year.EmployerMatch.StringFixed(2),
			year.Growth.StringFixed(2),
			year.EndingBalance.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
