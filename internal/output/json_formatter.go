package output

import (
	"encoding/json"
	"strconv"

	"github.com/fedplan/tsp-simulator/internal/domain"
)

// JSONFormatter renders a projection as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

func intToString(v int) string {
	return strconv.Itoa(v)
}
