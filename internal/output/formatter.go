package output

import (
	"fmt"
	"strings"

	"github.com/fedplan/tsp-simulator/internal/domain"
)

// Formatter renders a projection result as a byte slice. Implementations
// are pure; formatting the same result twice yields identical output.
type Formatter interface {
	Format(result *domain.ProjectionResult) ([]byte, error)
	// Name returns a short identifier used for format selection.
	Name() string
}

// builtInFormatters stores the available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter, or nil when the
// name is unknown.
func GetFormatterByName(name string) Formatter {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames returns the names of all registered formatters.
func FormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	return names
}

// formatAge renders a nullable age for console output.
func formatAge(age *int) string {
	if age == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *age)
}
