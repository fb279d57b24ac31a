package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fedplan/tsp-simulator/internal/domain"
)

// Input is the top-level structure of a scenario input file.
type Input struct {
	Scenarios []domain.Scenario `yaml:"scenarios"`
}

// InputParser loads and validates scenario input files. The projection
// engine assumes pre-validated input, so everything structural is
// rejected here.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads scenarios from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*Input, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input Input
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// ValidateInput validates the loaded scenarios.
func (ip *InputParser) ValidateInput(input *Input) error {
	if len(input.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(input.Scenarios))
	for i := range input.Scenarios {
		scenario := &input.Scenarios[i]
		if err := scenario.Validate(); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("duplicate scenario name %q", scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}
