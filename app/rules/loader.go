package rules

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/findabatherapy/citygen/app/states"
)

// Load reads rules from a YAML file. An empty path returns the defaults.
func Load(path string) (*Rules, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid rules %s: %w", path, err)
	}

	slog.Debug("Rules loaded", "file", path, "exceptions", len(r.NameExceptions), "suffixes", len(r.NameSuffixes), "min_population", r.MinPopulation)

	return r, nil
}

// Parse decodes YAML rules, applies defaults and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Parse(data []byte) (*Rules, error) {
	// Prefilled so that an explicit 0 survives decoding.
	r := Rules{MinPopulation: DefaultMinPopulation}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	setDefaults(&r)

	if err := validate(&r); err != nil {
		return nil, err
	}

	return &r, nil
}

func validate(r *Rules) error {
	if r.MinPopulation < 0 {
		return fmt.Errorf("min population must be non-negative")
	}

	for i, code := range r.AcceptedCategories {
		if strings.TrimSpace(code) == "" {
			return fmt.Errorf("accepted category at index %d is empty", i)
		}
	}

	for i, name := range r.ExcludedStates {
		if _, ok := states.ByName(name); !ok {
			return fmt.Errorf("excluded state at index %d is not a known state: %s", i, name)
		}
	}

	for i, name := range r.NameExceptions {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("name exception at index %d is empty", i)
		}
	}

	for i, suffix := range r.NameSuffixes {
		if strings.TrimSpace(suffix) == "" {
			return fmt.Errorf("name suffix at index %d is empty", i)
		}
	}

	return nil
}
