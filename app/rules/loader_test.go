package rules

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	r, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if r.MinPopulation != DefaultMinPopulation {
		t.Errorf("Expected min population %d, got %d", DefaultMinPopulation, r.MinPopulation)
	}
	if !slices.Equal(r.AcceptedCategories, []string{"162", "170"}) {
		t.Errorf("Expected accepted categories [162 170], got %v", r.AcceptedCategories)
	}
	if !slices.Equal(r.ExcludedStates, []string{"Puerto Rico"}) {
		t.Errorf("Expected excluded states [Puerto Rico], got %v", r.ExcludedStates)
	}
	if r.Columns.Population != "POPESTIMATE2023" {
		t.Errorf("Expected population column 'POPESTIMATE2023', got '%s'", r.Columns.Population)
	}
	if len(r.NameExceptions) != 25 {
		t.Errorf("Expected 25 name exceptions, got %d", len(r.NameExceptions))
	}
	if r.NameSuffixes[0] != "city and borough" {
		t.Errorf("Expected longest suffix first, got '%s'", r.NameSuffixes[0])
	}
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.NameExceptions[0] = "Changed"
	b := Default()
	if b.NameExceptions[0] == "Changed" {
		t.Error("Expected Default to return independent slices")
	}
}

func TestLoadOverrides(t *testing.T) {
	tempDir := t.TempDir()

	content := `
columns:
  population: "POPESTIMATE2024"

min_population: 50000

excluded_states: []

name_exceptions:
  - "Kansas City"
  - "Ellicott City"
`

	path := filepath.Join(tempDir, "rules.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if r.Columns.Population != "POPESTIMATE2024" {
		t.Errorf("Expected population column 'POPESTIMATE2024', got '%s'", r.Columns.Population)
	}
	if r.Columns.State != "STNAME" {
		t.Errorf("Expected default state column 'STNAME', got '%s'", r.Columns.State)
	}
	if r.MinPopulation != 50000 {
		t.Errorf("Expected min population 50000, got %d", r.MinPopulation)
	}
	if len(r.ExcludedStates) != 0 {
		t.Errorf("Expected explicit empty exclusion list to be kept, got %v", r.ExcludedStates)
	}
	if !slices.Equal(r.NameExceptions, []string{"Kansas City", "Ellicott City"}) {
		t.Errorf("Expected overridden name exceptions, got %v", r.NameExceptions)
	}
	if len(r.NameSuffixes) != len(defaultNameSuffixes) {
		t.Errorf("Expected default suffixes, got %v", r.NameSuffixes)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	r, err := Parse([]byte(""))
	if err != nil {
		t.Fatal(err)
	}
	if r.MinPopulation != DefaultMinPopulation {
		t.Errorf("Expected defaults for empty document, got min population %d", r.MinPopulation)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative population", "min_population: -1\n"},
		{"unknown state", "excluded_states: [\"Atlantis\"]\n"},
		{"empty suffix", "name_suffixes: [\"city\", \"\"]\n"},
		{"empty category", "accepted_categories: [\" \"]\n"},
		{"unknown key", "min_populaton: 10\n"},
		{"malformed yaml", "columns: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.content)); err == nil {
				t.Errorf("Expected error for %q", tt.content)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("Expected error for missing rules file")
	}
}

func TestLoadExampleFile(t *testing.T) {
	r, err := Load(filepath.Join("..", "..", "rules.example.yml"))
	if err != nil {
		t.Fatalf("Expected example rules to load, got: %v", err)
	}
	if !slices.Equal(r.NameExceptions, []string{"Kansas City", "Oklahoma City"}) {
		t.Errorf("Expected example name exceptions, got %v", r.NameExceptions)
	}
}

func TestParseZeroMinPopulation(t *testing.T) {
	r, err := Parse([]byte("min_population: 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if r.MinPopulation != 0 {
		t.Errorf("Expected explicit zero threshold to be kept, got %d", r.MinPopulation)
	}
}
