package rules

// Rules drive row filtering and place-name cleanup. Every field may be
// overridden from a YAML file; empty fields keep their defaults, except
// MinPopulation, where an explicit 0 disables the threshold.
type Rules struct {
	Columns            Columns  `yaml:"columns"`
	AcceptedCategories []string `yaml:"accepted_categories"` // SUMLEV codes
	ExcludedStates     []string `yaml:"excluded_states"`     // full census names
	MinPopulation      int      `yaml:"min_population"`
	NameExceptions     []string `yaml:"name_exceptions"` // names where "City" is part of the name
	NameSuffixes       []string `yaml:"name_suffixes"`   // place-type suffixes, longest first
}

// Columns names the CSV header fields read from the census export.
type Columns struct {
	Category   string `yaml:"category"`
	State      string `yaml:"state"`
	Place      string `yaml:"place"`
	Population string `yaml:"population"`
}
