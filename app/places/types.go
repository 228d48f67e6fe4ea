package places

import (
	"github.com/findabatherapy/citygen/app/states"
)

// City is one generated record. Population orders the list and feeds the
// SQLite snapshot; it is not part of the emitted source schema.
type City struct {
	Name       string
	Slug       string
	State      string // State abbreviation
	StateName  string // Full state name
	Population int
}

// Match is what the filterer learned about an accepted row.
type Match struct {
	State      states.State
	Population int
}

// Reason explains why a row was left out of the dataset.
type Reason string

const (
	ReasonCategory          Reason = "category"
	ReasonUnknownState      Reason = "unknown_state"
	ReasonExcludedState     Reason = "excluded_state"
	ReasonPopulationInvalid Reason = "population_invalid"
	ReasonBelowThreshold    Reason = "population_below_threshold"
	ReasonEmptySlug         Reason = "empty_slug"
	ReasonDuplicateSlug     Reason = "duplicate_slug"
)

// Stats counts what happened to each input row.
type Stats struct {
	Rows     int
	Accepted int
	Rejected map[Reason]int
}
