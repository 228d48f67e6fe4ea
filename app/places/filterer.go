package places

import (
	"strconv"
	"strings"

	"github.com/findabatherapy/citygen/app/census"
	"github.com/findabatherapy/citygen/app/rules"
	"github.com/findabatherapy/citygen/app/states"
)

// Filterer decides which census rows describe places worth a page.
type Filterer struct {
	categories    map[string]bool
	excluded      map[string]bool
	minPopulation int
}

func NewFilterer(r *rules.Rules) *Filterer {
	f := &Filterer{
		categories:    make(map[string]bool, len(r.AcceptedCategories)),
		excluded:      make(map[string]bool, len(r.ExcludedStates)),
		minPopulation: r.MinPopulation,
	}
	for _, code := range r.AcceptedCategories {
		f.categories[strings.TrimSpace(code)] = true
	}
	for _, name := range r.ExcludedStates {
		f.excluded[name] = true
	}
	return f
}

// Accept checks a row against the category, state and population rules.
// An empty Reason means the row passed.
func (f *Filterer) Accept(row census.Row) (Match, Reason) {
	if !f.categories[strings.TrimSpace(row.CategoryCode)] {
		return Match{}, ReasonCategory
	}

	state, ok := states.ByName(row.StateName)
	if !ok {
		return Match{}, ReasonUnknownState
	}
	if f.excluded[state.Name] {
		return Match{}, ReasonExcludedState
	}

	population, err := strconv.Atoi(strings.TrimSpace(row.Population))
	if err != nil {
		return Match{}, ReasonPopulationInvalid
	}
	if population < f.minPopulation {
		return Match{}, ReasonBelowThreshold
	}

	return Match{State: state, Population: population}, ""
}
