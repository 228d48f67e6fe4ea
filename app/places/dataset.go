package places

import (
	"cmp"
	"slices"
)

// Dataset maps a state abbreviation to its cities.
type Dataset map[string][]City

// StateCount is one line of the run summary.
type StateCount struct {
	State  string
	Cities int
}

// Sort orders each state's cities by population, largest first. The sort is
// stable, so equal populations keep input order.
func (d Dataset) Sort() {
	for _, cities := range d {
		slices.SortStableFunc(cities, func(a, b City) int {
			return cmp.Compare(b.Population, a.Population)
		})
	}
}

// States returns the abbreviations present, ascending.
func (d Dataset) States() []string {
	var keys []string
	for k := range d {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Total returns the number of cities across all states.
func (d Dataset) Total() int {
	total := 0
	for _, cities := range d {
		total += len(cities)
	}
	return total
}

// Counts returns per-state city counts ordered by abbreviation.
func (d Dataset) Counts() []StateCount {
	keys := d.States()
	counts := make([]StateCount, 0, len(keys))
	for _, state := range keys {
		counts = append(counts, StateCount{State: state, Cities: len(d[state])})
	}
	return counts
}
