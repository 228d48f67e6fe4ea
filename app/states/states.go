// Package states holds the fixed U.S. state table used to resolve census
// state names and to build the generated state lookups.
package states

import (
	"slices"
	"strings"
	"sync"
)

// State is one entry of the lookup table.
type State struct {
	Name    string   // Full name as spelled in census exports
	Abbrev  string   // USPS two-letter code
	Aliases []string // Extra slugs that resolve to this state
}

// Slug returns the canonical URL slug for the state ("new-jersey").
func (s State) Slug() string {
	return slugWords(s.Name)
}

// table lists the 50 states, DC and Puerto Rico. Puerto Rico is known so that
// census rows can be recognized, and is held back by the default rules.
var table = []State{
	{Name: "Alabama", Abbrev: "AL"}, {Name: "Alaska", Abbrev: "AK"},
	{Name: "Arizona", Abbrev: "AZ"}, {Name: "Arkansas", Abbrev: "AR"},
	{Name: "California", Abbrev: "CA"}, {Name: "Colorado", Abbrev: "CO"},
	{Name: "Connecticut", Abbrev: "CT"}, {Name: "Delaware", Abbrev: "DE"},
	{Name: "Florida", Abbrev: "FL"}, {Name: "Georgia", Abbrev: "GA"},
	{Name: "Hawaii", Abbrev: "HI"}, {Name: "Idaho", Abbrev: "ID"},
	{Name: "Illinois", Abbrev: "IL"}, {Name: "Indiana", Abbrev: "IN"},
	{Name: "Iowa", Abbrev: "IA"}, {Name: "Kansas", Abbrev: "KS"},
	{Name: "Kentucky", Abbrev: "KY"}, {Name: "Louisiana", Abbrev: "LA"},
	{Name: "Maine", Abbrev: "ME"}, {Name: "Maryland", Abbrev: "MD"},
	{Name: "Massachusetts", Abbrev: "MA"}, {Name: "Michigan", Abbrev: "MI"},
	{Name: "Minnesota", Abbrev: "MN"}, {Name: "Mississippi", Abbrev: "MS"},
	{Name: "Missouri", Abbrev: "MO"}, {Name: "Montana", Abbrev: "MT"},
	{Name: "Nebraska", Abbrev: "NE"}, {Name: "Nevada", Abbrev: "NV"},
	{Name: "New Hampshire", Abbrev: "NH"}, {Name: "New Jersey", Abbrev: "NJ"},
	{Name: "New Mexico", Abbrev: "NM"}, {Name: "New York", Abbrev: "NY"},
	{Name: "North Carolina", Abbrev: "NC"}, {Name: "North Dakota", Abbrev: "ND"},
	{Name: "Ohio", Abbrev: "OH"}, {Name: "Oklahoma", Abbrev: "OK"},
	{Name: "Oregon", Abbrev: "OR"}, {Name: "Pennsylvania", Abbrev: "PA"},
	{Name: "Rhode Island", Abbrev: "RI"}, {Name: "South Carolina", Abbrev: "SC"},
	{Name: "South Dakota", Abbrev: "SD"}, {Name: "Tennessee", Abbrev: "TN"},
	{Name: "Texas", Abbrev: "TX"}, {Name: "Utah", Abbrev: "UT"},
	{Name: "Vermont", Abbrev: "VT"}, {Name: "Virginia", Abbrev: "VA"},
	{Name: "Washington", Abbrev: "WA"}, {Name: "West Virginia", Abbrev: "WV"},
	{Name: "Wisconsin", Abbrev: "WI"}, {Name: "Wyoming", Abbrev: "WY"},
	{Name: "District of Columbia", Abbrev: "DC", Aliases: []string{"dc"}},
	{Name: "Puerto Rico", Abbrev: "PR"},
}

type indexes struct {
	byName map[string]State // exact census spelling
}

var index = sync.OnceValue(func() indexes {
	idx := indexes{byName: make(map[string]State, len(table))}
	for _, s := range table {
		idx.byName[s.Name] = s
	}
	return idx
})

// All returns a copy of the table ordered by abbreviation.
func All() []State {
	out := slices.Clone(table)
	slices.SortFunc(out, func(a, b State) int { return strings.Compare(a.Abbrev, b.Abbrev) })
	return out
}

// ByName looks up a state by its exact census spelling.
func ByName(name string) (State, bool) {
	s, ok := index().byName[name]
	return s, ok
}

func slugWords(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
