package rules

import "slices"

const DefaultMinPopulation = 25000

var (
	defaultColumns = Columns{
		Category:   "SUMLEV",
		State:      "STNAME",
		Place:      "NAME",
		Population: "POPESTIMATE2023",
	}

	// 162 = incorporated place, 170 = census-designated place
	defaultAcceptedCategories = []string{"162", "170"}

	// Puerto Rico is a separate market.
	defaultExcludedStates = []string{"Puerto Rico"}

	defaultNameExceptions = []string{
		"Phenix City", "Oklahoma City", "Kansas City", "Jersey City", "Lake City",
		"Johnson City", "Iowa City", "Union City", "Carson City", "Daly City",
		"Sioux City", "Park City", "Rapid City", "Salt Lake City", "West Valley City",
		"Redwood City", "Culver City", "Studio City", "Foster City", "Commerce City",
		"League City", "Texas City", "Bay City", "Garden City", "Dodge City",
	}

	defaultNameSuffixes = []string{
		"city and borough",
		"city and",
		"city",
		"town",
		"village",
		"borough",
		"CDP",
		"municipality",
		"unified government",
		"metro government",
		"consolidated government",
	}
)

// Default returns the built-in rules.
func Default() *Rules {
	r := &Rules{MinPopulation: DefaultMinPopulation}
	setDefaults(r)
	return r
}

func setDefaults(r *Rules) {
	if r.Columns.Category == "" {
		r.Columns.Category = defaultColumns.Category
	}
	if r.Columns.State == "" {
		r.Columns.State = defaultColumns.State
	}
	if r.Columns.Place == "" {
		r.Columns.Place = defaultColumns.Place
	}
	if r.Columns.Population == "" {
		r.Columns.Population = defaultColumns.Population
	}
	if len(r.AcceptedCategories) == 0 {
		r.AcceptedCategories = slices.Clone(defaultAcceptedCategories)
	}
	// nil keeps the default; an explicit empty list in YAML excludes nothing.
	if r.ExcludedStates == nil {
		r.ExcludedStates = slices.Clone(defaultExcludedStates)
	}
	if r.NameExceptions == nil {
		r.NameExceptions = slices.Clone(defaultNameExceptions)
	}
	if len(r.NameSuffixes) == 0 {
		r.NameSuffixes = slices.Clone(defaultNameSuffixes)
	}
}
