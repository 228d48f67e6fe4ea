package database

type State struct {
	Abbrev string
	Name   string
	Slug   string
}

type City struct {
	ID         int64
	State      string // State abbreviation
	Name       string
	Slug       string
	Population int
	Rank       int // 1-based position within the state, by population
}
