package places

import (
	"context"
	"log/slog"

	"github.com/findabatherapy/citygen/app/census"
)

// Aggregator groups accepted rows by state, dropping repeated slugs.
// The first row seen for a (state, slug) pair wins.
type Aggregator struct {
	filterer   *Filterer
	normalizer *Normalizer

	dataset Dataset
	seen    map[string]map[string]bool // state abbreviation -> slugs
	stats   Stats
}

func NewAggregator(filterer *Filterer, normalizer *Normalizer) *Aggregator {
	return &Aggregator{
		filterer:   filterer,
		normalizer: normalizer,
		dataset:    make(Dataset),
		seen:       make(map[string]map[string]bool),
		stats:      Stats{Rejected: make(map[Reason]int)},
	}
}

// Add processes one row and returns why it was rejected, or "".
func (a *Aggregator) Add(row census.Row) Reason {
	a.stats.Rows++

	match, reason := a.filterer.Accept(row)
	if reason == "" {
		reason = a.add(row, match)
	}

	if reason != "" {
		a.stats.Rejected[reason]++
		if reason != ReasonCategory && reason != ReasonBelowThreshold {
			slog.Debug("Row skipped", "line", row.Line, "place", row.PlaceName, "state", row.StateName, "reason", reason)
		}
		return reason
	}

	a.stats.Accepted++
	return ""
}

func (a *Aggregator) add(row census.Row, match Match) Reason {
	name, slug := a.normalizer.Normalize(row.PlaceName)
	if slug == "" {
		return ReasonEmptySlug
	}

	abbrev := match.State.Abbrev
	if a.seen[abbrev] == nil {
		a.seen[abbrev] = make(map[string]bool)
	}
	if a.seen[abbrev][slug] {
		return ReasonDuplicateSlug
	}
	a.seen[abbrev][slug] = true

	a.dataset[abbrev] = append(a.dataset[abbrev], City{
		Name:       name,
		Slug:       slug,
		State:      abbrev,
		StateName:  row.StateName,
		Population: match.Population,
	})
	return ""
}

// Run adds every row and returns the sorted dataset. It stops early with
// ctx.Err() when the context is cancelled.
func (a *Aggregator) Run(ctx context.Context, rows []census.Row) (Dataset, error) {
	for i, row := range rows {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		a.Add(row)
	}

	a.dataset.Sort()
	return a.dataset, nil
}

// Stats returns the counters collected so far.
func (a *Aggregator) Stats() Stats {
	return a.stats
}
