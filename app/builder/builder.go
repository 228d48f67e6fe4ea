// Package builder runs one census-to-source generation pass.
package builder

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/findabatherapy/citygen/app/census"
	"github.com/findabatherapy/citygen/app/cfg"
	"github.com/findabatherapy/citygen/app/database"
	"github.com/findabatherapy/citygen/app/generator"
	"github.com/findabatherapy/citygen/app/places"
	"github.com/findabatherapy/citygen/app/rules"
	"github.com/findabatherapy/citygen/app/states"
)

type Builder struct {
	cfg *cfg.Cfg
}

type Result struct {
	Dataset places.Dataset
	Stats   places.Stats
}

func NewBuilder(c *cfg.Cfg) *Builder {
	return &Builder{cfg: c}
}

// Run reads the input, builds the dataset and writes the artifact (and the
// snapshot when configured). Nothing is written when reading or rendering
// fails.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	r, err := rules.Load(b.cfg.RulesFile)
	if err != nil {
		return nil, err
	}

	slog.Debug("Reading census export", "path", b.cfg.InputPath, "encoding", b.cfg.Encoding)
	rows, err := census.NewReader(r.Columns, b.cfg.Encoding).ReadFile(b.cfg.InputPath)
	if err != nil {
		return nil, err
	}

	aggregator := places.NewAggregator(places.NewFilterer(r), places.NewNormalizer(r.NameExceptions, r.NameSuffixes))
	dataset, err := aggregator.Run(ctx, rows)
	if err != nil {
		return nil, err
	}
	stats := aggregator.Stats()

	slog.Info("Dataset built",
		"rows", stats.Rows,
		"accepted", stats.Accepted,
		"cities", dataset.Total(),
		"states", len(dataset))
	for reason, n := range stats.Rejected {
		slog.Debug("Rows rejected", "reason", reason, "count", n)
	}

	tables := emittedStates(r)

	gen, err := generator.NewGenerator(b.cfg.Format, b.cfg.GoPackage, tables, r.MinPopulation)
	if err != nil {
		return nil, err
	}
	out, err := gen.Run(dataset)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := generator.WriteFile(b.cfg.OutputPath, out); err != nil {
		return nil, err
	}
	slog.Info("Output written", "path", b.cfg.OutputPath, "format", b.cfg.Format)

	if b.cfg.SQLitePath != "" {
		if err := database.WriteSnapshot(ctx, b.cfg.SQLitePath, tables, dataset); err != nil {
			return nil, fmt.Errorf("failed to write snapshot: %w", err)
		}
	}

	return &Result{Dataset: dataset, Stats: stats}, nil
}

// emittedStates is the state table minus the excluded states.
func emittedStates(r *rules.Rules) []states.State {
	return slices.DeleteFunc(states.All(), func(s states.State) bool {
		return slices.Contains(r.ExcludedStates, s.Name)
	})
}

// WriteSummary prints the per-state city counts.
func WriteSummary(w io.Writer, dataset places.Dataset) error {
	if _, err := fmt.Fprintf(w, "Generated %d cities across %d states\n", dataset.Total(), len(dataset)); err != nil {
		return err
	}
	for _, c := range dataset.Counts() {
		if _, err := fmt.Fprintf(w, "  %s: %d cities\n", c.State, c.Cities); err != nil {
			return err
		}
	}
	return nil
}
