package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/findabatherapy/citygen/app/places"
	"github.com/findabatherapy/citygen/app/states"
)

// SQLCityRepository handles database operations for the city snapshot
type SQLCityRepository struct {
	db *DB
}

var _ CityRepository = (*SQLCityRepository)(nil)

// NewCityRepository creates a new city repository
func NewCityRepository(db *DB) *SQLCityRepository {
	return &SQLCityRepository{db: db}
}

// ReplaceAll swaps the stored states and cities for the given ones in a
// single transaction.
func (r *SQLCityRepository) ReplaceAll(ctx context.Context, tables []states.State, dataset places.Dataset) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{"DELETE FROM cities", "DELETE FROM state_slugs", "DELETE FROM states"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to clear snapshot: %w", err)
		}
	}

	if err := insertStates(ctx, tx, tables); err != nil {
		return err
	}
	if err := insertCities(ctx, tx, dataset); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

func insertStates(ctx context.Context, tx *sql.Tx, tables []states.State) error {
	stateStmt, err := tx.PrepareContext(ctx, `INSERT INTO states (abbrev, name, slug) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare state insert: %w", err)
	}
	defer stateStmt.Close()

	slugStmt, err := tx.PrepareContext(ctx, `INSERT INTO state_slugs (slug, state_abbrev) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare state slug insert: %w", err)
	}
	defer slugStmt.Close()

	for _, s := range tables {
		if _, err := stateStmt.ExecContext(ctx, s.Abbrev, s.Name, s.Slug()); err != nil {
			return fmt.Errorf("failed to insert state %s: %w", s.Abbrev, err)
		}
		for _, slug := range append([]string{s.Slug()}, s.Aliases...) {
			if _, err := slugStmt.ExecContext(ctx, slug, s.Abbrev); err != nil {
				return fmt.Errorf("failed to insert state slug %s: %w", slug, err)
			}
		}
	}
	return nil
}

func insertCities(ctx context.Context, tx *sql.Tx, dataset places.Dataset) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cities (state_abbrev, name, slug, population, state_rank)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare city insert: %w", err)
	}
	defer stmt.Close()

	for _, abbrev := range dataset.States() {
		for i, c := range dataset[abbrev] {
			if _, err := stmt.ExecContext(ctx, abbrev, c.Name, c.Slug, c.Population, i+1); err != nil {
				return fmt.Errorf("failed to insert city %s/%s: %w", abbrev, c.Slug, err)
			}
		}
	}
	return nil
}

// GetCities returns the cities of a state ordered by rank
func (r *SQLCityRepository) GetCities(ctx context.Context, stateAbbrev string) ([]City, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, state_abbrev, name, slug, population, state_rank
		FROM cities
		WHERE state_abbrev = ?
		ORDER BY state_rank
	`, stateAbbrev)
	if err != nil {
		return nil, fmt.Errorf("failed to get cities: %w", err)
	}
	defer rows.Close()

	var cities []City
	for rows.Next() {
		var c City
		if err := rows.Scan(&c.ID, &c.State, &c.Name, &c.Slug, &c.Population, &c.Rank); err != nil {
			return nil, fmt.Errorf("failed to scan city row: %w", err)
		}
		cities = append(cities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate city rows: %w", err)
	}

	return cities, nil
}

func (r *SQLCityRepository) GetCityCount(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cities`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get city count: %w", err)
	}
	return count, nil
}

func (r *SQLCityRepository) GetStates(ctx context.Context) ([]State, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT abbrev, name, slug FROM states ORDER BY abbrev`)
	if err != nil {
		return nil, fmt.Errorf("failed to get states: %w", err)
	}
	defer rows.Close()

	var out []State
	for rows.Next() {
		var s State
		if err := rows.Scan(&s.Abbrev, &s.Name, &s.Slug); err != nil {
			return nil, fmt.Errorf("failed to scan state row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate state rows: %w", err)
	}

	return out, nil
}
