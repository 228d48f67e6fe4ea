package database

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/findabatherapy/citygen/app/places"
	"github.com/findabatherapy/citygen/app/states"
)

// WriteSnapshot stores the dataset in a fresh SQLite file at path. The file
// is built under a temp name in the same directory and renamed into place
// once the transaction has committed.
func WriteSnapshot(ctx context.Context, path string, tables []states.State, dataset places.Dataset) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot for %s: %w", path, err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	defer func() {
		if err != nil {
			os.Remove(tmpPath)
			os.Remove(tmpPath + "-journal")
		}
	}()

	db, err := NewConnection(tmpPath)
	if err != nil {
		return err
	}

	version, _, err := RunMigrations(db)
	if err != nil {
		db.Close()
		return err
	}
	slog.Debug("Snapshot schema ready", "path", tmpPath, "version", version)

	if err = NewCityRepository(db).ReplaceAll(ctx, tables, dataset); err != nil {
		db.Close()
		return err
	}

	if err = db.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot: %w", err)
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move snapshot into place: %w", err)
	}

	slog.Info("Snapshot written", "path", path, "cities", dataset.Total())
	return nil
}
