// Package store persists gradebook state under a data directory: JSON
// snapshots of the whole gradebook plus CSV import/export and report
// generation.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/rosterbook/gradebook-api/internal/gradebook"
)

// Default file names used when the caller does not pick one.
const (
	DefaultSnapshotFile = "gradebook_data.json"
	DefaultReportFile   = "grades_report.json"
	DefaultGradesFile   = "grades_export.csv"
)

// ErrSnapshotNotFound indicates there is no saved snapshot to load.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// DataStore owns a data directory and performs all file operations for the
// gradebook. It holds no locks; concurrent writers to the same path race
// and the last writer wins.
type DataStore struct {
	dataDir string
	logger  zerolog.Logger
}

// New creates the data directory if needed and returns a store rooted there.
func New(dataDir string, logger zerolog.Logger) (*DataStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &DataStore{
		dataDir: dataDir,
		logger:  logger.With().Str("component", "datastore").Logger(),
	}, nil
}

// DataDir returns the directory the store writes into.
func (d *DataStore) DataDir() string { return d.dataDir }

func (d *DataStore) path(filename, fallback string) string {
	if filename == "" {
		filename = fallback
	}
	return filepath.Join(d.dataDir, filename)
}

// SaveGradebook writes the full gradebook snapshot as indented JSON and
// returns the path written.
func (d *DataStore) SaveGradebook(g *gradebook.Gradebook, filename string) (string, error) {
	path := d.path(filename, DefaultSnapshotFile)

	data, err := json.MarshalIndent(g.Record(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize gradebook: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to save gradebook: %w", err)
	}

	d.logger.Info().Str("path", path).Msg("gradebook saved")
	return path, nil
}

// LoadGradebook reads a snapshot and rebuilds the gradebook from it. A
// missing file surfaces as ErrSnapshotNotFound so callers can start fresh.
func (d *DataStore) LoadGradebook(filename string) (*gradebook.Gradebook, error) {
	path := d.path(filename, DefaultSnapshotFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, path)
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var rec gradebook.GradebookRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	g, err := gradebook.FromRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot data: %w", err)
	}

	d.logger.Info().Str("path", path).Msg("gradebook loaded")
	return g, nil
}
