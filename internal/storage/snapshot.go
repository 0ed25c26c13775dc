// Package storage persists the application snapshot as a single JSON
// document with atomic writes and rotating backups.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/halvard/tend/internal/habit"
	"github.com/halvard/tend/internal/osutil"
)

const (
	// AppName is the application name used for config directory
	AppName = "tend"
	// SnapshotFile is the name of the JSON snapshot file
	SnapshotFile = "snapshot.json"
)

// Warning describes why a persisted snapshot could not be used and was
// replaced with the default.
type Warning struct {
	Path  string
	Error string
}

// DataPath returns the path to the snapshot file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func DataPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, SnapshotFile), nil
}

// Save writes the snapshot to the given path. The current file is
// rotated into the backup set first, every enumerated timestamp field is
// normalized to UTC, and the write itself goes through a temp file and
// an atomic rename.
func Save(path string, snap habit.Snapshot) error {
	if err := CreateBackup(path); err != nil {
		return err
	}

	normalizeTimestamps(&snap)

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, append(data, '\n'), 0644); err != nil {
		return err
	}

	return os.Rename(tmpFile, path)
}

// Load reads the snapshot from the given path. A missing file yields the
// default snapshot silently; an unparseable file yields the default
// snapshot plus a Warning so callers can tell the user. The error return
// is reserved for real I/O failures.
func Load(path string) (habit.Snapshot, *Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return habit.DefaultSnapshot(habit.DefaultDayOffLimit), nil, nil
		}
		return habit.DefaultSnapshot(habit.DefaultDayOffLimit), nil, err
	}

	var snap habit.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return habit.DefaultSnapshot(habit.DefaultDayOffLimit), &Warning{Path: path, Error: err.Error()}, nil
	}

	ensureCollections(&snap)
	return snap, nil, nil
}

// normalizeTimestamps rewrites the timestamp-bearing fields of the
// snapshot in UTC. The set is enumerated by field name: lastUpdated,
// createdAt, updatedAt and dueDate. A date stored under any other name
// would not be normalized, so new timestamp fields must be added here.
func normalizeTimestamps(snap *habit.Snapshot) {
	for i := range snap.Routines {
		snap.Routines[i].CreatedAt = snap.Routines[i].CreatedAt.UTC()
		snap.Routines[i].UpdatedAt = snap.Routines[i].UpdatedAt.UTC()
	}
	if snap.SelectedRoutine != nil {
		snap.SelectedRoutine.CreatedAt = snap.SelectedRoutine.CreatedAt.UTC()
		snap.SelectedRoutine.UpdatedAt = snap.SelectedRoutine.UpdatedAt.UTC()
	}
	for i := range snap.Tasks {
		snap.Tasks[i].CreatedAt = snap.Tasks[i].CreatedAt.UTC()
		snap.Tasks[i].DueDate = snap.Tasks[i].DueDate.UTC()
	}
	snap.Stats.DayOff.LastUpdated = snap.Stats.DayOff.LastUpdated.UTC()
}

// ensureCollections replaces nil collections from sparse JSON with empty
// ones so callers can range and append without nil checks.
func ensureCollections(snap *habit.Snapshot) {
	if snap.Routines == nil {
		snap.Routines = []habit.Routine{}
	}
	if snap.Tasks == nil {
		snap.Tasks = []habit.Task{}
	}
	if snap.Stats.HabitHistory == nil {
		snap.Stats.HabitHistory = []habit.HistoryEntry{}
	}
	if snap.Theme == "" {
		snap.Theme = "simple"
	}
}
