package config

import (
	"os"
	"path/filepath"
)

// SnapshotConfig controls where last-seen snapshots are stored.
type SnapshotConfig struct {
	Dir string
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Dir: envOrDefault(envSnapshotDir, defaultSnapshotDir()),
	}
}

func defaultSnapshotDir() string {
	return filepath.Join(os.TempDir(), "phillies-updater")
}
