package snapshots

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"phillies-updater/internal/domain/games"
	"phillies-updater/internal/domain/plays"
)

// StorageError wraps persistence write failures. Loads never error: a
// missing, empty, or unparsable file degrades to the empty sentinel so that
// first runs and corruption behave the same.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("snapshot write %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Store defines how last-seen snapshots are loaded and saved.
type Store interface {
	LoadSchedule() (games.ScheduleSnapshot, bool)
	SaveSchedule(snapshot games.ScheduleSnapshot) error
	LoadFeed() (plays.FeedSnapshot, bool)
	SaveFeed(snapshot plays.FeedSnapshot) error
}

// FSStore keeps one snapshot per kind on the filesystem, overwritten
// wholesale on every save. No locking: overlapping runs are assumed absent.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadSchedule reads the last-seen schedule snapshot. The second return is
// false when no usable snapshot exists.
func (s *FSStore) LoadSchedule() (games.ScheduleSnapshot, bool) {
	var payload games.ScheduleSnapshot
	if !s.load(SchedulePath(s.basePath), &payload) {
		return games.ScheduleSnapshot{}, false
	}
	return payload, true
}

// SaveSchedule overwrites the schedule snapshot.
func (s *FSStore) SaveSchedule(snapshot games.ScheduleSnapshot) error {
	return s.save(SchedulePath(s.basePath), snapshot)
}

// LoadFeed reads the last-seen live feed snapshot. The second return is
// false when no usable snapshot exists.
func (s *FSStore) LoadFeed() (plays.FeedSnapshot, bool) {
	var payload plays.FeedSnapshot
	if !s.load(FeedPath(s.basePath), &payload) {
		return plays.FeedSnapshot{}, false
	}
	return payload, true
}

// SaveFeed overwrites the live feed snapshot.
func (s *FSStore) SaveFeed(snapshot plays.FeedSnapshot) error {
	return s.save(FeedPath(s.basePath), snapshot)
}

func (s *FSStore) load(path string, payload any) bool {
	if s == nil {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, payload); err != nil {
		return false
	}
	return true
}

func (s *FSStore) save(path string, payload any) error {
	if s == nil {
		return &StorageError{Path: path, Err: fmt.Errorf("store not configured")}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &StorageError{Path: path, Err: err}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return &StorageError{Path: path, Err: err}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &StorageError{Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &StorageError{Path: path, Err: err}
	}
	return nil
}
