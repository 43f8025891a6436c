package snapshots

import "path/filepath"

const (
	scheduleFile = "schedule.json"
	feedFile     = "feed.json"
)

// SchedulePath builds the path to the last-seen schedule snapshot.
func SchedulePath(basePath string) string {
	return filepath.Join(basePath, scheduleFile)
}

// FeedPath builds the path to the last-seen live feed snapshot.
func FeedPath(basePath string) string {
	return filepath.Join(basePath, feedFile)
}
