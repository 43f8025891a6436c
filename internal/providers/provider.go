package providers

import (
	"context"

	"phillies-updater/internal/domain/games"
	"phillies-updater/internal/domain/plays"
)

// ScheduleProvider defines how the day schedule is fetched and normalized.
// The date parameter should be a YYYY-MM-DD string indicating which day's
// games to fetch.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, date string) (games.ScheduleSnapshot, error)
}

// FeedProvider fetches the live play-by-play feed for one game.
type FeedProvider interface {
	FetchFeed(ctx context.Context, gamePk int64) (plays.FeedSnapshot, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	ScheduleProvider
	FeedProvider
}
