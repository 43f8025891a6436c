package teststubs

import (
	"context"
	"sync/atomic"

	"phillies-updater/internal/domain/games"
	"phillies-updater/internal/domain/plays"
	"phillies-updater/internal/notify"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Schedule      games.ScheduleSnapshot
	ScheduleErr   error
	Feed          plays.FeedSnapshot
	FeedErr       error
	ScheduleCalls atomic.Int32
	FeedCalls     atomic.Int32
	LastDate      string
	LastGamePk    int64
}

// FetchSchedule returns the configured snapshot and error while tracking calls.
func (s *StubProvider) FetchSchedule(ctx context.Context, date string) (games.ScheduleSnapshot, error) {
	_ = ctx
	s.ScheduleCalls.Add(1)
	s.LastDate = date
	return s.Schedule, s.ScheduleErr
}

// FetchFeed returns the configured feed and error while tracking calls.
func (s *StubProvider) FetchFeed(ctx context.Context, gamePk int64) (plays.FeedSnapshot, error) {
	_ = ctx
	s.FeedCalls.Add(1)
	s.LastGamePk = gamePk
	return s.Feed, s.FeedErr
}

// StubNotifier is a test double for notify.Notifier.
type StubNotifier struct {
	Sent []notify.Event
	Err  error
}

// Send records the event for verification in tests.
func (n *StubNotifier) Send(ctx context.Context, event notify.Event) error {
	_ = ctx
	if n.Err != nil {
		return n.Err
	}
	n.Sent = append(n.Sent, event)
	return nil
}

// StubStore is a test double for snapshots.Store.
type StubStore struct {
	Schedule       *games.ScheduleSnapshot
	Feed           *plays.FeedSnapshot
	SavedSchedules []games.ScheduleSnapshot
	SavedFeeds     []plays.FeedSnapshot
	SaveErr        error
}

// LoadSchedule returns the configured previous schedule, if any.
func (s *StubStore) LoadSchedule() (games.ScheduleSnapshot, bool) {
	if s.Schedule == nil {
		return games.ScheduleSnapshot{}, false
	}
	return *s.Schedule, true
}

// SaveSchedule records the snapshot and mirrors it into Schedule, matching
// the overwrite semantics of the real store.
func (s *StubStore) SaveSchedule(snapshot games.ScheduleSnapshot) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.SavedSchedules = append(s.SavedSchedules, snapshot)
	cp := snapshot
	s.Schedule = &cp
	return nil
}

// LoadFeed returns the configured previous feed, if any.
func (s *StubStore) LoadFeed() (plays.FeedSnapshot, bool) {
	if s.Feed == nil {
		return plays.FeedSnapshot{}, false
	}
	return *s.Feed, true
}

// SaveFeed records the snapshot and mirrors it into Feed.
func (s *StubStore) SaveFeed(snapshot plays.FeedSnapshot) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.SavedFeeds = append(s.SavedFeeds, snapshot)
	cp := snapshot
	s.Feed = &cp
	return nil
}
