package detector

import (
	"testing"

	"phillies-updater/internal/domain/games"
	"phillies-updater/internal/domain/plays"
	"phillies-updater/internal/notify"
	"phillies-updater/internal/testutil"
)

func TestDetectSuppressesRepeatedOffDays(t *testing.T) {
	prev := testutil.Schedule("2024-07-01")
	cur := testutil.Schedule("2024-07-01")

	out := Detect(prev, cur, plays.FeedSnapshot{})

	if len(out.Events) != 0 {
		t.Fatalf("expected no events, got %+v", out.Events)
	}
	if out.PersistSchedule || out.PersistFeed {
		t.Fatalf("expected no persistence for repeated off day, got %+v", out)
	}
}

func TestDetectNoGameTodayAlertsOnce(t *testing.T) {
	prev := testutil.Schedule("2024-06-30",
		testutil.Game(games.StateFinal, "Final", "Phillies", "Mets", 4, 1))
	cur := testutil.Schedule("2024-07-01")

	out := Detect(prev, cur, plays.FeedSnapshot{})

	if len(out.Events) != 1 {
		t.Fatalf("expected one event, got %+v", out.Events)
	}
	if out.Events[0].Message != "No game today." || out.Events[0].Title != notify.DefaultTitle {
		t.Fatalf("unexpected event: %+v", out.Events[0])
	}
	if !out.PersistSchedule || out.PersistFeed {
		t.Fatalf("expected schedule-only persistence, got %+v", out)
	}

	// A second cycle diffing against the persisted empty snapshot is silent.
	again := Detect(cur, cur, plays.FeedSnapshot{})
	if len(again.Events) != 0 {
		t.Fatalf("expected idempotent silence, got %+v", again.Events)
	}
}

func TestDetectGameStartingReminder(t *testing.T) {
	prev := testutil.Schedule("2024-06-30",
		testutil.Game(games.StateFinal, "Final", "Phillies", "Braves", 4, 1))
	cur := testutil.Schedule("2024-07-01",
		testutil.Game(games.StatePreview, "Preview", "Phillies", "Mets", 0, 0))

	out := Detect(prev, cur, plays.FeedSnapshot{})

	if out.Transition != TransitionGameStarting {
		t.Fatalf("expected game starting transition, got %s", out.Transition)
	}
	if len(out.Events) != 1 || out.Events[0].Message != "Today - Mets @ Phillies" {
		t.Fatalf("unexpected events: %+v", out.Events)
	}
	if !out.PersistSchedule || !out.PersistFeed {
		t.Fatalf("expected both snapshots persisted, got %+v", out)
	}
}

func TestDetectFinalSummaryUsesPreviousSnapshot(t *testing.T) {
	prev := testutil.Schedule("2024-07-01",
		testutil.Game(games.StateLive, "In Progress", "Phillies", "Mets", 3, 2))
	cur := testutil.Schedule("2024-07-01",
		testutil.Game(games.StateFinal, "Final", "Phillies", "Mets", 5, 2))

	out := Detect(prev, cur, plays.FeedSnapshot{})

	if out.Transition != TransitionGameFinal {
		t.Fatalf("expected game final transition, got %s", out.Transition)
	}
	if len(out.Events) != 1 {
		t.Fatalf("expected one event, got %+v", out.Events)
	}
	if out.Events[0].Message != "FINAL - Phillies: 3 vs Mets: 2" {
		t.Fatalf("unexpected final summary: %q", out.Events[0].Message)
	}
	if !out.PersistSchedule || !out.PersistFeed {
		t.Fatalf("expected both snapshots persisted to lock in the final, got %+v", out)
	}
}

func TestDetectSilenceForUncoveredStatePairs(t *testing.T) {
	cases := []struct {
		name string
		prev games.AbstractState
		cur  games.AbstractState
	}{
		{"preview to preview", games.StatePreview, games.StatePreview},
		{"preview to final", games.StatePreview, games.StateFinal},
		{"final to final", games.StateFinal, games.StateFinal},
		{"live to live", games.StateLive, games.StateLive},
		{"preview to live", games.StatePreview, games.StateLive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prev := testutil.Schedule("2024-07-01",
				testutil.Game(tc.prev, string(tc.prev), "Phillies", "Mets", 1, 1))
			cur := testutil.Schedule("2024-07-01",
				testutil.Game(tc.cur, "In Progress", "Phillies", "Mets", 1, 1))

			out := Detect(prev, cur, plays.FeedSnapshot{})

			if len(out.Events) != 0 {
				t.Fatalf("expected silence for %s, got %+v", tc.name, out.Events)
			}
			if !out.PersistSchedule || !out.PersistFeed {
				t.Fatalf("expected silent persistence for %s, got %+v", tc.name, out)
			}
		})
	}
}

func TestDetectScoreUpdateFiresAlongsidePrimary(t *testing.T) {
	// Yesterday's final rolled over into a fresh live game with runs already
	// on the board: both the reminder and the score update fire.
	prev := testutil.Schedule("2024-06-30",
		testutil.Game(games.StateFinal, "Final", "Phillies", "Braves", 4, 1))
	cur := testutil.Schedule("2024-07-01",
		testutil.Game(games.StateLive, "In Progress", "Phillies", "Mets", 1, 0))
	feed := plays.NewFeedSnapshot(1, []plays.Play{
		testutil.ScoringPlay("Bryce Harper homers (15) on a fly ball to right field.", 1, 1, 0),
	})

	out := Detect(prev, cur, feed)

	if len(out.Events) != 2 {
		t.Fatalf("expected reminder plus score update, got %+v", out.Events)
	}
	if out.Events[0].Message != "Today - Mets @ Phillies" {
		t.Fatalf("unexpected primary event: %+v", out.Events[0])
	}
	if out.Events[1].Title != ScoreUpdateTitle {
		t.Fatalf("expected score update title, got %+v", out.Events[1])
	}
}

func TestDetectSkipsScoreCheckWhilePreviewDetailedState(t *testing.T) {
	prev := testutil.Schedule("2024-07-01",
		testutil.Game(games.StateLive, "In Progress", "Phillies", "Mets", 0, 0))
	cur := testutil.Schedule("2024-07-01",
		testutil.Game(games.StateLive, "Preview", "Phillies", "Mets", 2, 0))
	feed := plays.NewFeedSnapshot(1, []plays.Play{
		testutil.ScoringPlay("a play", 2, 2, 0),
	})

	out := Detect(prev, cur, feed)

	if len(out.Events) != 0 {
		t.Fatalf("expected no score check before the game starts, got %+v", out.Events)
	}
}

func TestDetectRefreshesSilentlyAfterOffDay(t *testing.T) {
	// Previous snapshot recorded an off day, today a game appears: no alert,
	// but the store must be brought current so diffing resumes.
	prev := testutil.Schedule("2024-06-30")
	cur := testutil.Schedule("2024-07-01",
		testutil.Game(games.StatePreview, "Preview", "Phillies", "Mets", 0, 0))

	out := Detect(prev, cur, plays.FeedSnapshot{})

	if len(out.Events) != 0 {
		t.Fatalf("expected no events, got %+v", out.Events)
	}
	if !out.PersistSchedule || !out.PersistFeed {
		t.Fatalf("expected silent refresh, got %+v", out)
	}
}

func TestClassifyCoversPairs(t *testing.T) {
	cases := []struct {
		prev     games.AbstractState
		cur      games.AbstractState
		expected Transition
	}{
		{games.StateFinal, games.StatePreview, TransitionGameStarting},
		{games.StateFinal, games.StateLive, TransitionGameStarting},
		{games.StateLive, games.StateFinal, TransitionGameFinal},
		{games.StatePreview, games.StateFinal, TransitionNone},
		{games.StateFinal, games.StateFinal, TransitionNone},
		{games.StateLive, games.StateLive, TransitionNone},
		{games.StatePreview, games.StateLive, TransitionNone},
	}

	for _, tc := range cases {
		prev := testutil.Game(tc.prev, "", "Phillies", "Mets", 0, 0)
		cur := testutil.Game(tc.cur, "", "Phillies", "Mets", 0, 0)
		if got := Classify(prev, cur); got != tc.expected {
			t.Fatalf("%s -> %s expected %s, got %s", tc.prev, tc.cur, tc.expected, got)
		}
	}
}
