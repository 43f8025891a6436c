package detector

import (
	"fmt"

	"phillies-updater/internal/domain/games"
	"phillies-updater/internal/domain/plays"
	"phillies-updater/internal/notify"
)

// Transition classifies the state change between the previous and current
// first game of the day.
type Transition string

const (
	// TransitionNone covers every state pair without a notification rule.
	TransitionNone Transition = "none"
	// TransitionGameStarting fires when yesterday's final gives way to a
	// fresh game (Final -> non-Final).
	TransitionGameStarting Transition = "game_starting"
	// TransitionGameFinal fires when a live game completes (Live -> Final).
	TransitionGameFinal Transition = "game_final"
)

// Outcome is the decision for one cycle: zero or more events to push and
// which snapshots to persist afterwards.
type Outcome struct {
	Transition      Transition
	Events          []notify.Event
	PersistSchedule bool
	PersistFeed     bool
}

// Classify maps the (previous, current) abstract state pair to a transition.
func Classify(prev, cur games.Game) Transition {
	switch {
	case prev.State.Abstract == games.StateFinal && cur.State.Abstract != games.StateFinal:
		return TransitionGameStarting
	case prev.State.Abstract == games.StateLive && cur.State.Abstract == games.StateFinal:
		return TransitionGameFinal
	default:
		return TransitionNone
	}
}

// Detect compares the previous and current schedule snapshots (first game
// only) and decides which notifications fire. The live feed is consulted
// only for the supplementary score-change trigger.
//
// Alert-once behavior falls out of the persistence flags: once the state
// that caused an event is written back, the next cycle sees identical
// previous/current snapshots and stays silent.
func Detect(prev, cur games.ScheduleSnapshot, feed plays.FeedSnapshot) Outcome {
	if !cur.HasGames() {
		if !prev.HasGames() {
			// Off day already recorded; suppress repeat "no game" alerts.
			return Outcome{Transition: TransitionNone}
		}
		return Outcome{
			Transition:      TransitionNone,
			Events:          []notify.Event{notify.NewEvent("No game today.")},
			PersistSchedule: true,
		}
	}

	curGame, _ := cur.FirstGame()
	prevGame, havePrev := prev.FirstGame()

	out := Outcome{
		Transition:      TransitionNone,
		PersistSchedule: true,
		PersistFeed:     true,
	}
	if !havePrev {
		// Previous snapshot recorded an off day; refresh silently.
		return out
	}

	out.Transition = Classify(prevGame, curGame)
	switch out.Transition {
	case TransitionGameStarting:
		out.Events = append(out.Events, notify.NewEvent(
			fmt.Sprintf("Today - %s @ %s", curGame.AwayTeam, curGame.HomeTeam),
		))
	case TransitionGameFinal:
		// The prior cycle's data is the authoritative final record at the
		// moment of detection; names and scores both come from it.
		out.Events = append(out.Events, notify.NewEvent(
			fmt.Sprintf("FINAL - %s: %d vs %s: %d",
				prevGame.HomeTeam, prevGame.Score.Home,
				prevGame.AwayTeam, prevGame.Score.Away),
		))
	}

	// Independent trigger: while the game is live, any score delta gets its
	// own event on top of whatever the transition table produced. A game
	// whose detailed state is still "Preview" has not started, so no delta
	// check happens regardless of the abstract state.
	if curGame.State.Abstract == games.StateLive && curGame.State.Detailed != "Preview" {
		msg, changed := ExplainScoreChange(prevGame.Score, curGame.Score,
			curGame.HomeTeam, curGame.AwayTeam, feed.Plays)
		if changed {
			out.Events = append(out.Events, notify.Event{Message: msg, Title: ScoreUpdateTitle})
		}
	}

	return out
}
