package detector

import (
	"fmt"

	"phillies-updater/internal/domain/games"
	"phillies-updater/internal/domain/plays"
)

// ScoreUpdateTitle is the push title used for score-change events.
const ScoreUpdateTitle = "Score Update!"

// ExplainScoreChange reports whether the score moved between snapshots and,
// if so, builds the human-readable explanation from the play list.
//
// Every play with a positive RBI whose resulting home or away score matches
// the new score overwrites the candidate message: the scan never breaks
// early, so the last matching play wins when several plays reach the same
// tally. Callers depend on that ordering.
func ExplainScoreChange(prevScore, curScore games.Score, homeTeam, awayTeam string, feedPlays []plays.Play) (string, bool) {
	if curScore == prevScore {
		return "", false
	}

	// Fallback when no play matches: still announce the new score.
	msg := fmt.Sprintf("Score changed: %s: %d vs %s: %d",
		homeTeam, curScore.Home, awayTeam, curScore.Away)

	for _, p := range feedPlays {
		if p.Result.RBI <= 0 {
			continue
		}
		if p.Result.HomeScore == curScore.Home || p.Result.AwayScore == curScore.Away {
			msg = fmt.Sprintf("Score changed: %s: %d vs %s: %d from %s",
				homeTeam, curScore.Home, awayTeam, curScore.Away, p.Result.Description)
		}
	}

	return msg, true
}
