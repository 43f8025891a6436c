package detector

import (
	"testing"

	"phillies-updater/internal/domain/games"
	"phillies-updater/internal/domain/plays"
	"phillies-updater/internal/testutil"
)

func TestExplainScoreChangeProducesNothingWhenScoresEqual(t *testing.T) {
	feedPlays := []plays.Play{
		testutil.ScoringPlay("a scoring play", 1, 2, 1),
	}

	msg, changed := ExplainScoreChange(
		games.Score{Home: 2, Away: 1}, games.Score{Home: 2, Away: 1},
		"Phillies", "Mets", feedPlays)

	if changed || msg != "" {
		t.Fatalf("expected nothing for equal scores, got %q changed=%v", msg, changed)
	}
}

func TestExplainScoreChangeLastMatchWins(t *testing.T) {
	// Two plays both land on the new tally; the later one must win because
	// the scan never breaks early.
	feedPlays := []plays.Play{
		testutil.ScoringPlay("first matching play", 1, 3, 1),
		testutil.ScoringPlay("unrelated play", 1, 2, 0),
		testutil.ScoringPlay("second matching play", 1, 3, 1),
	}

	msg, changed := ExplainScoreChange(
		games.Score{Home: 2, Away: 1}, games.Score{Home: 3, Away: 1},
		"Phillies", "Mets", feedPlays)

	if !changed {
		t.Fatalf("expected a score change")
	}
	expected := "Score changed: Phillies: 3 vs Mets: 1 from second matching play"
	if msg != expected {
		t.Fatalf("expected %q, got %q", expected, msg)
	}
}

func TestExplainScoreChangeIgnoresPlaysWithoutRBI(t *testing.T) {
	// A play can land on the right score without driving in a run (e.g. a
	// mid-inning defensive play); it must not name the explanation.
	feedPlays := []plays.Play{
		{Result: plays.PlayResult{Description: "no rbi play", RBI: 0, HomeScore: 3, AwayScore: 1}},
	}

	msg, changed := ExplainScoreChange(
		games.Score{Home: 2, Away: 1}, games.Score{Home: 3, Away: 1},
		"Phillies", "Mets", feedPlays)

	if !changed {
		t.Fatalf("expected a score change")
	}
	if msg != "Score changed: Phillies: 3 vs Mets: 1" {
		t.Fatalf("expected bare score line, got %q", msg)
	}
}

func TestExplainScoreChangeFallsBackWithoutMatchingPlay(t *testing.T) {
	msg, changed := ExplainScoreChange(
		games.Score{Home: 0, Away: 0}, games.Score{Home: 1, Away: 0},
		"Phillies", "Mets", nil)

	if !changed {
		t.Fatalf("expected a score change")
	}
	if msg != "Score changed: Phillies: 1 vs Mets: 0" {
		t.Fatalf("unexpected fallback message %q", msg)
	}
}

func TestExplainScoreChangeMatchesEitherSide(t *testing.T) {
	feedPlays := []plays.Play{
		testutil.ScoringPlay("away team scores", 1, 9, 4),
	}

	// Only the away score matches the play's resulting away score.
	msg, changed := ExplainScoreChange(
		games.Score{Home: 2, Away: 3}, games.Score{Home: 2, Away: 4},
		"Phillies", "Mets", feedPlays)

	if !changed {
		t.Fatalf("expected a score change")
	}
	expected := "Score changed: Phillies: 2 vs Mets: 4 from away team scores"
	if msg != expected {
		t.Fatalf("expected %q, got %q", expected, msg)
	}
}
