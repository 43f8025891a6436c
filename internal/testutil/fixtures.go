package testutil

import (
	"phillies-updater/internal/domain/games"
	"phillies-updater/internal/domain/plays"
)

// Game builds a schedule game fixture.
func Game(abstract games.AbstractState, detailed, home, away string, homeScore, awayScore int) games.Game {
	return games.Game{
		GamePk:   1,
		HomeTeam: home,
		AwayTeam: away,
		Score:    games.Score{Home: homeScore, Away: awayScore},
		State:    games.GameState{Abstract: abstract, Detailed: detailed},
	}
}

// Schedule builds a schedule snapshot fixture.
func Schedule(date string, gs ...games.Game) games.ScheduleSnapshot {
	return games.NewScheduleSnapshot(date, gs)
}

// ScoringPlay builds a play fixture with a positive RBI.
func ScoringPlay(description string, rbi, homeScore, awayScore int) plays.Play {
	return plays.Play{
		Result: plays.PlayResult{
			Description: description,
			RBI:         rbi,
			HomeScore:   homeScore,
			AwayScore:   awayScore,
		},
		IsScoringPlay: true,
	}
}
