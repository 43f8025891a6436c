package statsapi

import (
	"phillies-updater/internal/domain/games"
	"phillies-updater/internal/domain/plays"
)

func mapSchedule(date string, payload scheduleResponse) games.ScheduleSnapshot {
	var gs []games.Game
	for _, d := range payload.Dates {
		if date != "" && d.Date != date {
			continue
		}
		for _, g := range d.Games {
			gs = append(gs, mapGame(g))
		}
	}
	return games.NewScheduleSnapshot(date, gs)
}

func mapGame(g gameResponse) games.Game {
	return games.Game{
		GamePk:   g.GamePk,
		HomeTeam: g.Teams.Home.Team.Name,
		AwayTeam: g.Teams.Away.Team.Name,
		Score: games.Score{
			Home: g.Teams.Home.Score,
			Away: g.Teams.Away.Score,
		},
		State: games.GameState{
			Abstract: mapAbstractState(g.Status.AbstractGameState),
			Detailed: g.Status.DetailedState,
		},
	}
}

func mapAbstractState(raw string) games.AbstractState {
	switch raw {
	case "Live":
		return games.StateLive
	case "Final":
		return games.StateFinal
	default:
		// Upstream only emits Preview/Live/Final; anything unexpected is
		// treated as a game that has not started.
		return games.StatePreview
	}
}

func mapFeed(gamePk int64, payload feedResponse) plays.FeedSnapshot {
	if payload.GamePk != 0 {
		gamePk = payload.GamePk
	}
	var ps []plays.Play
	for _, p := range payload.LiveData.Plays.AllPlays {
		ps = append(ps, mapPlay(p))
	}
	return plays.NewFeedSnapshot(gamePk, ps)
}

func mapPlay(p playResponse) plays.Play {
	return plays.Play{
		Result: plays.PlayResult{
			Description: p.Result.Description,
			RBI:         p.Result.RBI,
			HomeScore:   p.Result.HomeScore,
			AwayScore:   p.Result.AwayScore,
		},
		Inning:        p.About.Inning,
		HalfInning:    p.About.HalfInning,
		IsScoringPlay: p.About.IsScoringPlay,
	}
}
