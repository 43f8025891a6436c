package games

// AbstractState mirrors the coarse game lifecycle states reported upstream.
type AbstractState string

const (
	StatePreview AbstractState = "Preview"
	StateLive    AbstractState = "Live"
	StateFinal   AbstractState = "Final"
)

// GameState pairs the coarse lifecycle state with the upstream free-text
// detailed state (e.g. "Preview", "In Progress", "Final", "Postponed").
type GameState struct {
	Abstract AbstractState `json:"abstract"`
	Detailed string        `json:"detailed"`
}

// Score captures home and away runs.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Game is the canonical shape for one scheduled game.
type Game struct {
	GamePk   int64     `json:"gamePk"`
	HomeTeam string    `json:"homeTeam"`
	AwayTeam string    `json:"awayTeam"`
	Score    Score     `json:"score"`
	State    GameState `json:"state"`
}

// ScheduleSnapshot is the normalized day schedule as last fetched.
// It is replaced wholesale on every successful fetch.
type ScheduleSnapshot struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// NewScheduleSnapshot builds a snapshot for the given date.
func NewScheduleSnapshot(date string, gs []Game) ScheduleSnapshot {
	return ScheduleSnapshot{Date: date, Games: gs}
}

// FirstGame returns the first game of the day, if any. Games beyond the
// first (double-header game 2 and later) are never examined.
func (s ScheduleSnapshot) FirstGame() (Game, bool) {
	if len(s.Games) == 0 {
		return Game{}, false
	}
	return s.Games[0], true
}

// HasGames reports whether any game is scheduled for the snapshot date.
func (s ScheduleSnapshot) HasGames() bool {
	return len(s.Games) > 0
}
