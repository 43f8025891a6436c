package plays

// PlayResult describes the outcome of a single play.
type PlayResult struct {
	Description string `json:"description"`
	RBI         int    `json:"rbi"`
	HomeScore   int    `json:"homeScore"`
	AwayScore   int    `json:"awayScore"`
}

// Play is one entry in the live play-by-play feed.
type Play struct {
	Result        PlayResult `json:"result"`
	Inning        int        `json:"inning,omitempty"`
	HalfInning    string     `json:"halfInning,omitempty"`
	IsScoringPlay bool       `json:"isScoringPlay,omitempty"`
}

// FeedSnapshot is the live play-by-play feed for one game. Plays are kept
// in the order they occurred and are scanned in full on every score check.
type FeedSnapshot struct {
	GamePk int64  `json:"gamePk"`
	Plays  []Play `json:"plays"`
}

// NewFeedSnapshot builds a feed snapshot for the given game.
func NewFeedSnapshot(gamePk int64, ps []Play) FeedSnapshot {
	return FeedSnapshot{GamePk: gamePk, Plays: ps}
}
