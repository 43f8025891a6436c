package config

import "time"

const (
	envStatsAPIBaseURL = "STATSAPI_BASE_URL"
	envStatsAPITeamID  = "STATSAPI_TEAM_ID"
	envStatsAPISportID = "STATSAPI_SPORT_ID"
	envStatsAPITimeout = "STATSAPI_TIMEOUT"

	defaultStatsAPIBaseURL = "https://statsapi.mlb.com"
	// Phillies.
	defaultTeamID  = 143
	defaultSportID = 1
	// Upstream can be slow on live games; keep a generous client-side bound.
	defaultStatsAPITimeout = 30 * time.Second
)

// StatsAPIConfig controls how we talk to the MLB stats API.
type StatsAPIConfig struct {
	BaseURL string
	TeamID  int
	SportID int
	Timeout time.Duration
}

func loadStatsAPI() StatsAPIConfig {
	return StatsAPIConfig{
		BaseURL: envOrDefault(envStatsAPIBaseURL, defaultStatsAPIBaseURL),
		TeamID:  intEnvOrDefault(envStatsAPITeamID, defaultTeamID),
		SportID: intEnvOrDefault(envStatsAPISportID, defaultSportID),
		Timeout: durationEnvOrDefault(envStatsAPITimeout, defaultStatsAPITimeout),
	}
}
