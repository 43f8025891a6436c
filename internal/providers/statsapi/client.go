package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"phillies-updater/internal/domain/games"
	"phillies-updater/internal/domain/plays"
	"phillies-updater/internal/providers"
)

// Config controls how the statsapi client reaches the upstream API.
type Config struct {
	BaseURL    string
	TeamID     int
	SportID    int
	HTTPClient *http.Client
}

// Client fetches schedules and live feeds from the MLB stats API and maps
// them to domain models. One Client is constructed per process and reused
// for every call in the cycle.
type Client struct {
	baseURL    string
	teamID     int
	sportID    int
	httpClient httpDoer
}

// NewClient constructs a statsapi client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		teamID:     cfg.TeamID,
		sportID:    resolveSportID(cfg.SportID),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchSchedule retrieves the team's schedule for the given date (YYYY-MM-DD).
func (c *Client) FetchSchedule(ctx context.Context, date string) (games.ScheduleSnapshot, error) {
	req, err := c.buildScheduleRequest(ctx, date)
	if err != nil {
		return games.ScheduleSnapshot{}, err
	}

	var payload scheduleResponse
	if err := c.doJSON(req, &payload); err != nil {
		return games.ScheduleSnapshot{}, err
	}
	return mapSchedule(date, payload), nil
}

// FetchFeed retrieves the live play-by-play feed for the given game.
func (c *Client) FetchFeed(ctx context.Context, gamePk int64) (plays.FeedSnapshot, error) {
	url := fmt.Sprintf("%s/api/v1.1/game/%d/feed/live", c.baseURL, gamePk)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return plays.FeedSnapshot{}, err
	}

	var payload feedResponse
	if err := c.doJSON(req, &payload); err != nil {
		return plays.FeedSnapshot{}, err
	}
	return mapFeed(gamePk, payload), nil
}

func (c *Client) buildScheduleRequest(ctx context.Context, date string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/schedule", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("sportId", strconv.Itoa(c.sportID))
	q.Set("teamId", strconv.Itoa(c.teamID))
	q.Set("date", date)
	req.URL.RawQuery = q.Encode()

	return req, nil
}

func (c *Client) doJSON(req *http.Request, payload any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &providers.NetworkError{Provider: ProviderName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &providers.NetworkError{Provider: ProviderName, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(payload); err != nil {
		return &providers.DecodeError{Provider: ProviderName, Err: err}
	}
	return nil
}
