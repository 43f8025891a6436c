package statsapi

import "time"

const (
	defaultBaseURL     = "https://statsapi.mlb.com"
	defaultHTTPTimeout = 30 * time.Second
	defaultSportID     = 1
)

// ProviderName identifies this provider in logs and metrics.
const ProviderName = "statsapi"
