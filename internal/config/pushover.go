package config

import "time"

const (
	envPushoverToken    = "PUSHOVER_TOKEN"
	envPushoverUserKey  = "PUSHOVER_USER_KEY"
	envPushoverEndpoint = "PUSHOVER_ENDPOINT"
	envPushoverTimeout  = "PUSHOVER_TIMEOUT"

	defaultPushoverEndpoint = "https://api.pushover.net/1/messages.json"
	defaultPushoverTimeout  = 15 * time.Second
)

// PushoverConfig controls the push notification transport.
type PushoverConfig struct {
	Token    string
	UserKey  string
	Endpoint string
	Timeout  time.Duration
}

// Configured reports whether credentials are present; without them the
// runner falls back to a log-only notifier.
func (c PushoverConfig) Configured() bool {
	return c.Token != "" && c.UserKey != ""
}

func loadPushover() PushoverConfig {
	return PushoverConfig{
		Token:    envOrDefault(envPushoverToken, ""),
		UserKey:  envOrDefault(envPushoverUserKey, ""),
		Endpoint: envOrDefault(envPushoverEndpoint, defaultPushoverEndpoint),
		Timeout:  durationEnvOrDefault(envPushoverTimeout, defaultPushoverTimeout),
	}
}
