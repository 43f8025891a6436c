package config

// Config holds runtime configuration for one notifier run.
type Config struct {
	LogLevel  string
	LogFormat string
	Timezone  string
	StatsAPI  StatsAPIConfig
	Pushover  PushoverConfig
	Snapshots SnapshotConfig
	Metrics   MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		LogLevel:  envOrDefault(envLogLevel, ""),
		LogFormat: envOrDefault(envLogFormat, ""),
		Timezone:  envOrDefault(envTimezone, defaultTimezone),
		StatsAPI:  loadStatsAPI(),
		Pushover:  loadPushover(),
		Snapshots: loadSnapshots(),
		Metrics:   loadMetrics(),
	}
}
