package config

const (
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"
	envTimezone       = "TIMEZONE"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envPushgatewayURL = "PUSHGATEWAY_URL"
	envSnapshotDir    = "SNAPSHOT_DIR"

	defaultTimezone    = "America/New_York"
	defaultServiceName = "phillies-updater"
)
