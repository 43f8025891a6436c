package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"phillies-updater/internal/config"
	"phillies-updater/internal/logging"
	"phillies-updater/internal/metrics"
	"phillies-updater/internal/notify"
	"phillies-updater/internal/notify/pushover"
	"phillies-updater/internal/providers"
	"phillies-updater/internal/providers/statsapi"
	"phillies-updater/internal/runner"
	"phillies-updater/internal/snapshots"
	"phillies-updater/internal/timeutil"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_RUN") == "1" {
		return
	}

	// Credentials usually live in a .env next to the cron entry; absence is fine.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "phillies-updater",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, metricsShutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:        cfg.Metrics.Enabled,
		ServiceName:    cfg.Metrics.ServiceName,
		OtlpEndpoint:   cfg.Metrics.OtlpEndpoint,
		OtlpInsecure:   cfg.Metrics.OtlpInsecure,
		PushgatewayURL: cfg.Metrics.PushgatewayURL,
	})
	if err != nil {
		logger.Error("metrics setup failed, continuing without telemetry", "error", err)
		recorder = metrics.NewRecorder()
		metricsShutdown = func(context.Context) error { return nil }
	}

	client := statsapi.NewClient(statsapi.Config{
		BaseURL:    cfg.StatsAPI.BaseURL,
		TeamID:     cfg.StatsAPI.TeamID,
		SportID:    cfg.StatsAPI.SportID,
		HTTPClient: &http.Client{Timeout: cfg.StatsAPI.Timeout},
	})
	provider := providers.NewInstrumentedProvider(client, statsapi.ProviderName, logger, recorder)

	var notifier notify.Notifier
	if cfg.Pushover.Configured() {
		notifier = pushover.NewClient(pushover.Config{
			Token:      cfg.Pushover.Token,
			UserKey:    cfg.Pushover.UserKey,
			Endpoint:   cfg.Pushover.Endpoint,
			HTTPClient: &http.Client{Timeout: cfg.Pushover.Timeout},
		})
	} else {
		logger.Warn("pushover credentials missing, notifications will only be logged")
		notifier = notify.NewLogNotifier(logger)
	}

	store := snapshots.NewFSStore(cfg.Snapshots.Dir)
	run := runner.New(provider, store, notifier, logger, recorder,
		timeutil.ResolveLocation(cfg.Timezone))

	// A failed cycle already pushed its own diagnostic; the exit code stays
	// zero either way so the external scheduler keeps its cadence.
	if err := run.Run(ctx); err != nil {
		logger.Error("run finished with error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := metricsShutdown(shutdownCtx); err != nil {
		logger.Error("metrics shutdown failed", "error", err)
	}
}
