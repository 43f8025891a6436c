package providers

import (
	"context"
	"log/slog"
	"time"

	"phillies-updater/internal/domain/games"
	"phillies-updater/internal/domain/plays"
	"phillies-updater/internal/logging"
	"phillies-updater/internal/metrics"
)

// instrumentedProvider wraps a DataProvider with logging and metrics.
type instrumentedProvider struct {
	inner   DataProvider
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewInstrumentedProvider decorates the given provider with per-call logs
// and metrics. Logger and recorder may be nil.
func NewInstrumentedProvider(inner DataProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) DataProvider {
	return &instrumentedProvider{
		inner:   inner,
		name:    name,
		logger:  logger,
		metrics: recorder,
	}
}

func (p *instrumentedProvider) FetchSchedule(ctx context.Context, date string) (games.ScheduleSnapshot, error) {
	start := time.Now()
	snap, err := p.inner.FetchSchedule(ctx, date)
	p.record(ctx, "fetch schedule", time.Since(start), err,
		slog.String(logging.FieldDate, date),
	)
	return snap, err
}

func (p *instrumentedProvider) FetchFeed(ctx context.Context, gamePk int64) (plays.FeedSnapshot, error) {
	start := time.Now()
	snap, err := p.inner.FetchFeed(ctx, gamePk)
	p.record(ctx, "fetch live feed", time.Since(start), err,
		slog.Int64(logging.FieldGamePk, gamePk),
	)
	return snap, err
}

func (p *instrumentedProvider) record(ctx context.Context, op string, elapsed time.Duration, err error, attrs ...any) {
	if p.metrics != nil {
		p.metrics.RecordProviderAttempt(p.name, elapsed, err)
	}
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelError, p.name, op+" failed",
			append(attrs, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()), "error", err)...)
		return
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, op,
		append(attrs, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))...)
}

// logWithProvider emits a log entry if logger is non-nil and always includes provider name.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider))
	logger.Log(ctx, level, msg, args...)
}
