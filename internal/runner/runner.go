package runner

import (
	"context"
	"log/slog"
	"time"

	"phillies-updater/internal/detector"
	"phillies-updater/internal/domain/games"
	"phillies-updater/internal/domain/plays"
	"phillies-updater/internal/logging"
	"phillies-updater/internal/metrics"
	"phillies-updater/internal/notify"
	"phillies-updater/internal/providers"
	"phillies-updater/internal/snapshots"
	"phillies-updater/internal/timeutil"
)

// Runner executes one poll cycle: load snapshots, fetch current data, run
// the change detector, push events, persist new snapshots. Repetition is an
// external scheduler's concern; the process runs once and exits.
type Runner struct {
	provider providers.DataProvider
	store    snapshots.Store
	notifier notify.Notifier
	logger   *slog.Logger
	metrics  *metrics.Recorder
	loc      *time.Location
	now      func() time.Time
}

// New constructs a Runner with sane defaults.
func New(provider providers.DataProvider, store snapshots.Store, notifier notify.Notifier, logger *slog.Logger, recorder *metrics.Recorder, loc *time.Location) *Runner {
	if loc == nil {
		loc = time.UTC
	}
	return &Runner{
		provider: provider,
		store:    store,
		notifier: notifier,
		logger:   logger,
		metrics:  recorder,
		loc:      loc,
		now:      time.Now,
	}
}

// Run executes one cycle. Fetch failures abort the cycle and are surfaced
// as a best-effort diagnostic push; the returned error is informational and
// must not change the process exit code.
func (r *Runner) Run(ctx context.Context) error {
	start := time.Now()
	err := r.runCycle(ctx)
	if r.metrics != nil {
		r.metrics.RecordCycle(time.Since(start), err)
	}
	if err != nil {
		r.logError("cycle aborted", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		// Fire-and-forget: a failing push here is only logged, never chained.
		r.send(ctx, notify.NewEvent(err.Error()))
		return err
	}
	r.logInfo("cycle complete",
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
	return nil
}

func (r *Runner) runCycle(ctx context.Context) error {
	date := timeutil.FormatDate(r.now().In(r.loc))

	cur, err := r.provider.FetchSchedule(ctx, date)
	if err != nil {
		return err
	}

	prev, ok := r.store.LoadSchedule()
	if !ok {
		// First run or unreadable file: write the fresh fetch immediately so
		// the file heals, and diff against it (yielding a quiet cycle).
		r.logInfo("no usable schedule snapshot, seeding from current fetch",
			slog.String(logging.FieldDate, date))
		r.saveSchedule(cur)
		prev = cur
	}

	var feed plays.FeedSnapshot
	if game, hasGame := cur.FirstGame(); hasGame {
		feed, err = r.provider.FetchFeed(ctx, game.GamePk)
		if err != nil {
			return err
		}
		if _, feedOK := r.store.LoadFeed(); !feedOK {
			r.logInfo("no usable feed snapshot, seeding from current fetch",
				slog.Int64(logging.FieldGamePk, game.GamePk))
			r.saveFeed(feed)
		}
	}

	out := detector.Detect(prev, cur, feed)
	for _, event := range out.Events {
		r.send(ctx, event)
	}

	if out.PersistSchedule {
		r.saveSchedule(cur)
	}
	if out.PersistFeed {
		r.saveFeed(feed)
	}

	r.logInfo("cycle detected",
		slog.String(logging.FieldDate, date),
		slog.String(logging.FieldState, string(out.Transition)),
		slog.Int(logging.FieldCount, len(out.Events)),
	)
	return nil
}

func (r *Runner) send(ctx context.Context, event notify.Event) {
	if r.notifier == nil {
		return
	}
	err := r.notifier.Send(ctx, event)
	if r.metrics != nil {
		r.metrics.RecordNotification(event.ResolvedTitle(), err)
	}
	if err != nil {
		r.logError("push notification failed", err,
			slog.String(logging.FieldTitle, event.ResolvedTitle()))
		return
	}
	r.logInfo("push notification sent",
		slog.String(logging.FieldTitle, event.ResolvedTitle()))
}

func (r *Runner) saveSchedule(snapshot games.ScheduleSnapshot) {
	if err := r.store.SaveSchedule(snapshot); err != nil {
		r.logError("schedule snapshot write failed", err)
	}
}

func (r *Runner) saveFeed(snapshot plays.FeedSnapshot) {
	if err := r.store.SaveFeed(snapshot); err != nil {
		r.logError("feed snapshot write failed", err)
	}
}

func (r *Runner) logInfo(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Info(msg, args...)
	}
}

func (r *Runner) logError(msg string, err error, attrs ...any) {
	if r.logger != nil {
		r.logger.Error(msg, append(attrs, "error", err)...)
	}
}
