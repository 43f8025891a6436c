package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type cycleStats struct {
	cycles       int
	errors       int
	lastDuration time.Duration
}

type notifyStats struct {
	sent   int
	failed int
}

// Recorder captures lightweight, in-memory metrics about one run.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu        sync.Mutex
	providers map[string]*providerStats
	cycle     cycleStats
	notify    notifyStats
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers: make(map[string]*providerStats),
		otel:      otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordCycle tracks one completed poll cycle.
func (r *Recorder) RecordCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.cycle.cycles++
	r.cycle.lastDuration = duration
	if err != nil {
		r.cycle.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCycle(duration, err)
	}
}

// RecordNotification tracks a push delivery attempt.
func (r *Recorder) RecordNotification(title string, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	if err != nil {
		r.notify.failed++
	} else {
		r.notify.sent++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordNotification(title, err)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.ProviderSnapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.ProviderSnapshot(provider).Errors
}

// NotificationsSent returns the number of successful push deliveries.
func (r *Recorder) NotificationsSent() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.notify.sent
}

// NotificationsFailed returns the number of failed push deliveries.
func (r *Recorder) NotificationsFailed() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.notify.failed
}

// CycleErrors returns the number of failed cycles recorded.
func (r *Recorder) CycleErrors() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cycle.errors
}

// ProviderSnapshot is a copy of the current stats for one provider.
type ProviderSnapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) ProviderSnapshot(provider string) ProviderSnapshot {
	if r == nil {
		return ProviderSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := r.ensureStats(provider)
	return ProviderSnapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.providers[provider]
	if !ok {
		stats = &providerStats{}
		r.providers[provider] = stats
	}
	return stats
}
