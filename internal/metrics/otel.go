package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported. A run-once process has
// nothing to scrape, so both paths push: OTLP flushes on shutdown and the
// Prometheus registry is pushed to a Pushgateway when one is configured.
type TelemetryConfig struct {
	Enabled        bool
	ServiceName    string
	OtlpEndpoint   string
	OtlpInsecure   bool
	PushgatewayURL string
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and
// optional OTLP exporter. It returns a Recorder and a shutdown function
// that flushes exporters and performs the Pushgateway push.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "phillies-updater"
	}

	promReader, registry, err := promReaderFactory()
	if err != nil {
		return nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		// Shutdown forces a final collect into the Prometheus registry
		// before the gateway push picks it up.
		err := provider.Shutdown(c)
		if cfg.PushgatewayURL != "" {
			pusher := push.New(cfg.PushgatewayURL, cfg.ServiceName).Gatherer(registry)
			if pushErr := pusher.Push(); pushErr != nil && err == nil {
				err = pushErr
			}
		}
		return err
	}

	return rec, shutdown, nil
}

func prometheusComponents() (sdkmetric.Reader, *prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, reg, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx               context.Context
	meter             metric.Meter
	providerAttempts  metric.Int64Counter
	providerErrors    metric.Int64Counter
	providerLatencyMs metric.Float64Histogram
	cycles            metric.Int64Counter
	cycleErrors       metric.Int64Counter
	cycleLatencyMs    metric.Float64Histogram
	notifySent        metric.Int64Counter
	notifyErrors      metric.Int64Counter
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("phillies-updater")
	ctx := context.Background()

	providerAttempts, err := meter.Int64Counter("provider_attempts_total")
	if err != nil {
		return nil, err
	}
	providerErrors, err := meter.Int64Counter("provider_errors_total")
	if err != nil {
		return nil, err
	}
	providerLatency, err := meter.Float64Histogram("provider_duration_ms")
	if err != nil {
		return nil, err
	}
	cycles, err := meter.Int64Counter("notifier_cycles_total")
	if err != nil {
		return nil, err
	}
	cycleErrors, err := meter.Int64Counter("notifier_cycle_errors_total")
	if err != nil {
		return nil, err
	}
	cycleLatency, err := meter.Float64Histogram("notifier_cycle_duration_ms")
	if err != nil {
		return nil, err
	}
	notifySent, err := meter.Int64Counter("notifications_sent_total")
	if err != nil {
		return nil, err
	}
	notifyErrors, err := meter.Int64Counter("notification_errors_total")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:               ctx,
		meter:             meter,
		providerAttempts:  providerAttempts,
		providerErrors:    providerErrors,
		providerLatencyMs: providerLatency,
		cycles:            cycles,
		cycleErrors:       cycleErrors,
		cycleLatencyMs:    cycleLatency,
		notifySent:        notifySent,
		notifyErrors:      notifyErrors,
	}, nil
}

func (o *otelInstruments) recordProviderAttempt(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrProvider, provider)}
	o.recordCounter(o.providerAttempts, 1, attrs...)
	o.recordHistogram(o.providerLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.providerErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordCycle(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.cycles, 1)
	o.recordHistogram(o.cycleLatencyMs, float64(duration.Milliseconds()))
	if err != nil {
		o.recordCounter(o.cycleErrors, 1)
	}
}

func (o *otelInstruments) recordNotification(title string, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrTitle, title)}
	if err != nil {
		o.recordCounter(o.notifyErrors, 1, attrs...)
		return
	}
	o.recordCounter(o.notifySent, 1, attrs...)
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if hist == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
