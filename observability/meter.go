package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/awpr/collate/logger"
	"github.com/awpr/collate/version"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name the embedding process reports as.
	ServiceName string
	// ServiceVersion is the version of the embedding process.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development. The
// service version comes from build info.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: version.GetShortVersion(),
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds OpenTelemetry metric instruments for plan executions.
type Metrics struct {
	runTotal         metric.Int64Counter
	runDuration      metric.Float64Histogram
	elementsVisited  metric.Int64Counter
	feedTotal        metric.Int64Counter
	unfulfilledTotal metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	runTotal, err := meter.Int64Counter("collate.run.total",
		metric.WithDescription("Total plan runs by plan and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating collate.run.total counter: %w", err)
	}

	runDuration, err := meter.Float64Histogram("collate.run.duration",
		metric.WithDescription("Duration of plan runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating collate.run.duration histogram: %w", err)
	}

	elementsVisited, err := meter.Int64Counter("collate.elements.visited",
		metric.WithDescription("Stream elements visited by drivers"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating collate.elements.visited counter: %w", err)
	}

	feedTotal, err := meter.Int64Counter("collate.feed.total",
		metric.WithDescription("Feed calls by plan"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating collate.feed.total counter: %w", err)
	}

	unfulfilledTotal, err := meter.Int64Counter("collate.unfulfilled.total",
		metric.WithDescription("Runs whose results had unfulfilled requirements"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating collate.unfulfilled.total counter: %w", err)
	}

	return &Metrics{
		runTotal:         runTotal,
		runDuration:      runDuration,
		elementsVisited:  elementsVisited,
		feedTotal:        feedTotal,
		unfulfilledTotal: unfulfilledTotal,
	}, nil
}

// RecordRun records one completed plan run.
func (m *Metrics) RecordRun(ctx context.Context, plan, status string, duration time.Duration) {
	m.runTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("plan", plan),
		attribute.String("status", status),
	))
	m.runDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("plan", plan),
	))
}

// RecordFeed records one feed pass and the elements it visited.
func (m *Metrics) RecordFeed(ctx context.Context, plan string, visited int) {
	attrs := metric.WithAttributes(attribute.String("plan", plan))
	m.feedTotal.Add(ctx, 1, attrs)
	m.elementsVisited.Add(ctx, int64(visited), attrs)
}

// RecordUnfulfilled records a run that failed with an unfulfilled requirement.
func (m *Metrics) RecordUnfulfilled(ctx context.Context, plan string) {
	m.unfulfilledTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("plan", plan),
	))
}
