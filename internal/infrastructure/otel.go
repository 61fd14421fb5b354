package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.28.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"ycsbcli/internal/config"
	"ycsbcli/pkg/contracts"
)

const MeterName = "ycsbcli"

// OTelProviders holds the OpenTelemetry providers for one process
type OTelProviders struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
	Tracer         trace.Tracer
	Meter          metric.Meter
	Registry       *promclient.Registry
	Metrics        *ConversionMetrics
	System         *SystemMetrics
	Logger         *slog.Logger
}

// InitializeOTel sets up tracing and metrics. Spans are exported to
// traceOut when the stdout exporter is selected; metrics always go to a
// private Prometheus registry that WriteMetricsFile can dump.
func InitializeOTel(cfg config.TelemetryConfig, traceOut io.Writer, logger *slog.Logger) (*OTelProviders, error) {
	if logger == nil {
		logger = GetLogger()
	}
	ctx := context.Background()

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(contracts.Version),
	)

	providers := &OTelProviders{Logger: logger}

	switch cfg.TraceExporter {
	case "stdout":
		exporter, err := stdouttrace.New(
			stdouttrace.WithWriter(traceOut),
			stdouttrace.WithPrettyPrint(),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create trace exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(exporter),
			sdktrace.WithResource(res),
		)
		providers.TracerProvider = tp
		providers.Tracer = tp.Tracer(MeterName, trace.WithInstrumentationVersion(contracts.Version))
	case "none", "":
		providers.Tracer = noop.NewTracerProvider().Tracer(MeterName)
	default:
		return nil, fmt.Errorf("unsupported trace exporter: %s", cfg.TraceExporter)
	}

	registry := promclient.NewRegistry()
	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)
	providers.Registry = registry
	providers.MeterProvider = mp
	providers.Meter = mp.Meter(MeterName, metric.WithInstrumentationVersion(contracts.Version))

	providers.Metrics, err = CreateConversionMetrics(providers.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversion metrics: %w", err)
	}

	providers.System, err = NewSystemMetrics(providers.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create system metrics: %w", err)
	}

	logger.DebugContext(ctx, "OpenTelemetry initialized",
		slog.String("trace_exporter", cfg.TraceExporter),
		slog.String("service", cfg.ServiceName))

	return providers, nil
}

// ConversionMetrics are the instruments recorded per conversion run
type ConversionMetrics struct {
	ConversionsTotal   metric.Int64Counter
	ColumnsRetained    metric.Int64Counter
	BlocksEvaluated    metric.Int64Counter
	DegradedBlocks     metric.Int64Counter
	ConversionDuration metric.Float64Histogram
}

// CreateConversionMetrics creates the converter's instruments
func CreateConversionMetrics(meter metric.Meter) (*ConversionMetrics, error) {
	conversions, err := meter.Int64Counter(
		"conversions",
		metric.WithDescription("Workbook conversions by outcome"),
	)
	if err != nil {
		return nil, err
	}

	columns, err := meter.Int64Counter(
		"columns_retained",
		metric.WithDescription("Source columns kept in the summary sheet"),
	)
	if err != nil {
		return nil, err
	}

	blocks, err := meter.Int64Counter(
		"blocks_evaluated",
		metric.WithDescription("Column blocks evaluated into summary cells"),
	)
	if err != nil {
		return nil, err
	}

	degraded, err := meter.Int64Counter(
		"degraded_blocks",
		metric.WithDescription("Blocks with no numeric trial cell, passed through raw"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"conversion_duration",
		metric.WithDescription("Wall time of one workbook conversion"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &ConversionMetrics{
		ConversionsTotal:   conversions,
		ColumnsRetained:    columns,
		BlocksEvaluated:    blocks,
		DegradedBlocks:     degraded,
		ConversionDuration: duration,
	}, nil
}

// ConversionStats is what RecordConversion needs from a finished run
type ConversionStats struct {
	MetadataColumns int
	MetricColumns   int
	Blocks          int
	Degraded        int
}

// RecordConversion records the outcome of one conversion
func RecordConversion(ctx context.Context, m *ConversionMetrics, stats ConversionStats, duration time.Duration, err error) {
	if m == nil {
		return
	}

	status := "success"
	if err != nil {
		status = "failure"
	}
	m.ConversionsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
	m.ConversionDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attribute.String("status", status)))
	if err != nil {
		return
	}

	m.ColumnsRetained.Add(ctx, int64(stats.MetadataColumns), metric.WithAttributes(attribute.String("kind", "metadata")))
	m.ColumnsRetained.Add(ctx, int64(stats.MetricColumns), metric.WithAttributes(attribute.String("kind", "metric")))
	m.BlocksEvaluated.Add(ctx, int64(stats.Blocks))
	m.DegradedBlocks.Add(ctx, int64(stats.Degraded))
}

// WriteMetricsFile dumps the registry in Prometheus text format, suitable
// for the node_exporter textfile collector.
func (p *OTelProviders) WriteMetricsFile(path string) error {
	if path == "" || p.Registry == nil {
		return nil
	}
	if err := promclient.WriteToTextfile(path, p.Registry); err != nil {
		return fmt.Errorf("failed to write metrics file %s: %w", path, err)
	}
	return nil
}

// Shutdown flushes and stops the providers
func (p *OTelProviders) Shutdown(ctx context.Context) error {
	var errs []error

	if p.TracerProvider != nil {
		if err := p.TracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer provider shutdown: %w", err))
		}
	}

	if p.MeterProvider != nil {
		if err := p.MeterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter provider shutdown: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("opentelemetry shutdown errors: %v", errs)
	}
	return nil
}

// SetSpanAttributes sets attributes on the current span
func SetSpanAttributes(ctx context.Context, attributes map[string]interface{}) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	for k, v := range attributes {
		switch val := v.(type) {
		case string:
			span.SetAttributes(attribute.String(k, val))
		case int:
			span.SetAttributes(attribute.Int(k, val))
		case int64:
			span.SetAttributes(attribute.Int64(k, val))
		case float64:
			span.SetAttributes(attribute.Float64(k, val))
		case bool:
			span.SetAttributes(attribute.Bool(k, val))
		default:
			span.SetAttributes(attribute.String(k, fmt.Sprintf("%v", val)))
		}
	}
}

// RecordError records an error on the current span
func RecordError(ctx context.Context, err error) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

