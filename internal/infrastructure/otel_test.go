package infrastructure

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ycsbcli/internal/config"
)

func TestInitializeOTel_NoTracing(t *testing.T) {
	cfg := config.Default().Telemetry

	providers, err := InitializeOTel(cfg, &bytes.Buffer{}, nil)
	require.NoError(t, err)
	defer providers.Shutdown(context.Background())

	assert.Nil(t, providers.TracerProvider)
	assert.NotNil(t, providers.Tracer)
	assert.NotNil(t, providers.MeterProvider)
	require.NotNil(t, providers.Metrics)

	_, span := providers.Tracer.Start(context.Background(), "noop")
	assert.False(t, span.IsRecording())
	span.End()
}

func TestInitializeOTel_StdoutTracing(t *testing.T) {
	cfg := config.Default().Telemetry
	cfg.TraceExporter = "stdout"

	var out bytes.Buffer
	providers, err := InitializeOTel(cfg, &out, nil)
	require.NoError(t, err)

	ctx, span := providers.Tracer.Start(context.Background(), "convert")
	SetSpanAttributes(ctx, map[string]interface{}{
		"workbook": "bench.xlsx",
		"blocks":   120,
		"ratio":    0.5,
		"ok":       true,
	})
	RecordError(ctx, errors.New("sheet missing"))
	span.End()

	require.NoError(t, providers.Shutdown(context.Background()))
	assert.Contains(t, out.String(), `"Name": "convert"`)
	assert.Contains(t, out.String(), "bench.xlsx")
	assert.Contains(t, out.String(), "sheet missing")
}

func TestInitializeOTel_UnsupportedExporter(t *testing.T) {
	cfg := config.Default().Telemetry
	cfg.TraceExporter = "jaeger"

	_, err := InitializeOTel(cfg, &bytes.Buffer{}, nil)
	assert.Error(t, err)
}

func TestWriteMetricsFile(t *testing.T) {
	providers, err := InitializeOTel(config.Default().Telemetry, &bytes.Buffer{}, nil)
	require.NoError(t, err)
	defer providers.Shutdown(context.Background())

	ctx := context.Background()
	RecordConversion(ctx, providers.Metrics, ConversionStats{
		MetadataColumns: 16,
		MetricColumns:   3,
		Blocks:          120,
		Degraded:        4,
	}, 250*time.Millisecond, nil)
	RecordConversion(ctx, providers.Metrics, ConversionStats{}, time.Second, errors.New("boom"))

	path := filepath.Join(t.TempDir(), "converter.prom")
	require.NoError(t, providers.WriteMetricsFile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)

	assert.Contains(t, text, "conversions_total")
	assert.Contains(t, text, `status="success"`)
	assert.Contains(t, text, `status="failure"`)
	assert.Contains(t, text, "columns_retained_total")
	assert.Contains(t, text, `kind="metadata"`)
	assert.Contains(t, text, "blocks_evaluated_total")
	assert.Contains(t, text, "degraded_blocks_total")
	assert.Contains(t, text, "conversion_duration_seconds")
}

func TestWriteMetricsFile_NoPath(t *testing.T) {
	providers, err := InitializeOTel(config.Default().Telemetry, &bytes.Buffer{}, nil)
	require.NoError(t, err)
	defer providers.Shutdown(context.Background())

	assert.NoError(t, providers.WriteMetricsFile(""))
}

func TestRecordConversion_NilMetrics(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordConversion(context.Background(), nil, ConversionStats{}, time.Second, nil)
	})
}
