package services

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"ycsbcli/internal/config"
	"ycsbcli/internal/dataprocessing"
	"ycsbcli/internal/errors"
	"ycsbcli/internal/exporter"
	"ycsbcli/internal/infrastructure"
	"ycsbcli/internal/validation"
	"ycsbcli/pkg/contracts/domain"
)

// ConversionResult describes one finished conversion
type ConversionResult struct {
	RunID           string
	WorkbookPath    string
	TargetSheet     string
	CSVPath         string
	SourceColumns   int
	MetadataColumns int
	MetricColumns   int
	OutputColumns   int
	Blocks          int
	Degraded        int
	Duration        time.Duration
}

// ConversionService turns the evaluation sheet of a workbook into a
// throughput summary sheet, saving the workbook in place.
type ConversionService struct {
	config      *config.Config
	validator   *validation.FileValidator
	builder     *dataprocessing.SummaryBuilder
	sheetWriter *exporter.SheetWriter
	tracer      trace.Tracer
	metrics     *infrastructure.ConversionMetrics
	logger      *slog.Logger
}

// NewConversionService creates a conversion service. telemetry may be nil,
// in which case no spans or metrics are recorded.
func NewConversionService(cfg *config.Config, telemetry *infrastructure.OTelProviders, logger *slog.Logger) *ConversionService {
	if cfg == nil {
		cfg = config.Default()
	}
	logger = infrastructure.WithComponent(logger, "conversion_service")

	svc := &ConversionService{
		config:      cfg,
		validator:   validation.NewFileValidator(logger),
		builder:     dataprocessing.NewSummaryBuilder(dataprocessing.LayoutFromConfig(cfg.Layout), logger),
		sheetWriter: exporter.NewSheetWriter(cfg.Layout.TargetSheet, cfg.Layout.TargetIndex, logger),
		tracer:      noop.NewTracerProvider().Tracer(infrastructure.MeterName),
		logger:      logger,
	}
	if telemetry != nil {
		svc.tracer = telemetry.Tracer
		svc.metrics = telemetry.Metrics
	}
	return svc
}

// Convert reads the source sheet of the workbook at path, writes the
// summary sheet and saves the workbook. Only structural problems fail:
// a missing or unreadable file, a missing source sheet or an empty header
// row.
func (s *ConversionService) Convert(ctx context.Context, path string) (*ConversionResult, error) {
	start := time.Now()
	ctx = infrastructure.EnsureRunID(ctx)

	ctx, span := s.tracer.Start(ctx, "convert",
		trace.WithAttributes(
			attribute.String("workbook.path", path),
			attribute.String("sheet.source", s.config.Layout.SourceSheet),
			attribute.String("sheet.target", s.config.Layout.TargetSheet),
		),
	)
	defer span.End()

	s.logger.InfoContext(ctx, "Conversion started",
		slog.String("workbook", path),
		slog.String("source_sheet", s.config.Layout.SourceSheet),
		slog.String("target_sheet", s.config.Layout.TargetSheet))

	result, err := s.convert(ctx, path)
	duration := time.Since(start)

	var stats infrastructure.ConversionStats
	if result != nil {
		stats = infrastructure.ConversionStats{
			MetadataColumns: result.MetadataColumns,
			MetricColumns:   result.MetricColumns,
			Blocks:          result.Blocks * (result.MetadataColumns + result.MetricColumns),
			Degraded:        result.Degraded,
		}
	}
	infrastructure.RecordConversion(ctx, s.metrics, stats, duration, err)

	if err != nil {
		infrastructure.RecordError(ctx, err)
		infrastructure.WithError(s.logger, err).ErrorContext(ctx, "Conversion failed",
			slog.String("workbook", path),
			slog.String("error_type", string(errors.TypeOf(err))),
			slog.Duration("duration", duration))
		return nil, err
	}

	result.RunID = infrastructure.GetRunID(ctx)
	result.Duration = duration

	infrastructure.SetSpanAttributes(ctx, map[string]interface{}{
		"summary.columns":  result.OutputColumns,
		"summary.blocks":   result.Blocks,
		"summary.degraded": result.Degraded,
	})

	s.logger.InfoContext(ctx, "Conversion completed",
		slog.String("workbook", path),
		slog.Int("source_columns", result.SourceColumns),
		slog.Int("metadata_columns", result.MetadataColumns),
		slog.Int("metric_columns", result.MetricColumns),
		slog.Int("output_columns", result.OutputColumns),
		slog.Int("blocks", result.Blocks),
		slog.Int("degraded_blocks", result.Degraded),
		slog.String("csv_path", result.CSVPath),
		slog.Duration("duration", duration))

	return result, nil
}

func (s *ConversionService) convert(ctx context.Context, path string) (*ConversionResult, error) {
	if err := s.validator.ValidateWorkbookFile(path); err != nil {
		return nil, err
	}

	csvPath := s.resolveCSVPath(path)
	if csvPath != "" {
		if err := s.validator.ValidateOutputDirectory(filepath.Dir(csvPath)); err != nil {
			return nil, err
		}
	}

	f, err := dataprocessing.OpenWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer s.closeWorkbook(ctx, f, path)

	grid, err := dataprocessing.LoadGrid(f, s.config.Layout.SourceSheet)
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "Evaluation sheet loaded",
		slog.Int("rows", grid.MaxRow()),
		slog.Int("columns", grid.MaxColumn()))

	summary, err := s.builder.Build(grid)
	if err != nil {
		return nil, err
	}

	if err := s.sheetWriter.Write(f, summary); err != nil {
		return nil, err
	}

	if csvPath != "" {
		if _, err := exporter.NewCSVWriter("").WriteSummary(csvPath, summary, s.config.Output.CSVBOM); err != nil {
			return nil, errors.NewStorageError("failed to export summary csv", err).WithContext("path", csvPath)
		}
	}

	if err := f.Save(); err != nil {
		return nil, errors.NewStorageError("failed to save workbook", err).WithContext("path", path)
	}

	return newConversionResult(path, s.config.Layout.TargetSheet, csvPath, summary), nil
}

// resolveCSVPath places a relative CSV path next to the workbook
func (s *ConversionService) resolveCSVPath(workbookPath string) string {
	csvPath := s.config.Output.CSVPath
	if csvPath == "" || filepath.IsAbs(csvPath) {
		return csvPath
	}
	return filepath.Join(filepath.Dir(workbookPath), csvPath)
}

func (s *ConversionService) closeWorkbook(ctx context.Context, f *excelize.File, path string) {
	if err := f.Close(); err != nil {
		s.logger.WarnContext(ctx, "Failed to close workbook",
			slog.String("workbook", path),
			slog.String("error", err.Error()))
	}
}

func newConversionResult(path, sheet, csvPath string, summary *domain.Summary) *ConversionResult {
	result := &ConversionResult{
		WorkbookPath:  path,
		TargetSheet:   sheet,
		CSVPath:       csvPath,
		SourceColumns: len(summary.Plans),
		OutputColumns: summary.OutputColumns(),
		Blocks:        summary.Blocks,
		Degraded:      summary.Degraded,
	}
	for _, plan := range summary.Plans {
		switch {
		case !plan.Retained:
		case plan.Metadata:
			result.MetadataColumns++
		default:
			result.MetricColumns++
		}
	}
	return result
}
