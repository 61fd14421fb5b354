package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"ycsbcli/internal/config"
	"ycsbcli/internal/infrastructure"
	"ycsbcli/internal/services"
	"ycsbcli/pkg/contracts"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const shutdownTimeout = 5 * time.Second

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run converts the single workbook named in args and returns the exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	start := time.Now()

	flags := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s <workbook.xlsx>\n\n", config.AppName)
		fmt.Fprintf(stderr, "%s\n", contracts.GetFullVersionString())
		fmt.Fprintf(stderr, "Adds a %q summary sheet built from the %q sheet of the workbook.\n",
			config.DefaultTargetSheet, config.DefaultSourceSheet)
		fmt.Fprintf(stderr, "Settings come from %s_* environment variables or converter.yaml.\n", config.EnvPrefix)
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return exitUsage
	}
	workbook := flags.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx = infrastructure.EnsureRunID(ctx)
	logger.InfoContext(ctx, "Starting YCSB throughput conversion",
		slog.Any("build", contracts.GetVersionInfo()),
		slog.String("workbook", workbook))

	telemetry, err := infrastructure.InitializeOTel(cfg.Telemetry, stderr, logger)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to initialize telemetry", slog.String("error", err.Error()))
		return exitError
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Telemetry shutdown failed", slog.String("error", err.Error()))
		}
	}()

	result, err := services.NewConversionService(cfg, telemetry, logger).Convert(ctx, workbook)

	stats := telemetry.System.Collect(ctx, start)
	logger.DebugContext(ctx, "Runtime statistics", slog.Any("runtime", stats.FormatStats()))

	if mErr := telemetry.WriteMetricsFile(cfg.Telemetry.MetricsFile); mErr != nil {
		logger.WarnContext(ctx, "Failed to write metrics file", slog.String("error", mErr.Error()))
	}

	if err != nil {
		fmt.Fprintf(stderr, "conversion failed: %v\n", err)
		return exitError
	}

	fmt.Fprintf(stdout, "Wrote sheet %q to %s: %d columns, %d blocks",
		result.TargetSheet, result.WorkbookPath, result.OutputColumns, result.Blocks)
	if result.Degraded > 0 {
		fmt.Fprintf(stdout, ", %d degraded", result.Degraded)
	}
	fmt.Fprintln(stdout)
	if result.CSVPath != "" {
		fmt.Fprintf(stdout, "Wrote CSV to %s\n", result.CSVPath)
	}
	return exitOK
}
