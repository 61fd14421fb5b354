package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ycsbcli/internal/config"
)

func TestInitializeLogger(t *testing.T) {
	ResetLoggerForTesting()
	defer ResetLoggerForTesting()

	logFile := filepath.Join(t.TempDir(), "logs", "test.log")
	cfg := config.LoggingConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: logFile,
	}

	logger, err := InitializeLogger(cfg)
	require.NoError(t, err)
	require.NotNil(t, logger)

	_, err = os.Stat(logFile)
	require.NoError(t, err, "log file should be created")

	logger.Info("test message", "key", "value")
	require.NoError(t, CloseLogFile())

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(content, &logEntry))
	assert.Equal(t, "test message", logEntry["msg"])
	assert.Equal(t, "value", logEntry["key"])
	assert.Equal(t, "INFO", logEntry["level"])
}

func TestInitializeLogger_OnlyOnce(t *testing.T) {
	ResetLoggerForTesting()
	defer ResetLoggerForTesting()

	first, err := InitializeLogger(config.LoggingConfig{Level: "info", Format: "json", Output: "console"})
	require.NoError(t, err)
	second, err := InitializeLogger(config.LoggingConfig{Level: "debug", Format: "text", Output: "console"})
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Same(t, first, GetLogger())
}

func TestRunIDInjection(t *testing.T) {
	var buf bytes.Buffer
	logger, err := createLogger(config.LoggingConfig{Level: "info", Format: "json", Output: "console"}, &buf)
	require.NoError(t, err)

	ctx := WithRunID(context.Background(), "run-123")
	logger.InfoContext(ctx, "with run")
	logger.Info("without run")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var withRun, withoutRun map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &withRun))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &withoutRun))

	assert.Equal(t, "run-123", withRun["run_id"])
	assert.NotContains(t, withoutRun, "run_id")
}

func TestRunHandlerKeepsAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := createLogger(config.LoggingConfig{Level: "debug", Format: "json", Output: "console"}, &buf)
	require.NoError(t, err)

	WithComponent(logger, "summary").WithGroup("block").Debug("evaluated",
		"row", 5)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "summary", entry["component"])
	block, ok := entry["block"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(5), block["row"])
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := createLogger(config.LoggingConfig{Level: "info", Format: "text", Output: "console"}, &buf)
	require.NoError(t, err)

	logger.Info("plain", "sheet", "evaluation")
	assert.Contains(t, buf.String(), "msg=plain")
	assert.Contains(t, buf.String(), "sheet=evaluation")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", "DEBUG"},
		{"INFO", "INFO"},
		{"warn", "WARN"},
		{"warning", "WARN"},
		{"error", "ERROR"},
		{"bogus", "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.input).String())
		})
	}
}

func TestEnsureRunID(t *testing.T) {
	ctx := EnsureRunID(context.Background())
	id := GetRunID(ctx)
	assert.Len(t, id, 36)

	assert.Equal(t, id, GetRunID(EnsureRunID(ctx)), "existing run id must be kept")
	assert.Empty(t, GetRunID(context.Background()))
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	logger, err := createLogger(config.LoggingConfig{Level: "info", Format: "json", Output: "console"}, &buf)
	require.NoError(t, err)

	assert.Same(t, logger, WithError(logger, nil))

	WithError(logger, assert.AnError).Info("failed")
	assert.Contains(t, buf.String(), assert.AnError.Error())
}
