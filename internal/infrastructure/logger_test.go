package infrastructure

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lineRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3} - (DEBUG|INFO|WARN|ERROR) - `)

func TestLineHandler(t *testing.T) {
	t.Run("line format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(NewLineHandler(&buf, slog.LevelInfo))

		logger.Info("Data loaded", slog.Int("rows", 5))

		line := buf.String()
		assert.Regexp(t, lineRe, line)
		assert.Contains(t, line, " - INFO - Data loaded rows=5")
	})

	t.Run("level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(NewLineHandler(&buf, slog.LevelWarn))

		logger.Info("hidden")
		logger.Error("visible")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), " - ERROR - visible")
	})

	t.Run("WithAttrs carries attributes onto every line", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(NewLineHandler(&buf, slog.LevelInfo)).With("component", "pipeline")

		logger.Info("started")

		assert.Contains(t, buf.String(), "component=pipeline")
	})

	t.Run("WithGroup prefixes keys", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(NewLineHandler(&buf, slog.LevelInfo)).WithGroup("job")

		logger.Info("started", slog.String("status", "ok"))

		assert.Contains(t, buf.String(), "job.status=ok")
	})
}

func TestRunIDInjection(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&runIDHandler{Handler: NewLineHandler(&buf, slog.LevelInfo)})

	ctx := WithRunID(context.Background(), "run-1234")
	logger.InfoContext(ctx, "Job started")
	logger.Info("no context id")

	lines := buf.String()
	assert.Contains(t, lines, "Job started run_id=run-1234")
	assert.NotContains(t, lines, "no context id run_id=")
}

func TestInitializeLogger(t *testing.T) {
	t.Run("both mode appends to log file", func(t *testing.T) {
		ResetLoggerForTesting()
		defer ResetLoggerForTesting()

		logPath := filepath.Join(t.TempDir(), "logs", "run.log")
		logger, err := InitializeLogger(LogConfig{Level: "info", Output: "both", FilePath: logPath})
		require.NoError(t, err)

		logger.Info("Job started")
		require.NoError(t, CloseLogFile())

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Regexp(t, lineRe, string(data))
		assert.Contains(t, string(data), "Job started")
	})

	t.Run("initialization happens once", func(t *testing.T) {
		ResetLoggerForTesting()
		defer ResetLoggerForTesting()

		logPath := filepath.Join(t.TempDir(), "run.log")
		first, err := InitializeLogger(LogConfig{Level: "info", Output: "file", FilePath: logPath})
		require.NoError(t, err)

		second, err := InitializeLogger(LogConfig{Level: "debug", Output: "stdout"})
		require.NoError(t, err)
		assert.Same(t, first, second)
	})
}

func TestGetRunID(t *testing.T) {
	assert.Equal(t, "", GetRunID(context.Background()))
	ctx := WithRunID(context.Background(), "abc")
	assert.Equal(t, "abc", GetRunID(ctx))
}
