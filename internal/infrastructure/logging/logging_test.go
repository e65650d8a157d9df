package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/mcquiz/internal/infrastructure/config"
	"github.com/remaimber-it/mcquiz/internal/infrastructure/logging"
)

func TestNew_ConsoleAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.log")
	var console bytes.Buffer

	logger, closeLog := logging.New(config.Log{Level: "info", File: path, MaxSizeMB: 1, MaxBackups: 1}, &console)
	logger.Info("questions loaded", "questions", 3)
	logger.Debug("hidden")
	require.NoError(t, closeLog())

	assert.Contains(t, console.String(), `"msg":"questions loaded"`)
	assert.NotContains(t, console.String(), "hidden")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"questions":3`)
}

func TestNew_NoOutputs(t *testing.T) {
	logger, closeLog := logging.New(config.Log{}, nil)
	logger.Error("dropped")
	assert.NoError(t, closeLog())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("verbose"))

	logger, _ := logging.New(config.Log{Level: "debug"}, &bytes.Buffer{})
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}
