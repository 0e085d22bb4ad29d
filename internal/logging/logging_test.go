package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/nfrund/activityboard/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel(""))
}

func TestNewSetsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logger := logging.New("json", "warn")
	assert.Same(t, logger, slog.Default())
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestNewWithWriter(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "json", "info")
	logger.Info("Signup rejected", "activity", "Chess Club")

	assert.Contains(t, buf.String(), `"msg":"Signup rejected"`)
	assert.Contains(t, buf.String(), `"activity":"Chess Club"`)

	buf.Reset()
	logging.NewWithWriter(&buf, "text", "info").Info("hello")
	assert.Contains(t, buf.String(), "source=", "text logs carry the source location")
}
