package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSystemLog_MapsKnownAttrs(t *testing.T) {
	record := slog.NewRecord(time.Now(), slog.LevelError, "idea create failed", 0)
	record.AddAttrs(
		slog.String("request_id", "req-1"),
		slog.String("user_id", "u-1"),
		slog.String("path", "/api/ideas"),
		slog.String("error", "boom"),
		slog.Float64("latency_ms", 12.6),
		slog.String("idea_id", "i-1"),
	)

	entry := toSystemLog(record, []slog.Attr{slog.String("method", "POST")})

	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "idea create failed", entry.Message)
	assert.Equal(t, "req-1", entry.RequestID)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, "u-1", *entry.UserID)
	assert.Equal(t, "POST", entry.Method)
	assert.Equal(t, "/api/ideas", entry.Path)
	assert.Equal(t, "boom", entry.Error)
	assert.Equal(t, 13, entry.LatencyMs)

	var extra map[string]interface{}
	require.NoError(t, json.Unmarshal(entry.Extra, &extra))
	assert.Equal(t, "i-1", extra["idea_id"])
}

func TestMultiHandler_RespectsEachLevel(t *testing.T) {
	var infoBuf, errBuf bytes.Buffer
	info := slog.NewJSONHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo})
	errOnly := slog.NewJSONHandler(&errBuf, &slog.HandlerOptions{Level: slog.LevelError})

	logger := slog.New(NewMultiHandler(info, errOnly)).With("component", "test")
	logger.Info("hello")
	logger.Error("bad")

	assert.Contains(t, infoBuf.String(), "hello")
	assert.Contains(t, infoBuf.String(), "bad")
	assert.NotContains(t, errBuf.String(), "hello")
	assert.Contains(t, errBuf.String(), "bad")
	assert.Contains(t, errBuf.String(), `"component":"test"`)
}

func TestPGHandler_EnabledOnlyForErrors(t *testing.T) {
	h := &PGHandler{}
	assert.False(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}
