package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONLogger(buf *bytes.Buffer, minSource slog.Level) *slog.Logger {
	base := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewSourceHandler(base, minSource))
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	buf.Reset()
	return entry
}

func TestSourceHandler_SourceByLevel(t *testing.T) {
	tests := []struct {
		name      string
		level     slog.Level
		minSource slog.Level
		want      bool
	}{
		{"info below threshold", slog.LevelInfo, slog.LevelWarn, false},
		{"warn at threshold", slog.LevelWarn, slog.LevelWarn, true},
		{"error above threshold", slog.LevelError, slog.LevelWarn, true},
		{"debug threshold shows all", slog.LevelInfo, slog.LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newJSONLogger(&buf, tt.minSource)

			l.Log(context.Background(), tt.level, "ticket updated")

			entry := decodeLine(t, &buf)
			_, has := entry[slog.SourceKey]
			assert.Equal(t, tt.want, has)
		})
	}
}

func TestSourceHandler_PointsAtCaller(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONLogger(&buf, slog.LevelWarn)

	l.Warn("share link expired")

	entry := decodeLine(t, &buf)
	src, ok := entry[slog.SourceKey].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, src["file"], "sourcehandler_test.go")
}

func TestSourceHandler_StampsTenantFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONLogger(&buf, slog.LevelError)

	l.InfoContext(ContextWithTenant(context.Background(), 42), "comment created")
	entry := decodeLine(t, &buf)
	assert.Equal(t, float64(42), entry[TenantKey])

	l.InfoContext(context.Background(), "comment created")
	entry = decodeLine(t, &buf)
	assert.NotContains(t, entry, TenantKey)
}

func TestSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONLogger(&buf, slog.LevelError).With("component", "timeline").WithGroup("event")

	l.Info("appended", "kind", "status_changed")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "timeline", entry["component"])
	assert.Equal(t, map[string]any{"kind": "status_changed"}, entry["event"])
}

func TestTenantFromContext(t *testing.T) {
	_, ok := TenantFromContext(context.Background())
	assert.False(t, ok)

	_, ok = TenantFromContext(ContextWithTenant(context.Background(), 0))
	assert.False(t, ok)

	id, ok := TenantFromContext(ContextWithTenant(context.Background(), 7))
	assert.True(t, ok)
	assert.Equal(t, uint(7), id)
}

func TestSlogLogger_WithTenant(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithSlog(newJSONLogger(&buf, slog.LevelError)).WithTenant(9).Named("catalog")

	l.Infow("seeded default status catalog", "count", 5)

	entry := decodeLine(t, &buf)
	assert.Equal(t, float64(9), entry[TenantKey])
	assert.Equal(t, "catalog", entry["logger"])
	assert.Equal(t, float64(5), entry["count"])
}
