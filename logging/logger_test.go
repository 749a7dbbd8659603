package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertions)
var (
	_ Logger = NoOpLogger{}
	_ Logger = (*SlogAdapter)(nil)
	_ Logger = (*IndexLogger)(nil)
)

func newBufferLogger(level LogLevel) (*IndexLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cfg := DefaultLoggerConfig()
	cfg.Level = level
	cfg.Output = buf
	cfg.AddSource = false
	return NewLogger(cfg), buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestIndexLogger_ContextAttributes(t *testing.T) {
	l, buf := newBufferLogger(LogLevelDebug)
	l.WithComponent("index").WithIndex("idx-1").WithContext("shards", 4).Info("Index created", "rows", 0)

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "Index created", lines[0]["msg"])
	assert.Equal(t, "index", lines[0]["component"])
	assert.Equal(t, "idx-1", lines[0]["index_id"])
	assert.EqualValues(t, 4, lines[0]["shards"])
	assert.EqualValues(t, 0, lines[0]["rows"])
}

func TestIndexLogger_WithIsCopyOnWrite(t *testing.T) {
	base, buf := newBufferLogger(LogLevelInfo)
	_ = base.WithContext("k", "v")
	base.Info("plain")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.NotContains(t, lines[0], "k")
}

func TestIndexLogger_LevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(LogLevelWarn)
	l.Debug("d")
	l.Info("i")
	l.LogClear(3, time.Millisecond)
	l.Warn("w")
	l.LogRejectedPut("key1", "blank")
	l.Error("e")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 3)
	assert.Equal(t, "w", lines[0]["msg"])
	assert.Equal(t, "Put rejected", lines[1]["msg"])
	assert.Equal(t, "key1", lines[1]["param"])
	assert.Equal(t, "e", lines[2]["msg"])
}

func TestIndexLogger_LogClear(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)
	l.LogClear(8, 2*time.Millisecond)

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "Index cleared", lines[0]["msg"])
	assert.EqualValues(t, 8, lines[0]["rows_dropped"])
}

func TestIndexLogger_TextFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger(&LoggerConfig{Level: LogLevelInfo, Format: "text", Output: buf, Component: "cli"})
	l.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "component=cli")
}

func TestSlogAdapter(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewSlogAdapter(slog.New(slog.NewTextHandler(buf, nil)))
	l.Info("adapted", "k", "v")
	assert.Contains(t, buf.String(), "k=v")
}

func TestParseLevel(t *testing.T) {
	lvl, ok := ParseLevel("debug")
	assert.True(t, ok)
	assert.Equal(t, LogLevelDebug, lvl)

	lvl, ok = ParseLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, LogLevelInfo, lvl)
	assert.Equal(t, "WARN", LogLevelWarn.String())
}

func TestNewDefaultSlogLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, nil)))

	NewDefaultSlogLogger().Info("Index created", "shards", 32)
	assert.Contains(t, buf.String(), `msg="Index created" shards=32`)
}

func TestIndexLogger_StartTimerAndLogPerformance(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger(&LoggerConfig{Level: LogLevelInfo, Format: "text", Output: buf, Component: "wildq"})

	done := l.StartTimer("load")
	done()
	l.LogPerformance("stats", time.Millisecond, map[string]any{"rows": 45})

	out := buf.String()
	assert.Contains(t, out, `msg="Operation completed" component=wildq operation=load`)
	assert.Contains(t, out, `msg="Performance metrics" component=wildq operation=stats duration=1ms metric_rows=45`)
}
