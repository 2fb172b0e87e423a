package parser

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLogger(t *testing.T) {
	t.Run("methods do nothing", func(t *testing.T) {
		l := NopLogger{}
		// Should not panic
		l.Debug("test message", "key", "value")
		l.Info("test message", "key", "value")
		l.Warn("test message", "key", "value")
		l.Error("test message", "key", "value")
	})

	t.Run("With returns same NopLogger", func(t *testing.T) {
		l := NopLogger{}
		_, ok := l.With("key", "value").(NopLogger)
		assert.True(t, ok, "With should return NopLogger")
	})

	t.Run("loggerOrNop falls back", func(t *testing.T) {
		_, ok := loggerOrNop(nil).(NopLogger)
		assert.True(t, ok)
	})
}

func TestSlogAdapter(t *testing.T) {
	t.Run("NewSlogAdapter with nil uses default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		assert.NotNil(t, adapter.Slog())
	})

	t.Run("levels are forwarded", func(t *testing.T) {
		var buf bytes.Buffer
		adapter := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

		adapter.Debug("debug message", "foo", "bar")
		adapter.Info("info message")
		adapter.Warn("warn message")
		adapter.Error("error message")

		output := buf.String()
		for _, want := range []string{"level=DEBUG", "debug message", "foo=bar", "level=INFO", "level=WARN", "level=ERROR"} {
			assert.Contains(t, output, want)
		}
	})

	t.Run("With adds attributes", func(t *testing.T) {
		var buf bytes.Buffer
		adapter := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

		child := adapter.With("doc", "old.yaml")
		child.Info("decoded")

		assert.Contains(t, buf.String(), "doc=old.yaml")
		_, ok := child.(*SlogAdapter)
		assert.True(t, ok)
	})
}

func TestNewTextLogger(t *testing.T) {
	t.Run("quiet drops debug", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewTextLogger(&buf, false)
		l.Debug("hidden")
		l.Info("hidden too")
		l.Warn("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("verbose keeps debug", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewTextLogger(&buf, true)
		l.Debug("diagnostic")
		assert.True(t, strings.Contains(buf.String(), "diagnostic"))
	})
}
