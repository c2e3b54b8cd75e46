package logger

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zap.DebugLevel},
		{"info", zap.InfoLevel},
		{"warn", zap.WarnLevel},
		{"error", zap.ErrorLevel},
		{"", zap.WarnLevel},
		{"bogus", zap.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestInitFormats(t *testing.T) {
	old := Log
	t.Cleanup(func() { Log = old })

	for _, format := range []string{"json", "text"} {
		require.NoError(t, Init("info", format))
		assert.True(t, Log.Core().Enabled(zap.InfoLevel))
		assert.False(t, Log.Core().Enabled(zap.DebugLevel))
	}
}

func TestWithTraceID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	WithTraceID(zap.New(core), "abc-123").Info("hello")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "abc-123", logs.All()[0].ContextMap()["trace_id"])
}

// captureStderr redirects os.Stderr while fn runs and returns what was written.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	old := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = old }()

	fn()
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestDefaultLoggerWritesWarningsToStderr(t *testing.T) {
	l := newDefault()
	out := captureStderr(t, func() {
		l.Info("quiet")
		l.Error("request failed", zap.String("q", "go"))
	})

	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "request failed")
	assert.Contains(t, out, "ERROR")
}
