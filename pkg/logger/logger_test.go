package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewWritesToRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.log")

	l := New(Options{Env: "production", Level: "info", File: path})
	l.With(zap.String("component", "test")).Info("hello", zap.Int("n", 1))
	l.Debug("filtered out at info level")
	l.Error("something failed", errors.New("boom"))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, `"msg":"hello"`)
	assert.Contains(t, content, `"component":"test"`)
	assert.Contains(t, content, `"error":"boom"`)
	assert.NotContains(t, content, "filtered out")
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	assert.NotPanics(t, func() {
		l.Info("ignored")
		l.With(zap.String("k", "v")).Warn("ignored")
		l.Error("ignored", nil)
	})
}

func TestFromZap(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := FromZap(zap.New(core))

	l.Info("stored", zap.Int64("id", 7))
	l.Debug("below level")
	l.Error("failed", errors.New("boom"))

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, int64(7), logs.FilterMessage("stored").All()[0].ContextMap()["id"])
	assert.Equal(t, "boom", logs.FilterMessage("failed").All()[0].ContextMap()["error"])
}
