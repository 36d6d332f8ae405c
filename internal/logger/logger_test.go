package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	require.NoError(t, Init("production", ""))
	require.True(t, Logger.Core().Enabled(zapcore.InfoLevel))
	require.False(t, Logger.Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Init("development", "warn"))
	require.False(t, Logger.Core().Enabled(zapcore.InfoLevel))
	require.True(t, Logger.Core().Enabled(zapcore.WarnLevel))

	require.Error(t, Init("development", "loud"))
}

func TestHelpersWriteToGlobal(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	core, logs := observer.New(zapcore.DebugLevel)
	Logger = zap.New(core)

	Debug("d")
	Info("i", zap.String("k", "v"))
	Warn("w")
	Error("e")
	WithRequestID("req-1").Info("scoped")

	entries := logs.All()
	require.Len(t, entries, 5)
	require.Equal(t, "i", entries[1].Message)
	require.Equal(t, "v", entries[1].ContextMap()["k"])
	require.Equal(t, "req-1", entries[4].ContextMap()["request_id"])
}
