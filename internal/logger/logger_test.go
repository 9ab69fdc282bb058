package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := log
	SetForTesting(zap.New(core))
	t.Cleanup(func() { SetForTesting(prev) })
	return logs
}

func TestWithFields(t *testing.T) {
	logs := observe(t)

	ctx := WithFields(context.Background(), zap.String("request_id", "r1"))
	ctx = WithFields(ctx, zap.String("caller", "0xabc"))
	InfoCtx(ctx, "buy", zap.Uint64("height", 7))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "r1", fields["request_id"])
	assert.Equal(t, "0xabc", fields["caller"])
	assert.Equal(t, uint64(7), fields["height"])
}

func TestWithFields_DoesNotLeakToParent(t *testing.T) {
	logs := observe(t)

	parent := WithFields(context.Background(), zap.String("request_id", "r1"))
	_ = WithFields(parent, zap.String("caller", "0xabc"))
	WarnCtx(parent, "slow")

	require.Equal(t, 1, logs.Len())
	_, ok := logs.All()[0].ContextMap()["caller"]
	assert.False(t, ok)
}

func TestErrorCtx(t *testing.T) {
	logs := observe(t)

	ErrorCtx(context.Background(), errors.New("snapshot write failed"))
	ErrorCtx(context.Background(), nil)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "snapshot write failed", logs.All()[0].Message)
	assert.Equal(t, "error occurred", logs.All()[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
}

func TestInitialize(t *testing.T) {
	prev := log
	t.Cleanup(func() { SetForTesting(prev) })

	require.NoError(t, Initialize(Config{Service: "osnftd", Debug: true}))
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Initialize(Config{Service: "osnftd"}))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}
