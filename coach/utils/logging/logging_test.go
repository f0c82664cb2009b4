package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogDuration(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	prev := TimerLogger
	TimerLogger = zap.New(core)
	t.Cleanup(func() { TimerLogger = prev })

	ctx := WithSessionID(context.Background(), "s-1")
	LogDuration(ctx, "relay_generate_reply")()

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "relay_generate_reply", fields["func"])
	assert.Equal(t, "s-1", fields["session_id"])
	assert.Contains(t, fields, "duration_ms")
}

func TestSessionIDEmpty(t *testing.T) {
	ctx := WithSessionID(context.Background(), "")
	assert.Equal(t, "", SessionID(ctx))
}

func TestInitLoggerCreatesDir(t *testing.T) {
	prev := []*zap.Logger{AppLogger, RequestLogger, TimerLogger, ErrorLogger}
	t.Cleanup(func() {
		AppLogger, RequestLogger, TimerLogger, ErrorLogger = prev[0], prev[1], prev[2], prev[3]
	})

	dir := t.TempDir() + "/logs"
	InitLogger(dir)
	AppLogger.Info("hello")
	Sync()
	assert.DirExists(t, dir)
	assert.FileExists(t, dir+"/app.log")
}
