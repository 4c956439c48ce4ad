package logger_test

import (
	"testing"

	"github.com/muhammadheryan/student-api/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestReplace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := logger.Replace(zap.New(core))
	defer restore()

	logger.Warn("[Discard] err fileRepo.Remove", zap.String("name", "a.png"))
	logger.Error("boom")

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "a.png", entry.ContextMap()["name"])
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[1].Level)
}

func TestInit(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		wantDebug   bool
	}{
		{name: "development defaults to debug", environment: "development", wantDebug: true},
		{name: "production defaults to info", environment: "production", wantDebug: false},
		{name: "explicit level wins", environment: "development", level: "warn", wantDebug: false},
		{name: "bad level keeps default", environment: "development", level: "loud", wantDebug: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			restore := logger.Replace(nil)
			defer restore()

			require.NoError(t, logger.Init(tt.environment, tt.level))
			assert.Equal(t, tt.wantDebug, logger.Get().Core().Enabled(zapcore.DebugLevel))
		})
	}
}
