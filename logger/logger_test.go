package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
		verbosity  int
	}{
		{name: "JSON output mode", jsonOutput: true, verbosity: 0},
		{name: "Console output mode", jsonOutput: false, verbosity: 1},
		{name: "Console debug mode", jsonOutput: false, verbosity: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Logger = nil
			JSONOutput = false

			require.NoError(t, Initialize(tt.jsonOutput, tt.verbosity))
			require.NotNil(t, Logger)
			assert.Equal(t, tt.jsonOutput, JSONOutput)

			Cleanup()
			Logger = zap.NewNop().Sugar()
		})
	}
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{-1, zapcore.WarnLevel},
		{0, zapcore.WarnLevel},
		{1, zapcore.InfoLevel},
		{2, zapcore.DebugLevel},
		{5, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "User", LevelName(0))
	assert.Equal(t, "Info (-v)", LevelName(1))
	assert.Equal(t, "Debug (-vv)", LevelName(3))
}

func TestHelpersUseGlobalLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	original := Logger
	Logger = zap.New(core).Sugar()
	t.Cleanup(func() { Logger = original })

	Infow("generated", FieldFile, "ast_names_gen.inc.rs")
	Debugw("stamp resolved", FieldStamp, "")
	Warnw("duplicate declaration", "name", "Item")
	Errorw("generation failed", FieldError, "boom")

	require.Equal(t, 4, logs.Len())
	entries := logs.All()
	assert.Equal(t, "generated", entries[0].Message)
	assert.Equal(t, "ast_names_gen.inc.rs", entries[0].ContextMap()[FieldFile])
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestComponentLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	original := Logger
	Logger = zap.New(core).Sugar()
	t.Cleanup(func() { Logger = original })

	log := ChildLogger(ComponentLogger("driver"), FieldGenerator, "ast_deref")
	log.Infow("wrote file")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "driver", entry.LoggerName)
	assert.Equal(t, "ast_deref", entry.ContextMap()[FieldGenerator])
}
