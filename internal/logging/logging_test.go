package logging

import (
	"testing"

	"github.com/anka/patrimony-planner/internal/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"production", "development", ""} {
		l, err := New(env, "warn")
		require.NoError(t, err, env)
		assert.False(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
		assert.True(t, l.Desugar().Core().Enabled(zapcore.ErrorLevel))
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("development", "loud")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestSugaredLoggerDrivesEngine(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	var l calculation.Logger = zap.New(core).Sugar().With("run_id", "abc")

	engine := calculation.NewProjectionEngine()
	engine.SetLogger(l)
	engine.Logger.Infof("projected %d simulations", 2)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "projected 2 simulations", entry.Message)
	assert.Equal(t, "abc", entry.ContextMap()["run_id"])
}

func TestSync_Nil(t *testing.T) {
	assert.NotPanics(t, func() { Sync(nil) })
	assert.NotPanics(t, func() { Sync(Nop()) })
}
