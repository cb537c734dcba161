package deferred_test

import (
	"testing"

	"github.com/on-the-ground/curry_ive_go/deferred"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := deferred.NewConfig()
	require.NoError(t, err)
	assert.NotNil(t, cfg.Logger)
	assert.Equal(t, uint32(deferred.DefaultSignatureCacheSize), cfg.SignatureCacheSize)
}

func TestNewConfig_ReportsEveryProblem(t *testing.T) {
	_, err := deferred.NewConfig(
		deferred.WithLogger(nil),
		deferred.WithSignatureCacheSize(0),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, deferred.ErrInvalidConfig)
	assert.Len(t, multierr.Errors(err), 2)

	_, err = deferred.New(deferred.WithSignatureCacheSize(0))
	assert.ErrorIs(t, err, deferred.ErrInvalidConfig)
}

func TestEngine_LogsSteps(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	engine, err := deferred.New(deferred.WithLogger(zap.New(core)))
	require.NoError(t, err)

	v, err := engine.Partial(add3, 1)
	require.NoError(t, err)
	_, err = asCall(v, nil).Apply(2, 3)
	require.NoError(t, err)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "deferred step", entries[0].Message)
	assert.Equal(t, "invoking target", entries[1].Message)

	step := entries[0].ContextMap()
	assert.Equal(t, "Partial application", step["mode"])
	assert.Equal(t, int64(1), step["collected"])
	assert.Equal(t, int64(2), step["remaining"])
	assert.Equal(t, step["chain"], entries[1].ContextMap()["chain"])

	target, err := deferred.NewTarget(add3)
	require.NoError(t, err)
	assert.Equal(t, target.Identity().Key(), step["target_key"])
	assert.Equal(t, step["target_key"], entries[1].ContextMap()["target_key"])
}

func TestEngine_SignatureCacheIsReused(t *testing.T) {
	engine, err := deferred.New(deferred.WithSignatureCacheSize(1))
	require.NoError(t, err)

	for range 3 {
		v, err := engine.Curry(add3)
		require.NoError(t, err)
		got, err := deferred.Feed(v, 1, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, 6, got)
	}

	// a different signature rotates the single-entry cache
	v, err := engine.Curry(concat)
	require.NoError(t, err)
	got, err := deferred.Feed(v, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "ab", got)
}

func BenchmarkCurry3(b *testing.B) {
	for i := 0; i < b.N; i++ {
		v, _ := deferred.Curry(add3)
		_, _ = deferred.Feed(v, 1, 2, 3)
	}
}

func BenchmarkPartial5(b *testing.B) {
	for i := 0; i < b.N; i++ {
		v, _ := deferred.Partial(add5, 1, 2)
		_, _ = asCall(v, nil).Apply(3, 4, 5)
	}
}

func BenchmarkDirect5(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = add5(1, 2, 3, 4, 5)
	}
}
