//go:build unit

package log_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-unwrap/log"
)

func TestLevel_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "error", log.LevelError.String())
	require.Equal(t, "warn", log.LevelWarn.String())
	require.Equal(t, "info", log.LevelInfo.String())
	require.Equal(t, "debug", log.LevelDebug.String())
	require.Equal(t, "unknown", log.Level(99).String())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]log.Level{
		"debug":   log.LevelDebug,
		"INFO":    log.LevelInfo,
		"warn":    log.LevelWarn,
		"warning": log.LevelWarn,
		"Error":   log.LevelError,
	}

	for input, want := range cases {
		got, err := log.ParseLevel(input)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := log.ParseLevel("verbose")
	require.Error(t, err)
}

func TestFieldConstructors(t *testing.T) {
	t.Parallel()

	require.Equal(t, log.Field{Key: "k", Value: "v"}, log.String("k", "v"))
	require.Equal(t, log.Field{Key: "n", Value: 42}, log.Int("n", 42))
	require.Equal(t, log.Field{Key: "ok", Value: true}, log.Bool("ok", true))
	require.Equal(t, log.Field{Key: "any", Value: 1.5}, log.Any("any", 1.5))

	err := errors.New("boom")
	require.Equal(t, log.Field{Key: "error", Value: err}, log.Err(err))
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := log.NewNop()
	require.False(t, logger.Enabled(log.LevelError))
	require.NotPanics(t, func() {
		logger.Log(context.Background(), log.LevelError, "dropped")
	})
}
