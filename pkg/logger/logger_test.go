package logger

import (
	"errors"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewBuildsLogger(t *testing.T) {
	log, sync, err := New("fern-test", "debug")
	require.NoError(t, err)
	require.NotNil(t, log)
	defer sync()

	log.Info("startup")
	log.WithError(errors.New("boom")).Error("failed")
}

func TestSinkReadsErrFromMessage(t *testing.T) {
	boom := errors.New("boom")

	var got error
	log := ectologger.NewEctoLogger(func(msg ectologger.EctoLogMessage) {
		got = msg.Err
	})
	log.WithError(boom).Error("failed")

	assert.ErrorIs(t, got, boom)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"DEBUG":   zapcore.DebugLevel,
		" warn ":  zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"fatal":   zapcore.FatalLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for input, want := range cases {
		assert.Equal(t, want, parseLevel(input), "level %q", input)
	}
}

func TestNoopDiscards(t *testing.T) {
	log := Noop()
	require.NotNil(t, log)
	log.Info("ignored")
}
