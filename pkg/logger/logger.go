// Package logger builds the service logger backed by zap
package logger

import (
	"fmt"
	"strings"

	"github.com/Gobusters/ectologger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns an ectologger that writes structured JSON through zap.
// Messages below minLevel are dropped.
func New(serviceName, minLevel string) (ectologger.Logger, func(), error) {
	level := parseLevel(minLevel)

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapLogger, err := zapCfg.Build(zap.Fields(zap.String("service", serviceName)))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build zap logger: %w", err)
	}

	log := ectologger.NewEctoLogger(func(msg ectologger.EctoLogMessage) {
		fields := make([]zap.Field, 0, len(msg.Fields)+1)
		for key, value := range msg.Fields {
			fields = append(fields, zap.Any(key, value))
		}
		if msg.Err != nil {
			fields = append(fields, zap.Error(msg.Err))
		}

		switch parseLevel(fmt.Sprint(msg.Level)) {
		case zapcore.DebugLevel:
			zapLogger.Debug(msg.Message, fields...)
		case zapcore.WarnLevel:
			zapLogger.Warn(msg.Message, fields...)
		case zapcore.ErrorLevel:
			zapLogger.Error(msg.Message, fields...)
		case zapcore.FatalLevel:
			zapLogger.Fatal(msg.Message, fields...)
		default:
			zapLogger.Info(msg.Message, fields...)
		}
	})

	sync := func() { _ = zapLogger.Sync() }
	return log, sync, nil
}

// Noop returns a logger that discards everything. Used in tests.
func Noop() ectologger.Logger {
	return ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
