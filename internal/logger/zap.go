package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

const defaultZapLevel = zapcore.DebugLevel

// toZapLevel converts a textual level to zapcore.Level.
func toZapLevel(levelStr string) zapcore.Level {
	switch levelStr {
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return defaultZapLevel
	}
}

// newZapLogger constructs a sugared zap logger writing to stdout.
func newZapLogger(levelStr string) *Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(zapcore.Lock(os.Stdout)),
		zap.NewAtomicLevelAt(toZapLevel(levelStr)),
	)
	return &Logger{SugaredLogger: zap.New(core).Sugar()}
}
