package fnwa

import (
	"github.com/advdv/bfunc"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a zap logger configured from the environment.
// Uses JSON encoding suitable for the platform's log collector.
// BFUNC_LOG_LEVEL controls the level (debug, info, warn, error).
func NewLogger(env Environment) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(env.logLevel())
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// zapFuncLogger forwards a function's Log and Error output into zap.
type zapFuncLogger struct{ *zap.Logger }

func (l zapFuncLogger) LogInfo(message string) {
	l.Logger.Info(message)
}

func (l zapFuncLogger) LogError(message string) {
	l.Logger.Error(message)
}

// NewFuncLogger adapts a zap logger into the sink the host context forwards
// function log lines to.
func NewFuncLogger(l *zap.Logger) bfunc.Logger {
	return zapFuncLogger{l.Named("fn")}
}
