// Package logger wraps zap behind a small interface so callers do not
// depend on the logging backend directly.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
	Sync() error
}

type Field struct {
	zap.Field
}

type zapLogger struct {
	l *zap.Logger
}

// New builds a logger for the given environment. "development" gets a
// console encoder, everything else JSON.
func New(environment, level, serviceName string) (Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zap.DebugLevel
	case "warn":
		zapLevel = zap.WarnLevel
	case "error":
		zapLevel = zap.ErrorLevel
	default:
		zapLevel = zap.InfoLevel
	}

	var encoder zapcore.Encoder
	if environment == "development" {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		cfg := zap.NewProductionEncoderConfig()
		cfg.TimeKey = "time"
		cfg.MessageKey = "msg"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(zapLevel))
	l := zap.New(core, zap.AddCaller()).With(zap.String("service", serviceName))

	return &zapLogger{l: l}, nil
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() Logger {
	return &zapLogger{l: zap.NewNop()}
}

func (z *zapLogger) Debug(msg string, fields ...Field) { z.l.Debug(msg, unwrap(fields)...) }
func (z *zapLogger) Info(msg string, fields ...Field)  { z.l.Info(msg, unwrap(fields)...) }
func (z *zapLogger) Warn(msg string, fields ...Field)  { z.l.Warn(msg, unwrap(fields)...) }
func (z *zapLogger) Error(msg string, fields ...Field) { z.l.Error(msg, unwrap(fields)...) }

func (z *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{l: z.l.With(unwrap(fields)...)}
}

func (z *zapLogger) Sync() error {
	return z.l.Sync()
}

func unwrap(fields []Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = f.Field
	}
	return out
}

func String(key, val string) Field {
	return Field{zap.String(key, val)}
}

func Int(key string, val int) Field {
	return Field{zap.Int(key, val)}
}

func Int64(key string, val int64) Field {
	return Field{zap.Int64(key, val)}
}

func Bool(key string, val bool) Field {
	return Field{zap.Bool(key, val)}
}

func Error(err error) Field {
	return Field{zap.Error(err)}
}
