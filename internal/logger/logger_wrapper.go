// Package logger adapts go.uber.org/zap to the contracts.Logger interface.
package logger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/leandrodaf/midirec/sdk/contracts"
)

type zapLogger struct {
	logger *zap.Logger
	level  zap.AtomicLevel
}

// NewZapLogger builds a production-configured zap logger writing JSON to
// stderr. The returned logger starts at info level; use SetLevel to change
// it at runtime.
func NewZapLogger() contracts.Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.OutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	return &zapLogger{logger: l, level: level}
}

func (z *zapLogger) Debug(msg string, fields ...contracts.Field) {
	z.logger.Debug(msg, toZapFields(fields)...)
}

func (z *zapLogger) Info(msg string, fields ...contracts.Field) {
	z.logger.Info(msg, toZapFields(fields)...)
}

func (z *zapLogger) Warn(msg string, fields ...contracts.Field) {
	z.logger.Warn(msg, toZapFields(fields)...)
}

func (z *zapLogger) Error(msg string, fields ...contracts.Field) {
	z.logger.Error(msg, toZapFields(fields)...)
}

func (z *zapLogger) Fatal(msg string, fields ...contracts.Field) {
	z.logger.Fatal(msg, toZapFields(fields)...)
}

// Field returns an empty field builder.
func (z *zapLogger) Field() contracts.Field {
	return zapField{}
}

// SetLevel maps the contract level onto zap's atomic level.
func (z *zapLogger) SetLevel(level contracts.LogLevel) {
	switch level {
	case contracts.DebugLevel:
		z.level.SetLevel(zapcore.DebugLevel)
	case contracts.WarnLevel:
		z.level.SetLevel(zapcore.WarnLevel)
	case contracts.ErrorLevel:
		z.level.SetLevel(zapcore.ErrorLevel)
	case contracts.FatalLevel:
		z.level.SetLevel(zapcore.FatalLevel)
	default:
		z.level.SetLevel(zapcore.InfoLevel)
	}
}

// zapField wraps a single zap.Field behind the contracts.Field builder.
type zapField struct {
	field zap.Field
}

func (zapField) Bool(key string, val bool) contracts.Field {
	return zapField{zap.Bool(key, val)}
}

func (zapField) Int(key string, val int) contracts.Field {
	return zapField{zap.Int(key, val)}
}

func (zapField) Int64(key string, val int64) contracts.Field {
	return zapField{zap.Int64(key, val)}
}

func (zapField) Uint64(key string, val uint64) contracts.Field {
	return zapField{zap.Uint64(key, val)}
}

func (zapField) Uint8(key string, val uint8) contracts.Field {
	return zapField{zap.Uint8(key, val)}
}

func (zapField) Float64(key string, val float64) contracts.Field {
	return zapField{zap.Float64(key, val)}
}

func (zapField) String(key string, val string) contracts.Field {
	return zapField{zap.String(key, val)}
}

func (zapField) Time(key string, val time.Time) contracts.Field {
	return zapField{zap.Time(key, val)}
}

func (zapField) Error(key string, val error) contracts.Field {
	return zapField{zap.NamedError(key, val)}
}

func toZapFields(fields []contracts.Field) []zap.Field {
	zs := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if zf, ok := f.(zapField); ok {
			zs = append(zs, zf.field)
		}
	}
	return zs
}

// NewNop returns a Logger that discards everything.
func NewNop() contracts.Logger {
	return &zapLogger{logger: zap.NewNop(), level: zap.NewAtomicLevel()}
}
