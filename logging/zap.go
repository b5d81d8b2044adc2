package logging

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Levels maps configuration level names to zap levels.
var Levels = map[string]zapcore.Level{
	"":      zapcore.InfoLevel,
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

type fieldsKey struct{}

// ContextWithFields returns a context carrying zap fields that a ZapLogger
// adds to every entry logged through WithContext.
func ContextWithFields(ctx context.Context, fields ...zap.Field) context.Context {
	existing, _ := ctx.Value(fieldsKey{}).([]zap.Field)
	merged := make([]zap.Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, fieldsKey{}, merged)
}

// ZapLogger is a Logger implementation backed by a zap logger. Debug
// entries are written at zap's debug level, Warn entries at warn level and
// entries of any other classification at info level.
type ZapLogger struct {
	logger *zap.Logger
}

var (
	_ Logger        = ZapLogger{}
	_ ContextLogger = ZapLogger{}
)

// NewZapLogger returns a Logger writing to l.
func NewZapLogger(l *zap.Logger) ZapLogger {
	return ZapLogger{logger: l}
}

// NewZapProductionLogger builds a JSON zap logger at the named level.
func NewZapProductionLogger(level string) (ZapLogger, error) {
	lvl, ok := Levels[level]
	if !ok {
		return ZapLogger{}, fmt.Errorf("unknown log level %q", level)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	l, err := cfg.Build()
	if err != nil {
		return ZapLogger{}, fmt.Errorf("failed to build zap logger, %w", err)
	}
	return NewZapLogger(l), nil
}

// Logf logs the formatted message at the level matching classification.
func (z ZapLogger) Logf(classification Classification, format string, v ...interface{}) {
	if z.logger == nil {
		return
	}

	msg := fmt.Sprintf(format, v...)
	switch classification {
	case Debug:
		z.logger.Debug(msg)
	case Warn:
		z.logger.Warn(msg)
	default:
		z.logger.Info(msg, zap.String("classification", string(classification)))
	}
}

// WithContext returns a logger carrying the fields stored on ctx by
// ContextWithFields.
func (z ZapLogger) WithContext(ctx context.Context) Logger {
	fields, _ := ctx.Value(fieldsKey{}).([]zap.Field)
	if len(fields) == 0 || z.logger == nil {
		return z
	}
	return ZapLogger{logger: z.logger.With(fields...)}
}

// Sync flushes any buffered log entries.
func (z ZapLogger) Sync() error {
	if z.logger == nil {
		return nil
	}
	return z.logger.Sync()
}
