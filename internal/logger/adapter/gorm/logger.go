// Package gorm routes gorm's logging through the global zerolog logger.
package gorm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gormlogger "gorm.io/gorm/logger"
)

// Logger implements gorm's logger.Interface.
type Logger struct {
	level         gormlogger.LogLevel
	slowThreshold time.Duration
	// logSQL logs every statement at debug level, not only slow or failed ones.
	logSQL bool
}

// New returns a gorm logger writing to zerolog.
func New(logSQL bool) *Logger {
	return &Logger{
		level:         gormlogger.Warn,
		slowThreshold: 200 * time.Millisecond, //nolint:mnd
		logSQL:        logSQL,
	}
}

// LogMode implements gormlogger.Interface.
func (l *Logger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level

	return &clone
}

// Info implements gormlogger.Interface.
func (l *Logger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Info {
		l.event(ctx, zerolog.InfoLevel).Msg(fmt.Sprintf(msg, data...))
	}
}

// Warn implements gormlogger.Interface.
func (l *Logger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Warn {
		l.event(ctx, zerolog.WarnLevel).Msg(fmt.Sprintf(msg, data...))
	}
}

// Error implements gormlogger.Interface.
func (l *Logger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Error {
		l.event(ctx, zerolog.ErrorLevel).Msg(fmt.Sprintf(msg, data...))
	}
}

// Trace implements gormlogger.Interface. Failed statements are logged at
// error level except record-not-found, slow ones at warn level.
func (l *Logger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gormlogger.ErrRecordNotFound):
		sql, rows := fc()
		l.event(ctx, zerolog.ErrorLevel).Err(err).
			Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).
			Msg("sql statement failed")
	case l.slowThreshold != 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		l.event(ctx, zerolog.WarnLevel).
			Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).
			Msg("slow sql statement")
	case l.logSQL:
		sql, rows := fc()
		l.event(ctx, zerolog.DebugLevel).
			Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).
			Msg("sql statement")
	}
}

func (l *Logger) event(ctx context.Context, level zerolog.Level) *zerolog.Event {
	logger := log.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		logger = &log.Logger
	}

	return logger.WithLevel(level).Str("component", "gorm")
}
