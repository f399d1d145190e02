package release

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/oshokin/release-server/internal/logger"
)

// slowQueryThreshold is the duration after which a query is reported as slow.
const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes gorm diagnostics into the context logger.
type gormLogger struct {
	// level is the gorm verbosity.
	level gormlogger.LogLevel
}

func newGormLogger() *gormLogger {
	return &gormLogger{
		level: gormlogger.Warn,
	}
}

// LogMode returns a copy of the logger with the given verbosity.
//
//nolint:ireturn // Required by gorm's logger.Interface.
func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

// Info logs informational gorm messages.
func (l *gormLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		logger.Infof(ctx, msg, args...)
	}
}

// Warn logs gorm warnings.
func (l *gormLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		logger.Warnf(ctx, msg, args...)
	}
}

// Error logs gorm errors.
func (l *gormLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		logger.Errorf(ctx, msg, args...)
	}
}

// Trace reports failed and slow statements.
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		logger.ErrorKV(ctx, "Database statement failed", "sql", sql, "rows", rows, "elapsed", elapsed, "error", err)
	case elapsed > slowQueryThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		logger.WarnKV(ctx, "Slow database statement", "sql", sql, "rows", rows, "elapsed", elapsed)
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		logger.DebugKV(ctx, "Database statement", "sql", sql, "rows", rows, "elapsed", elapsed)
	}
}
