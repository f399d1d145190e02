package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// floorCore drops entries below floor on top of the wrapped core's own level.
type floorCore struct {
	zapcore.Core

	// floor is the lowest level passed to the wrapped core.
	floor zapcore.Level
}

func (c *floorCore) Enabled(l zapcore.Level) bool {
	return l >= c.floor && c.Core.Enabled(l)
}

//nolint:gocritic // AddCore requires ent to be passed by value.
func (c *floorCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if ent.Level < c.floor {
		return ce
	}

	return c.Core.Check(ent, ce)
}

//nolint:ireturn,nolintlint // Returning zapcore.Core is intended for zap integration.
func (c *floorCore) With(fields []zapcore.Field) zapcore.Core {
	return &floorCore{
		Core:  c.Core.With(fields),
		floor: c.floor,
	}
}

// WithLevel raises the minimum level of a derived logger.
// The global level still applies, so a derived logger is never more verbose
// than the process-wide setting. Used to keep chatty libraries such as grpc-go
// at warnings and above.
//
//nolint:ireturn,nolintlint // Returning zap.Option is intended for zap integration.
func WithLevel(lvl zapcore.Level) zap.Option {
	return zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return &floorCore{Core: core, floor: lvl}
	})
}
