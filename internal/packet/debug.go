package packet

import (
	"go.uber.org/zap"
)

var (
	opsLogger   *zap.Logger
	diagLogger  *zap.Logger
	traceLogger *zap.Logger
)

// SetLoggers configures the three logging streams for the packet package.
// Pass nil for any logger to disable that stream.
func SetLoggers(ops, diag, trace *zap.Logger) {
	opsLogger = named(ops)
	diagLogger = named(diag)
	traceLogger = named(trace)
}

func named(l *zap.Logger) *zap.Logger {
	if l == nil {
		return nil
	}
	return l.Named("packet")
}

// opsf logs to the ops stream (rejected transmissions).
func opsf(msg string, fields ...zap.Field) {
	if opsLogger != nil {
		opsLogger.Warn(msg, fields...)
	}
}

// diagf logs to the diag stream (per-parse summaries).
func diagf(msg string, fields ...zap.Field) {
	if diagLogger != nil {
		diagLogger.Info(msg, fields...)
	}
}

// tracef logs to the trace stream (one entry per packet header).
func tracef(msg string, fields ...zap.Field) {
	if traceLogger != nil {
		traceLogger.Debug(msg, fields...)
	}
}

// DO NOT add Debugf, that's an anti-pattern. Each callsite needs to use opsf, diagf, or tracef.
