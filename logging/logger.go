// Package logging provides the structured logger shared by the queue and the
// IFT driver. It wraps slog.Logger with consistent field names so that growth
// warnings and run lifecycle events read the same in every package.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with engine-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a text handler to stderr at Info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))
}

// With returns a Logger carrying the given attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger: l.Logger.With(args...),
	}
}

// LogGrowth reports a bucket array reallocation. Growth past the warning
// threshold is logged at Warn level, ordinary growth at Debug.
func (l *Logger) LogGrowth(ctx context.Context, from, to int, minimum, maximum int64, huge bool) {
	if huge {
		l.WarnContext(ctx, "bucket queue is becoming huge",
			"buckets_from", from,
			"buckets_to", to,
			"minimum", minimum,
			"maximum", maximum,
		)
		return
	}
	l.DebugContext(ctx, "bucket queue grown",
		"buckets_from", from,
		"buckets_to", to,
	)
}

// LogRunStart logs the transition of a driver into its running phase.
func (l *Logger) LogRunStart(ctx context.Context, nodes, seeds int, increasing bool) {
	l.DebugContext(ctx, "forest run started",
		"nodes", nodes,
		"seeds", seeds,
		"increasing", increasing,
	)
}

// LogRunComplete logs a finished run.
func (l *Logger) LogRunComplete(ctx context.Context, popped int, stoppedEarly bool) {
	l.DebugContext(ctx, "forest run completed",
		"popped", popped,
		"stopped_early", stoppedEarly,
	)
}

// LogRunFailed logs a run aborted on an invariant violation.
func (l *Logger) LogRunFailed(ctx context.Context, node int, err error) {
	l.ErrorContext(ctx, "forest run aborted",
		"node", node,
		"error", err,
	)
}
