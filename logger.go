package clusterkit

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with clustering-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogAssign logs an assignment pass.
func (l *Logger) LogAssign(ctx context.Context, pass, changed int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "assignment pass failed",
			"pass", pass,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "assignment pass completed",
		"pass", pass,
		"changed", changed,
	)
}

// LogIteration logs a centroid recomputation.
func (l *Logger) LogIteration(ctx context.Context, iteration int, displacement float64, converged bool) {
	l.DebugContext(ctx, "centroids recomputed",
		"iteration", iteration,
		"displacement", displacement,
		"converged", converged,
	)
}

// LogEmptyCluster logs the handling of a cluster without members.
func (l *Logger) LogEmptyCluster(ctx context.Context, cluster int, policy EmptyClusterPolicy) {
	l.WarnContext(ctx, "empty cluster",
		"cluster", cluster,
		"policy", policy.String(),
	)
}

// LogRun logs the outcome of a full clustering run.
func (l *Logger) LogRun(ctx context.Context, iterations int, state State, err error) {
	if err != nil {
		l.ErrorContext(ctx, "clustering failed",
			"iterations", iterations,
			"error", err,
		)
		return
	}
	if state == StateIterationLimitReached {
		l.WarnContext(ctx, "clustering stopped at iteration limit",
			"iterations", iterations,
		)
		return
	}
	l.InfoContext(ctx, "clustering converged",
		"iterations", iterations,
	)
}
