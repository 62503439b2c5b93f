package vqgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vqgo-specific context.
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
// Use this to disable logging entirely.
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

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds an observation count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogQuantize logs a vector quantization call.
func (l *Logger) LogQuantize(observations, codebook int, err error) {
	if err != nil {
		l.Error("vq failed",
			"observations", observations,
			"codebook", codebook,
			"error", err,
		)
	} else {
		l.Debug("vq completed",
			"observations", observations,
			"codebook", codebook,
		)
	}
}

// LogKMeans logs the outcome of a clustering run.
func (l *Logger) LogKMeans(ctx context.Context, res *Result, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "kmeans failed",
			"error", err,
		)
	case !res.Converged:
		l.WarnContext(ctx, "kmeans stopped before convergence",
			"iterations", res.Iterations,
			"clusters", len(res.Codebook),
			"mean_distance", res.MeanDistance,
		)
	default:
		l.InfoContext(ctx, "kmeans converged",
			"iterations", res.Iterations,
			"clusters", len(res.Codebook),
			"mean_distance", res.MeanDistance,
		)
	}
}
