package subdiag

import (
	"context"
	"log/slog"
	"os"

	"github.com/dwhensley/subdiag/diagnostic"
)

// Logger wraps slog.Logger with consistent field names for report analysis.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
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

// NewJSONLogger creates a Logger that writes JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithSource adds the report name.
func (l *Logger) WithSource(source string) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", source),
	}
}

// WithRating adds the rating being computed.
func (l *Logger) WithRating(r diagnostic.Rating) *Logger {
	return &Logger{
		Logger: l.Logger.With("rating", r.String()),
	}
}

// LogParse logs the construction of a diagnostic matrix.
func (l *Logger) LogParse(ctx context.Context, rows, cols int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "parse failed",
			"rows", rows,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "parse completed",
			"rows", rows,
			"cols", cols,
		)
	}
}

// LogRating logs one life-support filter run. Combine with WithRating to tag the rating.
func (l *Logger) LogRating(ctx context.Context, out diagnostic.Outcome, err error) {
	if err != nil {
		l.ErrorContext(ctx, "rating failed",
			"iterations", out.Iterations,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "rating completed",
			"row", out.Row,
			"value", out.Value,
			"iterations", out.Iterations,
		)
	}
}

// LogAnalyze logs a finished report analysis.
func (l *Logger) LogAnalyze(ctx context.Context, r *Report, err error) {
	if err != nil {
		l.ErrorContext(ctx, "analysis failed",
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "analysis completed",
		"rows", r.Rows,
		"cols", r.Cols,
		"power_consumption", r.PowerConsumption,
		"life_support", r.LifeSupport,
	)
}

// LogBatch logs a batch analysis.
func (l *Logger) LogBatch(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, "batch completed",
			"count", count,
		)
	}
}
