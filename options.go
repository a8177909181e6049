package subdiag

import (
	"log/slog"

	"github.com/dwhensley/subdiag/codec"
)

type options struct {
	codec             codec.Codec
	metricsCollector  MetricsCollector
	logger            *Logger
	sequentialRatings bool
	maxWorkers        int64
	readLimitBytes    int64
	memoryLimitBytes  int64
}

// Option configures an Analyzer.
type Option func(*options)

// WithCodec configures the codec used by Save.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &subdiag.BasicMetricsCollector{}
//	a := subdiag.New(subdiag.WithMetricsCollector(metrics))
//	// ... analyze reports ...
//	stats := metrics.GetStats()
//	fmt.Printf("ratings: %d, avg steps: %.1f\n", stats.RatingCount, stats.RatingAvgSteps)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
//	a := subdiag.New(subdiag.WithLogger(subdiag.NewJSONLogger(slog.LevelInfo)))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithSequentialRatings computes the oxygen and CO2 ratings one after the other
// instead of concurrently.
func WithSequentialRatings() Option {
	return func(o *options) {
		o.sequentialRatings = true
	}
}

// WithMaxWorkers bounds the number of reports AnalyzeBatch processes at once.
// Values <= 0 select a single worker.
func WithMaxWorkers(n int) Option {
	return func(o *options) {
		o.maxWorkers = int64(n)
	}
}

// WithReadLimit caps blob read throughput in bytes per second. 0 means unlimited.
func WithReadLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.readLimitBytes = bytesPerSec
	}
}

// WithMemoryLimit caps the report bytes held in memory across concurrent analyses.
// A report that does not fit fails with resource.ErrMemoryLimitExceeded. 0 means unlimited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimitBytes = bytes
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            codec.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
