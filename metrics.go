package subdiag

import (
	"sync/atomic"
	"time"

	"github.com/dwhensley/subdiag/diagnostic"
)

// MetricsCollector defines an interface for collecting operational metrics.
// See metrics/prometheus for a Prometheus implementation.
type MetricsCollector interface {
	// RecordParse is called after readings are turned into a matrix.
	RecordParse(rows, cols int, duration time.Duration, err error)

	// RecordPowerConsumption is called after gamma and epsilon are computed.
	RecordPowerConsumption(duration time.Duration)

	// RecordRating is called after each life-support filter run.
	// iterations is the number of columns the filter tested.
	RecordRating(rating diagnostic.Rating, iterations int, duration time.Duration, err error)

	// RecordBatch is called after each batch analysis.
	RecordBatch(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordParse(int, int, time.Duration, error)                {}
func (NoopMetricsCollector) RecordPowerConsumption(time.Duration)                      {}
func (NoopMetricsCollector) RecordRating(diagnostic.Rating, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration)                       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	ParseCount       atomic.Int64
	ParseErrors      atomic.Int64
	ParsedRows       atomic.Int64
	PowerCount       atomic.Int64
	RatingCount      atomic.Int64
	RatingErrors     atomic.Int64
	RatingIterations atomic.Int64
	RatingTotalNanos atomic.Int64
	BatchCount       atomic.Int64
	BatchItems       atomic.Int64
	BatchFailed      atomic.Int64
}

// RecordParse implements MetricsCollector.
func (b *BasicMetricsCollector) RecordParse(rows, _ int, _ time.Duration, err error) {
	b.ParseCount.Add(1)
	if err != nil {
		b.ParseErrors.Add(1)
		return
	}
	b.ParsedRows.Add(int64(rows))
}

// RecordPowerConsumption implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPowerConsumption(time.Duration) {
	b.PowerCount.Add(1)
}

// RecordRating implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRating(_ diagnostic.Rating, iterations int, duration time.Duration, err error) {
	b.RatingCount.Add(1)
	b.RatingIterations.Add(int64(iterations))
	b.RatingTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RatingErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, failed int, _ time.Duration) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ParseCount:     b.ParseCount.Load(),
		ParseErrors:    b.ParseErrors.Load(),
		ParsedRows:     b.ParsedRows.Load(),
		PowerCount:     b.PowerCount.Load(),
		RatingCount:    b.RatingCount.Load(),
		RatingErrors:   b.RatingErrors.Load(),
		RatingAvgSteps: b.avgIterations(),
		RatingAvgNanos: b.avgRatingNanos(),
		BatchCount:     b.BatchCount.Load(),
		BatchItems:     b.BatchItems.Load(),
		BatchFailed:    b.BatchFailed.Load(),
	}
}

func (b *BasicMetricsCollector) avgIterations() float64 {
	count := b.RatingCount.Load()
	if count == 0 {
		return 0
	}
	return float64(b.RatingIterations.Load()) / float64(count)
}

func (b *BasicMetricsCollector) avgRatingNanos() int64 {
	count := b.RatingCount.Load()
	if count == 0 {
		return 0
	}
	return b.RatingTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ParseCount     int64
	ParseErrors    int64
	ParsedRows     int64
	PowerCount     int64
	RatingCount    int64
	RatingErrors   int64
	RatingAvgSteps float64
	RatingAvgNanos int64
	BatchCount     int64
	BatchItems     int64
	BatchFailed    int64
}
