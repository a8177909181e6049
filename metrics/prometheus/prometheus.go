// Package prometheus exports analyzer metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	c, err := subdiagprom.NewCollector(reg, "subdiag")
//	if err != nil { ... }
//	a := subdiag.New(subdiag.WithMetricsCollector(c))
//	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
package prometheus

import (
	"time"

	"github.com/dwhensley/subdiag/diagnostic"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements subdiag.MetricsCollector on Prometheus metrics.
type Collector struct {
	parses        *prometheus.CounterVec
	parseLatency  prometheus.Histogram
	readings      prometheus.Counter
	powerLatency  prometheus.Histogram
	ratingLatency *prometheus.HistogramVec
	ratingSteps   *prometheus.HistogramVec
	batchReports  *prometheus.CounterVec
	batchLatency  prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		parses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parses_total",
			Help:      "Reports turned into diagnostic matrices",
		}, []string{"status"}),
		parseLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "parse_duration_seconds",
			Help:      "Latency of matrix construction",
			Buckets:   prometheus.DefBuckets,
		}),
		readings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "readings_total",
			Help:      "Readings parsed from successful reports",
		}),
		powerLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "power_consumption_duration_seconds",
			Help:      "Latency of gamma/epsilon computation",
			Buckets:   prometheus.DefBuckets,
		}),
		ratingLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rating_duration_seconds",
			Help:      "Latency of life-support filter runs",
			Buckets:   prometheus.DefBuckets,
		}, []string{"rating", "status"}),
		ratingSteps: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rating_iterations",
			Help:      "Columns tested before a life-support filter converged",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 7),
		}, []string{"rating"}),
		batchReports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_reports_total",
			Help:      "Reports processed by batch analyses",
		}, []string{"status"}),
		batchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Latency of batch analyses",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
		}),
	}

	for _, m := range []prometheus.Collector{
		c.parses, c.parseLatency, c.readings, c.powerLatency,
		c.ratingLatency, c.ratingSteps, c.batchReports, c.batchLatency,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordParse implements subdiag.MetricsCollector.
func (c *Collector) RecordParse(rows, _ int, d time.Duration, err error) {
	c.parses.WithLabelValues(status(err)).Inc()
	c.parseLatency.Observe(d.Seconds())
	if err == nil {
		c.readings.Add(float64(rows))
	}
}

// RecordPowerConsumption implements subdiag.MetricsCollector.
func (c *Collector) RecordPowerConsumption(d time.Duration) {
	c.powerLatency.Observe(d.Seconds())
}

// RecordRating implements subdiag.MetricsCollector.
func (c *Collector) RecordRating(r diagnostic.Rating, iterations int, d time.Duration, err error) {
	c.ratingLatency.WithLabelValues(r.String(), status(err)).Observe(d.Seconds())
	if err == nil {
		c.ratingSteps.WithLabelValues(r.String()).Observe(float64(iterations))
	}
}

// RecordBatch implements subdiag.MetricsCollector.
func (c *Collector) RecordBatch(count, failed int, d time.Duration) {
	c.batchReports.WithLabelValues("success").Add(float64(count - failed))
	c.batchReports.WithLabelValues("error").Add(float64(failed))
	c.batchLatency.Observe(d.Seconds())
}
