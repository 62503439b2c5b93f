package vqgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; package
// promcollector provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordQuantize is called after each VQ call.
	// observations and codebook are the input sizes, err is nil if successful.
	RecordQuantize(observations, codebook int, duration time.Duration, err error)

	// RecordKMeans is called after each clustering run.
	// iterations and clusters describe the result (zero on error); converged
	// is false when the iteration cap stopped the run.
	RecordKMeans(observations, iterations, clusters int, converged bool, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordQuantize(int, int, time.Duration, error)          {}
func (NoopMetricsCollector) RecordKMeans(int, int, int, bool, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	QuantizeCount        atomic.Int64
	QuantizeErrors       atomic.Int64
	QuantizeObservations atomic.Int64
	QuantizeTotalNanos   atomic.Int64
	KMeansCount          atomic.Int64
	KMeansErrors         atomic.Int64
	KMeansNotConverged   atomic.Int64
	KMeansIterations     atomic.Int64
	KMeansTotalNanos     atomic.Int64
}

// RecordQuantize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuantize(observations, codebook int, duration time.Duration, err error) {
	b.QuantizeCount.Add(1)
	b.QuantizeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.QuantizeErrors.Add(1)
		return
	}
	b.QuantizeObservations.Add(int64(observations))
}

// RecordKMeans implements MetricsCollector.
func (b *BasicMetricsCollector) RecordKMeans(observations, iterations, clusters int, converged bool, duration time.Duration, err error) {
	b.KMeansCount.Add(1)
	b.KMeansTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.KMeansErrors.Add(1)
		return
	}
	b.KMeansIterations.Add(int64(iterations))
	if !converged {
		b.KMeansNotConverged.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		QuantizeCount:        b.QuantizeCount.Load(),
		QuantizeErrors:       b.QuantizeErrors.Load(),
		QuantizeObservations: b.QuantizeObservations.Load(),
		QuantizeAvgNanos:     avg(b.QuantizeTotalNanos.Load(), b.QuantizeCount.Load()),
		KMeansCount:          b.KMeansCount.Load(),
		KMeansErrors:         b.KMeansErrors.Load(),
		KMeansNotConverged:   b.KMeansNotConverged.Load(),
		KMeansIterations:     b.KMeansIterations.Load(),
		KMeansAvgNanos:       avg(b.KMeansTotalNanos.Load(), b.KMeansCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	QuantizeCount        int64
	QuantizeErrors       int64
	QuantizeObservations int64
	QuantizeAvgNanos     int64
	KMeansCount          int64
	KMeansErrors         int64
	KMeansNotConverged   int64
	KMeansIterations     int64
	KMeansAvgNanos       int64
}
