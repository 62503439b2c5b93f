// Package promcollector implements vqgo.MetricsCollector on top of Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc := promcollector.New(reg, "myapp")
//	res, err := vqgo.KMeansK(ctx, obs, 8, vqgo.WithMetricsCollector(mc))
package promcollector

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hupe1980/vqgo"
)

// Outcome label values.
const (
	OutcomeOK           = "ok"
	OutcomeError        = "error"
	OutcomeConverged    = "converged"
	OutcomeNotConverged = "not_converged"
)

var _ vqgo.MetricsCollector = (*Collector)(nil)

// Collector records vqgo calls as Prometheus metrics.
type Collector struct {
	quantizeTotal        *prometheus.CounterVec
	quantizeObservations prometheus.Counter
	quantizeSeconds      prometheus.Histogram

	kmeansTotal      *prometheus.CounterVec
	kmeansIterations prometheus.Histogram
	kmeansClusters   prometheus.Histogram
	kmeansSeconds    prometheus.Histogram
}

// New creates a Collector and registers its metrics with reg.
// A nil reg creates unregistered metrics. namespace prefixes every metric name.
func New(reg prometheus.Registerer, namespace string) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		quantizeTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "vq_calls_total",
				Help:      "Total number of vector quantization calls by outcome",
			},
			[]string{"outcome"},
		),
		quantizeObservations: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "vq_observations_total",
				Help:      "Total number of observations quantized",
			},
		),
		quantizeSeconds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "vq_duration_seconds",
				Help:      "Latency of vector quantization calls",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		),
		kmeansTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "kmeans_runs_total",
				Help:      "Total number of k-means runs by outcome",
			},
			[]string{"outcome"},
		),
		kmeansIterations: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "kmeans_iterations",
				Help:      "Refinement iterations per successful k-means run",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 11),
			},
		),
		kmeansClusters: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "kmeans_clusters",
				Help:      "Centroids returned per successful k-means run",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 11),
			},
		),
		kmeansSeconds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "kmeans_duration_seconds",
				Help:      "Latency of k-means runs",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
			},
		),
	}
}

// RecordQuantize implements vqgo.MetricsCollector.
func (c *Collector) RecordQuantize(observations, _ int, duration time.Duration, err error) {
	c.quantizeSeconds.Observe(duration.Seconds())
	if err != nil {
		c.quantizeTotal.WithLabelValues(OutcomeError).Inc()
		return
	}
	c.quantizeTotal.WithLabelValues(OutcomeOK).Inc()
	c.quantizeObservations.Add(float64(observations))
}

// RecordKMeans implements vqgo.MetricsCollector.
func (c *Collector) RecordKMeans(_, iterations, clusters int, converged bool, duration time.Duration, err error) {
	c.kmeansSeconds.Observe(duration.Seconds())
	switch {
	case err != nil:
		c.kmeansTotal.WithLabelValues(OutcomeError).Inc()
		return
	case converged:
		c.kmeansTotal.WithLabelValues(OutcomeConverged).Inc()
	default:
		c.kmeansTotal.WithLabelValues(OutcomeNotConverged).Inc()
	}
	c.kmeansIterations.Observe(float64(iterations))
	c.kmeansClusters.Observe(float64(clusters))
}
