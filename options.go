package vqgo

import (
	"math/rand"

	"github.com/hupe1980/vqgo/internal/kmeans"
)

// DefaultThreshold is the minimum drop in mean distance between two
// iterations required to keep refining.
const DefaultThreshold = kmeans.DefaultThreshold

// DefaultMaxIterations is the default safety cap on refinement iterations.
const DefaultMaxIterations = 1000

// Sampler draws random permutations. It selects the initial centroids of
// KMeansK; *rand.Rand satisfies it.
type Sampler interface {
	Perm(n int) []int
}

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	threshold        float64
	maxIterations    int
	workers          int
	sampler          Sampler
}

// Option configures VQ and KMeans calls.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		threshold:        DefaultThreshold,
		maxIterations:    DefaultMaxIterations,
		workers:          1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger configures structured logging.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures the collector notified after every call.
//
// If nil is passed, metrics are discarded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithThreshold sets the convergence threshold: refinement stops once the mean
// distance improves by no more than t between two iterations.
func WithThreshold(t float64) Option {
	return func(o *options) {
		o.threshold = t
	}
}

// WithMaxIterations caps the number of refinement iterations.
// Reaching the cap is not an error; the result reports Converged == false.
// n <= 0 removes the cap.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithWorkers sets the number of goroutines used to quantize large
// observation sets. n <= 1 quantizes sequentially.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithSampler sets the random source used to pick initial centroids.
func WithSampler(s Sampler) Option {
	return func(o *options) {
		o.sampler = s
	}
}

// WithSeed makes initial centroid selection reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.sampler = rand.New(rand.NewSource(seed))
	}
}
