package vqgo

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/hupe1980/vqgo/internal/kmeans"
)

// Result is the outcome of a clustering run.
type Result struct {
	// Codebook holds the final centroids. It may have fewer entries than the
	// initial codebook because centroids of empty clusters are dropped.
	Codebook Codebook

	// MeanDistance is the mean Euclidean distance of the observations to
	// their centroids, measured in the last iteration.
	MeanDistance float64

	// Iterations is the number of quantization passes performed.
	Iterations int

	// Converged is false if the iteration cap stopped the run.
	Converged bool

	// History holds MeanDistance as measured in every iteration.
	History []float64
}

// K returns the number of centroids in the result.
func (r *Result) K() int {
	return len(r.Codebook)
}

// Encode quantizes observations against the result's codebook.
func (r *Result) Encode(observations ObservationSet, opts ...Option) (Encoding, []float64, error) {
	return VQ(observations, r.Codebook, opts...)
}

// KMeans clusters observations starting from the given initial centroids.
//
// Each iteration assigns observations to their nearest centroid and moves every
// centroid to the mean of its cluster; centroids left without observations are
// dropped. Refinement stops when the mean distance improves by no more than
// the threshold (see WithThreshold). The first iteration always refines.
//
// initial is copied and never modified. ctx is checked before every iteration.
func KMeans(ctx context.Context, observations ObservationSet, initial Codebook, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	start := time.Now()

	if len(observations) == 0 {
		err := fmt.Errorf("%w: at least one observation required", ErrEmptyInput)
		return nil, o.fail(ctx, 0, start, err)
	}
	if len(initial) == 0 {
		err := fmt.Errorf("%w: at least one centroid must be provided, found 0", ErrInvalidClusterCount)
		return nil, o.fail(ctx, len(observations), start, err)
	}

	return run(ctx, observations, initial, o)
}

// KMeansK clusters observations into at most k clusters, using k distinct
// observations drawn uniformly at random as initial centroids.
//
// Use WithSeed or WithSampler for reproducible runs; otherwise each call uses
// a fresh time-seeded source.
func KMeansK(ctx context.Context, observations ObservationSet, k int, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	start := time.Now()

	if len(observations) == 0 {
		err := fmt.Errorf("%w: at least one observation required", ErrEmptyInput)
		return nil, o.fail(ctx, 0, start, err)
	}
	if k < 1 {
		err := fmt.Errorf("%w: k must be greater than 0, got %d", ErrInvalidClusterCount, k)
		return nil, o.fail(ctx, len(observations), start, err)
	}
	if k > len(observations) {
		err := fmt.Errorf("%w: k=%d exceeds %d observations", ErrInvalidClusterCount, k, len(observations))
		return nil, o.fail(ctx, len(observations), start, err)
	}

	sampler := o.sampler
	if sampler == nil {
		sampler = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	perm := sampler.Perm(len(observations))
	if err := checkPerm(perm, k, len(observations)); err != nil {
		return nil, o.fail(ctx, len(observations), start, err)
	}

	initial := make(Codebook, k)
	for i := range initial {
		initial[i] = observations[perm[i]]
	}

	return run(ctx, observations, initial, o)
}

// checkPerm verifies that the first k sampled indices are distinct and in [0, n).
func checkPerm(perm []int, k, n int) error {
	if len(perm) < k {
		return fmt.Errorf("%w: sampler returned %d indices, need %d", ErrInvalidClusterCount, len(perm), k)
	}

	seen := make(map[int]struct{}, k)
	for _, p := range perm[:k] {
		if p < 0 || p >= n {
			return fmt.Errorf("%w: sampler returned index %d, want [0, %d)", ErrInvalidClusterCount, p, n)
		}
		if _, ok := seen[p]; ok {
			return fmt.Errorf("%w: sampler returned index %d twice", ErrInvalidClusterCount, p)
		}
		seen[p] = struct{}{}
	}

	return nil
}

func run(ctx context.Context, observations ObservationSet, initial Codebook, o options) (*Result, error) {
	start := time.Now()

	dim, err := validate(observations, initial)
	if err != nil {
		return nil, o.fail(ctx, len(observations), start, err)
	}

	logger := o.logger.WithCount(len(observations)).WithK(len(initial)).WithDimension(dim)

	out, err := kmeans.Refine(ctx, observations, initial, kmeans.Config{
		Threshold:     o.threshold,
		MaxIterations: o.maxIterations,
		Workers:       o.workers,
		Logger:        logger.Logger,
	})
	if err != nil {
		o.metricsCollector.RecordKMeans(len(observations), 0, 0, false, time.Since(start), err)
		logger.LogKMeans(ctx, nil, err)
		return nil, err
	}

	res := &Result{
		Codebook:     Codebook(out.Codebook),
		MeanDistance: out.MeanDistance,
		Iterations:   out.Iterations,
		Converged:    out.Converged,
		History:      out.History,
	}

	o.metricsCollector.RecordKMeans(len(observations), res.Iterations, len(res.Codebook), res.Converged, time.Since(start), nil)
	logger.LogKMeans(ctx, res, nil)

	return res, nil
}

func (o options) fail(ctx context.Context, observations int, start time.Time, err error) error {
	o.metricsCollector.RecordKMeans(observations, 0, 0, false, time.Since(start), err)
	o.logger.LogKMeans(ctx, nil, err)
	return err
}
