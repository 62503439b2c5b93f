package kmeans

import (
	"context"
	"log/slog"
	"math"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/vqgo/stats"
)

// DefaultThreshold is the minimum drop in mean distance required to keep refining.
const DefaultThreshold = 1e-5

// State is the state of the refinement loop.
type State int

const (
	// Refining means the last iteration improved the mean distance by more
	// than the threshold (or it was the first iteration).
	Refining State = iota
	// Converged means the improvement fell to or below the threshold.
	Converged
)

func (s State) String() string {
	switch s {
	case Refining:
		return "refining"
	case Converged:
		return "converged"
	default:
		return "unknown"
	}
}

// Config controls a refinement run.
type Config struct {
	Threshold     float64
	MaxIterations int // <= 0 disables the cap
	Workers       int
	Logger        *slog.Logger
}

// Result is the outcome of a refinement run.
type Result struct {
	Codebook     [][]float64
	MeanDistance float64
	Iterations   int
	Converged    bool
	// History holds the mean distance measured in every iteration.
	History []float64
}

// Refine runs Lloyd-style refinement starting from initial until the mean
// assignment distance stops improving by more than cfg.Threshold.
//
// The first iteration always updates. Centroids of clusters that end up empty
// are dropped, so the codebook can shrink but never grows. initial is copied
// and never modified.
func Refine(ctx context.Context, obs, initial [][]float64, cfg Config) (*Result, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	dim := len(obs[0])
	codebook := clone(initial)
	res := &Result{}

	state := Refining
	meanDifference := math.Inf(1)
	var previous float64

	trace := rate.Sometimes{First: 3, Interval: time.Second}

	for state == Refining {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if cfg.MaxIterations > 0 && res.Iterations >= cfg.MaxIterations {
			logger.WarnContext(ctx, "kmeans iteration cap reached",
				"iterations", res.Iterations,
				"mean_distance", previous,
				"mean_difference", meanDifference,
			)
			break
		}

		codes, dists := Quantize(obs, codebook, cfg.Workers)
		mean := stats.Mean(dists)

		res.Iterations++
		res.History = append(res.History, mean)

		if res.Iterations > 1 {
			meanDifference = previous - mean
		}

		if meanDifference > cfg.Threshold {
			codebook = update(obs, codebook, codes, dim)
		} else {
			state = Converged
		}
		previous = mean

		trace.Do(func() {
			logger.DebugContext(ctx, "kmeans iteration",
				"iteration", res.Iterations,
				"state", state.String(),
				"mean_distance", mean,
				"mean_difference", meanDifference,
				"centroids", len(codebook),
			)
		})
	}

	res.Codebook = codebook
	res.MeanDistance = previous
	res.Converged = state == Converged

	return res, nil
}

// update replaces each populated centroid by the mean of its cluster and drops
// the centroids of empty clusters. It compacts codebook in place.
func update(obs, codebook [][]float64, codes []int, dim int) [][]float64 {
	members := Members(codes, len(codebook))

	next := codebook[:0]
	for _, m := range members {
		if m.IsEmpty() {
			continue
		}
		next = append(next, Centroid(obs, m, dim))
	}

	return next
}

func clone(vectors [][]float64) [][]float64 {
	if len(vectors) == 0 {
		return nil
	}
	dim := len(vectors[0])
	data := make([]float64, 0, len(vectors)*dim)
	out := make([][]float64, len(vectors))
	for i, v := range vectors {
		start := len(data)
		data = append(data, v...)
		out[i] = data[start:len(data):len(data)]
	}
	return out
}
