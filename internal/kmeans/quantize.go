package kmeans

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vqgo/distance"
)

// minChunk is the smallest number of observations handed to one worker.
const minChunk = 256

// Quantize assigns every observation to its nearest codebook entry.
// It returns the encoding and the Euclidean distance of each observation to
// its entry. With workers > 1 large sets are split into contiguous chunks that
// are processed concurrently; the output is identical to the sequential path.
func Quantize(obs, codebook [][]float64, workers int) ([]int, []float64) {
	n := len(obs)
	codes := make([]int, n)
	dists := make([]float64, n)

	if workers <= 1 || n < 2*minChunk {
		quantizeRange(obs, codebook, codes, dists, 0, n)
		return codes, dists
	}

	chunk := max((n+workers-1)/workers, minChunk)

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			quantizeRange(obs, codebook, codes, dists, start, end)
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	return codes, dists
}

func quantizeRange(obs, codebook [][]float64, codes []int, dists []float64, start, end int) {
	totals := make([]float64, len(codebook))

	for i := start; i < end; i++ {
		for j, c := range codebook {
			totals[j] = distance.SquaredL2(obs[i], c)
		}
		best := distance.IndexOfMin(totals)
		codes[i] = best
		dists[i] = totals[best]
	}

	// Only winning distances get the square root.
	for i := start; i < end; i++ {
		dists[i] = math.Sqrt(dists[i])
	}
}

// MaxObservations is the largest number of observations a membership bitmap
// can index. Callers must reject larger sets.
const MaxObservations = 1 << 32

// Members groups observation indices by their code. members[i] holds the
// indices of all observations encoded as i. len(codes) must not exceed
// MaxObservations.
func Members(codes []int, k int) []*roaring.Bitmap {
	members := make([]*roaring.Bitmap, k)
	for i := range members {
		members[i] = roaring.New()
	}
	for i, c := range codes {
		members[c].Add(uint32(i))
	}
	return members
}

// Centroid returns the per-dimension mean of the observations in members.
// members must not be empty.
func Centroid(obs [][]float64, members *roaring.Bitmap, dim int) []float64 {
	centroid := make([]float64, dim)

	it := members.Iterator()
	for it.HasNext() {
		for d, v := range obs[it.Next()] {
			centroid[d] += v
		}
	}

	n := float64(members.GetCardinality())
	for d := range centroid {
		centroid[d] /= n
	}

	return centroid
}
