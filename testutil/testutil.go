package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/vqgo/distance"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float64()
		}
		vectors[i] = vec
	}

	return vectors
}

// UniformScalars generates num values in range [minVal, maxVal).
func (r *RNG) UniformScalars(num int, minVal, maxVal float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	values := make([]float64, num)
	for i := range values {
		values[i] = minVal + r.rand.Float64()*span
	}

	return values
}

// Blobs generates perCenter observations around each center with Gaussian
// noise of standard deviation spread. Observations are interleaved: the i-th
// observation belongs to centers[i%len(centers)], so the first len(centers)
// observations hit every blob once.
func (r *RNG) Blobs(centers [][]float64, perCenter int, spread float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(centers) == 0 {
		return nil
	}

	dim := len(centers[0])
	num := len(centers) * perCenter
	data := make([]float64, num*dim)
	vectors := make([][]float64, num)

	for i := range num {
		center := centers[i%len(centers)]
		vec := data[i*dim : (i+1)*dim : (i+1)*dim]
		for j := range dim {
			vec[j] = center[j] + r.rand.NormFloat64()*spread
		}
		vectors[i] = vec
	}

	return vectors
}

// NearestCenter returns the index of the center closest to v.
// Used to check that learned centroids landed on the generating blobs.
func NearestCenter(v []float64, centers [][]float64) (int, float64) {
	best, bestDist := -1, 0.0
	for i, c := range centers {
		d := distance.SquaredL2(v, c)
		if best == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}
