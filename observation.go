package vqgo

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/vqgo/internal/kmeans"
)

// Observation is one data point: a fixed-length tuple of features.
type Observation []float64

// ObservationSet is an ordered set of observations sharing one dimension.
type ObservationSet [][]float64

// Codebook is an ordered set of centroids used as cluster representatives.
type Codebook [][]float64

// Encoding maps each observation to the index of its codebook entry.
type Encoding []int

// Scalars builds a one-dimensional observation set: each value becomes an
// observation of arity one.
func Scalars(values ...float64) ObservationSet {
	data := make([]float64, len(values))
	copy(data, values)

	set := make(ObservationSet, len(values))
	for i := range data {
		set[i] = data[i : i+1 : i+1]
	}
	return set
}

// Rows builds an observation set from a deep copy of rows.
// Dimensions are validated lazily by the operations that consume the set.
func Rows(rows ...[]float64) ObservationSet {
	return ObservationSet(cloneRows(rows))
}

// Dimension returns the number of features shared by every observation.
//
// It fails with ErrEmptyInput for an empty set or zero-length observations and
// with *ErrDimensionMismatch (wrapping ErrInconsistentDimension) as soon as an
// observation's dimension differs from the first one.
func (s ObservationSet) Dimension() (int, error) {
	return dimension(s)
}

// Clone returns a deep copy of the set.
func (s ObservationSet) Clone() ObservationSet {
	return ObservationSet(cloneRows(s))
}

// Dimension returns the number of features shared by every codebook entry.
func (c Codebook) Dimension() (int, error) {
	return dimension(c)
}

// Clone returns a deep copy of the codebook.
func (c Codebook) Clone() Codebook {
	return Codebook(cloneRows(c))
}

// Dimension reports the common dimension of observations.
func Dimension(observations ObservationSet) (int, error) {
	return dimension(observations)
}

func dimension(rows [][]float64) (int, error) {
	if len(rows) == 0 {
		return 0, fmt.Errorf("%w: at least one observation required", ErrEmptyInput)
	}

	dim := len(rows[0])
	if dim == 0 {
		return 0, fmt.Errorf("%w: observations must have at least one feature", ErrEmptyInput)
	}

	for _, r := range rows[1:] {
		if len(r) != dim {
			return 0, &ErrDimensionMismatch{Expected: dim, Actual: len(r), cause: ErrInconsistentDimension}
		}
	}

	return dim, nil
}

// DimensionMean returns the centroid of observations: the arithmetic mean
// along each dimension.
func DimensionMean(observations ObservationSet) (Observation, error) {
	dim, err := observations.Dimension()
	if err != nil {
		return nil, err
	}
	if err := checkCount(len(observations)); err != nil {
		return nil, err
	}

	all := roaring.New()
	all.AddRange(0, uint64(len(observations)))

	return Observation(kmeans.Centroid(observations, all, dim)), nil
}

// ClusterMembers returns, for each of the k codebook entries, the indices of
// the observations encoded to it. Encodings longer than 2^32 entries fail
// with ErrTooManyObservations.
func ClusterMembers(enc Encoding, k int) ([]*roaring.Bitmap, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be greater than 0, got %d", ErrInvalidClusterCount, k)
	}
	if err := checkCount(len(enc)); err != nil {
		return nil, err
	}
	for i, c := range enc {
		if c < 0 || c >= k {
			return nil, fmt.Errorf("%w: observation %d has code %d, want [0, %d)", ErrInvalidEncoding, i, c, k)
		}
	}
	return kmeans.Members(enc, k), nil
}

func cloneRows(rows [][]float64) [][]float64 {
	if rows == nil {
		return nil
	}

	n := 0
	for _, r := range rows {
		n += len(r)
	}

	data := make([]float64, 0, n)
	out := make([][]float64, len(rows))
	for i, r := range rows {
		start := len(data)
		data = append(data, r...)
		out[i] = data[start:len(data):len(data)]
	}

	return out
}
