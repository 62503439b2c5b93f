package vqgo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when an observation set or codebook is empty
	// where at least one entry is required.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidClusterCount is returned when k is not positive, exceeds the
	// number of observations, an explicit centroid list is empty, or a Sampler
	// returns unusable indices.
	ErrInvalidClusterCount = errors.New("invalid cluster count")

	// ErrInconsistentDimension is the cause of an ErrDimensionMismatch raised
	// for a set whose observations do not share one dimension.
	ErrInconsistentDimension = errors.New("observations do not have a consistent dimension")

	// ErrInvalidEncoding is returned when an encoding references a codebook
	// index outside [0, k).
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrTooManyObservations is returned for sets larger than cluster
	// membership bitmaps can index (2^32 observations).
	ErrTooManyObservations = errors.New("too many observations")
)

// ErrDimensionMismatch indicates an observation/codebook dimensionality mismatch,
// or a set whose observations have different dimensions.
//
// For inconsistent sets errors.Is(err, ErrInconsistentDimension) holds.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%v: expected %d, got %d", e.cause, e.Expected, e.Actual)
	}
	return fmt.Sprintf("dimension mismatch: observations have %d features, codebook has %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }
