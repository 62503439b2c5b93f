package vqgo

import (
	"fmt"
	"time"

	"github.com/hupe1980/vqgo/internal/kmeans"
)

// VQ assigns each observation to its nearest codebook entry (squared
// Euclidean distance, earliest entry on ties).
//
// It returns the encoding, where codes[i] indexes the entry of observation i,
// and the Euclidean distance of every observation to that entry. Neither input
// is modified.
//
// VQ fails with ErrEmptyInput if either input is empty and with
// *ErrDimensionMismatch if the inputs are ragged or their dimensions differ.
func VQ(observations ObservationSet, codebook Codebook, opts ...Option) (Encoding, []float64, error) {
	o := newOptions(opts)
	start := time.Now()

	codes, dists, err := quantize(observations, codebook, o.workers)

	o.metricsCollector.RecordQuantize(len(observations), len(codebook), time.Since(start), err)
	o.logger.LogQuantize(len(observations), len(codebook), err)

	return codes, dists, err
}

func quantize(observations ObservationSet, codebook Codebook, workers int) (Encoding, []float64, error) {
	if _, err := validate(observations, codebook); err != nil {
		return nil, nil, err
	}

	codes, dists := kmeans.Quantize(observations, codebook, workers)

	return Encoding(codes), dists, nil
}

// validate checks both inputs are non-empty and share one dimension.
func validate(observations ObservationSet, codebook Codebook) (int, error) {
	if len(observations) == 0 {
		return 0, fmt.Errorf("%w: at least one observation required", ErrEmptyInput)
	}
	if len(codebook) == 0 {
		return 0, fmt.Errorf("%w: at least one codebook entry required", ErrEmptyInput)
	}

	if err := checkCount(len(observations)); err != nil {
		return 0, err
	}

	dim, err := observations.Dimension()
	if err != nil {
		return 0, err
	}
	cbDim, err := codebook.Dimension()
	if err != nil {
		return 0, err
	}
	if dim != cbDim {
		return 0, &ErrDimensionMismatch{Expected: dim, Actual: cbDim}
	}

	return dim, nil
}

// checkCount rejects sets whose indices do not fit a membership bitmap.
func checkCount(n int) error {
	if uint64(n) > kmeans.MaxObservations {
		return fmt.Errorf("%w: %d exceeds %d", ErrTooManyObservations, n, uint64(kmeans.MaxObservations))
	}
	return nil
}
