package vqgo

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vqgo/testutil"
)

func TestVQ(t *testing.T) {
	obs := ObservationSet{{1, 1}, {1, 2}, {9, 9}, {9, 10}}
	codebook := Codebook{{1, 1}, {9, 9}}

	codes, dists, err := VQ(obs, codebook)
	require.NoError(t, err)

	assert.Equal(t, Encoding{0, 0, 1, 1}, codes)
	assert.Equal(t, []float64{0, 1, 0, 1}, dists)
}

func TestVQ_Scalars(t *testing.T) {
	codes, dists, err := VQ(Scalars(1, 5, 9), Codebook{{0}, {10}})
	require.NoError(t, err)

	// 5 is equidistant and resolves to the first entry
	assert.Equal(t, Encoding{0, 0, 1}, codes)
	assert.Equal(t, []float64{1, 5, 1}, dists)
}

func TestVQ_LengthsAndRange(t *testing.T) {
	rng := testutil.NewRNG(4711)
	obs := ObservationSet(rng.UniformVectors(300, 5))
	codebook := Codebook(rng.UniformVectors(7, 5))

	codes, dists, err := VQ(obs, codebook)
	require.NoError(t, err)

	require.Len(t, codes, len(obs))
	require.Len(t, dists, len(obs))
	for i, c := range codes {
		assert.GreaterOrEqual(t, c, 0)
		assert.Less(t, c, len(codebook))
		assert.GreaterOrEqual(t, dists[i], 0.0)
	}
}

func TestVQ_ParallelMatchesSequential(t *testing.T) {
	rng := testutil.NewRNG(99)
	obs := ObservationSet(rng.UniformVectors(3000, 4))
	codebook := Codebook(rng.UniformVectors(10, 4))

	seqCodes, seqDists, err := VQ(obs, codebook)
	require.NoError(t, err)

	parCodes, parDists, err := VQ(obs, codebook, WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, seqCodes, parCodes)
	assert.Equal(t, seqDists, parDists)
}

func TestVQ_DoesNotMutate(t *testing.T) {
	obs := ObservationSet{{1, 2}, {3, 4}}
	codebook := Codebook{{0, 0}}

	_, _, err := VQ(obs, codebook)
	require.NoError(t, err)

	assert.Equal(t, ObservationSet{{1, 2}, {3, 4}}, obs)
	assert.Equal(t, Codebook{{0, 0}}, codebook)
}

func TestVQ_Errors(t *testing.T) {
	t.Run("EmptyObservations", func(t *testing.T) {
		_, _, err := VQ(ObservationSet{}, Codebook{{1}})
		require.ErrorIs(t, err, ErrEmptyInput)
		assert.Contains(t, err.Error(), "at least one observation required")
	})

	t.Run("EmptyCodebook", func(t *testing.T) {
		_, _, err := VQ(ObservationSet{{1}}, Codebook{})
		require.ErrorIs(t, err, ErrEmptyInput)
		assert.Contains(t, err.Error(), "at least one codebook entry required")
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		_, _, err := VQ(ObservationSet{{1, 2}}, Codebook{{1, 2, 3}})

		var dm *ErrDimensionMismatch
		require.True(t, errors.As(err, &dm))
		assert.Equal(t, 2, dm.Expected)
		assert.Equal(t, 3, dm.Actual)
		assert.NotErrorIs(t, err, ErrInconsistentDimension)
	})

	t.Run("RaggedObservations", func(t *testing.T) {
		_, _, err := VQ(ObservationSet{{1, 2}, {1}}, Codebook{{1, 2}})
		assert.ErrorIs(t, err, ErrInconsistentDimension)
	})

	t.Run("RaggedCodebook", func(t *testing.T) {
		_, _, err := VQ(ObservationSet{{1, 2}}, Codebook{{1, 2}, {3}})
		assert.ErrorIs(t, err, ErrInconsistentDimension)
	})
}

func TestCheckCount(t *testing.T) {
	assert.NoError(t, checkCount(0))
	assert.NoError(t, checkCount(1000))

	if strconv.IntSize < 64 {
		t.Skip("int cannot hold 2^32")
	}

	var limit uint64 = 1 << 32
	assert.NoError(t, checkCount(int(limit)))
	assert.ErrorIs(t, checkCount(int(limit+1)), ErrTooManyObservations)
}

func TestVQ_Metrics(t *testing.T) {
	mc := &BasicMetricsCollector{}

	_, _, err := VQ(ObservationSet{{1}, {2}}, Codebook{{0}}, WithMetricsCollector(mc))
	require.NoError(t, err)
	_, _, err = VQ(nil, Codebook{{0}}, WithMetricsCollector(mc))
	require.Error(t, err)

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.QuantizeCount)
	assert.Equal(t, int64(1), stats.QuantizeErrors)
	assert.Equal(t, int64(2), stats.QuantizeObservations)
}
