package vqgo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}

	mc.RecordQuantize(10, 2, 10*time.Millisecond, nil)
	mc.RecordQuantize(5, 2, 30*time.Millisecond, errors.New("boom"))
	mc.RecordKMeans(10, 4, 2, true, time.Second, nil)
	mc.RecordKMeans(10, 1000, 3, false, 3*time.Second, nil)
	mc.RecordKMeans(0, 0, 0, false, 0, errors.New("boom"))

	s := mc.GetStats()
	assert.Equal(t, int64(2), s.QuantizeCount)
	assert.Equal(t, int64(1), s.QuantizeErrors)
	assert.Equal(t, int64(10), s.QuantizeObservations)
	assert.Equal(t, (20 * time.Millisecond).Nanoseconds(), s.QuantizeAvgNanos)
	assert.Equal(t, int64(3), s.KMeansCount)
	assert.Equal(t, int64(1), s.KMeansErrors)
	assert.Equal(t, int64(1), s.KMeansNotConverged)
	assert.Equal(t, int64(1004), s.KMeansIterations)
	assert.Equal(t, (4 * time.Second / 3).Nanoseconds(), s.KMeansAvgNanos)
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	s := (&BasicMetricsCollector{}).GetStats()
	assert.Zero(t, s.QuantizeAvgNanos)
	assert.Zero(t, s.KMeansAvgNanos)
}

func TestMetricsCollector_KMeans(t *testing.T) {
	mc := &BasicMetricsCollector{}

	res, err := KMeans(context.Background(), ObservationSet{{1, 1}, {1, 2}, {9, 9}, {9, 10}}, Codebook{{1, 1}, {9, 9}}, WithMetricsCollector(mc))
	require.NoError(t, err)

	s := mc.GetStats()
	assert.Equal(t, int64(1), s.KMeansCount)
	assert.Zero(t, s.KMeansErrors)
	assert.Zero(t, s.KMeansNotConverged)
	assert.Equal(t, int64(res.Iterations), s.KMeansIterations)

	// the refinement loop quantizes internally without reporting VQ calls
	assert.Zero(t, s.QuantizeCount)
}

func TestMetricsCollector_NilFallsBackToNoop(t *testing.T) {
	o := newOptions([]Option{WithMetricsCollector(nil)})
	assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
}
