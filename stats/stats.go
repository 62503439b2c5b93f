// Package stats provides the pre-processing statistics used before clustering:
// population standard deviation and per-dimension whitening.
//
// Whitening rescales each dimension by its standard deviation so every feature
// has unit spread. The clustering engine never un-whitens on its own; callers
// that need centroids in the original units keep the scales returned by
// WhitenScales and apply Unwhiten.
//
//	white, scales, err := stats.WhitenScales(points)
//	res, err := vqgo.KMeansK(ctx, white, 3)
//	centroids, err := stats.Unwhiten(res.Codebook, scales)
package stats

import (
	"errors"
	"fmt"
	"math"
)

// ErrDivideByZero is returned when a dimension has zero standard deviation.
var ErrDivideByZero = errors.New("division by zero")

// ErrRaggedPoints is returned when points do not share one arity.
var ErrRaggedPoints = errors.New("points do not have a consistent dimension")

// Mean returns the arithmetic mean of values.
// An empty slice yields NaN.
func Mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation of values (divides by
// len(values), not len(values)-1).
//
// The caller must supply at least one value; an empty slice yields NaN.
func StdDev(values []float64) float64 {
	mean := Mean(values)

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}

	return math.Sqrt(sq / float64(len(values)))
}

// WhitenScalars divides every value by the standard deviation of the whole
// sequence. The input is not modified.
func WhitenScalars(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return []float64{}, nil
	}

	sd := StdDev(values)
	if sd == 0 {
		return nil, fmt.Errorf("%w: values have zero standard deviation", ErrDivideByZero)
	}

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v / sd
	}
	return out, nil
}

// Whiten normalizes points on a per-dimension basis: the value of every point
// in dimension d is divided by the standard deviation of dimension d across all
// points. The input is not modified.
func Whiten(points [][]float64) ([][]float64, error) {
	out, _, err := WhitenScales(points)
	return out, err
}

// WhitenScales is Whiten but also returns the per-dimension standard
// deviations that were divided out.
func WhitenScales(points [][]float64) ([][]float64, []float64, error) {
	if len(points) == 0 {
		return [][]float64{}, []float64{}, nil
	}

	dim := len(points[0])
	for i, p := range points {
		if len(p) != dim {
			return nil, nil, fmt.Errorf("%w: point %d has %d dimensions, expected %d", ErrRaggedPoints, i, len(p), dim)
		}
	}

	column := make([]float64, len(points))
	scales := make([]float64, dim)
	for d := range dim {
		for i, p := range points {
			column[i] = p[d]
		}
		scales[d] = StdDev(column)
		if scales[d] == 0 {
			return nil, nil, fmt.Errorf("%w: dimension %d has zero standard deviation", ErrDivideByZero, d)
		}
	}

	data := make([]float64, len(points)*dim)
	out := make([][]float64, len(points))
	for i, p := range points {
		row := data[i*dim : (i+1)*dim]
		for d, v := range p {
			row[d] = v / scales[d]
		}
		out[i] = row
	}

	return out, scales, nil
}

// Unwhiten multiplies every point by scales, undoing WhitenScales.
// Typically applied to a codebook trained on whitened observations.
func Unwhiten(points [][]float64, scales []float64) ([][]float64, error) {
	out := make([][]float64, len(points))
	for i, p := range points {
		if len(p) != len(scales) {
			return nil, fmt.Errorf("%w: point %d has %d dimensions, %d scales given", ErrRaggedPoints, i, len(p), len(scales))
		}
		row := make([]float64, len(p))
		for d, v := range p {
			row[d] = v * scales[d]
		}
		out[i] = row
	}
	return out, nil
}
