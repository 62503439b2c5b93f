package distance

import "math"

// SquaredEuclidean returns the squared difference along each feature of a and b.
// The result is not summed; callers that need the full squared distance sum it
// themselves or use SquaredL2.
// Assumes a and b are the same length (caller's responsibility).
func SquaredEuclidean(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		d := a[i] - b[i]
		out[i] = d * d
	}
	return out
}

// SquaredL2 calculates the summed squared Euclidean distance between two vectors.
// It equals the sum of SquaredEuclidean(a, b) without allocating.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// IndexOfMin returns the index of the smallest value.
// If several values equal the minimum, the earliest index wins.
// An empty slice, or one without any value below +Inf, yields 0.
func IndexOfMin(values []float64) int {
	minValue := math.Inf(1)
	minIndex := 0

	for i, v := range values {
		if v < minValue {
			minValue = v
			minIndex = i
		}
	}

	return minIndex
}
