// Package distance provides the squared Euclidean distance primitives used by
// the vector quantizer.
//
// Squared Euclidean is the only supported metric.
//
// # Usage
//
//	perFeature := distance.SquaredEuclidean(a, b) // [(a0-b0)^2, (a1-b1)^2, ...]
//	total := distance.SquaredL2(a, b)             // sum of perFeature
//	best := distance.IndexOfMin(totals)           // earliest index on ties
package distance
