// Package kmeans implements the vector quantizer and the k-means refinement
// loop behind the public vqgo API.
//
// Inputs are assumed validated: non-empty, rectangular, and with matching
// observation and codebook arity. The public package performs that validation
// once at the call boundary.
package kmeans
