// Package vqgo provides vector quantization and k-means clustering for Go
// without a numerics library dependency.
//
// Given an observation set, vqgo partitions it into at most k clusters, each
// represented by a centroid, by iteratively minimizing the within-cluster
// squared Euclidean distance. Every call is a pure computation over its inputs:
// nothing is cached or persisted between calls, and calls on disjoint inputs
// may run concurrently.
//
// # Quick Start
//
//	ctx := context.Background()
//	obs := vqgo.Rows([]float64{1, 1}, []float64{1, 2}, []float64{9, 9}, []float64{9, 10})
//
//	// explicit initial centroids
//	res, _ := vqgo.KMeans(ctx, obs, vqgo.Codebook{{1, 1}, {9, 9}})
//	fmt.Println(res.Codebook, res.MeanDistance) // [[1 1.5] [9 9.5]] 0.5
//
//	// k random observations as initial centroids, reproducible via WithSeed
//	res, _ = vqgo.KMeansK(ctx, obs, 2, vqgo.WithSeed(42))
//
// # Vector Quantization
//
// VQ assigns observations to the nearest entry of an existing codebook, e.g. to
// classify new points against centroids learned earlier:
//
//	codes, dists, _ := vqgo.VQ(newObs, res.Codebook)
//
// # Scalars
//
// One-dimensional data is represented as observations of arity one:
//
//	obs := vqgo.Scalars(0.1, 0.2, 5.1, 5.3)
//
// # Cluster Count
//
// Centroids whose cluster becomes empty are dropped, not re-seeded, so the
// returned codebook may hold fewer than k entries.
//
// # Whitening
//
// Package stats provides per-dimension whitening. vqgo does not un-whiten
// centroids automatically; keep the scales from stats.WhitenScales and apply
// stats.Unwhiten to the resulting codebook.
package vqgo
