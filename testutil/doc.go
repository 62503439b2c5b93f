// Package testutil provides testing utilities for vqgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seedable random source and generators for observation sets
// with known cluster structure.
//
// # Random Observation Generation
//
//	rng := testutil.NewRNG(seed)
//	obs := rng.UniformVectors(1000, 8)              // uniform [0, 1)
//	blobs := rng.Blobs(centers, 50, 0.5)            // Gaussian blobs around centers
//
// RNG also satisfies vqgo.Sampler, so it can drive random centroid selection:
//
//	res, _ := vqgo.KMeansK(ctx, obs, 4, vqgo.WithSampler(rng))
package testutil
