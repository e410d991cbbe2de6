// Package testutil provides testing utilities for clusterkit.
//
// This package is intended for use in tests and benchmarks only.
// It generates reproducible point sets and labelled datasets.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(1000, 0, 10)
//	pts, centers := rng.ClusteredPoints(1000, 3, 0.5)
//
// # Ground Truth
//
//	labels := testutil.NearestLabels(pts, centers)
package testutil
