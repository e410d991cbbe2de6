// Package clusterkit provides a small 2-D k-means clustering engine.
//
// A ClusterEngine owns a fixed set of points and partitions them into k
// labelled clusters. Starting from caller-supplied centroids it alternates
// between assigning every point to its nearest centroid and moving each
// centroid to the mean of its members, until no centroid moves by more than
// the configured tolerance or the iteration budget is exhausted.
//
// # Quick Start
//
//	points := []clusterkit.Point{{X: 1.1, Y: 1}, {X: 1.4, Y: 2}, {X: 9, Y: 6}}
//	eng, err := clusterkit.New(2, points)
//	if err != nil { ... }
//
//	res, err := eng.ClusterData(ctx, []clusterkit.Point{{X: 1, Y: 1}, {X: 8, Y: 8}})
//	if err != nil { ... }
//	res.WriteText(os.Stdout)
//
// # Termination
//
// ClusterData always terminates. The result State is StateConverged when the
// last recompute pass moved no centroid beyond the tolerance, and
// StateIterationLimitReached when the budget ran out first. Both are
// successful outcomes; the partition is usable either way.
//
// # Empty Clusters
//
// A cluster can lose all of its members. EmptyClusterRetain (default) keeps
// its previous centroid; EmptyClusterReseedFarthest moves it onto the point
// farthest from its current centroid.
//
// # Related Packages
//
//   - dataset: idx/CSV loading, normalization and train/test/validation splits
//   - blobstore: local, in-memory, S3 and MinIO dataset sources
//   - report: text, JSON and HTML scatter-plot rendering of a Result
package clusterkit
