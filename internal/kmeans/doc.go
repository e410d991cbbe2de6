// Package kmeans implements the k-means building blocks used by the
// ClusterEngine: the assignment pass, centroid recomputation, the
// empty-cluster reseed heuristic and the convergence check.
//
// All functions operate on 2-D points and index-to-cluster label slices.
package kmeans
