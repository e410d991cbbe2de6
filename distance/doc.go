// Package distance provides distance calculations between 2-D points.
//
// # Supported Metrics
//
//   - MetricEuclidean: sqrt(dx² + dy²) (default)
//   - MetricSquaredEuclidean: dx² + dy², same ordering without the sqrt
package distance
