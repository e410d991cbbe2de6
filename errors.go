package clusterkit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrEmptyInput is returned when the engine is constructed without points.
	ErrEmptyInput = errors.New("point set is empty")

	// ErrInvalidMaxIterations is returned for a negative iteration budget.
	ErrInvalidMaxIterations = errors.New("max iterations must not be negative")

	// ErrInvalidTolerance is returned for a negative or NaN convergence tolerance.
	ErrInvalidTolerance = errors.New("tolerance must not be negative")

	// ErrInvalidWorkers is returned for a negative worker count.
	ErrInvalidWorkers = errors.New("workers must not be negative")

	// ErrNotInitialized is returned when Step is called before ClusterData.
	ErrNotInitialized = errors.New("engine has no centroids; call ClusterData first")
)

// ErrCentroidCount indicates that the number of initial centroids differs from k.
type ErrCentroidCount struct {
	Expected int
	Actual   int
}

func (e *ErrCentroidCount) Error() string {
	return fmt.Sprintf("centroid count mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidCentroid indicates a NaN or infinite coordinate in an initial centroid.
type ErrInvalidCentroid struct {
	Index int
	Point Point
}

func (e *ErrInvalidCentroid) Error() string {
	return fmt.Sprintf("invalid centroid %d: %v", e.Index, e.Point)
}
