package distance

import (
	"fmt"
	"math"

	"github.com/hupe1980/clusterkit/model"
)

// Euclidean returns the Euclidean distance between a and b.
func Euclidean(a, b model.Point) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}

// SquaredEuclidean returns the squared Euclidean distance between a and b.
func SquaredEuclidean(a, b model.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// MeanSquaredDisplacement returns the mean squared distance between
// corresponding entries of prev and next.
// Returns 0 for empty input. Panics if the lengths differ.
func MeanSquaredDisplacement(prev, next []model.Point) float64 {
	if len(prev) != len(next) {
		panic(fmt.Sprintf("distance: length mismatch %d != %d", len(prev), len(next)))
	}
	if len(prev) == 0 {
		return 0
	}
	var sum float64
	for i := range prev {
		sum += SquaredEuclidean(prev[i], next[i])
	}
	return sum / float64(len(prev))
}

// Metric represents the distance metric used for point comparison.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricSquaredEuclidean
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricSquaredEuclidean:
		return "SquaredEuclidean"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ParseMetric returns the metric for its String form.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "Euclidean", "euclidean", "l2", "L2":
		return MetricEuclidean, nil
	case "SquaredEuclidean", "squared-euclidean", "squared", "sql2":
		return MetricSquaredEuclidean, nil
	default:
		return 0, fmt.Errorf("unknown metric %q", s)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b model.Point) float64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricEuclidean:
		return Euclidean, nil
	case MetricSquaredEuclidean:
		return SquaredEuclidean, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
