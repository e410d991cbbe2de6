package clusterkit

import (
	"fmt"
	"log/slog"

	"github.com/hupe1980/clusterkit/distance"
)

const (
	// DefaultMaxIterations is the iteration budget used by ClusterData.
	DefaultMaxIterations = 10

	// DefaultTolerance bounds the squared displacement under which a
	// centroid counts as unchanged.
	DefaultTolerance = 1e-9
)

// EmptyClusterPolicy decides the centroid of a cluster that lost all members.
type EmptyClusterPolicy int

const (
	// EmptyClusterRetain keeps the previous centroid.
	EmptyClusterRetain EmptyClusterPolicy = iota
	// EmptyClusterReseedFarthest moves the centroid onto the point that is
	// farthest from its own centroid.
	EmptyClusterReseedFarthest
)

func (p EmptyClusterPolicy) String() string {
	switch p {
	case EmptyClusterRetain:
		return "retain"
	case EmptyClusterReseedFarthest:
		return "reseed-farthest"
	default:
		return "unknown"
	}
}

// ParseEmptyClusterPolicy parses the String form of a policy.
func ParseEmptyClusterPolicy(s string) (EmptyClusterPolicy, error) {
	switch s {
	case "retain", "":
		return EmptyClusterRetain, nil
	case "reseed-farthest", "reseed":
		return EmptyClusterReseedFarthest, nil
	default:
		return 0, fmt.Errorf("clusterkit: unknown empty-cluster policy %q", s)
	}
}

type options struct {
	maxIterations    int
	tolerance        float64
	metric           distance.Metric
	emptyPolicy      EmptyClusterPolicy
	workers          int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures ClusterEngine construction.
type Option func(*options)

// WithMaxIterations sets the number of recompute passes ClusterData may run.
// Zero runs only the initial assignment.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithTolerance sets the squared displacement under which a centroid
// counts as unchanged. Zero demands exact equality.
func WithTolerance(eps float64) Option {
	return func(o *options) {
		o.tolerance = eps
	}
}

// WithMetric selects the distance used by the assignment pass.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithEmptyClusterPolicy selects how clusters without members are handled.
func WithEmptyClusterPolicy(p EmptyClusterPolicy) Option {
	return func(o *options) {
		o.emptyPolicy = p
	}
}

// WithWorkers splits each assignment pass across n goroutines.
// Values of 0 or 1 keep the pass on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &clusterkit.BasicMetricsCollector{}
//	eng, _ := clusterkit.New(3, points, clusterkit.WithMetricsCollector(metrics))
//	// ... run ...
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Avg latency: %dns\n", stats.RunCount, stats.RunAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := clusterkit.NewJSONLogger(slog.LevelDebug)
//	eng, _ := clusterkit.New(3, points, clusterkit.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		maxIterations:    DefaultMaxIterations,
		tolerance:        DefaultTolerance,
		metric:           distance.MetricEuclidean,
		emptyPolicy:      EmptyClusterRetain,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
