package clusterkit

import (
	"math"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting clustering metrics.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see package metrics/prometheus).
type MetricsCollector interface {
	// RecordIteration is called after each centroid recomputation.
	// displacement is the mean squared centroid displacement of the pass and
	// changed is the number of points that moved in the preceding assignment.
	RecordIteration(iteration int, displacement float64, changed int)

	// RecordRun is called after each ClusterData call.
	// state is the terminal state, err is nil if successful.
	RecordRun(k, points, iterations int, state State, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIteration(int, float64, int)                    {}
func (NoopMetricsCollector) RecordRun(int, int, int, State, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount            atomic.Int64
	RunErrors           atomic.Int64
	RunTotalNanos       atomic.Int64
	ConvergedCount      atomic.Int64
	IterationLimitCount atomic.Int64
	IterationCount      atomic.Int64
	ReassignedPoints    atomic.Int64
	lastDisplacement    atomic.Uint64
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(_ int, displacement float64, changed int) {
	b.IterationCount.Add(1)
	b.ReassignedPoints.Add(int64(changed))
	b.lastDisplacement.Store(math.Float64bits(displacement))
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(_, _, _ int, state State, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	switch state {
	case StateConverged:
		b.ConvergedCount.Add(1)
	case StateIterationLimitReached:
		b.IterationLimitCount.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RunCount:            b.RunCount.Load(),
		RunErrors:           b.RunErrors.Load(),
		RunAvgNanos:         b.getAvgRunNanos(),
		ConvergedCount:      b.ConvergedCount.Load(),
		IterationLimitCount: b.IterationLimitCount.Load(),
		IterationCount:      b.IterationCount.Load(),
		ReassignedPoints:    b.ReassignedPoints.Load(),
		LastDisplacement:    math.Float64frombits(b.lastDisplacement.Load()),
	}
}

func (b *BasicMetricsCollector) getAvgRunNanos() int64 {
	count := b.RunCount.Load()
	if count == 0 {
		return 0
	}
	return b.RunTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount            int64
	RunErrors           int64
	RunAvgNanos         int64
	ConvergedCount      int64
	IterationLimitCount int64
	IterationCount      int64
	ReassignedPoints    int64
	LastDisplacement    float64
}
