package clusterkit

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}

	m.RecordIteration(1, 2.5, 4)
	m.RecordIteration(2, 0.5, 1)
	m.RecordRun(3, 10, 2, StateConverged, 10*time.Millisecond, nil)
	m.RecordRun(3, 10, 10, StateIterationLimitReached, 30*time.Millisecond, nil)
	m.RecordRun(3, 10, 0, StateUninitialized, 0, errors.New("boom"))

	stats := m.GetStats()
	assert.Equal(t, int64(3), stats.RunCount)
	assert.Equal(t, int64(1), stats.RunErrors)
	assert.Equal(t, int64(1), stats.ConvergedCount)
	assert.Equal(t, int64(1), stats.IterationLimitCount)
	assert.Equal(t, int64(2), stats.IterationCount)
	assert.Equal(t, int64(5), stats.ReassignedPoints)
	assert.Equal(t, 0.5, stats.LastDisplacement)
	assert.Equal(t, (40*time.Millisecond).Nanoseconds()/3, stats.RunAvgNanos)
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	m := &BasicMetricsCollector{}
	assert.Zero(t, m.GetStats().RunAvgNanos)
}

func TestNoopMetricsCollector(t *testing.T) {
	var m MetricsCollector = NoopMetricsCollector{}
	assert.NotPanics(t, func() {
		m.RecordIteration(1, 1, 1)
		m.RecordRun(1, 1, 1, StateConverged, time.Second, nil)
	})
}
