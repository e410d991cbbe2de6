package clusterkit

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLogger_Helpers(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	l := newBufferLogger(&buf).WithK(3).WithCount(10)

	l.LogAssign(ctx, 1, 4, nil)
	l.LogIteration(ctx, 1, 0.25, false)
	l.LogEmptyCluster(ctx, 2, EmptyClusterRetain)
	l.LogRun(ctx, 5, StateConverged, nil)

	out := buf.String()
	assert.Contains(t, out, `"msg":"assignment pass completed"`)
	assert.Contains(t, out, `"msg":"centroids recomputed"`)
	assert.Contains(t, out, `"policy":"retain"`)
	assert.Contains(t, out, `"msg":"clustering converged"`)
	assert.Contains(t, out, `"k":3`)
	assert.Contains(t, out, `"count":10`)
}

func TestLogger_Failures(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	l.LogAssign(ctx, 2, 0, errors.New("cancelled"))
	l.LogRun(ctx, 3, StateAssigned, errors.New("cancelled"))
	l.LogRun(ctx, 10, StateIterationLimitReached, nil)

	out := buf.String()
	assert.Contains(t, out, `"msg":"assignment pass failed"`)
	assert.Contains(t, out, `"msg":"clustering failed"`)
	assert.Contains(t, out, `"msg":"clustering stopped at iteration limit"`)
}

func TestLogger_EngineIntegration(t *testing.T) {
	var buf bytes.Buffer
	eng, err := New(3, samplePoints, WithLogger(newBufferLogger(&buf)))
	require.NoError(t, err)

	_, err = eng.ClusterData(context.Background(), sampleCentroids)
	require.NoError(t, err)

	assert.Equal(t, 5, bytes.Count(buf.Bytes(), []byte(`"msg":"centroids recomputed"`)))
	assert.Equal(t, 5, bytes.Count(buf.Bytes(), []byte(`"msg":"assignment pass completed"`)))
	assert.Contains(t, buf.String(), `"msg":"clustering converged"`)
}

func TestNoopLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		NoopLogger().LogRun(context.Background(), 1, StateConverged, nil)
	})
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewJSONLogger(slog.LevelInfo))
	assert.NotNil(t, NewTextLogger(slog.LevelInfo))
}
