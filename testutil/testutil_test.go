package testutil

import (
	"testing"

	"github.com/hupe1980/clusterkit/model"
	"github.com/stretchr/testify/assert"
)

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)

	pts := rng.UniformPoints(100, -1, 1)

	assert.Len(t, pts, 100)
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.X, -1.0)
		assert.Less(t, p.X, 1.0)
		assert.GreaterOrEqual(t, p.Y, -1.0)
		assert.Less(t, p.Y, 1.0)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.UniformPoints(5, 0, 1)
	rng.Reset()
	b := rng.UniformPoints(5, 0, 1)

	assert.Equal(t, a, b)
	assert.Equal(t, uint64(4711), rng.Seed())
}

func TestClusteredPoints(t *testing.T) {
	rng := NewRNG(1)

	pts, centers := rng.ClusteredPoints(300, 3, 0.5)
	assert.Len(t, pts, 300)
	assert.Len(t, centers, 3)

	// Tight clusters far apart: every point is nearest its own center.
	labels := NearestLabels(pts, centers)
	for i, l := range labels {
		assert.Equal(t, i%3, l, i)
	}
}

func TestNearestLabels_Ties(t *testing.T) {
	centers := []model.Point{model.P(0, 0), model.P(2, 0)}
	assert.Equal(t, []int{0, 1}, NearestLabels([]model.Point{model.P(1, 0), model.P(3, 0)}, centers))
}

func TestBytes(t *testing.T) {
	a := NewRNG(7).Bytes(64)
	b := NewRNG(7).Bytes(64)
	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
}
