package distance

import (
	"testing"

	"github.com/hupe1980/clusterkit/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     model.Point
		expected float64
	}{
		{"Same", model.P(1, 1), model.P(1, 1), 0},
		{"Pythagoras", model.P(0, 0), model.P(3, 4), 5},
		{"Negative", model.P(-1, -1), model.P(2, 3), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Euclidean(tt.a, tt.b), 1e-12)
			assert.InDelta(t, tt.expected*tt.expected, SquaredEuclidean(tt.a, tt.b), 1e-12)
		})
	}
}

func TestMeanSquaredDisplacement(t *testing.T) {
	prev := []model.Point{model.P(0, 0), model.P(1, 1)}
	next := []model.Point{model.P(3, 4), model.P(1, 1)}
	assert.InDelta(t, 12.5, MeanSquaredDisplacement(prev, next), 1e-12)
	assert.Zero(t, MeanSquaredDisplacement(nil, nil))
	assert.Panics(t, func() { MeanSquaredDisplacement(prev, next[:1]) })
}

func TestProvider(t *testing.T) {
	f, err := Provider(MetricEuclidean)
	require.NoError(t, err)
	assert.InDelta(t, 5, f(model.P(0, 0), model.P(3, 4)), 1e-12)

	f, err = Provider(MetricSquaredEuclidean)
	require.NoError(t, err)
	assert.InDelta(t, 25, f(model.P(0, 0), model.P(3, 4)), 1e-12)

	_, err = Provider(Metric(999))
	assert.Error(t, err)
}

func TestMetricString(t *testing.T) {
	assert.Equal(t, "Euclidean", MetricEuclidean.String())
	assert.Equal(t, "SquaredEuclidean", MetricSquaredEuclidean.String())
	assert.Equal(t, "Unknown(7)", Metric(7).String())

	for _, m := range []Metric{MetricEuclidean, MetricSquaredEuclidean} {
		got, err := ParseMetric(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseMetric("cosine")
	assert.Error(t, err)
}
