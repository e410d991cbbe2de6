package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointString(t *testing.T) {
	assert.Equal(t, "[1.1,1]", P(1.1, 1).String())
	assert.Equal(t, "[-3,0.5]", P(-3, 0.5).String())
}

func TestPointsClone(t *testing.T) {
	ps := Points{P(1, 2), P(3, 4)}
	c := ps.Clone()
	c[0] = P(9, 9)
	assert.Equal(t, P(1, 2), ps[0])
	assert.Nil(t, Points(nil).Clone())
}

func TestPointsColumns(t *testing.T) {
	ps := Points{P(1, 2), P(3, 4)}
	assert.Equal(t, []float64{1, 3}, ps.Xs())
	assert.Equal(t, []float64{2, 4}, ps.Ys())
}

func TestParsePoints(t *testing.T) {
	ps, err := ParsePoints("1,1;3,4;8,8")
	require.NoError(t, err)
	assert.Equal(t, Points{P(1, 1), P(3, 4), P(8, 8)}, ps)

	ps, err = ParsePoints("1.5,-2;")
	require.NoError(t, err)
	assert.Equal(t, Points{P(1.5, -2)}, ps)

	_, err = ParsePoints("1;2")
	assert.Error(t, err)

	_, err = ParsePoints("a,2")
	assert.Error(t, err)
}
