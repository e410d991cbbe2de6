package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	K          int       `json:"k"`
	State      string    `json:"state"`
	Centroids  []float64 `json:"centroids"`
	Iterations int       `json:"iterations"`
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	c, ok := ByName("")
	require.True(t, ok)
	assert.Equal(t, "go-json", c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecsAgree(t *testing.T) {
	v := sample{K: 3, State: "converged", Centroids: []float64{1.25, 1.5}, Iterations: 5}

	a, err := JSON{}.Marshal(v)
	require.NoError(t, err)
	b, err := GoJSON{}.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))

	var got sample
	require.NoError(t, GoJSON{}.Unmarshal(a, &got))
	assert.Equal(t, v, got)
}

func TestMarshalIndent(t *testing.T) {
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		ind, ok := c.(Indenter)
		require.True(t, ok, c.Name())

		out, err := ind.MarshalIndent(map[string]int{"k": 2}, "", "  ")
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"k\": 2\n}", string(out))
	}
}

func TestDefault(t *testing.T) {
	c, _ := ByName("")
	assert.Equal(t, Default, c)
}
