package dataset

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCSV(t *testing.T) {
	input := "5.1,3.5,setosa\n\n7.0,3.2,versicolor\r\n4.9,3.0,setosa\n6.3,3.3,virginica\n"

	ds, err := DecodeCSV(strings.NewReader(input), ",")
	require.NoError(t, err)
	require.Equal(t, 4, ds.Len())

	assert.Equal(t, []string{"setosa", "versicolor", "virginica"}, ds.ClassNames())
	assert.Equal(t, 3, ds.ClassCount())

	labels := make([]int, ds.Len())
	for i, r := range ds.Records() {
		labels[i] = r.Label
	}
	assert.Equal(t, []int{0, 1, 0, 2}, labels)
	assert.Equal(t, []float64{7.0, 3.2}, ds.Record(1).Features)
	assert.Nil(t, ds.Record(1).Raw)
}

func TestDecodeCSV_MultiCharDelimiter(t *testing.T) {
	ds, err := DecodeCSV(strings.NewReader("1::2::a\n3::4::b\n"), "::")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, ds.Record(1).Features)
	assert.Equal(t, 1, ds.Record(1).Label)
}

func TestDecodeCSV_LabelOnly(t *testing.T) {
	ds, err := DecodeCSV(strings.NewReader("a\nb\n"), ",")
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
	assert.Empty(t, ds.Record(0).Features)
}

func TestDecodeCSV_Errors(t *testing.T) {
	_, err := DecodeCSV(strings.NewReader("1,2,a\n1,x,b\n"), ",")
	var pe *ErrParse
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	_, err = DecodeCSV(strings.NewReader("1,a"), "")
	assert.ErrorIs(t, err, ErrEmptyDelimiter)
}

func TestDecodeCSV_Empty(t *testing.T) {
	ds, err := DecodeCSV(strings.NewReader(""), ",")
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
}
