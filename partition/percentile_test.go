package partition_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/fuzzytree/fuzzy"
	"github.com/pbanos/fuzzytree/partition"
)

func TestPercentile(t *testing.T) {
	values := []float64{9, 1, 8, 2, 7, 3, 6, 4, 5}
	fz, fv, err := partition.Percentile(values, "X", []string{"low", "high"})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{11.0 / 3.0, 19.0 / 3.0}, fz.Points, 1e-12)
	assert.Equal(t, 9, fv.Len())
}

func TestPercentileDropsCoincidentTerms(t *testing.T) {
	terms := []string{"a", "b", "c", "d"}
	fz, fv, err := partition.Percentile([]float64{1, 1, 2, 1, 1}, "X", terms)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d"}, fz.Terms)
	assert.Equal(t, []string{"a", "d"}, fv.Terms())
	assert.Equal(t, []float64{1, 2}, fz.Points)
	assert.Equal(t, []string{"a", "b", "c", "d"}, terms)
}

func TestPercentileConstant(t *testing.T) {
	fz, fv, err := partition.Percentile([]float64{5, 5, 5}, "X", []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5}, fz.Points)
	assert.Equal(t, []float64{1, 1}, fv.Value(0).Degrees())
}

func TestPercentileErrors(t *testing.T) {
	_, _, err := partition.Percentile(nil, "X", []string{"a", "b"})
	assert.True(t, errors.Is(err, fuzzy.ErrInvalidOperand))
	_, _, err = partition.Percentile([]float64{1}, "X", []string{"a"})
	assert.True(t, errors.Is(err, fuzzy.ErrDimensionMismatch))
}
