package partition_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/fuzzytree/fuzzy"
	"github.com/pbanos/fuzzytree/partition"
)

func TestShoulders(t *testing.T) {
	left := partition.NewLeftShoulder(2, 4)
	right := partition.NewRightShoulder(2, 4)
	for _, c := range []struct{ x, left, right float64 }{
		{1, 1, 0},
		{2, 1, 0},
		{3, 0.5, 0.5},
		{4, 0, 1},
		{5, 0, 1},
	} {
		assert.Equal(t, c.left, left.Degree(c.x), "left at %v", c.x)
		assert.Equal(t, c.right, right.Degree(c.x), "right at %v", c.x)
	}
}

func TestTriangular(t *testing.T) {
	f := partition.NewTriangular(0, 5, 10)
	for _, c := range []struct{ x, want float64 }{
		{-1, 0}, {0, 0}, {2.5, 0.5}, {5, 1}, {7.5, 0.5}, {10, 0}, {11, 0},
	} {
		assert.Equal(t, c.want, f.Degree(c.x), "at %v", c.x)
	}
}

func TestDegenerateBreakpointsAreSteps(t *testing.T) {
	left := partition.NewLeftShoulder(3, 3)
	right := partition.NewRightShoulder(3, 3)
	assert.Equal(t, 1.0, left.Degree(2))
	assert.Equal(t, 1.0, left.Degree(3))
	assert.Equal(t, 0.0, left.Degree(4))
	assert.Equal(t, 0.0, right.Degree(2))
	assert.Equal(t, 1.0, right.Degree(3))
	assert.Equal(t, 1.0, right.Degree(4))

	tri := partition.NewTriangular(3, 3, 5)
	assert.Equal(t, 1.0, tri.Degree(3))
	assert.Equal(t, 0.5, tri.Degree(4))
}

func TestIndicator(t *testing.T) {
	f := partition.NewIndicator("Sunny")
	d, err := f.DegreeOf("Sunny")
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
	d, err = f.DegreeOf("Rain")
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
	d, err = f.DegreeOf(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	numeric := partition.NewIndicator("3")
	assert.Equal(t, 1.0, numeric.Degree(3))
	assert.Equal(t, 0.0, numeric.Degree(3.5))
}

func TestDegreeOf(t *testing.T) {
	f := partition.NewLeftShoulder(0, 10)
	d, err := f.DegreeOf("5")
	require.NoError(t, err)
	assert.Equal(t, 0.5, d)
	d, err = f.DegreeOf(5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, d)
	_, err = f.DegreeOf("five")
	assert.True(t, errors.Is(err, fuzzy.ErrInvalidOperand))
	_, err = f.DegreeOf(true)
	assert.True(t, errors.Is(err, fuzzy.ErrInvalidOperand))
}

func TestFunctionValidate(t *testing.T) {
	assert.NoError(t, partition.NewTriangular(1, 2, 3).Validate())
	assert.NoError(t, partition.NewIndicator("x").Validate())
	err := partition.Function{Kind: partition.LeftShoulder, Params: []float64{1}}.Validate()
	assert.True(t, errors.Is(err, fuzzy.ErrDimensionMismatch))
	err = partition.Function{Kind: "bell"}.Validate()
	assert.True(t, errors.Is(err, fuzzy.ErrInvalidOperand))
}
