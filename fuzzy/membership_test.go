package fuzzy_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/fuzzytree/fuzzy"
)

func TestMembershipAndSameAttribute(t *testing.T) {
	a := fuzzy.NewMembership("Outlook", "Sunny", []float64{1, 0.5, 0})
	b := fuzzy.NewMembership("Outlook", "Rain", []float64{0.2, 0.7, 1})
	m, err := a.And(b)
	require.NoError(t, err)
	assert.Equal(t, "Outlook", m.Attribute)
	assert.Equal(t, "Sunny & Rain", m.Label)
	assert.Equal(t, []float64{0.2, 0.5, 0}, m.Values)
}

func TestMembershipOrDifferentAttributes(t *testing.T) {
	a := fuzzy.NewMembership("Outlook", "Sunny", []float64{1, 0.5, 0})
	b := fuzzy.NewMembership("Wind", "Weak", []float64{0.2, 0.7, 1})
	m, err := a.Or(b)
	require.NoError(t, err)
	assert.Equal(t, fuzzy.AmbiguousAttribute, m.Attribute)
	assert.Equal(t, "Outlook(Sunny) | Wind(Weak)", m.Label)
	assert.Equal(t, []float64{1, 0.7, 1}, m.Values)
}

func TestMembershipLengthMismatch(t *testing.T) {
	a := fuzzy.NewMembership("A", "x", []float64{1, 0})
	b := fuzzy.NewMembership("A", "y", []float64{1, 0, 1})
	_, err := a.And(b)
	assert.True(t, errors.Is(err, fuzzy.ErrLengthMismatch))
	_, err = a.Or(b)
	assert.True(t, errors.Is(err, fuzzy.ErrLengthMismatch))
	_, err = fuzzy.Subsethood(a, b)
	assert.True(t, errors.Is(err, fuzzy.ErrLengthMismatch))
}

func TestMembershipNot(t *testing.T) {
	m := fuzzy.NewMembership("A", "x", []float64{1, 0.25, 0}).Not()
	assert.Equal(t, "not(x)", m.Label)
	assert.Equal(t, []float64{0, 0.75, 1}, m.Values)
}

func TestMembershipLawsHold(t *testing.T) {
	a := fuzzy.NewMembership("A", "x", []float64{0.1, 0.6, 0.9, 0})
	b := fuzzy.NewMembership("A", "y", []float64{0.5, 0.3, 1, 0.2})

	ab, err := a.And(b)
	require.NoError(t, err)
	ba, err := b.And(a)
	require.NoError(t, err)
	assert.Equal(t, ab.Values, ba.Values)

	aa, err := a.And(a)
	require.NoError(t, err)
	assert.Equal(t, a.Values, aa.Values)

	// De Morgan: not(a & b) == not(a) | not(b)
	left := ab.Not()
	right, err := a.Not().Or(b.Not())
	require.NoError(t, err)
	assert.InDeltaSlice(t, left.Values, right.Values, 1e-12)
}

func TestSubsethood(t *testing.T) {
	a := fuzzy.NewMembership("A", "x", []float64{1, 0.5, 0.5})
	b := fuzzy.NewMembership("B", "y", []float64{0.5, 1, 0})
	s, err := fuzzy.Subsethood(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/2.0, s, 1e-12)

	self, err := fuzzy.Subsethood(a, a)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, self, 1e-12)
}

func TestSubsethoodDegenerate(t *testing.T) {
	a := fuzzy.NewMembership("A", "x", []float64{0, 0})
	b := fuzzy.NewMembership("B", "y", []float64{0.5, 1})
	_, err := fuzzy.Subsethood(a, b)
	assert.True(t, errors.Is(err, fuzzy.ErrDegenerateMass))
}

func TestVagueness(t *testing.T) {
	crisp := fuzzy.NewMembership("A", "x", []float64{1, 0, 1})
	assert.Equal(t, 0.0, crisp.Vagueness())

	half := fuzzy.NewMembership("A", "x", []float64{0.5, 0.5})
	assert.InDelta(t, math.Ln2, half.Vagueness(), 1e-12)
}

func TestMembershipMaxAndSum(t *testing.T) {
	m := fuzzy.NewMembership("A", "x", []float64{0.2, 0.9, 0.4})
	assert.InDelta(t, 1.5, m.Sum(), 1e-12)
	assert.Equal(t, 0.9, m.Max())
	assert.Equal(t, 0.0, fuzzy.NewMembership("A", "x", nil).Max())
}
