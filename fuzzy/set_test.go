package fuzzy_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/fuzzytree/fuzzy"
)

func outlook(t *testing.T) *fuzzy.Variable {
	fv := fuzzy.NewVariable("Outlook")
	require.NoError(t, fv.Add("Sunny", []float64{1, 0, 0}))
	require.NoError(t, fv.Add("Overcast", []float64{0, 1, 0}))
	require.NoError(t, fv.Add("Rain", []float64{0, 0, 1}))
	return fv
}

func TestVariable(t *testing.T) {
	fv := outlook(t)
	assert.Equal(t, "Outlook", fv.Name())
	assert.Equal(t, 3, fv.Len())
	assert.Equal(t, []string{"Sunny", "Overcast", "Rain"}, fv.Terms())

	m, err := fv.Term("Rain")
	require.NoError(t, err)
	assert.Equal(t, "Outlook", m.Attribute)
	assert.Equal(t, "Rain", m.Label)
	assert.Equal(t, []float64{0, 0, 1}, m.Values)

	v := fv.Value(1)
	assert.Equal(t, []float64{0, 1, 0}, v.Degrees())
	assert.Len(t, fv.Values(), 3)
	assert.Len(t, fv.Memberships(), 3)
}

func TestVariableErrors(t *testing.T) {
	fv := outlook(t)
	assert.True(t, errors.Is(fv.Add("Sunny", []float64{1, 1, 1}), fuzzy.ErrDuplicateTerm))
	assert.True(t, errors.Is(fv.Add("Fog", []float64{1}), fuzzy.ErrLengthMismatch))
	_, err := fv.Term("Fog")
	assert.True(t, errors.Is(err, fuzzy.ErrUnknownTerm))
}

func TestVariableAmbiguity(t *testing.T) {
	a, err := outlook(t).Ambiguity()
	require.NoError(t, err)
	assert.Equal(t, 0.0, a)

	fv := fuzzy.NewVariable("Temp")
	require.NoError(t, fv.Add("Low", []float64{1, 0.5}))
	require.NoError(t, fv.Add("High", []float64{1, 1}))
	a, err = fv.Ambiguity()
	require.NoError(t, err)
	assert.InDelta(t, (0.6931471805599453+0.34657359027997264)/2, a, 1e-12)
}

func TestSet(t *testing.T) {
	wind := fuzzy.NewVariable("Wind")
	require.NoError(t, wind.Add("Weak", []float64{1, 0.5, 0}))
	require.NoError(t, wind.Add("Strong", []float64{0, 0.5, 1}))

	s, err := fuzzy.NewSet(outlook(t), wind)
	require.NoError(t, err)
	assert.Equal(t, []string{"Outlook", "Wind"}, s.Attributes())
	assert.Equal(t, 3, s.Len())

	m, err := s.Mu("Wind:Weak")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0.5, 0}, m.Values)

	m, err = s.Membership("Outlook", "Overcast")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0}, m.Values)

	c, err := s.Conjunction([2]string{"Outlook", "Overcast"}, [2]string{"Wind", "Weak"})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 0}, c.Values)

	a, err := s.Ambiguity("Outlook")
	require.NoError(t, err)
	assert.Equal(t, 0.0, a)
}

func TestSetErrors(t *testing.T) {
	s, err := fuzzy.NewSet(outlook(t))
	require.NoError(t, err)

	short := fuzzy.NewVariable("Wind")
	require.NoError(t, short.Add("Weak", []float64{1}))
	assert.True(t, errors.Is(s.Add(short), fuzzy.ErrLengthMismatch))
	assert.True(t, errors.Is(s.Add(outlook(t)), fuzzy.ErrDuplicateAttribute))

	_, err = s.Variable("Humidity")
	assert.True(t, errors.Is(err, fuzzy.ErrUnknownAttribute))
	_, err = s.Mu("Outlook")
	assert.True(t, errors.Is(err, fuzzy.ErrInvalidOperand))
	_, err = s.Mu("Outlook:Fog")
	assert.True(t, errors.Is(err, fuzzy.ErrUnknownTerm))
	_, err = s.Conjunction()
	assert.True(t, errors.Is(err, fuzzy.ErrInvalidOperand))
}
