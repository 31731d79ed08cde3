package ambiguity_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/fuzzytree/ambiguity"
	"github.com/pbanos/fuzzytree/fuzzy"
	"github.com/pbanos/fuzzytree/internal/tennis"
)

func variable(t *testing.T, s *fuzzy.Set, name string) *fuzzy.Variable {
	fv, err := s.Variable(name)
	require.NoError(t, err)
	return fv
}

func TestClassificationOnTennis(t *testing.T) {
	s := tennis.Set()
	class := variable(t, s, tennis.RHS)
	want := map[string]float64{
		"Outlook":     0.33007008598092635,
		"Temperature": 0.41258760747615786,
		"Humidity":    0.31769245775664157,
		"Wind":        0.4290911117752042,
	}
	for _, a := range tennis.LHS {
		got, err := ambiguity.Classification(class, variable(t, s, a))
		require.NoError(t, err, a)
		assert.InDelta(t, want[a], got, 1e-12, a)
	}
}

func TestRawEvidence(t *testing.T) {
	s := tennis.Set()
	class := variable(t, s, tennis.RHS)
	sunny, err := s.Mu("Outlook:Sunny")
	require.NoError(t, err)

	raw, err := ambiguity.RawEvidence(class, sunny)
	require.NoError(t, err)
	assert.Equal(t, []string{"Yes", "No"}, raw.Terms())
	assert.InDeltaSlice(t, []float64{0.4, 0.6}, raw.Degrees(), 1e-12)

	ev, err := ambiguity.Evidence(class, sunny)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2.0 / 3.0, 1}, ev.Degrees(), 1e-12)
}

func TestEvidenceDegenerate(t *testing.T) {
	class := variable(t, tennis.Set(), tennis.RHS)
	empty := fuzzy.NewMembership("Outlook", "Fog", make([]float64, len(tennis.Rows)))
	_, err := ambiguity.RawEvidence(class, empty)
	assert.True(t, errors.Is(err, fuzzy.ErrDegenerateMass))
	_, err = ambiguity.Evidence(class, empty)
	assert.True(t, errors.Is(err, fuzzy.ErrDegenerateMass))

	_, err = ambiguity.Evidence(nil, empty)
	assert.True(t, errors.Is(err, fuzzy.ErrInvalidOperand))
}

func TestClassificationUnconditionedMatchesFullMembership(t *testing.T) {
	s := tennis.Set()
	class := variable(t, s, tennis.RHS)
	all := make([]float64, len(tennis.Rows))
	for i := range all {
		all[i] = 1
	}
	mu := fuzzy.NewMembership("*", "all", all)
	for _, a := range tennis.LHS {
		plain, err := ambiguity.Classification(class, variable(t, s, a))
		require.NoError(t, err)
		given, err := ambiguity.ClassificationGiven(class, variable(t, s, a), mu)
		require.NoError(t, err)
		assert.InDelta(t, plain, given, 1e-12, a)
	}
}

func TestClassificationGivenZeroMassTerm(t *testing.T) {
	s := tennis.Set()
	class := variable(t, s, tennis.RHS)
	overcast, err := s.Mu("Outlook:Overcast")
	require.NoError(t, err)
	// Every overcast observation is Yes, so Plan:No has no mass left.
	_, err = ambiguity.ClassificationGiven(class, class, overcast)
	assert.True(t, errors.Is(err, fuzzy.ErrDegenerateMass))
}

func TestClassificationCrispPredictor(t *testing.T) {
	s := tennis.Set()
	class := variable(t, s, tennis.RHS)
	a, err := ambiguity.Classification(class, class)
	require.NoError(t, err)
	assert.Equal(t, 0.0, a)
	assert.False(t, math.IsNaN(a))
}
