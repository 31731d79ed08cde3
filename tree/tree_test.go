package tree_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/fuzzytree/fuzzy"
	"github.com/pbanos/fuzzytree/internal/tennis"
	"github.com/pbanos/fuzzytree/tree"
)

func TestStructure(t *testing.T) {
	tr := tennis.Tree()
	assert.Equal(t, 8, tr.Len())
	assert.Equal(t, "Humidity", tr.Root().Name())
	assert.Equal(t, -1, tr.Root().Parent)
	assert.Equal(t, []int{1, 2}, tr.Root().Children)

	var keys []string
	for _, l := range tr.Leaves() {
		keys = append(keys, l.Key())
	}
	assert.Equal(t, []string{
		"Humidity:Normal;Yes",
		"Humidity:High;Outlook:Sunny;No",
		"Humidity:High;Outlook:Overcast;Yes",
		"Humidity:High;Outlook:Rain;Wind:Weak;Yes",
		"Humidity:High;Outlook:Rain;Wind:Strong;No",
	}, keys)

	wind := tr.Node(5)
	require.NotNil(t, wind)
	assert.True(t, wind.Uses("Wind"))
	assert.True(t, wind.Uses("Humidity"))
	assert.False(t, wind.Uses("Temperature"))
	assert.Nil(t, tr.Node(42))
}

func TestAddErrors(t *testing.T) {
	tr := tree.New(0.1, 0.7, []string{"A"}, "C", []string{"x", "y"}, nil)
	_, err := tr.AddLeaf(0, "t", "x", 1)
	assert.ErrorIs(t, err, tree.ErrUnknownNode)

	root, err := tr.AddRoot("A", 0.5)
	require.NoError(t, err)
	_, err = tr.AddRoot("A", 0.5)
	assert.ErrorIs(t, err, tree.ErrInvalidStructure)

	leaf, err := tr.AddLeaf(root, "t", "x", 1)
	require.NoError(t, err)
	_, err = tr.AddDecision(leaf, "u", "A", 0.1)
	assert.ErrorIs(t, err, tree.ErrInvalidStructure)
}

func TestTraverse(t *testing.T) {
	tr := tennis.Tree()
	var topdown, bottomup []int
	collect := func(ids *[]int) func(context.Context, *tree.Node) error {
		return func(_ context.Context, n *tree.Node) error {
			*ids = append(*ids, n.ID)
			return nil
		}
	}
	require.NoError(t, tr.Traverse(context.Background(), false, collect(&topdown)))
	require.NoError(t, tr.Traverse(context.Background(), true, collect(&bottomup)))
	assert.Equal(t, []int{0, 1, 3, 4, 5, 6, 7, 2}, topdown)
	assert.Equal(t, []int{3, 4, 6, 7, 5, 1, 2, 0}, bottomup)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, tr.Traverse(ctx, false, collect(&topdown)), context.Canceled)
}

func TestClassify(t *testing.T) {
	tr := tennis.Tree()
	classes, err := tr.Classify(tennis.Set())
	require.NoError(t, err)
	assert.Equal(t, []string{"Yes", "No"}, classes.Terms())

	yes, err := classes.Term("Yes")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 1, 1, 1, 1, 0, 1, 1, 1, 1, 1, 0}, yes.Values)
	no, err := classes.Term("No")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1}, no.Values)
}

func TestClassifyUnmatched(t *testing.T) {
	tr := tree.New(0.1, 0.7, []string{"A"}, "C", []string{"x", "y"}, nil)
	root, err := tr.AddRoot("A", 0.5)
	require.NoError(t, err)
	_, err = tr.AddLeaf(root, "t", "x", 1)
	require.NoError(t, err)

	a := fuzzy.NewVariable("A")
	require.NoError(t, a.Add("t", []float64{0.4, 0}))
	require.NoError(t, a.Add("u", []float64{0.6, 1}))
	s, err := fuzzy.NewSet(a)
	require.NoError(t, err)

	classes, err := tr.Classify(s)
	require.NoError(t, err)
	x, _ := classes.Term("x")
	y, _ := classes.Term("y")
	assert.Equal(t, []float64{0.4, 0}, x.Values)
	assert.Equal(t, []float64{0, 0}, y.Values)
}

func TestPredict(t *testing.T) {
	tr := tennis.Tree()
	humidity := fuzzy.NewValue()
	humidity.Set("High", 0.8)
	humidity.Set("Normal", 0.2)
	outlook := fuzzy.NewValue()
	outlook.Set("Sunny", 0.3)
	outlook.Set("Overcast", 0.7)
	outlook.Set("Rain", 0)

	p, err := tr.Predict(map[string]*fuzzy.Value{"Humidity": humidity, "Outlook": outlook})
	require.NoError(t, err)
	class, degree := p.PredictedValue()
	assert.Equal(t, "Yes", class)
	assert.InDelta(t, 0.7, degree, 1e-12)
	assert.InDelta(t, 0.3, p.MembershipOf("No"), 1e-12)

	_, err = tr.Predict(map[string]*fuzzy.Value{})
	assert.ErrorIs(t, err, tree.ErrCannotPredictFromSample)
}

func TestRules(t *testing.T) {
	got := tennis.Tree().Rules().String()
	want := strings.Join([]string{
		"IF (Humidity==Normal) THEN (Plan==Yes): 0.857143",
		"IF (Humidity==High) AND (Outlook==Sunny) THEN (Plan==No): 1.000000",
		"IF (Humidity==High) AND (Outlook==Overcast) THEN (Plan==Yes): 1.000000",
		"IF (Humidity==High) AND (Outlook==Rain) AND (Wind==Weak) THEN (Plan==Yes): 1.000000",
		"IF (Humidity==High) AND (Outlook==Rain) AND (Wind==Strong) THEN (Plan==No): 1.000000",
	}, "\n") + "\n"
	assert.Equal(t, want, got)
}

func TestConfusion(t *testing.T) {
	c, err := tennis.Tree().Confusion(tennis.Set())
	require.NoError(t, err)
	assert.Equal(t, [][]int{{9, 1}, {0, 4}}, c.Counts)
	assert.Equal(t, 1, c.Count("Yes", "No"))
	assert.Equal(t, 0, c.Count("No", "Yes"))
	assert.Equal(t, 0, c.Count("Maybe", "Yes"))
	assert.Equal(t, 14, c.Total())
	assert.InDelta(t, 13.0/14.0, c.Accuracy(), 1e-12)
	assert.Contains(t, c.String(), "predicted\\actual")
}

func TestNewConfusionLengthMismatch(t *testing.T) {
	a := fuzzy.NewVariable("C")
	require.NoError(t, a.Add("x", []float64{1}))
	p := fuzzy.NewVariable("C")
	require.NoError(t, p.Add("x", []float64{1, 0}))
	_, err := tree.NewConfusion(a, p)
	assert.ErrorIs(t, err, fuzzy.ErrLengthMismatch)
}

func TestString(t *testing.T) {
	s := tennis.Tree().String()
	assert.True(t, strings.HasPrefix(s, "[Humidity]\n|\n|__[Humidity == High]\n"), s)
	assert.Contains(t, s, "{ Plan == Yes: 0.857143 }")
	assert.Equal(t, "[empty tree]\n", tree.New(0, 1, nil, "C", nil, nil).String())
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	st := tree.NewMemoryStore()
	tr := tennis.Tree()

	got, err := st.Load(ctx, "tennis")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, st.Save(ctx, "tennis", tr))
	got, err = st.Load(ctx, "tennis")
	require.NoError(t, err)
	assert.Same(t, tr, got)

	require.NoError(t, st.Delete(ctx, "tennis"))
	got, err = st.Load(ctx, "tennis")
	require.NoError(t, err)
	assert.Nil(t, got)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, st.Save(cancelled, "tennis", tr), context.Canceled)
	require.NoError(t, st.Close(ctx))
}
