package partition_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/fuzzytree/dataset"
	"github.com/pbanos/fuzzytree/fuzzy"
	"github.com/pbanos/fuzzytree/partition"
)

var weatherSpecs = []partition.Spec{
	{Name: "Outlook", Strategy: partition.StrategyCrisp, Terms: []string{"Sunny", "Rain"}},
	{Name: "Temp", Strategy: partition.StrategyPoints, Terms: []string{"Cold", "Hot"}, Points: []float64{10, 30}},
	{Name: "Humidity", Strategy: partition.StrategyPercentile, Terms: []string{"Dry", "Wet"}},
	{Name: "Plan", Strategy: partition.StrategyCrisp, Terms: []string{"Yes", "No"}},
}

func weatherTable(t *testing.T) *dataset.Table {
	table := dataset.NewTable(partition.Fields(weatherSpecs))
	rows := [][]interface{}{
		{"Sunny", 35.0, 20.0, "Yes"},
		{"Rain", 12.0, 90.0, "No"},
		{"Sunny", 20.0, 40.0, "Yes"},
		{"Rain", nil, 70.0, "No"},
	}
	for _, r := range rows {
		require.NoError(t, table.AppendRow(r))
	}
	return table
}

func TestBuild(t *testing.T) {
	table := weatherTable(t)
	s, fzs, err := partition.Build(table, weatherSpecs, "Plan")
	require.NoError(t, err)
	assert.Equal(t, []string{"Outlook", "Temp", "Humidity", "Plan"}, s.Attributes())
	require.Len(t, fzs, 4)

	temp, err := s.Variable("Temp")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, temp.Value(0).Degrees())
	assert.Equal(t, []float64{0.5, 0.5}, temp.Value(2).Degrees())
	assert.Equal(t, []float64{0, 0}, temp.Value(3).Degrees())

	specs, err := fzs.Specs()
	require.NoError(t, err)
	assert.Equal(t, partition.StrategyPoints, specs[2].Strategy)
	assert.Len(t, specs[2].Points, 2)
	assert.Equal(t, weatherSpecs[0], specs[0])

	again, err := fzs.Apply(table)
	require.NoError(t, err)
	humidity, err := s.Variable("Humidity")
	require.NoError(t, err)
	humidityAgain, err := again.Variable("Humidity")
	require.NoError(t, err)
	assert.Equal(t, humidity.Values(), humidityAgain.Values())

	fz, ok := fzs.Get("Outlook")
	require.True(t, ok)
	assert.Equal(t, "Outlook", fz.Name)
	_, ok = fzs.Get("Wind")
	assert.False(t, ok)
}

func TestBuildErrors(t *testing.T) {
	table := weatherTable(t)
	_, _, err := partition.Build(table, weatherSpecs, "Wind")
	assert.True(t, errors.Is(err, fuzzy.ErrUnknownAttribute))

	specs := append([]partition.Spec(nil), weatherSpecs...)
	specs[3] = partition.Spec{Name: "Plan", Strategy: partition.StrategyOptimize, Terms: []string{"Yes", "No"}}
	_, _, err = partition.Build(table, specs, "Plan")
	assert.True(t, errors.Is(err, fuzzy.ErrInvalidOperand))

	specs[3] = partition.Spec{Name: "Plan", Strategy: "bell", Terms: []string{"Yes", "No"}}
	_, _, err = partition.Build(table, specs, "Plan")
	assert.True(t, errors.Is(err, fuzzy.ErrInvalidOperand))

	// percentile partitions need every value
	specs = append([]partition.Spec(nil), weatherSpecs...)
	specs[1] = partition.Spec{Name: "Temp", Strategy: partition.StrategyPercentile, Terms: []string{"Cold", "Hot"}}
	_, _, err = partition.Build(table, specs, "Plan")
	assert.True(t, errors.Is(err, fuzzy.ErrInvalidOperand))
}

func TestSpecValidate(t *testing.T) {
	for _, s := range weatherSpecs {
		assert.NoError(t, s.Validate(), s.Name)
	}
	bad := partition.Spec{Name: "Temp", Strategy: partition.StrategyPoints, Terms: []string{"a", "b"}, Points: []float64{1}}
	assert.True(t, errors.Is(bad.Validate(), fuzzy.ErrDimensionMismatch))
	bad = partition.Spec{Name: "Temp", Strategy: partition.StrategyPercentile, Terms: []string{"a"}}
	assert.True(t, errors.Is(bad.Validate(), fuzzy.ErrDimensionMismatch))
	bad = partition.Spec{Strategy: partition.StrategyCrisp, Terms: []string{"a"}}
	assert.True(t, errors.Is(bad.Validate(), fuzzy.ErrInvalidOperand))
}

func TestFromSpecs(t *testing.T) {
	table := weatherTable(t)
	s, fzs, err := partition.Build(table, weatherSpecs, "Plan")
	require.NoError(t, err)
	specs, err := fzs.Specs()
	require.NoError(t, err)

	rebuilt, err := partition.FromSpecs(specs)
	require.NoError(t, err)
	again, err := rebuilt.Apply(table)
	require.NoError(t, err)
	for _, a := range s.Attributes() {
		want, err := s.Variable(a)
		require.NoError(t, err)
		got, err := again.Variable(a)
		require.NoError(t, err)
		assert.Equal(t, want.Values(), got.Values(), a)
	}

	_, err = partition.FromSpecs(weatherSpecs)
	assert.True(t, errors.Is(err, fuzzy.ErrInvalidOperand))
}
