package yaml_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/fuzzytree/partition"
	"github.com/pbanos/fuzzytree/partition/yaml"
)

const tennisMetadata = `
attributes:
- name: Outlook
  partition: crisp
  terms: [Sunny, Overcast, Rain]
- name: Temperature
  partition: points
  terms: [Cold, Mild, Hot]
  points: [10, 20, 30]
- name: Humidity
  partition: percentile
  terms: [Low, High]
- name: Plan
  partition: crisp
  terms: ["Yes", "No"]
`

func TestReadSpecs(t *testing.T) {
	specs, err := yaml.ReadSpecs([]byte(tennisMetadata))
	require.NoError(t, err)
	want := []partition.Spec{
		{Name: "Outlook", Strategy: partition.StrategyCrisp, Terms: []string{"Sunny", "Overcast", "Rain"}},
		{Name: "Temperature", Strategy: partition.StrategyPoints, Terms: []string{"Cold", "Mild", "Hot"}, Points: []float64{10, 20, 30}},
		{Name: "Humidity", Strategy: partition.StrategyPercentile, Terms: []string{"Low", "High"}},
		{Name: "Plan", Strategy: partition.StrategyCrisp, Terms: []string{"Yes", "No"}},
	}
	if diff := cmp.Diff(want, specs); diff != "" {
		t.Errorf("ReadSpecs mismatch (-want +got):\n%s", diff)
	}
}

func TestReadSpecsErrors(t *testing.T) {
	for name, md := range map[string]string{
		"empty":     "attributes: []",
		"malformed": "attributes: [",
		"duplicate": "attributes:\n- {name: A, partition: crisp, terms: [x]}\n- {name: A, partition: crisp, terms: [y]}",
		"invalid":   "attributes:\n- {name: A, partition: points, terms: [x, y], points: [1]}",
	} {
		_, err := yaml.ReadSpecs([]byte(md))
		assert.Error(t, err, name)
	}
}

func TestWriteSpecsRoundTrip(t *testing.T) {
	specs, err := yaml.ReadSpecs([]byte(tennisMetadata))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, yaml.WriteSpecs(buf, specs))
	again, err := yaml.ReadSpecs(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, specs, again)

	path := filepath.Join(t.TempDir(), "fitted.yml")
	require.NoError(t, yaml.WriteSpecsToFile(path, specs))
	fromFile, err := yaml.ReadSpecsFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, specs, fromFile)

	_, err = yaml.ReadSpecsFromFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
