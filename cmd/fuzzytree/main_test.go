package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/fuzzytree/internal/tennis"
)

const tennisMetadata = `attributes:
- name: Outlook
  partition: crisp
  terms: [Sunny, Overcast, Rain]
- name: Temperature
  partition: crisp
  terms: [Hot, Mild, Cool]
- name: Humidity
  partition: crisp
  terms: [High, Normal]
- name: Wind
  partition: crisp
  terms: [Weak, Strong]
- name: Plan
  partition: crisp
  terms: ["Yes", "No"]
`

func writeTennisFiles(t *testing.T, dir string) (string, string) {
	var b strings.Builder
	names := make([]string, len(tennis.Attributes))
	for i, a := range tennis.Attributes {
		names[i] = a.Name
	}
	b.WriteString(strings.Join(names, ",") + "\n")
	for _, r := range tennis.Rows {
		b.WriteString(strings.Join(r, ",") + "\n")
	}
	data := filepath.Join(dir, "tennis.csv")
	require.NoError(t, os.WriteFile(data, []byte(b.String()), 0o644))
	metadata := filepath.Join(dir, "tennis.yml")
	require.NoError(t, os.WriteFile(metadata, []byte(tennisMetadata), 0o644))
	return data, metadata
}

func execute(t *testing.T, args ...string) string {
	out := &bytes.Buffer{}
	cmd := cliParser()
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute(), out.String())
	return out.String()
}

func TestGrowShowAndTest(t *testing.T) {
	dir := t.TempDir()
	data, metadata := writeTennisFiles(t, dir)
	treeFile := filepath.Join(dir, "tree.json")
	fitted := filepath.Join(dir, "fitted.yml")

	execute(t, "grow", "-i", data, "-m", metadata, "-c", "Plan", "-o", treeFile, "--fitted", fitted, "--workers", "2")
	require.FileExists(t, treeFile)
	require.FileExists(t, fitted)

	rulesFile := filepath.Join(dir, "rules.txt")
	execute(t, "tree", "-t", treeFile, "-f", "rules", "-o", rulesFile)
	rules, err := os.ReadFile(rulesFile)
	require.NoError(t, err)
	assert.Equal(t, tennis.Tree().Rules().String(), string(rules))

	dotFile := filepath.Join(dir, "tree.dot")
	execute(t, "tree", "-t", treeFile, "-f", "dot", "-o", dotFile)
	dot, err := os.ReadFile(dotFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(dot), "digraph G {"))

	out := execute(t, "test", "-t", treeFile, "-m", fitted, "-i", data)
	assert.Contains(t, out, "0.928571 accuracy over 14 observations")

	classification := filepath.Join(dir, "classification.csv")
	execute(t, "classify", "-t", treeFile, "-m", fitted, "-i", data, "-o", classification)
	csv, err := os.ReadFile(classification)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(csv)), "\n")
	require.Len(t, lines, len(tennis.Rows)+1)
	assert.Equal(t, "observation,Yes,No", lines[0])
	assert.Equal(t, "0,0,1", lines[1])
}

func TestSetCopiesBetweenFormats(t *testing.T) {
	dir := t.TempDir()
	data, metadata := writeTennisFiles(t, dir)
	db := filepath.Join(dir, "tennis.db")
	copied := filepath.Join(dir, "copy.csv")

	execute(t, "set", "-i", data, "-m", metadata, "-o", db)
	execute(t, "set", "-i", db, "-m", metadata, "-o", copied)

	original, err := os.ReadFile(data)
	require.NoError(t, err)
	result, err := os.ReadFile(copied)
	require.NoError(t, err)
	assert.Equal(t, string(original), string(result))
}

func TestValidation(t *testing.T) {
	cmd := cliParser()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"grow", "-m", "metadata.yml"})
	assert.EqualError(t, cmd.Execute(), "required class flag was not set")

	cmd = cliParser()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"tree", "-f", "svg"})
	assert.EqualError(t, cmd.Execute(), `unknown format "svg"`)
}

func TestVersion(t *testing.T) {
	assert.Contains(t, execute(t, "version"), "v0.1.0")
}
