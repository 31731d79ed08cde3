package dot_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/fuzzytree/internal/tennis"
	"github.com/pbanos/fuzzytree/tree/dot"
)

func TestWrite(t *testing.T) {
	b := &bytes.Buffer{}
	require.NoError(t, dot.Write(context.Background(), b, tennis.Tree()))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 2+8+7)
	assert.Equal(t, "digraph G {", lines[0])
	assert.Equal(t, `"Humidity" [label="Humidity"]`, lines[1])
	assert.Equal(t, `"Humidity"->"Humidity:High;Outlook" [label="High"]`, lines[2])
	assert.Equal(t, `"Humidity:High;Outlook" [label="Outlook"]`, lines[3])
	assert.Equal(t, `"Humidity:High;Outlook"->"Humidity:High;Outlook:Sunny;No" [label="Sunny"]`, lines[4])
	assert.Equal(t, `"Humidity:Normal;Yes" [label="Yes"]`, lines[len(lines)-2])
	assert.Equal(t, "}", lines[len(lines)-1])
}
