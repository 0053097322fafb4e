package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCols_RightSuffix(t *testing.T) {
	cols := Cols("NAME", "MATCH>")
	assert.Equal(t, []Column{{Title: "NAME"}, {Title: "MATCH", Right: true}}, cols)
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(Cols("NAME", "EXP>"), [][]string{
		{"Sarah Chen", "12y"},
		{"Amanda Johnson", "7y"},
	}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, lines[1], "─")
	assert.True(t, strings.HasSuffix(lines[2], "12y"))
	assert.True(t, strings.HasSuffix(lines[3], " 7y"))
	assert.Equal(t, len([]rune(lines[2])), len([]rune(lines[3])))
}

func TestRenderTable_ShortRowsPadded(t *testing.T) {
	out := stripANSI(RenderTable(Cols("A", "B"), [][]string{{"x"}}))
	assert.Contains(t, out, "x")
	assert.Empty(t, RenderTable(nil, nil))
}
