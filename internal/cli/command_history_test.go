package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandHistory_MissingFileStartsEmpty(t *testing.T) {
	h := loadCommandHistory(filepath.Join(t.TempDir(), "nope", "history"))
	assert.Empty(t, h.lines)
	_, ok := h.prev()
	assert.False(t, ok)
}

func TestCommandHistory_ReadsAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(path, []byte("projects\n\nuse TEC01\n"), 0o644))

	h := loadCommandHistory(path)
	assert.Equal(t, []string{"projects", "use TEC01"}, h.lines)

	h.add("  profiles cloud  ")
	h.add("   ")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "projects\n\nuse TEC01\nprofiles cloud\n", string(data))
}

func TestCommandHistory_Recall(t *testing.T) {
	h := loadCommandHistory("")
	h.add("projects")
	h.add("use TEC01")

	line, ok := h.prev()
	require.True(t, ok)
	assert.Equal(t, "use TEC01", line)
	line, _ = h.prev()
	assert.Equal(t, "projects", line)
	_, ok = h.prev()
	assert.False(t, ok)

	assert.Equal(t, "use TEC01", h.next())
	assert.Equal(t, "", h.next())
}

func TestCommandHistory_KeepsNewestEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	f, err := os.Create(path)
	require.NoError(t, err)
	for i := range maxHistoryLines + 20 {
		fmt.Fprintf(f, "cmd %d\n", i)
	}
	require.NoError(t, f.Close())

	h := loadCommandHistory(path)
	require.Len(t, h.lines, maxHistoryLines)
	assert.Equal(t, "cmd 20", h.lines[0])
}

func TestCommandHistory_InMemoryWritesNothing(t *testing.T) {
	h := loadCommandHistory("")
	h.add("demo")
	assert.Equal(t, []string{"demo"}, h.lines)
}
