package cli

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoiceValue(t *testing.T) {
	var format string
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(newChoiceValue(&format, "yaml", "yaml", "json"), "format", "")

	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, "yaml", format)

	require.NoError(t, fs.Parse([]string{"--format", " JSON "}))
	assert.Equal(t, "json", format)

	err := fs.Parse([]string{"--format", "pptx"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of yaml, json")
	assert.Equal(t, "json", format)
}
