package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitShellArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "single word",
			input: "projects",
			want:  []string{"projects"},
		},
		{
			name:  "double quoted query",
			input: `profiles "cloud architect"`,
			want:  []string{"profiles", "cloud architect"},
		},
		{
			name:  "single quoted query",
			input: "missions 'ci/cd pipeline'",
			want:  []string{"missions", "ci/cd pipeline"},
		},
		{
			name:  "flags with quoted value",
			input: `project new --title "Cloud Migration" --client Acme`,
			want:  []string{"project", "new", "--title", "Cloud Migration", "--client", "Acme"},
		},
		{
			name:  "escaped space",
			input: `project new --file my\ rfp.pdf`,
			want:  []string{"project", "new", "--file", "my rfp.pdf"},
		},
		{
			name:  "empty quoted arg",
			input: `profiles ""`,
			want:  []string{"profiles", ""},
		},
		{
			name:    "unterminated quote",
			input:   `profiles "oops`,
			wantErr: true,
		},
		{
			name:    "unterminated escape",
			input:   `profiles hi\`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := splitShellArgs(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrepareShellCobraArgs(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		active string
		want   []string
	}{
		{"deck gets active project", []string{"deck", "export"}, "p-1", []string{"deck", "export", "--project", "p-1"}},
		{"explicit project kept", []string{"deck", "export", "--project", "TEC01"}, "p-1", []string{"deck", "export", "--project", "TEC01"}},
		{"explicit short flag kept", []string{"deck", "show", "-p", "TEC01"}, "p-1", []string{"deck", "show", "-p", "TEC01"}},
		{"equals form kept", []string{"deck", "show", "--project=TEC01"}, "p-1", []string{"deck", "show", "--project=TEC01"}},
		{"no active project", []string{"deck", "export"}, "", []string{"deck", "export"}},
		{"other groups untouched", []string{"project", "list"}, "p-1", []string{"project", "list"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, prepareShellCobraArgs(tt.args, tt.active))
		})
	}
}
