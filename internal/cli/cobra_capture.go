package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/tender/internal/cli/formatter"
)

// captureCobraOutput runs a command through the Cobra tree and captures output.
// It redirects os.Stdout so that direct fmt.Print calls from Cobra handlers
// are captured instead of writing raw bytes into the Bubbletea alternate screen.
func captureCobraOutput(app *App, args []string, activeProjectID, activeShortID string) string {
	origStdout := os.Stdout
	pr, pw, err := os.Pipe()
	if err != nil {
		return shellError(err)
	}
	os.Stdout = pw

	root := NewRootCmd(app)
	root.SetOut(pw)
	root.SetErr(pw)
	root.SetArgs(prepareShellCobraArgs(args, activeProjectID))
	root.SilenceUsage = true
	root.SilenceErrors = true

	var buf strings.Builder
	done := make(chan struct{})
	go func() {
		io.Copy(&buf, pr)
		close(done)
	}()

	if execErr := root.Execute(); execErr != nil {
		errMsg := execErr.Error()
		fmt.Fprint(pw, shellError(execErr))
		if hint := hintForMissingProject(errMsg, activeShortID); hint != "" {
			fmt.Fprint(pw, "\n"+hint)
		}
		if strings.Contains(errMsg, "unknown command") && len(args) > 1 {
			fmt.Fprint(pw, suggestAlternatives(app, args))
		}
	}

	pw.Close()
	os.Stdout = origStdout
	<-done

	return buf.String()
}

// prepareShellCobraArgs scopes deck commands typed in the command bar to
// the active project unless a project is given explicitly.
func prepareShellCobraArgs(args []string, activeProjectID string) []string {
	if len(args) < 2 || activeProjectID == "" {
		return args
	}
	if !strings.EqualFold(args[0], "deck") {
		return args
	}
	if hasAnyArg(args, "--project", "-p", "--help", "-h") {
		return args
	}
	for _, a := range args {
		if strings.HasPrefix(a, "--project=") {
			return args
		}
	}

	out := make([]string, 0, len(args)+2)
	out = append(out, args...)
	return append(out, "--project", activeProjectID)
}

func hasAnyArg(args []string, wanted ...string) bool {
	for _, arg := range args {
		for _, w := range wanted {
			if arg == w {
				return true
			}
		}
	}
	return false
}

// hintForMissingProject explains how to supply a project when a command
// failed for lack of one.
func hintForMissingProject(errMsg, activeShortID string) string {
	if !strings.Contains(errMsg, `"project"`) && !strings.Contains(errMsg, "project ID is required") {
		return ""
	}
	if activeShortID != "" {
		return formatter.Dim(fmt.Sprintf("Hint: active project is %s, try adding --project %s", activeShortID, activeShortID))
	}
	return formatter.Dim("Hint: set an active project with 'use <id>'")
}

// suggestAlternatives returns cobra's near matches for a mistyped subcommand.
func suggestAlternatives(app *App, args []string) string {
	root := NewRootCmd(app)
	parent, _, err := root.Find(args[:1])
	if err != nil || parent == root {
		return ""
	}
	matches := parent.SuggestionsFor(args[1])
	if len(matches) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n" + formatter.Dim("Did you mean:"))
	for _, match := range matches {
		b.WriteString("\n  " + formatter.StyleGreen.Render(parent.Name()+" "+match))
	}
	return b.String()
}
