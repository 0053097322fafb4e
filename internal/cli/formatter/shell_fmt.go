package formatter

import (
	"fmt"
	"strings"
)

// FormatWelcome renders the banner shown when the dashboard is empty.
func FormatWelcome() string {
	var b strings.Builder
	b.WriteString("\n" + StylePurple.Render("  tender") + "\n")
	b.WriteString(StyleDim.Render("  ─────────────────────────────") + "\n\n")
	b.WriteString(StyleDim.Render("  Upload an RFP, pick your team and references, generate the deck.") + "\n\n")
	for _, c := range [][]string{
		{"n", "New project from an RFP document"},
		{":demo", "Load the sample projects"},
		{":help", "Show all commands"},
	} {
		b.WriteString("  " + StyleGreen.Render(fmt.Sprintf("%-14s", c[0])) + StyleDim.Render(c[1]) + "\n")
	}
	return b.String()
}

type helpCategory struct {
	title    string
	commands [][]string
}

func renderHelpCategory(cat helpCategory) string {
	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(cat.title)) + "\n")
	for _, c := range cat.commands {
		fmt.Fprintf(&b, "  %-24s %s\n", StyleGreen.Render(c[0]), StyleDim.Render(c[1]))
	}
	return b.String()
}

// FormatShellHelp renders the command-bar reference.
func FormatShellHelp() string {
	categories := []helpCategory{
		{"Projects", [][]string{
			{"projects", "List all projects"},
			{"new", "Create a project from an RFP document"},
			{"use <id>", "Open a project (short ID or UUID prefix)"},
			{"demo", "Load the sample projects"},
		}},
		{"Proposal wizard", [][]string{
			{"profiles [query]", "Step 1: select expert profiles"},
			{"missions [query]", "Step 2: select reference missions"},
			{"slides", "Step 3: configure the deck"},
			{"preview", "Step 4: page through the slides"},
			{"open <route>", "Jump to /project/<id>/<step>"},
		}},
		{"Deck", [][]string{
			{"generate", "Generate the deck for the active project"},
			{"export [yaml|json]", "Print the slide outline"},
		}},
		{"General", [][]string{
			{"help", "Show this reference"},
			{"quit", "Exit"},
		}},
	}
	var b strings.Builder
	for _, c := range categories {
		b.WriteString(renderHelpCategory(c))
	}
	return b.String()
}
