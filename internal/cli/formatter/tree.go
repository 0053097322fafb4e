package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tender/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one row of a stage tracker or deck outline.
type TreeItem struct {
	Title  string
	Number int  // shown as "12." before the title when > 0
	Nested bool // drawn under the previous top-level row
	Last   bool // last nested row of its group
	Status domain.StageStatus
	Badge  string
}

// RenderTree renders items one per line. Nested rows get box-drawing
// connectors and badges line up in a column after the widest row.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}
	rows := make([]string, len(items))
	width := 0
	for i, it := range items {
		rows[i] = treeRow(it)
		width = max(width, lipgloss.Width(rows[i]))
	}

	pad := lipgloss.NewStyle().Width(width)
	var b strings.Builder
	for i, it := range items {
		if it.Badge == "" {
			b.WriteString(rows[i])
		} else {
			b.WriteString(pad.Render(rows[i]) + "  " + StyleBlue.Render("[ "+it.Badge+" ]"))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func treeRow(it TreeItem) string {
	var prefix string
	if it.Nested {
		prefix = "├─ "
		if it.Last {
			prefix = "└─ "
		}
	}
	title := it.Title
	if it.Number > 0 {
		title = StyleDim.Render(fmt.Sprintf("%2d. ", it.Number)) + title
	}
	switch it.Status {
	case domain.StageCompleted:
		return prefix + StyleGreen.Render("✔ ") + Dim(title)
	case domain.StageInProgress:
		return prefix + StyleYellowBold.Render("▶ "+title)
	}
	return prefix + title
}
