package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column is a table column. Right aligns numeric columns such as scores.
type Column struct {
	Title string
	Right bool
}

// Cols builds left-aligned columns; a title ending in ">" is right-aligned.
func Cols(titles ...string) []Column {
	cols := make([]Column, len(titles))
	for i, t := range titles {
		if rest, ok := strings.CutSuffix(t, ">"); ok {
			cols[i] = Column{Title: rest, Right: true}
			continue
		}
		cols[i] = Column{Title: t}
	}
	return cols
}

const colGap = "  "

// RenderTable lays rows out under a header and a rule. Widths are visible
// widths, so styled cells line up.
func RenderTable(cols []Column, rows [][]string) string {
	if len(cols) == 0 {
		return ""
	}

	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = lipgloss.Width(c.Title)
	}
	for _, row := range rows {
		for i := 0; i < len(cols) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	cell := func(i int, s string) string {
		style := lipgloss.NewStyle().Width(widths[i])
		if cols[i].Right {
			style = style.Align(lipgloss.Right)
		}
		return style.Render(s)
	}

	var b strings.Builder
	line := make([]string, len(cols))
	for i, c := range cols {
		line[i] = cell(i, StyleHeader.Render(c.Title))
	}
	b.WriteString(strings.TrimRight(strings.Join(line, colGap), " ") + "\n")

	for i, w := range widths {
		line[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	b.WriteString(strings.Join(line, colGap) + "\n")

	for _, row := range rows {
		for i := range cols {
			s := ""
			if i < len(row) {
				s = row[i]
			}
			line[i] = cell(i, s)
		}
		b.WriteString(strings.TrimRight(strings.Join(line, colGap), " ") + "\n")
	}
	return b.String()
}
