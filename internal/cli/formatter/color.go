package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tender/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ScoreStyle colors a match score: green from 0.85, yellow from 0.75.
func ScoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 0.85:
		return StyleGreen
	case score >= 0.75:
		return StyleYellow
	default:
		return StyleDim
	}
}

// ScoreBadge renders a score as a colored percentage such as "95% match".
func ScoreBadge(score float64) string {
	return ScoreStyle(score).Render(fmt.Sprintf("%d%% match", int(score*100+0.5)))
}

// StageIcon returns the tracker glyph for a stage status.
func StageIcon(status domain.StageStatus) string {
	switch status {
	case domain.StageCompleted:
		return StyleGreen.Render("✔")
	case domain.StageInProgress:
		return StyleYellowBold.Render("▶")
	default:
		return StyleDim.Render("○")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
