package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tender/internal/progress"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

func clampUnit(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}

func bar(pct float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := int(clampUnit(pct) * float64(width))
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

// RenderProgress renders a progress bar like [████░░░░]  45%.
// The bar is green from 66%, yellow from 33% and red below.
func RenderProgress(pct float64, width int) string {
	pct = clampUnit(pct)
	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar(pct, width)), pct*100)
}

// RenderCompactBar renders a bracketless bar without a percentage,
// for dense lists. dim renders it in the muted color.
func RenderCompactBar(pct float64, width int, dim bool) string {
	b := bar(pct, width)
	if dim {
		return StyleDim.Render(b)
	}
	return StyleBlue.Render(b)
}

var phaseLabels = map[progress.Phase]string{
	progress.PhaseUploading:  "Uploading",
	progress.PhaseProcessing: "Processing document",
	progress.PhaseGenerating: "Generating slides",
}

// FormatTask renders one line describing a simulated task snapshot.
func FormatTask(s progress.Snapshot, width int) string {
	switch {
	case s.Done() && s.Phase == progress.PhaseGenerating:
		return StyleGreen.Render("✔ ") + fmt.Sprintf("Generated %d slides", s.TotalSlides)
	case s.Done():
		return StyleGreen.Render("✔ ") + "Document processed"
	case s.Phase == progress.PhaseProcessing:
		return StylePurple.Render(spinnerFrames[0]) + " " + StyleBold.Render(phaseLabels[s.Phase]+"…")
	}
	line := fmt.Sprintf("%s %s", StyleBold.Render(phaseLabels[s.Phase]+"…"), RenderProgress(s.Progress/100, width))
	if s.TotalSlides > 0 {
		line += Dim(fmt.Sprintf("  %d/%d slides", s.Slides, s.TotalSlides))
	}
	return line
}
