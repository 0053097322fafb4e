package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tender/internal/domain"
	"github.com/charmbracelet/glamour"
)

// WizardHeader renders the step indicator shown above each wizard screen.
func WizardHeader(step domain.WizardStep, width int) string {
	var labels []string
	for _, s := range domain.WizardSteps {
		label := fmt.Sprintf("%d %s", s.Index, s.Label)
		switch {
		case s.Index == step.Index:
			label = StyleHeader.Render(label)
		case s.Index < step.Index:
			label = StyleGreen.Render(label)
		default:
			label = Dim(label)
		}
		labels = append(labels, label)
	}
	if width < 20 {
		width = 20
	}
	return fmt.Sprintf("%s\n%s %s",
		strings.Join(labels, Dim("  ›  ")),
		Dim(fmt.Sprintf("Step %d of %d", step.Index, len(domain.WizardSteps))),
		RenderCompactBar(domain.StepProgress(step.Index)/100, width-14, false))
}

// FormatDeckConfig renders the deck settings summary.
func FormatDeckConfig(cfg domain.DeckConfig) string {
	var b strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&b, "  %s %s\n", Dim(fmt.Sprintf("%-10s", label)), value)
	}
	row("Template", domain.ValidTemplates[cfg.Template])
	row("Format", domain.ValidFormats[cfg.Format])
	row("Language", domain.ValidLanguages[cfg.Language])
	if len(cfg.Excluded) > 0 {
		row("Excluded", strings.Join(cfg.Excluded, ", "))
	}
	if cfg.Generated() {
		row("Generated", fmt.Sprintf("%d slides, %s", cfg.SlideCount, HumanTimestamp(*cfg.GeneratedAt)))
	} else {
		row("Generated", Dim("not yet"))
	}
	return b.String()
}

// FormatOutline renders slides grouped under their section titles.
func FormatOutline(slides []domain.Slide) string {
	titles := make(map[string]string, len(domain.DeckSections))
	for _, s := range domain.DeckSections {
		titles[s.ID] = s.Title
	}

	var items []TreeItem
	for i, sl := range slides {
		if i == 0 || slides[i-1].Section != sl.Section {
			items = append(items, TreeItem{Title: StyleHeader.Render(titles[sl.Section])})
		}
		last := i == len(slides)-1 || slides[i+1].Section != sl.Section
		items = append(items, TreeItem{
			Title:  sl.Title,
			Number: sl.Number,
			Nested: true,
			Last:   last,
			Badge:  sl.Kind,
		})
	}
	return RenderTree(items)
}

// RenderSlide renders a slide's markdown body for the terminal.
// Rendering errors fall back to the raw markdown.
func RenderSlide(sl domain.Slide, width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return sl.Body
	}
	out, err := r.Render(sl.Body)
	if err != nil {
		return sl.Body
	}
	return out
}
