package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tender/internal/cli/formatter"
	"github.com/alexanderramin/tender/internal/domain"
	"github.com/alexanderramin/tender/internal/progress"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type generateOutlineMsg struct {
	slides []domain.Slide
	err    error
}

type generateTickMsg struct {
	run int
}

type generationRecordedMsg struct {
	run int
	err error
}

func (generateOutlineMsg) targetView() ViewID    { return ViewGenerate }
func (generateTickMsg) targetView() ViewID       { return ViewGenerate }
func (generationRecordedMsg) targetView() ViewID { return ViewGenerate }

// generateView runs the simulated deck generation for the project's
// current outline and records the result when it completes.
type generateView struct {
	state     *SharedState
	projectID string

	slides   []domain.Slide
	task     *progress.GenerationTask
	snap     progress.Snapshot
	run      int
	recorded bool
	err      error
}

func newGenerateView(state *SharedState, projectID string) *generateView {
	return &generateView{state: state, projectID: projectID}
}

func (v *generateView) ID() ViewID    { return ViewGenerate }
func (v *generateView) Title() string { return "Generate" }

func (v *generateView) ShortHelp() []key.Binding {
	if v.recorded {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "preview")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *generateView) Init() tea.Cmd {
	v.run = v.state.nextRun()
	app := v.state.App
	projectID := v.projectID
	return func() tea.Msg {
		slides, err := app.Decks.Outline(context.Background(), projectID)
		return generateOutlineMsg{slides: slides, err: err}
	}
}

func (v *generateView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case generateOutlineMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.slides = msg.slides
		v.task = progress.NewGenerationTask(v.state.App.Generation, len(msg.slides), v.state.App.Rand)
		delay := v.task.Start()
		v.snap = v.task.Snapshot()
		return v, v.state.tick(delay, generateTickMsg{run: v.run})

	case generateTickMsg:
		if msg.run != v.run || v.task == nil {
			return v, nil
		}
		next, done := v.task.Tick()
		v.snap = v.task.Snapshot()
		if done {
			return v, v.record()
		}
		return v, v.state.tick(next, generateTickMsg{run: v.run})

	case generationRecordedMsg:
		if msg.run != v.run {
			return v, nil
		}
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.recorded = true
		return v, refreshViews()

	case tea.KeyMsg:
		if v.recorded && msg.Type == tea.KeyEnter {
			return v, replaceView(newPreviewView(v.state, v.projectID))
		}
	}
	return v, nil
}

func (v *generateView) record() tea.Cmd {
	app := v.state.App
	projectID, run, n := v.projectID, v.run, len(v.slides)
	return func() tea.Msg {
		err := app.Decks.RecordGeneration(context.Background(), projectID, n)
		return generationRecordedMsg{run: run, err: err}
	}
}

func (v *generateView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Generating deck") + "\n\n")
	if v.err != nil {
		b.WriteString("  " + shellError(v.err) + "\n")
		return b.String()
	}
	if v.task == nil {
		b.WriteString("  " + formatter.Dim("Building outline...") + "\n")
		return b.String()
	}
	b.WriteString("  " + formatter.FormatTask(v.snap, 30) + "\n\n")
	shown := v.snap.Slides
	for i, sl := range v.slides {
		mark := formatter.Dim("○")
		if i < shown {
			mark = formatter.StyleGreen.Render("✔")
		}
		fmt.Fprintf(&b, "  %s %2d. %s\n", mark, sl.Number, sl.Title)
	}
	if v.recorded {
		b.WriteString("\n  " + formatter.Dim("Press enter to preview the deck.") + "\n")
	}
	return b.String()
}
