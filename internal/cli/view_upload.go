package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tender/internal/cli/formatter"
	"github.com/alexanderramin/tender/internal/domain"
	"github.com/alexanderramin/tender/internal/progress"
	"github.com/alexanderramin/tender/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type uploadTickMsg struct {
	run int
}

type projectCreatedMsg struct {
	run     int
	project *domain.Project
	err     error
}

// uploadView runs the simulated upload and processing of an RFP document,
// then creates the project. Leaving the view abandons the run.
type uploadView struct {
	state *SharedState
	req   service.CreateProjectRequest
	task  *progress.UploadTask
	snap  progress.Snapshot
	run   int
	err   error
}

func newUploadView(state *SharedState, req service.CreateProjectRequest) *uploadView {
	return &uploadView{
		state: state,
		req:   req,
		task:  progress.NewUploadTask(state.App.Upload),
	}
}

func (v *uploadView) ID() ViewID    { return ViewUpload }
func (v *uploadView) Title() string { return "Upload" }

func (v *uploadView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *uploadView) Init() tea.Cmd {
	v.run = v.state.nextRun()
	delay := v.task.Start()
	v.snap = v.task.Snapshot()
	return v.state.tick(delay, uploadTickMsg{run: v.run})
}

func (v *uploadView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case uploadTickMsg:
		if msg.run != v.run {
			return v, nil
		}
		next, done := v.task.Tick()
		v.snap = v.task.Snapshot()
		if done {
			return v, v.createProject()
		}
		return v, v.state.tick(next, uploadTickMsg{run: v.run})

	case projectCreatedMsg:
		if msg.run != v.run {
			return v, nil
		}
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.state.SetActiveProjectFrom(msg.project)
		v.state.Cache.invalidate()
		return v, tea.Batch(replaceView(newProjectView(v.state, msg.project.ID)), refreshViews())
	}
	return v, nil
}

func (v *uploadView) createProject() tea.Cmd {
	app := v.state.App
	req := v.req
	run := v.run
	return func() tea.Msg {
		p, err := app.Projects.Create(context.Background(), req)
		return projectCreatedMsg{run: run, project: p, err: err}
	}
}

func (v *uploadView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("New project") + "\n\n")
	fmt.Fprintf(&b, "  %s  %s\n", formatter.Dim("Title "), formatter.Bold(v.req.Title))
	fmt.Fprintf(&b, "  %s  %s\n", formatter.Dim("Client"), v.req.Client)
	if f := v.req.File; f != nil {
		fmt.Fprintf(&b, "  %s  %s %s\n", formatter.Dim("RFP   "), f.Name, formatter.Dim("("+formatter.FormatBytes(f.Size)+")"))
	}
	b.WriteString("\n  " + formatter.FormatTask(v.snap, 30) + "\n")
	if v.err != nil {
		b.WriteString("\n  " + shellError(v.err) + "\n")
		b.WriteString("  " + formatter.Dim("Press esc to go back.") + "\n")
	}
	return b.String()
}

func (uploadTickMsg) targetView() ViewID     { return ViewUpload }
func (projectCreatedMsg) targetView() ViewID { return ViewUpload }
