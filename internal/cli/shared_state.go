package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/tender/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Active project context
	ActiveProjectID    string
	ActiveShortID      string
	ActiveProjectTitle string

	// Terminal dimensions
	Width  int
	Height int

	// Project cache for suggestions
	Cache *shellProjectCache

	// scheduleTick delivers msg after d. Tests swap it for an immediate
	// version so task-driven views finish inside a synchronous drain.
	scheduleTick func(d time.Duration, msg tea.Msg) tea.Cmd

	// runSeq numbers task runs so ticks from a closed view are ignored.
	runSeq int
}

func newSharedState(app *App) *SharedState {
	return &SharedState{
		App:          app,
		Cache:        newShellProjectCache(),
		scheduleTick: afterTick,
	}
}

func afterTick(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// tick schedules msg through the configured tick source.
func (s *SharedState) tick(d time.Duration, msg tea.Msg) tea.Cmd {
	if s.scheduleTick == nil {
		return afterTick(d, msg)
	}
	return s.scheduleTick(d, msg)
}

func (s *SharedState) nextRun() int {
	s.runSeq++
	return s.runSeq
}

// ClearProjectContext resets the active project.
func (s *SharedState) ClearProjectContext() {
	s.ActiveProjectID = ""
	s.ActiveShortID = ""
	s.ActiveProjectTitle = ""
}

// SetActiveProject resolves a project ID and sets the active project context.
func (s *SharedState) SetActiveProject(ctx context.Context, projectID string) error {
	p, err := s.App.Projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	s.SetActiveProjectFrom(p)
	return nil
}

// SetActiveProjectFrom sets the active project context from an already-loaded project.
func (s *SharedState) SetActiveProjectFrom(p *domain.Project) {
	s.ActiveProjectID = p.ID
	s.ActiveShortID = p.DisplayID()
	s.ActiveProjectTitle = p.Title
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (2 lines: separator + hints), and command bar (1 line).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
