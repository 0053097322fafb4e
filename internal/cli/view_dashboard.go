package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tender/internal/cli/formatter"
	"github.com/alexanderramin/tender/internal/domain"
	"github.com/alexanderramin/tender/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ── messages ─────────────────────────────────────────────────────────────────

// dashboardLoadedMsg signals that dashboard data has been loaded.
type dashboardLoadedMsg struct {
	projects []*domain.Project
	stats    service.DashboardStats
	err      error
}

type demoSeededMsg struct {
	count int
	err   error
}

func (dashboardLoadedMsg) targetView() ViewID { return ViewDashboard }
func (demoSeededMsg) targetView() ViewID      { return ViewDashboard }

// ── view ─────────────────────────────────────────────────────────────────────

// dashboardView is the home screen of the TUI: the stats line and the
// project list with status pills and progress bars.
type dashboardView struct {
	state    *SharedState
	projects []*domain.Project
	stats    service.DashboardStats
	loading  bool
	err      error
	cursor   int
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{
		state:   state,
		loading: true,
	}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new project")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "demo data")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadData()
}

// ── data loading ─────────────────────────────────────────────────────────────

func (v *dashboardView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		projects, err := app.Projects.List(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		stats, err := app.Projects.Stats(ctx)
		return dashboardLoadedMsg{projects: projects, stats: stats, err: err}
	}
}

func (v *dashboardView) seedDemo() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		projects, err := app.Projects.SeedDemo(context.Background())
		return demoSeededMsg{count: len(projects), err: err}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.projects = msg.projects
		v.stats = msg.stats
		if v.cursor >= len(v.projects) {
			v.cursor = max(0, len(v.projects)-1)
		}
		return v, nil

	case demoSeededMsg:
		if msg.err != nil {
			return v, outputCmd(shellError(msg.err))
		}
		v.state.Cache.invalidate()
		return v, v.loadData()

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.projects)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.projects) {
				p := v.projects[v.cursor]
				v.state.SetActiveProjectFrom(p)
				return v, pushView(newProjectView(v.state, p.ID))
			}
		case "n":
			return v, startNewProjectWizard(v.state)
		case "d":
			return v, v.seedDemo()
		case "r":
			v.loading = true
			v.err = nil
			return v, v.loadData()
		}
	}

	return v, nil
}

// ── view rendering ───────────────────────────────────────────────────────────

func (v *dashboardView) View() string {
	if v.loading && v.projects == nil {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if len(v.projects) == 0 {
		return formatter.FormatWelcome()
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.FormatStats(v.stats.Total, v.stats.InProgress, v.stats.Completed) + "\n\n")
	b.WriteString("  " + formatter.StyleHeader.Render("PROJECTS") + "\n\n")
	for i, p := range v.projects {
		b.WriteString(v.renderRow(p, i == v.cursor) + "\n")
	}
	return b.String()
}

func (v *dashboardView) renderRow(p *domain.Project, focused bool) string {
	cursor := "  "
	titleStyle := formatter.StyleFg
	if focused {
		cursor = formatter.StyleGreen.Render("▸ ")
		titleStyle = formatter.StyleBold
	}
	return fmt.Sprintf("%s%s %s %s %s %s %s",
		cursor,
		formatter.StyleGreen.Render(padRight(p.DisplayID(), 8)),
		titleStyle.Render(padRight(truncate(p.Title, 30), 30)),
		formatter.Dim(padRight(truncate(p.Client, 20), 20)),
		padRight(formatter.ProjectPill(p), 13),
		formatter.RenderCompactBar(p.Progress, 10, !focused),
		formatter.Dim(formatter.RelativeDate(p.CreatedAt)),
	)
}

// padRight pads s with spaces to width display cells.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// truncate shortens s to n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
