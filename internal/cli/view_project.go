package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/tender/internal/cli/formatter"
	"github.com/alexanderramin/tender/internal/domain"
	"github.com/alexanderramin/tender/internal/matching"
	"github.com/alexanderramin/tender/internal/repository"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type projectTab int

const (
	tabOverview projectTab = iota
	tabAnalysis
	tabProfiles
	tabMissions
)

var projectTabNames = []string{"Overview", "Analysis", "Profiles", "Missions"}

// projectData is everything the project tabs render.
type projectData struct {
	detail     formatter.ProjectDetailData
	profiles   []domain.Profile
	missions   []domain.Mission
	profileSel *domain.SelectionSet
	missionSel *domain.SelectionSet
}

type projectLoadedMsg struct {
	data *projectData
	err  error
}

func (projectLoadedMsg) targetView() ViewID { return ViewProject }

// projectView shows one project: its metadata and stage tracker, the RFP
// analysis, and the current profile and mission picks.
type projectView struct {
	state     *SharedState
	projectID string
	data      *projectData
	loading   bool
	err       error
	tab       projectTab
	cursor    int // focused stage on the overview tab
}

func newProjectView(state *SharedState, projectID string) *projectView {
	return &projectView{
		state:     state,
		projectID: projectID,
		loading:   true,
	}
}

func (v *projectView) ID() ViewID { return ViewProject }

func (v *projectView) Title() string {
	if v.data != nil {
		return v.data.detail.Project.DisplayID()
	}
	return "Project"
}

func (v *projectView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open stage")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "continue")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *projectView) Init() tea.Cmd {
	return v.loadData()
}

// loadData fetches the project and its tabs concurrently.
func (v *projectView) loadData() tea.Cmd {
	app := v.state.App
	id := v.projectID
	return func() tea.Msg {
		data, err := loadProjectData(context.Background(), app, id)
		return projectLoadedMsg{data: data, err: err}
	}
}

func loadProjectData(ctx context.Context, app *App, projectID string) (*projectData, error) {
	data := &projectData{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := app.Projects.GetByID(gctx, projectID)
		data.detail.Project = p
		return err
	})
	g.Go(func() error {
		doc, err := app.Projects.Document(gctx, projectID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		data.detail.Document = doc
		return err
	})
	g.Go(func() error {
		a, err := app.Projects.Analysis(gctx, projectID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		data.detail.Analysis = a
		return err
	})
	g.Go(func() error {
		stages, err := app.Projects.Stages(gctx, projectID)
		data.detail.Stages = stages
		return err
	})
	g.Go(func() error {
		profiles, err := app.Catalog.Profiles(gctx, "", matching.ProfileFilter{})
		data.profiles = profiles
		return err
	})
	g.Go(func() error {
		missions, err := app.Catalog.Missions(gctx, "")
		data.missions = missions
		return err
	})
	g.Go(func() error {
		sel, err := app.Selections.Load(gctx, projectID, domain.SelectProfiles)
		data.profileSel = sel
		return err
	})
	g.Go(func() error {
		sel, err := app.Selections.Load(gctx, projectID, domain.SelectMissions)
		data.missionSel = sel
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading project: %w", err)
	}
	return data, nil
}

func (v *projectView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.data = msg.data
		v.state.SetActiveProjectFrom(msg.data.detail.Project)
		if v.cursor >= len(v.data.detail.Stages) {
			v.cursor = max(0, len(v.data.detail.Stages)-1)
		}
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *projectView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "right", "l":
		v.tab = (v.tab + 1) % projectTab(len(projectTabNames))
	case "shift+tab", "left", "h":
		v.tab = (v.tab + projectTab(len(projectTabNames)) - 1) % projectTab(len(projectTabNames))
	case "1", "2", "3", "4":
		v.tab = projectTab(msg.String()[0] - '1')
	case "r":
		v.loading = true
		return v.loadData()
	}
	if v.data == nil {
		return nil
	}

	stages := v.data.detail.Stages
	switch msg.String() {
	case "up", "k":
		if v.tab == tabOverview && v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.tab == tabOverview && v.cursor < len(stages)-1 {
			v.cursor++
		}
	case "enter":
		if v.tab != tabOverview || v.cursor >= len(stages) {
			return nil
		}
		s := stages[v.cursor]
		if s.Affordance() == domain.AffordanceNone {
			return outputCmd(formatter.Dim(s.Name + " has not started yet."))
		}
		return v.openStage(s)
	case "c":
		for _, s := range stages {
			if s.Affordance() == domain.AffordanceContinue {
				return v.openStage(s)
			}
		}
		return outputCmd(formatter.Dim("Nothing in progress."))
	case "p":
		return pushView(newSelectionView(v.state, v.projectID, domain.SelectProfiles, ""))
	case "m":
		return pushView(newSelectionView(v.state, v.projectID, domain.SelectMissions, ""))
	case "s":
		return pushView(newSlidesView(v.state, v.projectID))
	case "v":
		return pushView(newPreviewView(v.state, v.projectID))
	case "g":
		return pushView(newGenerateView(v.state, v.projectID))
	}
	return nil
}

// openStage pushes the screen a stage links to. Stages without a wizard
// screen link back to the project itself and only switch tabs.
func (v *projectView) openStage(s domain.Stage) tea.Cmd {
	route := s.Route(v.projectID)
	if route.Screen == domain.ScreenProject {
		if s.ID == "analysis" {
			v.tab = tabAnalysis
		} else {
			v.tab = tabOverview
		}
		return nil
	}
	view, err := stepView(v.state, route)
	if err != nil {
		return outputCmd(shellError(err))
	}
	return pushView(view)
}

func (v *projectView) View() string {
	if v.loading && v.data == nil {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n  " + v.renderTabs() + "\n\n")
	width := max(v.state.Width-4, 40)

	switch v.tab {
	case tabOverview:
		b.WriteString(formatter.FormatProjectDetail(v.data.detail, v.cursor))
	case tabAnalysis:
		b.WriteString(formatter.FormatAnalysis(v.data.detail.Analysis, width))
	case tabProfiles:
		b.WriteString(formatter.Header(fmt.Sprintf("Profiles (%d selected)", v.data.profileSel.Count())) + "\n")
		b.WriteString(formatter.FormatProfileList(v.data.profiles, v.data.profileSel))
		b.WriteString("\n  " + formatter.Dim("p: edit selection"))
	case tabMissions:
		b.WriteString(formatter.Header(fmt.Sprintf("Missions (%d selected)", v.data.missionSel.Count())) + "\n")
		b.WriteString(formatter.FormatMissionList(v.data.missions, v.data.missionSel))
		b.WriteString("\n  " + formatter.Dim("m: edit selection"))
	}
	return b.String()
}

func (v *projectView) renderTabs() string {
	parts := make([]string, len(projectTabNames))
	for i, name := range projectTabNames {
		if projectTab(i) == v.tab {
			parts[i] = formatter.StyleHeader.Render("[" + name + "]")
		} else {
			parts[i] = formatter.Dim(" " + name + " ")
		}
	}
	return strings.Join(parts, " ")
}
