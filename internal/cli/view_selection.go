package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/tender/internal/cli/formatter"
	"github.com/alexanderramin/tender/internal/domain"
	"github.com/alexanderramin/tender/internal/matching"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// experienceSteps are the minimum-experience filters cycled with "e".
var experienceSteps = []int{0, 5, 8, 10}

type selectionLoadedMsg struct {
	kind     domain.SelectionKind
	profiles []domain.Profile
	missions []domain.Mission
	selected *domain.SelectionSet
	err      error
}

type selectionToggledMsg struct {
	kind     domain.SelectionKind
	selected *domain.SelectionSet
	err      error
}

func (m selectionLoadedMsg) targetView() ViewID  { return selectionViewID(m.kind) }
func (m selectionToggledMsg) targetView() ViewID { return selectionViewID(m.kind) }

func selectionViewID(kind domain.SelectionKind) ViewID {
	if kind == domain.SelectMissions {
		return ViewMissions
	}
	return ViewProfiles
}

// selectionView is wizard step 1 (profiles) or 2 (missions): a ranked,
// searchable catalog list where space toggles an entry in the project's
// saved selection.
type selectionView struct {
	state     *SharedState
	projectID string
	kind      domain.SelectionKind

	profiles []domain.Profile
	missions []domain.Mission
	selected *domain.SelectionSet
	loading  bool
	err      error

	query     string
	filter    matching.ProfileFilter
	expStep   int
	roleIdx   int // 0 means any role
	input     textinput.Model
	filtering bool

	cursor     int
	showDetail bool
	pending    int // toggles sent but not yet answered
}

func newSelectionView(state *SharedState, projectID string, kind domain.SelectionKind, query string) *selectionView {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.CharLimit = 100
	ti.SetValue(query)
	return &selectionView{
		state:     state,
		projectID: projectID,
		kind:      kind,
		query:     query,
		input:     ti,
		loading:   true,
	}
}

func (v *selectionView) ID() ViewID { return selectionViewID(v.kind) }

func (v *selectionView) Title() string {
	return v.step().Label
}

func (v *selectionView) step() domain.WizardStep {
	screen := domain.ScreenProfiles
	if v.kind == domain.SelectMissions {
		screen = domain.ScreenMissions
	}
	step, _ := domain.StepForScreen(screen)
	return step
}

// CapturesInput reports whether the filter prompt is open.
func (v *selectionView) CapturesInput() bool { return v.filtering }

func (v *selectionView) ShortHelp() []key.Binding {
	if v.filtering {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		}
	}
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	}
	if v.kind == domain.SelectProfiles {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "role")),
			key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "experience")),
		)
	}
	return append(bindings,
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next step")),
		key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back")),
	)
}

func (v *selectionView) Init() tea.Cmd {
	return v.loadData()
}

func (v *selectionView) loadData() tea.Cmd {
	app := v.state.App
	projectID, kind := v.projectID, v.kind
	return func() tea.Msg {
		ctx := context.Background()
		msg := selectionLoadedMsg{kind: kind}
		msg.selected, msg.err = app.Selections.Load(ctx, projectID, kind)
		if msg.err != nil {
			return msg
		}
		if kind == domain.SelectMissions {
			msg.missions, msg.err = app.Catalog.Missions(ctx, "")
		} else {
			msg.profiles, msg.err = app.Catalog.Profiles(ctx, "", matching.ProfileFilter{})
		}
		return msg
	}
}

func (v *selectionView) toggle(id string) tea.Cmd {
	v.pending++
	app := v.state.App
	projectID, kind := v.projectID, v.kind
	return func() tea.Msg {
		set, err := app.Selections.Toggle(context.Background(), projectID, kind, id)
		return selectionToggledMsg{kind: kind, selected: set, err: err}
	}
}

// visibleIDs returns the IDs of the entries passing the query and
// filters, best match first.
func (v *selectionView) visibleIDs() []string {
	var ids []string
	if v.kind == domain.SelectMissions {
		for _, m := range matching.FilterRank(v.query, v.missions) {
			ids = append(ids, m.ID)
		}
		return ids
	}
	for _, p := range matching.Rank(matching.FilterProfiles(v.query, v.filter, v.profiles)) {
		ids = append(ids, p.ID)
	}
	return ids
}

func (v *selectionView) roles() []string {
	seen := make(map[string]bool)
	var roles []string
	for _, p := range v.profiles {
		if !seen[p.Role] {
			seen[p.Role] = true
			roles = append(roles, p.Role)
		}
	}
	sort.Strings(roles)
	return roles
}

func (v *selectionView) clampCursor() {
	n := len(v.visibleIDs())
	if v.cursor >= n {
		v.cursor = max(0, n-1)
	}
}

func (v *selectionView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case selectionLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.profiles, v.missions = msg.profiles, msg.missions
		if v.pending == 0 {
			v.selected = msg.selected
		}
		v.clampCursor()
		return v, nil

	case selectionToggledMsg:
		v.pending = max(0, v.pending-1)
		if msg.err != nil {
			return v, outputCmd(shellError(msg.err))
		}
		if v.pending > 0 {
			// Replies may arrive out of order; the reload after the last
			// one reads the committed set.
			return v, nil
		}
		v.selected = msg.selected
		return v, refreshViews()

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		if v.filtering {
			return v, v.updateFilter(msg)
		}
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *selectionView) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		v.filtering = false
		v.input.Blur()
		return nil
	case tea.KeyEsc:
		v.filtering = false
		v.input.Blur()
		v.input.SetValue("")
		v.query = ""
		v.clampCursor()
		return nil
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	v.query = v.input.Value()
	v.clampCursor()
	return cmd
}

func (v *selectionView) handleKey(msg tea.KeyMsg) tea.Cmd {
	ids := v.visibleIDs()
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(ids)-1 {
			v.cursor++
		}
	case " ", "x":
		if v.cursor < len(ids) {
			return v.toggle(ids[v.cursor])
		}
	case "enter":
		v.showDetail = !v.showDetail
	case "/":
		v.filtering = true
		return v.input.Focus()
	case "f":
		if v.kind == domain.SelectProfiles {
			roles := v.roles()
			v.roleIdx = (v.roleIdx + 1) % (len(roles) + 1)
			v.filter.Roles = nil
			if v.roleIdx > 0 {
				v.filter.Roles = []string{roles[v.roleIdx-1]}
			}
			v.clampCursor()
		}
	case "e":
		if v.kind == domain.SelectProfiles {
			v.expStep = (v.expStep + 1) % len(experienceSteps)
			v.filter.MinExperience = experienceSteps[v.expStep]
			v.clampCursor()
		}
	case "n":
		return stepNav(v.state, v.projectID, v.step(), 1)
	case "b":
		return stepNav(v.state, v.projectID, v.step(), -1)
	}
	return nil
}

func (v *selectionView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	width := max(v.state.Width-4, 40)
	var b strings.Builder
	b.WriteString("\n" + formatter.WizardHeader(v.step(), width) + "\n\n")

	total := len(v.profiles)
	if v.kind == domain.SelectMissions {
		total = len(v.missions)
	}
	fmt.Fprintf(&b, "  %s %s\n", formatter.Bold(fmt.Sprintf("%d of %d selected", v.selected.Count(), total)), v.filterSummary())
	if v.filtering {
		b.WriteString("  " + v.input.View() + "\n")
	}
	b.WriteString("\n")

	ids := v.visibleIDs()
	if len(ids) == 0 {
		b.WriteString("  " + formatter.Dim("No matches.") + "\n")
		return b.String()
	}
	for i, id := range ids {
		b.WriteString(v.renderRow(id, i == v.cursor) + "\n")
	}
	if v.showDetail && v.cursor < len(ids) {
		b.WriteString("\n" + v.renderCard(ids[v.cursor], width) + "\n")
	}
	return b.String()
}

func (v *selectionView) filterSummary() string {
	var parts []string
	if v.query != "" {
		parts = append(parts, fmt.Sprintf("search %q", v.query))
	}
	if len(v.filter.Roles) > 0 {
		parts = append(parts, "role "+v.filter.Roles[0])
	}
	if v.filter.MinExperience > 0 {
		parts = append(parts, fmt.Sprintf("%d+ years", v.filter.MinExperience))
	}
	if len(parts) == 0 {
		return ""
	}
	return formatter.Dim("· " + strings.Join(parts, ", "))
}

func (v *selectionView) renderRow(id string, focused bool) string {
	selected := v.selected.Contains(id)
	if v.kind == domain.SelectMissions {
		for _, m := range v.missions {
			if m.ID == id {
				return formatter.FormatMissionRow(m, selected, focused)
			}
		}
		return ""
	}
	for _, p := range v.profiles {
		if p.ID == id {
			return formatter.FormatProfileRow(p, selected, focused)
		}
	}
	return ""
}

func (v *selectionView) renderCard(id string, width int) string {
	if v.kind == domain.SelectMissions {
		for _, m := range v.missions {
			if m.ID == id {
				return formatter.FormatMissionCard(m, width)
			}
		}
		return ""
	}
	for _, p := range v.profiles {
		if p.ID == id {
			return formatter.FormatProfileCard(p, width)
		}
	}
	return ""
}
