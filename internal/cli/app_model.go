package cli

import (
	"strings"

	"github.com/alexanderramin/tender/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// appModel is the root bubbletea Model: a stack of screens, the command
// bar under them, and the pane that shows command output.
type appModel struct {
	state    *SharedState
	views    viewStack
	cmdBar   commandBar
	output   outputPane
	quitting bool
}

func newAppModel(app *App) appModel {
	state := newSharedState(app)
	return appModel{
		state:  state,
		views:  viewStack{newDashboardView(state)},
		cmdBar: newCommandBar(state),
		output: newOutputPane(),
	}
}

func (m appModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.views))
	for _, v := range m.views {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.cmdBar.SetWidth(msg.Width)
		if m.output.active {
			m.output.resize(msg.Width, m.state.ContentHeight())
		}
		return m, m.views.updateTop(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.output.active {
			return m, m.output.update(msg)
		}

	case pushViewMsg:
		m.leaveCommandBar()
		return m, m.views.push(msg.view)

	case pushViewsMsg:
		m.leaveCommandBar()
		return m, m.views.push(msg.views...)

	case popViewMsg:
		m.views.pop()
		return m, nil

	case popToRootMsg:
		m.leaveCommandBar()
		m.views.popToRoot()
		return m, nil

	case replaceViewMsg:
		m.leaveCommandBar()
		return m, m.views.replaceTop(msg.view)

	case refreshViewMsg:
		return m, m.views.broadcast(msg)

	case cmdOutputMsg:
		m.output.show(msg.output, m.state.Width, m.state.ContentHeight())
		return m, nil

	case cmdLoadingMsg:
		m.output.loading(msg.message, m.state.Width, m.state.ContentHeight())
		return m, nil

	case formClosedMsg:
		// The form is always on top when it completes.
		m.views.pop()
		m.output.clear()
		m.cmdBar.Focus()
		return m, tea.Batch(msg.nextCmd, refreshViews())

	case quitMsg:
		m.quitting = true
		return m, tea.Quit

	case viewTargeted:
		cmd, _ := m.views.deliver(msg.targetView(), msg)
		return m, cmd
	}

	// Everything else (cursor blink, spinner frames) goes to the command
	// bar and the active view, so tasks keep ticking while a command is typed.
	var cmds []tea.Cmd
	if m.cmdBar.Focused() {
		cmds = append(cmds, m.cmdBar.UpdateNonKey(msg))
	}
	cmds = append(cmds, m.views.updateTop(msg))
	return m, tea.Batch(cmds...)
}

// leaveCommandBar hands focus back to the screens before a navigation.
func (m *appModel) leaveCommandBar() {
	m.cmdBar.Blur()
	m.output.clear()
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.cmdBar.Focused() {
		if msg.Type == tea.KeyEnter {
			m.output.clear()
		}
		return m, m.cmdBar.Update(msg)
	}

	if m.output.active {
		if isOutputScrollKey(msg) {
			return m, m.output.update(msg)
		}
		m.output.clear()
	}

	// Forms and open filter prompts get every key, q and esc included.
	if viewCapturesInput(m.views.top()) {
		return m, m.views.updateTop(msg)
	}

	switch {
	case msg.String() == ":":
		m.cmdBar.Focus()
		return m, nil
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit
	case msg.Type == tea.KeyEsc:
		m.views.pop()
		return m, nil
	}

	return m, m.views.updateTop(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	content := m.output.view(m.state.Height > 0)
	if content == "" {
		if v := m.views.top(); v != nil {
			content = v.View()
		}
	}

	result := strings.Join([]string{m.renderHeader(), content, m.renderStatusBar(), m.cmdBar.View()}, "\n")

	// Fill the alt screen so the line-diff renderer leaves no stale rows.
	if m.state.Height > 0 {
		if lines := strings.Count(result, "\n") + 1; lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

func (m *appModel) renderHeader() string {
	header := formatter.StylePurple.Render("tender")
	if crumbs := m.views.titles(); len(crumbs) > 0 {
		header += " " + formatter.Dim("› "+strings.Join(crumbs, " › "))
	}
	if m.state.ActiveProjectID != "" {
		header += "  " + formatter.Dim("[") + formatter.StyleGreen.Render(m.state.ActiveShortID) + formatter.Dim("]")
	}
	return header + "\n" + m.rule()
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	switch {
	case m.output.overflows():
		hints = m.output.scrollHints()
	case !m.output.active:
		if v := m.views.top(); v != nil {
			for _, b := range v.ShortHelp() {
				hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
			}
		}
	}

	if !m.cmdBar.Focused() && !m.output.active {
		if len(m.views) > 1 {
			hints = append(hints, formatter.Dim("esc: back"))
		}
		hints = append(hints, formatter.Dim(": command"))
	}
	return m.rule() + "\n" + strings.Join(hints, "  ")
}

func (m *appModel) rule() string {
	return formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
}

// viewCapturesInput reports whether v owns a text input and should see
// every key before the global bindings.
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	if v.ID() == ViewForm {
		return true
	}
	if c, ok := v.(inputCapturer); ok {
		return c.CapturesInput()
	}
	return false
}
