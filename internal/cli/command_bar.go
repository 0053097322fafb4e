package cli

import (
	"strings"

	"github.com/alexanderramin/tender/internal/cli/formatter"
	"github.com/alexanderramin/tender/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// commandBar is the persistent text input at the bottom of the TUI.
// It handles command entry, autocomplete suggestions, and history navigation.
type commandBar struct {
	input   textinput.Model
	state   *SharedState
	focused bool

	history *commandHistory
}

func newCommandBar(state *SharedState) commandBar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 500
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	return commandBar{
		input:   ti,
		state:   state,
		history: loadCommandHistory(state.App.HistoryFile),
	}
}

// Focus gives focus to the command bar.
func (c *commandBar) Focus() {
	c.focused = true
	c.input.Focus()
}

// Blur removes focus from the command bar.
func (c *commandBar) Blur() {
	c.focused = false
	c.input.Blur()
}

// Focused returns whether the command bar has focus.
func (c *commandBar) Focused() bool {
	return c.focused
}

// SetWidth updates the input width for terminal resizing.
func (c *commandBar) SetWidth(w int) {
	c.input.Width = w - lipgloss.Width(c.prompt(false)) - 1
}

// Update handles key messages when the command bar is focused.
// Returns a tea.Cmd that may include navigation or output messages.
func (c *commandBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(c.input.Value())
		c.input.Reset()
		c.input.SetSuggestions(nil)
		if input == "" {
			return nil
		}
		c.history.add(input)
		return c.executeCommand(input)

	case tea.KeyUp:
		if line, ok := c.history.prev(); ok {
			c.recall(line)
		}
		return nil

	case tea.KeyDown:
		c.recall(c.history.next())
		return nil

	case tea.KeyEsc:
		c.Blur()
		return nil

	default:
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		c.updateSuggestions()
		return cmd
	}
}

// UpdateNonKey handles non-key messages (e.g., cursor blink).
func (c *commandBar) UpdateNonKey(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// View renders the command bar.
func (c *commandBar) View() string {
	if !c.focused {
		return c.prompt(true) + formatter.Dim("press : to type a command")
	}
	return c.prompt(true) + c.input.View()
}

// prompt renders "tender (ACM01) ❯ ". The plain form sizes the input.
func (c *commandBar) prompt(styled bool) string {
	name, project, arrow := "tender", "", "❯"
	if c.state.ActiveProjectID != "" {
		project = c.state.ActiveShortID
	}
	if !styled {
		if project != "" {
			return name + " (" + project + ") " + arrow + " "
		}
		return name + " " + arrow + " "
	}
	out := formatter.StylePurple.Render(name) + " "
	if project != "" {
		out += formatter.Dim("(") + formatter.StyleGreen.Render(project) + formatter.Dim(")") + " "
	}
	return out + formatter.Dim(arrow) + " "
}

func (c *commandBar) recall(line string) {
	c.input.SetValue(line)
	c.input.CursorEnd()
}

// ── suggestions ──────────────────────────────────────────────────────────────

func (c *commandBar) updateSuggestions() {
	text := c.input.Value()
	if text == "" {
		c.input.SetSuggestions(nil)
		return
	}

	parts := strings.Fields(text)
	trailingSpace := strings.HasSuffix(text, " ")

	if len(parts) <= 1 && !trailingSpace {
		c.input.SetSuggestions(filterSuggestions(allCommandNames(), parts[0]))
		return
	}

	cmd := strings.ToLower(parts[0])

	if len(parts) <= 2 && (!trailingSpace || len(parts) == 1) {
		prefix := ""
		if len(parts) == 2 {
			prefix = parts[1]
		}

		switch cmd {
		case "use":
			c.input.SetSuggestions(c.projectSuggestions(prefix))
			return
		case "export":
			c.input.SetSuggestions(filterSuggestions([]string{"yaml", "json"}, prefix))
			return
		case "open":
			c.input.SetSuggestions(filterSuggestions(c.routeSuggestions(), prefix))
			return
		}

		if subs, ok := subcommandNames()[cmd]; ok {
			c.input.SetSuggestions(filterSuggestions(subs, prefix))
			return
		}
	}

	c.input.SetSuggestions(nil)
}

func (c *commandBar) projectSuggestions(prefix string) []string {
	projects := c.state.Cache.get(c.state.App)
	var suggestions []string
	for _, p := range projects {
		id := p.DisplayID()
		if prefix == "" || strings.HasPrefix(strings.ToLower(id), strings.ToLower(prefix)) {
			suggestions = append(suggestions, id)
		}
	}
	return suggestions
}

// routeSuggestions lists the wizard routes of the active project.
func (c *commandBar) routeSuggestions() []string {
	routes := []string{domain.Route{Screen: domain.ScreenDashboard}.String(), domain.Route{Screen: domain.ScreenNewProject}.String()}
	if c.state.ActiveShortID == "" {
		return routes
	}
	routes = append(routes, domain.Route{Screen: domain.ScreenProject, ProjectID: c.state.ActiveShortID}.String())
	for _, step := range domain.WizardSteps {
		routes = append(routes, step.Route(c.state.ActiveShortID).String())
	}
	return routes
}
