package cli

import (
	"testing"

	"github.com/alexanderramin/tender/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCommandBar creates a commandBar backed by a test SharedState.
func testCommandBar(t *testing.T, app *App) *commandBar {
	t.Helper()
	state := newSharedState(app)
	state.Width = 120
	state.Height = 40
	cb := newCommandBar(state)
	return &cb
}

// execCmd runs a command on the commandBar and returns the first message
// it produces, unwrapping batches.
func execCmd(cb *commandBar, input string) tea.Msg {
	cmd := cb.executeCommand(input)
	if cmd == nil {
		return nil
	}
	return firstMsg(cmd())
}

func firstMsg(msg tea.Msg) tea.Msg {
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return msg
	}
	for _, c := range batch {
		if c == nil {
			continue
		}
		if m := c(); m != nil {
			if _, loading := m.(cmdLoadingMsg); loading {
				continue
			}
			return m
		}
	}
	return nil
}

// execOutput is execCmd for commands that print.
func execOutput(t *testing.T, cb *commandBar, input string) string {
	t.Helper()
	msg := execCmd(cb, input)
	out, ok := msg.(cmdOutputMsg)
	require.True(t, ok, "expected cmdOutputMsg, got %T", msg)
	return out.output
}

func TestCommandBar_ProjectsEmpty(t *testing.T) {
	cb := testCommandBar(t, testApp(t))
	assert.Contains(t, execOutput(t, cb, "projects"), "No projects yet")
}

func TestCommandBar_ProjectsListsShortIDs(t *testing.T) {
	app := testApp(t)
	seedProject(t, app, "Cloud", "Acme")
	cb := testCommandBar(t, app)

	assert.Contains(t, execOutput(t, cb, "projects"), "ACM01")
}

func TestCommandBar_DemoSeedsAndInvalidatesCache(t *testing.T) {
	app := testApp(t)
	cb := testCommandBar(t, app)
	require.Empty(t, cb.state.Cache.get(app))

	out := execOutput(t, cb, "demo")
	assert.Contains(t, out, "TEC01")
	assert.Len(t, cb.state.Cache.get(app), 3)
}

func TestCommandBar_UseSetsActiveProjectAndOpensIt(t *testing.T) {
	app := testApp(t)
	p := seedProject(t, app, "Cloud", "Acme")
	cb := testCommandBar(t, app)

	msg := execCmd(cb, "use acm01")
	push, ok := msg.(pushViewMsg)
	require.True(t, ok, "expected pushViewMsg, got %T", msg)
	assert.Equal(t, ViewProject, push.view.ID())

	assert.Equal(t, p.ID, cb.state.ActiveProjectID)
	assert.Equal(t, "ACM01", cb.state.ActiveShortID)
	assert.Equal(t, "Cloud", cb.state.ActiveProjectTitle)

	assert.Contains(t, execOutput(t, cb, "use"), "Active project: ACM01")
}

func TestCommandBar_UseWithoutArgsShowsUsage(t *testing.T) {
	cb := testCommandBar(t, testApp(t))
	assert.Contains(t, execOutput(t, cb, "use"), "Usage: use <project-id>")
}

func TestCommandBar_UseUnknownProject(t *testing.T) {
	cb := testCommandBar(t, testApp(t))
	assert.Contains(t, execOutput(t, cb, "use ZZZ99"), "project not found")
	assert.Empty(t, cb.state.ActiveProjectID)
}

func TestCommandBar_WizardCommandsPushViews(t *testing.T) {
	app := testApp(t)
	p := seedProject(t, app, "Cloud", "Acme")
	cb := testCommandBar(t, app)
	cb.state.SetActiveProjectFrom(p)

	tests := []struct {
		input string
		want  ViewID
	}{
		{"profiles", ViewProfiles},
		{"profiles cloud", ViewProfiles},
		{"missions", ViewMissions},
		{"slides", ViewSlides},
		{"preview", ViewPreview},
		{"generate", ViewGenerate},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			msg := execCmd(cb, tt.input)
			push, ok := msg.(pushViewMsg)
			require.True(t, ok, "expected pushViewMsg, got %T", msg)
			assert.Equal(t, tt.want, push.view.ID())
		})
	}
}

func TestCommandBar_WizardCommandWithoutProjects(t *testing.T) {
	cb := testCommandBar(t, testApp(t))
	assert.Contains(t, execOutput(t, cb, "profiles"), "No projects found")
}

func TestCommandBar_WizardCommandAsksForProject(t *testing.T) {
	app := testApp(t)
	seedProject(t, app, "Cloud", "Acme")
	cb := testCommandBar(t, app)

	msg := execCmd(cb, "slides")
	push, ok := msg.(pushViewMsg)
	require.True(t, ok, "expected pushViewMsg, got %T", msg)
	assert.Equal(t, ViewForm, push.view.ID())
}

func TestCommandBar_OpenRoute(t *testing.T) {
	app := testApp(t)
	seedProject(t, app, "Cloud", "Acme")
	cb := testCommandBar(t, app)

	msg := execCmd(cb, "open /project/ACM01/missions")
	push, ok := msg.(pushViewsMsg)
	require.True(t, ok, "expected pushViewsMsg, got %T", msg)
	require.Len(t, push.views, 2)
	assert.Equal(t, ViewProject, push.views[0].ID())
	assert.Equal(t, ViewMissions, push.views[1].ID())
	assert.Equal(t, "ACM01", cb.state.ActiveShortID)

	assert.IsType(t, popToRootMsg{}, execCmd(cb, "open /"))
	assert.Contains(t, execOutput(t, cb, "open"), "Usage: open <route>")
	assert.Contains(t, execOutput(t, cb, "open /bogus"), "Error:")
}

func TestCommandBar_ExportUsesActiveProject(t *testing.T) {
	app := testApp(t)
	p := seedProject(t, app, "Cloud", "Acme")
	cb := testCommandBar(t, app)
	cb.state.SetActiveProjectFrom(p)

	assert.Contains(t, execOutput(t, cb, "export"), "slide_count: 15")
	assert.Contains(t, execOutput(t, cb, "export json"), `"slide_count": 15`)
	assert.Contains(t, execOutput(t, cb, "export pptx"), "Error:")
}

func TestCommandBar_DeckDispatchesToCobraWithActiveProject(t *testing.T) {
	app := testApp(t)
	p := seedProject(t, app, "Cloud", "Acme")
	cb := testCommandBar(t, app)
	cb.state.SetActiveProjectFrom(p)

	assert.Contains(t, execOutput(t, cb, "deck show"), "OUTLINE (15 SLIDES)")

	execOutput(t, cb, "deck configure --template modern")
	cfg, err := app.Decks.Config(t.Context(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DeckTemplate("modern"), cfg.Template)
}

func TestCommandBar_DeckWithoutProjectHints(t *testing.T) {
	cb := testCommandBar(t, testApp(t))
	out := execOutput(t, cb, "deck show")
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "use <id>")
}

func TestCommandBar_ProjectDispatchesToCobra(t *testing.T) {
	app := testApp(t)
	seedProject(t, app, "Cloud", "Acme")
	cb := testCommandBar(t, app)

	assert.Contains(t, execOutput(t, cb, "project show ACM01"), "ACM01")
}

func TestCommandBar_HelpAndUnknown(t *testing.T) {
	cb := testCommandBar(t, testApp(t))
	assert.Contains(t, execOutput(t, cb, "help"), "open <route>")
	assert.Contains(t, execOutput(t, cb, "frobnicate"), "Unknown command: frobnicate")
}

func TestCommandBar_UnbalancedQuotes(t *testing.T) {
	cb := testCommandBar(t, testApp(t))
	assert.Contains(t, execOutput(t, cb, `profiles "cloud`), "Error:")
}

func TestCommandBar_ExitAndQuit(t *testing.T) {
	cb := testCommandBar(t, testApp(t))
	for _, input := range []string{"exit", "quit"} {
		assert.IsType(t, tea.QuitMsg{}, execCmd(cb, input), input)
	}
	assert.Nil(t, cb.executeCommand("clear"))
	assert.Nil(t, cb.executeCommand("   "))
}

func TestHintForMissingProject(t *testing.T) {
	assert.Empty(t, hintForMissingProject("boom", ""))
	assert.Contains(t, hintForMissingProject(`required flag(s) "project" not set`, ""), "use <id>")
	assert.Contains(t, hintForMissingProject("project ID is required", "ACM01"), "--project ACM01")
}
