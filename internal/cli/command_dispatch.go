package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tender/internal/cli/formatter"
	"github.com/alexanderramin/tender/internal/domain"
	"github.com/alexanderramin/tender/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// executeCommand dispatches a text command and returns a tea.Cmd.
// Commands may return cmdOutputMsg for display, navigation messages
// for view transitions, or quitMsg for exit.
func (c *commandBar) executeCommand(input string) tea.Cmd {
	parts, err := splitShellArgs(input)
	if err != nil {
		return outputCmd(shellError(err))
	}
	if len(parts) == 0 {
		return nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "projects":
		return c.cmdProjects()
	case "new":
		return startNewProjectWizard(c.state)
	case "use":
		return c.cmdUse(args)
	case "demo":
		return tea.Batch(
			loadingCmd("Loading sample projects..."),
			asyncOutputCmd(func() string {
				projects, err := c.state.App.Projects.SeedDemo(context.Background())
				if err != nil {
					return shellError(err)
				}
				c.state.Cache.invalidate()
				return formatter.FormatProjectList(projects)
			}),
			refreshViews(),
		)
	case "profiles":
		return c.ensureProject(func() tea.Cmd {
			return pushView(newSelectionView(c.state, c.state.ActiveProjectID, domain.SelectProfiles, strings.Join(args, " ")))
		})
	case "missions":
		return c.ensureProject(func() tea.Cmd {
			return pushView(newSelectionView(c.state, c.state.ActiveProjectID, domain.SelectMissions, strings.Join(args, " ")))
		})
	case "slides":
		return c.ensureProject(func() tea.Cmd {
			return pushView(newSlidesView(c.state, c.state.ActiveProjectID))
		})
	case "preview":
		return c.ensureProject(func() tea.Cmd {
			return pushView(newPreviewView(c.state, c.state.ActiveProjectID))
		})
	case "generate":
		return c.ensureProject(func() tea.Cmd {
			return pushView(newGenerateView(c.state, c.state.ActiveProjectID))
		})
	case "open":
		return c.cmdOpen(args)
	case "export":
		return c.ensureProject(func() tea.Cmd {
			return c.cmdExport(args)
		})
	case "help":
		return outputCmd(formatter.FormatShellHelp())
	case "clear":
		return nil
	case "exit", "quit":
		return tea.Quit
	case "project", "deck":
		return tea.Batch(
			asyncOutputCmd(func() string {
				return captureCobraOutput(c.state.App, parts, c.state.ActiveProjectID, c.state.ActiveShortID)
			}),
			refreshViews(),
		)
	default:
		return outputCmd(fmt.Sprintf("Unknown command: %s. Type 'help' for available commands.", cmd))
	}
}

// outputCmd returns a tea.Cmd that sends a cmdOutputMsg.
func outputCmd(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

// asyncOutputCmd wraps a blocking function in a tea.Cmd that runs
// asynchronously. The function's string result is delivered as a cmdOutputMsg.
// Use with tea.Batch(loadingCmd(...), asyncOutputCmd(fn)) to show a loading
// indicator while the work runs in a goroutine.
func asyncOutputCmd(fn func() string) tea.Cmd {
	return func() tea.Msg {
		result := fn()
		if result == "" {
			return nil
		}
		return cmdOutputMsg{output: result}
	}
}

func (c *commandBar) cmdProjects() tea.Cmd {
	projects, err := c.state.App.Projects.List(context.Background())
	if err != nil {
		return outputCmd(shellError(err))
	}
	if len(projects) == 0 {
		return outputCmd(formatter.Dim("No projects yet. Type 'new' to create one or 'demo' for samples."))
	}
	return outputCmd(formatter.FormatProjectList(projects))
}

func (c *commandBar) cmdUse(args []string) tea.Cmd {
	if len(args) == 0 {
		if c.state.ActiveProjectID == "" {
			return outputCmd(formatter.StyleYellow.Render("Usage: use <project-id>"))
		}
		return outputCmd(fmt.Sprintf("Active project: %s %s", formatter.StyleGreen.Render(c.state.ActiveShortID), c.state.ActiveProjectTitle))
	}
	ctx := context.Background()
	id, err := resolveProjectID(ctx, c.state.App, args[0])
	if err != nil {
		return outputCmd(shellError(err))
	}
	if err := c.state.SetActiveProject(ctx, id); err != nil {
		return outputCmd(shellError(err))
	}
	return pushView(newProjectView(c.state, id))
}

func (c *commandBar) cmdOpen(args []string) tea.Cmd {
	if len(args) == 0 {
		return outputCmd(formatter.StyleYellow.Render("Usage: open <route>, e.g. open /project/TEC01/missions"))
	}
	route, err := domain.ParseRoute(args[0])
	if err != nil {
		return outputCmd(shellError(err))
	}
	views, err := viewsForRoute(c.state, route)
	if err != nil {
		return outputCmd(shellError(err))
	}
	if len(views) == 0 {
		return popToRoot()
	}
	return pushViews(views...)
}

func (c *commandBar) cmdExport(args []string) tea.Cmd {
	format := service.ExportYAML
	if len(args) > 0 {
		format = service.ExportFormat(strings.ToLower(args[0]))
	}
	var buf bytes.Buffer
	if err := c.state.App.Decks.Export(context.Background(), c.state.ActiveProjectID, format, &buf); err != nil {
		return outputCmd(shellError(err))
	}
	return outputCmd(buf.String())
}

// ── wizard chain helpers ─────────────────────────────────────────────────────

// ensureProject guarantees an active project is set before calling next.
// If no project is active, it launches a project-selection wizard.
func (c *commandBar) ensureProject(next func() tea.Cmd) tea.Cmd {
	if c.state.ActiveProjectID != "" {
		return next()
	}
	ctx := context.Background()
	var result string
	form := wizardSelectProject(ctx, c.state.App, &result)
	if form == nil {
		return outputCmd(formatter.StyleYellow.Render("No projects found. Create one first with 'new'."))
	}
	return pushFormCmd(c.state, "Select Project", form, func() tea.Cmd {
		if err := c.state.SetActiveProject(ctx, result); err != nil {
			return outputCmd(shellError(err))
		}
		return next()
	})
}
