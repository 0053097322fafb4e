package cli

import (
	"fmt"

	"github.com/alexanderramin/tender/internal/domain"
	"github.com/alexanderramin/tender/internal/progress"
	"github.com/alexanderramin/tender/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects   service.ProjectService
	Catalog    service.CatalogService
	Selections service.SelectionService
	Decks      service.DeckService

	// Task timing for the simulated upload and generation runs.
	Upload     progress.UploadConfig
	Generation progress.GenerationConfig
	// Rand drives generation progress. Nil seeds from the clock.
	Rand progress.RandSource

	// HistoryFile keeps command-bar history across sessions. Empty keeps
	// it in memory.
	HistoryFile string

	// IsInteractive reports whether stdin is a terminal. When it is and no
	// subcommand is given, the root command starts the TUI.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tender" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tender",
		Short: "Build RFP responses: team, references and slide deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return cmd.Help()
			}
			return runTUI(app, nil)
		},
	}

	root.AddCommand(
		newProjectCmd(app),
		newProfilesCmd(app),
		newMissionsCmd(app),
		newDeckCmd(app),
		newOpenCmd(app),
	)

	return root
}

// runTUI starts the full-screen interface, optionally opened at route.
func runTUI(app *App, route *domain.Route) error {
	m := newAppModel(app)
	if route != nil {
		views, err := viewsForRoute(m.state, *route)
		if err != nil {
			return err
		}
		m.views = append(m.views, views...)
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
