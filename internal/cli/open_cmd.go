package cli

import (
	"fmt"

	"github.com/alexanderramin/tender/internal/domain"
	"github.com/spf13/cobra"
)

func newOpenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open <route>",
		Short: "Start the TUI at a route",
		Long: `Start the TUI at a route.

Routes:
  /                          dashboard
  /new                       new project form
  /project/<id>              project overview
  /project/<id>/profiles     step 1, expert profiles
  /project/<id>/missions     step 2, reference missions
  /project/<id>/slides       step 3, slide configuration
  /project/<id>/preview      step 4, deck preview

<id> may be a short ID such as TEC01 or a UUID prefix.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			route, err := domain.ParseRoute(args[0])
			if err != nil {
				return err
			}
			if !app.interactive() {
				return fmt.Errorf("open needs an interactive terminal")
			}
			return runTUI(app, &route)
		},
	}
}
