package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tender/internal/cli/formatter"
	"github.com/alexanderramin/tender/internal/domain"
	"github.com/alexanderramin/tender/internal/matching"
	"github.com/spf13/cobra"
)

func newProfilesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profiles",
		Aliases: []string{"profile"},
		Short:   "Browse and select expert profiles",
	}

	cmd.AddCommand(
		newProfilesListCmd(app),
		newProfilesShowCmd(app),
		newToggleCmd(app, domain.SelectProfiles),
	)

	return cmd
}

func newMissionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "missions",
		Aliases: []string{"mission"},
		Short:   "Browse and select reference missions",
	}

	cmd.AddCommand(
		newMissionsListCmd(app),
		newMissionsShowCmd(app),
		newToggleCmd(app, domain.SelectMissions),
	)

	return cmd
}

func newProfilesListCmd(app *App) *cobra.Command {
	var (
		filter    matching.ProfileFilter
		projectID string
	)

	cmd := &cobra.Command{
		Use:     "list [query]",
		Aliases: []string{"search"},
		Short:   "List profiles, best match first",
		Long: `List profiles, best match first.

The query matches name, role and expertise case-insensitively. With
--project the list marks the project's selected profiles.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			profiles, err := app.Catalog.Profiles(ctx, strings.Join(args, " "), filter)
			if err != nil {
				return err
			}
			var sel *domain.SelectionSet
			if projectID != "" {
				id, err := resolveProjectID(ctx, app, projectID)
				if err != nil {
					return err
				}
				if sel, err = app.Selections.Load(ctx, id, domain.SelectProfiles); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if len(profiles) == 0 {
				fmt.Fprintln(out, formatter.Dim("No profiles match."))
				return nil
			}
			fmt.Fprintln(out, formatter.FormatProfileList(profiles, sel))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&filter.Roles, "role", nil, "Only these roles (repeatable)")
	cmd.Flags().StringSliceVar(&filter.Skills, "skill", nil, "Require these skills (repeatable)")
	cmd.Flags().IntVar(&filter.MinExperience, "min-exp", 0, "Minimum years of experience")
	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Mark the selection of this project")

	return cmd
}

func newMissionsListCmd(app *App) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:     "list [query]",
		Aliases: []string{"search"},
		Short:   "List missions, best match first",
		Long: `List missions, best match first.

The query matches title, client and technologies case-insensitively.
With --project the list marks the project's selected missions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			missions, err := app.Catalog.Missions(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			var sel *domain.SelectionSet
			if projectID != "" {
				id, err := resolveProjectID(ctx, app, projectID)
				if err != nil {
					return err
				}
				if sel, err = app.Selections.Load(ctx, id, domain.SelectMissions); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if len(missions) == 0 {
				fmt.Fprintln(out, formatter.Dim("No missions match."))
				return nil
			}
			fmt.Fprintln(out, formatter.FormatMissionList(missions, sel))
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Mark the selection of this project")

	return cmd
}

func newProfilesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a profile card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Catalog.Profile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfileCard(*p, 72))
			return nil
		},
	}
}

func newMissionsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a mission card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Catalog.Mission(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMissionCard(*m, 72))
			return nil
		},
	}
}

// newToggleCmd flips catalog entries in or out of a project's selection.
func newToggleCmd(app *App, kind domain.SelectionKind) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "toggle <id>...",
		Short: fmt.Sprintf("Select or deselect %ss for a project", kind),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveProjectID(ctx, app, projectID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			var set *domain.SelectionSet
			for _, entityID := range args {
				if set, err = app.Selections.Toggle(ctx, id, kind, entityID); err != nil {
					return err
				}
				verb := "Deselected"
				if set.Contains(entityID) {
					verb = "Selected"
				}
				fmt.Fprintf(out, "%s %s %s\n", verb, kind, formatter.StyleGreen.Render(entityID))
			}
			fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("%d %ss selected", set.Count(), kind)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Project ID (required)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
