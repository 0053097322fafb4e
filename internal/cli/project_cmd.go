package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/tender/internal/cli/formatter"
	"github.com/alexanderramin/tender/internal/progress"
	"github.com/alexanderramin/tender/internal/repository"
	"github.com/spf13/cobra"
)

func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	// 1. Exact short ID match (case-insensitive)
	for _, p := range projects {
		if strings.EqualFold(p.ShortID, input) {
			return p.ID, nil
		}
	}

	// 2. Exact UUID match
	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	// 3. UUID prefix match
	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage proposal projects",
	}

	cmd.AddCommand(
		newProjectNewCmd(app),
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectDeleteCmd(app),
		newProjectDemoCmd(app),
	)

	return cmd
}

func newProjectNewCmd(app *App) *cobra.Command {
	fields := &newProjectFields{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a project from an RFP document",
		Long: `Create a project from an RFP document.

The document must be a PDF, DOCX or TXT file of at most 10MB. It is
uploaded and processed, then the project is created with its RFP
analysis and stage tracker.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := newProjectRequest(fields)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", formatter.Dim("Uploading"), req.File.Name)
			if err := runTask(cmd.Context(), out, progress.NewUploadTask(app.Upload), app.interactive()); err != nil {
				return err
			}

			p, err := app.Projects.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Created project %s [%s]\n", p.Title, formatter.StyleGreen.Render(p.ShortID))
			return nil
		},
	}

	cmd.Flags().StringVar(&fields.title, "title", "", "Project title")
	cmd.Flags().StringVar(&fields.client, "client", "", "Client name")
	cmd.Flags().StringVar(&fields.path, "file", "", "RFP document (PDF, DOCX or TXT, 10MB max)")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projects, err := app.Projects.List(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(projects) == 0 {
				fmt.Fprintln(out, formatter.Dim("No projects yet. Create one with 'tender project new' or load samples with 'tender project demo'."))
				return nil
			}
			stats, err := app.Projects.Stats(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.FormatProjectList(projects))
			fmt.Fprintln(out, "  "+formatter.FormatStats(stats.Total, stats.InProgress, stats.Completed))
			return nil
		},
	}
}

func newProjectShowCmd(app *App) *cobra.Command {
	var tab string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a project's overview, analysis and selections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			data, err := loadProjectData(ctx, app, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch tab {
			case "overview":
				fmt.Fprintln(out, formatter.FormatProjectDetail(data.detail, -1))
			case "analysis":
				fmt.Fprintln(out, formatter.FormatAnalysis(data.detail.Analysis, 76))
			case "profiles":
				fmt.Fprintln(out, formatter.FormatProfileList(data.profiles, data.profileSel))
			case "missions":
				fmt.Fprintln(out, formatter.FormatMissionList(data.missions, data.missionSel))
			default:
				return fmt.Errorf("unknown tab %q (use %s)", tab, strings.ToLower(strings.Join(projectTabNames, ", ")))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tab, "tab", "overview", "Tab to show: overview, analysis, profiles, missions")

	return cmd
}

func newProjectDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project with its document, analysis, selections and deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, id); err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("project %s was already deleted", p.DisplayID())
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %s [%s]\n", p.Title, p.DisplayID())
			return nil
		},
	}
}

func newProjectDemoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Load the sample projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.SeedDemo(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectList(projects))
			return nil
		},
	}
}
