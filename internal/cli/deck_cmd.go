package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tender/internal/cli/formatter"
	"github.com/alexanderramin/tender/internal/domain"
	"github.com/alexanderramin/tender/internal/progress"
	"github.com/alexanderramin/tender/internal/service"
	"github.com/spf13/cobra"
)

func newDeckCmd(app *App) *cobra.Command {
	var projectFlag string

	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Configure, generate and export a project's slide deck",
	}
	cmd.PersistentFlags().StringVarP(&projectFlag, "project", "p", "", "Project ID (required)")
	_ = cmd.MarkPersistentFlagRequired("project")

	project := func(cmd *cobra.Command) (string, error) {
		return resolveProjectID(cmd.Context(), app, projectFlag)
	}

	cmd.AddCommand(
		newDeckShowCmd(app, project),
		newDeckConfigureCmd(app, project),
		newDeckGenerateCmd(app, project),
		newDeckPreviewCmd(app, project),
		newDeckExportCmd(app, project),
	)

	return cmd
}

type projectResolver func(cmd *cobra.Command) (string, error)

func newDeckShowCmd(app *App, project projectResolver) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the deck settings and slide outline",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := project(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			cfg, err := app.Decks.Config(ctx, id)
			if err != nil {
				return err
			}
			slides, err := app.Decks.Outline(ctx, id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Deck settings"))
			fmt.Fprint(out, formatter.FormatDeckConfig(*cfg))
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.Header(fmt.Sprintf("Outline (%d slides)", len(slides))))
			fmt.Fprintln(out, formatter.FormatOutline(slides))
			return nil
		},
	}
}

func newDeckConfigureCmd(app *App, project projectResolver) *cobra.Command {
	var (
		template, format, language string
		exclude, include           []string
	)

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Change the template, format, language or included slides",
		Long: `Change the template, format, language or included slides.

Templates: corporate, modern, minimal, bold.
Formats:   pptx, pdf, gslides.
Languages: en, fr, es, de.

Slides are named by ID as listed in 'deck show'. Selected profiles and
missions use profile-<id> and mission-<id>.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := project(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			cfg, err := app.Decks.Config(ctx, id)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("template") {
				cfg.Template = domain.DeckTemplate(strings.ToLower(template))
			}
			if flags.Changed("format") {
				cfg.Format = domain.DeckFormat(strings.ToLower(format))
			}
			if flags.Changed("language") {
				cfg.Language = strings.ToLower(language)
			}
			for _, slideID := range exclude {
				if cfg.Includes(slideID) {
					cfg.ToggleSlide(slideID)
				}
			}
			for _, slideID := range include {
				if !cfg.Includes(slideID) {
					cfg.ToggleSlide(slideID)
				}
			}

			if err := app.Decks.SaveConfig(ctx, cfg); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.StyleGreen.Render("Deck settings saved"))
			fmt.Fprint(out, formatter.FormatDeckConfig(*cfg))
			return nil
		},
	}

	cmd.Flags().StringVar(&template, "template", "", "Deck template")
	cmd.Flags().StringVar(&format, "format", "", "Output format")
	cmd.Flags().StringVar(&language, "language", "", "Deck language")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Slide IDs to leave out")
	cmd.Flags().StringSliceVar(&include, "include", nil, "Slide IDs to put back")

	return cmd
}

func newDeckGenerateCmd(app *App, project projectResolver) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the deck from the current outline",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := project(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			slides, err := app.Decks.Outline(ctx, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d slides\n", formatter.Dim("Generating"), len(slides))
			task := progress.NewGenerationTask(app.Generation, len(slides), app.Rand)
			if err := runTask(ctx, out, task, app.interactive()); err != nil {
				return err
			}
			if err := app.Decks.RecordGeneration(ctx, id, len(slides)); err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.Dim("Preview with 'tender deck preview', export with 'tender deck export'."))
			return nil
		},
	}
}

func newDeckPreviewCmd(app *App, project projectResolver) *cobra.Command {
	var number, width int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render slides in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := project(cmd)
			if err != nil {
				return err
			}
			slides, err := app.Decks.Outline(cmd.Context(), id)
			if err != nil {
				return err
			}
			if len(slides) == 0 {
				return fmt.Errorf("deck has no slides")
			}

			out := cmd.OutOrStdout()
			if number == 0 {
				for _, sl := range slides {
					fmt.Fprintln(out, formatter.Header(fmt.Sprintf("%d/%d  %s", sl.Number, len(slides), sl.Title)))
					fmt.Fprintln(out, formatter.RenderSlide(sl, width))
				}
				return nil
			}
			if number < 1 || number > len(slides) {
				return fmt.Errorf("slide %d out of range (1-%d)", number, len(slides))
			}
			sl := slides[number-1]
			fmt.Fprintln(out, formatter.Header(fmt.Sprintf("%d/%d  %s", sl.Number, len(slides), sl.Title)))
			fmt.Fprintln(out, formatter.RenderSlide(sl, width))
			return nil
		},
	}

	cmd.Flags().IntVar(&number, "slide", 0, "Render only this slide number")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width")

	return cmd
}

func newDeckExportCmd(app *App, project projectResolver) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the deck outline as YAML or JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := project(cmd)
			if err != nil {
				return err
			}
			return app.Decks.Export(cmd.Context(), id, service.ExportFormat(format), cmd.OutOrStdout())
		},
	}

	cmd.Flags().Var(newChoiceValue(&format, string(service.ExportYAML), string(service.ExportYAML), string(service.ExportJSON)),
		"format", "Export format: yaml or json")

	return cmd
}
