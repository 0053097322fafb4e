package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tender/internal/cli/formatter"
	"github.com/alexanderramin/tender/internal/domain"
	"github.com/alexanderramin/tender/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// tenderHuhTheme returns a custom huh theme using the Gruvbox palette.
func tenderHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardSelectProject creates a huh form to select a project from the list.
func wizardSelectProject(ctx context.Context, app *App, result *string) *huh.Form {
	projects, err := app.Projects.List(ctx)
	if err != nil || len(projects) == 0 {
		return nil
	}

	options := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		label := fmt.Sprintf("%s  %s (%s)", p.DisplayID(), p.Title, p.Client)
		options = append(options, huh.NewOption(label, p.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which Project?").
				Options(options...).
				Value(result),
		),
	).WithTheme(tenderHuhTheme()).WithShowHelp(false)
}

// newProjectFields is bound to the new-project form inputs.
type newProjectFields struct {
	title  string
	client string
	path   string
}

func requiredField(s string) error {
	if strings.TrimSpace(s) == "" {
		return domain.ErrMissingFields
	}
	return nil
}

// validateRFPPath checks the file exists and is an accepted RFP document.
func validateRFPPath(path string) error {
	if err := requiredField(path); err != nil {
		return err
	}
	upload, err := service.InspectFile(strings.TrimSpace(path))
	if err != nil {
		return err
	}
	return domain.ValidateUpload(*upload)
}

// wizardNewProject creates the form that collects a project's title,
// client and RFP document.
func wizardNewProject(fields *newProjectFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project title").
				Placeholder("Cloud Migration Services").
				Value(&fields.title).
				Validate(requiredField),
			huh.NewInput().
				Title("Client").
				Placeholder("TechCorp Solutions").
				Value(&fields.client).
				Validate(requiredField),
			huh.NewInput().
				Title("RFP document").
				Description("Path to a PDF, DOCX or TXT file, 10MB max").
				Value(&fields.path).
				Validate(validateRFPPath),
		),
	).WithTheme(tenderHuhTheme()).WithShowHelp(false)
}

// startNewProjectWizard pushes the new-project form. On submit the
// upload runs and the project is created.
func startNewProjectWizard(state *SharedState) tea.Cmd {
	fields := &newProjectFields{}
	form := wizardNewProject(fields)
	return pushFormCmd(state, "New Project", form, func() tea.Cmd {
		return submitNewProject(state, fields)
	})
}

// submitNewProject validates the collected fields and starts the upload.
// Validation failures are shown as output and nothing is persisted.
func submitNewProject(state *SharedState, fields *newProjectFields) tea.Cmd {
	req, err := newProjectRequest(fields)
	if err != nil {
		return outputCmd(shellError(err))
	}
	return pushView(newUploadView(state, req))
}

func newProjectRequest(fields *newProjectFields) (service.CreateProjectRequest, error) {
	req := service.CreateProjectRequest{
		Title:  strings.TrimSpace(fields.title),
		Client: strings.TrimSpace(fields.client),
	}
	if path := strings.TrimSpace(fields.path); path != "" {
		upload, err := service.InspectFile(path)
		if err != nil {
			return req, err
		}
		req.File = upload
	}
	form := domain.NewProjectForm{Title: req.Title, Client: req.Client, File: req.File}
	if err := form.Validate(); err != nil {
		return req, err
	}
	return req, nil
}
