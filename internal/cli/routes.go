package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tender/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// stepView builds the view for a wizard route of a resolved project.
func stepView(state *SharedState, route domain.Route) (View, error) {
	switch route.Screen {
	case domain.ScreenProject:
		return newProjectView(state, route.ProjectID), nil
	case domain.ScreenProfiles:
		return newSelectionView(state, route.ProjectID, domain.SelectProfiles, ""), nil
	case domain.ScreenMissions:
		return newSelectionView(state, route.ProjectID, domain.SelectMissions, ""), nil
	case domain.ScreenSlides:
		return newSlidesView(state, route.ProjectID), nil
	case domain.ScreenPreview:
		return newPreviewView(state, route.ProjectID), nil
	}
	return nil, fmt.Errorf("no screen for route %s", route)
}

// viewsForRoute returns the views to stack above the dashboard to show
// route. Project IDs may be short IDs or UUID prefixes. Wizard steps sit
// on top of their project so esc lands on the project. The routed
// project becomes the active one.
func viewsForRoute(state *SharedState, route domain.Route) ([]View, error) {
	switch route.Screen {
	case domain.ScreenDashboard:
		return nil, nil
	case domain.ScreenNewProject:
		fields := &newProjectFields{}
		return []View{newFormView(state, "New Project", wizardNewProject(fields), func() tea.Cmd {
			return submitNewProject(state, fields)
		})}, nil
	}

	ctx := context.Background()
	id, err := resolveProjectID(ctx, state.App, route.ProjectID)
	if err != nil {
		return nil, err
	}
	if err := state.SetActiveProject(ctx, id); err != nil {
		return nil, err
	}
	route.ProjectID = id
	views := []View{newProjectView(state, id)}
	if route.Screen == domain.ScreenProject {
		return views, nil
	}
	step, err := stepView(state, route)
	if err != nil {
		return nil, err
	}
	return append(views, step), nil
}

// stepNav moves delta steps through the wizard, replacing the current
// step. Moving before the first step returns to the project.
func stepNav(state *SharedState, projectID string, from domain.WizardStep, delta int) tea.Cmd {
	target := from.Index + delta
	if target < 1 {
		return popView()
	}
	if target > len(domain.WizardSteps) {
		return nil
	}
	view, err := stepView(state, domain.WizardSteps[target-1].Route(projectID))
	if err != nil {
		return outputCmd(shellError(err))
	}
	return replaceView(view)
}
