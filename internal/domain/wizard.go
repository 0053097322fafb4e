package domain

import (
	"fmt"
	"strings"
)

// Screen names every addressable screen of the application.
type Screen string

const (
	ScreenDashboard  Screen = "dashboard"
	ScreenNewProject Screen = "new"
	ScreenProject    Screen = "project"
	ScreenProfiles   Screen = "profiles"
	ScreenMissions   Screen = "missions"
	ScreenSlides     Screen = "slides"
	ScreenPreview    Screen = "preview"
)

// WizardStep is one position in the proposal wizard.
type WizardStep struct {
	Index  int // 1-based
	Screen Screen
	Label  string
}

// WizardSteps is the fixed order of the proposal wizard.
var WizardSteps = []WizardStep{
	{Index: 1, Screen: ScreenProfiles, Label: "Select Profiles"},
	{Index: 2, Screen: ScreenMissions, Label: "Select Missions"},
	{Index: 3, Screen: ScreenSlides, Label: "Configure Slides"},
	{Index: 4, Screen: ScreenPreview, Label: "Preview"},
}

// StepForScreen returns the wizard step shown on screen, if it is one.
func StepForScreen(screen Screen) (WizardStep, bool) {
	for _, s := range WizardSteps {
		if s.Screen == screen {
			return s, true
		}
	}
	return WizardStep{}, false
}

// StepProgress returns the progress-bar width for a 1-based step index.
func StepProgress(index int) float64 {
	return float64(index) / float64(len(WizardSteps)) * 100
}

// Route returns the address of the step for a project.
func (s WizardStep) Route(projectID string) Route {
	return Route{Screen: s.Screen, ProjectID: projectID}
}

// Route is a parsed navigation address. ProjectID is empty for the
// dashboard and new-project screens.
type Route struct {
	Screen    Screen
	ProjectID string
}

func (r Route) String() string {
	switch r.Screen {
	case ScreenDashboard:
		return "/"
	case ScreenNewProject:
		return "/new"
	case ScreenProject:
		return "/project/" + r.ProjectID
	default:
		return "/project/" + r.ProjectID + "/" + string(r.Screen)
	}
}

// ParseRoute parses addresses like "/", "/new", "/project/ID" and
// "/project/ID/missions". No step ordering is enforced.
func ParseRoute(path string) (Route, error) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return Route{Screen: ScreenDashboard}, nil
	}
	parts := strings.Split(trimmed, "/")
	if len(parts) == 1 && parts[0] == "new" {
		return Route{Screen: ScreenNewProject}, nil
	}
	if parts[0] != "project" || len(parts) < 2 || len(parts) > 3 || parts[1] == "" {
		return Route{}, fmt.Errorf("unknown route %q", path)
	}
	if len(parts) == 2 {
		return Route{Screen: ScreenProject, ProjectID: parts[1]}, nil
	}
	screen := Screen(parts[2])
	if _, ok := StepForScreen(screen); !ok {
		return Route{}, fmt.Errorf("unknown route %q", path)
	}
	return Route{Screen: screen, ProjectID: parts[1]}, nil
}
