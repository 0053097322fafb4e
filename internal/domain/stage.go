package domain

import (
	"math"
	"time"
)

// Stage is one row of a project's progress tracker.
type Stage struct {
	ID     string
	Name   string
	Status StageStatus
	Date   *time.Time // completion date, nil unless completed
	Order  int
}

// Affordance is the action offered next to a stage.
type Affordance string

const (
	AffordanceNone     Affordance = ""
	AffordanceContinue Affordance = "continue"
	AffordanceView     Affordance = "view"
)

// Affordance derives the stage action purely from its status.
func (s Stage) Affordance() Affordance {
	switch s.Status {
	case StageInProgress:
		return AffordanceContinue
	case StageCompleted:
		return AffordanceView
	default:
		return AffordanceNone
	}
}

// Route returns where the stage's action leads. Document and analysis
// stages open the project page itself.
func (s Stage) Route(projectID string) Route {
	switch Screen(s.ID) {
	case ScreenProfiles, ScreenMissions, ScreenSlides:
		return Route{Screen: Screen(s.ID), ProjectID: projectID}
	}
	return Route{Screen: ScreenProject, ProjectID: projectID}
}

// DefaultStages returns the tracker seeded for a freshly created project:
// the upload and analysis are done, profile selection is under way.
func DefaultStages(now time.Time) []Stage {
	day := func() *time.Time {
		d := now.UTC().Truncate(24 * time.Hour)
		return &d
	}
	return []Stage{
		{ID: "document", Name: "Document Upload", Status: StageCompleted, Date: day(), Order: 0},
		{ID: "analysis", Name: "RFP Analysis", Status: StageCompleted, Date: day(), Order: 1},
		{ID: "profiles", Name: "Profile Selection", Status: StageInProgress, Order: 2},
		{ID: "missions", Name: "Mission Selection", Status: StagePending, Order: 3},
		{ID: "slides", Name: "Slide Generation", Status: StagePending, Order: 4},
	}
}

// StagesAtProgress returns a tracker whose leading stages are completed in
// proportion to progress (0..1). The first unfinished stage is in progress.
func StagesAtProgress(now time.Time, progress float64) []Stage {
	stages := DefaultStages(now)
	done := int(math.Floor(progress*float64(len(stages)) + 1e-9))
	done = min(max(done, 0), len(stages))
	for i := range stages {
		switch {
		case i < done:
			if stages[i].Date == nil {
				d := now.UTC().Truncate(24 * time.Hour)
				stages[i].Date = &d
			}
			stages[i].Status = StageCompleted
		case i == done:
			stages[i].Status = StageInProgress
			stages[i].Date = nil
		default:
			stages[i].Status = StagePending
			stages[i].Date = nil
		}
	}
	return stages
}
