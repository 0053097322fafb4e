package catalog

import (
	"fmt"

	"github.com/alexanderramin/tender/internal/domain"
)

// Validate checks a catalog for errors before conversion and returns
// every problem found.
func Validate(f *File) []error {
	var errs []error

	for i, in := range f.Analysis.Insights {
		if in.Key == "" {
			errs = append(errs, fmt.Errorf("analysis.insights[%d].key is required", i))
		}
		errs = append(errs, checkScore(fmt.Sprintf("analysis.insights[%d].score", i), in.Score)...)
	}

	seen := make(map[string]bool)
	for i, p := range f.Profiles {
		prefix := fmt.Sprintf("profiles[%d]", i)
		errs = append(errs, checkID(prefix, p.ID, seen)...)
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if p.Experience < 0 {
			errs = append(errs, fmt.Errorf("%s.experience must be >= 0", prefix))
		}
		errs = append(errs, checkScore(prefix+".match_score", p.MatchScore)...)
		for j, s := range p.Skills {
			errs = append(errs, checkScore(fmt.Sprintf("%s.skills[%d].level", prefix, j), s.Level)...)
		}
	}

	seen = make(map[string]bool)
	for i, m := range f.Missions {
		prefix := fmt.Sprintf("missions[%d]", i)
		errs = append(errs, checkID(prefix, m.ID, seen)...)
		if m.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		errs = append(errs, checkScore(prefix+".match_score", m.MatchScore)...)
	}

	for i, d := range f.DemoProjects {
		prefix := fmt.Sprintf("demo_projects[%d]", i)
		if d.Title == "" || d.Client == "" {
			errs = append(errs, fmt.Errorf("%s: title and client are required", prefix))
		}
		if !domain.ValidProjectStatuses[d.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, d.Status))
		}
		errs = append(errs, checkScore(prefix+".progress", d.Progress)...)
	}

	return errs
}

func checkID(prefix, id string, seen map[string]bool) []error {
	if id == "" {
		return []error{fmt.Errorf("%s.id is required", prefix)}
	}
	if seen[id] {
		return []error{fmt.Errorf("%s.id: duplicate %q", prefix, id)}
	}
	seen[id] = true
	return nil
}

func checkScore(field string, v float64) []error {
	if v < 0 || v > 1 {
		return []error{fmt.Errorf("%s must be between 0 and 1, got %v", field, v)}
	}
	return nil
}
