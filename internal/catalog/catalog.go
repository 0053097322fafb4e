// Package catalog loads the expert profiles, reference missions and RFP
// analysis template that proposals are assembled from.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/tender/internal/domain"
)

//go:embed seed.yaml
var defaultSeed []byte

// Catalog is a validated, converted catalog file.
type Catalog struct {
	Analysis     AnalysisTemplate
	Profiles     []domain.Profile
	Missions     []domain.Mission
	DemoProjects []DemoProject
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultSeed)
}

// Load reads a catalog from path. An empty path loads the embedded one.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates catalog YAML. Unknown fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if errs := Validate(&f); len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return Convert(&f), nil
}

// Convert maps a validated File to domain values.
func Convert(f *File) *Catalog {
	c := &Catalog{
		Analysis:     f.Analysis,
		Profiles:     make([]domain.Profile, 0, len(f.Profiles)),
		Missions:     make([]domain.Mission, 0, len(f.Missions)),
		DemoProjects: f.DemoProjects,
	}
	for _, p := range f.Profiles {
		c.Profiles = append(c.Profiles, domain.Profile{
			ID:             p.ID,
			Name:           p.Name,
			Role:           p.Role,
			Expertise:      p.Expertise,
			Experience:     p.Experience,
			MatchScore:     p.MatchScore,
			Availability:   p.Availability,
			Languages:      p.Languages,
			Photo:          p.Photo,
			RecentMissions: p.RecentMissions,
			Skills:         p.Skills,
		})
	}
	for _, m := range f.Missions {
		c.Missions = append(c.Missions, domain.Mission{
			ID:           m.ID,
			Title:        m.Title,
			Client:       m.Client,
			Year:         m.Year,
			Duration:     m.Duration,
			Description:  m.Description,
			Technologies: m.Technologies,
			Outcomes:     m.Outcomes,
			Team:         m.Team,
			MatchScore:   m.MatchScore,
		})
	}
	return c
}

// NewAnalysis builds the analysis recorded for a freshly created project.
// Suggested counts are the catalog entries scoring at least threshold.
func (c *Catalog) NewAnalysis(projectID string, threshold float64) *domain.Analysis {
	profileScores := make([]float64, len(c.Profiles))
	for i, p := range c.Profiles {
		profileScores[i] = p.MatchScore
	}
	missionScores := make([]float64, len(c.Missions))
	for i, m := range c.Missions {
		missionScores[i] = m.MatchScore
	}
	insights := make([]domain.Insight, len(c.Analysis.Insights))
	copy(insights, c.Analysis.Insights)
	return &domain.Analysis{
		ProjectID:         projectID,
		Summary:           c.Analysis.Summary,
		Insights:          insights,
		SuggestedProfiles: domain.CountSuggested(profileScores, threshold),
		SuggestedMissions: domain.CountSuggested(missionScores, threshold),
	}
}
