package catalog

import "github.com/alexanderramin/tender/internal/domain"

// File is the top-level YAML structure of a catalog file.
type File struct {
	Analysis     AnalysisTemplate `yaml:"analysis"`
	Profiles     []ProfileEntry   `yaml:"profiles"`
	Missions     []MissionEntry   `yaml:"missions"`
	DemoProjects []DemoProject    `yaml:"demo_projects,omitempty"`
}

// AnalysisTemplate is copied onto every new project in place of parsing
// its document.
type AnalysisTemplate struct {
	Summary  string           `yaml:"summary"`
	Insights []domain.Insight `yaml:"insights"`
}

type ProfileEntry struct {
	ID             string                 `yaml:"id"`
	Name           string                 `yaml:"name"`
	Role           string                 `yaml:"role"`
	Expertise      []string               `yaml:"expertise"`
	Experience     int                    `yaml:"experience"`
	MatchScore     float64                `yaml:"match_score"`
	Availability   string                 `yaml:"availability"`
	Languages      []string               `yaml:"languages"`
	Photo          string                 `yaml:"photo,omitempty"`
	RecentMissions []domain.RecentMission `yaml:"recent_missions,omitempty"`
	Skills         []domain.Skill         `yaml:"skills,omitempty"`
}

type MissionEntry struct {
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	Client       string   `yaml:"client"`
	Year         string   `yaml:"year"`
	Duration     string   `yaml:"duration"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
	Outcomes     []string `yaml:"outcomes,omitempty"`
	Team         []string `yaml:"team,omitempty"`
	MatchScore   float64  `yaml:"match_score"`
}

// DemoProject is a sample dashboard entry created by `tender project demo`.
type DemoProject struct {
	Title    string  `yaml:"title"`
	Client   string  `yaml:"client"`
	Status   string  `yaml:"status"`
	Progress float64 `yaml:"progress"`
}
