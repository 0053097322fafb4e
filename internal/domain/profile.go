package domain

// Profile is a candidate expert offered for a proposal team.
type Profile struct {
	ID             string
	Name           string
	Role           string
	Expertise      []string
	Experience     int // years
	MatchScore     float64
	Availability   string
	Languages      []string
	Photo          string
	RecentMissions []RecentMission
	Skills         []Skill
}

type RecentMission struct {
	Name     string `yaml:"name" json:"name"`
	Year     string `yaml:"year" json:"year"`
	Duration string `yaml:"duration" json:"duration"`
}

// Skill is a named skill with a proficiency level in [0,1].
type Skill struct {
	Name  string  `yaml:"name" json:"name"`
	Level float64 `yaml:"level" json:"level"`
}

func (p Profile) SearchFields() (primary, secondary string, tags []string) {
	return p.Name, p.Role, p.Expertise
}

func (p Profile) Score() float64 { return p.MatchScore }

// HasSkill reports whether name appears in the profile's skills or expertise.
func (p Profile) HasSkill(name string) bool {
	for _, s := range p.Skills {
		if s.Name == name {
			return true
		}
	}
	for _, e := range p.Expertise {
		if e == name {
			return true
		}
	}
	return false
}
