package domain

import (
	"fmt"
	"strings"
	"time"
)

// DeckConfig holds the presentation settings of a project.
type DeckConfig struct {
	ProjectID   string
	Template    DeckTemplate
	Format      DeckFormat
	Language    string
	Excluded    []string // slide IDs left out of the outline
	GeneratedAt *time.Time
	SlideCount  int
}

// DefaultDeckConfig returns the settings a project starts with.
func DefaultDeckConfig(projectID string) DeckConfig {
	return DeckConfig{
		ProjectID: projectID,
		Template:  TemplateCorporate,
		Format:    FormatPPTX,
		Language:  "en",
		Excluded:  []string{"timeline"},
	}
}

func (c DeckConfig) Validate() error {
	if _, ok := ValidTemplates[c.Template]; !ok {
		return fmt.Errorf("unknown template %q", c.Template)
	}
	if _, ok := ValidFormats[c.Format]; !ok {
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if _, ok := ValidLanguages[c.Language]; !ok {
		return fmt.Errorf("unknown language %q", c.Language)
	}
	return nil
}

// Includes reports whether the slide with id is part of the deck.
func (c DeckConfig) Includes(slideID string) bool {
	for _, id := range c.Excluded {
		if id == slideID {
			return false
		}
	}
	return true
}

// ToggleSlide flips whether slideID is included.
func (c *DeckConfig) ToggleSlide(slideID string) {
	set := NewSelectionSet(c.Excluded...)
	set.Toggle(slideID)
	c.Excluded = set.IDs()
}

// Generated reports whether a deck has been generated for the config.
func (c DeckConfig) Generated() bool {
	return c.GeneratedAt != nil
}

// DeckSection groups slides on the configuration screen.
type DeckSection struct {
	ID     string
	Title  string
	Slides []SlideDef
}

// SlideDef is a static slide of a section.
type SlideDef struct {
	ID    string
	Title string
	Kind  string
}

// DeckSections is the fixed section layout of every deck. The team and
// case-studies sections also get one slide per selected entity.
var DeckSections = []DeckSection{
	{ID: "introduction", Title: "Introduction & Executive Summary", Slides: []SlideDef{
		{ID: "title-slide", Title: "Title Slide", Kind: "cover"},
		{ID: "about-us", Title: "About Us", Kind: "intro"},
		{ID: "exec-summary", Title: "Executive Summary", Kind: "text"},
		{ID: "project-timeline", Title: "Project Timeline", Kind: "timeline"},
	}},
	{ID: "team", Title: "Expert Team", Slides: []SlideDef{
		{ID: "team-overview", Title: "Team Overview", Kind: "team"},
	}},
	{ID: "case-studies", Title: "Case Studies & References", Slides: []SlideDef{
		{ID: "case-studies-overview", Title: "Case Studies Overview", Kind: "intro"},
	}},
	{ID: "methodology", Title: "Approach & Methodology", Slides: []SlideDef{
		{ID: "approach-overview", Title: "Project Approach", Kind: "methodology"},
		{ID: "methodology", Title: "Methodology", Kind: "methodology"},
		{ID: "deliverables", Title: "Deliverables", Kind: "list"},
		{ID: "timeline", Title: "Timeline & Milestones", Kind: "timeline"},
	}},
	{ID: "closing", Title: "Commercials & Next Steps", Slides: []SlideDef{
		{ID: "pricing", Title: "Pricing", Kind: "table"},
		{ID: "next-steps", Title: "Next Steps", Kind: "conclusion"},
	}},
}

// DefaultExpandedSections are open when the configuration screen loads.
var DefaultExpandedSections = []string{"introduction", "team"}

// Slide is one generated slide of the outline.
type Slide struct {
	Number  int    `yaml:"number" json:"number"`
	ID      string `yaml:"id" json:"id"`
	Section string `yaml:"section" json:"section"`
	Title   string `yaml:"title" json:"title"`
	Kind    string `yaml:"kind" json:"kind"`
	Body    string `yaml:"body" json:"body"` // markdown
}

// OutlineInput carries everything BuildOutline draws from.
type OutlineInput struct {
	Project  *Project
	Analysis *Analysis
	Config   DeckConfig
	Profiles []Profile
	Missions []Mission
}

// ProfileSlideID and MissionSlideID name the per-entity slides.
func ProfileSlideID(id string) string { return "profile-" + id }
func MissionSlideID(id string) string { return "mission-" + id }

// BuildOutline lays out the deck: each section's static slides, with
// one slide per selected profile after the team overview and one per
// selected mission after the case-studies overview. Excluded slides are
// skipped and the rest are numbered from 1.
func BuildOutline(in OutlineInput) []Slide {
	var slides []Slide
	add := func(section, id, title, kind, body string) {
		if !in.Config.Includes(id) {
			return
		}
		slides = append(slides, Slide{
			Number:  len(slides) + 1,
			ID:      id,
			Section: section,
			Title:   title,
			Kind:    kind,
			Body:    body,
		})
	}

	for _, sec := range DeckSections {
		for _, def := range sec.Slides {
			add(sec.ID, def.ID, def.Title, def.Kind, staticSlideBody(def, in))
		}
		switch sec.ID {
		case "team":
			for _, p := range in.Profiles {
				add(sec.ID, ProfileSlideID(p.ID), p.Name, "profile", profileSlideBody(p))
			}
		case "case-studies":
			for _, m := range in.Missions {
				add(sec.ID, MissionSlideID(m.ID), m.Title, "case-study", missionSlideBody(m))
			}
		}
	}
	return slides
}

func staticSlideBody(def SlideDef, in OutlineInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", def.Title)
	switch def.ID {
	case "title-slide":
		if in.Project != nil {
			fmt.Fprintf(&b, "## %s\n\nProposal for **%s**\n", in.Project.Title, in.Project.Client)
		}
	case "exec-summary":
		if in.Analysis != nil && in.Analysis.Summary != "" {
			b.WriteString(in.Analysis.Summary + "\n")
		}
	case "team-overview":
		for _, p := range in.Profiles {
			fmt.Fprintf(&b, "- **%s**, %s\n", p.Name, p.Role)
		}
	case "case-studies-overview":
		for _, m := range in.Missions {
			fmt.Fprintf(&b, "- **%s** (%s, %s)\n", m.Title, m.Client, m.Year)
		}
	case "approach-overview":
		if in.Analysis != nil {
			for _, ins := range in.Analysis.Insights {
				fmt.Fprintf(&b, "- %s\n", ins.Key)
			}
		}
	default:
		fmt.Fprintf(&b, "_%s content_\n", def.Title)
	}
	return b.String()
}

func profileSlideBody(p Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n**%s** · %d years · %s\n\n", p.Name, p.Role, p.Experience, p.Availability)
	if len(p.Expertise) > 0 {
		fmt.Fprintf(&b, "Expertise: %s\n\n", strings.Join(p.Expertise, ", "))
	}
	for _, m := range p.RecentMissions {
		fmt.Fprintf(&b, "- %s (%s, %s)\n", m.Name, m.Year, m.Duration)
	}
	return b.String()
}

func missionSlideBody(m Mission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n**%s** · %s · %s\n\n%s\n\n", m.Title, m.Client, m.Year, m.Duration, m.Description)
	for _, o := range m.Outcomes {
		fmt.Fprintf(&b, "- %s\n", o)
	}
	return b.String()
}
