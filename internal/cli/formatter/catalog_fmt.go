package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tender/internal/domain"
)

// FormatProfileRow renders one selectable line of the profile list.
func FormatProfileRow(p domain.Profile, selected, focused bool) string {
	cursor := "  "
	name := StyleFg.Render(fmt.Sprintf("%-18s", p.Name))
	if focused {
		cursor = StyleGreen.Render("▸ ")
		name = StyleBold.Render(fmt.Sprintf("%-18s", p.Name))
	}
	return fmt.Sprintf("%s%s %s %s %s",
		cursor, Checkbox(selected), name,
		Dim(fmt.Sprintf("%-20s %2dy", p.Role, p.Experience)),
		ScoreBadge(p.MatchScore))
}

// FormatMissionRow renders one selectable line of the mission list.
func FormatMissionRow(m domain.Mission, selected, focused bool) string {
	cursor := "  "
	title := StyleFg.Render(fmt.Sprintf("%-36s", m.Title))
	if focused {
		cursor = StyleGreen.Render("▸ ")
		title = StyleBold.Render(fmt.Sprintf("%-36s", m.Title))
	}
	return fmt.Sprintf("%s%s %s %s %s",
		cursor, Checkbox(selected), title,
		Dim(fmt.Sprintf("%-24s %s", m.Client, m.Year)),
		ScoreBadge(m.MatchScore))
}

// FormatProfileList renders profiles as a table, marking selected ones.
func FormatProfileList(profiles []domain.Profile, selected *domain.SelectionSet) string {
	cols := Cols("", "ID", "NAME", "ROLE", "EXP>", "MATCH>", "AVAILABILITY")
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, []string{
			Checkbox(selected != nil && selected.Contains(p.ID)),
			Dim(p.ID),
			Bold(p.Name),
			p.Role,
			fmt.Sprintf("%dy", p.Experience),
			ScoreBadge(p.MatchScore),
			p.Availability,
		})
	}
	return RenderTable(cols, rows)
}

// FormatMissionList renders missions as a table, marking selected ones.
func FormatMissionList(missions []domain.Mission, selected *domain.SelectionSet) string {
	cols := Cols("", "ID", "TITLE", "CLIENT", "YEAR", "MATCH>")
	rows := make([][]string, 0, len(missions))
	for _, m := range missions {
		rows = append(rows, []string{
			Checkbox(selected != nil && selected.Contains(m.ID)),
			Dim(m.ID),
			Bold(m.Title),
			m.Client,
			m.Year,
			ScoreBadge(m.MatchScore),
		})
	}
	return RenderTable(cols, rows)
}

// FormatProfileCard renders the detail pane of a profile.
func FormatProfileCard(p domain.Profile, width int) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(p.Name) + "  " + ScoreBadge(p.MatchScore) + "\n")
	b.WriteString(StylePurple.Render(p.Role) + Dim(fmt.Sprintf(" · %d years · %s", p.Experience, p.Availability)) + "\n\n")
	if len(p.Expertise) > 0 {
		b.WriteString(Dim("Expertise") + "\n")
		b.WriteString(Wrap(strings.Join(p.Expertise, ", "), width, 2) + "\n")
	}
	if len(p.Languages) > 0 {
		b.WriteString(Dim("Languages") + "\n  " + strings.Join(p.Languages, ", ") + "\n")
	}
	if len(p.Skills) > 0 {
		b.WriteString("\n" + Dim("Skills") + "\n")
		for _, s := range p.Skills {
			fmt.Fprintf(&b, "  %-20s %s\n", s.Name, RenderCompactBar(s.Level, 10, false))
		}
	}
	if len(p.RecentMissions) > 0 {
		b.WriteString("\n" + Dim("Recent missions") + "\n")
		for _, m := range p.RecentMissions {
			fmt.Fprintf(&b, "  • %s %s\n", m.Name, Dim("("+m.Year+", "+m.Duration+")"))
		}
	}
	return b.String()
}

// FormatMissionCard renders the detail pane of a mission.
func FormatMissionCard(m domain.Mission, width int) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(m.Title) + "  " + ScoreBadge(m.MatchScore) + "\n")
	b.WriteString(StylePurple.Render(m.Client) + Dim(" · "+m.Year+" · "+m.Duration) + "\n\n")
	b.WriteString(Wrap(m.Description, width, 0) + "\n")
	if len(m.Technologies) > 0 {
		b.WriteString("\n" + Dim("Technologies") + "\n")
		b.WriteString(Wrap(strings.Join(m.Technologies, ", "), width, 2) + "\n")
	}
	if len(m.Outcomes) > 0 {
		b.WriteString("\n" + Dim("Outcomes") + "\n")
		for _, o := range m.Outcomes {
			b.WriteString(Wrap("• "+o, width, 2) + "\n")
		}
	}
	if len(m.Team) > 0 {
		b.WriteString("\n" + Dim("Team") + "\n  " + strings.Join(m.Team, ", ") + "\n")
	}
	return b.String()
}
