package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tender/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ProjectDetailData holds everything the project overview renders.
// Document and Analysis are nil for demo projects.
type ProjectDetailData struct {
	Project  *domain.Project
	Document *domain.Document
	Analysis *domain.Analysis
	Stages   []domain.Stage
}

// FormatProjectList renders the dashboard project table inside a box.
func FormatProjectList(projects []*domain.Project) string {
	cols := Cols("ID", "TITLE", "CLIENT", "STATUS", "PROGRESS", "CREATED")
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			StyleGreen.Render(p.DisplayID()),
			Bold(p.Title),
			p.Client,
			ProjectPill(p),
			RenderProgress(p.Progress, 10),
			Dim(HumanDate(p.CreatedAt)),
		})
	}
	return RenderBox("Projects", RenderTable(cols, rows))
}

// FormatStats renders the dashboard counters on one line.
func FormatStats(total, inProgress, completed int) string {
	return fmt.Sprintf("%s %s   %s %s   %s %s",
		Dim("Total"), Bold(fmt.Sprint(total)),
		Dim("In progress"), StyleYellow.Render(fmt.Sprint(inProgress)),
		Dim("Completed"), StyleGreen.Render(fmt.Sprint(completed)),
	)
}

// FormatStages renders the stage tracker. cursor marks the focused row;
// pass -1 for none.
func FormatStages(stages []domain.Stage, cursor int) string {
	items := make([]TreeItem, len(stages))
	for i, s := range stages {
		title := s.Name
		if i == cursor {
			title = "▸ " + title
		}
		detail := ""
		switch s.Affordance() {
		case domain.AffordanceContinue:
			detail = "Continue"
		case domain.AffordanceView:
			detail = "View"
		}
		if s.Date != nil {
			title += Dim("  " + s.Date.Format("Jan 2"))
		}
		items[i] = TreeItem{Title: title, Status: s.Status, Badge: detail}
	}
	return RenderTree(items)
}

// FormatProjectDetail renders the overview card: metadata on the left,
// stage tracker on the right. stageCursor is passed to FormatStages.
func FormatProjectDetail(d ProjectDetailData, stageCursor int) string {
	left := lipgloss.NewStyle().Width(46).Render(projectMetadata(d))
	right := Header("Stages") + "\n" + FormatStages(d.Stages, stageCursor)
	return RenderBox("", lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))
}

func projectMetadata(d ProjectDetailData) string {
	p := d.Project
	var b strings.Builder
	b.WriteString(StyleBold.Render(p.Title) + "\n")
	b.WriteString(StylePurple.Render(p.Client) + "\n\n")

	row := func(label, value string) {
		fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render(fmt.Sprintf("%-8s", label)), value)
	}
	row("STATUS", ProjectPill(p))
	row("ID", StyleGreen.Render(p.DisplayID()))
	row("UUID", TruncID(p.ID))
	row("PROGRESS", RenderProgress(p.Progress, 12))
	row("CREATED", StyleFg.Render(HumanDate(p.CreatedAt)))
	row("UPDATED", HumanTimestamp(p.UpdatedAt))
	if d.Document != nil {
		row("RFP", d.Document.Name+Dim(" ("+FormatBytes(d.Document.Size)+")"))
	} else {
		row("RFP", Dim("--"))
	}
	if d.Analysis != nil {
		row("SUGGEST", fmt.Sprintf("%d profiles, %d missions", d.Analysis.SuggestedProfiles, d.Analysis.SuggestedMissions))
	}
	return b.String()
}

// FormatAnalysis renders the RFP summary and its scored insights.
func FormatAnalysis(a *domain.Analysis, width int) string {
	if a == nil {
		return Dim("No analysis yet. Upload an RFP document to generate one.")
	}
	var b strings.Builder
	b.WriteString(Header("Summary") + "\n")
	b.WriteString(Wrap(a.Summary, width, 2) + "\n\n")
	b.WriteString(Header("Key requirements") + "\n")
	for _, ins := range a.Insights {
		fmt.Fprintf(&b, "  %-22s %s\n", ins.Key, RenderProgress(ins.Score, 16))
	}
	fmt.Fprintf(&b, "\n  %s %s   %s %s\n",
		Dim("Suggested profiles"), Bold(fmt.Sprint(a.SuggestedProfiles)),
		Dim("Suggested missions"), Bold(fmt.Sprint(a.SuggestedMissions)))
	return b.String()
}
