package cli

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/tender/internal/cli/formatter"
	"github.com/alexanderramin/tender/internal/domain"
	"github.com/alexanderramin/tender/internal/matching"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	templateOrder = []domain.DeckTemplate{domain.TemplateCorporate, domain.TemplateModern, domain.TemplateMinimal, domain.TemplateBold}
	formatOrder   = []domain.DeckFormat{domain.FormatPPTX, domain.FormatPDF, domain.FormatGSlides}
	languageOrder = []string{"en", "fr", "es", "de"}
)

// cycle returns the element after cur in order, wrapping around.
func cycle[T comparable](order []T, cur T) T {
	for i, v := range order {
		if v == cur {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

type slidesLoadedMsg struct {
	cfg      *domain.DeckConfig
	profiles []domain.Profile
	missions []domain.Mission
	err      error
}

type deckConfigSavedMsg struct {
	err error
}

func (slidesLoadedMsg) targetView() ViewID    { return ViewSlides }
func (deckConfigSavedMsg) targetView() ViewID { return ViewSlides }

// slideRow is one line of the section tree: a section header when slide
// is empty, otherwise a slide inside section.
type slideRow struct {
	section string
	slideID string
	title   string
}

// slidesView is wizard step 3: deck template, format and language, and
// the per-slide include toggles grouped in expandable sections. Every
// change is saved immediately.
type slidesView struct {
	state     *SharedState
	projectID string

	cfg      *domain.DeckConfig
	profiles []domain.Profile // selected, in selection order
	missions []domain.Mission
	expanded *domain.SelectionSet
	cursor   int
	loading  bool
	err      error
	saveErr  error
}

func newSlidesView(state *SharedState, projectID string) *slidesView {
	return &slidesView{
		state:     state,
		projectID: projectID,
		expanded:  domain.NewSelectionSet(domain.DefaultExpandedSections...),
		loading:   true,
	}
}

func (v *slidesView) ID() ViewID    { return ViewSlides }
func (v *slidesView) Title() string { return "Configure Slides" }

func (v *slidesView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "template")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "format")),
		key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "language")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next step")),
		key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back")),
	}
}

func (v *slidesView) Init() tea.Cmd {
	return v.loadData()
}

func (v *slidesView) loadData() tea.Cmd {
	app := v.state.App
	projectID := v.projectID
	return func() tea.Msg {
		var msg slidesLoadedMsg
		msg.err = func() error {
			g, ctx := errgroup.WithContext(context.Background())
			var profileSel, missionSel *domain.SelectionSet
			var profiles []domain.Profile
			var missions []domain.Mission
			g.Go(func() (err error) {
				msg.cfg, err = app.Decks.Config(ctx, projectID)
				return err
			})
			g.Go(func() (err error) {
				profileSel, err = app.Selections.Load(ctx, projectID, domain.SelectProfiles)
				return err
			})
			g.Go(func() (err error) {
				missionSel, err = app.Selections.Load(ctx, projectID, domain.SelectMissions)
				return err
			})
			g.Go(func() (err error) {
				profiles, err = app.Catalog.Profiles(ctx, "", matching.ProfileFilter{})
				return err
			})
			g.Go(func() (err error) {
				missions, err = app.Catalog.Missions(ctx, "")
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}
			msg.profiles = pickProfiles(profiles, profileSel)
			msg.missions = pickMissions(missions, missionSel)
			return nil
		}()
		return msg
	}
}

// pickProfiles returns the selected profiles in selection order,
// skipping IDs missing from the catalog.
func pickProfiles(all []domain.Profile, sel *domain.SelectionSet) []domain.Profile {
	byID := make(map[string]domain.Profile, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}
	var out []domain.Profile
	for _, id := range sel.IDs() {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

func pickMissions(all []domain.Mission, sel *domain.SelectionSet) []domain.Mission {
	byID := make(map[string]domain.Mission, len(all))
	for _, m := range all {
		byID[m.ID] = m
	}
	var out []domain.Mission
	for _, id := range sel.IDs() {
		if m, ok := byID[id]; ok {
			out = append(out, m)
		}
	}
	return out
}

// rows lists the section tree with collapsed sections hiding their slides.
func (v *slidesView) rows() []slideRow {
	var rows []slideRow
	for _, sec := range domain.DeckSections {
		rows = append(rows, slideRow{section: sec.ID, title: sec.Title})
		if !v.expanded.Contains(sec.ID) {
			continue
		}
		for _, def := range sec.Slides {
			rows = append(rows, slideRow{section: sec.ID, slideID: def.ID, title: def.Title})
		}
		switch sec.ID {
		case "team":
			for _, p := range v.profiles {
				rows = append(rows, slideRow{section: sec.ID, slideID: domain.ProfileSlideID(p.ID), title: p.Name})
			}
		case "case-studies":
			for _, m := range v.missions {
				rows = append(rows, slideRow{section: sec.ID, slideID: domain.MissionSlideID(m.ID), title: m.Title})
			}
		}
	}
	return rows
}

// slideCount is the number of slides the current settings produce.
func (v *slidesView) slideCount() int {
	return len(domain.BuildOutline(domain.OutlineInput{
		Config:   *v.cfg,
		Profiles: v.profiles,
		Missions: v.missions,
	}))
}

func (v *slidesView) save() tea.Cmd {
	app := v.state.App
	cfg := *v.cfg
	cfg.Excluded = append([]string(nil), v.cfg.Excluded...)
	return func() tea.Msg {
		return deckConfigSavedMsg{err: app.Decks.SaveConfig(context.Background(), &cfg)}
	}
}

func (v *slidesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case slidesLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.cfg, v.profiles, v.missions = msg.cfg, msg.profiles, msg.missions
		if n := len(v.rows()); v.cursor >= n {
			v.cursor = max(0, n-1)
		}
		return v, nil

	case deckConfigSavedMsg:
		v.saveErr = msg.err
		if msg.err != nil {
			return v, nil
		}
		return v, refreshViews()

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		if v.cfg == nil {
			return v, nil
		}
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *slidesView) handleKey(msg tea.KeyMsg) tea.Cmd {
	rows := v.rows()
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(rows)-1 {
			v.cursor++
		}
	case " ", "enter", "x":
		if v.cursor >= len(rows) {
			return nil
		}
		row := rows[v.cursor]
		if row.slideID == "" {
			v.expanded.Toggle(row.section)
			return nil
		}
		v.cfg.ToggleSlide(row.slideID)
		return v.save()
	case "t":
		v.cfg.Template = cycle(templateOrder, v.cfg.Template)
		return v.save()
	case "f":
		v.cfg.Format = cycle(formatOrder, v.cfg.Format)
		return v.save()
	case "l":
		v.cfg.Language = cycle(languageOrder, v.cfg.Language)
		return v.save()
	case "g":
		return pushView(newGenerateView(v.state, v.projectID))
	case "n":
		step, _ := domain.StepForScreen(domain.ScreenSlides)
		return stepNav(v.state, v.projectID, step, 1)
	case "b":
		step, _ := domain.StepForScreen(domain.ScreenSlides)
		return stepNav(v.state, v.projectID, step, -1)
	}
	return nil
}

func (v *slidesView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	step, _ := domain.StepForScreen(domain.ScreenSlides)
	var b strings.Builder
	b.WriteString("\n" + formatter.WizardHeader(step, max(v.state.Width-4, 40)) + "\n\n")
	b.WriteString(formatter.FormatDeckConfig(*v.cfg))
	fmt.Fprintf(&b, "  %s %s\n\n", formatter.Dim(fmt.Sprintf("%-10s", "Slides")), formatter.Bold(fmt.Sprint(v.slideCount())))

	for i, row := range v.rows() {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		if row.slideID == "" {
			arrow := "▸"
			if v.expanded.Contains(row.section) {
				arrow = "▾"
			}
			b.WriteString(cursor + formatter.StyleHeader.Render(arrow+" "+row.title) + "\n")
			continue
		}
		b.WriteString(fmt.Sprintf("%s    %s %s\n", cursor, formatter.Checkbox(v.cfg.Includes(row.slideID)), row.title))
	}
	if v.saveErr != nil {
		b.WriteString("\n  " + shellError(v.saveErr) + "\n")
	}
	return b.String()
}
