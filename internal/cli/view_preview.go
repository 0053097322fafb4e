package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/tender/internal/cli/formatter"
	"github.com/alexanderramin/tender/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type previewLoadedMsg struct {
	slides []domain.Slide
	cfg    *domain.DeckConfig
	err    error
}

func (previewLoadedMsg) targetView() ViewID { return ViewPreview }

// previewView is wizard step 4: pages through the outline one slide at a
// time with the slide body rendered as markdown.
type previewView struct {
	state     *SharedState
	projectID string

	slides  []domain.Slide
	cfg     *domain.DeckConfig
	current int // 0-based
	loading bool
	err     error

	rendered map[int]string // by slide index, for the current width
	width    int
}

func newPreviewView(state *SharedState, projectID string) *previewView {
	return &previewView{
		state:     state,
		projectID: projectID,
		loading:   true,
		rendered:  make(map[int]string),
	}
}

func (v *previewView) ID() ViewID    { return ViewPreview }
func (v *previewView) Title() string { return "Preview" }

func (v *previewView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "prev/next")),
		key.NewBinding(key.WithKeys("1"), key.WithHelp("1-9", "jump")),
		key.NewBinding(key.WithKeys("home", "end"), key.WithHelp("home/end", "first/last")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate")),
		key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back")),
	}
}

func (v *previewView) Init() tea.Cmd {
	return v.loadData()
}

func (v *previewView) loadData() tea.Cmd {
	app := v.state.App
	projectID := v.projectID
	return func() tea.Msg {
		ctx := context.Background()
		slides, err := app.Decks.Outline(ctx, projectID)
		if err != nil {
			return previewLoadedMsg{err: err}
		}
		cfg, err := app.Decks.Config(ctx, projectID)
		return previewLoadedMsg{slides: slides, cfg: cfg, err: err}
	}
}

// jump moves to slide index i, clamped to the outline.
func (v *previewView) jump(i int) {
	if len(v.slides) == 0 {
		v.current = 0
		return
	}
	v.current = min(max(i, 0), len(v.slides)-1)
}

func (v *previewView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case previewLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.slides, v.cfg = msg.slides, msg.cfg
		v.rendered = make(map[int]string)
		v.jump(v.current)
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "right", "l", "n", "pgdown", " ":
			v.jump(v.current + 1)
		case "left", "h", "p", "pgup":
			v.jump(v.current - 1)
		case "home":
			v.jump(0)
		case "end":
			v.jump(len(v.slides) - 1)
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			n, _ := strconv.Atoi(msg.String())
			v.jump(n - 1)
		case "g":
			return v, pushView(newGenerateView(v.state, v.projectID))
		case "b":
			step, _ := domain.StepForScreen(domain.ScreenPreview)
			return v, stepNav(v.state, v.projectID, step, -1)
		}
	}
	return v, nil
}

func (v *previewView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	step, _ := domain.StepForScreen(domain.ScreenPreview)
	width := max(v.state.Width-4, 40)
	var b strings.Builder
	b.WriteString("\n" + formatter.WizardHeader(step, width) + "\n\n")
	if len(v.slides) == 0 {
		b.WriteString("  " + formatter.Dim("No slides. Include some on the Configure Slides step.") + "\n")
		return b.String()
	}

	_ = v.slides[v.current]
	status := formatter.Dim("not generated yet")
	if v.cfg != nil && v.cfg.Generated() {
		status = formatter.StyleGreen.Render(fmt.Sprintf("generated %s", formatter.RelativeDate(*v.cfg.GeneratedAt)))
	}
	fmt.Fprintf(&b, "  %s  %s\n", formatter.Bold(fmt.Sprintf("Slide %d of %d", v.current+1, len(v.slides))), status)

	listWidth := 30
	bodyWidth := max(width-listWidth-3, 30)
	list := lipgloss.NewStyle().Width(listWidth).Render(v.renderList())
	body := v.renderSlide(v.current, bodyWidth)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, " ", body))
	return b.String()
}

func (v *previewView) renderList() string {
	var b strings.Builder
	for i, sl := range v.slides {
		title := truncate(sl.Title, 24)
		if i == v.current {
			b.WriteString(formatter.StyleGreen.Render(fmt.Sprintf("▸ %2d ", sl.Number)) + formatter.Bold(title) + "\n")
			continue
		}
		b.WriteString(formatter.Dim(fmt.Sprintf("  %2d %s", sl.Number, title)) + "\n")
	}
	return b.String()
}

func (v *previewView) renderSlide(i, width int) string {
	if width != v.width {
		v.rendered = make(map[int]string)
		v.width = width
	}
	if out, ok := v.rendered[i]; ok {
		return out
	}
	out := formatter.RenderSlide(v.slides[i], width)
	v.rendered[i] = out
	return out
}
