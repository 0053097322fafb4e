package cli

import (
	"fmt"

	"github.com/alexanderramin/tender/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// outputPane shows command-bar output in place of the active view until
// a non-scroll key dismisses it.
type outputPane struct {
	text   string
	vp     viewport.Model
	active bool
}

func newOutputPane() outputPane {
	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return outputPane{vp: vp}
}

func (o *outputPane) show(text string, width, height int) {
	o.text = text
	o.active = true
	o.vp.SetContent(text)
	o.resize(width, height)
	o.vp.GotoTop()
}

func (o *outputPane) loading(message string, width, height int) {
	o.show("\n  "+formatter.Dim(message), width, height)
}

func (o *outputPane) clear() {
	o.text = ""
	o.active = false
}

func (o *outputPane) resize(width, height int) {
	o.vp.Width = width
	o.vp.Height = height
}

// overflows reports whether the text is taller than the pane.
func (o *outputPane) overflows() bool {
	return o.active && o.vp.TotalLineCount() > o.vp.Height
}

func (o *outputPane) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	o.vp, cmd = o.vp.Update(msg)
	return cmd
}

// view renders the viewport once the terminal size is known, the raw text before.
func (o *outputPane) view(sized bool) string {
	if o.active && sized {
		return o.vp.View()
	}
	return o.text
}

// scrollHints lists the status-bar hints for scrollable output.
func (o *outputPane) scrollHints() []string {
	pos := fmt.Sprintf("[%d%%]", int(o.vp.ScrollPercent()*100))
	switch {
	case o.vp.AtTop():
		pos = "[TOP]"
	case o.vp.AtBottom():
		pos = "[END]"
	}
	return []string{formatter.Dim(pos), formatter.Dim("↑↓ pgup/pgdn: scroll"), formatter.Dim("esc: dismiss")}
}

// isOutputScrollKey reports whether the key scrolls the output pane rather
// than dismissing it.
func isOutputScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}
