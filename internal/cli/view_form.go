package cli

import (
	"github.com/alexanderramin/tender/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formView hosts a huh form on the view stack. Esc cancels it; on submit
// onSubmit runs and its Cmd follows the pop.
type formView struct {
	state    *SharedState
	form     *huh.Form
	title    string
	onSubmit func() tea.Cmd
}

func newFormView(state *SharedState, title string, form *huh.Form, onSubmit func() tea.Cmd) *formView {
	return &formView{state: state, form: form, title: title, onSubmit: onSubmit}
}

func (v *formView) ID() ViewID    { return ViewForm }
func (v *formView) Title() string { return v.title }
func (v *formView) Init() tea.Cmd { return v.form.Init() }
func (v *formView) View() string  { return v.form.View() }

func (v *formView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		return v, closeForm(formClosedWithOutput(formatter.Dim("Cancelled.")))
	}

	model, cmd := v.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		v.form = f
	}
	switch v.form.State {
	case huh.StateCompleted:
		var next tea.Cmd
		if v.onSubmit != nil {
			next = v.onSubmit()
		}
		return v, closeForm(formClosedMsg{nextCmd: tea.Batch(cmd, next)})
	case huh.StateAborted:
		return v, closeForm(formClosedWithOutput(formatter.Dim("Cancelled.")))
	}
	return v, cmd
}

func closeForm(msg formClosedMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// pushFormCmd opens form in a formView. A nil form means there is
// nothing to ask, so onSubmit runs straight away.
func pushFormCmd(state *SharedState, title string, form *huh.Form, onSubmit func() tea.Cmd) tea.Cmd {
	if form == nil {
		if onSubmit == nil {
			return nil
		}
		return onSubmit()
	}
	return pushView(newFormView(state, title, form, onSubmit))
}
