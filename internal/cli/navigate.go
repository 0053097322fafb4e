package cli

import (
	"github.com/alexanderramin/tender/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// pushViewsMsg pushes several views in order, as when opening a route.
type pushViewsMsg struct {
	views []View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// popToRootMsg pops every view above the dashboard.
type popToRootMsg struct{}

// replaceViewMsg replaces the current top view with a new one.
type replaceViewMsg struct {
	view View
}

// refreshViewMsg asks every view on the stack to reload its data.
type refreshViewMsg struct{}

// cmdOutputMsg carries text output from a command execution
// to be displayed transiently in the current view.
type cmdOutputMsg struct {
	output string
}

// cmdLoadingMsg shows a dim placeholder while a command runs.
type cmdLoadingMsg struct {
	message string
}

// formClosedMsg is sent when a form is submitted or cancelled. The root
// model pops the form and runs nextCmd in the same update.
type formClosedMsg struct {
	nextCmd tea.Cmd
}

// viewTargeted is implemented by messages addressed to one kind of view,
// such as load results and task ticks.
type viewTargeted interface {
	targetView() ViewID
}

// quitMsg signals the app to quit.
type quitMsg struct{}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func pushViews(views ...View) tea.Cmd {
	return func() tea.Msg { return pushViewsMsg{views: views} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func popToRoot() tea.Cmd {
	return func() tea.Msg { return popToRootMsg{} }
}

// replaceView returns a tea.Cmd that replaces the top view.
func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}

func loadingCmd(message string) tea.Cmd {
	return func() tea.Msg { return cmdLoadingMsg{message: message} }
}

// formClosedWithOutput closes the form and shows output.
func formClosedWithOutput(output string) formClosedMsg {
	return formClosedMsg{nextCmd: outputCmd(output)}
}

// shellError renders an error for the content area.
func shellError(err error) string {
	return formatter.StyleRed.Render("Error: " + err.Error())
}
