package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack.
type popViewMsg struct{}

// refreshViewMsg is broadcast to every view on the stack after a
// mutation so views showing stored data reload it.
type refreshViewMsg struct{}

// statusMsg sets the transient line shown above the key hints.
type statusMsg struct {
	text  string
	isErr bool
}

// formClosedMsg is sent when a form is submitted or cancelled.
// The appModel pops the form view, then runs nextCmd.
type formClosedMsg struct {
	nextCmd tea.Cmd
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func refreshViews() tea.Msg { return refreshViewMsg{} }

func setStatus(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

func setError(err error) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: err.Error(), isErr: true} }
}
