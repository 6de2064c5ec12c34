package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formView hosts a huh.Form on the view stack. submit runs once the form
// completes and its Cmd is carried out after the form is popped.
type formView struct {
	title  string
	form   *huh.Form
	submit func() tea.Cmd
	closed bool
}

func newFormView(title string, form *huh.Form, submit func() tea.Cmd) *formView {
	return &formView{title: title, form: form, submit: submit}
}

func (v *formView) ID() ViewID          { return ViewForm }
func (v *formView) Title() string       { return v.title }
func (v *formView) CapturesInput() bool { return true }

func (v *formView) ShortHelp() []key.Binding {
	return []key.Binding{
		helpBinding("enter", "next"),
		helpBinding("shift+tab", "previous"),
		helpBinding("esc", "cancel"),
	}
}

func (v *formView) Init() tea.Cmd { return v.form.Init() }

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.closed {
		return v, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		return v, v.close(setStatus("Cancelled."))
	}

	updated, cmd := v.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		v.form = f
	}

	switch v.form.State {
	case huh.StateCompleted:
		var next tea.Cmd
		if v.submit != nil {
			next = v.submit()
		}
		return v, v.close(next)
	case huh.StateAborted:
		return v, v.close(setStatus("Cancelled."))
	}
	return v, cmd
}

// close reports the form finished exactly once; huh keeps emitting
// messages after completion.
func (v *formView) close(next tea.Cmd) tea.Cmd {
	v.closed = true
	return func() tea.Msg { return formClosedMsg{nextCmd: next} }
}

func (v *formView) View() string { return v.form.View() }
