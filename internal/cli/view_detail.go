package cli

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// detailView shows pre-rendered text in a scrollable viewport.
type detailView struct {
	state    *SharedState
	titleStr string
	content  string
	vp       viewport.Model
}

func newDetailView(state *SharedState, title, content string) *detailView {
	vp := viewport.New(max(state.Width, 20), state.ContentHeight())
	vp.SetContent(content)
	return &detailView{state: state, titleStr: title, content: content, vp: vp}
}

func (v *detailView) ID() ViewID    { return ViewDetail }
func (v *detailView) Title() string { return v.titleStr }

func (v *detailView) ShortHelp() []key.Binding {
	return []key.Binding{helpBinding("↑/↓", "scroll")}
}

func (v *detailView) Init() tea.Cmd { return nil }

func (v *detailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		v.vp.Width = ws.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *detailView) View() string {
	if v.state.Height == 0 {
		return v.content
	}
	return v.vp.View()
}
