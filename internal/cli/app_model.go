package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fundsflow/fundsflow/internal/cli/formatter"
	"github.com/fundsflow/fundsflow/internal/domain"
)

// appModel is the root bubbletea Model for the explorer.
// It manages a view stack, the wallet header and the status line.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	status      string
	statusIsErr bool
}

func newAppModel(app *App, dashboard domain.Dashboard) appModel {
	state := &SharedState{App: app, Dashboard: dashboard}
	return appModel{
		state:     state,
		viewStack: []View{newExplorerView(state)},
	}
}

// runExplorer runs the explorer full-screen until the user quits or ctx
// is cancelled.
func runExplorer(ctx context.Context, app *App, dashboard domain.Dashboard) error {
	p := tea.NewProgram(newAppModel(app, dashboard), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m *appModel) forward(msg tea.Msg) tea.Cmd {
	v := m.activeView()
	if v == nil {
		return nil
	}
	updated, cmd := v.Update(msg)
	m.setActiveView(updated.(View))
	return cmd
}

// broadcast delivers msg to every view on the stack, bottom first.
func (m *appModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, v := range m.viewStack {
		updated, cmd := v.Update(msg)
		m.viewStack[i] = updated.(View)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case refreshViewMsg, treeLoadedMsg, ledgerLoadedMsg:
		// Broadcast so views under the top one reload too.
		return m, m.broadcast(msg)

	case statusMsg:
		m.status = msg.text
		m.statusIsErr = msg.isErr
		return m, nil

	case formClosedMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, msg.nextCmd

	case contributionDoneMsg:
		m.state.Busy = ""
		if msg.err != nil {
			m.status, m.statusIsErr = msg.err.Error(), true
			return m, nil
		}
		m.status, m.statusIsErr = "✔ Transaction confirmed: "+formatter.TruncHash(msg.res.Receipt.Hash), false
		return m, tea.Batch(
			pushView(newDetailView(m.state, "Transaction", formatter.FormatContribution(msg.res))),
			refreshViews,
		)

	case walletConnectedMsg:
		if msg.err != nil {
			m.status, m.statusIsErr = "Wallet: "+msg.err.Error(), true
			return m, nil
		}
		m.status, m.statusIsErr = "Wallet connected: "+msg.account, false
		return m, nil
	}

	return m, m.forward(msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Any key dismisses the previous status line.
	m.status, m.statusIsErr = "", false

	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		return m, m.forward(msg)
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.String() == "w":
		if m.state.App.Wallet == nil {
			return m, nil
		}
		return m, connectWallet(m.state.App)

	case msg.Type == tea.KeyEsc && len(m.viewStack) > 1:
		m.viewStack = m.viewStack[:len(m.viewStack)-1]
		return m, nil
	}

	return m, m.forward(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height so the alt-screen renderer leaves no stale lines.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("fundsflow")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	header := title
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("› "+strings.Join(crumbs, " › "))
	}
	if w := m.state.App.Wallet; w != nil {
		header += "  " + walletBadge(w.State())
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var status string
	switch {
	case m.state.Busy != "":
		status = formatter.StyleYellow.Render("◌ " + m.state.Busy)
	case m.statusIsErr:
		status = formatter.StyleRed.Render("Error: " + m.status)
	case m.status != "":
		status = formatter.StyleGreen.Render(m.status)
	}

	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.Dim("esc: back"))
	}
	hints = append(hints, formatter.Dim("w: wallet"), formatter.Dim("q: quit"))

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return status + "\n" + sep + "\n" + strings.Join(hints, "  ")
}

// walletConnectedMsg reports the outcome of a connect request.
type walletConnectedMsg struct {
	account string
	err     error
}

func connectWallet(app *App) tea.Cmd {
	return func() tea.Msg {
		account, err := app.Wallet.Connect(context.Background())
		return walletConnectedMsg{account: account, err: err}
	}
}

func helpBinding(keys, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(strings.Split(keys, "/")...), key.WithHelp(keys, desc))
}
