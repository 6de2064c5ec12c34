package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fundsflow/fundsflow/internal/cli/formatter"
	"github.com/fundsflow/fundsflow/internal/domain"
)

var ledgerKinds = []domain.LedgerKind{
	domain.LedgerDonation,
	domain.LedgerFeePayment,
	domain.LedgerTransfer,
}

type ledgerLoadedMsg struct {
	kind    domain.LedgerKind
	entries []*domain.LedgerEntry
	err     error
}

// ledgerView lists the recent entries of one ledger kind for the active
// dashboard. Tab cycles the kind.
type ledgerView struct {
	state     *SharedState
	dashboard domain.Dashboard
	kind      domain.LedgerKind
	entries   []*domain.LedgerEntry
	loading   bool
	err       error
}

func newLedgerView(state *SharedState) *ledgerView {
	return &ledgerView{
		state:     state,
		dashboard: state.Dashboard,
		kind:      state.Dashboard.ContributionKind(),
		loading:   true,
	}
}

func (v *ledgerView) ID() ViewID    { return ViewLedger }
func (v *ledgerView) Title() string { return "Ledger" }

func (v *ledgerView) ShortHelp() []key.Binding {
	return []key.Binding{
		helpBinding("tab", "kind"),
		helpBinding("r", "refresh"),
	}
}

func (v *ledgerView) Init() tea.Cmd { return v.load() }

func (v *ledgerView) load() tea.Cmd {
	app, d, k := v.state.App, v.dashboard, v.kind
	return func() tea.Msg {
		entries, err := app.Contributions.Recent(context.Background(), d, k, "")
		return ledgerLoadedMsg{kind: k, entries: entries, err: err}
	}
}

func (v *ledgerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ledgerLoadedMsg:
		if msg.kind != v.kind {
			return v, nil
		}
		v.loading = false
		v.entries, v.err = msg.entries, msg.err
	case refreshViewMsg:
		return v, v.load()
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			v.kind = nextKind(v.kind)
			v.loading = true
			return v, v.load()
		case "r":
			return v, v.load()
		}
	}
	return v, nil
}

func nextKind(k domain.LedgerKind) domain.LedgerKind {
	for i, kind := range ledgerKinds {
		if kind == k {
			return ledgerKinds[(i+1)%len(ledgerKinds)]
		}
	}
	return ledgerKinds[0]
}

func (v *ledgerView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading ledger...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	return "\n" + formatter.FormatLedger(v.kind, v.entries)
}
