package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fundsflow/fundsflow/internal/cli/formatter"
	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/fundsflow/fundsflow/internal/fundtree"
)

// treeLoadedMsg carries a dashboard's full tree.
type treeLoadedMsg struct {
	dashboard domain.Dashboard
	root      *domain.FundNode
	err       error
}

// explorerView is the home view: the navigable fund-flow tree of the
// active dashboard with search, expand/collapse and zoom.
type explorerView struct {
	state *SharedState

	root    *domain.FundNode
	index   *fundtree.Index
	loading bool
	err     error

	// expand is kept per dashboard so switching back restores it.
	expand map[domain.Dashboard]*fundtree.ExpandState
	zoom   fundtree.Zoom

	search    textinput.Model
	searching bool
	query     string
	fallback  bool

	rows     []fundtree.Row
	cursor   int
	offset   int
	selected string
}

func newExplorerView(state *SharedState) *explorerView {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search nodes..."
	ti.CharLimit = 100

	return &explorerView{
		state:   state,
		loading: true,
		expand:  make(map[domain.Dashboard]*fundtree.ExpandState),
		zoom:    fundtree.NewZoom(),
		search:  ti,
	}
}

func (v *explorerView) ID() ViewID { return ViewExplorer }

func (v *explorerView) Title() string { return v.state.Dashboard.Label() }

func (v *explorerView) CapturesInput() bool { return v.searching }

func (v *explorerView) ShortHelp() []key.Binding {
	if v.searching {
		return []key.Binding{
			helpBinding("enter", "apply"),
			helpBinding("esc", "clear"),
		}
	}
	return []key.Binding{
		helpBinding("enter/space", "expand"),
		helpBinding("/", "search"),
		helpBinding("+/-/0", "zoom"),
		helpBinding("o", "open"),
		helpBinding("v", "verify"),
		helpBinding("c", contributeLabel(v.state.Dashboard)),
		helpBinding("l", "ledger"),
		helpBinding("tab", "switch"),
	}
}

func (v *explorerView) Init() tea.Cmd {
	return v.loadTree()
}

func (v *explorerView) loadTree() tea.Cmd {
	app, d := v.state.App, v.state.Dashboard
	return func() tea.Msg {
		root, err := app.Trees.Load(context.Background(), d)
		return treeLoadedMsg{dashboard: d, root: root, err: err}
	}
}

func (v *explorerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case treeLoadedMsg:
		if msg.dashboard != v.state.Dashboard {
			return v, nil
		}
		v.loading = false
		v.err = msg.err
		if msg.err != nil {
			return v, nil
		}
		ix, err := fundtree.NewIndex(msg.root)
		if err != nil {
			v.err = err
			return v, nil
		}
		v.root, v.index = msg.root, ix
		v.rebuild()
		return v, nil

	case refreshViewMsg:
		return v, v.loadTree()

	case tea.WindowSizeMsg:
		v.search.Width = max(msg.Width-4, 10)
		v.scrollToCursor()
		return v, nil

	case tea.KeyMsg:
		if v.searching {
			return v.updateSearch(msg)
		}
		return v.handleKey(msg)
	}

	if v.searching {
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		return v, cmd
	}
	return v, nil
}

// updateSearch feeds keys to the search input and re-filters after every
// edit. enter keeps the query, esc drops it.
func (v *explorerView) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		v.searching = false
		v.search.Blur()
		return v, nil
	case tea.KeyEsc:
		v.searching = false
		v.search.Blur()
		v.search.SetValue("")
		v.setQuery("")
		return v, nil
	}
	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	v.setQuery(v.search.Value())
	return v, cmd
}

func (v *explorerView) setQuery(q string) {
	if q == v.query {
		return
	}
	v.query = q
	v.rebuild()
}

func (v *explorerView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		v.moveCursor(-1)
	case "down", "j":
		v.moveCursor(1)
	case "home", "g":
		v.moveCursor(-len(v.rows))
	case "end", "G":
		v.moveCursor(len(v.rows))
	case "enter", " ":
		if row, ok := v.currentRow(); ok && row.HasChildren {
			v.expandState().Toggle(row.Node.ID)
			v.rebuild()
		}
	case "/":
		v.searching = true
		v.search.SetValue(v.query)
		v.search.CursorEnd()
		return v, v.search.Focus()
	case "esc":
		v.search.SetValue("")
		v.setQuery("")
	case "+", "=":
		v.zoom = v.zoom.In()
		v.scrollToCursor()
	case "-", "_":
		v.zoom = v.zoom.Out()
		v.scrollToCursor()
	case "0":
		v.zoom = v.zoom.Reset()
		v.scrollToCursor()
	case "tab":
		v.state.Dashboard = v.state.OtherDashboard()
		v.loading = true
		v.root, v.index, v.rows = nil, nil, nil
		v.cursor, v.offset, v.selected = 0, 0, ""
		v.query, v.fallback = "", false
		v.search.SetValue("")
		return v, v.loadTree()
	case "o":
		if row, ok := v.currentRow(); ok {
			content := formatter.FormatNodeDetail(row.Node, v.index.PathTo(row.Node.ID))
			return v, pushView(newDetailView(v.state, row.Node.Name, content))
		}
	case "v":
		if row, ok := v.currentRow(); ok {
			stored, _ := v.index.Node(row.Node.ID)
			content := formatter.FormatVerification(stored, v.index.PathTo(row.Node.ID), fundtree.Fingerprint(stored))
			return v, pushView(newDetailView(v.state, "Verify", content))
		}
	case "c":
		return v, startContribution(v.state, v.selectedTarget())
	case "l":
		return v, pushView(newLedgerView(v.state))
	case "r":
		return v, v.loadTree()
	}
	return v, nil
}

func (v *explorerView) expandState() *fundtree.ExpandState {
	s, ok := v.expand[v.state.Dashboard]
	if !ok {
		s = fundtree.NewExpandState()
		v.expand[v.state.Dashboard] = s
	}
	return s
}

// rebuild recomputes the visible rows from the tree, the query and the
// expand state, keeping the cursor on the selected node when it is still
// visible.
func (v *explorerView) rebuild() {
	if v.root == nil {
		v.rows = nil
		return
	}
	tree := v.root
	v.fallback = false
	if v.query != "" {
		tree, v.fallback = fundtree.FilterOrRoot(v.root, v.query)
	}
	v.rows = fundtree.Flatten(tree, v.expandState())

	if i := fundtree.RowIndex(v.rows, v.selected); i >= 0 {
		v.cursor = i
	} else {
		v.cursor = min(v.cursor, len(v.rows)-1)
		v.cursor = max(v.cursor, 0)
	}
	v.syncSelected()
	v.scrollToCursor()
}

func (v *explorerView) moveCursor(delta int) {
	if len(v.rows) == 0 {
		return
	}
	v.cursor = max(0, min(len(v.rows)-1, v.cursor+delta))
	v.syncSelected()
	v.scrollToCursor()
}

func (v *explorerView) syncSelected() {
	if row, ok := v.currentRow(); ok {
		v.selected = row.Node.ID
	}
}

func (v *explorerView) currentRow() (fundtree.Row, bool) {
	if v.cursor < 0 || v.cursor >= len(v.rows) {
		return fundtree.Row{}, false
	}
	return v.rows[v.cursor], true
}

// selectedTarget is the donation target preselected from the cursor: the
// nearest state or hospital on its path.
func (v *explorerView) selectedTarget() string {
	row, ok := v.currentRow()
	if !ok || v.index == nil {
		return ""
	}
	path := v.index.PathTo(row.Node.ID)
	for i := len(path) - 1; i >= 0; i-- {
		if t := path[i].Type; t == domain.NodeState || t == domain.NodeHospital {
			return path[i].Name
		}
	}
	return ""
}

// pageRows is the number of tree rows that fit on screen.
func (v *explorerView) pageRows() int {
	if v.state.Height == 0 {
		return len(v.rows)
	}
	h := v.state.ContentHeight() - 4
	if v.zoom.Percent() >= formatter.DetailZoomPercent {
		h /= 2
	}
	return max(h, 1)
}

func (v *explorerView) scrollToCursor() {
	page := v.pageRows()
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+page {
		v.offset = v.cursor - page + 1
	}
	v.offset = max(0, min(v.offset, len(v.rows)-page))
}

func (v *explorerView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading tree...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString(v.renderBreadcrumb())
	b.WriteByte('\n')
	b.WriteString(v.renderSearchLine())
	b.WriteByte('\n')

	end := min(len(v.rows), v.offset+v.pageRows())
	b.WriteString(formatter.RenderFundTree(v.rows[v.offset:end], formatter.TreeOptions{
		Cursor: v.cursor - v.offset,
		Zoom:   v.zoom,
	}))

	if hidden := len(v.rows) - (end - v.offset); hidden > 0 {
		b.WriteString(formatter.Dim(fmt.Sprintf("  %d more rows", hidden)) + "\n")
	}
	return b.String()
}

func (v *explorerView) renderBreadcrumb() string {
	zoom := formatter.Dim(fmt.Sprintf("zoom %d%%", v.zoom.Percent()))
	row, ok := v.currentRow()
	if !ok || v.index == nil {
		return "  " + zoom
	}
	return "  " + formatter.Breadcrumb(v.index.PathTo(row.Node.ID)) + "  " + zoom
}

func (v *explorerView) renderSearchLine() string {
	switch {
	case v.searching && v.fallback:
		return "  " + v.search.View() + "  " + formatter.StyleYellow.Render("no matches, showing the full tree")
	case v.searching && v.query != "":
		return "  " + v.search.View() + "  " + formatter.Dim(fmt.Sprintf("%d matching", fundtree.MatchCount(v.root, v.query)))
	case v.searching:
		return "  " + v.search.View()
	case v.fallback:
		return "  " + formatter.StyleYellow.Render(fmt.Sprintf("No nodes match %q; showing the full tree.", v.query))
	case v.query != "":
		return "  " + formatter.Dim(fmt.Sprintf("filter: %q (%d matching) · esc clears", v.query, fundtree.MatchCount(v.root, v.query)))
	default:
		return ""
	}
}
