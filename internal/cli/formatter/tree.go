package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ddddddO/gtree"
	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/fundsflow/fundsflow/internal/fundtree"
	"github.com/fundsflow/fundsflow/internal/money"
)

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// DetailZoomPercent is the zoom at and above which metadata lines are
// drawn under each node.
const DetailZoomPercent = 50

// TreeOptions controls RenderFundTree. Cursor is a row index, or -1 for
// no highlighted row.
type TreeOptions struct {
	Cursor int
	Zoom   fundtree.Zoom
}

// BarWidth grows the spent bar with the zoom level.
func BarWidth(z fundtree.Zoom) int {
	return 4 + z.Percent()/10
}

// RenderFundTree renders visible rows with box-drawing connectors, an
// expand marker, the short amount, a spent bar when the node has an
// allocation and its status. Badges are right-aligned.
func RenderFundTree(rows []fundtree.Row, opts TreeOptions) string {
	if len(rows) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
		detail  string
	}

	lines := make([]lineInfo, len(rows))
	maxContentWidth := 0
	barWidth := BarWidth(opts.Zoom)
	showDetail := opts.Zoom.Percent() >= DetailZoomPercent

	// Pass 1: build content and track max visible width.
	for idx, row := range rows {
		n := row.Node
		prefix := connectorPrefix(row)

		marker := "  "
		if row.HasChildren {
			marker = "▾ "
			if !row.Expanded {
				marker = "▸ "
			}
		}

		cursor := "  "
		if idx == opts.Cursor {
			cursor = StyleHeader.Render("› ")
		}

		title := TypeStyle(n.Type).Render(TypeIcon(n.Type) + " " + n.Name)
		if idx == opts.Cursor {
			title = StyleCursor.Render(TypeIcon(n.Type) + " " + n.Name)
		}
		lines[idx].content = cursor + Dim(prefix) + marker + title

		badge := StyleFg.Render(fmt.Sprintf("%12s", money.FormatShort(n.Amount)))
		if n.HasAllocation() {
			badge += Dim(" of ") + StyleFg.Render(fmt.Sprintf("%-12s", money.FormatShort(*n.Allocated))) +
				" " + RenderSpentBar(n.SpentPercentage(), barWidth)
		}
		badge += "  " + StatusStyle(n.StatusOrDefault()).Render("●")
		lines[idx].badge = badge

		if showDetail {
			if d := metadataLine(n.Metadata); d != "" {
				lines[idx].detail = "  " + Dim(detailPrefix(row)) + "    " + Dim(d)
			}
		}

		if w := lipgloss.Width(lines[idx].content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	// Pass 2: render with right-aligned badges.
	var b strings.Builder
	for _, li := range lines {
		pad := maxContentWidth - lipgloss.Width(li.content)
		if pad < 0 {
			pad = 0
		}
		b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
		if li.detail != "" {
			b.WriteString(li.detail + "\n")
		}
	}
	return b.String()
}

func connectorPrefix(row fundtree.Row) string {
	if row.Depth == 0 {
		return ""
	}
	if row.IsLast {
		return lineage(row) + treeCorner
	}
	return lineage(row) + treeBranch
}

// detailPrefix continues the vertical lines below a row.
func detailPrefix(row fundtree.Row) string {
	if row.Depth == 0 {
		return ""
	}
	if row.IsLast {
		return lineage(row) + treeBlank
	}
	return lineage(row) + treePipe
}

func lineage(row fundtree.Row) string {
	var prefix strings.Builder
	for _, last := range row.AncestorLast {
		if last {
			prefix.WriteString(treeBlank)
		} else {
			prefix.WriteString(treePipe)
		}
	}
	return prefix.String()
}

func metadataLine(md *domain.Metadata) string {
	if md == nil {
		return ""
	}
	var parts []string
	if md.HospitalsCount > 0 {
		parts = append(parts, fmt.Sprintf("%d hospitals", md.HospitalsCount))
	}
	if md.ProjectsCount > 0 {
		parts = append(parts, fmt.Sprintf("%d projects", md.ProjectsCount))
	}
	if md.LastUpdated != "" {
		parts = append(parts, "updated "+md.LastUpdated)
	}
	return strings.Join(parts, " · ")
}

// WritePlainTree writes the visible part of root as an uncolored tree
// for pipes and logs. Collapsed nodes are listed without their children
// and marked "(+)". Labels carry the node id, so siblings sharing a name
// stay distinct.
func WritePlainTree(w io.Writer, root *domain.FundNode, state *fundtree.ExpandState) error {
	if root == nil {
		return nil
	}
	gt := gtree.NewRoot(plainLabel(root, state.Expanded(root.ID)))
	var add func(parent *gtree.Node, n *domain.FundNode)
	add = func(parent *gtree.Node, n *domain.FundNode) {
		if !state.Expanded(n.ID) {
			return
		}
		for _, c := range n.Children {
			add(parent.Add(plainLabel(c, state.Expanded(c.ID))), c)
		}
	}
	add(gt, root)
	return gtree.OutputFromRoot(w, gt)
}

func plainLabel(n *domain.FundNode, expanded bool) string {
	label := fmt.Sprintf("%s [%s] %s", n.Name, n.ID, money.FormatShort(n.Amount))
	if n.HasAllocation() {
		label += fmt.Sprintf(" / %s (%.0f%%)", money.FormatShort(*n.Allocated), n.SpentPercentage())
	}
	if n.HasChildren() && !expanded {
		label += " (+)"
	}
	return label
}
