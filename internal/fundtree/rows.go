package fundtree

import "github.com/fundsflow/fundsflow/internal/domain"

// Row is one visible line of a rendered hierarchy.
type Row struct {
	Node        *domain.FundNode
	Depth       int
	IsLast      bool // last among its siblings
	HasChildren bool
	Expanded    bool
	// AncestorLast[i] tells whether the ancestor at depth i+1 was the last
	// of its siblings; renderers use it to draw or skip vertical pipes.
	AncestorLast []bool
}

// Flatten walks root in pre-order and returns the rows that are visible
// under state. A collapsed node is listed but its descendants are not;
// their own expand state is kept for when the node is reopened.
func Flatten(root *domain.FundNode, state *ExpandState) []Row {
	if root == nil {
		return nil
	}

	var rows []Row
	var walk func(n *domain.FundNode, depth int, isLast bool, lineage []bool)
	walk = func(n *domain.FundNode, depth int, isLast bool, lineage []bool) {
		expanded := state.Expanded(n.ID)
		rows = append(rows, Row{
			Node:         n,
			Depth:        depth,
			IsLast:       isLast,
			HasChildren:  n.HasChildren(),
			Expanded:     expanded,
			AncestorLast: lineage,
		})
		if !expanded {
			return
		}

		childLineage := lineage
		if depth > 0 {
			childLineage = make([]bool, len(lineage)+1)
			copy(childLineage, lineage)
			childLineage[len(lineage)] = isLast
		}
		for i, c := range n.Children {
			walk(c, depth+1, i == len(n.Children)-1, childLineage)
		}
	}
	walk(root, 0, true, nil)
	return rows
}

// RowIndex returns the position of the row showing id, or -1.
func RowIndex(rows []Row, id string) int {
	for i, r := range rows {
		if r.Node.ID == id {
			return i
		}
	}
	return -1
}
