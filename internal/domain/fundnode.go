package domain

// Metadata carries cosmetic display hints for a node.
type Metadata struct {
	Status         NodeStatus `json:"status,omitempty" yaml:"status,omitempty" validate:"omitempty,oneof=healthy warning danger"`
	HospitalsCount int        `json:"hospitals_count,omitempty" yaml:"hospitals_count,omitempty" validate:"gte=0"`
	ProjectsCount  int        `json:"projects_count,omitempty" yaml:"projects_count,omitempty" validate:"gte=0"`
	LastUpdated    string     `json:"last_updated,omitempty" yaml:"last_updated,omitempty"`
}

// FundNode is one entry in a fund-flow hierarchy. Amounts are minor
// currency units (paise). A node's amount is independent data and is not
// required to equal the sum of its children.
type FundNode struct {
	ID        string      `json:"id" yaml:"id" validate:"required"`
	Name      string      `json:"name" yaml:"name" validate:"required"`
	Amount    int64       `json:"amount" yaml:"amount" validate:"gte=0"`
	Allocated *int64      `json:"allocated,omitempty" yaml:"allocated,omitempty" validate:"omitempty,gte=0"`
	Type      NodeType    `json:"type" yaml:"type" validate:"required,oneof=national state hospital department"`
	Children  []*FundNode `json:"children,omitempty" yaml:"children,omitempty" validate:"-"`
	Metadata  *Metadata   `json:"metadata,omitempty" yaml:"metadata,omitempty" validate:"-"`
}

// HasChildren reports whether the node has at least one child.
func (n *FundNode) HasChildren() bool {
	return len(n.Children) > 0
}

// HasAllocation reports whether a spent fraction can be shown for the node.
// A zero allocation counts as absent.
func (n *FundNode) HasAllocation() bool {
	return n.Allocated != nil && *n.Allocated != 0
}

// SpentPercentage returns amount/allocated*100, or 0 without an allocation.
// The value is not clamped: anything above 100 is an overspend.
func (n *FundNode) SpentPercentage() float64 {
	if !n.HasAllocation() {
		return 0
	}
	return float64(n.Amount) / float64(*n.Allocated) * 100
}

// IsOverspent reports whether spending exceeds the allocation.
func (n *FundNode) IsOverspent() bool {
	return n.SpentPercentage() > 100
}

// StatusOrDefault returns the metadata status, defaulting to healthy.
func (n *FundNode) StatusOrDefault() NodeStatus {
	if n.Metadata == nil || n.Metadata.Status == "" {
		return StatusHealthy
	}
	return n.Metadata.Status
}

// WithChildren returns a shallow copy of n whose children are replaced.
// n itself is left untouched.
func (n *FundNode) WithChildren(children []*FundNode) *FundNode {
	out := *n
	out.Children = children
	return &out
}

// Walk visits root and its descendants in pre-order. fn receives the parent
// (nil for root) and the depth. Returning false skips the node's subtree.
func Walk(root *FundNode, fn func(n, parent *FundNode, depth int) bool) {
	var visit func(n, parent *FundNode, depth int)
	visit = func(n, parent *FundNode, depth int) {
		if n == nil || !fn(n, parent, depth) {
			return
		}
		for _, c := range n.Children {
			visit(c, n, depth+1)
		}
	}
	visit(root, nil, 0)
}

// Count returns the number of nodes in the tree rooted at root.
func Count(root *FundNode) int {
	total := 0
	Walk(root, func(*FundNode, *FundNode, int) bool {
		total++
		return true
	})
	return total
}
