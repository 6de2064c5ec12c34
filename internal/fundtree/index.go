package fundtree

import (
	"fmt"

	"github.com/fundsflow/fundsflow/internal/domain"
)

// Index gives id-based access to a tree built once from its root.
type Index struct {
	root   *domain.FundNode
	nodes  map[string]*domain.FundNode
	parent map[string]string
}

// NewIndex indexes root. Duplicate ids are rejected.
func NewIndex(root *domain.FundNode) (*Index, error) {
	ix := &Index{
		root:   root,
		nodes:  make(map[string]*domain.FundNode),
		parent: make(map[string]string),
	}
	var dupErr error
	domain.Walk(root, func(n, parent *domain.FundNode, _ int) bool {
		if _, exists := ix.nodes[n.ID]; exists {
			dupErr = fmt.Errorf("duplicate node id %q", n.ID)
			return false
		}
		ix.nodes[n.ID] = n
		if parent != nil {
			ix.parent[n.ID] = parent.ID
		}
		return dupErr == nil
	})
	if dupErr != nil {
		return nil, dupErr
	}
	return ix, nil
}

// Root returns the indexed root.
func (ix *Index) Root() *domain.FundNode { return ix.root }

// Len returns the number of indexed nodes.
func (ix *Index) Len() int { return len(ix.nodes) }

// Node looks up a node by id.
func (ix *Index) Node(id string) (*domain.FundNode, bool) {
	n, ok := ix.nodes[id]
	return n, ok
}

// Parent returns the parent of id. The root has no parent.
func (ix *Index) Parent(id string) (*domain.FundNode, bool) {
	pid, ok := ix.parent[id]
	if !ok {
		return nil, false
	}
	return ix.nodes[pid], true
}

// PathTo returns the breadcrumb from the root down to id inclusive,
// or nil if id is unknown.
func (ix *Index) PathTo(id string) []*domain.FundNode {
	n, ok := ix.nodes[id]
	if !ok {
		return nil
	}
	path := []*domain.FundNode{n}
	for {
		p, ok := ix.Parent(n.ID)
		if !ok {
			break
		}
		path = append(path, p)
		n = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
