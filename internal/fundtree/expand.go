package fundtree

import "sort"

// ExpandState records which nodes are collapsed, keyed by node id.
// Every node is expanded unless toggled. It is owned by one state
// container and handed down read-only; toggling one id never touches
// another. The zero value is ready to use.
type ExpandState struct {
	collapsed map[string]bool
}

// NewExpandState returns a state with every node expanded.
func NewExpandState() *ExpandState {
	return &ExpandState{collapsed: make(map[string]bool)}
}

// Expanded reports whether id is expanded. Unknown ids are expanded.
func (s *ExpandState) Expanded(id string) bool {
	if s == nil {
		return true
	}
	return !s.collapsed[id]
}

// Toggle flips id and returns its new expanded value.
func (s *ExpandState) Toggle(id string) bool {
	expanded := !s.Expanded(id)
	s.SetExpanded(id, expanded)
	return expanded
}

// SetExpanded sets the state of a single id.
func (s *ExpandState) SetExpanded(id string, expanded bool) {
	if expanded {
		delete(s.collapsed, id)
		return
	}
	if s.collapsed == nil {
		s.collapsed = make(map[string]bool)
	}
	s.collapsed[id] = true
}

// Collapsed returns the collapsed ids in sorted order.
func (s *ExpandState) Collapsed() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.collapsed))
	for id := range s.collapsed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
