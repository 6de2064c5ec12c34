// Package fundtree holds the pure operations behind the fund-flow hierarchy
// explorer: search filtering, per-node expand state, row flattening, zoom
// and lookups. Nothing here mutates an input tree.
package fundtree

import (
	"strings"

	"github.com/fundsflow/fundsflow/internal/domain"
)

// Filter returns the part of the tree whose nodes match query, or have a
// descendant that matches. A node matches when its name contains query,
// ignoring case.
//
// An empty query returns root itself. Otherwise surviving nodes are fresh
// copies whose children are exactly their surviving children, in original
// order; every other field is passed through. Filter returns nil when
// nothing survives.
func Filter(root *domain.FundNode, query string) *domain.FundNode {
	if query == "" {
		return root
	}
	return filterNode(root, strings.ToLower(query))
}

func filterNode(n *domain.FundNode, lowerQuery string) *domain.FundNode {
	if n == nil {
		return nil
	}

	var kept []*domain.FundNode
	for _, child := range n.Children {
		if fc := filterNode(child, lowerQuery); fc != nil {
			kept = append(kept, fc)
		}
	}

	if len(kept) == 0 && !nameMatches(n, lowerQuery) {
		return nil
	}
	return n.WithChildren(kept)
}

func nameMatches(n *domain.FundNode, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(n.Name), lowerQuery)
}

// FilterOrRoot applies Filter and falls back to the unfiltered root when
// nothing matched, so the caller never renders an empty hierarchy.
// fellBack reports whether the fallback was taken.
func FilterOrRoot(root *domain.FundNode, query string) (result *domain.FundNode, fellBack bool) {
	if filtered := Filter(root, query); filtered != nil {
		return filtered, false
	}
	return root, true
}

// MatchCount returns how many nodes in root match query by name.
// An empty query matches nothing.
func MatchCount(root *domain.FundNode, query string) int {
	if query == "" {
		return 0
	}
	q := strings.ToLower(query)
	count := 0
	domain.Walk(root, func(n, _ *domain.FundNode, _ int) bool {
		if nameMatches(n, q) {
			count++
		}
		return true
	})
	return count
}
