package api

import (
	"github.com/bsthun/gut"
	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/fundsflow/fundsflow/internal/money"
	"github.com/fundsflow/fundsflow/internal/service"
)

type Response struct {
	Success *bool   `json:"success"`
	Message *string `json:"message,omitempty"`
	Error   *string `json:"error,omitempty"`
	Data    any     `json:"data,omitempty"`
}

func success(data any) *Response {
	return &Response{
		Success: gut.Ptr(true),
		Data:    data,
	}
}

type DashboardPayload struct {
	Name  domain.Dashboard  `json:"name"`
	Label string            `json:"label"`
	Kind  domain.LedgerKind `json:"contribution_kind"`
}

// NodePayload is a fund node with its display derivations filled in.
type NodePayload struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Type           domain.NodeType   `json:"type"`
	Amount         int64             `json:"amount"`
	AmountLabel    string            `json:"amount_label"`
	Allocated      *int64            `json:"allocated,omitempty"`
	AllocatedLabel string            `json:"allocated_label,omitempty"`
	SpentPercent   float64           `json:"spent_percent"`
	Status         domain.NodeStatus `json:"status"`
	Metadata       *domain.Metadata  `json:"metadata,omitempty"`
	Children       []*NodePayload    `json:"children,omitempty"`
}

func nodePayload(n *domain.FundNode) *NodePayload {
	if n == nil {
		return nil
	}
	p := &NodePayload{
		ID:           n.ID,
		Name:         n.Name,
		Type:         n.Type,
		Amount:       n.Amount,
		AmountLabel:  money.FormatShort(n.Amount),
		Allocated:    n.Allocated,
		SpentPercent: n.SpentPercentage(),
		Status:       n.StatusOrDefault(),
		Metadata:     n.Metadata,
	}
	if n.Allocated != nil {
		p.AllocatedLabel = money.FormatShort(*n.Allocated)
	}
	for _, c := range n.Children {
		p.Children = append(p.Children, nodePayload(c))
	}
	return p
}

type TreePayload struct {
	Dashboard domain.Dashboard `json:"dashboard"`
	Query     string           `json:"query,omitempty"`
	Matches   int              `json:"matches"`
	Fallback  bool             `json:"fallback"`
	Root      *NodePayload     `json:"root"`
}

func treePayload(d domain.Dashboard, r *service.SearchResult) *TreePayload {
	return &TreePayload{
		Dashboard: d,
		Query:     r.Query,
		Matches:   r.Matches,
		Fallback:  r.Fallback,
		Root:      nodePayload(r.Root),
	}
}

type AnomalyPayload struct {
	domain.Anomaly
	Title string `json:"title"`
}

type EntryPayload struct {
	*domain.LedgerEntry
	AmountLabel string `json:"amount_label"`
}

func entryPayloads(entries []*domain.LedgerEntry) []*EntryPayload {
	out := make([]*EntryPayload, 0, len(entries))
	for _, e := range entries {
		out = append(out, &EntryPayload{LedgerEntry: e, AmountLabel: e.AmountLabel()})
	}
	return out
}
