package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/google/uuid"
)

var testRefCounter atomic.Int64

// FundNode options
type NodeOption func(*domain.FundNode)

func WithAllocated(minor int64) NodeOption {
	return func(n *domain.FundNode) {
		n.Allocated = &minor
	}
}

func WithType(t domain.NodeType) NodeOption {
	return func(n *domain.FundNode) {
		n.Type = t
	}
}

func WithStatus(s domain.NodeStatus) NodeOption {
	return func(n *domain.FundNode) {
		if n.Metadata == nil {
			n.Metadata = &domain.Metadata{}
		}
		n.Metadata.Status = s
	}
}

func WithChildren(children ...*domain.FundNode) NodeOption {
	return func(n *domain.FundNode) {
		n.Children = children
	}
}

// NewTestNode builds a department node with the given id, name and amount.
func NewTestNode(id, name string, amount int64, opts ...NodeOption) *domain.FundNode {
	n := &domain.FundNode{
		ID:     id,
		Name:   name,
		Amount: amount,
		Type:   domain.NodeDepartment,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// SampleTree returns a small four-tier tree:
//
//	national
//	├─ karnataka
//	│  ├─ hospital-b
//	│  │  ├─ pathology (overspent)
//	│  │  └─ cardiology
//	│  └─ hospital-a
//	└─ maharashtra
//	   └─ hospital-c
func SampleTree() *domain.FundNode {
	return NewTestNode("national", "National Health Fund", 10_000_000_000_000, WithType(domain.NodeNational),
		WithChildren(
			NewTestNode("karnataka", "Karnataka Health Dept", 2_250_000_000_000,
				WithType(domain.NodeState), WithAllocated(3_000_000_000_000),
				WithChildren(
					NewTestNode("hospital-b", "Hospital B", 500_000_000_000,
						WithType(domain.NodeHospital), WithAllocated(600_000_000_000), WithStatus(domain.StatusWarning),
						WithChildren(
							NewTestNode("pathology", "Pathology", 12_500_000_000,
								WithAllocated(10_000_000_000), WithStatus(domain.StatusDanger)),
							NewTestNode("cardiology", "Cardiology", 8_000_000_000,
								WithAllocated(15_000_000_000)),
						)),
					NewTestNode("hospital-a", "Hospital A", 450_000_000_000,
						WithType(domain.NodeHospital), WithAllocated(550_000_000_000)),
				)),
			NewTestNode("maharashtra", "Maharashtra Health Dept", 1_800_000_000_000,
				WithType(domain.NodeState), WithAllocated(2_500_000_000_000),
				WithChildren(
					NewTestNode("hospital-c", "Hospital C", 400_000_000_000,
						WithType(domain.NodeHospital), WithAllocated(500_000_000_000)),
				)),
		))
}

// Ledger entry options
type EntryOption func(*domain.LedgerEntry)

func WithKind(k domain.LedgerKind) EntryOption {
	return func(e *domain.LedgerEntry) {
		e.Kind = k
	}
}

func WithDashboard(d domain.Dashboard) EntryOption {
	return func(e *domain.LedgerEntry) {
		e.Dashboard = d
	}
}

func WithCreatedAt(t time.Time) EntryOption {
	return func(e *domain.LedgerEntry) {
		e.CreatedAt = t
		e.Date = t.Format("2006-01-02")
	}
}

func WithTarget(target string) EntryOption {
	return func(e *domain.LedgerEntry) {
		e.Target = target
	}
}

// NewTestEntry builds a confirmed government donation from the given donor.
func NewTestEntry(from string, amountMinor int64, opts ...EntryOption) *domain.LedgerEntry {
	now := time.Now().UTC()
	n := testRefCounter.Add(1)
	e := &domain.LedgerEntry{
		ID:          uuid.New().String(),
		Dashboard:   domain.DashboardGovernment,
		Kind:        domain.LedgerDonation,
		Ref:         fmt.Sprintf("DON_T%03d", n),
		From:        from,
		Target:      "General Fund",
		AmountMinor: amountMinor,
		Date:        now.Format("2006-01-02"),
		Status:      "Confirmed",
		CreatedAt:   now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
