package repository

import (
	"context"
	"errors"

	"github.com/fundsflow/fundsflow/internal/domain"
)

// ErrNotFound is wrapped by repositories when a lookup matches nothing.
var ErrNotFound = errors.New("not found")

type FundTreeRepo interface {
	// ReplaceTree swaps the stored tree of a dashboard for root. Callers
	// should run it inside a unit of work so a failure leaves the old tree.
	ReplaceTree(ctx context.Context, dashboard domain.Dashboard, root *domain.FundNode) error
	LoadTree(ctx context.Context, dashboard domain.Dashboard) (*domain.FundNode, error)
	HasTree(ctx context.Context, dashboard domain.Dashboard) (bool, error)
}

// LedgerTotals summarises the stored ledger for one dashboard.
type LedgerTotals struct {
	Count       int
	AmountMinor int64
}

type LedgerRepo interface {
	Create(ctx context.Context, e *domain.LedgerEntry) error
	// ListRecent returns the newest entries of a kind, newest first.
	ListRecent(ctx context.Context, dashboard domain.Dashboard, kind domain.LedgerKind, limit int) ([]*domain.LedgerEntry, error)
	Totals(ctx context.Context, dashboard domain.Dashboard) (LedgerTotals, error)
}
