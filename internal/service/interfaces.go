package service

import (
	"context"
	"io"

	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/fundsflow/fundsflow/internal/wallet"
)

type TreeService interface {
	Dashboards() []domain.Dashboard
	// Load returns the stored tree, seeding the built-in one on first use.
	Load(ctx context.Context, dashboard domain.Dashboard) (*domain.FundNode, error)
	Search(ctx context.Context, dashboard domain.Dashboard, query string) (*SearchResult, error)
	Import(ctx context.Context, dashboard domain.Dashboard, root *domain.FundNode) (*ImportResult, error)
	ImportFile(ctx context.Context, dashboard domain.Dashboard, path string) (*ImportResult, error)
}

// SearchResult is a filtered view of a dashboard's tree. When nothing
// matched, Root is the full tree and Fallback is set.
type SearchResult struct {
	Root     *domain.FundNode
	Query    string
	Matches  int
	Fallback bool
}

// ImportResult holds the outcome of a tree import.
type ImportResult struct {
	Dashboard domain.Dashboard
	NodeCount int
}

type DonationRequest struct {
	AmountMinor int64
	Target      string
}

type FeeRequest struct {
	StudentID   string
	StudentName string
	Semester    string
	AmountMinor int64
}

// ContributionResult is a recorded contribution together with the updated
// recent list for its dashboard.
type ContributionResult struct {
	Entry   *domain.LedgerEntry
	Receipt *wallet.Receipt
	Recent  []*domain.LedgerEntry
}

type ContributionService interface {
	Donate(ctx context.Context, req DonationRequest) (*ContributionResult, error)
	PayFee(ctx context.Context, req FeeRequest) (*ContributionResult, error)
	// Recent lists the newest entries of kind, filtered by query. An empty
	// kind means the dashboard's contribution kind.
	Recent(ctx context.Context, dashboard domain.Dashboard, kind domain.LedgerKind, query string) ([]*domain.LedgerEntry, error)
}

type ExportService interface {
	Export(ctx context.Context, dashboard domain.Dashboard, w io.Writer) (*ExportDocument, error)
}

type AnomalyService interface {
	List(ctx context.Context, dashboard domain.Dashboard) ([]domain.Anomaly, error)
}

// Wallet is the part of wallet.Session the contribution flow needs.
type Wallet interface {
	State() wallet.State
	Connect(ctx context.Context) (string, error)
	Send(ctx context.Context, amountMinor int64, to string) (*wallet.Receipt, error)
}
