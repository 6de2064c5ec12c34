package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/fundsflow/fundsflow/internal/money"
	"github.com/fundsflow/fundsflow/internal/repository"
)

// ExportDocument is the downloadable history of one dashboard.
type ExportDocument struct {
	Dashboard         domain.Dashboard      `json:"dashboard"`
	Fund              *domain.FundNode      `json:"fund"`
	Recent            []*domain.LedgerEntry `json:"recent"`
	Transfers         []*domain.LedgerEntry `json:"transfers"`
	Timestamp         time.Time             `json:"timestamp"`
	TotalTransactions int                   `json:"total_transactions"`
	TotalAmount       string                `json:"total_amount"`
	TotalAmountMinor  int64                 `json:"total_amount_minor"`
}

// ExportFileName is the suggested file name for an export taken at t.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("fundsflow_history_%s.json", t.Format("2006-01-02"))
}

type exportService struct {
	trees    TreeService
	ledger   repository.LedgerRepo
	observer UseCaseObserver
	now      func() time.Time
}

func NewExportService(trees TreeService, ledger repository.LedgerRepo, observers ...UseCaseObserver) ExportService {
	return &exportService{
		trees:    trees,
		ledger:   ledger,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *exportService) Export(ctx context.Context, dashboard domain.Dashboard, w io.Writer) (doc *ExportDocument, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"dashboard": string(dashboard)}
	defer observeUseCase(ctx, s.observer, "export", startedAt, fields, &err)

	root, err := s.trees.Load(ctx, dashboard)
	if err != nil {
		return nil, err
	}
	recent, err := s.ledger.ListRecent(ctx, dashboard, dashboard.ContributionKind(), domain.RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("listing recent entries: %w", err)
	}
	transfers, err := s.ledger.ListRecent(ctx, dashboard, domain.LedgerTransfer, domain.RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("listing transfers: %w", err)
	}
	totals, err := s.ledger.Totals(ctx, dashboard)
	if err != nil {
		return nil, err
	}

	doc = &ExportDocument{
		Dashboard:         dashboard,
		Fund:              root,
		Recent:            nonNil(recent),
		Transfers:         nonNil(transfers),
		Timestamp:         s.now().UTC(),
		TotalTransactions: totals.Count,
		TotalAmount:       money.FormatShort(totals.AmountMinor),
		TotalAmountMinor:  totals.AmountMinor,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err = enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("writing export: %w", err)
	}
	fields["total_transactions"] = totals.Count
	return doc, nil
}

// nonNil keeps empty lists as [] rather than null in JSON.
func nonNil(entries []*domain.LedgerEntry) []*domain.LedgerEntry {
	if entries == nil {
		return []*domain.LedgerEntry{}
	}
	return entries
}
