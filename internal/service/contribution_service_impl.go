package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fundsflow/fundsflow/internal/db"
	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/fundsflow/fundsflow/internal/repository"
	"github.com/fundsflow/fundsflow/internal/wallet"
	"github.com/google/uuid"
)

const (
	// anonymousDonor is recorded when the wallet reports no sender.
	anonymousDonor = "Anonymous"
	// feeRecipient is the wallet address fee payments are sent to.
	feeRecipient     = "institution-account"
	feeRecipientName = "Institution Account"
	statusConfirmed  = "Confirmed"
)

type contributionService struct {
	ledger   repository.LedgerRepo
	uow      db.UnitOfWork
	wallet   Wallet
	observer UseCaseObserver
	now      func() time.Time
}

func NewContributionService(ledger repository.LedgerRepo, uow db.UnitOfWork, w Wallet, observers ...UseCaseObserver) ContributionService {
	return &contributionService{
		ledger:   ledger,
		uow:      uow,
		wallet:   w,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *contributionService) Donate(ctx context.Context, req DonationRequest) (result *ContributionResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"dashboard": string(domain.DashboardGovernment),
		"kind":      string(domain.LedgerDonation),
	}
	defer observeUseCase(ctx, s.observer, "donate", startedAt, fields, &err)

	target := strings.TrimSpace(req.Target)
	if req.AmountMinor <= 0 || target == "" {
		return nil, fmt.Errorf("%w: enter a donation amount and select a target", ErrMissingField)
	}

	receipt, err := s.send(ctx, domain.DashboardGovernment, req.AmountMinor, target)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	entry := &domain.LedgerEntry{
		ID:          uuid.New().String(),
		Dashboard:   domain.DashboardGovernment,
		Kind:        domain.LedgerDonation,
		Ref:         fmt.Sprintf("DON_%d", now.UnixMilli()),
		From:        domain.CoalesceStr(receipt.From, anonymousDonor),
		Target:      target,
		AmountMinor: req.AmountMinor,
		Date:        now.Format("2006-01-02"),
		Status:      statusConfirmed,
		TxHash:      receipt.Hash,
		CreatedAt:   now,
	}
	result, err = s.record(ctx, entry, receipt)
	if err != nil {
		return nil, err
	}
	fields["amount_minor"] = req.AmountMinor
	fields["ref"] = entry.Ref
	return result, nil
}

func (s *contributionService) PayFee(ctx context.Context, req FeeRequest) (result *ContributionResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"dashboard": string(domain.DashboardInstitution),
		"kind":      string(domain.LedgerFeePayment),
	}
	defer observeUseCase(ctx, s.observer, "pay-fee", startedAt, fields, &err)

	studentID := strings.TrimSpace(req.StudentID)
	if studentID == "" || strings.TrimSpace(req.Semester) == "" || req.AmountMinor <= 0 {
		return nil, fmt.Errorf("%w: student id, semester and amount are required", ErrMissingField)
	}
	semester, err := domain.NormalizeSemester(req.Semester)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidField, err)
	}

	receipt, err := s.send(ctx, domain.DashboardInstitution, req.AmountMinor, feeRecipient)
	if err != nil {
		return nil, err
	}

	student := studentID
	if name := strings.TrimSpace(req.StudentName); name != "" {
		student = fmt.Sprintf("%s (%s)", name, studentID)
	}

	now := s.now().UTC()
	entry := &domain.LedgerEntry{
		ID:          uuid.New().String(),
		Dashboard:   domain.DashboardInstitution,
		Kind:        domain.LedgerFeePayment,
		Ref:         fmt.Sprintf("FEE_%d", now.UnixMilli()),
		From:        receipt.From,
		To:          feeRecipientName,
		Student:     student,
		Semester:    semester,
		AmountMinor: req.AmountMinor,
		Date:        now.Format("2006-01-02"),
		Status:      statusConfirmed,
		TxHash:      receipt.Hash,
		CreatedAt:   now,
	}
	result, err = s.record(ctx, entry, receipt)
	if err != nil {
		return nil, err
	}
	fields["amount_minor"] = req.AmountMinor
	fields["ref"] = entry.Ref
	return result, nil
}

// send seeds the dashboard so built-in history sorts before the new entry,
// connects the wallet when needed and transfers the amount.
func (s *contributionService) send(ctx context.Context, dashboard domain.Dashboard, amountMinor int64, to string) (*wallet.Receipt, error) {
	if _, err := ensureSeeded(ctx, s.uow, dashboard); err != nil {
		return nil, err
	}
	if !s.wallet.State().Connected {
		if _, err := s.wallet.Connect(ctx); err != nil {
			return nil, fmt.Errorf("connecting wallet: %w", err)
		}
	}
	receipt, err := s.wallet.Send(ctx, amountMinor, to)
	if err != nil {
		return nil, fmt.Errorf("sending transaction: %w", err)
	}
	return receipt, nil
}

func (s *contributionService) record(ctx context.Context, entry *domain.LedgerEntry, receipt *wallet.Receipt) (*ContributionResult, error) {
	if err := s.ledger.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("recording %s %s (tx %s): %w", entry.Kind, entry.Ref, receipt.Hash, err)
	}
	recent, err := s.ledger.ListRecent(ctx, entry.Dashboard, entry.Kind, domain.RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("listing recent %s entries: %w", entry.Kind, err)
	}
	return &ContributionResult{Entry: entry, Receipt: receipt, Recent: recent}, nil
}

func (s *contributionService) Recent(ctx context.Context, dashboard domain.Dashboard, kind domain.LedgerKind, query string) ([]*domain.LedgerEntry, error) {
	if err := checkDashboard(dashboard); err != nil {
		return nil, err
	}
	if kind == "" {
		kind = dashboard.ContributionKind()
	}
	if !domain.ValidLedgerKinds[string(kind)] {
		return nil, fmt.Errorf("%w: unknown ledger kind %q", ErrInvalidField, kind)
	}
	if _, err := ensureSeeded(ctx, s.uow, dashboard); err != nil {
		return nil, err
	}

	entries, err := s.ledger.ListRecent(ctx, dashboard, kind, domain.RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("listing recent %s entries: %w", kind, err)
	}
	return domain.FilterEntries(entries, query), nil
}
