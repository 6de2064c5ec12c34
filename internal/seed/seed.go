// Package seed holds the built-in trees and ledger history each dashboard
// starts with.
package seed

import (
	"embed"
	"fmt"
	"time"

	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/fundsflow/fundsflow/internal/importer"
	"github.com/google/uuid"
)

//go:embed trees/*.yaml
var treeFiles embed.FS

// Tree returns a fresh copy of the built-in tree for d.
func Tree(d domain.Dashboard) (*domain.FundNode, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("no built-in tree for dashboard %q", d)
	}
	data, err := treeFiles.ReadFile("trees/" + string(d) + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("reading built-in %s tree: %w", d, err)
	}
	root, err := importer.Parse(data, importer.FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("built-in %s tree: %w", d, err)
	}
	if err := domain.ValidateTree(root); err != nil {
		return nil, fmt.Errorf("built-in %s tree: %w", d, err)
	}
	return root, nil
}

type entrySeed struct {
	kind     domain.LedgerKind
	ref      string
	from     string
	to       string
	target   string
	student  string
	semester string
	amount   int64
	date     string
}

var ledgerSeeds = map[domain.Dashboard][]entrySeed{
	domain.DashboardGovernment: {
		{kind: domain.LedgerDonation, ref: "DON_003", from: "Amit Kumar", target: "General Fund", amount: 500_000, date: "2025-09-10"},
		{kind: domain.LedgerDonation, ref: "DON_002", from: "Anonymous", target: "Cardiology", amount: 2_500_000, date: "2025-09-11"},
		{kind: domain.LedgerDonation, ref: "DON_001", from: "Priya Reddy", target: "Pathology", amount: 1_000_000, date: "2025-09-12"},
		{kind: domain.LedgerTransfer, ref: "TXN_002", from: "Karnataka Health", to: "Hospital B", amount: 50_000_000_000, date: "2025-09-08"},
		{kind: domain.LedgerTransfer, ref: "TXN_001", from: "National Fund", to: "Karnataka Health", amount: 300_000_000_000, date: "2025-09-10"},
		{kind: domain.LedgerTransfer, ref: "TXN_003", from: "Donor: Ravi Sharma", to: "National Fund", amount: 500_000, date: "2025-09-12"},
	},
	domain.DashboardInstitution: {
		{kind: domain.LedgerFeePayment, ref: "FEE_003", student: "Arjun Singh (1RV20EE023)", semester: "Sem 3", to: "Institution Account", amount: 11_500_000, date: "2025-09-08"},
		{kind: domain.LedgerFeePayment, ref: "FEE_002", student: "Sneha Patel (1RV20CS045)", semester: "Sem 5", to: "Institution Account", amount: 12_500_000, date: "2025-09-09"},
		{kind: domain.LedgerFeePayment, ref: "FEE_001", student: "Rahul Sharma (1RV20CS001)", semester: "Sem 5", to: "Institution Account", amount: 12_500_000, date: "2025-09-10"},
		{kind: domain.LedgerTransfer, ref: "TXN_INS_002", from: "Donor Contribution", to: "AI Traffic Project", amount: 5_000_000, date: "2025-09-08"},
		{kind: domain.LedgerTransfer, ref: "TXN_INS_001", from: "Student Payment", to: "Institution Account", amount: 12_500_000, date: "2025-09-10"},
	},
}

// LedgerEntries returns the starting history for d, oldest first. Each
// call returns new entries with fresh ids.
func LedgerEntries(d domain.Dashboard) []*domain.LedgerEntry {
	seeds := ledgerSeeds[d]
	out := make([]*domain.LedgerEntry, 0, len(seeds))
	for i, s := range seeds {
		day, err := time.Parse("2006-01-02", s.date)
		if err != nil {
			panic(fmt.Sprintf("seed %s: bad date %q", s.ref, s.date))
		}
		out = append(out, &domain.LedgerEntry{
			ID:          uuid.New().String(),
			Dashboard:   d,
			Kind:        s.kind,
			Ref:         s.ref,
			From:        s.from,
			To:          s.to,
			Target:      s.target,
			Student:     s.student,
			Semester:    s.semester,
			AmountMinor: s.amount,
			Date:        s.date,
			Status:      "Confirmed",
			// Noon plus a per-entry offset keeps same-day entries ordered.
			CreatedAt: day.Add(12*time.Hour + time.Duration(i)*time.Second),
		})
	}
	return out
}
