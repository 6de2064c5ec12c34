package formatter

import (
	"fmt"
	"strings"

	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/fundsflow/fundsflow/internal/money"
	"github.com/fundsflow/fundsflow/internal/service"
)

// FormatLedger renders ledger entries as a table whose columns depend on
// the kind: donations show donor and target, fee payments show student
// and semester, transfers show both parties.
func FormatLedger(kind domain.LedgerKind, entries []*domain.LedgerEntry) string {
	var b strings.Builder
	b.WriteString(Header(ledgerTitle(kind)) + "\n")
	if len(entries) == 0 {
		b.WriteString(Dim("No entries.") + "\n")
		return b.String()
	}

	t := Table{RightAlign: []int{3}}
	switch kind {
	case domain.LedgerFeePayment:
		t.Headers = []string{"REF", "STUDENT", "SEMESTER", "AMOUNT", "DATE", "TX"}
	case domain.LedgerTransfer:
		t.Headers = []string{"REF", "FROM", "TO", "AMOUNT", "DATE", "STATUS"}
	default:
		t.Headers = []string{"REF", "DONOR", "TARGET", "AMOUNT", "DATE", "TX"}
	}

	for _, e := range entries {
		var row []string
		switch kind {
		case domain.LedgerFeePayment:
			row = []string{e.Ref, e.Student, Placeholder(e.Semester), e.AmountLabel(), e.Date, txCell(e)}
		case domain.LedgerTransfer:
			row = []string{e.Ref, e.From, e.To, e.AmountLabel(), e.Date, statusCell(e.Status)}
		default:
			row = []string{e.Ref, e.From, Placeholder(e.Counterparty()), e.AmountLabel(), e.Date, txCell(e)}
		}
		t.Rows = append(t.Rows, row)
	}
	b.WriteString(t.Render())
	return b.String()
}

func ledgerTitle(kind domain.LedgerKind) string {
	switch kind {
	case domain.LedgerFeePayment:
		return "Recent fee payments"
	case domain.LedgerTransfer:
		return "Recent transfers"
	default:
		return "Recent donations"
	}
}

func txCell(e *domain.LedgerEntry) string {
	if e.TxHash == "" {
		return statusCell(e.Status)
	}
	return TruncHash(e.TxHash)
}

func statusCell(status string) string {
	if strings.EqualFold(status, "confirmed") {
		return StyleGreen.Render("✔ " + status)
	}
	return StyleYellow.Render(Placeholder(status))
}

// FormatContribution renders the confirmation shown after a donation or
// fee payment went through.
func FormatContribution(res *service.ContributionResult) string {
	e := res.Entry
	var lines []string
	switch e.Kind {
	case domain.LedgerFeePayment:
		lines = append(lines,
			fmt.Sprintf("%s paid %s for %s",
				StyleGreen.Render("✔"), Bold(e.AmountLabel()), StyleFg.Render(e.Student)),
			Dim("Semester: ")+e.Semester,
		)
	default:
		lines = append(lines,
			fmt.Sprintf("%s donated %s to %s",
				StyleGreen.Render("✔"), Bold(e.AmountLabel()), StyleFg.Render(e.Counterparty())),
		)
	}
	lines = append(lines, Dim("Ref:      ")+e.Ref)
	if res.Receipt != nil {
		lines = append(lines,
			Dim("From:     ")+res.Receipt.From,
			Dim("Tx hash:  ")+res.Receipt.Hash,
		)
	}
	lines = append(lines, Dim("Short:    ")+money.FormatShort(e.AmountMinor))
	return RenderBox("Transaction confirmed", strings.Join(lines, "\n"))
}
