package domain

import (
	"strings"
	"time"

	"github.com/fundsflow/fundsflow/internal/money"
)

// RecentLimit caps how many ledger entries a dashboard shows at once.
const RecentLimit = 5

// LedgerEntry is a flat money-movement record kept beside, never inside,
// a fund tree: a donation, a fee payment, or an internal transfer.
type LedgerEntry struct {
	ID          string     `json:"-"`
	Dashboard   Dashboard  `json:"-"`
	Kind        LedgerKind `json:"kind"`
	Ref         string     `json:"id"`
	From        string     `json:"from,omitempty"`
	To          string     `json:"to,omitempty"`
	Target      string     `json:"target,omitempty"`
	Student     string     `json:"student,omitempty"`
	Semester    string     `json:"semester,omitempty"`
	AmountMinor int64      `json:"amount_minor"`
	Date        string     `json:"date"`
	Status      string     `json:"status,omitempty"`
	TxHash      string     `json:"tx_hash,omitempty"`
	CreatedAt   time.Time  `json:"-"`
}

// AmountLabel returns the amount as a full INR label, e.g. "₹1,25,000".
func (e *LedgerEntry) AmountLabel() string {
	return money.Format(e.AmountMinor)
}

// Counterparty returns the "to" side of the entry for display.
func (e *LedgerEntry) Counterparty() string {
	return CoalesceStr(e.To, e.Target)
}

// Matches reports whether query appears, case-insensitively, in any of the
// searchable fields. An empty query matches everything.
func (e *LedgerEntry) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []string{e.Student, e.From, e.To, e.Target, e.Ref, e.AmountLabel()} {
		if field != "" && strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// FilterEntries returns the entries matching query, preserving order.
func FilterEntries(entries []*LedgerEntry, query string) []*LedgerEntry {
	if query == "" {
		return entries
	}
	var out []*LedgerEntry
	for _, e := range entries {
		if e.Matches(query) {
			out = append(out, e)
		}
	}
	return out
}

// PrependRecent puts e at the front of recent and drops anything past
// RecentLimit. The input slice is not modified.
func PrependRecent(recent []*LedgerEntry, e *LedgerEntry) []*LedgerEntry {
	out := make([]*LedgerEntry, 0, RecentLimit)
	out = append(out, e)
	for _, r := range recent {
		if len(out) == RecentLimit {
			break
		}
		out = append(out, r)
	}
	return out
}
