package repository

import (
	"context"
	"fmt"

	"github.com/fundsflow/fundsflow/internal/db"
	"github.com/fundsflow/fundsflow/internal/domain"
)

type SQLiteLedgerRepo struct {
	db db.DBTX
}

func NewSQLiteLedgerRepo(conn db.DBTX) *SQLiteLedgerRepo {
	return &SQLiteLedgerRepo{db: conn}
}

func (r *SQLiteLedgerRepo) Create(ctx context.Context, e *domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (id, dashboard, kind, ref, from_name, to_name, target,
		student, semester, amount, date, status, tx_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		string(e.Dashboard),
		string(e.Kind),
		e.Ref,
		e.From,
		e.To,
		e.Target,
		e.Student,
		e.Semester,
		e.AmountMinor,
		e.Date,
		e.Status,
		e.TxHash,
		formatTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting ledger entry: %w", err)
	}
	return nil
}

func (r *SQLiteLedgerRepo) ListRecent(ctx context.Context, dashboard domain.Dashboard, kind domain.LedgerKind, limit int) ([]*domain.LedgerEntry, error) {
	if limit <= 0 {
		limit = domain.RecentLimit
	}
	query := `SELECT id, dashboard, kind, ref, from_name, to_name, target, student, semester,
		amount, date, status, tx_hash, created_at
		FROM ledger_entries WHERE dashboard = ? AND kind = ?
		ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, string(dashboard), string(kind), limit)
	if err != nil {
		return nil, fmt.Errorf("listing ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.LedgerEntry
	for rows.Next() {
		var (
			e              domain.LedgerEntry
			dash, k, ctStr string
		)
		if err := rows.Scan(&e.ID, &dash, &k, &e.Ref, &e.From, &e.To, &e.Target, &e.Student, &e.Semester,
			&e.AmountMinor, &e.Date, &e.Status, &e.TxHash, &ctStr); err != nil {
			return nil, fmt.Errorf("scanning ledger entry: %w", err)
		}
		e.Dashboard = domain.Dashboard(dash)
		e.Kind = domain.LedgerKind(k)
		if e.CreatedAt, err = parseTime(ctStr); err != nil {
			return nil, fmt.Errorf("parsing created_at for %s: %w", e.Ref, err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

func (r *SQLiteLedgerRepo) Totals(ctx context.Context, dashboard domain.Dashboard) (LedgerTotals, error) {
	var t LedgerTotals
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM ledger_entries WHERE dashboard = ?`,
		string(dashboard)).Scan(&t.Count, &t.AmountMinor)
	if err != nil {
		return LedgerTotals{}, fmt.Errorf("summing ledger entries: %w", err)
	}
	return t, nil
}
