package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies every schema statement. Statements are idempotent so it
// is safe to run on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS fund_nodes (
		dashboard       TEXT NOT NULL,
		id              TEXT NOT NULL,
		parent_id       TEXT,
		order_index     INTEGER NOT NULL DEFAULT 0,
		name            TEXT NOT NULL,
		type            TEXT NOT NULL
		                CHECK(type IN ('national','state','hospital','department')),
		amount          INTEGER NOT NULL CHECK(amount >= 0),
		allocated       INTEGER CHECK(allocated IS NULL OR allocated >= 0),
		status          TEXT CHECK(status IS NULL OR status IN ('healthy','warning','danger')),
		hospitals_count INTEGER NOT NULL DEFAULT 0,
		projects_count  INTEGER NOT NULL DEFAULT 0,
		last_updated    TEXT NOT NULL DEFAULT '',
		has_metadata    INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (dashboard, id),
		FOREIGN KEY (dashboard, parent_id) REFERENCES fund_nodes(dashboard, id) ON DELETE CASCADE
	)`,

	`CREATE INDEX IF NOT EXISTS idx_fund_nodes_parent ON fund_nodes(dashboard, parent_id)`,

	`CREATE TABLE IF NOT EXISTS ledger_entries (
		id         TEXT PRIMARY KEY,
		dashboard  TEXT NOT NULL,
		kind       TEXT NOT NULL
		           CHECK(kind IN ('donation','fee_payment','transfer')),
		ref        TEXT NOT NULL,
		from_name  TEXT NOT NULL DEFAULT '',
		to_name    TEXT NOT NULL DEFAULT '',
		target     TEXT NOT NULL DEFAULT '',
		student    TEXT NOT NULL DEFAULT '',
		semester   TEXT NOT NULL DEFAULT '',
		amount     INTEGER NOT NULL CHECK(amount >= 0),
		date       TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT '',
		tx_hash    TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_ledger_recent ON ledger_entries(dashboard, kind, created_at)`,
}
