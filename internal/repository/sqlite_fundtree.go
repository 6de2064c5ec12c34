package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fundsflow/fundsflow/internal/db"
	"github.com/fundsflow/fundsflow/internal/domain"
)

// SQLiteFundTreeRepo stores each dashboard's tree as rows linked by
// parent_id, with sibling order kept in order_index.
type SQLiteFundTreeRepo struct {
	db db.DBTX
}

func NewSQLiteFundTreeRepo(conn db.DBTX) *SQLiteFundTreeRepo {
	return &SQLiteFundTreeRepo{db: conn}
}

func (r *SQLiteFundTreeRepo) ReplaceTree(ctx context.Context, dashboard domain.Dashboard, root *domain.FundNode) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM fund_nodes WHERE dashboard = ?`, string(dashboard)); err != nil {
		return fmt.Errorf("clearing fund tree: %w", err)
	}

	query := `INSERT INTO fund_nodes (dashboard, id, parent_id, order_index, name, type, amount, allocated,
		status, hospitals_count, projects_count, last_updated, has_metadata)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	// Pre-order insertion guarantees a parent row exists before its children.
	var insert func(n *domain.FundNode, parentID string, order int) error
	insert = func(n *domain.FundNode, parentID string, order int) error {
		var md domain.Metadata
		if n.Metadata != nil {
			md = *n.Metadata
		}
		_, err := r.db.ExecContext(ctx, query,
			string(dashboard),
			n.ID,
			nullableString(parentID),
			order,
			n.Name,
			string(n.Type),
			n.Amount,
			nullableInt64(n.Allocated),
			nullableString(string(md.Status)),
			md.HospitalsCount,
			md.ProjectsCount,
			md.LastUpdated,
			boolToInt(n.Metadata != nil),
		)
		if err != nil {
			return fmt.Errorf("inserting fund node %q: %w", n.ID, err)
		}
		for i, c := range n.Children {
			if err := insert(c, n.ID, i); err != nil {
				return err
			}
		}
		return nil
	}
	return insert(root, "", 0)
}

func (r *SQLiteFundTreeRepo) LoadTree(ctx context.Context, dashboard domain.Dashboard) (*domain.FundNode, error) {
	query := `SELECT id, parent_id, name, type, amount, allocated, status,
		hospitals_count, projects_count, last_updated, has_metadata
		FROM fund_nodes WHERE dashboard = ? ORDER BY order_index, rowid`
	rows, err := r.db.QueryContext(ctx, query, string(dashboard))
	if err != nil {
		return nil, fmt.Errorf("loading fund tree: %w", err)
	}
	defer rows.Close()

	type loaded struct {
		node     *domain.FundNode
		parentID string
	}
	var all []loaded
	byID := make(map[string]*domain.FundNode)

	for rows.Next() {
		var (
			n           domain.FundNode
			parentID    sql.NullString
			nodeType    string
			allocated   sql.NullInt64
			status      sql.NullString
			md          domain.Metadata
			hasMetadata int
		)
		if err := rows.Scan(&n.ID, &parentID, &n.Name, &nodeType, &n.Amount, &allocated, &status,
			&md.HospitalsCount, &md.ProjectsCount, &md.LastUpdated, &hasMetadata); err != nil {
			return nil, fmt.Errorf("scanning fund node: %w", err)
		}
		n.Type = domain.NodeType(nodeType)
		n.Allocated = int64Ptr(allocated)
		if hasMetadata != 0 {
			md.Status = domain.NodeStatus(status.String)
			n.Metadata = &md
		}
		node := &n
		byID[n.ID] = node
		all = append(all, loaded{node: node, parentID: parentID.String})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fund nodes: %w", err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("fund tree %q: %w", dashboard, ErrNotFound)
	}

	var root *domain.FundNode
	for _, l := range all {
		if l.parentID == "" {
			if root != nil {
				return nil, fmt.Errorf("fund tree %q has more than one root", dashboard)
			}
			root = l.node
			continue
		}
		parent, ok := byID[l.parentID]
		if !ok {
			return nil, fmt.Errorf("fund node %q references missing parent %q", l.node.ID, l.parentID)
		}
		parent.Children = append(parent.Children, l.node)
	}
	if root == nil {
		return nil, fmt.Errorf("fund tree %q has no root", dashboard)
	}
	return root, nil
}

func (r *SQLiteFundTreeRepo) HasTree(ctx context.Context, dashboard domain.Dashboard) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM fund_nodes WHERE dashboard = ?`, string(dashboard)).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking fund tree: %w", err)
	}
	return n > 0, nil
}
