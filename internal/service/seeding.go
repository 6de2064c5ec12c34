package service

import (
	"context"
	"fmt"

	"github.com/fundsflow/fundsflow/internal/db"
	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/fundsflow/fundsflow/internal/repository"
	"github.com/fundsflow/fundsflow/internal/seed"
)

// ensureSeeded stores the built-in tree and ledger history for d if the
// dashboard has no tree yet. It reports whether it seeded.
func ensureSeeded(ctx context.Context, uow db.UnitOfWork, d domain.Dashboard) (seeded bool, err error) {
	err = uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		trees := repository.NewSQLiteFundTreeRepo(tx)
		has, err := trees.HasTree(ctx, d)
		if err != nil {
			return err
		}
		if has {
			return nil
		}

		root, err := seed.Tree(d)
		if err != nil {
			return err
		}
		if err := trees.ReplaceTree(ctx, d, root); err != nil {
			return fmt.Errorf("seeding %s tree: %w", d, err)
		}

		ledger := repository.NewSQLiteLedgerRepo(tx)
		for _, e := range seed.LedgerEntries(d) {
			if err := ledger.Create(ctx, e); err != nil {
				return fmt.Errorf("seeding %s ledger: %w", d, err)
			}
		}
		seeded = true
		return nil
	})
	return seeded, err
}
