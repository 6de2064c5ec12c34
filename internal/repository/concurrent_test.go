package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/fundsflow/fundsflow/internal/db"
	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/fundsflow/fundsflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Readers loading a tree while another goroutine replaces it must always see
// a whole tree, either the old one or the new one.
func TestConcurrentAccess_LoadDuringReplace(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteFundTreeRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	require.NoError(t, repo.ReplaceTree(ctx, domain.DashboardGovernment, testutil.SampleTree()))
	wantCount := domain.Count(testutil.SampleTree())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
				return NewSQLiteFundTreeRepo(tx).ReplaceTree(ctx, domain.DashboardGovernment, testutil.SampleTree())
			})
			if err != nil {
				t.Errorf("writer: replace %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				tree, err := repo.LoadTree(ctx, domain.DashboardGovernment)
				if err != nil {
					t.Errorf("reader %d: load: %v", reader, err)
					return
				}
				if got := domain.Count(tree); got != wantCount {
					t.Errorf("reader %d: saw %d nodes, want %d", reader, got, wantCount)
				}
			}
		}(r)
	}

	wg.Wait()
}

func TestConcurrentAccess_ParallelLedgerWrites(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteLedgerRepo(database)

	const writers = 8
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(writer int) {
			defer wg.Done()
			e := testutil.NewTestEntry(fmt.Sprintf("donor-%d", writer), 100)
			if err := repo.Create(ctx, e); err != nil {
				t.Errorf("writer %d: %v", writer, err)
			}
		}(w)
	}
	wg.Wait()

	totals, err := repo.Totals(ctx, domain.DashboardGovernment)
	require.NoError(t, err)
	assert.Equal(t, LedgerTotals{Count: writers, AmountMinor: writers * 100}, totals)
}
