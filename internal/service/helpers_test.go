package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/fundsflow/fundsflow/internal/db"
	"github.com/fundsflow/fundsflow/internal/repository"
	"github.com/fundsflow/fundsflow/internal/testutil"
	"github.com/fundsflow/fundsflow/internal/wallet"
)

const testAccount = "0xTestAccount"

type testEnv struct {
	db       *sql.DB
	uow      db.UnitOfWork
	trees    *repository.SQLiteFundTreeRepo
	ledger   *repository.SQLiteLedgerRepo
	provider *wallet.MockProvider
	session  *wallet.Session
	events   *recordingObserver
}

func newTestEnv(t *testing.T, accounts ...string) *testEnv {
	t.Helper()
	if accounts == nil {
		accounts = []string{testAccount}
	}
	database := testutil.NewTestDB(t)
	provider := wallet.NewMockProvider(wallet.WithAccounts(accounts...), wallet.WithDelay(0))
	return &testEnv{
		db:       database,
		uow:      testutil.NewTestUoW(database),
		trees:    repository.NewSQLiteFundTreeRepo(database),
		ledger:   repository.NewSQLiteLedgerRepo(database),
		provider: provider,
		session:  wallet.NewSession(provider, nil),
		events:   &recordingObserver{},
	}
}

func (e *testEnv) treeService() TreeService {
	return NewTreeService(e.trees, e.uow, e.events)
}

// contributionService returns the concrete service with a clock that
// advances one second per call, so refs and ordering are deterministic.
func (e *testEnv) contributionService() *contributionService {
	svc := NewContributionService(e.ledger, e.uow, e.session, e.events).(*contributionService)
	clock := time.Date(2025, 9, 13, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return svc
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Name
	}
	return out
}

func (r *recordingObserver) last() UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}
