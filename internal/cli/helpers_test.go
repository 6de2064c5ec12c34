package cli

import (
	"bytes"
	"testing"

	"github.com/fundsflow/fundsflow/internal/config"
	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/fundsflow/fundsflow/internal/repository"
	"github.com/fundsflow/fundsflow/internal/service"
	"github.com/fundsflow/fundsflow/internal/testutil"
	"github.com/fundsflow/fundsflow/internal/wallet"
	"github.com/prometheus/client_golang/prometheus"
)

const testAccount = "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"

// testApp wires a full App backed by an in-memory DB and an instant mock
// wallet. Interactive prompts are disabled.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	treeRepo := repository.NewSQLiteFundTreeRepo(database)
	ledgerRepo := repository.NewSQLiteLedgerRepo(database)

	provider := wallet.NewMockProvider(wallet.WithAccounts(testAccount), wallet.WithDelay(0))
	session := wallet.NewSession(provider, nil)

	trees := service.NewTreeService(treeRepo, uow)
	return &App{
		Trees:         trees,
		Contributions: service.NewContributionService(ledgerRepo, uow, session),
		Exports:       service.NewExportService(trees, ledgerRepo),
		Anomalies:     service.NewAnomalyService(trees),
		Wallet:        session,
		Config:        config.Config{Dashboard: domain.DashboardGovernment},
		Registry:      prometheus.NewRegistry(),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}
