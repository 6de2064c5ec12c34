package cli

import (
	"errors"

	"github.com/fundsflow/fundsflow/internal/config"
	"github.com/fundsflow/fundsflow/internal/service"
	"github.com/fundsflow/fundsflow/internal/wallet"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds references to the services and collaborators CLI commands use.
type App struct {
	Trees         service.TreeService
	Contributions service.ContributionService
	Exports       service.ExportService
	Anomalies     service.AnomalyService
	Wallet        *wallet.Session

	Config   config.Config
	Log      *zap.Logger
	Registry *prometheus.Registry

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *zap.Logger {
	if a.Log == nil {
		return zap.NewNop()
	}
	return a.Log
}

// errCancelled is returned when the user aborts an interactive form.
var errCancelled = errors.New("cancelled")

// NewRootCmd creates the top-level "fundsflow" command and registers all
// subcommands against the provided App. Run without a subcommand in a
// terminal it opens the explorer; otherwise it prints the tree.
func NewRootCmd(app *App) *cobra.Command {
	dashboard := newDashboardValue(app.Config.Dashboard)

	root := &cobra.Command{
		Use:           "fundsflow",
		Short:         "Explore and fund government and institution fund flows",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runExplorer(cmd.Context(), app, dashboard.Dashboard())
			}
			return printTree(cmd, app, treeOptions{dashboard: dashboard.Dashboard()})
		},
	}
	root.PersistentFlags().VarP(dashboard, "dashboard", "d", "Dashboard: government or institution")

	root.AddCommand(
		newTreeCmd(app, dashboard),
		newDonateCmd(app),
		newFeeCmd(app),
		newLedgerCmd(app, dashboard),
		newAnomaliesCmd(app, dashboard),
		newExportCmd(app, dashboard),
		newImportCmd(app, dashboard),
		newWalletCmd(app),
		newServeCmd(app),
	)
	return root
}
