package cli

import (
	"fmt"

	"github.com/fundsflow/fundsflow/internal/cli/formatter"
	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/spf13/cobra"
)

func newLedgerCmd(app *App, dashboard *dashboardValue) *cobra.Command {
	var kind, search string

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "List recent donations, fee payments or transfers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := dashboard.Dashboard()
			k := domain.LedgerKind(kind)
			if k == "" {
				k = d.ContributionKind()
			}
			entries, err := app.Contributions.Recent(cmd.Context(), d, k, search)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLedger(k, entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "donation, fee_payment or transfer (default: the dashboard's contribution kind)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by name, student, reference or amount")

	return cmd
}

func newAnomaliesCmd(app *App, dashboard *dashboardValue) *cobra.Command {
	return &cobra.Command{
		Use:   "anomalies",
		Short: "List nodes spending more than their allocation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			anomalies, err := app.Anomalies.List(cmd.Context(), dashboard.Dashboard())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAnomalies(anomalies))
			return nil
		},
	}
}
