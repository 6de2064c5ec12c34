package cli

import (
	"github.com/fundsflow/fundsflow/internal/api"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboards read-only over HTTP with Prometheus metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := app.Registry
			if reg == nil {
				reg = prometheus.NewRegistry()
			}
			srv, err := api.New(api.Services{
				Trees:         app.Trees,
				Contributions: app.Contributions,
				Exports:       app.Exports,
				Anomalies:     app.Anomalies,
			}, reg, app.Log)
			if err != nil {
				return err
			}
			return srv.Serve(cmd.Context(), listen)
		},
	}

	def := app.Config.Listen
	if def == "" {
		def = ":8080"
	}
	cmd.Flags().StringVar(&listen, "listen", def, "Address to listen on")

	return cmd
}
