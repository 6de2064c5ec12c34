package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fundsflow/fundsflow/internal/cli/formatter"
	"github.com/fundsflow/fundsflow/internal/service"
	"github.com/spf13/cobra"
)

// timeNow names default export files; tests replace it.
var timeNow = time.Now

func newExportCmd(app *App, dashboard *dashboardValue) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dashboard's fund tree and history as JSON",
		Long: "Write the dashboard's fund tree, recent entries and totals as JSON.\n" +
			"Without --out the file is named fundsflow_history_YYYY-MM-DD.json in the\n" +
			"current directory. Use --out - to write to stdout.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := dashboard.Dashboard()
			if out == "-" {
				_, err := app.Exports.Export(cmd.Context(), d, cmd.OutOrStdout())
				return err
			}

			path := out
			if path == "" {
				path = service.ExportFileName(timeNow())
			}
			if dir := filepath.Dir(path); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("creating export directory: %w", err)
				}
			}
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			doc, err := app.Exports.Export(cmd.Context(), d, f)
			if cerr := f.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("closing export file: %w", cerr)
			}
			if err != nil {
				_ = os.Remove(path)
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Exported %d transactions (%s) to %s\n",
				formatter.StyleGreen.Render("✔"), doc.TotalTransactions, doc.TotalAmount, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file, or - for stdout")

	return cmd
}

func newImportCmd(app *App, dashboard *dashboardValue) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace a dashboard's fund tree from a JSON or YAML file",
		Long: "Replace a dashboard's fund tree from a JSON (.json) or YAML (.yaml, .yml)\n" +
			"file. Amounts are in paise. The whole file is validated before anything\n" +
			"is written; on error the stored tree is left as it was.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Trees.ImportFile(cmd.Context(), dashboard.Dashboard(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Imported %d nodes into the %s dashboard\n",
				formatter.StyleGreen.Render("✔"), res.NodeCount, res.Dashboard)
			return nil
		},
	}
}
