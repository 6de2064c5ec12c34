package cli

import (
	"fmt"

	"github.com/fundsflow/fundsflow/internal/cli/formatter"
	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/fundsflow/fundsflow/internal/fundtree"
	"github.com/spf13/cobra"
)

type treeOptions struct {
	dashboard domain.Dashboard
	search    string
	collapse  []string
	plain     bool
	zoom      int
}

func newTreeCmd(app *App, dashboard *dashboardValue) *cobra.Command {
	var opts treeOptions

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print a dashboard's fund-flow hierarchy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.dashboard = dashboard.Dashboard()
			return printTree(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "Keep only branches leading to names containing this text")
	cmd.Flags().StringSliceVar(&opts.collapse, "collapse", nil, "Node IDs to show collapsed (repeatable)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Plain text tree without colors")
	cmd.Flags().IntVar(&opts.zoom, "zoom", fundtree.NewZoom().Percent(), "Zoom percent (10-200); 50 and above shows node details")

	return cmd
}

func printTree(cmd *cobra.Command, app *App, opts treeOptions) error {
	res, err := app.Trees.Search(cmd.Context(), opts.dashboard, opts.search)
	if err != nil {
		return err
	}

	state := fundtree.NewExpandState()
	for _, id := range opts.collapse {
		state.SetExpanded(id, false)
	}

	out := cmd.OutOrStdout()
	if res.Fallback {
		fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("No nodes match %q; showing the full tree.", res.Query)))
	}
	if opts.plain {
		return formatter.WritePlainTree(out, res.Root, state)
	}

	fmt.Fprintln(out, formatter.Header(opts.dashboard.Label()+" fund flow"))
	fmt.Fprint(out, formatter.RenderFundTree(fundtree.Flatten(res.Root, state), formatter.TreeOptions{
		Cursor: -1,
		Zoom:   fundtree.ZoomPercent(opts.zoom),
	}))
	if res.Query != "" && !res.Fallback {
		fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("%d matching nodes", res.Matches)))
	}
	return nil
}
