package cli

import (
	"fmt"
	"io"

	"github.com/fundsflow/fundsflow/internal/cli/formatter"
	"github.com/fundsflow/fundsflow/internal/wallet"
	"github.com/spf13/cobra"
)

func newWalletCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Show the wallet connection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printWalletState(cmd.OutOrStdout(), app.Wallet.State())
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "connect",
		Short: "Request an account from the wallet provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Wallet.Connect(cmd.Context()); err != nil {
				return err
			}
			printWalletState(cmd.OutOrStdout(), app.Wallet.State())
			return nil
		},
	})

	return cmd
}

func printWalletState(w io.Writer, st wallet.State) {
	fmt.Fprintln(w, formatter.Header("Wallet"))
	if !st.Connected {
		fmt.Fprintln(w, formatter.StyleYellow.Render("○ Not connected"))
		if st.Err != "" {
			fmt.Fprintln(w, formatter.Dim("Last error: ")+st.Err)
		}
		return
	}
	fmt.Fprintln(w, formatter.StyleGreen.Render("● Connected"))
	fmt.Fprintln(w, formatter.Dim("Account: ")+st.Account)
}

// walletBadge is the one-line wallet status shown in the explorer header.
func walletBadge(st wallet.State) string {
	switch {
	case st.Loading:
		return formatter.StyleYellow.Render("◌ wallet busy")
	case st.Connected:
		return formatter.StyleGreen.Render("● " + shortAccount(st.Account))
	default:
		return formatter.Dim("○ wallet disconnected")
	}
}

// shortAccount renders 0x742d...f44e.
func shortAccount(a string) string {
	if len(a) <= 10 {
		return a
	}
	return a[:6] + "..." + a[len(a)-4:]
}
