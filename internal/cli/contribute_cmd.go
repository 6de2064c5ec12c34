package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/fundsflow/fundsflow/internal/cli/formatter"
	"github.com/fundsflow/fundsflow/internal/service"
	"github.com/spf13/cobra"
)

func newDonateCmd(app *App) *cobra.Command {
	var form donationForm

	cmd := &cobra.Command{
		Use:   "donate",
		Short: "Donate to the government fund through the wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if form.needsPrompt(app.interactive()) {
				f := form.build(donationTargets(cmd.Context(), app))
				if err := runForm(f); err != nil {
					return err
				}
			}

			// Scripts that omit --target donate to the general fund.
			if form.target == "" {
				form.target = generalFund
			}
			req := service.DonationRequest{Target: form.target}
			if form.amount != "" {
				var err error
				if req, err = form.request(); err != nil {
					return err
				}
			}

			res, err := withSpinner(cmd, app, "Processing transaction...", func() (*service.ContributionResult, error) {
				return app.Contributions.Donate(cmd.Context(), req)
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatContribution(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&form.amount, "amount", "", "Amount in rupees, e.g. 5000 or 1,25,000")
	cmd.Flags().StringVar(&form.target, "target", "", "Fund or node name to donate to")

	return cmd
}

func newFeeCmd(app *App) *cobra.Command {
	var form feeForm

	cmd := &cobra.Command{
		Use:   "fee",
		Short: "Pay a semester fee to the institution through the wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			missing := form.studentID == "" || form.semester == "" || form.amount == ""
			if missing && app.interactive() {
				if err := runForm(form.build()); err != nil {
					return err
				}
			}

			req := service.FeeRequest{
				StudentID:   form.studentID,
				StudentName: form.studentName,
				Semester:    form.semester,
			}
			if form.amount != "" {
				var err error
				if req, err = form.request(); err != nil {
					return err
				}
			}

			res, err := withSpinner(cmd, app, "Processing fee payment...", func() (*service.ContributionResult, error) {
				return app.Contributions.PayFee(cmd.Context(), req)
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatContribution(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&form.studentID, "student-id", "", "Student ID")
	cmd.Flags().StringVar(&form.studentName, "student-name", "", "Student name")
	cmd.Flags().StringVar(&form.semester, "semester", "", "Semester, 1-8 (\"5\", \"Sem 5\")")
	cmd.Flags().StringVar(&form.amount, "amount", "", "Amount in rupees")

	return cmd
}

func runForm(f *huh.Form) error {
	if err := f.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errCancelled
		}
		return err
	}
	return nil
}

// withSpinner shows a spinner on stderr while fn runs, but only when a
// person is watching.
func withSpinner[T any](cmd *cobra.Command, app *App, message string, fn func() (T, error)) (T, error) {
	if app.interactive() {
		stop := formatter.StartSpinner(cmd.ErrOrStderr(), message)
		defer stop()
	}
	return fn()
}
