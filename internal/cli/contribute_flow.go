package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/fundsflow/fundsflow/internal/service"
)

// contributionDoneMsg reports a finished donation or fee payment.
type contributionDoneMsg struct {
	res *service.ContributionResult
	err error
}

func contributeLabel(d domain.Dashboard) string {
	if d == domain.DashboardInstitution {
		return "pay fee"
	}
	return "donate"
}

// startContribution opens the fee form on the institution dashboard and
// the donation form, preselected on target, everywhere else.
func startContribution(state *SharedState, target string) tea.Cmd {
	contributions := state.App.Contributions

	if state.Dashboard == domain.DashboardInstitution {
		fee := &feeForm{}
		return pushView(newFormView("Pay fee", fee.build(), func() tea.Cmd {
			req, err := fee.request()
			if err != nil {
				return setError(err)
			}
			state.Busy = "Processing fee payment..."
			return awaitContribution(func(ctx context.Context) (*service.ContributionResult, error) {
				return contributions.PayFee(ctx, req)
			})
		}))
	}

	donation := &donationForm{target: target}
	form := donation.build(donationTargets(context.Background(), state.App))
	return pushView(newFormView("Donate", form, func() tea.Cmd {
		req, err := donation.request()
		if err != nil {
			return setError(err)
		}
		state.Busy = "Processing transaction..."
		return awaitContribution(func(ctx context.Context) (*service.ContributionResult, error) {
			return contributions.Donate(ctx, req)
		})
	}))
}

// awaitContribution runs the wallet round trip off the UI goroutine.
func awaitContribution(send func(context.Context) (*service.ContributionResult, error)) tea.Cmd {
	return func() tea.Msg {
		res, err := send(context.Background())
		return contributionDoneMsg{res: res, err: err}
	}
}
