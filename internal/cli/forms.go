package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/fundsflow/fundsflow/internal/cli/formatter"
	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/fundsflow/fundsflow/internal/money"
	"github.com/fundsflow/fundsflow/internal/service"
	"go.uber.org/zap"
)

// generalFund is the donation target that is not tied to a node.
const generalFund = "General Fund"

// fundsflowHuhTheme returns a huh theme matching the formatter palette.
func fundsflowHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateAmount(s string) error {
	_, err := money.ParseMajor(s)
	return err
}

func validateRequired(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

func amountInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("5000").
		Value(value).
		Validate(validateAmount)
}

// donationTargets lists the general fund followed by every state and
// hospital in the government tree, in tree order.
func donationTargets(ctx context.Context, app *App) []huh.Option[string] {
	options := []huh.Option[string]{huh.NewOption(generalFund, generalFund)}
	root, err := app.Trees.Load(ctx, domain.DashboardGovernment)
	if err != nil {
		app.logger().Warn("loading donation targets", zap.Error(err))
		return options
	}
	domain.Walk(root, func(n, _ *domain.FundNode, _ int) bool {
		if n.Type == domain.NodeState || n.Type == domain.NodeHospital {
			options = append(options, huh.NewOption(n.Name, n.Name))
		}
		return true
	})
	return options
}

// donationForm collects the amount and target. The amount is kept as the
// raw input and parsed by request.
type donationForm struct {
	amount string
	target string
}

// needsPrompt reports whether the form must be shown. On a terminal a
// missing target is chosen in the form rather than defaulted.
func (f *donationForm) needsPrompt(interactive bool) bool {
	return interactive && (f.amount == "" || f.target == "")
}

func (f *donationForm) build(targets []huh.Option[string]) *huh.Form {
	if f.target == "" {
		f.target = generalFund
	}
	return huh.NewForm(
		huh.NewGroup(
			amountInput("Donation amount (₹)", &f.amount),
			huh.NewSelect[string]().
				Title("Donate to").
				Options(targets...).
				Value(&f.target),
		),
	).WithTheme(fundsflowHuhTheme()).WithShowHelp(false)
}

func (f *donationForm) request() (service.DonationRequest, error) {
	amount, err := money.ParseMajor(f.amount)
	if err != nil {
		return service.DonationRequest{}, err
	}
	return service.DonationRequest{AmountMinor: amount, Target: f.target}, nil
}

type feeForm struct {
	studentID   string
	studentName string
	semester    string
	amount      string
}

func (f *feeForm) build() *huh.Form {
	semesters := make([]huh.Option[string], 0, domain.SemesterCount)
	for _, s := range domain.Semesters() {
		semesters = append(semesters, huh.NewOption(s, s))
	}
	if s, err := domain.NormalizeSemester(f.semester); err == nil {
		f.semester = s
	} else {
		f.semester = domain.Semesters()[0]
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Student ID").
				Placeholder("STU2025001").
				Value(&f.studentID).
				Validate(validateRequired("student id")),
			huh.NewInput().
				Title("Student name (optional)").
				Value(&f.studentName),
			huh.NewSelect[string]().
				Title("Semester").
				Options(semesters...).
				Value(&f.semester),
			amountInput("Fee amount (₹)", &f.amount),
		),
	).WithTheme(fundsflowHuhTheme()).WithShowHelp(false)
}

func (f *feeForm) request() (service.FeeRequest, error) {
	amount, err := money.ParseMajor(f.amount)
	if err != nil {
		return service.FeeRequest{}, err
	}
	return service.FeeRequest{
		StudentID:   f.studentID,
		StudentName: f.studentName,
		Semester:    f.semester,
		AmountMinor: amount,
	}, nil
}
