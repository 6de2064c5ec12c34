package cli

import "github.com/fundsflow/fundsflow/internal/domain"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Dashboard is the tree the explorer shows.
	Dashboard domain.Dashboard

	// Busy is set while a wallet transaction is in flight.
	Busy string

	Width  int
	Height int
}

// OtherDashboard returns the dashboard tab switches to.
func (s *SharedState) OtherDashboard() domain.Dashboard {
	if s.Dashboard == domain.DashboardInstitution {
		return domain.DashboardGovernment
	}
	return domain.DashboardInstitution
}

// ContentHeight returns the height left for view content after the
// header (2 lines) and the status bar (3 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
