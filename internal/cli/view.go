package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the explorer.
type ViewID int

const (
	ViewExplorer ViewID = iota
	ViewDetail
	ViewLedger
	ViewForm
)

// View is the interface that all explorer views implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// inputCapturer is implemented by views that need every key, including
// the global ones, while they are editing text.
type inputCapturer interface {
	CapturesInput() bool
}

func viewCapturesInput(v View) bool {
	c, ok := v.(inputCapturer)
	return ok && c.CapturesInput()
}
