package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fundsflow/fundsflow/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)

	// StyleCursor highlights the selected row in the explorer.
	StyleCursor = lipgloss.NewStyle().Foreground(ColorFg).Background(lipgloss.Color("#3c3836")).Bold(true)
)

// StatusStyle maps a node status to its color: healthy green, warning
// yellow, danger red.
func StatusStyle(status domain.NodeStatus) lipgloss.Style {
	switch status {
	case domain.StatusDanger:
		return StyleRed
	case domain.StatusWarning:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// StatusIndicator returns a colored dot followed by the status name.
func StatusIndicator(status domain.NodeStatus) string {
	if status == "" {
		status = domain.StatusHealthy
	}
	return StatusStyle(status).Render("● " + strings.ToUpper(string(status)))
}

// TypeStyle gives higher tiers more visual weight.
func TypeStyle(t domain.NodeType) lipgloss.Style {
	switch t {
	case domain.NodeNational:
		return StyleHeader
	case domain.NodeState:
		return StyleBold
	case domain.NodeHospital:
		return StyleBlue
	default:
		return StyleFg
	}
}

// TypeIcon is a short glyph per node tier.
func TypeIcon(t domain.NodeType) string {
	switch t {
	case domain.NodeNational:
		return "◆"
	case domain.NodeState:
		return "◇"
	case domain.NodeHospital:
		return "■"
	default:
		return "·"
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
