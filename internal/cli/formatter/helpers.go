package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fundsflow/fundsflow/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Breadcrumb joins node names root-first, e.g. "National › Karnataka".
// The last element is highlighted.
func Breadcrumb(path []*domain.FundNode) string {
	if len(path) == 0 {
		return ""
	}
	parts := make([]string, len(path))
	for i, n := range path {
		if i == len(path)-1 {
			parts[i] = StyleBold.Render(n.Name)
			continue
		}
		parts[i] = Dim(n.Name)
	}
	return strings.Join(parts, Dim(" › "))
}

// TruncHash shortens a transaction hash to its first 10 characters.
func TruncHash(hash string) string {
	if len(hash) > 10 {
		return StyleDim.Render(hash[:10] + "...")
	}
	return StyleDim.Render(hash)
}

// Placeholder renders empty values as a dimmed dash.
func Placeholder(s string) string {
	if s == "" {
		return StyleDim.Render("--")
	}
	return s
}
