package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table is a simple aligned table with a header separator line. Columns
// listed in RightAlign are padded on the left, which suits amounts.
type Table struct {
	Headers    []string
	Rows       [][]string
	RightAlign []int
}

const colGap = 2

// Render pads every column to its widest cell, measured by visible width
// so styled cells line up.
func (t Table) Render() string {
	cols := len(t.Headers)
	if cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	right := make(map[int]bool, len(t.RightAlign))
	for _, i := range t.RightAlign {
		right[i] = true
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(...string) string) {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", max(widths[i]-lipgloss.Width(cell), 0))
			if style != nil {
				cell = style(cell)
			}
			switch {
			case right[i]:
				b.WriteString(pad + cell)
			case i < cols-1:
				b.WriteString(cell + pad)
			default:
				b.WriteString(cell)
			}
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(t.Headers, StyleHeader.Render)
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
	for _, row := range t.Rows {
		writeRow(row, nil)
	}
	return b.String()
}
