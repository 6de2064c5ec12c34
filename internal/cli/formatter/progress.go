package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// Spent thresholds, in percent, at which the bar turns yellow and red.
const (
	spentWarnPct   = 80.0
	spentDangerPct = 100.0
)

// SpentStyleFor colors a spent percentage: green below 80%, yellow up to
// and including 100%, red above.
func SpentStyleFor(pct float64) func(...string) string {
	switch {
	case pct > spentDangerPct:
		return StyleRed.Render
	case pct >= spentWarnPct:
		return StyleYellow.Render
	default:
		return StyleGreen.Render
	}
}

// RenderSpentBar renders a bar like [████░░░░] 45%. The fill stops at the
// bar's width but the label keeps the real value, so an overspend reads
// [████████] 125%.
func RenderSpentBar(pct float64, width int) string {
	return fmt.Sprintf("[%s] %s", spentBlocks(pct, width, false), SpentStyleFor(pct)(fmt.Sprintf("%3.0f%%", pct)))
}

// RenderCompactBar renders just the blocks with no brackets or label.
// A dimmed bar is drawn without color.
func RenderCompactBar(pct float64, width int, dim bool) string {
	return spentBlocks(pct, width, dim)
}

func spentBlocks(pct float64, width int, dim bool) string {
	if width < 2 {
		width = 2
	}
	fill := pct / 100
	if fill < 0 {
		fill = 0
	}
	if fill > 1 {
		fill = 1
	}

	filled := int(fill*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	if dim {
		return bar
	}
	return SpentStyleFor(pct)(bar)
}
