package formatter

import (
	"fmt"
	"strings"

	"github.com/fundsflow/fundsflow/internal/domain"
)

func FormatAnomalies(anomalies []domain.Anomaly) string {
	var b strings.Builder
	b.WriteString(Header("Anomalies") + "\n")
	if len(anomalies) == 0 {
		b.WriteString(StyleGreen.Render("● No overspends detected.") + "\n")
		return b.String()
	}
	for _, a := range anomalies {
		b.WriteString(SeverityBadge(a.Severity) + " " + StyleFg.Render(a.Title()) + "\n")
		b.WriteString("    " + Dim(fmt.Sprintf("%s spent %.1f%% of its allocation", a.NodeID, a.SpentPercent)) + "\n")
	}
	return b.String()
}

func SeverityBadge(s domain.Severity) string {
	if s == domain.SeverityHigh {
		return StyleRed.Render("▲ HIGH  ")
	}
	return StyleYellow.Render("● MEDIUM")
}
