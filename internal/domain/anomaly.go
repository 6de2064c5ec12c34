package domain

import "fmt"

// Anomaly flags a node whose spending exceeds its allocation.
type Anomaly struct {
	NodeID       string   `json:"node_id"`
	NodeName     string   `json:"node_name"`
	ParentName   string   `json:"parent_name,omitempty"`
	SpentPercent float64  `json:"spent_percent"`
	OverBy       float64  `json:"over_by"`
	Severity     Severity `json:"severity"`
}

// HighSeverityOverBy is the overspend, in percentage points, at which an
// anomaly is reported as high severity.
const HighSeverityOverBy = 20.0

// Title renders a one-line overspend alert naming the node and its parent.
func (a Anomaly) Title() string {
	where := a.NodeName
	if a.ParentName != "" {
		where = fmt.Sprintf("%s — %s", a.NodeName, a.ParentName)
	}
	return fmt.Sprintf("Overspend: %s exceeded its allocation by %.0f%%", where, a.OverBy)
}
