package fundtree

import "github.com/fundsflow/fundsflow/internal/domain"

// Overspends lists every node spending more than its allocation, in
// pre-order. Status metadata is ignored; only the numbers count.
func Overspends(root *domain.FundNode) []domain.Anomaly {
	var out []domain.Anomaly
	domain.Walk(root, func(n, parent *domain.FundNode, _ int) bool {
		if !n.IsOverspent() {
			return true
		}
		pct := n.SpentPercentage()
		a := domain.Anomaly{
			NodeID:       n.ID,
			NodeName:     n.Name,
			SpentPercent: pct,
			OverBy:       pct - 100,
			Severity:     domain.SeverityMedium,
		}
		if parent != nil {
			a.ParentName = parent.Name
		}
		if a.OverBy >= domain.HighSeverityOverBy {
			a.Severity = domain.SeverityHigh
		}
		out = append(out, a)
		return true
	})
	return out
}
