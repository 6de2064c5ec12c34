package formatter

import (
	"fmt"
	"strings"

	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/fundsflow/fundsflow/internal/money"
)

const detailBarWidth = 20

// FormatNodeDetail renders one node with its breadcrumb, amounts, spent
// bar and metadata.
func FormatNodeDetail(n *domain.FundNode, path []*domain.FundNode) string {
	var lines []string
	if len(path) > 1 {
		lines = append(lines, Breadcrumb(path), "")
	}
	lines = append(lines,
		field("ID", n.ID),
		field("Type", TypeStyle(n.Type).Render(string(n.Type))),
		field("Spent", money.Format(n.Amount)+Dim(" ("+money.FormatShort(n.Amount)+")")),
	)
	if n.Allocated != nil {
		lines = append(lines,
			field("Allocated", money.Format(*n.Allocated)+Dim(" ("+money.FormatShort(*n.Allocated)+")")),
		)
	}
	if n.HasAllocation() {
		lines = append(lines, field("Used", RenderSpentBar(n.SpentPercentage(), detailBarWidth)))
	}
	lines = append(lines, field("Status", StatusIndicator(n.StatusOrDefault())))
	if md := n.Metadata; md != nil {
		if md.HospitalsCount > 0 {
			lines = append(lines, field("Hospitals", fmt.Sprintf("%d", md.HospitalsCount)))
		}
		if md.ProjectsCount > 0 {
			lines = append(lines, field("Projects", fmt.Sprintf("%d", md.ProjectsCount)))
		}
		if md.LastUpdated != "" {
			lines = append(lines, field("Updated", md.LastUpdated))
		}
	}
	if n.HasChildren() {
		lines = append(lines, field("Children", fmt.Sprintf("%d", len(n.Children))))
	}
	if n.IsOverspent() {
		lines = append(lines, "", StyleRed.Render(fmt.Sprintf("▲ Over allocation by %.1f%%", n.SpentPercentage()-100)))
	}
	return RenderBox(n.Name, strings.Join(lines, "\n"))
}

// FormatVerification renders the integrity details for a node: its id,
// its position in the tree and a content fingerprint.
func FormatVerification(n *domain.FundNode, path []*domain.FundNode, fingerprint string) string {
	ids := make([]string, len(path))
	for i, p := range path {
		ids[i] = p.ID
	}
	lines := []string{
		field("Node", n.Name),
		field("ID", n.ID),
		field("Path", strings.Join(ids, " / ")),
		field("Hash", fingerprint),
		"",
		StyleGreen.Render("✔ Record present in the stored hierarchy"),
	}
	return RenderBox("Verify", strings.Join(lines, "\n"))
}

func field(label, value string) string {
	return Dim(fmt.Sprintf("%-10s", label+":")) + " " + value
}
