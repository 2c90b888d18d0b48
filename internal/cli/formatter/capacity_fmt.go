package formatter

import (
	"fmt"
	"strings"

	"github.com/ngimenez/opoplan/internal/domain"
)

// FormatCapacity renders a capacity assessment card: the buffer verdict up
// top, then the window and per-stream planned minutes as labeled lines.
func FormatCapacity(cap domain.PlanCapacity) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  buffer %s (%.0f%%)\n",
		BufferIndicator(cap.BufferStatus),
		FormatMinutes(abs(cap.BufferMin)),
		cap.BufferRatio*100))
	if cap.BufferMin < 0 {
		b.WriteString(StyleRed.Render("Planned workload exceeds availability.") + "\n")
	}
	b.WriteString("\n")

	writeCapacityLine(&b, "Days until exam", fmt.Sprintf("%d", cap.DaysUntilExam))
	writeCapacityLine(&b, "Planning weeks", fmt.Sprintf("%d of %d (2-week reserve)", cap.EffectivePlanningWeeks, cap.TotalWeeks))
	writeCapacityLine(&b, "Available", FormatMinutes(cap.AvailableEffectiveMin))
	writeCapacityLine(&b, "Theory planned", StreamColor(domain.StreamTheory).Render(FormatMinutes(cap.TheoryPlannedMin)))
	writeCapacityLine(&b, "Cases planned", StreamColor(domain.StreamCases).Render(FormatMinutes(cap.CasesPlannedMin)))
	writeCapacityLine(&b, "Programming planned", StreamColor(domain.StreamProgramming).Render(FormatMinutes(cap.ProgrammingPlannedMin)))
	writeCapacityLine(&b, "Total planned", Bold(FormatMinutes(cap.PlannedMin)))

	return RenderBox("Capacity", b.String())
}

// capacityLabelWidth fits the longest label, "Programming planned".
const capacityLabelWidth = 19

func writeCapacityLine(b *strings.Builder, label, value string) {
	b.WriteString(padCell(Dim(label), capacityLabelWidth))
	b.WriteString("  ")
	b.WriteString(value)
	b.WriteString("\n")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
