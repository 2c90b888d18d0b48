package formatter

import (
	"fmt"
	"strings"

	"github.com/ngimenez/opoplan/internal/calendar"
	"github.com/ngimenez/opoplan/internal/domain"
)

// FormatPlan renders a generated plan as a week-by-week schedule.
func FormatPlan(plan *domain.Plan) string {
	var b strings.Builder

	header := fmt.Sprintf("Study plan — %s, %s · exam on %s · %d units",
		plan.Meta.Region, plan.Meta.Stage, plan.Meta.ExamDate, plan.Meta.TotalUnits)
	b.WriteString(StyleHeader.Render(header) + "\n")

	if plan.Debug != nil {
		cap := plan.Debug.Capacity
		b.WriteString(fmt.Sprintf("%s planning weeks: %d · planned %s · available %s\n",
			BufferIndicator(cap.BufferStatus),
			cap.EffectivePlanningWeeks,
			FormatMinutes(cap.PlannedMin),
			FormatMinutes(cap.AvailableEffectiveMin)))
	}
	b.WriteString("\n")

	weekIndex := make(map[string]domain.WeekSummary, len(plan.Weeks))
	for _, ws := range plan.Weeks {
		weekIndex[ws.StartDate] = ws
	}

	currentWeek := ""
	for _, day := range plan.Days {
		if len(day.Blocks) == 0 {
			continue
		}

		if monday := mondayOfISO(day.Date); monday != currentWeek {
			currentWeek = monday
			ws := weekIndex[monday]
			b.WriteString(Bold(fmt.Sprintf("Week of %s", monday)))
			b.WriteString(Dim(fmt.Sprintf("  (%s planned)", FormatHours(ws.TotalHours))))
			b.WriteString("\n")
		}

		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			StyleFg.Render(WeekdayName(day.Date)),
			Dim(day.Date),
			Dim(fmt.Sprintf("· %s", FormatHours(day.Hours)))))

		for _, blk := range day.Blocks {
			unit := blk.Unit
			if unit == "" {
				unit = "—"
			}
			b.WriteString(fmt.Sprintf("    %s  %s %s\n",
				ActivityBadge(blk.Activity),
				StyleFg.Render(unit),
				Dim(FormatMinutes(blk.DurationMinutes))))
		}
	}

	if len(plan.Explanations) > 0 {
		b.WriteString("\n")
		for _, e := range plan.Explanations {
			b.WriteString(Dim("· "+e) + "\n")
		}
	}

	return b.String()
}

// weekSummaryHeaders is the fixed column set of the per-week phase table:
// the Monday anchor, total hours, then one column per block-carrying phase.
var weekSummaryHeaders = []string{"WEEK OF", "HOURS", "DEPTH", "EVAL/REVIEW", "PRACTICE"}

// FormatWeekSummaries renders the per-week phase distribution table.
func FormatWeekSummaries(plan *domain.Plan) string {
	rows := make([][]string, 0, len(plan.Weeks))
	for _, ws := range plan.Weeks {
		rows = append(rows, []string{
			Bold(ws.StartDate),
			FormatHours(ws.TotalHours),
			FormatMinutes(ws.PhaseMinutes[domain.PhaseDepth]),
			FormatMinutes(ws.PhaseMinutes[domain.PhaseEvalReview]),
			FormatMinutes(ws.PhaseMinutes[domain.PhasePractice]),
		})
	}
	return renderColumns(weekSummaryHeaders, rows)
}

func mondayOfISO(iso string) string {
	t, err := calendar.ParseISO(iso)
	if err != nil {
		return iso
	}
	return calendar.FormatISO(calendar.MondayOf(t))
}
