package formatter

import (
	"fmt"
	"strings"

	"github.com/ngimenez/opoplan/internal/domain"
)

const ledgerProgressBarWidth = 10

// ledgerHeaders is the fixed column set of the per-unit ledger table, one
// column per theory activity plus overall progress.
var ledgerHeaders = []string{"UNIT", "STUDY", "REVIEW", "PODCAST", "CARDS", "QUIZ", "PROGRESS"}

// FormatState renders the per-unit ledger table plus the slack summary.
func FormatState(state *domain.StudentState) string {
	var b strings.Builder

	b.WriteString(renderLedgerTable(state.Units))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s  %s  %s\n",
		StreamColor(domain.StreamCases).Render("Cases"),
		ledgerCell(state.Global.CasesDone, state.Global.CasesRequired),
		RenderProgress(percent(state.Global.CasesDone, state.Global.CasesRequired), ledgerProgressBarWidth)))
	b.WriteString(fmt.Sprintf("%s  %s  %s\n",
		StreamColor(domain.StreamProgramming).Render("Programming"),
		ledgerCell(state.Global.ProgrammingDone, state.Global.ProgrammingRequired),
		RenderProgress(percent(state.Global.ProgrammingDone, state.Global.ProgrammingRequired), ledgerProgressBarWidth)))

	b.WriteString("\n")
	slack := state.Slack
	b.WriteString(fmt.Sprintf("Slack: %s  %s against %s required\n",
		BufferIndicator(slack.Status),
		FormatMinutes(abs(slack.SlackMinutes)),
		FormatMinutes(slack.RequiredMinutesFuture)))
	if slack.SlackMinutes < 0 {
		b.WriteString(StyleRed.Render("Remaining workload no longer fits the planable capacity.") + "\n")
	}

	return b.String()
}

// renderLedgerTable lays the unit ledgers out under the fixed header set.
// The unit column widens to the longest unit key; each minute column
// widens to its largest done/required pair.
func renderLedgerTable(units []domain.UnitLedger) string {
	cells := make([][]string, len(units))
	for i, u := range units {
		cells[i] = []string{
			Bold(u.Unit),
			ledgerCell(u.Done.StudyTheme, u.Required.StudyTheme),
			ledgerCell(u.Done.Review, u.Required.Review),
			ledgerCell(u.Done.Podcast, u.Required.Podcast),
			ledgerCell(u.Done.Flashcard, u.Required.Flashcard),
			ledgerCell(u.Done.Quiz, u.Required.Quiz),
			RenderProgress(percent(u.Done.Total(), u.Required.Total()), ledgerProgressBarWidth),
		}
	}
	return renderColumns(ledgerHeaders, cells)
}

func ledgerCell(done, required int) string {
	cell := fmt.Sprintf("%d/%d", done, required)
	if required > 0 && done >= required {
		return StyleGreen.Render(cell)
	}
	if done == 0 {
		return Dim(cell)
	}
	return StyleFg.Render(cell)
}

func percent(done, required int) float64 {
	if required <= 0 {
		return 0
	}
	return float64(done) / float64(required) * 100
}

// RenderProgress renders a fixed-width progress bar for a percentage.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	style := StyleGreen
	switch {
	case pct < 34:
		style = StyleRed
	case pct < 67:
		style = StyleYellow
	}
	return style.Render(bar) + Dim(fmt.Sprintf(" %3.0f%%", pct))
}
