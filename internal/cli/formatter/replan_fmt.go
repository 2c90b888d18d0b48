package formatter

import (
	"fmt"
	"strings"

	"github.com/ngimenez/opoplan/internal/contract"
)

// FormatReplanDelta summarizes how a feedback fold moved the state before
// the regenerated plan is printed.
func FormatReplanDelta(resp *contract.ReplanResponse) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(fmt.Sprintf("Replanned after %d feedback event(s)", resp.EventsApplied)) + "\n")

	if resp.RequiredDeltaMin != 0 {
		b.WriteString(fmt.Sprintf("  Required workload %s\n", signedMinutes(resp.RequiredDeltaMin)))
	}
	if resp.DoneDeltaMin != 0 {
		b.WriteString(fmt.Sprintf("  Completed work %s\n", signedMinutes(resp.DoneDeltaMin)))
	}

	b.WriteString(fmt.Sprintf("  Slack %s → %s (%s → %s)\n\n",
		FormatMinutes(abs(resp.SlackBefore.SlackMinutes)),
		FormatMinutes(abs(resp.SlackAfter.SlackMinutes)),
		BufferIndicator(resp.SlackBefore.Status),
		BufferIndicator(resp.SlackAfter.Status)))

	return b.String()
}

func signedMinutes(min int) string {
	if min >= 0 {
		return StyleYellow.Render("+" + FormatMinutes(min))
	}
	return StyleGreen.Render("-" + FormatMinutes(-min))
}
