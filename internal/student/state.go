// Package student derives and evolves per-student planning state. State
// values are never mutated in place: the feedback fold returns a new state.
package student

import (
	"time"

	"github.com/ngimenez/opoplan/internal/calendar"
	"github.com/ngimenez/opoplan/internal/domain"
)

const stateVersion = 1

// DeriveInitialState builds the pass-1 state for a planning request: one
// default-envelope ledger per unit, stream requirements from capacity, and
// default block-duration preferences.
func DeriveInitialState(inputs domain.FormInputs, cap domain.PlanCapacity, today time.Time) domain.StudentState {
	units := make([]domain.UnitLedger, cap.UnitsCount)
	for i := range units {
		units[i] = domain.NewUnitLedger(i + 1)
	}

	state := domain.StudentState{
		Meta: domain.StateMeta{
			Version:   stateVersion,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
			TodayISO:  calendar.FormatISO(today),
			ExamDate:  inputs.ExamDate,
		},
		Units: units,
		Global: domain.GlobalLedger{
			CasesRequired:       cap.CasesPlannedMin,
			ProgrammingRequired: cap.ProgrammingPlannedMin,
		},
		Preferences: domain.DefaultPreferences(),
	}
	state.Slack = ComputeSlack(&state, cap.AvailableEffectiveMin)
	return state
}

// ComputeSlack measures headroom between future planable capacity and the
// remaining required workload, collapsed into the shared status tiers.
func ComputeSlack(state *domain.StudentState, effectiveCapacityFuture int) domain.SlackInfo {
	required := state.TotalRequired() - state.TotalDone()
	if required < 0 {
		required = 0
	}

	slack := effectiveCapacityFuture - required
	ratio := 0.0
	if effectiveCapacityFuture > 0 {
		ratio = float64(slack) / float64(effectiveCapacityFuture)
	}

	return domain.SlackInfo{
		EffectiveCapacityFuture: effectiveCapacityFuture,
		RequiredMinutesFuture:   required,
		SlackMinutes:            slack,
		SlackRatio:              ratio,
		Status:                  slackStatus(ratio),
	}
}

func slackStatus(ratio float64) domain.BufferStatus {
	switch {
	case ratio >= 0.20:
		return domain.BufferGood
	case ratio >= 0.10:
		return domain.BufferEdge
	default:
		return domain.BufferWarning
	}
}
