package scheduler

import "github.com/ngimenez/opoplan/internal/domain"

// weekTracker accumulates per-stream minutes for the week in progress and
// archives completed planning weeks into weekly actuals. Reserve weeks past
// the planning window are never archived.
type weekTracker struct {
	week          int // 1-based week currently accumulating
	planningWeeks int

	theoryMin      int
	casesMin       int
	programmingMin int

	lastWeekCasesMin       int
	lastWeekProgrammingMin int

	actuals                 []domain.WeeklyActual
	casesStarvedWeeks       int
	programmingStarvedWeeks int
}

func newWeekTracker(planningWeeks int) *weekTracker {
	return &weekTracker{week: 1, planningWeeks: planningWeeks}
}

// add records committed minutes against the current week.
func (w *weekTracker) add(stream domain.Stream, minutes int) {
	switch stream {
	case domain.StreamTheory:
		w.theoryMin += minutes
	case domain.StreamCases:
		w.casesMin += minutes
	case domain.StreamProgramming:
		w.programmingMin += minutes
	}
}

// advanceTo archives every completed week up to (but not including) week
// and resets the running counters.
func (w *weekTracker) advanceTo(week int, b *GlobalBudget) {
	for w.week < week {
		w.archive(b)
		w.lastWeekCasesMin = w.casesMin
		w.lastWeekProgrammingMin = w.programmingMin
		w.theoryMin, w.casesMin, w.programmingMin = 0, 0, 0
		w.week++
	}
}

// finish archives the week still accumulating when the day loop ends.
func (w *weekTracker) finish(b *GlobalBudget) {
	w.archive(b)
}

func (w *weekTracker) archive(b *GlobalBudget) {
	if w.week > w.planningWeeks {
		return
	}

	var missing []domain.Stream
	if w.casesMin < domain.WeeklyMinimumMinutes && b.CasesRemaining > 0 {
		missing = append(missing, domain.StreamCases)
	}
	if w.programmingMin < domain.WeeklyMinimumMinutes && b.ProgrammingRemaining > 0 {
		missing = append(missing, domain.StreamProgramming)
	}
	if w.theoryMin < domain.WeeklyMinimumMinutes && b.TheoryRemaining > 0 {
		missing = append(missing, domain.StreamTheory)
	}

	w.actuals = append(w.actuals, domain.WeeklyActual{
		Week:           w.week,
		TheoryMin:      w.theoryMin,
		CasesMin:       w.casesMin,
		ProgrammingMin: w.programmingMin,
		MissingStreams: missing,
	})

	if w.week > 2 {
		if w.casesMin == 0 && b.CasesRemaining > 0 {
			w.casesStarvedWeeks++
		}
		if w.programmingMin == 0 && b.ProgrammingRemaining > 0 {
			w.programmingStarvedWeeks++
		}
	}
}
