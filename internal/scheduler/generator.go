package scheduler

import (
	"time"

	"github.com/ngimenez/opoplan/internal/calendar"
	"github.com/ngimenez/opoplan/internal/domain"
	"github.com/ngimenez/opoplan/internal/student"
)

// streamTotals accumulates scheduled minutes per stream across the plan.
type streamTotals struct {
	theory      int
	cases       int
	programming int
}

func (t streamTotals) total() int {
	return t.theory + t.cases + t.programming
}

// GeneratePlan derives the initial student state for inputs and generates
// the plan for it. Today is the local calendar day planning starts on.
func GeneratePlan(inputs domain.FormInputs, today time.Time) domain.Plan {
	cap := CalculateCapacity(inputs, today)
	state := student.DeriveInitialState(inputs, cap, today)
	return GeneratePlanFromState(inputs, &state, today)
}

// GeneratePlanFromState runs the day builder against a student state. For a
// fixed (inputs, state, today) the result is identical across calls except
// Meta.GeneratedAt; feedback changes plans only by changing the state.
func GeneratePlanFromState(inputs domain.FormInputs, state *domain.StudentState, today time.Time) domain.Plan {
	cap := CalculateCapacity(inputs, today)
	budget := NewGlobalBudget(state, cap)

	avail := make([]int, cap.DaysUntilExam)
	for d := range avail {
		avail[d] = DayAvailabilityMin(inputs, calendar.AddDays(today, d))
	}

	wk := newWeekTracker(cap.EffectivePlanningWeeks)
	totals := &streamTotals{}
	days := make([]domain.DayPlan, 0, cap.DaysUntilExam)

	for d := 0; d < cap.DaysUntilExam; d++ {
		week := d/7 + 1
		wk.advanceTo(week, budget)

		date := calendar.AddDays(today, d)
		day := domain.DayPlan{
			Date:    calendar.FormatISO(date),
			Weekday: calendar.SundayWeekday(date),
			Blocks:  []domain.StudyBlock{},
		}

		if week <= cap.EffectivePlanningWeeks && avail[d] >= domain.MinBlockDuration {
			weekFutureMin := 0
			for e := d + 1; e < week*7; e++ {
				weekFutureMin += avail[e]
			}
			buildDay(&day, budget, wk, totals, state.Preferences, dayParams{
				week:          week,
				availMin:      avail[d],
				weekFutureMin: weekFutureMin,
			})
		}

		minutes := 0
		for _, b := range day.Blocks {
			minutes += b.DurationMinutes
		}
		day.Hours = float64(minutes) / 60

		days = append(days, day)
	}
	wk.finish(budget)

	return domain.Plan{
		Meta: domain.PlanMeta{
			GeneratedAt: time.Now(),
			TodayISO:    calendar.FormatISO(today),
			ExamDate:    inputs.ExamDate,
			Region:      inputs.Region,
			Stage:       inputs.Stage,
			TotalUnits:  cap.UnitsCount,
		},
		Phases:       phaseDefinitions(),
		Days:         days,
		Weeks:        weekSummaries(days),
		Explanations: explanations(cap),
		Debug: &domain.PlanDebug{
			Capacity:                cap,
			TheoryScheduledMin:      totals.theory,
			CasesScheduledMin:       totals.cases,
			ProgrammingScheduledMin: totals.programming,
			TotalScheduledMin:       totals.total(),
			WeeklyActuals:           wk.actuals,
			CasesStarvedWeeks:       wk.casesStarvedWeeks,
			ProgrammingStarvedWeeks: wk.programmingStarvedWeeks,
		},
	}
}

type dayParams struct {
	week          int
	availMin      int
	weekFutureMin int
}

// buildDay drains one day's available minutes into blocks. The main drain
// emits preference-sized blocks while a full hour remains, a tail block
// absorbs [15, 60) leftover minutes, and days under an hour get a single
// fallback block.
func buildDay(
	day *domain.DayPlan,
	budget *GlobalBudget,
	wk *weekTracker,
	totals *streamTotals,
	prefs domain.Preferences,
	p dayParams,
) {
	remaining := p.availMin
	ctx := &DayContext{
		Week:                   p.week,
		WeekTheoryMin:          wk.theoryMin,
		WeekCasesMin:           wk.casesMin,
		WeekProgrammingMin:     wk.programmingMin,
		WeekRemainingMin:       p.weekFutureMin + remaining,
		LastWeekCasesMin:       wk.lastWeekCasesMin,
		LastWeekProgrammingMin: wk.lastWeekProgrammingMin,
		AvailableTodayMin:      p.availMin,
	}

	// blockDuration trims a wanted duration so STUDY_THEME never crosses
	// the daily new-content cap.
	blockDuration := func(pick *Pick, want int) int {
		if pick.Activity == domain.ActivityStudyTheme {
			capLeft := DailyStudyThemeCap(ctx.AvailableTodayMin) - ctx.StudyThemeTodayMin
			if want > capLeft {
				want = capLeft
			}
		}
		return want
	}

	commit := func(pick *Pick, dur int) {
		unit := resolveTheoryUnit(pick, ctx, budget)
		block := domain.StudyBlock{
			ID:              domain.BlockID(day.Date, len(day.Blocks), pick.Activity, unit),
			Activity:        pick.Activity,
			Unit:            unit,
			DurationMinutes: dur,
			Phase:           domain.PhaseOf(pick.Activity),
			Type:            domain.TypeOf(pick.Activity),
			Format:          domain.FormatOf(pick.Activity),
		}
		day.Blocks = append(day.Blocks, block)

		stream := domain.StreamOf(pick.Activity)
		if stream == domain.StreamTheory {
			budget.Commit(pick.Activity, unit, dur)
			if pick.Activity == domain.ActivityStudyTheme {
				ctx.StudyThemeTodayMin += dur
				if ctx.TodayUnit == "" {
					ctx.TodayUnit = unit
				}
			}
		} else {
			budget.Commit(pick.Activity, "", dur)
		}

		wk.add(stream, dur)
		switch stream {
		case domain.StreamTheory:
			ctx.WeekTheoryMin += dur
			totals.theory += dur
		case domain.StreamCases:
			ctx.WeekCasesMin += dur
			totals.cases += dur
		case domain.StreamProgramming:
			ctx.WeekProgrammingMin += dur
			totals.programming += dur
		}
		ctx.WeekRemainingMin -= dur
		remaining -= dur
	}

	// Short day: a single block takes everything below the full-hour drain.
	if p.availMin < domain.MaxBlockDuration {
		if pick := budget.Next(ctx); pick != nil {
			commit(pick, blockDuration(pick, remaining))
		}
		return
	}

	for remaining >= domain.MaxBlockDuration {
		pick := budget.Next(ctx)
		if pick == nil {
			break
		}
		dur := domain.MaxBlockDuration
		if pref := clampedPreference(prefs, pick.Activity); pref < dur {
			dur = pref
		}
		commit(pick, blockDuration(pick, dur))
	}

	if remaining >= domain.MinBlockDuration {
		if pick := budget.Next(ctx); pick != nil {
			commit(pick, blockDuration(pick, remaining))
		}
	}
}

// clampedPreference bounds an activity's target duration into the block
// size limits the day builder enforces.
func clampedPreference(prefs domain.Preferences, a domain.Activity) int {
	v := prefs.Target(a)
	if v < domain.MinBlockDuration {
		return domain.MinBlockDuration
	}
	if v > domain.MaxBlockDuration {
		return domain.MaxBlockDuration
	}
	return v
}

// resolveTheoryUnit attributes a theory pick to a unit: the allocator's
// choice, else the interleaving override, else today's locked unit, else
// the first unit with work remaining. Cases carry no unit; programming is
// attributed to its fixed label.
func resolveTheoryUnit(pick *Pick, ctx *DayContext, budget *GlobalBudget) string {
	switch domain.StreamOf(pick.Activity) {
	case domain.StreamCases:
		return ""
	case domain.StreamProgramming:
		return domain.ProgrammingUnitLabel
	}

	if pick.Unit != "" {
		return pick.Unit
	}
	if ctx.TheoryUnitOverride != "" {
		return ctx.TheoryUnitOverride
	}
	if ctx.TodayUnit != "" {
		return ctx.TodayUnit
	}
	for i := range budget.Units {
		if budget.Units[i].TotalRemaining > 0 {
			return budget.Units[i].Unit
		}
	}
	return ""
}

func phaseDefinitions() []domain.PhaseDefinition {
	return []domain.PhaseDefinition{
		{Phase: domain.PhaseContext, Title: "Context", Description: "Orientation: what the exam asks for and how the plan is organized."},
		{Phase: domain.PhaseDepth, Title: "Deep study", Description: "First-pass study of each unit plus audio reinforcement."},
		{Phase: domain.PhaseEvalReview, Title: "Evaluation and review", Description: "Flashcards, quizzes and review passes over studied units."},
		{Phase: domain.PhasePractice, Title: "Applied practice", Description: "Case work, mock exams and the programming project."},
	}
}

func explanations(cap domain.PlanCapacity) []string {
	out := []string{
		"The first two weeks are theory only; cases and programming enter from week 3 based on each stream's remaining share.",
		"From week 3, every planning week aims for at least one hour per active stream; shortfalls are forced before the week closes.",
		"The last two weeks before the exam are kept free of new blocks as a final-review reserve.",
	}
	switch cap.BufferStatus {
	case domain.BufferGood:
		out = append(out, "Your availability leaves a comfortable margin over the planned workload.")
	case domain.BufferEdge:
		out = append(out, "Your availability barely covers the planned workload; missed days will be hard to absorb.")
	default:
		out = append(out, "The planned workload exceeds your availability; the schedule covers as much as it can.")
	}
	return out
}

func weekSummaries(days []domain.DayPlan) []domain.WeekSummary {
	var order []string
	byMonday := make(map[string]*domain.WeekSummary)

	for _, day := range days {
		date, err := calendar.ParseISO(day.Date)
		if err != nil {
			continue
		}
		monday := calendar.FormatISO(calendar.MondayOf(date))

		ws, ok := byMonday[monday]
		if !ok {
			ws = &domain.WeekSummary{StartDate: monday, PhaseMinutes: make(map[domain.Phase]int)}
			byMonday[monday] = ws
			order = append(order, monday)
		}
		ws.TotalHours += day.Hours
		for _, b := range day.Blocks {
			ws.PhaseMinutes[b.Phase] += b.DurationMinutes
		}
	}

	out := make([]domain.WeekSummary, 0, len(order))
	for _, monday := range order {
		out = append(out, *byMonday[monday])
	}
	return out
}
