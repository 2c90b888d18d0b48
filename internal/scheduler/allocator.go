package scheduler

import (
	"math"

	"github.com/ngimenez/opoplan/internal/domain"
)

// DayContext carries the per-day and per-week state the allocator selects
// against. The day builder mutates it as blocks are committed; the
// allocator itself only writes TheoryUnitOverride.
type DayContext struct {
	Week int // 1-based

	// Minutes scheduled this week so far, per stream.
	WeekTheoryMin      int
	WeekCasesMin       int
	WeekProgrammingMin int

	// Availability still open in the current week, including the rest of
	// today. Drives end-of-week forcing.
	WeekRemainingMin int

	LastWeekCasesMin       int
	LastWeekProgrammingMin int

	// STUDY_THEME minutes already placed today, and the unit locked by the
	// day's first STUDY_THEME block. Empty until locked.
	StudyThemeTodayMin int
	TodayUnit          string

	AvailableTodayMin int

	// TheoryUnitOverride redirects attribution when the allocator
	// interleaves a secondary activity onto a non-today unit.
	TheoryUnitOverride string
}

// Pick is the allocator's answer: the next activity and, for theory, the
// unit it should be attributed to.
type Pick struct {
	Activity domain.Activity
	Unit     string
}

// Next selects the next activity for a partially filled day, or nil when
// nothing can be scheduled. Weeks 1 and 2 are theory-only; from week 3 the
// stream is chosen by remaining ratio with weekly smoothing on top.
func (b *GlobalBudget) Next(ctx *DayContext) *Pick {
	ctx.TheoryUnitOverride = ""

	if ctx.Week <= 2 {
		return b.pickTheory(ctx)
	}

	switch b.selectStream(ctx) {
	case domain.StreamCases:
		return b.pickCases()
	case domain.StreamProgramming:
		return &Pick{Activity: domain.ActivityProgramming}
	case domain.StreamTheory:
		return b.pickTheory(ctx)
	default:
		return nil
	}
}

// selectStream wraps remaining-ratio selection (stage A) with the weekly
// smoothing pass (stage A'). Returns "" when every stream is drained.
func (b *GlobalBudget) selectStream(ctx *DayContext) domain.Stream {
	if b.TheoryRemaining == 0 && b.CasesRemaining == 0 && b.ProgrammingRemaining == 0 {
		return ""
	}

	if forced, ok := b.smoothWeekly(ctx); ok {
		return forced
	}
	return b.streamByRemainingRatio(ctx)
}

// smoothWeekly enforces the per-stream weekly floor. A stream is missing
// when it sits under WEEKLY_MINIMUM_MINUTES with budget remaining. Near the
// end of the week any missing stream is forced outright; earlier, a missing
// stream is forced only while it is also the least-scheduled one.
func (b *GlobalBudget) smoothWeekly(ctx *DayContext) (domain.Stream, bool) {
	missing := b.missingStreams(ctx)
	if len(missing) == 0 {
		return "", false
	}

	if ctx.WeekRemainingMin < 2*domain.WeeklyMinimumMinutes {
		return missing[0], true
	}

	least := leastScheduled(ctx)
	for _, s := range missing {
		if s == least {
			return s, true
		}
	}
	return "", false
}

// missingStreams returns below-floor streams with remaining budget, in
// forcing order: cases, programming, theory.
func (b *GlobalBudget) missingStreams(ctx *DayContext) []domain.Stream {
	var out []domain.Stream
	if ctx.WeekCasesMin < domain.WeeklyMinimumMinutes && b.CasesRemaining > 0 {
		out = append(out, domain.StreamCases)
	}
	if ctx.WeekProgrammingMin < domain.WeeklyMinimumMinutes && b.ProgrammingRemaining > 0 {
		out = append(out, domain.StreamProgramming)
	}
	if ctx.WeekTheoryMin < domain.WeeklyMinimumMinutes && b.TheoryRemaining > 0 {
		out = append(out, domain.StreamTheory)
	}
	return out
}

// leastScheduled picks this week's least-served stream, ties resolved in
// the order cases, programming, theory.
func leastScheduled(ctx *DayContext) domain.Stream {
	least := domain.StreamCases
	min := ctx.WeekCasesMin
	if ctx.WeekProgrammingMin < min {
		least = domain.StreamProgramming
		min = ctx.WeekProgrammingMin
	}
	if ctx.WeekTheoryMin < min {
		least = domain.StreamTheory
	}
	return least
}

// streamByRemainingRatio is stage A: guardrail any stream that got nothing
// last week, then take the greatest remaining ratio. Ties prefer theory,
// then cases, then programming.
func (b *GlobalBudget) streamByRemainingRatio(ctx *DayContext) domain.Stream {
	if ctx.LastWeekCasesMin == 0 && b.CasesRemaining > 0 {
		return domain.StreamCases
	}
	if ctx.LastWeekProgrammingMin == 0 && b.ProgrammingRemaining > 0 {
		return domain.StreamProgramming
	}

	tr := remainingRatio(b.TheoryRemaining, b.TheoryPlanned)
	cr := remainingRatio(b.CasesRemaining, b.CasesPlanned)
	pr := remainingRatio(b.ProgrammingRemaining, b.ProgrammingPlanned)

	switch {
	case tr >= cr && tr >= pr && b.TheoryRemaining > 0:
		return domain.StreamTheory
	case cr >= pr && b.CasesRemaining > 0:
		return domain.StreamCases
	case b.ProgrammingRemaining > 0:
		return domain.StreamProgramming
	case b.TheoryRemaining > 0:
		return domain.StreamTheory
	case b.CasesRemaining > 0:
		return domain.StreamCases
	default:
		return ""
	}
}

func remainingRatio(remaining, planned int) float64 {
	if planned <= 0 {
		return 0
	}
	return float64(remaining) / float64(planned)
}

// DailyStudyThemeCap bounds new-content minutes per day: half the day when
// there is room for a full study session, otherwise at most 120 minutes.
func DailyStudyThemeCap(availableTodayMin int) int {
	if availableTodayMin >= 240 {
		return int(math.Floor(float64(availableTodayMin) * 0.5))
	}
	if availableTodayMin < 120 {
		return availableTodayMin
	}
	return 120
}

// pickTheory is stage B: STUDY_THEME on the gated unit sequence until the
// daily cap, then secondary activities, interleaving onto other active
// units when possible. The cap counts as reached once the headroom left
// cannot hold a minimum-size block.
func (b *GlobalBudget) pickTheory(ctx *DayContext) *Pick {
	primary := b.eligiblePrimaryUnit(ctx)

	capLeft := DailyStudyThemeCap(ctx.AvailableTodayMin) - ctx.StudyThemeTodayMin
	if capLeft < domain.MinBlockDuration || primary == nil {
		return b.pickSecondary(ctx)
	}
	return &Pick{Activity: domain.ActivityStudyTheme, Unit: primary.Unit}
}

// eligiblePrimaryUnit finds the first unit that may receive STUDY_THEME:
// remaining minutes, predecessor past the start-next-unit threshold, and
// compatible with today's lock.
func (b *GlobalBudget) eligiblePrimaryUnit(ctx *DayContext) *UnitBudget {
	for i := range b.Units {
		u := &b.Units[i]
		if u.StudyThemeRemaining == 0 {
			continue
		}
		if i > 0 && b.Units[i-1].StudyThemeDone < domain.StartNextUnitThreshold {
			continue
		}
		if ctx.TodayUnit != "" && u.Unit != ctx.TodayUnit {
			continue
		}
		return u
	}
	return nil
}

// pickSecondary produces a non-STUDY_THEME theory activity. With two or
// more active units it interleaves onto a unit other than today's, setting
// the attribution override; otherwise it stays on today's unit, or on the
// first active unit when no unit is locked today.
func (b *GlobalBudget) pickSecondary(ctx *DayContext) *Pick {
	if b.countActive(ctx) >= 2 {
		for i := range b.Units {
			u := &b.Units[i]
			if u.Unit == ctx.TodayUnit || !b.isActive(u, ctx) {
				continue
			}
			if a, ok := secondaryFor(u); ok {
				ctx.TheoryUnitOverride = u.Unit
				return &Pick{Activity: a, Unit: u.Unit}
			}
		}
	}

	target := b.UnitByKey(ctx.TodayUnit)
	if target == nil {
		target = b.firstActiveUnit(ctx)
	}
	if target == nil || !b.isActive(target, ctx) {
		return nil
	}
	if a, ok := secondaryFor(target); ok {
		return &Pick{Activity: a, Unit: target.Unit}
	}
	return nil
}

// secondaryFor applies the secondary precedence for one unit: REVIEW once
// the unit's study theme is complete, else the first of PODCAST, FLASHCARD,
// QUIZ with remaining minutes.
func secondaryFor(u *UnitBudget) (domain.Activity, bool) {
	if u.ReviewRemaining > 0 && u.StudyThemeDone >= domain.StudyThemeCompleteThreshold {
		return domain.ActivityReview, true
	}
	for _, a := range []domain.Activity{domain.ActivityPodcast, domain.ActivityFlashcard, domain.ActivityQuiz} {
		if u.ActivityRemaining(a) > 0 {
			return a, true
		}
	}
	return "", false
}

// isActive reports whether a unit may receive secondary work: it has study
// theme minutes in this pass, or it is today's locked unit (same-day
// activation).
func (b *GlobalBudget) isActive(u *UnitBudget, ctx *DayContext) bool {
	return u.StudyThemeDone > 0 || u.Unit == ctx.TodayUnit
}

func (b *GlobalBudget) countActive(ctx *DayContext) int {
	n := 0
	for i := range b.Units {
		if b.isActive(&b.Units[i], ctx) {
			n++
		}
	}
	return n
}

func (b *GlobalBudget) firstActiveUnit(ctx *DayContext) *UnitBudget {
	for i := range b.Units {
		if b.isActive(&b.Units[i], ctx) {
			return &b.Units[i]
		}
	}
	return nil
}

// pickCases is stage C: guided practice until its share of the planned
// case minutes is scheduled, then mock exams.
func (b *GlobalBudget) pickCases() *Pick {
	practiceTarget := domain.CasePracticeShare * float64(b.CasesPlanned)
	if float64(b.CasePracticeScheduled) < practiceTarget {
		return &Pick{Activity: domain.ActivityCasePractice}
	}
	return &Pick{Activity: domain.ActivityCaseMock}
}
