package scheduler

import (
	"fmt"

	"github.com/ngimenez/opoplan/internal/domain"
)

// UnitBudget tracks what one curriculum unit still needs in the current
// generation pass. StudyThemeDone starts from the state's historical done
// minutes and grows as the allocator schedules STUDY_THEME.
type UnitBudget struct {
	Unit string

	StudyThemeRemaining int
	ReviewRemaining     int
	PodcastRemaining    int
	FlashcardRemaining  int
	QuizRemaining       int
	TotalRemaining      int

	StudyThemeDone     int
	StudyThemeComplete bool
}

// GlobalBudget is the allocator's working ledger for one generation call.
// Remaining values decrease monotonically and never go below zero.
type GlobalBudget struct {
	Units []UnitBudget

	TheoryPlanned   int
	TheoryRemaining int

	CasesPlanned   int
	CasesRemaining int

	ProgrammingPlanned   int
	ProgrammingRemaining int

	CasePracticeScheduled int
	CaseMockScheduled     int
}

// NewGlobalBudget derives the working ledger from student state: remaining
// is required minus done, clamped at zero.
func NewGlobalBudget(state *domain.StudentState, cap domain.PlanCapacity) *GlobalBudget {
	b := &GlobalBudget{
		Units:              make([]UnitBudget, len(state.Units)),
		TheoryPlanned:      cap.TheoryPlannedMin,
		CasesPlanned:       cap.CasesPlannedMin,
		ProgrammingPlanned: cap.ProgrammingPlannedMin,
	}

	for i := range state.Units {
		u := &state.Units[i]
		ub := UnitBudget{
			Unit:                u.Unit,
			StudyThemeRemaining: clampZero(u.Required.StudyTheme - u.Done.StudyTheme),
			ReviewRemaining:     clampZero(u.Required.Review - u.Done.Review),
			PodcastRemaining:    clampZero(u.Required.Podcast - u.Done.Podcast),
			FlashcardRemaining:  clampZero(u.Required.Flashcard - u.Done.Flashcard),
			QuizRemaining:       clampZero(u.Required.Quiz - u.Done.Quiz),
			StudyThemeDone:      u.Done.StudyTheme,
			StudyThemeComplete:  u.Done.StudyTheme >= domain.StudyThemeCompleteThreshold,
		}
		ub.TotalRemaining = ub.StudyThemeRemaining + ub.ReviewRemaining +
			ub.PodcastRemaining + ub.FlashcardRemaining + ub.QuizRemaining
		b.Units[i] = ub
		b.TheoryRemaining += ub.TotalRemaining
	}

	b.CasesRemaining = clampZero(state.Global.CasesRequired - state.Global.CasesDone)
	b.ProgrammingRemaining = clampZero(state.Global.ProgrammingRequired - state.Global.ProgrammingDone)
	return b
}

// UnitByKey returns the budget entry for a unit key, or nil.
func (b *GlobalBudget) UnitByKey(unit string) *UnitBudget {
	for i := range b.Units {
		if b.Units[i].Unit == unit {
			return &b.Units[i]
		}
	}
	return nil
}

// ActivityRemaining reads the per-unit remaining for a theory activity.
func (u *UnitBudget) ActivityRemaining(a domain.Activity) int {
	switch a {
	case domain.ActivityStudyTheme:
		return u.StudyThemeRemaining
	case domain.ActivityReview:
		return u.ReviewRemaining
	case domain.ActivityPodcast:
		return u.PodcastRemaining
	case domain.ActivityFlashcard:
		return u.FlashcardRemaining
	case domain.ActivityQuiz:
		return u.QuizRemaining
	default:
		return 0
	}
}

// Commit records a scheduled block against the budget. Theory commits
// require a known unit; remaining values clamp at zero rather than going
// negative.
func (b *GlobalBudget) Commit(activity domain.Activity, unit string, minutes int) {
	if minutes <= 0 {
		panic(fmt.Sprintf("opoplan: commit of non-positive duration %d for %s", minutes, activity))
	}

	switch domain.StreamOf(activity) {
	case domain.StreamTheory:
		u := b.UnitByKey(unit)
		if u == nil {
			panic(fmt.Sprintf("opoplan: theory commit for unknown unit %q", unit))
		}
		switch activity {
		case domain.ActivityStudyTheme:
			u.StudyThemeRemaining = clampZero(u.StudyThemeRemaining - minutes)
			u.StudyThemeDone += minutes
			if u.StudyThemeDone >= domain.StudyThemeCompleteThreshold {
				u.StudyThemeComplete = true
			}
		case domain.ActivityReview:
			u.ReviewRemaining = clampZero(u.ReviewRemaining - minutes)
		case domain.ActivityPodcast:
			u.PodcastRemaining = clampZero(u.PodcastRemaining - minutes)
		case domain.ActivityFlashcard:
			u.FlashcardRemaining = clampZero(u.FlashcardRemaining - minutes)
		case domain.ActivityQuiz:
			u.QuizRemaining = clampZero(u.QuizRemaining - minutes)
		}
		u.TotalRemaining = clampZero(u.TotalRemaining - minutes)
		b.TheoryRemaining = clampZero(b.TheoryRemaining - minutes)

	case domain.StreamCases:
		b.CasesRemaining = clampZero(b.CasesRemaining - minutes)
		if activity == domain.ActivityCasePractice {
			b.CasePracticeScheduled += minutes
		} else {
			b.CaseMockScheduled += minutes
		}

	case domain.StreamProgramming:
		b.ProgrammingRemaining = clampZero(b.ProgrammingRemaining - minutes)
	}
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
