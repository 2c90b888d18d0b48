package student

import (
	"math"

	"github.com/ngimenez/opoplan/internal/domain"
)

// ApplyFeedbackEvents folds feedback events over a state, in order, and
// returns a new state; the input is never modified. Unknown units are
// skipped. Done minutes clamp at their required counterpart, and required
// minutes only ever grow. Slack is recomputed against the same future
// capacity the state was derived with.
func ApplyFeedbackEvents(state domain.StudentState, events []domain.FeedbackEvent) domain.StudentState {
	out := state.Clone()

	for _, ev := range events {
		switch ev.Kind {
		case domain.EventQuizResult:
			applyQuizResult(&out, ev)
		case domain.EventBlockCompleted:
			applyBlockCompleted(&out, ev)
		case domain.EventSessionFeedback:
			if ev.Feel == domain.FeelTooMuch {
				out.Preferences.Adjust(ev.Activity, -domain.SessionFeedbackStep)
			} else if ev.Feel == domain.FeelMore {
				out.Preferences.Adjust(ev.Activity, domain.SessionFeedbackStep)
			}
		}
	}

	out.Slack = ComputeSlack(&out, out.Slack.EffectiveCapacityFuture)
	return out
}

// applyQuizResult boosts a unit's required review minutes on a failing
// score. Passing scores change nothing.
func applyQuizResult(state *domain.StudentState, ev domain.FeedbackEvent) {
	if ev.Score >= domain.QuizFailThreshold {
		return
	}
	i := state.UnitIndex(ev.Unit)
	if i < 0 {
		return
	}
	state.Units[i].Required.Review += domain.ReviewBoostMinutes
}

// applyBlockCompleted credits completed minutes to the matching done
// counter: per-unit for theory activities, the global ledger for cases and
// programming.
func applyBlockCompleted(state *domain.StudentState, ev domain.FeedbackEvent) {
	minutes := wholeMinutes(ev.CompletedMinutes)
	if minutes == 0 {
		return
	}

	switch domain.StreamOf(ev.Activity) {
	case domain.StreamCases:
		state.Global.CasesDone = addClamped(state.Global.CasesDone, minutes, state.Global.CasesRequired)
	case domain.StreamProgramming:
		state.Global.ProgrammingDone = addClamped(state.Global.ProgrammingDone, minutes, state.Global.ProgrammingRequired)
	case domain.StreamTheory:
		i := state.UnitIndex(ev.Unit)
		if i < 0 {
			return
		}
		u := &state.Units[i]
		switch ev.Activity {
		case domain.ActivityStudyTheme:
			u.Done.StudyTheme = addClamped(u.Done.StudyTheme, minutes, u.Required.StudyTheme)
		case domain.ActivityReview:
			u.Done.Review = addClamped(u.Done.Review, minutes, u.Required.Review)
		case domain.ActivityPodcast:
			u.Done.Podcast = addClamped(u.Done.Podcast, minutes, u.Required.Podcast)
		case domain.ActivityFlashcard:
			u.Done.Flashcard = addClamped(u.Done.Flashcard, minutes, u.Required.Flashcard)
		case domain.ActivityQuiz:
			u.Done.Quiz = addClamped(u.Done.Quiz, minutes, u.Required.Quiz)
		}
	}
}

// wholeMinutes floors a reported duration into non-negative whole minutes.
// Non-finite values are forced to zero.
func wholeMinutes(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return int(math.Floor(v))
}

func addClamped(done, minutes, required int) int {
	done += minutes
	if done > required {
		return required
	}
	return done
}
