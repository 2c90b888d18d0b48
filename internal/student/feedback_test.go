package student

import (
	"testing"

	"github.com/ngimenez/opoplan/internal/calendar"
	"github.com/ngimenez/opoplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baselineState(t *testing.T) domain.StudentState {
	t.Helper()
	today, err := calendar.ParseISO("2026-01-01")
	require.NoError(t, err)
	return DeriveInitialState(testInputs(), testCapacity(), today)
}

func TestApplyFeedbackEvents_FailingQuizBoostsReview(t *testing.T) {
	state := baselineState(t)

	out := ApplyFeedbackEvents(state, []domain.FeedbackEvent{
		domain.QuizResult("Unidad 1", 45),
	})

	assert.Equal(t, 90, out.Units[0].Required.Review, "failing quiz adds 30 review minutes")
	assert.Equal(t, 60, state.Units[0].Required.Review, "input state untouched")
}

func TestApplyFeedbackEvents_PassingQuizIsNoop(t *testing.T) {
	state := baselineState(t)
	out := ApplyFeedbackEvents(state, []domain.FeedbackEvent{
		domain.QuizResult("Unidad 1", 75),
		domain.QuizResult("Unidad 1", 60), // threshold itself passes
	})
	assert.Equal(t, 60, out.Units[0].Required.Review)
}

func TestApplyFeedbackEvents_QuizAccumulatesNotIdempotent(t *testing.T) {
	state := baselineState(t)
	events := []domain.FeedbackEvent{domain.QuizResult("Unidad 3", 10)}

	once := ApplyFeedbackEvents(state, events)
	twice := ApplyFeedbackEvents(once, events)

	assert.Equal(t, 90, once.Units[2].Required.Review)
	assert.Equal(t, 120, twice.Units[2].Required.Review, "the boost accumulates per fold")
}

func TestApplyFeedbackEvents_UnknownUnitSkipped(t *testing.T) {
	state := baselineState(t)
	out := ApplyFeedbackEvents(state, []domain.FeedbackEvent{
		domain.QuizResult("Unidad 99", 10),
		domain.BlockCompleted(domain.ActivityStudyTheme, "Unidad 99", 60),
	})
	assert.Equal(t, state.TotalRequired(), out.TotalRequired())
	assert.Equal(t, 0, out.TotalDone())
}

func TestApplyFeedbackEvents_BlockCompletedTheory(t *testing.T) {
	state := baselineState(t)
	out := ApplyFeedbackEvents(state, []domain.FeedbackEvent{
		domain.BlockCompleted(domain.ActivityStudyTheme, "Unidad 1", 120.9),
	})
	assert.Equal(t, 120, out.Units[0].Done.StudyTheme, "fractional minutes floor")
}

func TestApplyFeedbackEvents_BlockCompletedClampsAtRequired(t *testing.T) {
	state := baselineState(t)
	out := ApplyFeedbackEvents(state, []domain.FeedbackEvent{
		domain.BlockCompleted(domain.ActivityReview, "Unidad 1", 500),
	})
	assert.Equal(t, 60, out.Units[0].Done.Review, "done may not exceed required")
}

func TestApplyFeedbackEvents_BlockCompletedGlobalStreams(t *testing.T) {
	state := baselineState(t)
	out := ApplyFeedbackEvents(state, []domain.FeedbackEvent{
		domain.BlockCompleted(domain.ActivityCasePractice, "", 60),
		domain.BlockCompleted(domain.ActivityCaseMock, "", 30),
		domain.BlockCompleted(domain.ActivityProgramming, "", 45),
	})
	assert.Equal(t, 90, out.Global.CasesDone)
	assert.Equal(t, 45, out.Global.ProgrammingDone)
}

func TestApplyFeedbackEvents_NegativeMinutesIgnored(t *testing.T) {
	state := baselineState(t)
	out := ApplyFeedbackEvents(state, []domain.FeedbackEvent{
		domain.BlockCompleted(domain.ActivityStudyTheme, "Unidad 1", -60),
	})
	assert.Equal(t, 0, out.Units[0].Done.StudyTheme)
}

func TestApplyFeedbackEvents_SessionFeedbackAdjustsPreferences(t *testing.T) {
	state := baselineState(t)

	out := ApplyFeedbackEvents(state, []domain.FeedbackEvent{
		domain.SessionFeedback(domain.ActivityStudyTheme, domain.FeelTooMuch),
		domain.SessionFeedback(domain.ActivityQuiz, domain.FeelMore),
		domain.SessionFeedback(domain.ActivityReview, domain.FeelOK),
	})

	assert.Equal(t, 45, out.Preferences.Target(domain.ActivityStudyTheme))
	assert.Equal(t, 30, out.Preferences.Target(domain.ActivityQuiz))
	assert.Equal(t, 30, out.Preferences.Target(domain.ActivityReview))
}

func TestApplyFeedbackEvents_SessionFeedbackClampsAtBounds(t *testing.T) {
	state := baselineState(t)
	events := make([]domain.FeedbackEvent, 20)
	for i := range events {
		events[i] = domain.SessionFeedback(domain.ActivityStudyTheme, domain.FeelTooMuch)
	}
	out := ApplyFeedbackEvents(state, events)
	assert.Equal(t, 30, out.Preferences.Target(domain.ActivityStudyTheme))
}

func TestApplyFeedbackEvents_SlackShrinksByRequiredGrowth(t *testing.T) {
	state := baselineState(t)

	out := ApplyFeedbackEvents(state, []domain.FeedbackEvent{
		domain.QuizResult("Unidad 1", 30),
		domain.QuizResult("Unidad 2", 30),
	})

	assert.Equal(t, state.Slack.SlackMinutes-2*domain.ReviewBoostMinutes, out.Slack.SlackMinutes,
		"required grew by 60 with done unchanged")
	assert.Equal(t, state.Slack.EffectiveCapacityFuture, out.Slack.EffectiveCapacityFuture)
}

func TestApplyFeedbackEvents_DoneGrowthRaisesSlack(t *testing.T) {
	state := baselineState(t)
	out := ApplyFeedbackEvents(state, []domain.FeedbackEvent{
		domain.BlockCompleted(domain.ActivityStudyTheme, "Unidad 1", 120),
	})
	assert.Equal(t, state.Slack.SlackMinutes+120, out.Slack.SlackMinutes)
}
