package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitKey(t *testing.T) {
	assert.Equal(t, "Unidad 1", UnitKey(1))
	assert.Equal(t, "Unidad 20", UnitKey(20))
}

func TestNewUnitLedger_DefaultEnvelope(t *testing.T) {
	l := NewUnitLedger(3)
	assert.Equal(t, "Unidad 3", l.Unit)
	assert.Equal(t, 240, l.Required.StudyTheme)
	assert.Equal(t, 60, l.Required.Review)
	assert.Equal(t, 60, l.Required.Podcast)
	assert.Equal(t, 60, l.Required.Flashcard)
	assert.Equal(t, 90, l.Required.Quiz)
	assert.Equal(t, TheoryEnvelopeMinutes, l.Required.Total())
	assert.Equal(t, 0, l.Done.Total())
}

func TestStudentState_UnitIndex(t *testing.T) {
	s := StudentState{Units: []UnitLedger{NewUnitLedger(1), NewUnitLedger(2)}}
	assert.Equal(t, 0, s.UnitIndex("Unidad 1"))
	assert.Equal(t, 1, s.UnitIndex("Unidad 2"))
	assert.Equal(t, -1, s.UnitIndex("Unidad 99"))
}

func TestStudentState_Totals(t *testing.T) {
	s := StudentState{
		Units:  []UnitLedger{NewUnitLedger(1), NewUnitLedger(2)},
		Global: GlobalLedger{CasesRequired: 600, ProgrammingRequired: 400, CasesDone: 100},
	}
	s.Units[0].Done.StudyTheme = 120

	assert.Equal(t, 2*TheoryEnvelopeMinutes+1000, s.TotalRequired())
	assert.Equal(t, 220, s.TotalDone())
}

func TestStudentState_CloneIsIndependent(t *testing.T) {
	s := StudentState{
		Units:       []UnitLedger{NewUnitLedger(1)},
		Preferences: DefaultPreferences(),
	}

	c := s.Clone()
	c.Units[0].Done.StudyTheme = 200
	c.Preferences[ActivityStudyTheme] = 90

	assert.Equal(t, 0, s.Units[0].Done.StudyTheme, "clone must not alias unit ledgers")
	assert.Equal(t, 60, s.Preferences[ActivityStudyTheme], "clone must not alias preferences")
}

func TestBlockID(t *testing.T) {
	assert.Equal(t, "2026-01-01__0__STUDY_THEME__Unidad 1",
		BlockID("2026-01-01", 0, ActivityStudyTheme, "Unidad 1"))
	assert.Equal(t, "2026-01-01__2__CASE_PRACTICE__NA",
		BlockID("2026-01-01", 2, ActivityCasePractice, ""))
}

func TestStreamAndPhaseMapping(t *testing.T) {
	require.Equal(t, StreamTheory, StreamOf(ActivityQuiz))
	require.Equal(t, StreamCases, StreamOf(ActivityCaseMock))
	require.Equal(t, StreamProgramming, StreamOf(ActivityProgramming))

	assert.Equal(t, PhaseDepth, PhaseOf(ActivityStudyTheme))
	assert.Equal(t, PhaseDepth, PhaseOf(ActivityPodcast))
	assert.Equal(t, PhaseEvalReview, PhaseOf(ActivityReview))
	assert.Equal(t, PhaseEvalReview, PhaseOf(ActivityFlashcard))
	assert.Equal(t, PhaseEvalReview, PhaseOf(ActivityQuiz))
	assert.Equal(t, PhasePractice, PhaseOf(ActivityCasePractice))
	assert.Equal(t, PhasePractice, PhaseOf(ActivityProgramming))

	assert.Equal(t, TypeNewContent, TypeOf(ActivityStudyTheme))
	assert.Equal(t, FormatAudio, FormatOf(ActivityPodcast))
	assert.Equal(t, TypeEvaluation, TypeOf(ActivityCaseMock))
	assert.Equal(t, FormatQuiz, FormatOf(ActivityCasePractice))
}
