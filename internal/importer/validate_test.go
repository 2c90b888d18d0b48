package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInputs() *InputsFile {
	return &InputsFile{
		ExamDate:          "2026-03-12",
		AvailabilityHours: []float64{4, 4, 4, 4, 4, 0, 0},
		Region:            "Madrid",
		Stage:             "Primaria",
	}
}

func TestValidateInputs_Valid(t *testing.T) {
	assert.Empty(t, ValidateInputs(validInputs()))
}

func TestValidateInputs_CollectsAllErrors(t *testing.T) {
	tc := 17
	st := "veteran"
	f := &InputsFile{
		ExamDate:          "soon",
		AvailabilityHours: []float64{4, -1, 4},
		Stage:             "Secundaria",
		ThemeCount:        &tc,
		StudentType:       &st,
	}

	errs := ValidateInputs(f)
	require.Len(t, errs, 6)
}

func TestValidateInputs_MissingExamDate(t *testing.T) {
	f := validInputs()
	f.ExamDate = ""

	errs := ValidateInputs(f)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "exam_date is required")
}

func TestValidateEvents_Valid(t *testing.T) {
	score := 45.0
	minutes := 60.0
	f := &EventsFile{Events: []EventImport{
		{Kind: "QUIZ_RESULT", Unit: "Unidad 1", Score: &score},
		{Kind: "BLOCK_COMPLETED", Activity: "STUDY_THEME", Unit: "Unidad 1", CompletedMinutes: &minutes},
		{Kind: "BLOCK_COMPLETED", Activity: "CASE_PRACTICE", CompletedMinutes: &minutes},
		{Kind: "SESSION_FEEDBACK", Activity: "STUDY_THEME", Feel: "too_much"},
	}}

	assert.Empty(t, ValidateEvents(f))
}

func TestValidateEvents_UnknownKindShortCircuitsEntry(t *testing.T) {
	f := &EventsFile{Events: []EventImport{{Kind: "SOMETHING"}}}

	errs := ValidateEvents(f)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "events[0].kind")
}

func TestValidateEvents_QuizNeedsUnitAndScore(t *testing.T) {
	f := &EventsFile{Events: []EventImport{{Kind: "QUIZ_RESULT"}}}
	assert.Len(t, ValidateEvents(f), 2)

	score := 120.0
	f = &EventsFile{Events: []EventImport{{Kind: "QUIZ_RESULT", Unit: "Unidad 1", Score: &score}}}
	errs := ValidateEvents(f)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "outside [0, 100]")
}

func TestValidateEvents_TheoryCompletionNeedsUnit(t *testing.T) {
	minutes := 30.0
	f := &EventsFile{Events: []EventImport{
		{Kind: "BLOCK_COMPLETED", Activity: "FLASHCARD", CompletedMinutes: &minutes},
	}}

	errs := ValidateEvents(f)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "unit is required")
}

func TestValidateEvents_FeedbackNeedsKnownFeel(t *testing.T) {
	f := &EventsFile{Events: []EventImport{
		{Kind: "SESSION_FEEDBACK", Activity: "QUIZ", Feel: "exhausted"},
	}}

	errs := ValidateEvents(f)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "feel")
}
