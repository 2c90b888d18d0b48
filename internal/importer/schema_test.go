package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ngimenez/opoplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadInputs_JSON(t *testing.T) {
	path := writeFile(t, "plan.json", `{
		"exam_date": "2026-03-12",
		"availability_hours": [4, 4, 4, 4, 4, 0, 0],
		"region": "Madrid",
		"stage": "Primaria",
		"theme_count": 25
	}`)

	f, err := LoadInputs(path)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-12", f.ExamDate)
	require.NotNil(t, f.ThemeCount)
	assert.Equal(t, 25, *f.ThemeCount)
	assert.Empty(t, ValidateInputs(f))
}

func TestLoadInputs_YAML(t *testing.T) {
	path := writeFile(t, "plan.yaml", `
exam_date: "2026-03-12"
availability_hours: [4, 4, 4, 4, 4, 0, 0]
region: Madrid
stage: Primaria
plan_programming: false
`)

	f, err := LoadInputs(path)
	require.NoError(t, err)
	require.NotNil(t, f.PlanProgramming)
	assert.False(t, *f.PlanProgramming)

	inputs := f.ToDomain()
	assert.Equal(t, domain.StagePrimaria, inputs.Stage)
	assert.Equal(t, [7]float64{4, 4, 4, 4, 4, 0, 0}, inputs.AvailabilityHours)
	assert.False(t, inputs.WantsProgramming())
}

func TestLoadInputs_MalformedJSON(t *testing.T) {
	path := writeFile(t, "plan.json", `{`)
	_, err := LoadInputs(path)
	assert.Error(t, err)
}

func TestLoadInputs_MissingFile(t *testing.T) {
	_, err := LoadInputs(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadEvents_YAMLToDomain(t *testing.T) {
	path := writeFile(t, "events.yml", `
events:
  - kind: QUIZ_RESULT
    unit: "Unidad 1"
    score: 45
  - kind: BLOCK_COMPLETED
    activity: STUDY_THEME
    unit: "Unidad 1"
    completed_minutes: 120
  - kind: SESSION_FEEDBACK
    activity: STUDY_THEME
    feel: too_much
`)

	f, err := LoadEvents(path)
	require.NoError(t, err)
	require.Empty(t, ValidateEvents(f))

	events := f.ToDomain()
	require.Len(t, events, 3)
	assert.Equal(t, domain.EventQuizResult, events[0].Kind)
	assert.Equal(t, 45.0, events[0].Score)
	assert.Equal(t, domain.ActivityStudyTheme, events[1].Activity)
	assert.Equal(t, 120.0, events[1].CompletedMinutes)
	assert.Equal(t, domain.FeelTooMuch, events[2].Feel)
}
