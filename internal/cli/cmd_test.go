package cli

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAvailability(t *testing.T) {
	hours, err := parseAvailability("4, 4, 4, 4, 4, 0, 0")
	require.NoError(t, err)
	assert.Equal(t, [7]float64{4, 4, 4, 4, 4, 0, 0}, hours)

	_, err = parseAvailability("4,4,4")
	assert.Error(t, err)

	_, err = parseAvailability("4,4,4,4,4,0,x")
	assert.Error(t, err)

	_, err = parseAvailability("4,4,4,4,4,0,-1")
	assert.Error(t, err)
}

func TestLoadInputs_RequiresFileWithoutTerminal(t *testing.T) {
	app := &App{IsInteractive: func() bool { return false }}

	_, err := loadInputs(app, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--inputs is required")
}

func TestLoadInputs_SurfacesValidationErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"exam_date": "tomorrow",
		"availability_hours": [4, 4, 4, 4, 4, 0, 0],
		"stage": "Primaria"
	}`), 0o644))

	_, err := loadInputs(&App{}, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exam_date")
}

func TestLoadInputs_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"exam_date": "2026-03-12",
		"availability_hours": [4, 4, 4, 4, 4, 0, 0],
		"region": "Madrid",
		"stage": "Primaria"
	}`), 0o644))

	inputs, err := loadInputs(&App{}, path)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-12", inputs.ExamDate)
	assert.Equal(t, 20, inputs.UnitsCount())
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	root := NewRootCmd(&App{})

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"plan", "replan", "capacity", "state"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestPagerModel_SizesAndQuits(t *testing.T) {
	m := newPagerModel("Study plan", "line one\nline two")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	pm := updated.(pagerModel)
	require.True(t, pm.ready)
	assert.Contains(t, pm.View(), "Study plan")
	assert.Contains(t, pm.View(), "line one")

	_, cmd := pm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
