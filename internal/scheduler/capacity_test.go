package scheduler

import (
	"testing"

	"github.com/ngimenez/opoplan/internal/calendar"
	"github.com/ngimenez/opoplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdayInputs() domain.FormInputs {
	return domain.FormInputs{
		ExamDate:          "2026-03-12",
		AvailabilityHours: [7]float64{4, 4, 4, 4, 4, 0, 0},
		Region:            "Madrid",
		Stage:             domain.StagePrimaria,
	}
}

func TestCalculateCapacity_Baseline(t *testing.T) {
	today, err := calendar.ParseISO("2026-01-01")
	require.NoError(t, err)

	cap := CalculateCapacity(weekdayInputs(), today)

	assert.Equal(t, 70, cap.DaysUntilExam)
	assert.Equal(t, 10, cap.TotalWeeks)
	assert.Equal(t, 8, cap.EffectivePlanningWeeks, "last two weeks are reserved")

	// 2026-01-01 is a Thursday; every 7-day span holds 5 weekday slots.
	assert.Equal(t, 8*5*240, cap.AvailableEffectiveMin)

	assert.Equal(t, 20, cap.UnitsCount)
	assert.Equal(t, 20*510, cap.TheoryPlannedMin)
	assert.Equal(t, 6120, cap.CasesPlannedMin)
	assert.Equal(t, 4080, cap.ProgrammingPlannedMin)
	assert.Equal(t, 20400, cap.PlannedMin)

	assert.Equal(t, 9600-20400, cap.BufferMin)
	assert.Equal(t, domain.BufferWarning, cap.BufferStatus)
}

func TestCalculateCapacity_ThemeCountOverride(t *testing.T) {
	today, _ := calendar.ParseISO("2026-01-01")
	inputs := weekdayInputs()
	fifteen := 15
	inputs.ThemeCount = &fifteen

	cap := CalculateCapacity(inputs, today)

	assert.Equal(t, 15, cap.UnitsCount)
	assert.Equal(t, 15*510, cap.TheoryPlannedMin)
	assert.Equal(t, 4590, cap.CasesPlannedMin)
	assert.Equal(t, 3060, cap.ProgrammingPlannedMin)
}

func TestCalculateCapacity_ProgrammingOptOut(t *testing.T) {
	today, _ := calendar.ParseISO("2026-01-01")
	inputs := weekdayInputs()
	no := false
	inputs.PlanProgramming = &no

	cap := CalculateCapacity(inputs, today)

	assert.Equal(t, 0, cap.ProgrammingPlannedMin)
	assert.Equal(t, cap.TheoryPlannedMin+cap.CasesPlannedMin, cap.PlannedMin)
}

func TestCalculateCapacity_PastExamDate(t *testing.T) {
	today, _ := calendar.ParseISO("2026-03-13")
	cap := CalculateCapacity(weekdayInputs(), today)

	assert.Equal(t, 0, cap.DaysUntilExam)
	assert.Equal(t, 0, cap.TotalWeeks)
	assert.Equal(t, 0, cap.EffectivePlanningWeeks)
	assert.Equal(t, 0, cap.AvailableEffectiveMin)
	assert.Equal(t, domain.BufferWarning, cap.BufferStatus)
	assert.Equal(t, 0.0, cap.BufferRatio, "zero available forces a zero ratio")
}

func TestCalculateCapacity_WindowUnderThreeWeeks(t *testing.T) {
	today, _ := calendar.ParseISO("2026-03-01")
	cap := CalculateCapacity(weekdayInputs(), today) // 11 days out

	assert.Equal(t, 11, cap.DaysUntilExam)
	assert.Equal(t, 2, cap.TotalWeeks)
	assert.Equal(t, 0, cap.EffectivePlanningWeeks, "everything falls inside the reserve")
	assert.Equal(t, 0, cap.AvailableEffectiveMin)
}

func TestCalculateCapacity_BufferTiers(t *testing.T) {
	assert.Equal(t, domain.BufferGood, BufferStatusFor(0.20))
	assert.Equal(t, domain.BufferGood, BufferStatusFor(0.9))
	assert.Equal(t, domain.BufferEdge, BufferStatusFor(0.19))
	assert.Equal(t, domain.BufferEdge, BufferStatusFor(0.10))
	assert.Equal(t, domain.BufferWarning, BufferStatusFor(0.09))
	assert.Equal(t, domain.BufferWarning, BufferStatusFor(-0.5))
}

func TestDayAvailabilityMin_RoundsOncePerDay(t *testing.T) {
	inputs := weekdayInputs()
	inputs.AvailabilityHours = [7]float64{1.24, 0, 0, 0, 0, 0, 0}

	mon, _ := calendar.ParseISO("2026-01-05")
	assert.Equal(t, 74, DayAvailabilityMin(inputs, mon), "1.24h rounds to 74 minutes")

	tue, _ := calendar.ParseISO("2026-01-06")
	assert.Equal(t, 0, DayAvailabilityMin(inputs, tue))
}
