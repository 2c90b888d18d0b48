// Package scheduler implements the plan generation engine: capacity math,
// the remaining-ratio allocator, and the day builder. Everything here is
// pure and single-threaded; a GlobalBudget lives for one generation call.
package scheduler

import (
	"math"
	"time"

	"github.com/ngimenez/opoplan/internal/calendar"
	"github.com/ngimenez/opoplan/internal/domain"
)

// Buffer status tiers: headroom as a fraction of available minutes.
const (
	bufferGoodRatio = 0.20
	bufferEdgeRatio = 0.10
)

// CalculateCapacity maps calendar availability to planable minutes for the
// window between today and the exam date. The final two weeks are reserved
// and contribute no effective minutes. Malformed exam dates degrade to a
// zero-day window; validation lives at the boundary.
func CalculateCapacity(inputs domain.FormInputs, today time.Time) domain.PlanCapacity {
	daysUntilExam := 0
	if exam, err := calendar.ParseISO(inputs.ExamDate); err == nil {
		if d := calendar.DiffDays(today, exam); d > 0 {
			daysUntilExam = d
		}
	}

	totalWeeks := (daysUntilExam + 6) / 7
	effectiveWeeks := totalWeeks - domain.ReserveWeeks
	if effectiveWeeks < 0 {
		effectiveWeeks = 0
	}

	available := 0
	for d := 0; d < effectiveWeeks*7; d++ {
		available += DayAvailabilityMin(inputs, calendar.AddDays(today, d))
	}

	units := inputs.UnitsCount()
	theory := units * domain.TheoryEnvelopeMinutes
	cases := int(math.Floor(0.6 * float64(theory)))
	programming := 0
	if inputs.WantsProgramming() {
		programming = int(math.Floor(0.4 * float64(theory)))
	}
	planned := theory + cases + programming

	buffer := available - planned
	ratio := 0.0
	if available > 0 {
		ratio = float64(buffer) / float64(available)
	}

	return domain.PlanCapacity{
		TotalWeeks:             totalWeeks,
		EffectivePlanningWeeks: effectiveWeeks,
		AvailableEffectiveMin:  available,
		UnitsCount:             units,
		TheoryPlannedMin:       theory,
		CasesPlannedMin:        cases,
		ProgrammingPlannedMin:  programming,
		PlannedMin:             planned,
		BufferMin:              buffer,
		BufferRatio:            ratio,
		BufferStatus:           BufferStatusFor(ratio),
		DaysUntilExam:          daysUntilExam,
	}
}

// BufferStatusFor collapses a headroom ratio into the three status tiers.
func BufferStatusFor(ratio float64) domain.BufferStatus {
	switch {
	case ratio >= bufferGoodRatio:
		return domain.BufferGood
	case ratio >= bufferEdgeRatio:
		return domain.BufferEdge
	default:
		return domain.BufferWarning
	}
}

// DayAvailabilityMin converts the availability vector entry for date's
// weekday into whole minutes, rounding once per day.
func DayAvailabilityMin(inputs domain.FormInputs, date time.Time) int {
	hours := inputs.AvailabilityHours[calendar.WeekdayIndex(date)]
	if hours <= 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0
	}
	return int(math.Round(hours * 60))
}
