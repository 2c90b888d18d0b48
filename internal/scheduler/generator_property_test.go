package scheduler

import (
	"math/rand"
	"testing"

	"github.com/ngimenez/opoplan/internal/calendar"
	"github.com/ngimenez/opoplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGeneratePlan_Invariants property-tests the plan invariants over
// randomized availability patterns, curriculum sizes and start dates.
func TestGeneratePlan_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	themeCounts := []int{15, 20, 25}
	starts := []string{"2025-11-03", "2026-01-01", "2026-01-20", "2026-02-15"}

	for trial := 0; trial < 60; trial++ {
		inputs := domain.FormInputs{
			ExamDate: "2026-03-12",
			Region:   "Madrid",
			Stage:    domain.StagePrimaria,
		}
		for i := range inputs.AvailabilityHours {
			// 0–6 hours in quarter-hour steps, with plenty of zero days.
			if rng.Intn(3) == 0 {
				continue
			}
			inputs.AvailabilityHours[i] = float64(rng.Intn(25)) * 0.25
		}
		tc := themeCounts[rng.Intn(len(themeCounts))]
		inputs.ThemeCount = &tc

		today, err := calendar.ParseISO(starts[rng.Intn(len(starts))])
		require.NoError(t, err)

		plan := GeneratePlan(inputs, today)
		cap := plan.Debug.Capacity

		// Invariant: one day entry per calendar day until the exam.
		require.Len(t, plan.Days, cap.DaysUntilExam, "trial %d", trial)

		ids := make(map[string]bool)
		themeCumulative := make(map[string]int)
		themeSeen := make(map[string]bool)
		blockSum := 0

		for di, day := range plan.Days {
			week := di/7 + 1
			dayTheme := 0
			dayThemeUnits := make(map[string]bool)
			dayMinutes := 0

			for _, b := range day.Blocks {
				// Invariant: block bounds.
				assert.GreaterOrEqual(t, b.DurationMinutes, domain.MinBlockDuration,
					"trial %d day %s", trial, day.Date)
				assert.LessOrEqual(t, b.DurationMinutes, domain.MaxBlockDuration,
					"trial %d day %s", trial, day.Date)

				// Invariant: unique ids.
				assert.False(t, ids[b.ID], "trial %d duplicate id %s", trial, b.ID)
				ids[b.ID] = true

				dayMinutes += b.DurationMinutes
				blockSum += b.DurationMinutes

				switch b.Activity {
				case domain.ActivityStudyTheme:
					dayTheme += b.DurationMinutes
					dayThemeUnits[b.Unit] = true
					themeCumulative[b.Unit] += b.DurationMinutes
					themeSeen[b.Unit] = true
				case domain.ActivityReview:
					// Gating is inclusive of earlier same-day theme blocks.
					assert.GreaterOrEqual(t, themeCumulative[b.Unit], domain.StudyThemeCompleteThreshold,
						"trial %d: review before completion on %s %s", trial, day.Date, b.Unit)
				case domain.ActivityPodcast, domain.ActivityFlashcard, domain.ActivityQuiz:
					assert.True(t, themeSeen[b.Unit],
						"trial %d: secondary on unactivated %s at %s", trial, b.Unit, day.Date)
				}

				if week <= 2 {
					assert.Equal(t, domain.StreamTheory, domain.StreamOf(b.Activity),
						"trial %d: non-theory in week %d", trial, week)
				}
			}

			// Invariant: reserve days carry no blocks.
			if week > cap.EffectivePlanningWeeks {
				assert.Empty(t, day.Blocks, "trial %d reserve day %s", trial, day.Date)
			}

			// Invariant: single study-theme unit per day.
			assert.LessOrEqual(t, len(dayThemeUnits), 1, "trial %d day %s", trial, day.Date)

			// Invariant: daily study-theme cap.
			avail := DayAvailabilityMin(inputs, calendar.AddDays(today, di))
			if avail >= 240 {
				assert.LessOrEqual(t, dayTheme, avail/2, "trial %d day %s", trial, day.Date)
			} else {
				assert.LessOrEqual(t, dayTheme, 120, "trial %d day %s", trial, day.Date)
			}

			// Invariant: a day never exceeds its availability.
			assert.LessOrEqual(t, dayMinutes, avail, "trial %d day %s", trial, day.Date)
		}

		// Invariant: unit k+1 never starts before unit k reaches the
		// start threshold (checked via final cumulative totals).
		for k := 1; k < cap.UnitsCount; k++ {
			if themeSeen[domain.UnitKey(k+1)] {
				assert.GreaterOrEqual(t, themeCumulative[domain.UnitKey(k)], domain.StartNextUnitThreshold,
					"trial %d: unit %d started early", trial, k+1)
			}
		}

		// Invariant: debug totals agree with emitted blocks.
		d := plan.Debug
		assert.Equal(t, blockSum, d.TotalScheduledMin, "trial %d", trial)
		assert.Equal(t, d.TotalScheduledMin,
			d.TheoryScheduledMin+d.CasesScheduledMin+d.ProgrammingScheduledMin, "trial %d", trial)
	}
}
