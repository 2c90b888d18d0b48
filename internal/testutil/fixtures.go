package testutil

import (
	"github.com/ngimenez/opoplan/internal/domain"
)

// InputsOption mutates the baseline form inputs fixture.
type InputsOption func(*domain.FormInputs)

func WithExamDate(iso string) InputsOption {
	return func(f *domain.FormInputs) {
		f.ExamDate = iso
	}
}

func WithAvailability(hours [7]float64) InputsOption {
	return func(f *domain.FormInputs) {
		f.AvailabilityHours = hours
	}
}

func WithStage(s domain.Stage) InputsOption {
	return func(f *domain.FormInputs) {
		f.Stage = s
	}
}

func WithThemeCount(n int) InputsOption {
	return func(f *domain.FormInputs) {
		f.ThemeCount = &n
	}
}

func WithoutProgramming() InputsOption {
	return func(f *domain.FormInputs) {
		no := false
		f.PlanProgramming = &no
	}
}

// BaselineInputs is the weekday scenario most tests start from: exam on
// 2026-03-12, four hours Monday through Friday.
func BaselineInputs(opts ...InputsOption) domain.FormInputs {
	inputs := domain.FormInputs{
		ExamDate:          "2026-03-12",
		AvailabilityHours: [7]float64{4, 4, 4, 4, 4, 0, 0},
		Region:            "Madrid",
		Stage:             domain.StagePrimaria,
	}
	for _, opt := range opts {
		opt(&inputs)
	}
	return inputs
}

// UnitStudyThemeMinutes sums a plan's STUDY_THEME minutes for one unit.
func UnitStudyThemeMinutes(plan domain.Plan, unit string) int {
	return unitActivityMinutes(plan, unit, domain.ActivityStudyTheme)
}

// UnitReviewMinutes sums a plan's REVIEW minutes for one unit.
func UnitReviewMinutes(plan domain.Plan, unit string) int {
	return unitActivityMinutes(plan, unit, domain.ActivityReview)
}

func unitActivityMinutes(plan domain.Plan, unit string, activity domain.Activity) int {
	total := 0
	for _, day := range plan.Days {
		for _, b := range day.Blocks {
			if b.Activity == activity && b.Unit == unit {
				total += b.DurationMinutes
			}
		}
	}
	return total
}

// MaxBlockDuration returns the longest block of one activity in the plan.
func MaxBlockDuration(plan domain.Plan, activity domain.Activity) int {
	max := 0
	for _, day := range plan.Days {
		for _, b := range day.Blocks {
			if b.Activity == activity && b.DurationMinutes > max {
				max = b.DurationMinutes
			}
		}
	}
	return max
}
