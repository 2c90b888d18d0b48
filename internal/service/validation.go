package service

import (
	"fmt"
	"math"
	"time"

	"github.com/ngimenez/opoplan/internal/calendar"
	"github.com/ngimenez/opoplan/internal/contract"
	"github.com/ngimenez/opoplan/internal/domain"
)

// validateInputs rejects malformed planning requests before they reach the
// engine; the engine itself assumes well-typed values.
func validateInputs(inputs domain.FormInputs) error {
	if _, err := calendar.ParseISO(inputs.ExamDate); err != nil {
		return &contract.PlanError{
			Code:    contract.ErrInvalidInputs,
			Message: fmt.Sprintf("exam_date %q is not a valid YYYY-MM-DD date", inputs.ExamDate),
		}
	}
	for i, h := range inputs.AvailabilityHours {
		if h < 0 || math.IsNaN(h) || math.IsInf(h, 0) {
			return &contract.PlanError{
				Code:    contract.ErrInvalidInputs,
				Message: fmt.Sprintf("availability_hours[%d] must be a non-negative finite number", i),
			}
		}
	}
	if !domain.ValidStages[string(inputs.Stage)] {
		return &contract.PlanError{
			Code:    contract.ErrInvalidInputs,
			Message: fmt.Sprintf("stage %q is not one of Infantil, Primaria", inputs.Stage),
		}
	}
	if inputs.ThemeCount != nil && !domain.ValidThemeCounts[*inputs.ThemeCount] {
		return &contract.PlanError{
			Code:    contract.ErrInvalidInputs,
			Message: fmt.Sprintf("theme_count %d is not one of 15, 20, 25", *inputs.ThemeCount),
		}
	}
	if inputs.StudentType != nil {
		if st := *inputs.StudentType; st != domain.StudentNew && st != domain.StudentRepeat {
			return &contract.PlanError{
				Code:    contract.ErrInvalidInputs,
				Message: fmt.Sprintf("student_type %q is not one of new, repeat", st),
			}
		}
	}
	return nil
}

// validateEvents rejects events outside the closed tag sets. Unknown units
// are legal here: the engine skips them.
func validateEvents(events []domain.FeedbackEvent) error {
	for i, ev := range events {
		if !domain.ValidEventKinds[string(ev.Kind)] {
			return eventErr(i, "kind %q is not a known event kind", ev.Kind)
		}
		switch ev.Kind {
		case domain.EventQuizResult:
			if ev.Score < 0 || ev.Score > 100 || math.IsNaN(ev.Score) {
				return eventErr(i, "score %v must be within [0, 100]", ev.Score)
			}
		case domain.EventBlockCompleted:
			if !domain.ValidActivities[string(ev.Activity)] {
				return eventErr(i, "activity %q is not a known activity", ev.Activity)
			}
			if math.IsNaN(ev.CompletedMinutes) || math.IsInf(ev.CompletedMinutes, 0) {
				return eventErr(i, "completed_minutes must be finite")
			}
		case domain.EventSessionFeedback:
			if !domain.ValidActivities[string(ev.Activity)] {
				return eventErr(i, "activity %q is not a known activity", ev.Activity)
			}
			if !domain.ValidFeels[string(ev.Feel)] {
				return eventErr(i, "feel %q is not one of too_much, ok, more", ev.Feel)
			}
		}
	}
	return nil
}

func eventErr(i int, format string, args ...any) error {
	return &contract.PlanError{
		Code:    contract.ErrInvalidEvent,
		Message: fmt.Sprintf("events[%d]: ", i) + fmt.Sprintf(format, args...),
	}
}

// resolveToday pins the planning start: an explicit ISO day wins, otherwise
// the current local calendar day.
func resolveToday(todayISO *string) (time.Time, error) {
	if todayISO == nil {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	today, err := calendar.ParseISO(*todayISO)
	if err != nil {
		return time.Time{}, &contract.PlanError{
			Code:    contract.ErrInvalidDate,
			Message: fmt.Sprintf("today %q is not a valid YYYY-MM-DD date", *todayISO),
		}
	}
	return today, nil
}
