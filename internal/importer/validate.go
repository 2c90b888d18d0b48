package importer

import (
	"fmt"
	"math"
	"time"

	"github.com/ngimenez/opoplan/internal/domain"
)

// ValidateInputs checks an inputs file for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateInputs(f *InputsFile) []error {
	var errs []error

	if f.ExamDate == "" {
		errs = append(errs, fmt.Errorf("exam_date is required"))
	} else if _, err := time.Parse("2006-01-02", f.ExamDate); err != nil {
		errs = append(errs, fmt.Errorf("exam_date: invalid date format %q (expected YYYY-MM-DD)", f.ExamDate))
	}

	if len(f.AvailabilityHours) != 7 {
		errs = append(errs, fmt.Errorf("availability_hours must have exactly 7 entries (Monday first), got %d", len(f.AvailabilityHours)))
	}
	for i, h := range f.AvailabilityHours {
		if h < 0 || math.IsNaN(h) || math.IsInf(h, 0) {
			errs = append(errs, fmt.Errorf("availability_hours[%d]: must be a non-negative finite number", i))
		}
	}

	if !domain.ValidStages[f.Stage] {
		errs = append(errs, fmt.Errorf("stage: invalid value %q (expected Infantil or Primaria)", f.Stage))
	}
	if f.ThemeCount != nil && !domain.ValidThemeCounts[*f.ThemeCount] {
		errs = append(errs, fmt.Errorf("theme_count: invalid value %d (expected 15, 20 or 25)", *f.ThemeCount))
	}
	if f.StudentType != nil && *f.StudentType != "new" && *f.StudentType != "repeat" {
		errs = append(errs, fmt.Errorf("student_type: invalid value %q (expected new or repeat)", *f.StudentType))
	}

	return errs
}

// ValidateEvents checks a feedback events file for errors before conversion.
func ValidateEvents(f *EventsFile) []error {
	var errs []error

	for i, e := range f.Events {
		if !domain.ValidEventKinds[e.Kind] {
			errs = append(errs, fmt.Errorf("events[%d].kind: invalid value %q", i, e.Kind))
			continue
		}
		switch domain.EventKind(e.Kind) {
		case domain.EventQuizResult:
			if e.Unit == "" {
				errs = append(errs, fmt.Errorf("events[%d].unit is required for QUIZ_RESULT", i))
			}
			if e.Score == nil {
				errs = append(errs, fmt.Errorf("events[%d].score is required for QUIZ_RESULT", i))
			} else if *e.Score < 0 || *e.Score > 100 || math.IsNaN(*e.Score) {
				errs = append(errs, fmt.Errorf("events[%d].score: %v is outside [0, 100]", i, *e.Score))
			}
		case domain.EventBlockCompleted:
			if !domain.ValidActivities[e.Activity] {
				errs = append(errs, fmt.Errorf("events[%d].activity: invalid value %q", i, e.Activity))
			}
			if e.CompletedMinutes == nil {
				errs = append(errs, fmt.Errorf("events[%d].completed_minutes is required for BLOCK_COMPLETED", i))
			} else if math.IsNaN(*e.CompletedMinutes) || math.IsInf(*e.CompletedMinutes, 0) {
				errs = append(errs, fmt.Errorf("events[%d].completed_minutes must be finite", i))
			}
			if e.Unit == "" && domain.StreamOf(domain.Activity(e.Activity)) == domain.StreamTheory {
				errs = append(errs, fmt.Errorf("events[%d].unit is required for theory activities", i))
			}
		case domain.EventSessionFeedback:
			if !domain.ValidActivities[e.Activity] {
				errs = append(errs, fmt.Errorf("events[%d].activity: invalid value %q", i, e.Activity))
			}
			if !domain.ValidFeels[e.Feel] {
				errs = append(errs, fmt.Errorf("events[%d].feel: invalid value %q (expected too_much, ok or more)", i, e.Feel))
			}
		}
	}

	return errs
}
