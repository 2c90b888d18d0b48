// Package importer defines the on-disk schema for planning inputs and
// feedback events, and validates files before the engine sees them.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ngimenez/opoplan/internal/domain"
)

// InputsFile is the top-level structure of a planning inputs file.
type InputsFile struct {
	ExamDate          string    `json:"exam_date" yaml:"exam_date"`
	AvailabilityHours []float64 `json:"availability_hours" yaml:"availability_hours"`
	PresentedBefore   bool      `json:"presented_before" yaml:"presented_before"`
	AlreadyStudying   bool      `json:"already_studying" yaml:"already_studying"`
	Region            string    `json:"region" yaml:"region"`
	Stage             string    `json:"stage" yaml:"stage"`
	ThemeCount        *int      `json:"theme_count,omitempty" yaml:"theme_count,omitempty"`
	PlanProgramming   *bool     `json:"plan_programming,omitempty" yaml:"plan_programming,omitempty"`
	StudentType       *string   `json:"student_type,omitempty" yaml:"student_type,omitempty"`
}

// EventsFile is the top-level structure of a feedback events file.
type EventsFile struct {
	Events []EventImport `json:"events" yaml:"events"`
}

// EventImport is one feedback event entry. Kind selects which fields apply.
type EventImport struct {
	Kind             string   `json:"kind" yaml:"kind"`
	Unit             string   `json:"unit,omitempty" yaml:"unit,omitempty"`
	Score            *float64 `json:"score,omitempty" yaml:"score,omitempty"`
	Activity         string   `json:"activity,omitempty" yaml:"activity,omitempty"`
	CompletedMinutes *float64 `json:"completed_minutes,omitempty" yaml:"completed_minutes,omitempty"`
	Feel             string   `json:"feel,omitempty" yaml:"feel,omitempty"`
}

// LoadInputs reads and decodes an inputs file. The format follows the file
// extension: .yaml/.yml for YAML, anything else is treated as JSON.
func LoadInputs(path string) (*InputsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading inputs file: %w", err)
	}

	var inputs InputsFile
	if err := decode(path, data, &inputs); err != nil {
		return nil, fmt.Errorf("parsing inputs file %s: %w", path, err)
	}
	return &inputs, nil
}

// LoadEvents reads and decodes a feedback events file.
func LoadEvents(path string) (*EventsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading events file: %w", err)
	}

	var events EventsFile
	if err := decode(path, data, &events); err != nil {
		return nil, fmt.Errorf("parsing events file %s: %w", path, err)
	}
	return &events, nil
}

func decode(path string, data []byte, v any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	default:
		return json.Unmarshal(data, v)
	}
}

// ToDomain converts a validated inputs file into engine inputs. Call
// ValidateInputs first; ToDomain assumes the file is valid.
func (f *InputsFile) ToDomain() domain.FormInputs {
	inputs := domain.FormInputs{
		ExamDate:        f.ExamDate,
		PresentedBefore: f.PresentedBefore,
		AlreadyStudying: f.AlreadyStudying,
		Region:          f.Region,
		Stage:           domain.Stage(f.Stage),
		ThemeCount:      f.ThemeCount,
		PlanProgramming: f.PlanProgramming,
	}
	copy(inputs.AvailabilityHours[:], f.AvailabilityHours)
	if f.StudentType != nil {
		st := domain.StudentType(*f.StudentType)
		inputs.StudentType = &st
	}
	return inputs
}

// ToDomain converts a validated events file into engine events.
func (f *EventsFile) ToDomain() []domain.FeedbackEvent {
	out := make([]domain.FeedbackEvent, 0, len(f.Events))
	for _, e := range f.Events {
		ev := domain.FeedbackEvent{
			Kind:     domain.EventKind(e.Kind),
			Unit:     e.Unit,
			Activity: domain.Activity(e.Activity),
			Feel:     domain.Feel(e.Feel),
		}
		if e.Score != nil {
			ev.Score = *e.Score
		}
		if e.CompletedMinutes != nil {
			ev.CompletedMinutes = *e.CompletedMinutes
		}
		out = append(out, ev)
	}
	return out
}
