package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/ngimenez/opoplan/internal/domain"
)

// runInputsForm collects planning inputs interactively when no inputs file
// was given.
func runInputsForm() (domain.FormInputs, error) {
	var examDate, availability, region string
	stage := string(domain.StagePrimaria)
	themeCount := "20"
	programming := true
	presentedBefore := false
	alreadyStudying := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Exam date").
				Placeholder("YYYY-MM-DD").
				Validate(validateFormDate).
				Value(&examDate),
			huh.NewInput().
				Title("Weekly availability in hours, Monday first").
				Placeholder("4, 4, 4, 4, 4, 0, 0").
				Validate(func(s string) error {
					_, err := parseAvailability(s)
					return err
				}).
				Value(&availability),
			huh.NewInput().
				Title("Region").
				Placeholder("Madrid").
				Value(&region),
			huh.NewSelect[string]().
				Title("Stage").
				Options(huh.NewOptions(string(domain.StagePrimaria), string(domain.StageInfantil))...).
				Value(&stage),
			huh.NewSelect[string]().
				Title("Curriculum size").
				Options(huh.NewOptions("15", "20", "25")...).
				Value(&themeCount),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Plan the programming project?").
				Value(&programming),
			huh.NewConfirm().
				Title("Have you presented before?").
				Value(&presentedBefore),
			huh.NewConfirm().
				Title("Are you already studying?").
				Value(&alreadyStudying),
		),
	)

	if err := form.Run(); err != nil {
		return domain.FormInputs{}, err
	}

	hours, err := parseAvailability(availability)
	if err != nil {
		return domain.FormInputs{}, err
	}
	tc, err := strconv.Atoi(themeCount)
	if err != nil {
		return domain.FormInputs{}, fmt.Errorf("parsing curriculum size: %w", err)
	}

	return domain.FormInputs{
		ExamDate:          examDate,
		AvailabilityHours: hours,
		PresentedBefore:   presentedBefore,
		AlreadyStudying:   alreadyStudying,
		Region:            region,
		Stage:             domain.Stage(stage),
		ThemeCount:        &tc,
		PlanProgramming:   &programming,
	}, nil
}

func validateFormDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

// parseAvailability reads seven comma-separated hour values, Monday first.
func parseAvailability(s string) ([7]float64, error) {
	var hours [7]float64
	parts := strings.Split(s, ",")
	if len(parts) != 7 {
		return hours, fmt.Errorf("expected 7 comma-separated values, got %d", len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return hours, fmt.Errorf("value %d is not a number", i+1)
		}
		if v < 0 {
			return hours, fmt.Errorf("value %d must not be negative", i+1)
		}
		hours[i] = v
	}
	return hours, nil
}
